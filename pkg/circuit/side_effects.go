// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package circuit

import (
	"github.com/consensys/go-publicinputs/pkg/field"
	"github.com/consensys/go-publicinputs/pkg/serialize"
)

// NoteHash is a note commitment emitted by a call.
type NoteHash struct {
	Value   field.Element `yaml:"value"`
	Counter uint32        `yaml:"counter"`
}

func (p *NoteHash) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("value", &p.Value),
		serialize.Uint32("counter", &p.Counter),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p NoteHash) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p NoteHash) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *NoteHash) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *NoteHash) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p NoteHash) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p NoteHash) String() string {
	return p.members().Inline("NoteHash")
}

// Nullifier is a nullifier emitted by a call, together with the hash of the note
// it nullifies (if any).
type Nullifier struct {
	Value    field.Element `yaml:"value"`
	Counter  uint32        `yaml:"counter"`
	NoteHash field.Element `yaml:"noteHash"`
}

func (p *Nullifier) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("value", &p.Value),
		serialize.Uint32("counter", &p.Counter),
		serialize.Scalar("noteHash", &p.NoteHash),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p Nullifier) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p Nullifier) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *Nullifier) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *Nullifier) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p Nullifier) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p Nullifier) String() string {
	return p.members().Inline("Nullifier")
}

// L2ToL1Message is a message sent from L2 to a recipient on L1.
type L2ToL1Message struct {
	Recipient EthAddress    `yaml:"recipient"`
	Content   field.Element `yaml:"content"`
	Counter   uint32        `yaml:"counter"`
}

func (p *L2ToL1Message) members() serialize.Members {
	return serialize.Members{
		serialize.Object("recipient", &p.Recipient),
		serialize.Scalar("content", &p.Content),
		serialize.Uint32("counter", &p.Counter),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p L2ToL1Message) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p L2ToL1Message) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *L2ToL1Message) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *L2ToL1Message) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p L2ToL1Message) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p L2ToL1Message) String() string {
	return p.members().Inline("L2ToL1Message")
}
