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

// ReadRequest asserts that a value (e.g. a nullifier) was read at a given point
// in the execution trace.
type ReadRequest struct {
	Value   field.Element `yaml:"value"`
	Counter uint32        `yaml:"counter"`
}

func (p *ReadRequest) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("value", &p.Value),
		serialize.Uint32("counter", &p.Counter),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p ReadRequest) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p ReadRequest) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *ReadRequest) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *ReadRequest) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p ReadRequest) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p ReadRequest) String() string {
	return p.members().Inline("ReadRequest")
}

// TreeLeafReadRequest asserts that a leaf with a given value exists at a given
// index of a tree.
type TreeLeafReadRequest struct {
	Value     field.Element `yaml:"value"`
	LeafIndex field.Element `yaml:"leafIndex"`
}

func (p *TreeLeafReadRequest) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("value", &p.Value),
		serialize.Scalar("leafIndex", &p.LeafIndex),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p TreeLeafReadRequest) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p TreeLeafReadRequest) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *TreeLeafReadRequest) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *TreeLeafReadRequest) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p TreeLeafReadRequest) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p TreeLeafReadRequest) String() string {
	return p.members().Inline("TreeLeafReadRequest")
}
