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

// AppendOnlyTreeSnapshot captures the state of an append-only tree.
type AppendOnlyTreeSnapshot struct {
	Root                   field.Element `yaml:"root"`
	NextAvailableLeafIndex uint32        `yaml:"nextAvailableLeafIndex"`
}

func (p *AppendOnlyTreeSnapshot) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("root", &p.Root),
		serialize.Uint32("nextAvailableLeafIndex", &p.NextAvailableLeafIndex),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p AppendOnlyTreeSnapshot) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p AppendOnlyTreeSnapshot) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *AppendOnlyTreeSnapshot) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *AppendOnlyTreeSnapshot) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p AppendOnlyTreeSnapshot) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p AppendOnlyTreeSnapshot) String() string {
	return p.members().Inline("AppendOnlyTreeSnapshot")
}

// ContentCommitment commits to the content of a block.
type ContentCommitment struct {
	NumTxs         field.Element `yaml:"numTxs"`
	TxsEffectsHash field.Element `yaml:"txsEffectsHash"`
	InHash         field.Element `yaml:"inHash"`
	OutHash        field.Element `yaml:"outHash"`
}

func (p *ContentCommitment) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("numTxs", &p.NumTxs),
		serialize.Scalar("txsEffectsHash", &p.TxsEffectsHash),
		serialize.Scalar("inHash", &p.InHash),
		serialize.Scalar("outHash", &p.OutHash),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p ContentCommitment) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p ContentCommitment) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *ContentCommitment) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *ContentCommitment) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p ContentCommitment) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p ContentCommitment) String() string {
	return p.members().Inline("ContentCommitment")
}

// PartialStateReference captures the trees modified by transactions.
type PartialStateReference struct {
	NoteHashTree   AppendOnlyTreeSnapshot `yaml:"noteHashTree"`
	NullifierTree  AppendOnlyTreeSnapshot `yaml:"nullifierTree"`
	PublicDataTree AppendOnlyTreeSnapshot `yaml:"publicDataTree"`
}

func (p *PartialStateReference) members() serialize.Members {
	return serialize.Members{
		serialize.Object("noteHashTree", &p.NoteHashTree),
		serialize.Object("nullifierTree", &p.NullifierTree),
		serialize.Object("publicDataTree", &p.PublicDataTree),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p PartialStateReference) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p PartialStateReference) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *PartialStateReference) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *PartialStateReference) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p PartialStateReference) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p PartialStateReference) String() string {
	return p.members().Inline("PartialStateReference")
}

// StateReference captures the state of every tree.
type StateReference struct {
	L1ToL2MessageTree AppendOnlyTreeSnapshot `yaml:"l1ToL2MessageTree"`
	Partial           PartialStateReference  `yaml:"partial"`
}

func (p *StateReference) members() serialize.Members {
	return serialize.Members{
		serialize.Object("l1ToL2MessageTree", &p.L1ToL2MessageTree),
		serialize.Object("partial", &p.Partial),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p StateReference) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p StateReference) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *StateReference) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *StateReference) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p StateReference) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p StateReference) String() string {
	return p.members().Inline("StateReference")
}

// BlockHeader is the header of an L2 block.
type BlockHeader struct {
	// Snapshot of the archive tree before this block.
	LastArchive AppendOnlyTreeSnapshot `yaml:"lastArchive"`
	// Commitment to the block content.
	ContentCommitment ContentCommitment `yaml:"contentCommitment"`
	// State after this block.
	State StateReference `yaml:"state"`
	// Global variables of this block.
	GlobalVariables GlobalVariables `yaml:"globalVariables"`
	// Total fees paid in this block.
	TotalFees field.Element `yaml:"totalFees"`
	// Total mana used in this block.
	TotalManaUsed field.Element `yaml:"totalManaUsed"`
}

func (p *BlockHeader) members() serialize.Members {
	return serialize.Members{
		serialize.Object("lastArchive", &p.LastArchive),
		serialize.Object("contentCommitment", &p.ContentCommitment),
		serialize.Object("state", &p.State),
		serialize.Object("globalVariables", &p.GlobalVariables),
		serialize.Scalar("totalFees", &p.TotalFees),
		serialize.Scalar("totalManaUsed", &p.TotalManaUsed),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p BlockHeader) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p BlockHeader) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *BlockHeader) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *BlockHeader) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p BlockHeader) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p BlockHeader) String() string {
	return p.members().Inline("BlockHeader")
}
