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

// ContractStorageUpdateRequest records a write to public storage.
type ContractStorageUpdateRequest struct {
	// Slot being written.
	StorageSlot field.Element `yaml:"storageSlot"`
	// Value written.
	NewValue field.Element `yaml:"newValue"`
	// Side-effect counter of the write.
	Counter uint32 `yaml:"counter"`
}

func (p *ContractStorageUpdateRequest) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("storageSlot", &p.StorageSlot),
		serialize.Scalar("newValue", &p.NewValue),
		serialize.Uint32("counter", &p.Counter),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p ContractStorageUpdateRequest) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p ContractStorageUpdateRequest) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *ContractStorageUpdateRequest) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *ContractStorageUpdateRequest) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p ContractStorageUpdateRequest) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p ContractStorageUpdateRequest) String() string {
	return p.members().Inline("ContractStorageUpdateRequest")
}

// ContractStorageRead records a read from public storage.
type ContractStorageRead struct {
	// Slot being read.
	StorageSlot field.Element `yaml:"storageSlot"`
	// Value observed.
	CurrentValue field.Element `yaml:"currentValue"`
	// Side-effect counter of the read.
	Counter uint32 `yaml:"counter"`
}

func (p *ContractStorageRead) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("storageSlot", &p.StorageSlot),
		serialize.Scalar("currentValue", &p.CurrentValue),
		serialize.Uint32("counter", &p.Counter),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p ContractStorageRead) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p ContractStorageRead) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *ContractStorageRead) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *ContractStorageRead) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p ContractStorageRead) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p ContractStorageRead) String() string {
	return p.members().Inline("ContractStorageRead")
}
