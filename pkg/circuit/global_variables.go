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

// GlobalVariables holds the block-level values visible to every call in a block.
type GlobalVariables struct {
	ChainId      field.Element `yaml:"chainId"`
	Version      field.Element `yaml:"version"`
	BlockNumber  field.Element `yaml:"blockNumber"`
	SlotNumber   field.Element `yaml:"slotNumber"`
	Timestamp    field.Element `yaml:"timestamp"`
	Coinbase     EthAddress    `yaml:"coinbase"`
	FeeRecipient AztecAddress  `yaml:"feeRecipient"`
	GasFees      GasFees       `yaml:"gasFees"`
}

func (p *GlobalVariables) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("chainId", &p.ChainId),
		serialize.Scalar("version", &p.Version),
		serialize.Scalar("blockNumber", &p.BlockNumber),
		serialize.Scalar("slotNumber", &p.SlotNumber),
		serialize.Scalar("timestamp", &p.Timestamp),
		serialize.Object("coinbase", &p.Coinbase),
		serialize.Object("feeRecipient", &p.FeeRecipient),
		serialize.Object("gasFees", &p.GasFees),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p GlobalVariables) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p GlobalVariables) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *GlobalVariables) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *GlobalVariables) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p GlobalVariables) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p GlobalVariables) String() string {
	return p.members().Inline("GlobalVariables")
}
