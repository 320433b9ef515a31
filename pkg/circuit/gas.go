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

// Gas holds an amount of gas along each dimension.
type Gas struct {
	DaGas uint32 `yaml:"daGas"`
	L2Gas uint32 `yaml:"l2Gas"`
}

func (p *Gas) members() serialize.Members {
	return serialize.Members{
		serialize.Uint32("daGas", &p.DaGas),
		serialize.Uint32("l2Gas", &p.L2Gas),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p Gas) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p Gas) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *Gas) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *Gas) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p Gas) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p Gas) String() string {
	return p.members().Inline("Gas")
}

// GasFees holds the fee per unit of gas along each dimension.
type GasFees struct {
	FeePerDaGas field.Element `yaml:"feePerDaGas"`
	FeePerL2Gas field.Element `yaml:"feePerL2Gas"`
}

func (p *GasFees) members() serialize.Members {
	return serialize.Members{
		serialize.Scalar("feePerDaGas", &p.FeePerDaGas),
		serialize.Scalar("feePerL2Gas", &p.FeePerL2Gas),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p GasFees) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p GasFees) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *GasFees) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *GasFees) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p GasFees) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p GasFees) String() string {
	return p.members().Inline("GasFees")
}
