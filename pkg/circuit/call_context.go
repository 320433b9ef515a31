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

// CallContext describes the context in which a function call executes.
type CallContext struct {
	// Address of the caller.
	MsgSender AztecAddress `yaml:"msgSender"`
	// Address of the contract being called.
	ContractAddress AztecAddress `yaml:"contractAddress"`
	// Function being called.
	FunctionSelector FunctionSelector `yaml:"functionSelector"`
	// Whether state modifications are disallowed.
	IsStaticCall bool `yaml:"isStaticCall"`
}

func (p *CallContext) members() serialize.Members {
	return serialize.Members{
		serialize.Object("msgSender", &p.MsgSender),
		serialize.Object("contractAddress", &p.ContractAddress),
		serialize.Object("functionSelector", &p.FunctionSelector),
		serialize.Bool("isStaticCall", &p.IsStaticCall),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p CallContext) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p CallContext) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *CallContext) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *CallContext) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p CallContext) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p CallContext) String() string {
	return p.members().Inline("CallContext")
}
