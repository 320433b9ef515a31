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

// PublicInnerCallRequest is a request, made by a public function, to call
// another public function.
type PublicInnerCallRequest struct {
	CallContext CallContext   `yaml:"callContext"`
	ArgsHash    field.Element `yaml:"argsHash"`
	Counter     uint32        `yaml:"counter"`
}

func (p *PublicInnerCallRequest) members() serialize.Members {
	return serialize.Members{
		serialize.Object("callContext", &p.CallContext),
		serialize.Scalar("argsHash", &p.ArgsHash),
		serialize.Uint32("counter", &p.Counter),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p PublicInnerCallRequest) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p PublicInnerCallRequest) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *PublicInnerCallRequest) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *PublicInnerCallRequest) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p PublicInnerCallRequest) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p PublicInnerCallRequest) String() string {
	return p.members().Inline("PublicInnerCallRequest")
}
