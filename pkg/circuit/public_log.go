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
	"github.com/consensys/go-publicinputs/pkg/constants"
	"github.com/consensys/go-publicinputs/pkg/field"
	"github.com/consensys/go-publicinputs/pkg/serialize"
)

// PublicLog is a log emitted by a public function.  The log payload has a fixed
// size, with unused trailing fields set to zero.
type PublicLog struct {
	ContractAddress AztecAddress                                             `yaml:"contractAddress"`
	Log             [constants.PUBLIC_LOG_DATA_SIZE_IN_FIELDS]field.Element `yaml:"log"`
}

func (p *PublicLog) members() serialize.Members {
	return serialize.Members{
		serialize.Object("contractAddress", &p.ContractAddress),
		serialize.Scalars("log", p.Log[:]),
	}
}

// ToFields implementation for the serialize.Member interface.
func (p PublicLog) ToFields() []field.Element {
	return p.members().ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p PublicLog) ToBuffer() []byte {
	return p.members().ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *PublicLog) FromFields(reader *serialize.FieldReader) error {
	return p.members().FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *PublicLog) FromBuffer(reader *serialize.BufferReader) error {
	return p.members().FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p PublicLog) IsEmpty() bool {
	return p.members().IsEmpty()
}

func (p PublicLog) String() string {
	return p.members().Inline("PublicLog")
}
