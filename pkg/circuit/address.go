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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/consensys/go-publicinputs/pkg/field"
	"github.com/consensys/go-publicinputs/pkg/serialize"
)

// ============================================================================
// AztecAddress
// ============================================================================

// AztecAddress identifies a contract (or account) on L2.  It is a single field
// element, encoded as such.
type AztecAddress struct {
	field.Element
}

// ToFields implementation for the serialize.Member interface.
func (p AztecAddress) ToFields() []field.Element {
	return serialize.FieldOf(&p.Element).ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p AztecAddress) ToBuffer() []byte {
	return serialize.FieldOf(&p.Element).ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *AztecAddress) FromFields(reader *serialize.FieldReader) error {
	return serialize.FieldOf(&p.Element).FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *AztecAddress) FromBuffer(reader *serialize.BufferReader) error {
	return serialize.FieldOf(&p.Element).FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p AztecAddress) IsEmpty() bool {
	return p.IsZero()
}

// ============================================================================
// EthAddress
// ============================================================================

// ETH_ADDRESS_BYTES is the width of an L1 address.
const ETH_ADDRESS_BYTES = 20

// EthAddress identifies an account on L1.  Its byte encoding is its 20 raw
// bytes, whilst its field encoding is a single (left-padded) field element.
type EthAddress [ETH_ADDRESS_BYTES]byte

// ToFields implementation for the serialize.Member interface.
func (p EthAddress) ToFields() []field.Element {
	var bytes [field.BYTES]byte
	//
	copy(bytes[field.BYTES-ETH_ADDRESS_BYTES:], p[:])
	// 160 bits always fit within the field
	elem, _ := field.FromBytes(bytes[:])
	//
	return []field.Element{elem}
}

// ToBuffer implementation for the serialize.Member interface.
func (p EthAddress) ToBuffer() []byte {
	var bytes = p
	return bytes[:]
}

// FromFields implementation for the serialize.Member interface.
func (p *EthAddress) FromFields(reader *serialize.FieldReader) error {
	elem, err := reader.ReadField()
	//
	if err != nil {
		return err
	}
	//
	bytes := elem.Bytes()
	// Upper bytes must be clear
	for _, b := range bytes[:field.BYTES-ETH_ADDRESS_BYTES] {
		if b != 0 {
			return &serialize.RangeError{Target: "EthAddress", Value: elem.String()}
		}
	}
	//
	copy(p[:], bytes[field.BYTES-ETH_ADDRESS_BYTES:])
	//
	return nil
}

// FromBuffer implementation for the serialize.Member interface.
func (p *EthAddress) FromBuffer(reader *serialize.BufferReader) error {
	bytes, err := reader.ReadBytes(ETH_ADDRESS_BYTES)
	//
	if err == nil {
		copy(p[:], bytes)
	}
	//
	return err
}

// IsEmpty implementation for the serialize.Member interface.
func (p EthAddress) IsEmpty() bool {
	return p == EthAddress{}
}

func (p EthAddress) String() string {
	return fmt.Sprintf("0x%x", p[:])
}

// MarshalText implementation for encoding.TextMarshaler
func (p EthAddress) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a hex address, with or without a leading "0x".
func (p *EthAddress) UnmarshalText(text []byte) error {
	var str = strings.TrimPrefix(strings.TrimSpace(string(text)), "0x")
	//
	bytes, err := hex.DecodeString(str)
	//
	if err != nil {
		return fmt.Errorf("invalid eth address \"%s\": %w", string(text), err)
	} else if len(bytes) != ETH_ADDRESS_BYTES {
		return fmt.Errorf("invalid eth address \"%s\": expected %d bytes", string(text), ETH_ADDRESS_BYTES)
	}
	//
	copy(p[:], bytes)
	//
	return nil
}

// ============================================================================
// FunctionSelector
// ============================================================================

// FunctionSelector identifies a function within a contract.  It is encoded as
// a u32.
type FunctionSelector uint32

// ToFields implementation for the serialize.Member interface.
func (p FunctionSelector) ToFields() []field.Element {
	return serialize.Uint32Of((*uint32)(&p)).ToFields()
}

// ToBuffer implementation for the serialize.Member interface.
func (p FunctionSelector) ToBuffer() []byte {
	return serialize.Uint32Of((*uint32)(&p)).ToBuffer()
}

// FromFields implementation for the serialize.Member interface.
func (p *FunctionSelector) FromFields(reader *serialize.FieldReader) error {
	return serialize.Uint32Of((*uint32)(p)).FromFields(reader)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *FunctionSelector) FromBuffer(reader *serialize.BufferReader) error {
	return serialize.Uint32Of((*uint32)(p)).FromBuffer(reader)
}

// IsEmpty implementation for the serialize.Member interface.
func (p FunctionSelector) IsEmpty() bool {
	return p == 0
}

func (p FunctionSelector) String() string {
	return fmt.Sprintf("0x%08x", uint32(p))
}
