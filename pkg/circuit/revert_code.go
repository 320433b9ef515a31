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
	"fmt"
	"strings"

	"github.com/consensys/go-publicinputs/pkg/field"
	"github.com/consensys/go-publicinputs/pkg/serialize"
)

// RevertCode indicates whether (and in which phase) a call's effects were
// discarded.  It occupies a full field element in both encodings.
type RevertCode uint8

// REVERT_CODE_OK indicates no revert occurred.
const REVERT_CODE_OK RevertCode = 0

// REVERT_CODE_APP_LOGIC_REVERTED indicates the app logic phase reverted.
const REVERT_CODE_APP_LOGIC_REVERTED RevertCode = 1

// REVERT_CODE_TEARDOWN_REVERTED indicates the teardown phase reverted.
const REVERT_CODE_TEARDOWN_REVERTED RevertCode = 2

// REVERT_CODE_BOTH_REVERTED indicates both the app logic and teardown phases
// reverted.
const REVERT_CODE_BOTH_REVERTED RevertCode = 3

// NewRevertCode constructs a revert code from its numeric value, which must be
// one of the four defined codes.
func NewRevertCode(code uint64) (RevertCode, error) {
	var res RevertCode
	//
	if err := res.set(field.Uint64(code)); err != nil {
		return REVERT_CODE_OK, err
	}
	//
	return res, nil
}

// IsOK checks whether no revert occurred.
func (p RevertCode) IsOK() bool {
	return p == REVERT_CODE_OK
}

// ToFields implementation for the serialize.Member interface.
func (p RevertCode) ToFields() []field.Element {
	return []field.Element{field.Uint64(uint64(p))}
}

// ToBuffer implementation for the serialize.Member interface.
func (p RevertCode) ToBuffer() []byte {
	bytes := field.Uint64(uint64(p)).Bytes()
	return bytes[:]
}

// FromFields implementation for the serialize.Member interface.
func (p *RevertCode) FromFields(reader *serialize.FieldReader) error {
	elem, err := reader.ReadField()
	//
	if err != nil {
		return err
	}
	//
	return p.set(elem)
}

// FromBuffer implementation for the serialize.Member interface.
func (p *RevertCode) FromBuffer(reader *serialize.BufferReader) error {
	elem, err := reader.ReadField()
	//
	if err != nil {
		return err
	}
	//
	return p.set(elem)
}

// IsEmpty implementation for the serialize.Member interface.
func (p RevertCode) IsEmpty() bool {
	return p.IsOK()
}

func (p RevertCode) String() string {
	switch p {
	case REVERT_CODE_OK:
		return "OK"
	case REVERT_CODE_APP_LOGIC_REVERTED:
		return "APP_LOGIC_REVERTED"
	case REVERT_CODE_TEARDOWN_REVERTED:
		return "TEARDOWN_REVERTED"
	case REVERT_CODE_BOTH_REVERTED:
		return "BOTH_REVERTED"
	default:
		return fmt.Sprintf("RevertCode(%d)", uint8(p))
	}
}

// Validate implementation for the serialize.Validator interface.  Only the
// four defined codes have an encoding which can be decoded again.
func (p RevertCode) Validate() error {
	if p > REVERT_CODE_BOTH_REVERTED {
		return &serialize.RangeError{Target: "RevertCode", Value: fmt.Sprintf("%d", uint8(p))}
	}
	//
	return nil
}

// MarshalText implementation for encoding.TextMarshaler
func (p RevertCode) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	//
	return []byte(p.String()), nil
}

// UnmarshalText implementation for encoding.TextUnmarshaler.  This accepts
// either the name of a code (e.g. "APP_LOGIC_REVERTED") or its numeric value.
func (p *RevertCode) UnmarshalText(text []byte) error {
	var name = strings.TrimSpace(string(text))
	//
	for code := REVERT_CODE_OK; code <= REVERT_CODE_BOTH_REVERTED; code++ {
		if name == code.String() {
			*p = code
			return nil
		}
	}
	//
	elem, err := field.FromString(name)
	if err != nil {
		return fmt.Errorf("invalid revert code \"%s\"", name)
	}
	//
	return p.set(elem)
}

func (p *RevertCode) set(elem field.Element) error {
	code, ok := elem.Uint32()
	//
	if !ok || code > uint32(REVERT_CODE_BOTH_REVERTED) {
		return &serialize.RangeError{Target: "RevertCode", Value: elem.Text(10)}
	}
	//
	*p = RevertCode(code)
	//
	return nil
}
