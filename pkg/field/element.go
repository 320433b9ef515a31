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
package field

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BYTES is the width (in bytes) of the canonical big-endian encoding of an
// element.
const BYTES = fr.Bytes

// ErrNonCanonical signals an encoding whose value is not strictly less than
// the field modulus.
var ErrNonCanonical = errors.New("non-canonical field element")

// Element wraps fr.Element (i.e. an element of the BN254 scalar field).  The
// zero value of an Element is the field element 0.
type Element struct {
	fr.Element
}

// Zero constructs a field element representing 0
func Zero() Element {
	return Element{}
}

// Uint64 construct a field element from a given uint64
func Uint64(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// FromBytes constructs an element from exactly BYTES bytes given in big endian
// order.  Values which are not less than the modulus are rejected rather than
// reduced.
func FromBytes(bytes []byte) (Element, error) {
	var res Element
	//
	if len(bytes) != BYTES {
		return res, fmt.Errorf("expecting exactly %d bytes (got %d)", BYTES, len(bytes))
	} else if err := res.Element.SetBytesCanonical(bytes); err != nil {
		return res, fmt.Errorf("%w: 0x%x", ErrNonCanonical, bytes)
	}
	//
	return res, nil
}

// FromBigInt constructs an element from a non-negative big integer less than
// the modulus.
func FromBigInt(val *big.Int) (Element, error) {
	var res Element
	//
	if val.Sign() < 0 {
		return res, fmt.Errorf("negative value encountered (%s)", val.String())
	} else if val.Cmp(fr.Modulus()) >= 0 {
		return res, fmt.Errorf("%w: %s", ErrNonCanonical, val.String())
	}
	//
	res.Element.SetBigInt(val)
	//
	return res, nil
}

// FromString parses an element given either in hex (with a leading "0x") or in
// decimal.
func FromString(text string) (Element, error) {
	var (
		val     big.Int
		ok      bool
		trimmed = strings.TrimSpace(text)
	)
	//
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		_, ok = val.SetString(trimmed[2:], 16)
	} else {
		_, ok = val.SetString(trimmed, 10)
	}
	//
	if !ok {
		return Element{}, fmt.Errorf("invalid field element \"%s\"", text)
	}
	//
	return FromBigInt(&val)
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Equals determines whether two elements are the same.
func (x Element) Equals(other Element) bool {
	return x.Element.Equal(&other.Element)
}

// IsZero checks whether this value is zero (or not).
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Uint32 returns the numerical value of x, provided it fits within 32 bits.
func (x Element) Uint32() (uint32, bool) {
	if !x.Element.IsUint64() {
		return 0, false
	}
	//
	i := x.Element.Uint64()
	//
	return uint32(i), i < 1<<32
}

// Bytes returns the big-endian encoded value of the Element, possibly with
// leading zeros.
func (x Element) Bytes() [BYTES]byte {
	return x.Element.Bytes()
}

// String returns the element as a fixed-width hex string.
func (x Element) String() string {
	return fmt.Sprintf("0x%x", x.Bytes())
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}

// MarshalText implementation for encoding.TextMarshaler
func (x Element) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implementation for encoding.TextUnmarshaler
func (x *Element) UnmarshalText(text []byte) error {
	elem, err := FromString(string(text))
	//
	if err != nil {
		return err
	}
	//
	*x = elem
	//
	return nil
}
