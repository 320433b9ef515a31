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
package serialize

import (
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/go-publicinputs/pkg/field"
)

// Member captures the codec contract which every value participating in a
// record must satisfy, whether a scalar, a composite or a fixed-capacity array.
// The zero value of every member type is its canonical empty value.
type Member interface {
	Serializable
	Decoder
	fmt.Stringer
	// IsEmpty determines whether this value is its type's empty value.
	IsEmpty() bool
}

// Validator is implemented by members whose type admits values which have no
// canonical encoding (e.g. enumerations), so that construction can reject them
// before they are ever encoded.
type Validator interface {
	Validate() error
}

// Codec is the constraint used by generic helpers, which hold values of type T
// but require the pointer type to implement the codec contract (since decoding
// happens in place).
type Codec[T any] interface {
	*T
	Member
}

// FieldOf returns the member view of a field element.
func FieldOf(ptr *field.Element) Member {
	return scalar{ptr}
}

// Uint32Of returns the member view of a u32, which occupies 4 bytes and one
// field.
func Uint32Of(ptr *uint32) Member {
	return u32{ptr}
}

// BoolOf returns the member view of a boolean, which occupies 1 byte and one
// field.
func BoolOf(ptr *bool) Member {
	return flag{ptr}
}

// ArrayOf returns the member view of a fixed-capacity array.  The capacity is
// len(elems), which should be a slice of a Go array so that it cannot change.
func ArrayOf[T any, P Codec[T]](elems []T) Member {
	return array[T, P]{elems}
}

// FieldsOf returns the member view of a fixed-capacity array of field
// elements.
func FieldsOf(elems []field.Element) Member {
	return scalars{elems}
}

// MakeTuple fills every slot of a fixed-capacity array using a per-index
// factory.
func MakeTuple[T any](target []T, factory func(index int) T) {
	for i := range target {
		target[i] = factory(i)
	}
}

// IsEmptyArray determines whether every element of an array is empty.
func IsEmptyArray[T any, P Codec[T]](elems []T) bool {
	for i := range elems {
		if !P(&elems[i]).IsEmpty() {
			return false
		}
	}
	//
	return true
}

// ============================================================================
// Scalars
// ============================================================================

type scalar struct {
	ptr *field.Element
}

func (p scalar) ToFields() []field.Element {
	return []field.Element{*p.ptr}
}

func (p scalar) ToBuffer() []byte {
	return putField(*p.ptr)
}

func (p scalar) FromFields(reader *FieldReader) (err error) {
	*p.ptr, err = reader.ReadField()
	return err
}

func (p scalar) FromBuffer(reader *BufferReader) (err error) {
	*p.ptr, err = reader.ReadField()
	return err
}

func (p scalar) IsEmpty() bool {
	return p.ptr.IsZero()
}

func (p scalar) String() string {
	return p.ptr.String()
}

type u32 struct {
	ptr *uint32
}

func (p u32) ToFields() []field.Element {
	return []field.Element{field.Uint64(uint64(*p.ptr))}
}

func (p u32) ToBuffer() []byte {
	return putUint32(*p.ptr)
}

func (p u32) FromFields(reader *FieldReader) (err error) {
	*p.ptr, err = reader.ReadUint32()
	return err
}

func (p u32) FromBuffer(reader *BufferReader) (err error) {
	*p.ptr, err = reader.ReadUint32()
	return err
}

func (p u32) IsEmpty() bool {
	return *p.ptr == 0
}

func (p u32) String() string {
	return fmt.Sprintf("%d", *p.ptr)
}

type flag struct {
	ptr *bool
}

func (p flag) ToFields() []field.Element {
	if *p.ptr {
		return []field.Element{field.Uint64(1)}
	}
	//
	return []field.Element{field.Zero()}
}

func (p flag) ToBuffer() []byte {
	return putBool(*p.ptr)
}

func (p flag) FromFields(reader *FieldReader) (err error) {
	*p.ptr, err = reader.ReadBool()
	return err
}

func (p flag) FromBuffer(reader *BufferReader) (err error) {
	*p.ptr, err = reader.ReadBool()
	return err
}

func (p flag) IsEmpty() bool {
	return !*p.ptr
}

func (p flag) String() string {
	return fmt.Sprintf("%t", *p.ptr)
}

// ============================================================================
// Fixed-capacity arrays
// ============================================================================

// array is the member view of a fixed-capacity array.  Its encoding is the
// concatenation of its elements in index order, and it is empty iff every
// element is empty.
type array[T any, P Codec[T]] struct {
	elems []T
}

func (p array[T, P]) ToFields() []field.Element {
	var fields []field.Element
	//
	for i := range p.elems {
		fields = append(fields, P(&p.elems[i]).ToFields()...)
	}
	//
	return fields
}

func (p array[T, P]) ToBuffer() []byte {
	var bytes []byte
	//
	for i := range p.elems {
		bytes = append(bytes, P(&p.elems[i]).ToBuffer()...)
	}
	//
	return bytes
}

func (p array[T, P]) FromFields(reader *FieldReader) error {
	return ReadArrayInto[T, P](reader, p.elems)
}

func (p array[T, P]) FromBuffer(reader *BufferReader) error {
	return ReadArrayInto[T, P](reader, p.elems)
}

func (p array[T, P]) IsEmpty() bool {
	return IsEmptyArray[T, P](p.elems)
}

// String renders only the non-empty elements, such that the output is
// proportional to the content rather than the capacity.
func (p array[T, P]) String() string {
	var items []string
	//
	for i := range p.elems {
		if ith := P(&p.elems[i]); !ith.IsEmpty() {
			items = append(items, ith.String())
		}
	}
	//
	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}

// scalars is the member view of a fixed-capacity array of field elements.
type scalars struct {
	elems []field.Element
}

func (p scalars) ToFields() []field.Element {
	return slices.Clone(p.elems)
}

func (p scalars) ToBuffer() []byte {
	var bytes = make([]byte, 0, len(p.elems)*field.BYTES)
	//
	for _, e := range p.elems {
		bytes = append(bytes, putField(e)...)
	}
	//
	return bytes
}

func (p scalars) FromFields(reader *FieldReader) error {
	fields, err := reader.ReadFields(uint(len(p.elems)))
	//
	if err == nil {
		copy(p.elems, fields)
	}
	//
	return err
}

func (p scalars) FromBuffer(reader *BufferReader) error {
	for i := range p.elems {
		elem, err := reader.ReadField()
		//
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		//
		p.elems[i] = elem
	}
	//
	return nil
}

func (p scalars) IsEmpty() bool {
	for _, e := range p.elems {
		if !e.IsZero() {
			return false
		}
	}
	//
	return true
}

// String renders the elements up to (and including) the last non-zero one.
func (p scalars) String() string {
	var (
		n     = len(p.elems)
		items []string
	)
	//
	for n > 0 && p.elems[n-1].IsZero() {
		n--
	}
	//
	for _, e := range p.elems[:n] {
		items = append(items, e.String())
	}
	//
	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}
