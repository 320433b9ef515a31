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
	"encoding/binary"
	"fmt"

	"github.com/consensys/go-publicinputs/pkg/field"
)

// UINT32_BYTES is the byte width of a u32 in the buffer encoding.
const UINT32_BYTES = 4

// BOOL_BYTES is the byte width of a boolean in the buffer encoding.
const BOOL_BYTES = 1

// Decoder is implemented by values which can be decoded from either cursor,
// consuming exactly their fixed width.  Decoding happens in place, hence
// implementations are pointers.
type Decoder interface {
	// FromFields decodes this value from the given field cursor.
	FromFields(reader *FieldReader) error
	// FromBuffer decodes this value from the given byte cursor.
	FromBuffer(reader *BufferReader) error
}

// Reader captures the contract shared by the byte-oriented and the
// field-oriented cursors.  A reader is strictly sequential: the cursor position
// is its only state, and it never looks ahead of the current read.  Observe
// that a reader does not complain about trailing data; that is a concern for
// the caller (see Remaining).
type Reader interface {
	// ReadObject decodes a single value of fixed width, advancing the cursor.
	ReadObject(value Decoder) error
	// Remaining returns the number of unread elements (bytes or fields).
	Remaining() uint
}

// ============================================================================
// Buffer Reader
// ============================================================================

// BufferReader is a cursor over a byte buffer.
type BufferReader struct {
	bytes  []byte
	offset uint
}

// NewBufferReader constructs a new reader positioned at the start of the given
// bytes.
func NewBufferReader(bytes []byte) *BufferReader {
	return &BufferReader{bytes, 0}
}

// Offset returns the number of bytes consumed so far.
func (p *BufferReader) Offset() uint {
	return p.offset
}

// Remaining returns the remaining number of bytes which can be read.
func (p *BufferReader) Remaining() uint {
	return uint(len(p.bytes)) - p.offset
}

// ReadBytes reads exactly n bytes.  The returned slice aliases the underlying
// buffer.
func (p *BufferReader) ReadBytes(n uint) ([]byte, error) {
	if p.Remaining() < n {
		return nil, &UnderflowError{"buffer", n, p.Remaining()}
	}
	//
	bytes := p.bytes[p.offset : p.offset+n]
	p.offset += n
	//
	return bytes, nil
}

// ReadField reads a single field element.
func (p *BufferReader) ReadField() (field.Element, error) {
	bytes, err := p.ReadBytes(field.BYTES)
	//
	if err != nil {
		return field.Element{}, err
	}
	//
	return field.FromBytes(bytes)
}

// ReadUint32 reads a big-endian u32.
func (p *BufferReader) ReadUint32() (uint32, error) {
	bytes, err := p.ReadBytes(UINT32_BYTES)
	//
	if err != nil {
		return 0, err
	}
	//
	return binary.BigEndian.Uint32(bytes), nil
}

// ReadBool reads a single byte which must be either 0 or 1.
func (p *BufferReader) ReadBool() (bool, error) {
	bytes, err := p.ReadBytes(BOOL_BYTES)
	//
	if err != nil {
		return false, err
	}
	//
	switch bytes[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &RangeError{"bool", fmt.Sprintf("%d", bytes[0])}
	}
}

// ReadObject decodes a value from this buffer.
func (p *BufferReader) ReadObject(value Decoder) error {
	return value.FromBuffer(p)
}

// ============================================================================
// Field Reader
// ============================================================================

// FieldReader is a cursor over a vector of field elements.
type FieldReader struct {
	fields []field.Element
	offset uint
}

// NewFieldReader constructs a new reader positioned at the start of the given
// fields.
func NewFieldReader(fields []field.Element) *FieldReader {
	return &FieldReader{fields, 0}
}

// Offset returns the number of fields consumed so far.
func (p *FieldReader) Offset() uint {
	return p.offset
}

// Remaining returns the remaining number of fields which can be read.
func (p *FieldReader) Remaining() uint {
	return uint(len(p.fields)) - p.offset
}

// ReadField reads a single field element.
func (p *FieldReader) ReadField() (field.Element, error) {
	if p.Remaining() < 1 {
		return field.Element{}, &UnderflowError{"fields", 1, 0}
	}
	//
	elem := p.fields[p.offset]
	p.offset++
	//
	return elem, nil
}

// ReadFields reads exactly n field elements.  The returned slice aliases the
// underlying vector.
func (p *FieldReader) ReadFields(n uint) ([]field.Element, error) {
	if p.Remaining() < n {
		return nil, &UnderflowError{"fields", n, p.Remaining()}
	}
	//
	fields := p.fields[p.offset : p.offset+n]
	p.offset += n
	//
	return fields, nil
}

// ReadUint32 reads a single field element which must fit within 32 bits.
func (p *FieldReader) ReadUint32() (uint32, error) {
	elem, err := p.ReadField()
	//
	if err != nil {
		return 0, err
	} else if val, ok := elem.Uint32(); ok {
		return val, nil
	}
	//
	return 0, &RangeError{"u32", elem.Text(10)}
}

// ReadBool reads a single field element which must be either 0 or 1.
func (p *FieldReader) ReadBool() (bool, error) {
	elem, err := p.ReadField()
	//
	switch {
	case err != nil:
		return false, err
	case elem.IsZero():
		return false, nil
	case elem.Equals(field.Uint64(1)):
		return true, nil
	default:
		return false, &RangeError{"bool", elem.Text(10)}
	}
}

// ReadObject decodes a value from this vector.
func (p *FieldReader) ReadObject(value Decoder) error {
	return value.FromFields(p)
}

// ============================================================================
// Generic helpers
// ============================================================================

// ReadObject decodes one value of type T from a given reader.  On failure, the
// zero value is returned rather than a partially decoded one.
func ReadObject[T any, P Codec[T]](reader Reader) (T, error) {
	var value T
	//
	if err := reader.ReadObject(P(&value)); err != nil {
		var empty T
		return empty, err
	}
	//
	return value, nil
}

// ReadArray decodes n consecutive values of type T from a given reader.
func ReadArray[T any, P Codec[T]](reader Reader, n uint) ([]T, error) {
	var values = make([]T, n)
	//
	if err := ReadArrayInto[T, P](reader, values); err != nil {
		return nil, err
	}
	//
	return values, nil
}

// ReadArrayInto decodes len(target) consecutive values of type T from a given
// reader, writing them into target.  This is used to fill fixed-capacity
// arrays, as in ReadArrayInto(reader, record.Nullifiers[:]).
func ReadArrayInto[T any, P Codec[T]](reader Reader, target []T) error {
	for i := range target {
		if err := reader.ReadObject(P(&target[i])); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	//
	return nil
}
