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
	"bytes"
	"encoding/binary"

	"github.com/consensys/go-publicinputs/pkg/field"
)

// Serializable is implemented by values with a fixed-width byte encoding and a
// fixed-count field encoding.
type Serializable interface {
	// ToFields returns the field encoding of this value.
	ToFields() []field.Element
	// ToBuffer returns the byte encoding of this value.
	ToBuffer() []byte
}

// SerializeToBuffer concatenates the byte encodings of the given values, in
// the order given.
func SerializeToBuffer(values ...Serializable) []byte {
	var buffer bytes.Buffer
	//
	for _, v := range values {
		buffer.Write(v.ToBuffer())
	}
	//
	return buffer.Bytes()
}

// SerializeToFields concatenates the field encodings of the given values, in
// the order given.
func SerializeToFields(values ...Serializable) []field.Element {
	var fields []field.Element
	//
	for _, v := range values {
		fields = append(fields, v.ToFields()...)
	}
	//
	return fields
}

// FieldWriter accumulates the field encoding of a value whose total length is
// statically declared.  The declared length is only checked when the fields
// are extracted, such that a mismatch is reported once for the whole value.
type FieldWriter struct {
	name     string
	expected uint
	fields   []field.Element
}

// NewFieldWriter constructs a writer for a value of the given type, whose
// encoding is expected to have exactly the given number of fields.
func NewFieldWriter(name string, expected uint) *FieldWriter {
	return &FieldWriter{name, expected, make([]field.Element, 0, expected)}
}

// Write appends the field encodings of the given values.
func (p *FieldWriter) Write(values ...Serializable) *FieldWriter {
	for _, v := range values {
		p.fields = append(p.fields, v.ToFields()...)
	}
	//
	return p
}

// Fields returns the accumulated fields, or a LengthMismatchError if their
// number differs from that declared.
func (p *FieldWriter) Fields() ([]field.Element, error) {
	if uint(len(p.fields)) != p.expected {
		return nil, &LengthMismatchError{p.name, p.expected, uint(len(p.fields))}
	}
	//
	return p.fields, nil
}

func putField(elem field.Element) []byte {
	bytes := elem.Bytes()
	return bytes[:]
}

func putUint32(val uint32) []byte {
	var bytes [UINT32_BYTES]byte
	//
	binary.BigEndian.PutUint32(bytes[:], val)
	//
	return bytes[:]
}

func putBool(val bool) []byte {
	if val {
		return []byte{1}
	}
	//
	return []byte{0}
}
