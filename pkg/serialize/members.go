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
	"reflect"
	"strings"

	"github.com/consensys/go-publicinputs/pkg/field"
)

// Entry is a single named slot in the ordered field declaration of a composite
// value.  An entry is bound to the storage of the value it was taken from,
// hence reads through an entry observe that value and decodes through an entry
// write into it.
type Entry struct {
	name   string
	member Member
	// Storage behind the member, either a pointer or (for fixed-capacity
	// arrays) a slice over the underlying Go array.  This is only inspected by
	// the keyed operations.
	storage any
}

// Scalar declares a field element entry.
func Scalar(name string, ptr *field.Element) Entry {
	return Entry{name, FieldOf(ptr), ptr}
}

// Uint32 declares a u32 entry.
func Uint32(name string, ptr *uint32) Entry {
	return Entry{name, Uint32Of(ptr), ptr}
}

// Bool declares a boolean entry.
func Bool(name string, ptr *bool) Entry {
	return Entry{name, BoolOf(ptr), ptr}
}

// Scalars declares an entry for a fixed-capacity array of field elements.
func Scalars(name string, elems []field.Element) Entry {
	return Entry{name, FieldsOf(elems), elems}
}

// Object declares an entry for a composite (or otherwise self-describing)
// value.
func Object[T any, P Codec[T]](name string, ptr P) Entry {
	return Entry{name, ptr, ptr}
}

// Array declares an entry for a fixed-capacity array, given as a slice over
// the underlying Go array (e.g. record.Nullifiers[:]).
func Array[T any, P Codec[T]](name string, elems []T) Entry {
	return Entry{name, ArrayOf[T, P](elems), elems}
}

// Name returns the declared name of this entry.
func (p Entry) Name() string {
	return p.name
}

// Member returns the codec view of this entry.
func (p Entry) Member() Member {
	return p.member
}

// Value returns the current value of this entry.  For fixed-capacity arrays,
// this is a slice over the underlying array.
func (p Entry) Value() any {
	return p.target().Interface()
}

// DecodeWith builds a value of this entry's type using a keyed decoder (e.g.
// yaml.Node.Decode), which is handed a pointer to a fresh value to fill.  For
// fixed-capacity arrays this is a pointer to a slice, which can hold fewer
// elements than the capacity.  The result is suitable for Assign.
func (p Entry) DecodeWith(decode func(any) error) (any, error) {
	var ptr = reflect.New(p.target().Type())
	//
	if err := decode(ptr.Interface()); err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	//
	return ptr.Elem().Interface(), nil
}

// Assign sets this entry to the given value, which must have the entry's type.
// Fixed-capacity arrays additionally accept any slice or array of the element
// type with at most capacity elements, the remaining slots being set to the
// empty value.
func (p Entry) Assign(value any) error {
	var (
		val    = reflect.ValueOf(value)
		target = p.target()
	)
	//
	if !val.IsValid() {
		return fmt.Errorf("field \"%s\" cannot be nil", p.name)
	} else if target.Kind() != reflect.Slice {
		if val.Type() != target.Type() {
			return fmt.Errorf("field \"%s\" has type %s (got %s)", p.name, target.Type(), val.Type())
		}
		//
		target.Set(val)
		//
		return p.validate()
	}
	// Fixed-capacity array
	var (
		kind     = val.Kind()
		capacity = target.Len()
	)
	//
	if (kind != reflect.Slice && kind != reflect.Array) || val.Type().Elem() != target.Type().Elem() {
		return fmt.Errorf("field \"%s\" has type [%d]%s (got %s)", p.name, capacity, target.Type().Elem(), val.Type())
	} else if val.Len() > capacity {
		return &CapacityError{p.name, uint(capacity), uint(val.Len())}
	}
	//
	for i := 0; i < capacity; i++ {
		if i < val.Len() {
			target.Index(i).Set(val.Index(i))
		} else {
			target.Index(i).SetZero()
		}
	}
	//
	return p.validate()
}

// Check the value held by this entry, for members which restrict the values of
// their type (see Validator).
func (p Entry) validate() error {
	if v, ok := p.member.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}
	//
	return nil
}

// Addressable storage behind this entry.
func (p Entry) target() reflect.Value {
	var val = reflect.ValueOf(p.storage)
	//
	if val.Kind() == reflect.Pointer {
		return val.Elem()
	}
	//
	return val
}

// ============================================================================
// Members
// ============================================================================

// Members is the ordered field declaration of a composite value.  This is the
// single source of truth for the order of fields: encoding, decoding,
// emptiness, keyed construction and debug rendering are all derived from it.
type Members []Entry

// ToFields returns the concatenated field encoding of every entry, in order.
func (p Members) ToFields() []field.Element {
	return SerializeToFields(p.serializables()...)
}

// ToBuffer returns the concatenated byte encoding of every entry, in order.
func (p Members) ToBuffer() []byte {
	return SerializeToBuffer(p.serializables()...)
}

// WriteTo appends every entry, in order, to a given field writer.
func (p Members) WriteTo(writer *FieldWriter) *FieldWriter {
	return writer.Write(p.serializables()...)
}

// FromFields decodes every entry, in order, from a field reader.
func (p Members) FromFields(reader *FieldReader) error {
	for _, e := range p {
		if err := e.member.FromFields(reader); err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
	}
	//
	return nil
}

// FromBuffer decodes every entry, in order, from a buffer reader.
func (p Members) FromBuffer(reader *BufferReader) error {
	for _, e := range p {
		if err := e.member.FromBuffer(reader); err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
	}
	//
	return nil
}

// Validate checks every entry whose member restricts the values of its type,
// returning the first failure.
func (p Members) Validate() error {
	for _, e := range p {
		if err := e.validate(); err != nil {
			return err
		}
	}
	//
	return nil
}

// IsEmpty holds iff every entry is empty.
func (p Members) IsEmpty() bool {
	for _, e := range p {
		if !e.member.IsEmpty() {
			return false
		}
	}
	//
	return true
}

// Lookup returns the entry with the given name, if it exists.
func (p Members) Lookup(name string) (Entry, bool) {
	for _, e := range p {
		if e.name == name {
			return e, true
		}
	}
	//
	return Entry{}, false
}

// Assign sets every entry from a map of field names to values.  Every declared
// field must be given, and no other.  On error, some entries may already have
// been assigned.
func (p Members) Assign(values map[string]any) error {
	for name := range values {
		if _, ok := p.Lookup(name); !ok {
			return &UnknownFieldError{name}
		}
	}
	//
	for _, e := range p {
		if val, ok := values[e.name]; !ok {
			return &MissingFieldError{e.name}
		} else if err := e.Assign(val); err != nil {
			return err
		}
	}
	//
	return nil
}

// Inline renders the entries on a single line, as in "Name { a: 1, b: 2 }".
func (p Members) Inline(name string) string {
	var builder strings.Builder
	//
	builder.WriteString(name)
	builder.WriteString(" {")
	//
	for i, e := range p {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf(" %s: %s", e.name, e.member.String()))
	}
	//
	builder.WriteString(" }")
	//
	return builder.String()
}

// Pretty renders the entries one per line.
func (p Members) Pretty(name string) string {
	var builder strings.Builder
	//
	builder.WriteString(name)
	builder.WriteString(" {\n")
	//
	for _, e := range p {
		builder.WriteString(fmt.Sprintf("  %s: %s,\n", e.name, e.member.String()))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Slot describes where an entry sits within the encodings of its enclosing
// value.
type Slot struct {
	Name        string
	FieldOffset uint
	FieldCount  uint
	ByteOffset  uint
	ByteWidth   uint
}

// Layout returns the position of every entry within both encodings.  Since
// widths are fixed per type, the layout does not depend on the values held.
func (p Members) Layout() []Slot {
	var (
		slots   = make([]Slot, len(p))
		nfields uint
		nbytes  uint
	)
	//
	for i, e := range p {
		var (
			count = uint(len(e.member.ToFields()))
			width = uint(len(e.member.ToBuffer()))
		)
		//
		slots[i] = Slot{e.name, nfields, count, nbytes, width}
		nfields += count
		nbytes += width
	}
	//
	return slots
}

func (p Members) serializables() []Serializable {
	var values = make([]Serializable, len(p))
	//
	for i, e := range p {
		values[i] = e.member
	}
	//
	return values
}
