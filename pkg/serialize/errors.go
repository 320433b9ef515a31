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

import "fmt"

// UnderflowError arises when a reader is asked for more bytes (or fields) than
// remain in its source.
type UnderflowError struct {
	// Source identifies the kind of reader ("buffer" or "fields").
	Source string
	// Requested number of bytes (or fields).
	Requested uint
	// Remaining number of bytes (or fields) at the point of the read.
	Remaining uint
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("%s underflow: requested %d, but only %d remaining", e.Source, e.Requested, e.Remaining)
}

// LengthMismatchError arises when the field encoding of a value does not have
// the length declared for its type.  This indicates the declared field list and
// the declared length have drifted apart.
type LengthMismatchError struct {
	// Type whose encoding was produced.
	Type string
	// Expected number of fields.
	Expected uint
	// Actual number of fields produced.
	Actual uint
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("invalid number of fields for %s: expected %d, got %d", e.Type, e.Expected, e.Actual)
}

// RangeError arises when a decoded value cannot be narrowed to its target type
// (e.g. a field element holding a value larger than 32 bits read as a u32).
type RangeError struct {
	// Target type being decoded.
	Target string
	// Value which was out of range.
	Value string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %s out of range for %s", e.Value, e.Target)
}

// CapacityError arises when assigning more elements to a fixed-capacity array
// than it can hold.
type CapacityError struct {
	Name     string
	Capacity uint
	Actual   uint
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("too many elements for %s: capacity %d, got %d", e.Name, e.Capacity, e.Actual)
}

// MissingFieldError arises when keyed construction is missing a declared
// field.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field \"%s\"", e.Name)
}

// UnknownFieldError arises when keyed construction names a field which is not
// declared.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field \"%s\"", e.Name)
}
