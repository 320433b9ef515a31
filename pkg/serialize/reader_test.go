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
	"errors"
	"testing"

	"github.com/consensys/go-publicinputs/pkg/field"
)

func Test_BufferReader_00(t *testing.T) {
	var (
		bytes  = []byte{0, 0, 0, 7, 1, 0xff}
		reader = NewBufferReader(bytes)
	)
	//
	checkUint32(t, reader, 7)
	checkBool(t, reader, true)
	checkRemaining(t, reader, 1)
	// Last byte is not a bool
	if _, err := reader.ReadBool(); !isRangeError(err) {
		t.Errorf("expected range error, got %v", err)
	}
	//
	checkRemaining(t, reader, 0)
}

func Test_BufferReader_01(t *testing.T) {
	var reader = NewBufferReader([]byte{1, 2, 3})
	//
	checkBufferUnderflow(t, reader, 4, 3)
	// A failed read does not advance the cursor
	checkRemaining(t, reader, 3)
	//
	if _, err := reader.ReadBytes(3); err != nil {
		t.Fatal(err)
	}
	//
	checkBufferUnderflow(t, reader, 1, 0)
}

func Test_BufferReader_02(t *testing.T) {
	var (
		elem   = field.Uint64(123456789)
		bytes  = elem.Bytes()
		reader = NewBufferReader(bytes[:])
	)
	//
	if val, err := reader.ReadField(); err != nil {
		t.Fatal(err)
	} else if !val.Equals(elem) {
		t.Errorf("read %s (expected %s)", val.String(), elem.String())
	}
	//
	if reader.Offset() != field.BYTES {
		t.Errorf("offset is %d (expected %d)", reader.Offset(), field.BYTES)
	}
	// Field is partial
	reader = NewBufferReader(bytes[1:])
	//
	checkBufferUnderflow(t, reader, field.BYTES, field.BYTES-1)
}

func Test_BufferReader_03(t *testing.T) {
	var bytes [field.BYTES]byte
	// All ones exceeds the modulus
	for i := range bytes {
		bytes[i] = 0xff
	}
	//
	if _, err := NewBufferReader(bytes[:]).ReadField(); !errors.Is(err, field.ErrNonCanonical) {
		t.Errorf("expected non-canonical error, got %v", err)
	}
}

func Test_FieldReader_00(t *testing.T) {
	var reader = NewFieldReader(fields(5, 1, 0, 1<<32))
	//
	checkUint32(t, reader, 5)
	checkBool(t, reader, true)
	checkBool(t, reader, false)
	//
	if _, err := reader.ReadUint32(); !isRangeError(err) {
		t.Errorf("expected range error, got %v", err)
	}
	//
	checkRemaining(t, reader, 0)
}

func Test_FieldReader_01(t *testing.T) {
	var reader = NewFieldReader(fields(1, 2, 3))
	//
	if vals, err := reader.ReadFields(2); err != nil {
		t.Fatal(err)
	} else if !vals[0].Equals(field.Uint64(1)) || !vals[1].Equals(field.Uint64(2)) {
		t.Errorf("unexpected fields %v", vals)
	}
	//
	checkFieldUnderflow(t, reader, 2, 1)
	checkRemaining(t, reader, 1)
	//
	if reader.Offset() != 2 {
		t.Errorf("offset is %d (expected 2)", reader.Offset())
	}
}

func Test_FieldReader_02(t *testing.T) {
	var reader = NewFieldReader(fields(2))
	//
	if _, err := reader.ReadBool(); !isRangeError(err) {
		t.Errorf("expected range error, got %v", err)
	}
	//
	if _, err := reader.ReadField(); !isUnderflowError(err) {
		t.Errorf("expected underflow error, got %v", err)
	}
}

func Test_ReadArray_00(t *testing.T) {
	var (
		reader = NewFieldReader(fields(1, 2, 3, 4, 5, 6))
		pairs  []pair
		err    error
	)
	//
	if pairs, err = ReadArray[pair](reader, 3); err != nil {
		t.Fatal(err)
	}
	//
	for i, p := range pairs {
		if p.left != uint32(2*i+1) || !p.right.Equals(field.Uint64(uint64(2*i+2))) {
			t.Errorf("unexpected pair %s at %d", p.String(), i)
		}
	}
}

func Test_ReadArray_01(t *testing.T) {
	var reader = NewFieldReader(fields(1, 2, 3, 4, 5))
	// Runs out mid-array
	if pairs, err := ReadArray[pair](reader, 3); !isUnderflowError(err) {
		t.Errorf("expected underflow error, got %v", err)
	} else if pairs != nil {
		t.Errorf("expected no partial array")
	}
}

func Test_ReadObject_00(t *testing.T) {
	var (
		expected = pair{9, field.Uint64(10)}
		reader   = NewBufferReader(expected.ToBuffer())
	)
	//
	if p, err := ReadObject[pair](reader); err != nil {
		t.Fatal(err)
	} else if p != expected {
		t.Errorf("read %s (expected %s)", p.String(), expected.String())
	}
	// Exhausted
	if p, err := ReadObject[pair](reader); !isUnderflowError(err) {
		t.Errorf("expected underflow error, got %v", err)
	} else if !p.IsEmpty() {
		t.Errorf("expected empty value on failure, got %s", p.String())
	}
}

func fields(vals ...uint64) []field.Element {
	var elems = make([]field.Element, len(vals))
	//
	for i, v := range vals {
		elems[i] = field.Uint64(v)
	}
	//
	return elems
}

type uintReader interface {
	ReadUint32() (uint32, error)
	ReadBool() (bool, error)
	Remaining() uint
}

func checkUint32(t *testing.T, reader uintReader, expected uint32) {
	if val, err := reader.ReadUint32(); err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if val != expected {
		t.Errorf("read %d (expected %d)", val, expected)
	}
}

func checkBool(t *testing.T, reader uintReader, expected bool) {
	if val, err := reader.ReadBool(); err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if val != expected {
		t.Errorf("read %t (expected %t)", val, expected)
	}
}

func checkRemaining(t *testing.T, reader uintReader, expected uint) {
	if reader.Remaining() != expected {
		t.Errorf("remaining is %d (expected %d)", reader.Remaining(), expected)
	}
}

func checkBufferUnderflow(t *testing.T, reader *BufferReader, requested, remaining uint) {
	var uerr *UnderflowError
	//
	if _, err := reader.ReadBytes(requested); !errors.As(err, &uerr) {
		t.Errorf("expected underflow error, got %v", err)
	} else if uerr.Requested != requested || uerr.Remaining != remaining || uerr.Source != "buffer" {
		t.Errorf("unexpected underflow error: %v", uerr)
	}
}

func checkFieldUnderflow(t *testing.T, reader *FieldReader, requested, remaining uint) {
	var uerr *UnderflowError
	//
	if _, err := reader.ReadFields(requested); !errors.As(err, &uerr) {
		t.Errorf("expected underflow error, got %v", err)
	} else if uerr.Requested != requested || uerr.Remaining != remaining || uerr.Source != "fields" {
		t.Errorf("unexpected underflow error: %v", uerr)
	}
}

func isUnderflowError(err error) bool {
	var uerr *UnderflowError
	return errors.As(err, &uerr)
}

func isRangeError(err error) bool {
	var rerr *RangeError
	return errors.As(err, &rerr)
}
