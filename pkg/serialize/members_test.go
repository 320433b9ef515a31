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
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/consensys/go-publicinputs/pkg/field"
)

// pair is a minimal composite used for testing.
type pair struct {
	left  uint32
	right field.Element
}

func (p *pair) members() Members {
	return Members{
		Uint32("left", &p.left),
		Scalar("right", &p.right),
	}
}

func (p pair) ToFields() []field.Element { return p.members().ToFields() }
func (p pair) ToBuffer() []byte { return p.members().ToBuffer() }
func (p *pair) FromFields(reader *FieldReader) error { return p.members().FromFields(reader) }
func (p *pair) FromBuffer(reader *BufferReader) error { return p.members().FromBuffer(reader) }
func (p pair) IsEmpty() bool { return p.members().IsEmpty() }
func (p pair) String() string { return p.members().Inline("Pair") }

// holder is a record with scalars, a nested composite and a fixed-capacity
// array.
type holder struct {
	flag   bool
	first  pair
	pairs  [4]pair
	digest field.Element
}

func (p *holder) members() Members {
	return Members{
		Bool("flag", &p.flag),
		Object("first", &p.first),
		Array("pairs", p.pairs[:]),
		Scalar("digest", &p.digest),
	}
}

func Test_Members_Empty(t *testing.T) {
	var h holder
	//
	if !h.members().IsEmpty() {
		t.Errorf("zero value is not empty")
	}
	//
	if len(h.members().ToFields()) != 1+2+4*2+1 {
		t.Errorf("unexpected field count %d", len(h.members().ToFields()))
	}
	//
	if len(h.members().ToBuffer()) != 1+36+4*36+32 {
		t.Errorf("unexpected byte width %d", len(h.members().ToBuffer()))
	}
}

func Test_Members_Emptiness(t *testing.T) {
	for i := 0; i < 4; i++ {
		var h holder
		// One non-empty slot makes the whole thing non-empty
		h.pairs[i].left = 1
		//
		if h.members().IsEmpty() {
			t.Errorf("holder with non-empty slot %d is empty", i)
		}
	}
	//
	var h holder
	//
	h.flag = true
	//
	if h.members().IsEmpty() {
		t.Errorf("holder with flag set is empty")
	}
}

func Test_Members_RoundTrip_00(t *testing.T) {
	var h1, h2 holder
	//
	h1.flag = true
	h1.first = pair{3, field.Uint64(4)}
	h1.pairs[2] = pair{5, field.Uint64(6)}
	h1.digest = field.Uint64(99)
	//
	if err := h2.members().FromFields(NewFieldReader(h1.members().ToFields())); err != nil {
		t.Fatal(err)
	} else if h1 != h2 {
		t.Errorf("field round trip failed")
	}
}

func Test_Members_RoundTrip_01(t *testing.T) {
	var h1, h2 holder
	//
	h1.first = pair{1 << 31, field.Uint64(4)}
	h1.pairs[3] = pair{7, field.Uint64(8)}
	//
	if err := h2.members().FromBuffer(NewBufferReader(h1.members().ToBuffer())); err != nil {
		t.Fatal(err)
	} else if h1 != h2 {
		t.Errorf("buffer round trip failed")
	}
}

func Test_Members_Order(t *testing.T) {
	var (
		h  holder
		ms Members
	)
	//
	h.first = pair{1, field.Uint64(2)}
	h.digest = field.Uint64(3)
	ms = h.members()
	// Encoding follows declaration order exactly
	checkFields(t, ms.ToFields(), 0, 1, 2, 0, 0, 0, 0, 0, 0, 0, 0, 3)
	// Swap declaration order of first and digest
	ms[1], ms[3] = ms[3], ms[1]
	//
	checkFields(t, ms.ToFields(), 0, 3, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2)
}

func Test_Members_Underflow(t *testing.T) {
	var h1, h2 holder
	//
	h1.digest = field.Uint64(1)
	fields := h1.members().ToFields()
	//
	for n := 0; n < len(fields); n++ {
		var uerr *UnderflowError
		//
		if err := h2.members().FromFields(NewFieldReader(fields[:n])); !errors.As(err, &uerr) {
			t.Errorf("expected underflow for %d fields, got %v", n, err)
		}
	}
}

func Test_Members_Layout(t *testing.T) {
	var (
		h      holder
		layout = h.members().Layout()
		names  []string
	)
	//
	for _, s := range layout {
		names = append(names, s.Name)
	}
	//
	if !slices.Equal(names, []string{"flag", "first", "pairs", "digest"}) {
		t.Errorf("unexpected layout names %v", names)
	}
	//
	if layout[3].FieldOffset != 11 || layout[3].ByteOffset != 181 || layout[2].FieldCount != 8 {
		t.Errorf("unexpected layout %v", layout)
	}
}

func Test_Members_Assign_00(t *testing.T) {
	var h holder
	//
	err := h.members().Assign(map[string]any{
		"flag":   true,
		"first":  pair{1, field.Uint64(2)},
		"pairs":  []pair{{3, field.Uint64(4)}},
		"digest": field.Uint64(5),
	})
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !h.flag || h.first.left != 1 || h.pairs[0].left != 3 || !h.pairs[1].IsEmpty() || !h.digest.Equals(field.Uint64(5)) {
		t.Errorf("keyed construction failed: %s", h.members().Pretty("Holder"))
	}
}

func Test_Members_Assign_01(t *testing.T) {
	var (
		h      holder
		values = map[string]any{"flag": true, "first": pair{}, "pairs": [4]pair{}, "digest": field.Zero()}
		merr   *MissingFieldError
		uerr   *UnknownFieldError
		cerr   *CapacityError
	)
	//
	if err := h.members().Assign(values); err != nil {
		t.Fatal(err)
	}
	// Missing field
	delete(values, "digest")
	//
	if err := h.members().Assign(values); !errors.As(err, &merr) || merr.Name != "digest" {
		t.Errorf("expected missing field error, got %v", err)
	}
	// Unknown field
	values["digest"] = field.Zero()
	values["other"] = 1
	//
	if err := h.members().Assign(values); !errors.As(err, &uerr) || uerr.Name != "other" {
		t.Errorf("expected unknown field error, got %v", err)
	}
	// Too many elements
	delete(values, "other")
	values["pairs"] = make([]pair, 5)
	//
	if err := h.members().Assign(values); !errors.As(err, &cerr) || cerr.Capacity != 4 {
		t.Errorf("expected capacity error, got %v", err)
	}
	// Wrong type
	values["pairs"] = [4]pair{}
	values["flag"] = 1
	//
	if err := h.members().Assign(values); err == nil {
		t.Errorf("expected type error")
	}
}

func Test_Members_DecodeWith(t *testing.T) {
	var (
		h       holder
		entry   = h.members()[2]
		decoder = func(ptr any) error {
			if pairs, ok := ptr.(*[]pair); ok {
				*pairs = append(*pairs, pair{7, field.Uint64(8)})
				return nil
			}
			//
			return fmt.Errorf("unexpected destination %T", ptr)
		}
	)
	//
	value, err := entry.DecodeWith(decoder)
	if err != nil {
		t.Fatal(err)
	} else if err = entry.Assign(value); err != nil {
		t.Fatal(err)
	} else if h.pairs[0].left != 7 || !h.pairs[1].IsEmpty() {
		t.Errorf("unexpected pairs %v", h.pairs)
	}
	// Decoder errors are attributed to the entry
	if _, err = h.members()[0].DecodeWith(decoder); err == nil || !strings.HasPrefix(err.Error(), "flag: ") {
		t.Errorf("expected decoding error, got %v", err)
	}
}

// bounded is a u32 restricted to values below 10.
type bounded uint32

func (p bounded) ToFields() []field.Element { return Uint32Of((*uint32)(&p)).ToFields() }
func (p bounded) ToBuffer() []byte { return Uint32Of((*uint32)(&p)).ToBuffer() }
func (p *bounded) FromFields(reader *FieldReader) error { return Uint32Of((*uint32)(p)).FromFields(reader) }
func (p *bounded) FromBuffer(reader *BufferReader) error { return Uint32Of((*uint32)(p)).FromBuffer(reader) }
func (p bounded) IsEmpty() bool { return p == 0 }
func (p bounded) String() string { return fmt.Sprintf("%d", uint32(p)) }

func (p bounded) Validate() error {
	if p >= 10 {
		return &RangeError{Target: "bounded", Value: p.String()}
	}
	//
	return nil
}

func Test_Members_Validate(t *testing.T) {
	var (
		level   bounded
		digest  field.Element
		members = Members{Object("level", &level), Scalar("digest", &digest)}
		rerr    *RangeError
	)
	//
	if err := members.Assign(map[string]any{"level": bounded(9), "digest": field.Zero()}); err != nil {
		t.Fatal(err)
	} else if err := members.Validate(); err != nil {
		t.Errorf("unexpected error %v", err)
	} else if members[0].Value() != bounded(9) {
		t.Errorf("unexpected value %v", members[0].Value())
	}
	// Rejected on assignment
	err := members.Assign(map[string]any{"level": bounded(10), "digest": field.Zero()})
	//
	if !errors.As(err, &rerr) || !strings.HasPrefix(err.Error(), "level: ") {
		t.Errorf("expected range error, got %v", err)
	}
	// Rejected when set directly
	level = 11
	//
	if err := members.Validate(); !errors.As(err, &rerr) {
		t.Errorf("expected range error, got %v", err)
	}
}

func Test_Members_String(t *testing.T) {
	var h holder
	//
	h.pairs[1] = pair{1, field.Uint64(2)}
	//
	expected := "Holder {\n" +
		"  flag: false,\n" +
		"  first: Pair { left: 0, right: " + field.Zero().String() + " },\n" +
		"  pairs: [Pair { left: 1, right: " + field.Uint64(2).String() + " }],\n" +
		"  digest: " + field.Zero().String() + ",\n" +
		"}"
	//
	if actual := h.members().Pretty("Holder"); actual != expected {
		t.Errorf("unexpected rendering:\n%s", actual)
	}
}

func Test_MakeTuple(t *testing.T) {
	var h holder
	//
	MakeTuple(h.pairs[:], func(i int) pair { return pair{uint32(i + 1), field.Uint64(uint64(i))} })
	//
	if IsEmptyArray[pair](h.pairs[:]) {
		t.Errorf("filled array is empty")
	}
	//
	for i, p := range h.pairs {
		if p.left != uint32(i+1) {
			t.Errorf("unexpected element %s at %d", p.String(), i)
		}
	}
}

func checkFields(t *testing.T, actual []field.Element, expected ...uint64) {
	if len(actual) != len(expected) {
		t.Fatalf("unexpected field count %d (expected %d)", len(actual), len(expected))
	}
	//
	for i := range actual {
		if !actual[i].Equals(field.Uint64(expected[i])) {
			t.Errorf("field %d is %s (expected %d)", i, actual[i].Text(10), expected[i])
		}
	}
}
