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
package cmd

import (
	"bytes"
	"fmt"

	"github.com/consensys/go-publicinputs/pkg/circuit"
	"github.com/consensys/go-publicinputs/pkg/serialize"
	"gopkg.in/yaml.v3"
)

// ParseYamlRecord constructs a record from a YAML mapping keyed by declared
// field name.  Every declared field must be present, and unknown keys are
// rejected at every level.  Fixed-capacity arrays can
// list fewer elements than their capacity, with the remainder being empty.
func ParseYamlRecord(data []byte) (circuit.PublicCircuitPublicInputs, error) {
	var (
		doc     yaml.Node
		record  circuit.PublicCircuitPublicInputs
		members = record.Members()
		values  = make(map[string]any)
	)
	//
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return circuit.Empty(), err
	} else if len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return circuit.Empty(), fmt.Errorf("expected a mapping of field names to values")
	}
	// Mapping nodes alternate between keys and values
	for i, content := 0, doc.Content[0].Content; i+1 < len(content); i += 2 {
		var (
			name  = content[i].Value
			node  = content[i+1]
			entry serialize.Entry
			ok    bool
		)
		//
		if entry, ok = members.Lookup(name); !ok {
			return circuit.Empty(), &serialize.UnknownFieldError{Name: name}
		} else if _, ok = values[name]; ok {
			return circuit.Empty(), fmt.Errorf("line %d: duplicate field \"%s\"", content[i].Line, name)
		}
		//
		value, err := entry.DecodeWith(strictDecoder(node))
		if err != nil {
			return circuit.Empty(), fmt.Errorf("line %d: %w", node.Line, err)
		}
		//
		values[name] = value
	}
	//
	return circuit.From(values)
}

// Construct a decoder for a given value node which, unlike yaml.Node.Decode,
// rejects keys not matching any field of nested records.
func strictDecoder(node *yaml.Node) func(any) error {
	return func(out any) error {
		data, err := yaml.Marshal(node)
		if err != nil {
			return err
		}
		//
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		//
		return decoder.Decode(out)
	}
}

// RenderYamlRecord renders a record as a YAML mapping keyed by declared field
// name, in declaration order.  The result is accepted by ParseYamlRecord.
func RenderYamlRecord(record circuit.PublicCircuitPublicInputs) ([]byte, error) {
	var doc = yaml.Node{Kind: yaml.MappingNode}
	//
	for _, entry := range record.Members() {
		var key, value yaml.Node
		//
		key.SetString(entry.Name())
		//
		if err := value.Encode(entry.Value()); err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		//
		doc.Content = append(doc.Content, &key, &value)
	}
	//
	return yaml.Marshal(&doc)
}
