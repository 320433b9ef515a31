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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-publicinputs/pkg/binfile"
	"github.com/consensys/go-publicinputs/pkg/circuit"
	"github.com/consensys/go-publicinputs/pkg/field"
	"github.com/consensys/go-publicinputs/pkg/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// RecordsDir holds hand-written records in YAML.
const RecordsDir = "../../testdata/records"

// ============================================================================
// Encoding
// ============================================================================

func Test_Encoding_01(t *testing.T) {
	checkEncoding(t, circuit.Empty(), binfile.BUFFER)
	checkEncoding(t, circuit.Empty(), binfile.FIELDS)
}

func Test_Encoding_02(t *testing.T) {
	checkEncoding(t, circuit.MakePublicCircuitPublicInputs(1), binfile.BUFFER)
	checkEncoding(t, circuit.MakePublicCircuitPublicInputs(2), binfile.FIELDS)
}

func Test_Encoding_03(t *testing.T) {
	record := circuit.MakePublicCircuitPublicInputs(3)
	payload, err := encodeRecord(record, binfile.FIELDS)
	require.NoError(t, err)
	// Trailing field
	payload = append(payload, binfile.FieldsToBytes([]field.Element{field.Uint64(1)})...)
	//
	decoded, remaining, err := decodeRecord(payload, binfile.FIELDS)
	require.NoError(t, err)
	assert.Equal(t, uint(1), remaining)
	assert.True(t, decoded.Equals(record))
	// Truncated
	var uerr *serialize.UnderflowError
	//
	_, _, err = decodeRecord(payload[:100*field.BYTES], binfile.FIELDS)
	require.ErrorAs(t, err, &uerr)
}

// ============================================================================
// Files
// ============================================================================

func Test_Files_01(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "record.bin")
		record   = circuit.MakePublicCircuitPublicInputs(4)
	)
	//
	payload, err := encodeRecord(record, binfile.FIELDS)
	require.NoError(t, err)
	require.NoError(t, writeBinaryFile(filename, binfile.NewBinaryFile(binfile.FIELDS, binfile.ZSTD, payload)))
	// Format is taken from the header, not the default
	data, format, err := readPayload(filename, binfile.BUFFER, false)
	require.NoError(t, err)
	assert.Equal(t, binfile.FIELDS, format)
	assert.Equal(t, payload, data)
}

func Test_Files_02(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "record.hex")
		record   = circuit.MakePublicCircuitPublicInputs(5)
		buffer   bytes.Buffer
	)
	//
	require.NoError(t, writePayload(&buffer, record.ToBuffer(), true))
	require.NoError(t, os.WriteFile(filename, buffer.Bytes(), 0644))
	//
	data, format, err := readPayload(filename, binfile.BUFFER, true)
	require.NoError(t, err)
	assert.Equal(t, binfile.BUFFER, format)
	//
	decoded, remaining, err := decodeRecord(data, format)
	require.NoError(t, err)
	assert.Zero(t, remaining)
	assert.True(t, decoded.Equals(record))
}

func Test_Files_03(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "record.raw")
	)
	//
	require.NoError(t, os.WriteFile(filename, []byte("0xzz"), 0644))
	//
	_, _, err := readPayload(filename, binfile.BUFFER, true)
	assert.Error(t, err)
	// Raw bytes are passed through
	data, _, err := readPayload(filename, binfile.BUFFER, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("0xzz"), data)
	//
	_, _, err = readPayload(filepath.Join(dir, "missing"), binfile.BUFFER, false)
	assert.Error(t, err)
}

// ============================================================================
// YAML
// ============================================================================

func Test_Yaml_01(t *testing.T) {
	checkYaml(t, circuit.Empty())
	checkYaml(t, circuit.MakePublicCircuitPublicInputs(6))
}

func Test_Yaml_02(t *testing.T) {
	var (
		record = circuit.MakePublicCircuitPublicInputs(7)
		doc    yaml.Node
	)
	//
	data, err := RenderYamlRecord(record)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &doc))
	// Drop all but the first nullifier
	for i, content := 0, doc.Content[0].Content; i < len(content); i += 2 {
		if content[i].Value == "nullifiers" {
			content[i+1].Content = content[i+1].Content[:1]
		}
	}
	//
	data, err = yaml.Marshal(&doc)
	require.NoError(t, err)
	//
	parsed, err := ParseYamlRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record.Nullifiers[0], parsed.Nullifiers[0])
	assert.True(t, parsed.Nullifiers[1].IsEmpty())
	// Everything else is unchanged
	parsed.Nullifiers = record.Nullifiers
	assert.True(t, parsed.Equals(record))
}

func Test_Yaml_03(t *testing.T) {
	var (
		merr *serialize.MissingFieldError
		uerr *serialize.UnknownFieldError
	)
	//
	_, err := ParseYamlRecord([]byte("argsHash: \"0x01\"\n"))
	require.ErrorAs(t, err, &merr)
	//
	_, err = ParseYamlRecord([]byte("argsHash: \"0x01\"\nsomething: 1\n"))
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "something", uerr.Name)
	//
	_, err = ParseYamlRecord([]byte("argsHash: \"0x01\"\nargsHash: \"0x02\"\n"))
	assert.Error(t, err)
	//
	_, err = ParseYamlRecord([]byte("- 1\n- 2\n"))
	assert.Error(t, err)
}

func Test_Yaml_04(t *testing.T) {
	data, err := RenderYamlRecord(circuit.Empty())
	require.NoError(t, err)
	// Non-canonical field element
	data = bytes.Replace(data, []byte(field.Zero().String()), []byte("0x"+strings.Repeat("ff", field.BYTES)), 1)
	//
	_, err = ParseYamlRecord(data)
	assert.Error(t, err)
}

func Test_Yaml_05(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(RecordsDir, "nullifier_read.yaml"))
	require.NoError(t, err)
	//
	record, err := ParseYamlRecord(data)
	require.NoError(t, err)
	//
	assert.Equal(t, circuit.ReadRequest{Value: field.Uint64(0x1234), Counter: 7}, record.NullifierReadRequests[0])
	assert.True(t, record.NullifierReadRequests[1].IsEmpty())
	assert.Equal(t, circuit.FunctionSelector(0xabcd1234), record.CallContext.FunctionSelector)
	assert.Equal(t, circuit.MakeEthAddress(0xbeef), record.GlobalVariables.Coinbase)
	assert.Equal(t, uint32(12), record.HistoricalHeader.LastArchive.NextAvailableLeafIndex)
	assert.True(t, record.HistoricalHeader.State.IsEmpty())
	assert.True(t, record.RevertCode.IsOK())
	// Round trip through the field encoding
	checkEncoding(t, record, binfile.FIELDS)
}

func Test_Yaml_06(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(RecordsDir, "nullifier_read.yaml"))
	require.NoError(t, err)
	// Misspelled keys in nested records
	for _, key := range []string{"msgSender", "nextAvailableLeafIndex", "feePerL2Gas", "counter"} {
		misspelled := bytes.Replace(data, []byte(key+":"), []byte(key+"x:"), 1)
		//
		_, err = ParseYamlRecord(misspelled)
		assert.ErrorContains(t, err, key+"x", "key %s", key)
	}
}

func Test_Yaml_07(t *testing.T) {
	var rerr *serialize.RangeError
	//
	data, err := os.ReadFile(filepath.Join(RecordsDir, "nullifier_read.yaml"))
	require.NoError(t, err)
	// Undefined revert code
	_, err = ParseYamlRecord(bytes.Replace(data, []byte("revertCode: 0"), []byte("revertCode: 7"), 1))
	require.ErrorAs(t, err, &rerr)
	// Revert codes by name
	record, err := ParseYamlRecord(bytes.Replace(data, []byte("revertCode: 0"),
		[]byte("revertCode: APP_LOGIC_REVERTED"), 1))
	require.NoError(t, err)
	assert.Equal(t, circuit.REVERT_CODE_APP_LOGIC_REVERTED, record.RevertCode)
	checkYaml(t, record)
}

// ============================================================================
// Helpers
// ============================================================================

func checkEncoding(t *testing.T, record circuit.PublicCircuitPublicInputs, format binfile.Format) {
	t.Helper()
	//
	payload, err := encodeRecord(record, format)
	require.NoError(t, err)
	//
	decoded, remaining, err := decodeRecord(payload, format)
	require.NoError(t, err)
	assert.Zero(t, remaining)
	assert.True(t, decoded.Equals(record))
}

func checkYaml(t *testing.T, record circuit.PublicCircuitPublicInputs) {
	t.Helper()
	//
	data, err := RenderYamlRecord(record)
	require.NoError(t, err)
	//
	parsed, err := ParseYamlRecord(data)
	require.NoError(t, err)
	assert.True(t, parsed.Equals(record), "yaml:\n%s", string(data))
}
