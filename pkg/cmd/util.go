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
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-publicinputs/pkg/binfile"
	"github.com/consensys/go-publicinputs/pkg/circuit"
	"github.com/consensys/go-publicinputs/pkg/serialize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetFormat gets the selected encoding, or exits if it is not recognised.
func GetFormat(cmd *cobra.Command) binfile.Format {
	format, err := binfile.ParseFormat(GetString(cmd, "format"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return format
}

// Report an error and exit.
func fatal(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// Encode a record using a given format.  For the field encoding, the resulting
// vector is flattened into consecutive 32-byte elements.
func encodeRecord(record circuit.PublicCircuitPublicInputs, format binfile.Format) ([]byte, error) {
	switch format {
	case binfile.BUFFER:
		return record.ToBuffer(), nil
	case binfile.FIELDS:
		fields, err := record.ToFields()
		if err != nil {
			return nil, err
		}
		//
		return binfile.FieldsToBytes(fields), nil
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
}

// Decode a record using a given format, returning also the amount of trailing
// data (in bytes or fields, respectively) which was not consumed.
func decodeRecord(payload []byte, format binfile.Format) (circuit.PublicCircuitPublicInputs, uint, error) {
	switch format {
	case binfile.BUFFER:
		reader := serialize.NewBufferReader(payload)
		record, err := circuit.ReadFromBuffer(reader)
		//
		return record, reader.Remaining(), err
	case binfile.FIELDS:
		fields, err := binfile.BytesToFields(payload)
		if err != nil {
			return circuit.Empty(), 0, err
		}
		//
		reader := serialize.NewFieldReader(fields)
		record, err := circuit.ReadFromFields(reader)
		//
		return record, reader.Remaining(), err
	default:
		return circuit.Empty(), 0, fmt.Errorf("unsupported format %s", format)
	}
}

// Write an encoded record as directed by the command line flags.  When an
// output file is given, a binary file (with header) is written.  Otherwise, the
// raw encoding is written to stdout, in hex when requested or when stdout is a
// terminal.
func writeRecord(cmd *cobra.Command, record circuit.PublicCircuitPublicInputs) {
	var (
		format      = GetFormat(cmd)
		output      = GetString(cmd, "output")
		asHex       = GetFlag(cmd, "hex") || term.IsTerminal(int(os.Stdout.Fd()))
		compression = binfile.NONE
	)
	//
	if GetFlag(cmd, "zstd") {
		compression = binfile.ZSTD
	}
	//
	payload, err := encodeRecord(record, format)
	if err != nil {
		fatal(err)
	}
	//
	log.Debugf("encoded %d bytes as %s (blake3 %s)", len(payload), format, binfile.DigestOf(payload))
	//
	if output != "" {
		err = writeBinaryFile(output, binfile.NewBinaryFile(format, compression, payload))
	} else {
		err = writePayload(os.Stdout, payload, asHex)
	}
	//
	if err != nil {
		fatal(err)
	}
}

// Write a binary file to disk.
func writeBinaryFile(filename string, binf *binfile.BinaryFile) error {
	bytes, err := binf.MarshalBinary()
	if err != nil {
		return err
	}
	//
	log.Debugf("writing %s (%d bytes)", filename, len(bytes))
	//
	return os.WriteFile(filename, bytes, 0644)
}

// Write a raw payload, optionally in hex.
func writePayload(out io.Writer, payload []byte, asHex bool) error {
	var err error
	//
	if asHex {
		_, err = fmt.Fprintf(out, "0x%s\n", hex.EncodeToString(payload))
	} else {
		_, err = out.Write(payload)
	}
	//
	return err
}

// Read an encoded record from a given file ("-" for stdin).  Binary files are
// recognised by their header, which also determines their format.  Otherwise,
// the contents are taken as a raw encoding in the given format, in hex when
// requested.
func readPayload(filename string, format binfile.Format, asHex bool) ([]byte, binfile.Format, error) {
	var (
		data []byte
		err  error
	)
	//
	if filename == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(filename)
	}
	//
	if err != nil {
		return nil, format, err
	} else if binfile.IsBinaryFile(data) {
		var binf binfile.BinaryFile
		//
		if err := binf.UnmarshalBinary(data); err != nil {
			return nil, format, fmt.Errorf("%s: %w", filename, err)
		}
		//
		log.Debugf("read binary file v%d.%d (%s, blake3 %s)", binf.Header.MajorVersion, binf.Header.MinorVersion,
			binf.Header.Format, binf.Header.Digest)
		//
		return binf.Payload, binf.Header.Format, nil
	} else if asHex {
		text := strings.TrimPrefix(strings.TrimSpace(string(data)), "0x")
		//
		if data, err = hex.DecodeString(text); err != nil {
			return nil, format, fmt.Errorf("%s: %w", filename, err)
		}
	}
	//
	return data, format, nil
}
