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
	"fmt"

	"github.com/consensys/go-publicinputs/pkg/binfile"
	"github.com/consensys/go-publicinputs/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] encoded_file",
	Short: "decode and print an encoded record.",
	Long: `Decode a record from either a binary file, or a raw encoding in the given
	 format ("-" reads from stdin).  Data following the record is reported, and is
	 an error in strict mode.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			stats  = util.NewPerfStats()
			strict = GetFlag(cmd, "strict")
		)
		//
		payload, format, err := readPayload(args[0], GetFormat(cmd), GetFlag(cmd, "hex"))
		if err != nil {
			fatal(err)
		}
		//
		record, remaining, err := decodeRecord(payload, format)
		if err != nil {
			fatal(err)
		} else if remaining != 0 && strict {
			fatal(fmt.Errorf("%s: %d trailing %s after record", args[0], remaining, units(format)))
		} else if remaining != 0 {
			log.Warnf("%s: ignoring %d trailing %s after record", args[0], remaining, units(format))
		}
		//
		stats.Log("Decoding record")
		//
		if GetFlag(cmd, "yaml") {
			bytes, err := RenderYamlRecord(record)
			if err != nil {
				fatal(err)
			}
			//
			fmt.Print(string(bytes))
		} else {
			fmt.Println(record.String())
		}
	},
}

func units(format binfile.Format) string {
	if format == binfile.FIELDS {
		return "fields"
	}
	//
	return "bytes"
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().Bool("strict", false, "treat trailing data as an error.")
	decodeCmd.Flags().Bool("yaml", false, "print the record as YAML (as accepted by encode).")
}
