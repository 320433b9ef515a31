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
	"os"

	"github.com/consensys/go-publicinputs/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] record_file",
	Short: "encode a record given in YAML.",
	Long: `Encode a record given as a YAML mapping from field names to values.  Every
	 field must be given, though fixed-capacity arrays may list fewer elements than
	 their capacity.  Field elements are written as decimal or 0x-prefixed hex
	 strings.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stats := util.NewPerfStats()
		//
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			fatal(err)
		}
		//
		record, err := ParseYamlRecord(bytes)
		if err != nil {
			fatal(err)
		} else if record.IsEmpty() {
			log.Infof("%s holds the empty record", args[0])
		}
		//
		writeRecord(cmd, record)
		stats.Log("Encoding record")
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("output", "o", "", "write a binary file rather than to stdout.")
}
