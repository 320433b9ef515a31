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
	"github.com/consensys/go-publicinputs/pkg/circuit"
	"github.com/spf13/cobra"
)

var emptyCmd = &cobra.Command{
	Use:   "empty [flags]",
	Short: "emit the empty record.",
	Long:  `Emit the encoding of the empty record, in which every field is zero.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeRecord(cmd, circuit.Empty())
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(emptyCmd)
	emptyCmd.Flags().StringP("output", "o", "", "write a binary file rather than to stdout.")
}
