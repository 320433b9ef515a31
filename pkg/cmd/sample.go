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

var sampleCmd = &cobra.Command{
	Use:   "sample [flags]",
	Short: "emit a deterministic sample record.",
	Long: `Emit the encoding of a sample record, in which every array is filled to
	 capacity with values derived from a given seed.  Distinct seeds give distinct
	 records.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		seed := GetUint(cmd, "seed")
		//
		writeRecord(cmd, circuit.MakePublicCircuitPublicInputs(uint64(seed)))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().StringP("output", "o", "", "write a binary file rather than to stdout.")
	sampleCmd.Flags().Uint("seed", 0, "seed from which values are derived.")
}
