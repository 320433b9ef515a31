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
	"os"

	"github.com/consensys/go-publicinputs/pkg/circuit"
	"github.com/consensys/go-publicinputs/pkg/constants"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "print the layout of a record.",
	Long: `Print the position of every declared field within both the field and byte
	 encodings, followed by the totals.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			layout = circuit.Empty().Layout()
			last   = layout[len(layout)-1]
			total  = last.FieldOffset + last.FieldCount
		)
		//
		fmt.Printf("%-34s %8s %8s %8s %8s\n", "field", "offset", "fields", "byte", "bytes")
		//
		for _, slot := range layout {
			fmt.Printf("%-34s %8d %8d %8d %8d\n", slot.Name, slot.FieldOffset, slot.FieldCount, slot.ByteOffset,
				slot.ByteWidth)
		}
		//
		fmt.Printf("%-34s %8s %8d %8s %8d\n", "total", "", total, "", last.ByteOffset+last.ByteWidth)
		//
		if total != constants.PUBLIC_CIRCUIT_PUBLIC_INPUTS_LENGTH {
			fmt.Printf("expected %d fields (PUBLIC_CIRCUIT_PUBLIC_INPUTS_LENGTH)\n",
				constants.PUBLIC_CIRCUIT_PUBLIC_INPUTS_LENGTH)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
