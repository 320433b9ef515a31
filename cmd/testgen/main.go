package main

import (
	"fmt"
	"os"
	"path"

	"github.com/consensys/go-publicinputs/pkg/binfile"
	"github.com/consensys/go-publicinputs/pkg/circuit"
	util "github.com/consensys/go-publicinputs/pkg/cmd"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("min-seed", 0, "Minimum seed")
	rootCmd.Flags().Uint("max-seed", 4, "Maximum seed")
	rootCmd.Flags().String("dir", "testdata", "Directory to write into")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Test fixture generation utility for publicinputs.",
	Long: `Generate test fixtures, each consisting of a record in YAML along with its
	 encodings (as binary files).  The empty record is always included, followed by
	 the sample record for each seed in the given range.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			minSeed = util.GetUint(cmd, "min-seed")
			maxSeed = util.GetUint(cmd, "max-seed")
			dir     = util.GetString(cmd, "dir")
		)
		//
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		writeFixture(dir, "empty", circuit.Empty())
		//
		for seed := minSeed; seed <= maxSeed; seed++ {
			writeFixture(dir, fmt.Sprintf("sample_%d", seed), circuit.MakePublicCircuitPublicInputs(uint64(seed)))
		}
	},
}

// Write a single fixture as a YAML file, a buffer binary file and a (zstd
// compressed) fields binary file.
func writeFixture(dir string, name string, record circuit.PublicCircuitPublicInputs) {
	text, err := util.RenderYamlRecord(record)
	if err != nil {
		panic(err)
	}
	//
	fields, err := record.ToFields()
	if err != nil {
		panic(err)
	}
	//
	writeFile(path.Join(dir, name+".yaml"), text)
	writeBinaryFile(path.Join(dir, name+".buffer.bin"), binfile.NewBinaryFile(binfile.BUFFER, binfile.NONE,
		record.ToBuffer()))
	writeBinaryFile(path.Join(dir, name+".fields.bin"), binfile.NewBinaryFile(binfile.FIELDS, binfile.ZSTD,
		binfile.FieldsToBytes(fields)))
}

func writeBinaryFile(filename string, binf *binfile.BinaryFile) {
	bytes, err := binf.MarshalBinary()
	if err != nil {
		panic(err)
	}
	//
	log.Infof("%s: blake3 %s", filename, binf.Header.Digest)
	writeFile(filename, bytes)
}

func writeFile(filename string, bytes []byte) {
	if err := os.WriteFile(filename, bytes, 0644); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}
