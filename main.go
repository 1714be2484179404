package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	structureKind string
	inputFile     string
)

var abiCmd = &cobra.Command{
	Use:   "circuit-abi",
	Short: "Hash, serialize and prove circuit public-input structures",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

func init() {
	abiCmd.PersistentFlags().StringVar(&structureKind, "kind", "function-signature",
		"The ABI structure kind - one of function-signature/call-context/state-transition/state-read/public-circuit-public-inputs.")
	abiCmd.PersistentFlags().StringVar(&inputFile, "input", "",
		"The file holding a canonically serialized native structure.")
}

func main() {
	if err := abiCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
