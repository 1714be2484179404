package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"CircuitABI/modules/abis"
	"CircuitABI/modules/pedersen"
	"CircuitABI/modules/serialize"
	"CircuitABI/modules/types"
)

func init() {
	abiCmd.AddCommand(hashCmd)
}

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Compute the canonical Pedersen hash of a serialized structure",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		HashImpl()
	},
}

func HashImpl() {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		panic(err.Error())
	}

	engine := pedersen.NewEngine()
	println("Building generator table...")
	if err := engine.Init(); err != nil {
		panic(err.Error())
	}
	native := types.NewNativeContext(engine)

	reader := serialize.NewReader(data)
	hash, err := hashStructure(reader, native)
	if err != nil {
		panic(err.Error())
	}
	if reader.Remaining() != 0 {
		panic(fmt.Sprintf("%d trailing bytes after structure", reader.Remaining()))
	}

	fmt.Printf("%s hash: 0x%s\n", structureKind, hash.Text(16))
}

func hashStructure(r *serialize.Reader, native *types.NativeContext) (types.Scalar, error) {
	switch structureKind {
	case "function-signature":
		s, err := abis.ReadFunctionSignature(r)
		if err != nil {
			return types.Scalar{}, err
		}
		return s.Hash(native)
	case "call-context":
		s, err := abis.ReadCallContext(r)
		if err != nil {
			return types.Scalar{}, err
		}
		return s.Hash(native)
	case "state-transition":
		s, err := abis.ReadStateTransition(r)
		if err != nil {
			return types.Scalar{}, err
		}
		return s.Hash(native)
	case "state-read":
		s, err := abis.ReadStateRead(r)
		if err != nil {
			return types.Scalar{}, err
		}
		return s.Hash(native)
	case "public-circuit-public-inputs":
		s, err := abis.ReadPublicCircuitPublicInputs(r)
		if err != nil {
			return types.Scalar{}, err
		}
		return s.Hash(native)
	default:
		return types.Scalar{}, fmt.Errorf(`unknown structure kind "%s"`, structureKind)
	}
}
