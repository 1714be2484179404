package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/spf13/cobra"

	"CircuitABI/modules/pedersen"
)

var (
	compressInputs []string
	compressIndex  uint32
	commitInstead  bool
)

func init() {
	abiCmd.AddCommand(compressCmd)
	compressCmd.PersistentFlags().StringSliceVar(&compressInputs, "inputs", nil,
		"The field elements to compress, as 32-byte big-endian hex strings.")
	compressCmd.PersistentFlags().Uint32Var(&compressIndex, "hash-index", 0,
		"The domain-separation index to compress under.")
	compressCmd.PersistentFlags().BoolVar(&commitInstead, "commit", false,
		"Use the commitment generator set instead of the hash generators.")

	compressCmd.MarkFlagRequired("inputs")
}

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Compress field elements through the Pedersen boundary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		CompressImpl()
	},
}

func CompressImpl() {
	elems := make([]fr.Element, len(compressInputs))
	for i, in := range compressInputs {
		raw, err := hex.DecodeString(in)
		if err != nil {
			panic(err.Error())
		}
		if err := elems[i].SetBytesCanonical(raw); err != nil {
			panic(err.Error())
		}
	}

	binding := pedersen.NewBinding(pedersen.NewEngine())
	println("Building generator table...")
	if err := binding.Init(); err != nil {
		panic(err.Error())
	}

	inputs := pedersen.EncodeFrVector(elems)
	out := make([]byte, fr.Bytes)

	var err error
	if commitInstead {
		err = binding.Commit(out, inputs)
	} else {
		idx := binary.BigEndian.AppendUint32(nil, compressIndex)
		err = binding.CompressWithHashIndex(out, inputs, idx)
	}
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("result: 0x%s\n", hex.EncodeToString(out))
}
