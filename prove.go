package main

import (
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/spf13/cobra"

	"CircuitABI/modules/abis"
	"CircuitABI/modules/pedersen"
	"CircuitABI/modules/types"
)

var (
	proveCRSFile   string
	proveVKFile    string
	proveProofFile string
	proveMode      string

	sigVKIndex     uint32
	sigPrivate     bool
	sigConstructor bool
)

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Prove knowledge of a function signature matching a public hash",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ProveImpl()
	},
}

func init() {
	abiCmd.AddCommand(proveCmd)
	proveCmd.PersistentFlags().StringVar(&proveCRSFile, "crs", "", "The Groth16 CRS file.")
	proveCmd.PersistentFlags().StringVar(&proveVKFile, "vk", "", "The Groth16 VK file.")
	proveCmd.PersistentFlags().StringVar(&proveProofFile, "proof", "", "The proof output file.")
	proveCmd.PersistentFlags().StringVar(&proveMode, "mode", "", "The work mode - one of prove/verify/setup.")
	proveCmd.PersistentFlags().Uint32Var(&sigVKIndex, "vk-index", 0, "The signature's verification key index.")
	proveCmd.PersistentFlags().BoolVar(&sigPrivate, "private", false, "Whether the signature marks a private function.")
	proveCmd.PersistentFlags().BoolVar(&sigConstructor, "constructor", false, "Whether the signature marks a constructor.")
}

// SignatureHashCircuit constrains a witnessed function signature to hash to
// the declared public hash: the verifier only ever sees the hash, in the
// fixed public-input order.
type SignatureHashCircuit struct {
	Engine *pedersen.Engine

	Signature    abis.FunctionSignature[frontend.Variable]
	ExpectedHash frontend.Variable `gnark:",public"`
}

func (c *SignatureHashCircuit) Define(api frontend.API) error {
	ctx := types.NewCircuitContext(api, c.Engine)
	hash, err := c.Signature.Hash(ctx)
	if err != nil {
		return err
	}
	api.AssertIsEqual(hash, c.ExpectedHash)
	return nil
}

func ProveImpl() {
	engine := pedersen.NewEngine()
	println("Building generator table...")
	if err := engine.Init(); err != nil {
		panic(err.Error())
	}

	placeholder := SignatureHashCircuit{Engine: engine}
	r1cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &placeholder)
	if err != nil {
		panic(err.Error())
	}

	println("Nb Constraints: ", r1cs.GetNbConstraints())
	println("Nb Internal Witnesss: ", r1cs.GetNbInternalVariables())
	println("Nb Private Witness: ", r1cs.GetNbSecretVariables())
	println("Nb Public Witness:", r1cs.GetNbPublicVariables())

	// witness definition
	signature := abis.NewFunctionSignature(sigVKIndex, sigPrivate, sigConstructor)
	expected, err := signature.Hash(types.NewNativeContext(engine))
	if err != nil {
		panic(err.Error())
	}

	ctx := types.NewCircuitContext(nil, nil)
	assignment := SignatureHashCircuit{
		Engine:       engine,
		Signature:    signature.ToCircuitType(ctx),
		ExpectedHash: expected.BigInt(new(big.Int)),
	}

	println("Solving witness...")
	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	if err != nil {
		panic(err.Error())
	}

	println("Checking satisfiability...")
	if err = r1cs.IsSolved(witness); err != nil {
		panic("R1CS not satisfied.")
	}
	println("R1CS satisfied.")

	pk := groth16.NewProvingKey(ecc.BN254)
	vk := groth16.NewVerifyingKey(ecc.BN254)
	proof := groth16.NewProof(ecc.BN254)

	var pkFile *os.File = nil
	var vkFile *os.File = nil
	var proofFile *os.File = nil

	switch proveMode {
	case "setup":
		println("Groth16 generating setup from scratch...")
		if pk, vk, err = groth16.Setup(r1cs); err != nil {
			panic(err.Error())
		}

		if pkFile, err = os.OpenFile(proveCRSFile,
			os.O_WRONLY|os.O_CREATE, 0644); err != nil {
			panic(err.Error())
		}
		pk.WriteTo(pkFile)

		if vkFile, err = os.OpenFile(proveVKFile,
			os.O_WRONLY|os.O_CREATE, 0644); err != nil {
			panic(err.Error())
		}
		vk.WriteTo(vkFile)
	case "prove":
		println("Groth16 reading CRS from file...")
		if pkFile, err = os.OpenFile(proveCRSFile, os.O_RDONLY, 0444); err != nil {
			panic(err.Error())
		}
		pk.ReadFrom(pkFile)

		proof, err = groth16.Prove(r1cs, pk, witness)
		if err != nil {
			panic("Groth16 fails")
		}

		if proofFile, err = os.OpenFile(proveProofFile,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644); err != nil {
			panic(err.Error())
		}
		proof.WriteTo(proofFile)
	case "verify":
		println("Groth16 reading vk from file...")
		if vkFile, err = os.OpenFile(proveVKFile, os.O_RDONLY, 0444); err != nil {
			panic(err.Error())
		}
		vk.ReadFrom(vkFile)

		if proofFile, err = os.OpenFile(proveProofFile, os.O_RDONLY, 0444); err != nil {
			panic(err.Error())
		}
		proof.ReadFrom(proofFile)

		publicWitness, err := witness.Public()
		if err != nil {
			panic(err.Error())
		}

		if err = groth16.Verify(proof, vk, publicWitness); err != nil {
			panic(err.Error())
		}
	}

	println("Done.")
}
