package abis

// Protocol constants fixing every ABI array length. The lengths are part of
// the external contract: serialization carries no length prefixes and the
// verifier-side layouts are compiled against the same values.
const (
	CustomInputsLength  = 4
	CustomOutputsLength = 4
	EmittedEventsLength = 4

	StateTransitionsLength = 4
	StateReadsLength       = 4

	PublicCallStackLength             = 4
	ContractDeploymentCallStackLength = 2
	PartialL1CallStackLength          = 2
)
