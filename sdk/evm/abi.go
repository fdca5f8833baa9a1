package evm

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const moduleProxyFactoryABI = `[
	{"type":"function","name":"deployModule","stateMutability":"nonpayable",
	 "inputs":[{"name":"masterCopy","type":"address"},{"name":"initializer","type":"bytes"},{"name":"saltNonce","type":"uint256"}],
	 "outputs":[{"name":"proxy","type":"address"}]}
]`

// avatarABI covers the module management functions shared by the Safe and by modifiers.
const avatarABI = `[
	{"type":"function","name":"enableModule","stateMutability":"nonpayable",
	 "inputs":[{"name":"module","type":"address"}],"outputs":[]},
	{"type":"function","name":"getModulesPaginated","stateMutability":"view",
	 "inputs":[{"name":"start","type":"address"},{"name":"pageSize","type":"uint256"}],
	 "outputs":[{"name":"array","type":"address[]"},{"name":"next","type":"address"}]},
	{"type":"function","name":"nonce","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

const moduleSetUpABI = `[
	{"type":"function","name":"setUp","stateMutability":"nonpayable",
	 "inputs":[{"name":"initializeParams","type":"bytes"}],"outputs":[]}
]`

const realityOracleABI = `[
	{"type":"function","name":"createTemplate","stateMutability":"nonpayable",
	 "inputs":[{"name":"content","type":"string"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const ensRegistryABI = `[
	{"type":"function","name":"owner","stateMutability":"view",
	 "inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]}
]`

const multiSendABI = `[
	{"type":"function","name":"multiSend","stateMutability":"payable",
	 "inputs":[{"name":"transactions","type":"bytes"}],"outputs":[]}
]`

var (
	ModuleProxyFactoryABI = mustParseABI(moduleProxyFactoryABI)
	AvatarABI             = mustParseABI(avatarABI)
	ModuleSetUpABI        = mustParseABI(moduleSetUpABI)
	RealityOracleABI      = mustParseABI(realityOracleABI)
	ENSRegistryABI        = mustParseABI(ensRegistryABI)
	MultiSendABI          = mustParseABI(multiSendABI)
)

func mustParseABI(def string) *abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}

	return &parsed
}
