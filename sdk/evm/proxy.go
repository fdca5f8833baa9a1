package evm

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

// Minimal proxy (EIP-1167) code fragments as deployed by the ModuleProxyFactory.
var (
	proxyCreationPrefix = common.FromHex("0x602d8060093d393df3363d3d373d3d3d363d73")
	proxyRuntimePrefix  = common.FromHex("0x363d3d373d3d3d363d73")
	proxyRuntimeSuffix  = common.FromHex("0x5af43d82803e903d91602b57fd5bf3")
)

// ProxyRuntimeCode returns the runtime code of a minimal proxy pointing at masterCopy.
func ProxyRuntimeCode(masterCopy common.Address) []byte {
	code := make([]byte, 0, len(proxyRuntimePrefix)+common.AddressLength+len(proxyRuntimeSuffix))
	code = append(code, proxyRuntimePrefix...)
	code = append(code, masterCopy.Bytes()...)

	return append(code, proxyRuntimeSuffix...)
}

// MasterCopyFromCode extracts the implementation address from minimal proxy runtime code.
func MasterCopyFromCode(code []byte) (common.Address, bool) {
	if len(code) != len(proxyRuntimePrefix)+common.AddressLength+len(proxyRuntimeSuffix) {
		return common.Address{}, false
	}
	if !bytes.HasPrefix(code, proxyRuntimePrefix) || !bytes.HasSuffix(code, proxyRuntimeSuffix) {
		return common.Address{}, false
	}

	return common.BytesToAddress(code[len(proxyRuntimePrefix) : len(proxyRuntimePrefix)+common.AddressLength]), true
}

// ProxyCreationCode returns the init code the ModuleProxyFactory deploys for masterCopy.
func ProxyCreationCode(masterCopy common.Address) []byte {
	code := make([]byte, 0, len(proxyCreationPrefix)+common.AddressLength+len(proxyRuntimeSuffix))
	code = append(code, proxyCreationPrefix...)
	code = append(code, masterCopy.Bytes()...)

	return append(code, proxyRuntimeSuffix...)
}

// PredictProxyAddress computes the CREATE2 address deployModule will deploy the proxy at.
func PredictProxyAddress(factory, masterCopy common.Address, initializer []byte, saltNonce *big.Int) common.Address {
	salt := crypto.Keccak256(crypto.Keccak256(initializer), math.U256Bytes(new(big.Int).Set(saltNonce)))

	return crypto.CreateAddress2(factory, [32]byte(salt), crypto.Keccak256(ProxyCreationCode(masterCopy)))
}
