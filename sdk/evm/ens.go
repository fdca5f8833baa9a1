package evm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/gnosisguild/zodiac/sdk"
	"github.com/gnosisguild/zodiac/types"
)

// ErrENSUnsupported is returned on chains without an ENS registry.
var ErrENSUnsupported = errors.New("ens is not deployed on this chain")

// Namehash implements the ENS name hashing algorithm. Labels are lower cased; full UTS-46
// normalization is not applied.
func Namehash(name string) common.Hash {
	var node common.Hash

	name = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))
	if name == "" {
		return node
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		label := crypto.Keccak256Hash([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), label.Bytes())
	}

	return node
}

// ENSOwnership is the registry owner of an ENS name.
type ENSOwnership struct {
	Name  string         `json:"name"`
	Node  common.Hash    `json:"node"`
	Owner common.Address `json:"owner"`
	Safe  common.Address `json:"safe"`
}

// OwnedBySafe reports whether the Safe controls the name.
func (o ENSOwnership) OwnedBySafe() bool {
	return o.Owner == o.Safe
}

// SecurityRisk reports whether someone other than the Safe controls the name the snapshot
// space is resolved from. That account could point the space at different proposals.
func (o ENSOwnership) SecurityRisk() bool {
	return !o.OwnedBySafe()
}

// ENSChecker reads ENS ownership from the registry.
type ENSChecker struct {
	client    ContractCaller
	contracts ContractsResolver
}

// NewENSChecker creates an ENSChecker.
func NewENSChecker(client ContractCaller, contracts ContractsResolver) *ENSChecker {
	if contracts == nil {
		contracts = DefaultContracts
	}

	return &ENSChecker{client: client, contracts: contracts}
}

// Owner returns the registry owner of name.
func (c *ENSChecker) Owner(ctx context.Context, chainID types.ChainID, name string) (common.Address, error) {
	contracts, err := c.contracts(chainID)
	if err != nil {
		return common.Address{}, err
	}
	if contracts.ENSRegistry == (common.Address{}) {
		return common.Address{}, ErrENSUnsupported
	}

	out, err := callContract(ctx, c.client, common.Address{}, contracts.ENSRegistry, ENSRegistryABI, "owner", [32]byte(Namehash(name)))
	if err != nil {
		return common.Address{}, err
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected owner type %T", out[0])
	}

	return owner, nil
}

// CheckOwnership compares the owner of name with the session's Safe.
func (c *ENSChecker) CheckOwnership(ctx context.Context, session sdk.Session, name string) (ENSOwnership, error) {
	owner, err := c.Owner(ctx, session.ChainID(), name)
	if err != nil {
		return ENSOwnership{}, err
	}

	o := ENSOwnership{
		Name:  name,
		Node:  Namehash(name),
		Owner: owner,
		Safe:  session.SafeAddress(),
	}
	if o.SecurityRisk() {
		sdk.LoggerFrom(ctx).Warnf("%s is owned by %s, not by safe %s", name, owner.Hex(), o.Safe.Hex())
	}

	return o, nil
}
