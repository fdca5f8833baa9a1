package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/internal/utils/abi"
	"github.com/gnosisguild/zodiac/sdk"
	sdkerrors "github.com/gnosisguild/zodiac/sdk/errors"
	"github.com/gnosisguild/zodiac/types"
)

var _ sdk.ModuleFactory = (*ModuleFactory)(nil)

var (
	delaySetUpArgs   = abi.Args("address", "address", "address", "uint256", "uint256")
	realitySetUpArgs = abi.Args("address", "address", "address", "address", "uint32", "uint32", "uint32", "uint256", "uint256", "address")
)

// ModuleFactory deploys Zodiac modules as minimal proxies through the ModuleProxyFactory.
type ModuleFactory struct {
	client    ContractCaller
	contracts ContractsResolver
	saltNonce func() *big.Int
}

// ModuleFactoryOption configures a ModuleFactory.
type ModuleFactoryOption func(*ModuleFactory)

// WithContracts replaces the default contract registry.
func WithContracts(resolver ContractsResolver) ModuleFactoryOption {
	return func(f *ModuleFactory) {
		f.contracts = resolver
	}
}

// WithSaltNonce sets the source of the CREATE2 salt nonce. It defaults to the current time in
// nanoseconds.
func WithSaltNonce(fn func() *big.Int) ModuleFactoryOption {
	return func(f *ModuleFactory) {
		f.saltNonce = fn
	}
}

// NewModuleFactory creates a ModuleFactory. The client is only used to read the template id
// of Reality.eth templates.
func NewModuleFactory(client ContractCaller, opts ...ModuleFactoryOption) *ModuleFactory {
	f := &ModuleFactory{
		client:    client,
		contracts: DefaultContracts,
		saltNonce: func() *big.Int { return big.NewInt(time.Now().UnixNano()) },
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateAndAddModule returns the transactions deploying a module proxy and enabling it on the
// Safe, or on attachTo. Reality modules with a template but no template id are preceded by a
// createTemplate call on the oracle.
func (f *ModuleFactory) CreateAndAddModule(
	ctx context.Context,
	session sdk.Session,
	params types.ModuleParams,
	attachTo *common.Address,
) ([]types.Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	contracts, err := f.contracts(session.ChainID())
	if err != nil {
		return nil, err
	}
	masterCopy, err := contracts.MasterCopy(params.ModuleKind())
	if err != nil {
		return nil, err
	}

	var txs []types.Transaction
	var initParams []byte
	switch p := params.(type) {
	case types.DelayModuleParams:
		initParams, err = abi.Encode(delaySetUpArgs,
			p.Executor, p.Executor, p.Executor,
			new(big.Int).SetUint64(p.TxCooldown), new(big.Int).SetUint64(p.TxExpiration))
	case types.RealityModuleParams:
		templateID := p.TemplateID
		if templateID == nil {
			var tx types.Transaction
			tx, templateID, err = f.createTemplate(ctx, session, p)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
		initParams, err = abi.Encode(realitySetUpArgs,
			p.Owner, p.Avatar, p.Target, p.Oracle,
			p.Timeout, p.Cooldown, p.Expiration,
			p.Bond, templateID, p.Arbitrator)
	default:
		return nil, sdkerrors.NewUnsupportedModuleKindError(params.ModuleKind())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s setUp: %w", params.ModuleKind(), err)
	}

	initializer, err := ModuleSetUpABI.Pack("setUp", initParams)
	if err != nil {
		return nil, err
	}

	saltNonce := f.saltNonce()
	deployData, err := ModuleProxyFactoryABI.Pack("deployModule", masterCopy, initializer, saltNonce)
	if err != nil {
		return nil, err
	}
	module := PredictProxyAddress(contracts.ModuleProxyFactory, masterCopy, initializer, saltNonce)

	enableOn := session.SafeAddress()
	if attachTo != nil {
		if *attachTo == (common.Address{}) {
			return nil, errors.New("cannot attach to the zero address")
		}
		enableOn = *attachTo
	}
	enableData, err := AvatarABI.Pack("enableModule", module)
	if err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Debugf("%s module will be deployed at %s and enabled on %s",
		params.ModuleKind(), module.Hex(), enableOn.Hex())

	return append(txs,
		types.NewCall(contracts.ModuleProxyFactory, deployData,
			fmt.Sprintf("deploy %s module %s", params.ModuleKind(), module.Hex())),
		types.NewCall(enableOn, enableData,
			fmt.Sprintf("enable module %s on %s", module.Hex(), enableOn.Hex())),
	), nil
}

// createTemplate builds the createTemplate call and reads the id the oracle will assign by
// simulating it from the Safe.
func (f *ModuleFactory) createTemplate(
	ctx context.Context,
	session sdk.Session,
	p types.RealityModuleParams,
) (types.Transaction, *big.Int, error) {
	data, err := RealityOracleABI.Pack("createTemplate", p.Template)
	if err != nil {
		return types.Transaction{}, nil, err
	}

	out, err := callContract(ctx, f.client, session.SafeAddress(), p.Oracle, RealityOracleABI, "createTemplate", p.Template)
	if err != nil {
		return types.Transaction{}, nil, fmt.Errorf("failed to read template id: %w", err)
	}
	templateID, ok := out[0].(*big.Int)
	if !ok {
		return types.Transaction{}, nil, fmt.Errorf("unexpected template id type %T", out[0])
	}

	return types.NewCall(p.Oracle, data, fmt.Sprintf("create reality.eth template %s", templateID)), templateID, nil
}
