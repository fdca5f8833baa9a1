package zodiac

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/internal/utils/safecast"
	"github.com/gnosisguild/zodiac/types"
)

// moduleBase holds the fields shared by every module variant.
type moduleBase struct {
	executor   common.Address
	cooldown   uint64
	expiration uint64
}

// BaseModuleBuilder is a generic builder for the shared module fields.
// T is the concrete builder type embedding this struct.
type BaseModuleBuilder[T any] struct {
	base    *moduleBase
	builder T
}

// SetExecutor sets the account the module executes through. It is used as owner, avatar
// and target.
func (b *BaseModuleBuilder[T]) SetExecutor(executor common.Address) T {
	b.base.executor = executor
	return b.builder
}

// SetCooldown sets the cooldown in seconds.
func (b *BaseModuleBuilder[T]) SetCooldown(seconds uint64) T {
	b.base.cooldown = seconds
	return b.builder
}

// SetExpiration sets the expiration in seconds. Zero means transactions never expire.
func (b *BaseModuleBuilder[T]) SetExpiration(seconds uint64) T {
	b.base.expiration = seconds
	return b.builder
}

// DelayParamsBuilder is a builder for delay modifier parameters.
type DelayParamsBuilder struct {
	BaseModuleBuilder[*DelayParamsBuilder]
	fields moduleBase
}

// NewDelayParamsBuilder creates a new DelayParamsBuilder.
func NewDelayParamsBuilder() *DelayParamsBuilder {
	builder := &DelayParamsBuilder{}
	builder.BaseModuleBuilder = BaseModuleBuilder[*DelayParamsBuilder]{
		base:    &builder.fields,
		builder: builder,
	}

	return builder
}

// Build validates and returns the parameters.
func (b *DelayParamsBuilder) Build() (types.DelayModuleParams, error) {
	params := types.DelayModuleParams{
		Executor:     b.fields.executor,
		TxCooldown:   b.fields.cooldown,
		TxExpiration: b.fields.expiration,
	}
	if err := params.Validate(); err != nil {
		return types.DelayModuleParams{}, err
	}

	return params, nil
}

// RealityParamsBuilder is a builder for Reality.eth module parameters.
type RealityParamsBuilder struct {
	BaseModuleBuilder[*RealityParamsBuilder]
	fields moduleBase

	kind       types.ModuleKind
	oracle     common.Address
	timeout    uint64
	bond       *big.Int
	arbitrator common.Address
	template   string
	templateID *big.Int
}

// NewRealityParamsBuilder creates a new RealityParamsBuilder.
func NewRealityParamsBuilder() *RealityParamsBuilder {
	builder := &RealityParamsBuilder{
		kind: types.ModuleKindRealityETH,
		bond: big.NewInt(0),
	}
	builder.BaseModuleBuilder = BaseModuleBuilder[*RealityParamsBuilder]{
		base:    &builder.fields,
		builder: builder,
	}

	return builder
}

// SetKind selects the ETH or ERC20 bonded variant.
func (b *RealityParamsBuilder) SetKind(kind types.ModuleKind) *RealityParamsBuilder {
	b.kind = kind
	return b
}

// SetOracle sets the Reality.eth oracle address.
func (b *RealityParamsBuilder) SetOracle(oracle common.Address) *RealityParamsBuilder {
	b.oracle = oracle
	return b
}

// SetTimeout sets the answer timeout in seconds.
func (b *RealityParamsBuilder) SetTimeout(seconds uint64) *RealityParamsBuilder {
	b.timeout = seconds
	return b
}

// SetBond sets the minimum bond in wei.
func (b *RealityParamsBuilder) SetBond(bond *big.Int) *RealityParamsBuilder {
	b.bond = bond
	return b
}

// SetArbitrator sets the arbitrator address.
func (b *RealityParamsBuilder) SetArbitrator(arbitrator common.Address) *RealityParamsBuilder {
	b.arbitrator = arbitrator
	return b
}

// SetTemplate sets the question template to create before deployment.
func (b *RealityParamsBuilder) SetTemplate(template string) *RealityParamsBuilder {
	b.template = template
	return b
}

// SetTemplateID uses an existing template instead of creating one.
func (b *RealityParamsBuilder) SetTemplateID(id *big.Int) *RealityParamsBuilder {
	b.templateID = id
	return b
}

// Build validates and returns the parameters.
func (b *RealityParamsBuilder) Build() (types.RealityModuleParams, error) {
	timeout, err := safecast.Uint64ToUint32(b.timeout)
	if err != nil {
		return types.RealityModuleParams{}, fmt.Errorf("timeout: %w", err)
	}
	cooldown, err := safecast.Uint64ToUint32(b.fields.cooldown)
	if err != nil {
		return types.RealityModuleParams{}, fmt.Errorf("cooldown: %w", err)
	}
	expiration, err := safecast.Uint64ToUint32(b.fields.expiration)
	if err != nil {
		return types.RealityModuleParams{}, fmt.Errorf("expiration: %w", err)
	}

	params := types.RealityModuleParams{
		Kind:       b.kind,
		Owner:      b.fields.executor,
		Avatar:     b.fields.executor,
		Target:     b.fields.executor,
		Oracle:     b.oracle,
		Timeout:    timeout,
		Cooldown:   cooldown,
		Expiration: expiration,
		Bond:       b.bond,
		Arbitrator: b.arbitrator,
		Template:   b.template,
		TemplateID: b.templateID,
	}
	if err := params.Validate(); err != nil {
		return types.RealityModuleParams{}, err
	}

	return params, nil
}
