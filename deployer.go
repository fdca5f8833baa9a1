package zodiac

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/sdk"
	"github.com/gnosisguild/zodiac/store"
	"github.com/gnosisguild/zodiac/types"
)

// DeploymentStage names a step of a deployment.
type DeploymentStage string

const (
	StageCreate  DeploymentStage = "create"
	StageSend    DeploymentStage = "send"
	StageLookup  DeploymentStage = "lookup"
	StageRefresh DeploymentStage = "refresh"
)

// DeploymentStatus is the outcome of a deployment.
type DeploymentStatus string

const (
	// DeploymentSuccess means the transactions were proposed and every follow-up succeeded.
	DeploymentSuccess DeploymentStatus = "success"

	// DeploymentProposed means the transactions were proposed to the Safe but a follow-up
	// stage failed. The safeTxHash is set.
	DeploymentProposed DeploymentStatus = "proposed"

	// DeploymentFailed means nothing was proposed.
	DeploymentFailed DeploymentStatus = "error"
)

// DeployRequest is the module to deploy.
type DeployRequest struct {
	Params types.ModuleParams

	// AttachTo enables the new module on an existing modifier instead of the Safe.
	AttachTo *common.Address
}

// DeploymentResult reports what a deployment did. Err is a *DeploymentError when set.
type DeploymentResult struct {
	Status       DeploymentStatus
	Stage        DeploymentStage
	Transactions []types.Transaction
	SafeTxHash   common.Hash
	SafeTx       *types.SafeTransaction
	Err          error
}

// OK reports whether the module transactions reached the Safe.
func (r DeploymentResult) OK() bool {
	return r.Status == DeploymentSuccess || r.Status == DeploymentProposed
}

// Deployer turns assembled module parameters into a proposed Safe transaction.
type Deployer struct {
	factory   sdk.ModuleFactory
	txService sdk.TxService
	modules   *store.ModulesStore
	inspector sdk.ModuleInspector

	maxAttempts int
	backoff     time.Duration
}

// DeployerOption configures a Deployer.
type DeployerOption func(*Deployer)

// WithMaxAttempts sets how often the create, lookup and refresh stages are tried when they
// fail with a temporary error. The send stage is always tried once.
func WithMaxAttempts(n int) DeployerOption {
	return func(d *Deployer) {
		if n > 0 {
			d.maxAttempts = n
		}
	}
}

// WithBackoff sets the pause before the first retry. It doubles after every failed attempt.
func WithBackoff(backoff time.Duration) DeployerOption {
	return func(d *Deployer) {
		d.backoff = backoff
	}
}

// WithModulesRefresh reloads the modules store after a successful proposal.
func WithModulesRefresh(modules *store.ModulesStore, inspector sdk.ModuleInspector) DeployerOption {
	return func(d *Deployer) {
		d.modules = modules
		d.inspector = inspector
	}
}

// NewDeployer creates a Deployer.
func NewDeployer(factory sdk.ModuleFactory, txService sdk.TxService, opts ...DeployerOption) *Deployer {
	d := &Deployer{
		factory:     factory,
		txService:   txService,
		maxAttempts: 1,
		backoff:     500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Prepare builds the module transactions without proposing them.
func (d *Deployer) Prepare(ctx context.Context, session sdk.Session, req DeployRequest) ([]types.Transaction, error) {
	if req.Params == nil {
		return nil, NewDeploymentError(StageCreate, errors.New("module parameters are required"))
	}
	if v, ok := session.(sdk.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, NewDeploymentError(StageCreate, err)
		}
	}
	if err := req.Params.Validate(); err != nil {
		return nil, NewDeploymentError(StageCreate, err)
	}

	var txs []types.Transaction
	err := d.retry(ctx, StageCreate, func() error {
		var err error
		txs, err = d.factory.CreateAndAddModule(ctx, session, req.Params, req.AttachTo)

		return err
	})
	if err != nil {
		return nil, NewDeploymentError(StageCreate, err)
	}
	if len(txs) == 0 {
		return nil, NewDeploymentError(StageCreate, errors.New("module factory returned no transactions"))
	}

	return txs, nil
}

// Deploy creates the module transactions, proposes them to the Safe and looks the proposal
// up. Failures are logged and returned in the result. Deploy never touches wizard state.
//
// Cancelling ctx before the proposal is sent aborts the deployment. Once the transaction
// service accepted the proposal the result carries its hash, even if a later stage fails.
func (d *Deployer) Deploy(ctx context.Context, session sdk.Session, req DeployRequest) DeploymentResult {
	lggr := sdk.LoggerFrom(ctx)

	txs, err := d.Prepare(ctx, session, req)
	if err != nil {
		lggr.Errorf("module deployment failed: %v", err)

		return DeploymentResult{Status: DeploymentFailed, Stage: StageCreate, Err: err}
	}

	result := DeploymentResult{Stage: StageSend, Transactions: txs}
	if err = ctx.Err(); err != nil {
		return d.fail(ctx, result, err)
	}

	hash, err := d.txService.Send(ctx, session, txs)
	if err != nil {
		return d.fail(ctx, result, err)
	}
	result.SafeTxHash = hash
	lggr.Infof("proposed %d transaction(s) to safe %s: %s", len(txs), session.SafeAddress().Hex(), hash.Hex())

	result.Stage = StageLookup
	err = d.retry(ctx, StageLookup, func() error {
		var err error
		result.SafeTx, err = d.txService.GetBySafeTxHash(ctx, hash)

		return err
	})
	if err != nil {
		return d.fail(ctx, result, err)
	}

	if d.modules != nil && d.inspector != nil {
		result.Stage = StageRefresh
		err = d.retry(ctx, StageRefresh, func() error {
			return d.modules.FetchModulesList(ctx, store.FetchModulesListRequest{
				Inspector:   d.inspector,
				ChainID:     session.ChainID(),
				SafeAddress: session.SafeAddress(),
			})
		})
		if err != nil {
			return d.fail(ctx, result, err)
		}
	}

	result.Status = DeploymentSuccess

	return result
}

func (d *Deployer) fail(ctx context.Context, result DeploymentResult, err error) DeploymentResult {
	result.Err = NewDeploymentError(result.Stage, err)
	if result.SafeTxHash != (common.Hash{}) {
		result.Status = DeploymentProposed
		sdk.LoggerFrom(ctx).Warnf("module proposed as %s but %v", result.SafeTxHash.Hex(), result.Err)

		return result
	}

	result.Status = DeploymentFailed
	sdk.LoggerFrom(ctx).Errorf("module deployment failed: %v", result.Err)

	return result
}

func (d *Deployer) retry(ctx context.Context, stage DeploymentStage, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.backoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	attempt := 0
	op := func() error {
		attempt++
		err := fn()
		if err != nil && !isTemporary(err) {
			return backoff.Permanent(err)
		}

		return err
	}
	notify := func(err error, next time.Duration) {
		sdk.LoggerFrom(ctx).Debugf("%s attempt %d/%d failed, retrying in %s: %v", stage, attempt, d.maxAttempts, next, err)
	}

	retries := backoff.WithMaxRetries(b, uint64(d.maxAttempts-1)) //nolint:gosec // maxAttempts is at least 1

	return backoff.RetryNotify(op, backoff.WithContext(retries, ctx), notify)
}

// isTemporary reports whether err, or an error it wraps, says a retry may succeed.
func isTemporary(err error) bool {
	var t interface{ Temporary() bool }

	return errors.As(err, &t) && t.Temporary()
}
