package zodiac

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gnosisguild/zodiac/sdk"
	sdkerrors "github.com/gnosisguild/zodiac/sdk/errors"
	"github.com/gnosisguild/zodiac/sdk/mocks"
	"github.com/gnosisguild/zodiac/store"
	"github.com/gnosisguild/zodiac/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	testTxHash = common.HexToHash("0x1234")
	testTxs    = []types.Transaction{
		types.NewCall(common.HexToAddress("0xfac7"), []byte{0x01}, "deploy module"),
		types.NewCall(testSafe, []byte{0x02}, "enable module"),
	}
)

func observedContext() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return sdk.WithLogger(context.Background(), zap.New(core).Sugar()), logs
}

func delayRequest(t *testing.T) DeployRequest {
	t.Helper()

	params, err := AssembleDelayParams(sdk.StaticSession{Safe: testSafe, Chain: testChainID}, NewDelaySection().CollectData())
	require.NoError(t, err)

	return DeployRequest{Params: params}
}

func TestDeployer_Deploy(t *testing.T) {
	t.Parallel()

	session := sdk.StaticSession{Safe: testSafe, Chain: testChainID}
	req := delayRequest(t)
	safeTx := &types.SafeTransaction{SafeTxHash: testTxHash, Safe: testSafe, Nonce: 4}

	factory := mocks.NewModuleFactory(t)
	factory.EXPECT().CreateAndAddModule(mock.Anything, session, req.Params, (*common.Address)(nil)).Return(testTxs, nil).Once()

	txService := mocks.NewTxService(t)
	txService.EXPECT().Send(mock.Anything, session, testTxs).Return(testTxHash, nil).Once()
	txService.EXPECT().GetBySafeTxHash(mock.Anything, testTxHash).Return(safeTx, nil).Once()

	modules := []types.Module{{Address: common.HexToAddress("0xd1"), Kind: types.ModuleKindDelay}}
	inspector := mocks.NewModuleInspector(t)
	inspector.EXPECT().GetModules(mock.Anything, testChainID, testSafe).Return(modules, nil).Once()

	modulesStore := store.NewModulesStore()
	ctx, logs := observedContext()

	got := NewDeployer(factory, txService, WithModulesRefresh(modulesStore, inspector)).Deploy(ctx, session, req)

	require.NoError(t, got.Err)
	assert.Equal(t, DeploymentSuccess, got.Status)
	assert.True(t, got.OK())
	assert.Equal(t, testTxHash, got.SafeTxHash)
	assert.Equal(t, safeTx, got.SafeTx)
	assert.Equal(t, testTxs, got.Transactions)
	assert.Equal(t, modules, modulesStore.DaoModules())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len())
}

func TestDeployer_Deploy_AttachTo(t *testing.T) {
	t.Parallel()

	session := sdk.StaticSession{Safe: testSafe, Chain: testChainID}
	attachTo := common.HexToAddress("0xd1")
	req := delayRequest(t)
	req.AttachTo = &attachTo

	factory := mocks.NewModuleFactory(t)
	factory.EXPECT().CreateAndAddModule(mock.Anything, session, req.Params, &attachTo).Return(testTxs, nil).Once()

	txService := mocks.NewTxService(t)
	txService.EXPECT().Send(mock.Anything, session, testTxs).Return(testTxHash, nil).Once()
	txService.EXPECT().GetBySafeTxHash(mock.Anything, testTxHash).Return(&types.SafeTransaction{}, nil).Once()

	ctx, _ := observedContext()
	got := NewDeployer(factory, txService).Deploy(ctx, session, req)

	require.NoError(t, got.Err)
	assert.Equal(t, DeploymentSuccess, got.Status)
}

func TestDeployer_Deploy_Failures(t *testing.T) {
	t.Parallel()

	session := sdk.StaticSession{Safe: testSafe, Chain: testChainID}
	errRejected := errors.New("rejected by wallet")

	tests := []struct {
		name       string
		setup      func(f *mocks.ModuleFactory, s *mocks.TxService)
		wantStatus DeploymentStatus
		wantStage  DeploymentStage
		wantHash   common.Hash
		wantLevel  zapcore.Level
	}{
		{
			name: "create fails",
			setup: func(f *mocks.ModuleFactory, s *mocks.TxService) {
				f.EXPECT().CreateAndAddModule(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errRejected).Once()
			},
			wantStatus: DeploymentFailed,
			wantStage:  StageCreate,
			wantLevel:  zapcore.ErrorLevel,
		},
		{
			name: "send fails",
			setup: func(f *mocks.ModuleFactory, s *mocks.TxService) {
				f.EXPECT().CreateAndAddModule(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(testTxs, nil).Once()
				s.EXPECT().Send(mock.Anything, session, testTxs).Return(common.Hash{}, errRejected).Once()
			},
			wantStatus: DeploymentFailed,
			wantStage:  StageSend,
			wantLevel:  zapcore.ErrorLevel,
		},
		{
			name: "lookup fails after proposal",
			setup: func(f *mocks.ModuleFactory, s *mocks.TxService) {
				f.EXPECT().CreateAndAddModule(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(testTxs, nil).Once()
				s.EXPECT().Send(mock.Anything, session, testTxs).Return(testTxHash, nil).Once()
				s.EXPECT().GetBySafeTxHash(mock.Anything, testTxHash).Return(nil, errRejected).Once()
			},
			wantStatus: DeploymentProposed,
			wantStage:  StageLookup,
			wantHash:   testTxHash,
			wantLevel:  zapcore.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			factory := mocks.NewModuleFactory(t)
			txService := mocks.NewTxService(t)
			tt.setup(factory, txService)

			wizard, err := NewWizard(SectionDelay)
			require.NoError(t, err)
			section := NewDelaySection()
			require.NoError(t, wizard.Next(section.Collect()))
			before, _ := wizard.SetupData().Delay()

			ctx, logs := observedContext()
			got := NewDeployer(factory, txService).Deploy(ctx, session, delayRequest(t))

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantStage, got.Stage)
			assert.Equal(t, tt.wantHash, got.SafeTxHash)

			var deployErr *DeploymentError
			require.ErrorAs(t, got.Err, &deployErr)
			assert.Equal(t, tt.wantStage, deployErr.Stage)
			require.ErrorIs(t, got.Err, errRejected)
			assert.Equal(t, 1, logs.FilterLevelExact(tt.wantLevel).Len())

			after, _ := wizard.SetupData().Delay()
			assert.Equal(t, before, after)
			assert.Equal(t, section.CollectData(), after)
		})
	}
}

func TestDeployer_Deploy_InvalidParams(t *testing.T) {
	t.Parallel()

	factory := mocks.NewModuleFactory(t)
	txService := mocks.NewTxService(t)

	ctx, _ := observedContext()
	got := NewDeployer(factory, txService).Deploy(ctx, sdk.StaticSession{Safe: testSafe, Chain: testChainID}, DeployRequest{
		Params: types.DelayModuleParams{},
	})

	assert.Equal(t, DeploymentFailed, got.Status)
	var paramErr *types.InvalidParamError
	require.ErrorAs(t, got.Err, &paramErr)

	got = NewDeployer(factory, txService).Deploy(ctx, sdk.StaticSession{}, DeployRequest{})
	assert.EqualError(t, got.Err, "deployment failed at create: module parameters are required")

	got = NewDeployer(factory, txService).Deploy(ctx, sdk.StaticSession{Chain: testChainID}, delayRequest(t))
	assert.EqualError(t, got.Err, "deployment failed at create: session safe address is required")

	got = NewDeployer(factory, txService).Deploy(ctx, sdk.StaticSession{Safe: testSafe, Chain: 987654321987}, delayRequest(t))
	assert.EqualError(t, got.Err, "deployment failed at create: unknown chain: 987654321987")
}

func TestDeployer_Deploy_Retry(t *testing.T) {
	t.Parallel()

	session := sdk.StaticSession{Safe: testSafe, Chain: testChainID}
	req := delayRequest(t)
	errTransient := sdkerrors.NewTxServiceError(503, "service unavailable")

	factory := mocks.NewModuleFactory(t)
	factory.EXPECT().CreateAndAddModule(mock.Anything, session, req.Params, (*common.Address)(nil)).Return(nil, errTransient).Once()
	factory.EXPECT().CreateAndAddModule(mock.Anything, session, req.Params, (*common.Address)(nil)).Return(testTxs, nil).Once()

	txService := mocks.NewTxService(t)
	txService.EXPECT().Send(mock.Anything, session, testTxs).Return(testTxHash, nil).Once()
	txService.EXPECT().GetBySafeTxHash(mock.Anything, testTxHash).Return(nil, errTransient).Twice()
	txService.EXPECT().GetBySafeTxHash(mock.Anything, testTxHash).Return(&types.SafeTransaction{SafeTxHash: testTxHash}, nil).Once()

	ctx, _ := observedContext()
	d := NewDeployer(factory, txService, WithMaxAttempts(3), WithBackoff(time.Millisecond))
	got := d.Deploy(ctx, session, req)

	require.NoError(t, got.Err)
	assert.Equal(t, DeploymentSuccess, got.Status)
	assert.Equal(t, testTxHash, got.SafeTx.SafeTxHash)
}

func TestDeployer_Deploy_PermanentErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	session := sdk.StaticSession{Safe: testSafe, Chain: testChainID}
	req := delayRequest(t)

	tests := []struct {
		name       string
		setup      func(*mocks.ModuleFactory, *mocks.TxService)
		wantStatus DeploymentStatus
		wantStage  DeploymentStage
		wantErr    string
	}{
		{
			name: "unsupported chain at create",
			setup: func(factory *mocks.ModuleFactory, _ *mocks.TxService) {
				factory.EXPECT().CreateAndAddModule(mock.Anything, session, req.Params, (*common.Address)(nil)).
					Return(nil, sdkerrors.NewUnsupportedChainError(testChainID)).Once()
			},
			wantStatus: DeploymentFailed,
			wantStage:  StageCreate,
			wantErr:    "deployment failed at create: no zodiac contracts known for chain ethereum-testnet-sepolia",
		},
		{
			name: "bad request at lookup",
			setup: func(factory *mocks.ModuleFactory, txService *mocks.TxService) {
				factory.EXPECT().CreateAndAddModule(mock.Anything, session, req.Params, (*common.Address)(nil)).
					Return(testTxs, nil).Once()
				txService.EXPECT().Send(mock.Anything, session, testTxs).Return(testTxHash, nil).Once()
				txService.EXPECT().GetBySafeTxHash(mock.Anything, testTxHash).
					Return(nil, sdkerrors.NewTxServiceError(400, "invalid hash")).Once()
			},
			wantStatus: DeploymentProposed,
			wantStage:  StageLookup,
			wantErr:    "deployment failed at lookup: transaction service returned status 400: invalid hash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			factory := mocks.NewModuleFactory(t)
			txService := mocks.NewTxService(t)
			tt.setup(factory, txService)

			ctx, _ := observedContext()
			got := NewDeployer(factory, txService, WithMaxAttempts(3), WithBackoff(time.Millisecond)).Deploy(ctx, session, req)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantStage, got.Stage)
			require.EqualError(t, got.Err, tt.wantErr)
		})
	}
}

func TestDeployer_Deploy_RetriesAreBounded(t *testing.T) {
	t.Parallel()

	session := sdk.StaticSession{Safe: testSafe, Chain: testChainID}
	req := delayRequest(t)

	factory := mocks.NewModuleFactory(t)
	factory.EXPECT().CreateAndAddModule(mock.Anything, session, req.Params, (*common.Address)(nil)).
		Return(nil, sdkerrors.NewTxServiceError(429, "slow down")).Times(3)

	ctx, _ := observedContext()
	got := NewDeployer(factory, mocks.NewTxService(t), WithMaxAttempts(3), WithBackoff(time.Millisecond)).Deploy(ctx, session, req)

	assert.Equal(t, DeploymentFailed, got.Status)
	var serviceErr *sdkerrors.TxServiceError
	require.ErrorAs(t, got.Err, &serviceErr)
	assert.Equal(t, 429, serviceErr.StatusCode)
}

func TestDeployer_Deploy_SendIsNotRetried(t *testing.T) {
	t.Parallel()

	session := sdk.StaticSession{Safe: testSafe, Chain: testChainID}

	factory := mocks.NewModuleFactory(t)
	factory.EXPECT().CreateAndAddModule(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(testTxs, nil).Once()

	txService := mocks.NewTxService(t)
	txService.EXPECT().Send(mock.Anything, session, testTxs).Return(common.Hash{}, errors.New("timeout")).Once()

	ctx, _ := observedContext()
	got := NewDeployer(factory, txService, WithMaxAttempts(5), WithBackoff(time.Millisecond)).Deploy(ctx, session, delayRequest(t))

	assert.Equal(t, DeploymentFailed, got.Status)
	assert.Equal(t, StageSend, got.Stage)
}

func TestDeployer_Deploy_CancelledBeforeSend(t *testing.T) {
	t.Parallel()

	session := sdk.StaticSession{Safe: testSafe, Chain: testChainID}
	base, _ := observedContext()
	ctx, cancel := context.WithCancel(base)

	factory := mocks.NewModuleFactory(t)
	factory.EXPECT().CreateAndAddModule(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, sdk.Session, types.ModuleParams, *common.Address) ([]types.Transaction, error) {
			cancel()
			return testTxs, nil
		}).Once()

	txService := mocks.NewTxService(t)

	got := NewDeployer(factory, txService).Deploy(ctx, session, delayRequest(t))

	assert.Equal(t, DeploymentFailed, got.Status)
	assert.Equal(t, StageSend, got.Stage)
	require.ErrorIs(t, got.Err, context.Canceled)
	txService.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeployer_Prepare(t *testing.T) {
	t.Parallel()

	session := sdk.StaticSession{Safe: testSafe, Chain: testChainID}
	req := delayRequest(t)

	factory := mocks.NewModuleFactory(t)
	factory.EXPECT().CreateAndAddModule(mock.Anything, session, req.Params, (*common.Address)(nil)).Return(nil, nil).Once()

	_, err := NewDeployer(factory, mocks.NewTxService(t)).Prepare(context.Background(), session, req)
	require.EqualError(t, err, "deployment failed at create: module factory returned no transactions")
}
