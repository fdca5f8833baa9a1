package zodiac

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/internal/testutils/chaintest"
	"github.com/gnosisguild/zodiac/internal/prompt"
	"github.com/gnosisguild/zodiac/sdk"
	"github.com/gnosisguild/zodiac/sdk/evm"
	"github.com/gnosisguild/zodiac/sdk/mocks"
	"github.com/gnosisguild/zodiac/store"
	"github.com/gnosisguild/zodiac/types"
)

var (
	testSafe     = chaintest.TestSafe
	testChainID  = chaintest.Chain2ID
	testSession  = sdk.StaticSession{Safe: testSafe, Chain: testChainID}
	testHash     = common.HexToHash("0x4ca768cbe5cbeb91839fe2cab4c2f1ab9979fba5f51a02494c54c39295471162")
	testModifier = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	testTxs      = []types.Transaction{
		types.NewCall(common.HexToAddress("0xfac"), []byte{0x01}, "deploy"),
		types.NewCall(testSafe, []byte{0x02}, "enable"),
	}
)

// fakeENS answers ownership checks from a fixed owner table.
type fakeENS struct {
	owners map[string]common.Address
	err    error
}

func (f *fakeENS) CheckOwnership(_ context.Context, session sdk.Session, name string) (evm.ENSOwnership, error) {
	if f.err != nil {
		return evm.ENSOwnership{}, f.err
	}

	return evm.ENSOwnership{
		Name:  name,
		Node:  evm.Namehash(name),
		Owner: f.owners[name],
		Safe:  session.SafeAddress(),
	}, nil
}

type testEnv struct {
	driver    *prompt.ScriptedDriver
	factory   *mocks.ModuleFactory
	txService *mocks.TxService
	inspector *mocks.ModuleInspector
	ens       *fakeENS
	out       *bytes.Buffer
}

func newTestEnv(t *testing.T, answers ...prompt.Answer) *testEnv {
	t.Helper()

	return &testEnv{
		driver:    prompt.NewScriptedDriver(answers...),
		factory:   mocks.NewModuleFactory(t),
		txService: mocks.NewTxService(t),
		inspector: mocks.NewModuleInspector(t),
		ens:       &fakeENS{owners: map[string]common.Address{}},
		out:       &bytes.Buffer{},
	}
}

func (e *testEnv) loader() runtimeLoader {
	return func(_ context.Context, opts *rootOptions, out io.Writer) (*runtime, error) {
		return &runtime{
			session:   sdk.StaticSession{Safe: common.HexToAddress(opts.safe), Chain: types.ChainID(opts.chainID)},
			driver:    e.driver,
			factory:   e.factory,
			txService: e.txService,
			inspector: e.inspector,
			ens:       e.ens,
			modules:   store.NewModulesStore(),
			out:       out,
		}, nil
	}
}

func (e *testEnv) run(args ...string) error {
	cmd := buildRootCmd(e.loader())
	cmd.SetOut(e.out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--safe", testSafe.Hex(), "--chain-id", "11155111"))

	return cmd.ExecuteContext(context.Background())
}
