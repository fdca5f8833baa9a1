package zodiac

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gnosisguild/zodiac"
	"github.com/gnosisguild/zodiac/internal/prompt"
	"github.com/gnosisguild/zodiac/sdk/evm"
	"github.com/gnosisguild/zodiac/types"
)

// oracleAnswers fill the oracle section with a 1h timeout, 1h cooldown, 2h expiration and
// the default template, instance, bond and arbitrator.
var oracleAnswers = []prompt.Answer{
	prompt.Default(), // template
	prompt.Default(), // instance
	prompt.Default(), prompt.Text("1"),
	prompt.Default(), prompt.Text("1"),
	prompt.Default(), prompt.Text("2"),
	prompt.Default(), // bond
	prompt.Default(), // arbitrator
}

// oracleDefaults accept every current value of the oracle section.
var oracleDefaults = []prompt.Answer{
	prompt.Default(), prompt.Default(),
	prompt.Default(), prompt.Default(),
	prompt.Default(), prompt.Default(),
	prompt.Default(), prompt.Default(),
	prompt.Default(), prompt.Default(),
}

func answers(groups ...[]prompt.Answer) []prompt.Answer {
	var out []prompt.Answer
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

func wantRealityParams(t *testing.T) types.RealityModuleParams {
	t.Helper()

	tpl, err := zodiac.BuildTemplate(zodiac.DefaultOracleTemplateData(), "gnosis.eth")
	require.NoError(t, err)

	return types.RealityModuleParams{
		Kind:       types.ModuleKindRealityETH,
		Owner:      testSafe,
		Avatar:     testSafe,
		Target:     testSafe,
		Oracle:     zodiac.TestnetOracleOptions[0].Address,
		Timeout:    3600,
		Cooldown:   3600,
		Expiration: 7200,
		Bond:       big.NewInt(1e16),
		Template:   tpl,
	}
}

func realityParams(want types.RealityModuleParams) any {
	return mock.MatchedBy(func(got types.RealityModuleParams) bool {
		return cmp.Equal(want, got, cmp.Comparer(func(a, b *big.Int) bool {
			if a == nil || b == nil {
				return a == b
			}

			return a.Cmp(b) == 0
		}))
	})
}

func TestAddReality(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, answers(
		[]prompt.Answer{prompt.Text("gnosis.eth"), prompt.Default(), prompt.Choose(0)},
		oracleAnswers,
		[]prompt.Answer{prompt.Choose(0), prompt.Choose(0)},
	)...)
	env.ens.owners["gnosis.eth"] = testSafe
	env.factory.EXPECT().CreateAndAddModule(mock.Anything, testSession, realityParams(wantRealityParams(t)), (*common.Address)(nil)).
		Return(testTxs, nil).Once()
	env.txService.EXPECT().Send(mock.Anything, testSession, testTxs).Return(testHash, nil).Once()
	env.txService.EXPECT().GetBySafeTxHash(mock.Anything, testHash).Return(&types.SafeTransaction{SafeTxHash: testHash}, nil).Once()
	env.inspector.EXPECT().GetModules(mock.Anything, testChainID, testSafe).Return(nil, nil).Once()

	require.NoError(t, env.run("add-reality"))

	assert.Equal(t, 0, env.driver.Remaining())
	assert.Empty(t, env.driver.Messages)
	assert.Contains(t, env.out.String(), `"oracle": "`+strings.ToLower(zodiac.TestnetOracleOptions[0].Address.Hex())+`"`)
	assert.Contains(t, env.out.String(), "safeTxHash: "+testHash.Hex())
}

func TestAddReality_BackRehydratesSections(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, answers(
		[]prompt.Answer{prompt.Text("gnosis.eth"), prompt.Default(), prompt.Choose(0)},
		oracleAnswers,
		[]prompt.Answer{prompt.Choose(0)},
		// review: back to the oracle section, keep everything
		[]prompt.Answer{prompt.Choose(1)},
		oracleDefaults,
		[]prompt.Answer{prompt.Choose(1)},
		// back in the dao section, keep everything
		[]prompt.Answer{prompt.Default(), prompt.Default(), prompt.Choose(0)},
		oracleDefaults,
		[]prompt.Answer{prompt.Choose(0), prompt.Choose(0)},
	)...)
	env.ens.owners["gnosis.eth"] = testSafe
	env.factory.EXPECT().CreateAndAddModule(mock.Anything, testSession, realityParams(wantRealityParams(t)), (*common.Address)(nil)).
		Return(testTxs, nil).Once()

	require.NoError(t, env.run("add-reality", "--dry-run"))
	assert.Equal(t, 0, env.driver.Remaining())
}

func TestAddReality_SecurityRisk(t *testing.T) {
	t.Parallel()

	owner := common.HexToAddress("0x00000000000000000000000000000000000000b0")
	env := newTestEnv(t,
		prompt.Text("gnosis.eth"), prompt.No(),
		prompt.Text("safe.eth"), prompt.Default(),
		prompt.Choose(1),
	)
	env.ens.owners["gnosis.eth"] = owner
	env.ens.owners["safe.eth"] = testSafe

	require.ErrorIs(t, env.run("add-reality"), errCanceled)
	require.Len(t, env.driver.Messages, 1)
	assert.Equal(t, securityRiskMessage(evm.ENSOwnership{Name: "gnosis.eth", Owner: owner, Safe: testSafe}), env.driver.Messages[0])
	assert.Contains(t, env.driver.Messages[0], "Security Risk Detected")
}

func TestAddReality_InvalidSectionIsAskedAgain(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, answers(
		[]prompt.Answer{prompt.Text("gnosis.eth"), prompt.Default(), prompt.Choose(0)},
		oracleDefaults,
		oracleAnswers,
		[]prompt.Answer{prompt.Choose(2)},
	)...)
	env.ens.err = evm.ErrENSUnsupported

	require.ErrorIs(t, env.run("add-reality"), errCanceled)
	assert.Equal(t, []string{
		"ENS ownership of gnosis.eth cannot be checked on " + testChainID.Name(),
		"oracle delay: timeout must be greater than zero",
	}, env.driver.Messages)
	assert.Equal(t, 0, env.driver.Remaining())
}
