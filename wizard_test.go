package zodiac

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewWizard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    []SectionName
		wantErr string
	}{
		{
			name: "success",
			give: []SectionName{SectionDao, SectionOracle},
		},
		{
			name:    "no sections",
			wantErr: "wizard needs at least one section",
		},
		{
			name:    "duplicate section",
			give:    []SectionName{SectionDao, SectionOracle, SectionDao},
			wantErr: `duplicate section "dao"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := NewWizard(tt.give...)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, w.ID())
			assert.Equal(t, tt.give, w.Sections())
			assert.Equal(t, tt.give[0], w.Current())
			assert.False(t, w.Done())
		})
	}
}

func TestWizard_Navigation(t *testing.T) {
	t.Parallel()

	w, err := NewWizard(SectionDao, SectionOracle)
	require.NoError(t, err)

	require.ErrorIs(t, w.Back(), ErrWizardAtStart)

	var mismatch *SectionMismatchError
	require.ErrorAs(t, w.Next(NewOracleSection(testChainID).Collect()), &mismatch)
	assert.Equal(t, SectionDao, mismatch.Expected)
	assert.Equal(t, 0, w.Position())

	dao := NewDaoSection()
	dao.Space.Set(SpaceData{ENSName: "dao.eth"})
	require.NoError(t, w.Next(dao.Collect()))
	assert.Equal(t, SectionOracle, w.Current())

	oracle := NewOracleSection(testChainID)
	require.NoError(t, w.Next(oracle.Collect()))
	assert.True(t, w.Done())
	assert.Equal(t, SectionName(""), w.Current())
	assert.Equal(t, 2, w.SetupData().Len())

	require.ErrorIs(t, w.Next(oracle.Collect()), ErrWizardDone)

	require.NoError(t, w.Back())
	require.NoError(t, w.Back())
	assert.Equal(t, SectionDao, w.Current())

	// Going back keeps what was collected.
	assert.Equal(t, 2, w.SetupData().Len())
}

func TestWizard_Rehydrate(t *testing.T) {
	t.Parallel()

	w, err := NewWizard(SectionDao, SectionOracle)
	require.NoError(t, err)

	fresh := NewOracleSection(testChainID)
	restored, err := w.Rehydrate(fresh)
	require.NoError(t, err)
	assert.False(t, restored)

	dao := NewDaoSection()
	require.NoError(t, w.Next(dao.Collect()))

	oracle := NewOracleSection(testChainID)
	oracle.Bond.Set(OracleBondData{Bond: 3})
	require.NoError(t, w.Next(oracle.Collect()))
	require.NoError(t, w.Back())

	// Later edits to the section do not reach the recorded state.
	oracle.Bond.Set(OracleBondData{Bond: 4})

	again := NewOracleSection(testChainID)
	restored, err = w.Rehydrate(again)
	require.NoError(t, err)
	assert.True(t, restored)
	assert.InDelta(t, 3.0, again.Bond.Data().Bond, 0)

	restored, err = w.Rehydrate(again)
	require.NoError(t, err)
	assert.True(t, restored)
	assert.InDelta(t, 3.0, again.Bond.Data().Bond, 0)
}

func TestWizard_Load(t *testing.T) {
	t.Parallel()

	w, err := NewWizard(SectionDelay)
	require.NoError(t, err)

	var unknown *UnknownSectionError
	err = w.Load(NewWizardState(NewDaoSection().Collect()))
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, SectionDao, unknown.Section)

	saved := NewDelaySection().CollectData()
	saved.ParamsData.Cooldown = 10
	require.NoError(t, w.Load(NewWizardState(saved)))

	section := NewDelaySection()
	restored, err := w.Rehydrate(section)
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, uint64(10), section.Params.Data().Cooldown)
}

func TestWizardState_Encoding(t *testing.T) {
	t.Parallel()

	module := common.HexToAddress("0x00000000000000000000000000000000000000cc")

	oracle := NewOracleSection(testChainID).CollectData()
	oracle.TemplateData = OracleTemplateData{
		Template:     TemplateCustom,
		Language:     "english",
		Category:     "DAO",
		TemplateType: TemplateTypeSingleSelect,
		Outcomes:     []Outcome{{Outcome: "yes"}, {Outcome: "no"}},
	}
	delay := DelaySectionData{
		ParamsData: DelayParamsData{Timeout: 600, Cooldown: 60},
		AttachData: AttachData{Module: &module},
	}
	dao := DaoSectionData{SpaceData: SpaceData{ENSName: "dao.eth"}}
	state := NewWizardState(oracle, delay, dao)

	tests := []struct {
		name      string
		marshal   func(any) ([]byte, error)
		unmarshal func([]byte, any) error
	}{
		{name: "json", marshal: json.Marshal, unmarshal: json.Unmarshal},
		{name: "yaml", marshal: yaml.Marshal, unmarshal: yaml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := tt.marshal(state)
			require.NoError(t, err)

			var got WizardState
			require.NoError(t, tt.unmarshal(b, &got))
			require.Equal(t, 3, got.Len())

			gotOracle, ok := got.Oracle()
			require.True(t, ok)
			if diff := cmp.Diff(oracle, gotOracle); diff != "" {
				t.Errorf("oracle mismatch (-want +got):\n%s", diff)
			}

			gotDelay, ok := got.Delay()
			require.True(t, ok)
			if diff := cmp.Diff(delay, gotDelay); diff != "" {
				t.Errorf("delay mismatch (-want +got):\n%s", diff)
			}

			gotDao, ok := got.Dao()
			require.True(t, ok)
			assert.Equal(t, dao, gotDao)
		})
	}
}

func TestWizardState_PartialEncoding(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewWizardState(DaoSectionData{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"dao":{"spaceData":{"ensName":""},"executorData":{"executor":"0x0000000000000000000000000000000000000000"}}}`, string(b))

	_, ok := NewWizardState().Oracle()
	assert.False(t, ok)
}
