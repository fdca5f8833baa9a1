package zodiac

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"

	"github.com/gnosisguild/zodiac/sdk"
	"github.com/gnosisguild/zodiac/types"
)

// defaultQuestionTitle is the Reality.eth question asked for every snapshot proposal. The %s
// placeholders are filled by the proposer with the proposal id and the transactions hash.
const defaultQuestionTitle = "Did the Snapshot proposal with the id %%s in the %s space pass the execution of the array of Module transactions that have the hash 0x%%s and is there a majority of the votes?"

// languageCodes maps the template language names to Reality.eth language codes.
var languageCodes = map[string]string{
	"english":  "en",
	"spanish":  "es",
	"french":   "fr",
	"german":   "de",
	"italian":  "it",
	"chinese":  "zh",
	"japanese": "ja",
	"korean":   "ko",
}

// realityTemplate is the JSON document stored by Reality.eth createTemplate.
type realityTemplate struct {
	Title    string   `json:"title"`
	Lang     string   `json:"lang"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Outcomes []string `json:"outcomes,omitempty"`
}

// BuildTemplate renders the Reality.eth question template for the template data. The
// default template needs the ENS name of the snapshot space.
func BuildTemplate(data OracleTemplateData, ensName string) (string, error) {
	if err := data.Validate(); err != nil {
		return "", fmt.Errorf("invalid template data: %w", err)
	}

	lang, ok := languageCodes[strings.ToLower(data.Language)]
	if !ok {
		lang = data.Language
	}

	tpl := realityTemplate{
		Title:    "%s",
		Lang:     lang,
		Type:     string(data.TemplateType),
		Category: data.Category,
	}
	if data.Template == TemplateDefault {
		if ensName == "" {
			return "", fmt.Errorf("%w: the default template needs the %s section ENS name", ErrMissingSection, SectionDao)
		}
		tpl.Title = fmt.Sprintf(defaultQuestionTitle, ensName)
		tpl.Type = string(TemplateTypeBool)
	}
	if tpl.Type != string(TemplateTypeBool) {
		for _, o := range data.Outcomes {
			if o.Outcome != "" {
				tpl.Outcomes = append(tpl.Outcomes, o.Outcome)
			}
		}
	}

	b, err := json.Marshal(tpl)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// EtherToWei converts a decimal amount of ether (or of an 18 decimals token) to wei.
func EtherToWei(amount float64) (*big.Int, error) {
	if amount < 0 {
		return nil, NewInvalidBondError(amount, "must not be negative")
	}

	r, ok := new(big.Rat).SetString(strconv.FormatFloat(amount, 'f', -1, 64))
	if !ok {
		return nil, NewInvalidBondError(amount, "not a finite number")
	}
	r.Mul(r, new(big.Rat).SetInt(big.NewInt(params.Ether)))
	if !r.IsInt() {
		return nil, NewInvalidBondError(amount, "more than 18 decimals")
	}

	return new(big.Int).Set(r.Num()), nil
}

// AssembleDelayParams maps the delay section to delay modifier parameters. The Safe is the
// executor.
func AssembleDelayParams(session sdk.Session, data DelaySectionData) (types.DelayModuleParams, error) {
	return NewDelayParamsBuilder().
		SetExecutor(session.SafeAddress()).
		SetCooldown(data.ParamsData.Cooldown).
		SetExpiration(data.ParamsData.Timeout).
		Build()
}

// AssembleRealityParams maps the collected DAO and oracle sections to Reality.eth module
// parameters.
func AssembleRealityParams(session sdk.Session, state WizardState) (types.RealityModuleParams, error) {
	oracle, ok := state.Oracle()
	if !ok {
		return types.RealityModuleParams{}, fmt.Errorf("%w: %s", ErrMissingSection, SectionOracle)
	}
	dao, _ := state.Dao()

	executor := session.SafeAddress()
	if dao.ExecutorData.Executor != (common.Address{}) {
		executor = dao.ExecutorData.Executor
	}

	if err := oracle.InstanceData.Validate(); err != nil {
		return types.RealityModuleParams{}, err
	}
	if err := oracle.DelayData.Validate(); err != nil {
		return types.RealityModuleParams{}, err
	}

	bond, err := EtherToWei(oracle.BondData.Bond)
	if err != nil {
		return types.RealityModuleParams{}, err
	}

	arbitrator, err := ResolveArbitrator(session.ChainID(), oracle.ArbitratorData)
	if err != nil {
		return types.RealityModuleParams{}, err
	}

	template, err := BuildTemplate(oracle.TemplateData, dao.SpaceData.ENSName)
	if err != nil {
		return types.RealityModuleParams{}, err
	}

	return NewRealityParamsBuilder().
		SetKind(oracle.InstanceData.InstanceType.ModuleKind()).
		SetExecutor(executor).
		SetOracle(oracle.InstanceData.InstanceAddress).
		SetTimeout(oracle.DelayData.Timeout).
		SetCooldown(oracle.DelayData.Cooldown).
		SetExpiration(oracle.DelayData.Expiration).
		SetBond(bond).
		SetArbitrator(arbitrator).
		SetTemplate(template).
		Build()
}
