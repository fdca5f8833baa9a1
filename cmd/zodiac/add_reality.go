package zodiac

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/gnosisguild/zodiac"
	"github.com/gnosisguild/zodiac/internal/prompt"
	"github.com/gnosisguild/zodiac/internal/utils/safecast"
	"github.com/gnosisguild/zodiac/sdk"
	"github.com/gnosisguild/zodiac/sdk/evm"
)

// errCanceled is returned when the user leaves the wizard.
var errCanceled = errors.New("wizard canceled")

func buildAddRealityCmd(opts *rootOptions, load runtimeLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "add-reality",
		Short: "Add a Reality.eth module to the Safe",
		Long: `Walks through the DAO and oracle sections of the Reality.eth module wizard, shows the
resulting module parameters for review and proposes the deployment to the Safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, load, func(ctx context.Context, rt *runtime) error {
				return runAddReality(ctx, opts, rt)
			})
		},
	}
}

func runAddReality(ctx context.Context, opts *rootOptions, rt *runtime) error {
	saved, err := loadSetup(opts.setupPath)
	if err != nil {
		return err
	}

	w, err := zodiac.NewWizard(zodiac.SectionDao, zodiac.SectionOracle)
	if err != nil {
		return err
	}
	if err := w.Load(subset(saved, zodiac.SectionDao, zodiac.SectionOracle)); err != nil {
		return err
	}
	sdk.LoggerFrom(ctx).Debugf("reality wizard %s started", w.ID())

	for {
		var agg zodiac.Aggregator
		var ask func() error
		switch w.Current() {
		case zodiac.SectionDao:
			dao := zodiac.NewDaoSection()
			agg, ask = dao, func() error { return askDaoSection(ctx, rt, dao) }
		case zodiac.SectionOracle:
			oracle := zodiac.NewOracleSection(rt.session.ChainID())
			agg, ask = oracle, func() error { return askOracleSection(ctx, rt, oracle) }
		default:
			req, nav, err := reviewReality(ctx, rt, w.SetupData(), opts.dryRun)
			if err != nil {
				return err
			}
			switch nav {
			case navBack:
				if err := w.Back(); err != nil {
					return err
				}
				continue
			case navCancel:
				return errCanceled
			}
			if err := saveSetup(opts.setupPath, w.SetupData()); err != nil {
				return err
			}

			return rt.deploy(ctx, opts, req)
		}

		if _, err := w.Rehydrate(agg); err != nil {
			return err
		}
		if err := ask(); err != nil {
			return err
		}

		data := agg.Collect()
		if err := zodiac.ValidateSection(data); err != nil {
			if infoErr := rt.driver.Info(ctx, err.Error()); infoErr != nil {
				return infoErr
			}
			continue
		}

		nav, err := askNavigation(ctx, rt.driver, fmt.Sprintf("%s section", agg.Name()), w.Position() > 0, "Next")
		if err != nil {
			return err
		}
		switch nav {
		case navNext:
			if err := w.Next(data); err != nil {
				return err
			}
		case navBack:
			if err := w.Back(); err != nil {
				return err
			}
		case navCancel:
			return errCanceled
		}
	}
}

func askDaoSection(ctx context.Context, rt *runtime, section *zodiac.DaoSection) error {
	for {
		space := section.Space.Data()
		answer, err := rt.driver.Input(ctx, prompt.InputConfig{
			Message: "Snapshot space ENS name",
			Default: space.ENSName,
			Validator: func(s string) error {
				return zodiac.SpaceData{ENSName: strings.TrimSpace(s)}.Validate()
			},
		})
		if err != nil {
			return err
		}
		space.ENSName = strings.TrimSpace(answer)
		section.Space.Set(space)

		ok, err := confirmENSOwnership(ctx, rt, space.ENSName)
		if err != nil {
			return err
		}
		if ok {
			break
		}
	}

	executor := section.Executor.Data()
	def := ""
	if executor.Executor != (common.Address{}) {
		def = executor.Executor.Hex()
	}
	answer, err := rt.driver.Input(ctx, prompt.InputConfig{
		Message:   "Executor address (empty for the Safe)",
		Default:   def,
		Validator: validateOptionalAddress,
	})
	if err != nil {
		return err
	}
	executor.Executor = common.Address{}
	if strings.TrimSpace(answer) != "" {
		executor.Executor = common.HexToAddress(strings.TrimSpace(answer))
	}
	section.Executor.Set(executor)

	return nil
}

// confirmENSOwnership warns when the Safe does not own the ENS name and asks whether to keep
// it. Names that cannot be checked are kept.
func confirmENSOwnership(ctx context.Context, rt *runtime, name string) (bool, error) {
	if name == "" || rt.ens == nil {
		return true, nil
	}

	ownership, err := rt.ens.CheckOwnership(ctx, rt.session, name)
	switch {
	case errors.Is(err, evm.ErrENSUnsupported):
		return true, rt.driver.Info(ctx, fmt.Sprintf("ENS ownership of %s cannot be checked on %s", name, rt.session.ChainID().Name()))
	case err != nil:
		sdk.LoggerFrom(ctx).Warnf("failed to check ENS ownership of %s: %v", name, err)
		return true, nil
	case !ownership.SecurityRisk():
		return true, nil
	}

	if err := rt.driver.Info(ctx, securityRiskMessage(ownership)); err != nil {
		return false, err
	}

	return rt.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Use this ENS name anyway?"})
}

func securityRiskMessage(o evm.ENSOwnership) string {
	return fmt.Sprintf("Security Risk Detected: %s is owned by %s, not by the Safe %s. "+
		"The owner can change the snapshot space the module executes proposals from.",
		o.Name, o.Owner.Hex(), o.Safe.Hex())
}

func askOracleSection(ctx context.Context, rt *runtime, section *zodiac.OracleSection) error {
	steps := []func(context.Context, *runtime, *zodiac.OracleSection) error{
		askOracleTemplate,
		askOracleInstance,
		askOracleDelay,
		askOracleBond,
		askOracleArbitrator,
	}
	for _, step := range steps {
		if err := step(ctx, rt, section); err != nil {
			return err
		}
	}

	return nil
}

func askOracleTemplate(ctx context.Context, rt *runtime, section *zodiac.OracleSection) error {
	data := section.Template.Data()

	templates := []string{zodiac.TemplateDefault, zodiac.TemplateCustom}
	idx, err := rt.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Oracle template",
		Options:      templates,
		DefaultIndex: max(prompt.IndexOf(templates, data.Template), 0),
	})
	if err != nil {
		return err
	}
	data.Template = templates[idx]

	if data.Template == zodiac.TemplateCustom {
		if data.Language, err = rt.driver.Input(ctx, prompt.InputConfig{Message: "Language", Default: data.Language}); err != nil {
			return err
		}
		if data.Category, err = rt.driver.Input(ctx, prompt.InputConfig{Message: "Category", Default: data.Category}); err != nil {
			return err
		}

		kinds := []string{
			string(zodiac.TemplateTypeBool),
			string(zodiac.TemplateTypeSingleSelect),
			string(zodiac.TemplateTypeMultipleSelect),
		}
		idx, err := rt.driver.Select(ctx, prompt.SelectConfig{
			Message:      "Question type",
			Options:      kinds,
			DefaultIndex: max(prompt.IndexOf(kinds, string(data.TemplateType)), 0),
		})
		if err != nil {
			return err
		}
		data.TemplateType = zodiac.TemplateType(kinds[idx])

		if data.TemplateType != zodiac.TemplateTypeBool {
			current := make([]string, 0, len(data.Outcomes))
			for _, o := range data.Outcomes {
				if o.Outcome != "" {
					current = append(current, o.Outcome)
				}
			}
			answer, err := rt.driver.Input(ctx, prompt.InputConfig{
				Message: "Outcomes (comma separated)",
				Default: strings.Join(current, ", "),
			})
			if err != nil {
				return err
			}

			data.Outcomes = nil
			for _, o := range strings.Split(answer, ",") {
				if o = strings.TrimSpace(o); o != "" {
					data.Outcomes = append(data.Outcomes, zodiac.Outcome{Outcome: o})
				}
			}
		}
	}
	section.Template.Set(data)

	return nil
}

func askOracleInstance(ctx context.Context, rt *runtime, section *zodiac.OracleSection) error {
	data := section.Instance.Data()

	instances := zodiac.OracleOptions(rt.session.ChainID())
	options := make([]string, 0, len(instances)+1)
	defaultIndex := len(instances)
	for i, o := range instances {
		options = append(options, o.Label())
		if o.Address == data.InstanceAddress && o.Type == data.InstanceType {
			defaultIndex = i
		}
	}
	options = append(options, string(zodiac.InstanceTypeCustom))

	idx, err := rt.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Oracle instance",
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}

	if idx < len(instances) {
		data.InstanceAddress = instances[idx].Address
		data.InstanceType = instances[idx].Type
	} else {
		current := common.Address{}
		if data.InstanceType == zodiac.InstanceTypeCustom {
			current = data.InstanceAddress
		}
		addr, err := askAddress(ctx, rt.driver, "Oracle instance address", current)
		if err != nil {
			return err
		}
		data.InstanceAddress = addr
		data.InstanceType = zodiac.InstanceTypeCustom
	}
	section.Instance.Set(data)

	return nil
}

func askOracleDelay(ctx context.Context, rt *runtime, section *zodiac.OracleSection) error {
	data := section.Delay.Data()

	var err error
	if data.Timeout, data.TimeoutUnit, err = askTimespan(ctx, rt.driver, "Timeout", data.Timeout, data.TimeoutUnit); err != nil {
		return err
	}
	if data.Cooldown, data.CooldownUnit, err = askTimespan(ctx, rt.driver, "Cooldown", data.Cooldown, data.CooldownUnit); err != nil {
		return err
	}
	if data.Expiration, data.ExpirationUnit, err = askTimespan(ctx, rt.driver, "Expiration", data.Expiration, data.ExpirationUnit); err != nil {
		return err
	}
	section.Delay.Set(data)

	return nil
}

func askOracleBond(ctx context.Context, rt *runtime, section *zodiac.OracleSection) error {
	data := section.Bond.Data()

	currency := section.Instance.Data().InstanceType
	answer, err := rt.driver.Input(ctx, prompt.InputConfig{
		Message:   fmt.Sprintf("Minimum bond (%s)", currency),
		Default:   strconv.FormatFloat(data.Bond, 'f', -1, 64),
		Validator: validateAmount,
	})
	if err != nil {
		return err
	}
	data.Bond, err = safecast.StringToFloat64(answer)
	if err != nil {
		return err
	}
	section.Bond.Set(data)

	return nil
}

func askOracleArbitrator(ctx context.Context, rt *runtime, section *zodiac.OracleSection) error {
	data := section.Arbitrator.Data()

	options := make([]string, len(zodiac.ArbitratorOptions))
	for i, o := range zodiac.ArbitratorOptions {
		options[i] = string(o)
	}
	idx, err := rt.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Arbitrator",
		Options:      options,
		DefaultIndex: max(prompt.IndexOf(options, string(data.ArbitratorOption)), 0),
	})
	if err != nil {
		return err
	}
	data.ArbitratorOption = zodiac.ArbitratorOptions[idx]

	data.CustomArbitrator = common.Address{}
	if data.ArbitratorOption == zodiac.ArbitratorCustom {
		if data.CustomArbitrator, err = askAddress(ctx, rt.driver, "Arbitrator address", section.Arbitrator.Data().CustomArbitrator); err != nil {
			return err
		}
	}
	section.Arbitrator.Set(data)

	return nil
}

// reviewReality shows the assembled module parameters and asks what to do with them.
func reviewReality(ctx context.Context, rt *runtime, state zodiac.WizardState, dryRun bool) (zodiac.DeployRequest, navigation, error) {
	params, err := zodiac.AssembleRealityParams(rt.session, state)
	if err != nil {
		if infoErr := rt.driver.Info(ctx, err.Error()); infoErr != nil {
			return zodiac.DeployRequest{}, navCancel, infoErr
		}

		return zodiac.DeployRequest{}, navBack, nil
	}

	if err := printJSON(rt.out, params); err != nil {
		return zodiac.DeployRequest{}, navCancel, err
	}

	next := "Deploy"
	if dryRun {
		next = "Print transactions"
	}
	nav, err := askNavigation(ctx, rt.driver, "Review", true, next)
	if err != nil {
		return zodiac.DeployRequest{}, navCancel, err
	}

	return zodiac.DeployRequest{Params: params}, nav, nil
}
