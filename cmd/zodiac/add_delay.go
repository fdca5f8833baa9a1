package zodiac

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnosisguild/zodiac"
	"github.com/gnosisguild/zodiac/internal/prompt"
	"github.com/gnosisguild/zodiac/sdk"
)

func buildAddDelayCmd(opts *rootOptions, load runtimeLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "add-delay",
		Short: "Add a transaction delay modifier to the Safe",
		Long: `Prompts for the delay modifier cooldown and expiration, optionally attaches it to an
existing modifier and proposes its deployment to the Safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, load, func(ctx context.Context, rt *runtime) error {
				return runAddDelay(ctx, opts, rt)
			})
		},
	}
}

func runAddDelay(ctx context.Context, opts *rootOptions, rt *runtime) error {
	saved, err := loadSetup(opts.setupPath)
	if err != nil {
		return err
	}

	w, err := zodiac.NewWizard(zodiac.SectionDelay)
	if err != nil {
		return err
	}
	if err := w.Load(subset(saved, zodiac.SectionDelay)); err != nil {
		return err
	}

	section := zodiac.NewDelaySection()
	if _, err := w.Rehydrate(section); err != nil {
		return err
	}

	if err := rt.fetchModules(ctx); err != nil {
		sdk.LoggerFrom(ctx).Warnf("cannot list modules to attach to: %v", err)
	}

	if err := askDelaySection(ctx, rt, section); err != nil {
		return err
	}

	data := section.CollectData()
	if err := zodiac.ValidateSection(data); err != nil {
		return err
	}
	if err := w.Next(data); err != nil {
		return err
	}
	if err := saveSetup(opts.setupPath, w.SetupData()); err != nil {
		return err
	}

	params, err := zodiac.AssembleDelayParams(rt.session, data)
	if err != nil {
		return err
	}

	return rt.deploy(ctx, opts, zodiac.DeployRequest{Params: params, AttachTo: data.AttachData.Module})
}

func askDelaySection(ctx context.Context, rt *runtime, section *zodiac.DelaySection) error {
	params := section.Params.Data()

	cooldown, err := askSeconds(ctx, rt.driver, "Cooldown", params.Cooldown)
	if err != nil {
		return err
	}
	params.Cooldown = cooldown

	timeout, err := askSeconds(ctx, rt.driver, "Expiration (0 never expires)", params.Timeout)
	if err != nil {
		return err
	}
	params.Timeout = timeout
	section.Params.Set(params)

	attach := section.Attach.Data()
	if attach.Module != nil {
		if _, ok := rt.modules.FindModule(*attach.Module); !ok {
			sdk.LoggerFrom(ctx).Warnf("saved attach target %s is not enabled on the Safe, enabling on the Safe instead", attach.Module.Hex())
			attach = zodiac.AttachData{}
		}
	}

	attachable := rt.modules.AttachableModules()
	if len(attachable) == 0 {
		section.Attach.Set(zodiac.AttachData{})
		return nil
	}

	options := []string{"Safe " + rt.session.SafeAddress().Hex()}
	defaultIndex := 0
	for i, m := range attachable {
		options = append(options, fmt.Sprintf("%s modifier %s", m.Kind, m.Address.Hex()))
		if attach.Module != nil && *attach.Module == m.Address {
			defaultIndex = i + 1
		}
	}

	idx, err := rt.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Enable the delay modifier on",
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}

	if idx == 0 {
		section.Attach.Set(zodiac.AttachData{})
	} else {
		addr := attachable[idx-1].Address
		section.Attach.Set(zodiac.AttachData{Module: &addr})
	}

	return nil
}
