package zodiac

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gnosisguild/zodiac/internal/prompt"
	"github.com/gnosisguild/zodiac/internal/utils/safecast"
	"github.com/gnosisguild/zodiac/types"
)

// parseSeconds accepts a plain number of seconds or a duration such as "36h" or "7d".
func parseSeconds(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}

	d, err := types.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	return d.Seconds(), nil
}

func validateSeconds(s string) error {
	_, err := parseSeconds(s)
	return err
}

func validateAddress(s string) error {
	if !common.IsHexAddress(strings.TrimSpace(s)) {
		return fmt.Errorf("invalid address %q", s)
	}

	return nil
}

func validateOptionalAddress(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return validateAddress(s)
}

func validateAmount(s string) error {
	v, err := safecast.StringToFloat64(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q", s)
	}
	if v < 0 {
		return errors.New("amount must not be negative")
	}

	return nil
}

func askSeconds(ctx context.Context, d prompt.Driver, message string, current uint64) (uint64, error) {
	answer, err := d.Input(ctx, prompt.InputConfig{
		Message:   message,
		Default:   strconv.FormatUint(current, 10),
		Help:      "Seconds, or a duration such as 36h or 7d",
		Validator: validateSeconds,
	})
	if err != nil {
		return 0, err
	}

	return parseSeconds(answer)
}

// askTimespan asks for the unit first and then the amount in that unit.
func askTimespan(ctx context.Context, d prompt.Driver, message string, seconds uint64, unit types.TimeUnit) (uint64, types.TimeUnit, error) {
	options := make([]string, len(types.TimeUnits))
	for i, u := range types.TimeUnits {
		options[i] = string(u)
	}

	idx, err := d.Select(ctx, prompt.SelectConfig{
		Message:      message + " unit",
		Options:      options,
		DefaultIndex: max(prompt.IndexOf(options, string(unit)), 0),
	})
	if err != nil {
		return 0, "", err
	}
	unit = types.TimeUnits[idx]

	answer, err := d.Input(ctx, prompt.InputConfig{
		Message: fmt.Sprintf("%s (%s)", message, unit),
		Default: strconv.FormatUint(unit.FromSeconds(seconds), 10),
		Validator: func(s string) error {
			_, err := safecast.StringToUint64(s)
			return err
		},
	})
	if err != nil {
		return 0, "", err
	}
	amount, err := safecast.StringToUint64(answer)
	if err != nil {
		return 0, "", err
	}

	seconds, err = unit.ToSeconds(amount)

	return seconds, unit, err
}

func askAddress(ctx context.Context, d prompt.Driver, message string, current common.Address) (common.Address, error) {
	def := ""
	if current != (common.Address{}) {
		def = current.Hex()
	}

	answer, err := d.Input(ctx, prompt.InputConfig{
		Message:   message,
		Default:   def,
		Validator: validateAddress,
	})
	if err != nil {
		return common.Address{}, err
	}

	return common.HexToAddress(strings.TrimSpace(answer)), nil
}

// navigation is the choice made at the end of a wizard section.
type navigation int

const (
	navNext navigation = iota
	navBack
	navCancel
)

func askNavigation(ctx context.Context, d prompt.Driver, message string, canGoBack bool, next string) (navigation, error) {
	choices := []navigation{navNext}
	options := []string{next}
	if canGoBack {
		choices = append(choices, navBack)
		options = append(options, "Back")
	}
	choices = append(choices, navCancel)
	options = append(options, "Cancel")

	idx, err := d.Select(ctx, prompt.SelectConfig{Message: message, Options: options})
	if err != nil {
		return navCancel, err
	}

	return choices[idx], nil
}
