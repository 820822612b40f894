package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"omibyte.io/ctucanfd/generator"
	"omibyte.io/ctucanfd/ipxact"
	"omibyte.io/ctucanfd/regmap"
	"omibyte.io/ctucanfd/regs"
)

// sourceOptions selects the register map a command works on: an IP-XACT
// description when In is set, the built-in map otherwise.
type sourceOptions struct {
	In    string
	Block string
}

func (o *sourceOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.In, "in", "", "IP-XACT description to read instead of the built-in map")
	cmd.Flags().StringVar(&o.Block, "block", "", "address block of the description (default: the first one)")
}

func (o *sourceOptions) load() (*regmap.Map, error) {
	if o.In == "" {
		return &regs.Map, nil
	}
	return buildFile(o.In, o.Block)
}

func buildFile(path, blockName string) (*regmap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot read description", err)
	}
	defer f.Close()

	component, err := ipxact.Decode(f)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot decode %s", filepath.Base(path)), err)
	}

	block, err := component.AddressBlock(blockName)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot select address block", err)
	}

	m, err := generator.Build(block)
	if err != nil {
		return nil, WrapExitError(ExitFailure, fmt.Sprintf("%s does not describe a valid register map", filepath.Base(path)), err)
	}
	return m, nil
}

// reportError writes err through the formatter and returns it as an exit
// error for the caller to propagate.
func reportError(f *OutputFormatter, err error) error {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = WrapExitError(ExitCommandError, "command failed", err)
	}

	code := ErrCodeGeneric
	switch {
	case errors.Is(err, regmap.ErrLayout), errors.Is(err, generator.ErrDescription):
		code = ErrCodeLayout
	case errors.Is(err, os.ErrNotExist), errors.Is(err, ipxact.ErrNoAddressBlock):
		code = ErrCodeInput
	case errors.Is(err, regmap.ErrUnknownWord), errors.Is(err, regmap.ErrUnknownField),
		errors.Is(err, regmap.ErrUnknownEnumValue), errors.Is(err, regmap.ErrValueRange),
		errors.Is(err, regmap.ErrReservedField):
		code = ErrCodeUsage
	}

	if ferr := f.Error(code, exitErr.Error(), nil); ferr != nil {
		return ferr
	}
	return exitErr
}

func parseWord(text string) (uint32, error) {
	v, err := ipxact.ParseInteger(text)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid value", err)
	}
	if v > 0xffffffff {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("value %s does not fit 32 bits", text))
	}
	return uint32(v), nil
}

func bits(f regmap.Field) string {
	if f.Width == 1 {
		return fmt.Sprintf("[%d]", f.Shift)
	}
	return fmt.Sprintf("[%d:%d]", f.High(), f.Shift)
}

// usageArgs reports argument errors with the command error exit code.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}
