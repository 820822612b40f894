package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"omibyte.io/ctucanfd/internal/log"
)

type CheckResult struct {
	Name      string `json:"name"`
	Registers int    `json:"registers"`
	Words     int    `json:"words"`
	Enums     int    `json:"enums"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	source := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a register map",
		Long: `Validate a register map: every word covers 32 bits without overlaps,
registers do not overlap, fields stay inside their register and every code
fits its field. Exits with 1 when a problem is found.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			m, err := source.load()
			if err == nil {
				if verr := m.Validate(); verr != nil {
					err = WrapExitError(ExitFailure, m.Name+" is inconsistent", verr)
				}
			}
			if err != nil {
				var exitErr *ExitError
				if errors.As(err, &exitErr) && exitErr.Code == ExitFailure {
					logger := log.WithComponent("check")
					for _, problem := range problems(err) {
						logger.Warn().Msg(problem)
					}
				}
				return reportError(formatter, err)
			}

			out := CheckResult{Name: m.Name, Registers: len(m.Registers), Words: len(m.Words), Enums: len(m.Enums)}
			return formatter.Success(out, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %d registers, %d words, %d enums, ok\n", out.Name, out.Registers, out.Words, out.Enums)
			})
		},
	}
	source.addFlags(cmd)

	return cmd
}

// problems flattens joined errors into one message each.
func problems(err error) []string {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		var out []string
		for _, inner := range e.Unwrap() {
			out = append(out, problems(inner)...)
		}
		return out
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			if nested := problems(inner); len(nested) > 1 {
				return nested
			}
		}
	}
	return []string{err.Error()}
}
