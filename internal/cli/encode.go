package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"omibyte.io/ctucanfd/internal/log"
	"omibyte.io/ctucanfd/regmap"
)

type EncodedWord struct {
	Word   string `json:"word"`
	Offset uint32 `json:"offset"`
	Raw    uint32 `json:"raw"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	source := &sourceOptions{}
	var start string

	cmd := &cobra.Command{
		Use:   "encode <WORD|REGISTER> FIELD=value...",
		Short: "Build a raw word value from field assignments",
		Long: `Build a raw 32-bit word value from FIELD=value assignments.

A value is a name of the field's codes, true or false for single bits, or an
integer. Fields not assigned keep their bits from --start.`,
		Args:          usageArgs(cobra.MinimumNArgs(2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			m, err := source.load()
			if err != nil {
				return reportError(formatter, err)
			}
			initial, err := parseWord(start)
			if err != nil {
				return reportError(formatter, err)
			}

			name := strings.ToUpper(args[0])
			raw, err := m.Encode(name, initial, args[1:]...)
			if err != nil {
				return reportError(formatter, err)
			}

			word, _ := m.Lookup(name)
			warnReadOnly(word, args[1:])

			out := EncodedWord{Word: word.Name, Offset: word.Offset, Raw: raw}
			return formatter.Success(out, func(w io.Writer) {
				fmt.Fprintf(w, "0x%08x\n", out.Raw)
			})
		},
	}
	source.addFlags(cmd)
	cmd.Flags().StringVar(&start, "start", "0", "value the assignments are applied to")

	return cmd
}

// warnReadOnly logs assignments to fields that ignore writes. The value is
// still encoded, it may be compared against a word read back.
func warnReadOnly(word *regmap.Word, assignments []string) {
	logger := log.WithComponent("encode")
	for _, a := range assignments {
		name, _, _ := strings.Cut(a, "=")
		f, ok := word.Field(strings.ToUpper(strings.TrimSpace(name)))
		if ok && f.Access != "" && !f.Access.Writable() {
			logger.Warn().Str("word", word.Name).Str("field", f.Name).Msg("field is read-only")
		}
	}
}
