package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"omibyte.io/ctucanfd/regmap"
)

// DecodedWord is the JSON form of a decoded word.
type DecodedWord struct {
	Word   string         `json:"word"`
	Offset uint32         `json:"offset"`
	Raw    uint32         `json:"raw"`
	Fields []DecodedField `json:"fields"`
}

type DecodedField struct {
	Name     string   `json:"name"`
	Bits     string   `json:"bits"`
	Value    uint32   `json:"value"`
	Names    []string `json:"names,omitempty"`
	Reserved bool     `json:"reserved,omitempty"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	source := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "decode <WORD|REGISTER> <value>",
		Short: "Split a raw word value into its fields",
		Long: `Split a raw 32-bit word value into its fields.

The word is named by itself or by any register packed into it. Coded fields
show every name of their value.`,
		Args:          usageArgs(cobra.ExactArgs(2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			m, err := source.load()
			if err != nil {
				return reportError(formatter, err)
			}
			raw, err := parseWord(args[1])
			if err != nil {
				return reportError(formatter, err)
			}

			d, err := m.Decode(strings.ToUpper(args[0]), raw)
			if err != nil {
				return reportError(formatter, err)
			}
			out := decodedWord(d)
			return formatter.Success(out, func(w io.Writer) { writeDecoded(w, out) })
		},
	}
	source.addFlags(cmd)

	return cmd
}

func decodedWord(d regmap.Decoded) DecodedWord {
	out := DecodedWord{Word: d.Word.Name, Offset: d.Word.Offset, Raw: d.Raw}
	for _, fv := range d.Fields {
		out.Fields = append(out.Fields, DecodedField{
			Name:     fv.Field.Name,
			Bits:     bits(fv.Field),
			Value:    fv.Value,
			Names:    fv.Names,
			Reserved: fv.Field.Reserved,
		})
	}
	return out
}

func writeDecoded(w io.Writer, d DecodedWord) {
	fmt.Fprintf(w, "%s @ 0x%03x = 0x%08x\n", d.Word, d.Offset, d.Raw)
	for _, f := range d.Fields {
		line := fmt.Sprintf("  %-16s %-7s 0x%x", f.Name, f.Bits, f.Value)
		if len(f.Names) > 0 {
			line += "  " + strings.Join(f.Names, " | ")
		}
		fmt.Fprintln(w, line)
	}
}
