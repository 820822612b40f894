package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"omibyte.io/ctucanfd/regmap"
)

type LayoutField struct {
	Name  string `json:"name"`
	Width uint8  `json:"width"`
	Shift uint8  `json:"shift"`
}

type Layout struct {
	Word   string        `json:"word"`
	Offset uint32        `json:"offset"`
	Order  string        `json:"order"`
	Fields []LayoutField `json:"fields"`
}

// NewLayoutCommand creates the layout command.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	source := &sourceOptions{}
	var msbFirst bool

	cmd := &cobra.Command{
		Use:   "layout <WORD|REGISTER>",
		Short: "Print the C bitfield declaration of a word",
		Long: `Print the C bitfield declaration of a word.

Compilers for little-endian targets allocate bitfields from the least
significant bit, big-endian ones from the most significant bit. Both
declarations describe the same bits.`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			m, err := source.load()
			if err != nil {
				return reportError(formatter, err)
			}
			word, err := m.Lookup(strings.ToUpper(args[0]))
			if err != nil {
				return reportError(formatter, err)
			}

			order := regmap.LSBFirst
			if msbFirst {
				order = regmap.MSBFirst
			}

			out := Layout{Word: word.Name, Offset: word.Offset, Order: order.String()}
			for _, f := range word.Declaration(order) {
				out.Fields = append(out.Fields, LayoutField{Name: f.Name, Width: f.Width, Shift: f.Shift})
			}
			return formatter.Success(out, func(w io.Writer) { writeLayout(w, out) })
		},
	}
	source.addFlags(cmd)
	cmd.Flags().BoolVar(&msbFirst, "msb-first", false, "declare fields from the most significant bit")

	return cmd
}

func writeLayout(w io.Writer, l Layout) {
	width := 0
	for _, f := range l.Fields {
		width = max(width, len(f.Name))
	}

	name := strings.ToLower(l.Word)
	fmt.Fprintf(w, "/* %s @ 0x%03x, %s */\n", l.Word, l.Offset, l.Order)
	fmt.Fprintf(w, "union %s_u {\n", name)
	fmt.Fprintln(w, "\tuint32_t u32;")
	fmt.Fprintf(w, "\tstruct %s_s {\n", name)
	for _, f := range l.Fields {
		fmt.Fprintf(w, "\t\tuint32_t %-*s : %d;\n", width, strings.ToLower(f.Name), f.Width)
	}
	fmt.Fprintln(w, "\t} s;")
	fmt.Fprintln(w, "};")
}
