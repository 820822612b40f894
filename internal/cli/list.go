package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"omibyte.io/ctucanfd/regmap"
)

// RegisterRow is one line of the register table.
type RegisterRow struct {
	Name        string        `json:"name"`
	Offset      uint32        `json:"offset"`
	Size        uint8         `json:"size"`
	Access      regmap.Access `json:"access"`
	Word        string        `json:"word,omitempty"`
	Description string        `json:"description,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	source := &sourceOptions{}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List the registers of a map",
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			m, err := source.load()
			if err != nil {
				return reportError(formatter, err)
			}
			rows := registerRows(m)
			return formatter.Success(rows, func(w io.Writer) { writeRegisterTable(w, rows) })
		},
	}
	source.addFlags(cmd)

	return cmd
}

func registerRows(m *regmap.Map) []RegisterRow {
	rows := make([]RegisterRow, 0, len(m.Registers))
	for _, r := range m.Registers {
		row := RegisterRow{
			Name:        r.Name,
			Offset:      r.Offset,
			Size:        r.Size,
			Access:      r.Access,
			Description: r.Description,
		}
		if w, ok := m.WordAt(r.WordOffset()); ok {
			row.Word = w.Name
		}
		rows = append(rows, row)
	}
	return rows
}

func writeRegisterTable(w io.Writer, rows []RegisterRow) {
	fmt.Fprintf(w, "%-8s %-4s %-10s %-18s %s\n", "OFFSET", "SIZE", "ACCESS", "REGISTER", "WORD")
	for _, r := range rows {
		word := r.Word
		if word == "" {
			word = "-"
		}
		fmt.Fprintf(w, "%-8s %-4d %-10s %-18s %s\n", fmt.Sprintf("0x%03x", r.Offset), r.Size, r.Access, r.Name, word)
	}
}
