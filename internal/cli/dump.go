package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"omibyte.io/ctucanfd/internal/log"
	"omibyte.io/ctucanfd/mmio"
	"omibyte.io/ctucanfd/regmap"
)

type dumpOptions struct {
	Device      string
	File        string
	Base        uint64
	Size        uint32
	ReadEffects bool
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	source := &sourceOptions{}
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Read and decode every word of a register block",
		Long: `Read every laid-out word of a register block and decode it.

The block is read from a live controller through a memory mapping of --device
(/dev/mem or a UIO device) at --base, or from a little-endian dump in --file.
Words without a readable register are skipped. Reading some registers has side
effects on the controller, for example RX_DATA advances the receive buffer;
they are only read from a device with --read-effects.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, source, opts, cmd)
		},
	}
	source.addFlags(cmd)
	cmd.Flags().StringVar(&opts.Device, "device", "", "device file to map")
	cmd.Flags().StringVar(&opts.File, "file", "", "register dump to decode instead of a device")
	cmd.Flags().Uint64Var(&opts.Base, "base", 0, "physical address of the block in --device")
	cmd.Flags().Uint32Var(&opts.Size, "size", 0x800, "size of the block in bytes")
	cmd.Flags().BoolVar(&opts.ReadEffects, "read-effects", false, "also read registers whose reads change the controller state")
	cmd.MarkFlagsOneRequired("device", "file")
	cmd.MarkFlagsMutuallyExclusive("device", "file")

	return cmd
}

func runDump(rootOpts *RootOptions, source *sourceOptions, opts *dumpOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	m, err := source.load()
	if err != nil {
		return reportError(formatter, err)
	}

	bus, closeBus, err := openBus(opts)
	if err != nil {
		return reportError(formatter, err)
	}
	defer closeBus()

	logger := log.Derive(func(c *zerolog.Context) {
		*c = c.Str("component", "dump").Str("block", m.Name)
		if opts.Device != "" {
			*c = c.Str("device", opts.Device).Uint64("base", opts.Base)
		}
	})

	// A captured file has no read side effects left to trigger
	words, err := readWords(m, bus, opts.ReadEffects || opts.File != "", logger)
	if err != nil {
		return reportError(formatter, err)
	}
	formatter.VerboseLog("Read %d of %d words", len(words), len(m.Words))

	return formatter.Success(words, func(w io.Writer) {
		for i, d := range words {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeDecoded(w, d)
		}
	})
}

// readWords reads and decodes every readable word of m. Words whose reads
// change the device are left alone unless effects is set.
func readWords(m *regmap.Map, bus mmio.Bus, effects bool, logger zerolog.Logger) ([]DecodedWord, error) {
	var words []DecodedWord
	for i := range m.Words {
		word := &m.Words[i]

		readable, effect := m.Readable(word)
		if !readable {
			logger.Debug().Str("word", word.Name).Msg("skipped, not readable")
			continue
		}
		if effect && !effects {
			logger.Info().Str("word", word.Name).Msg("skipped, reading has side effects")
			continue
		}

		raw, err := bus.Read32(word.Offset)
		if err != nil {
			logger.Debug().Str("word", word.Name).Err(err).Msg("skipped")
			continue
		}

		d, err := m.Decode(word.Name, raw)
		if err != nil {
			return nil, err
		}
		words = append(words, decodedWord(d))
	}
	return words, nil
}

func openBus(opts *dumpOptions) (mmio.Bus, func(), error) {
	if opts.File != "" {
		f, err := os.Open(opts.File)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "cannot read dump", err)
		}
		defer f.Close()

		mem, err := mmio.LoadMemory(f)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "cannot read dump", err)
		}
		return mem, func() {}, nil
	}

	mapping, err := mmio.Open(opts.Device, int64(opts.Base), int(opts.Size), mmio.ReadOnly)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "cannot map device", err)
	}
	return mapping, func() { mapping.Close() }, nil
}
