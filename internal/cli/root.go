// Package cli implements the colwriter command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bjaus/colwriter"
	"github.com/bjaus/colwriter/internal/logging"
)

// configNames are searched for, in order, in the XDG config directories when
// no --config flag is given.
var configNames = []string{
	"colwriter/config.yaml",
	"colwriter/config.yml",
	"colwriter/config.toml",
}

type flags struct {
	padding   []int
	align     []string
	padChar   []string
	delimiter string
	config    string
	csv       bool
	verbosity int
}

// NewRootCmd returns the colwriter command.
func NewRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "colwriter [file...]",
		Short: "Align delimited text into columns",
		Long: `colwriter reads delimited text from files (or standard input) and prints it
as aligned, padded columns. Fields are split on tabs unless --delimiter says
otherwise.

Settings are read from --config, or from colwriter/config.yaml (or .toml) in
the XDG config directories. Flags override the config file.`,
		Example: `  printf 'a\tb\tc\naa\tbb\tcc\n' | colwriter
  colwriter -d , -a right -p 2 data.txt
  colwriter --csv -p 0,1,2 report.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(f.verbosity, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.IntSliceVarP(&f.padding, "padding", "p", nil, "padding after each column (one value for all, or one per column)")
	fl.StringSliceVarP(&f.align, "align", "a", nil, "alignment: left, center or right (one value for all, or one per column)")
	fl.StringArrayVar(&f.padChar, "pad-char", nil, "fill character (repeat the flag for per-column values)")
	fl.StringVarP(&f.delimiter, "delimiter", "d", "\t", `field delimiter; escapes such as "\t" are interpreted`)
	fl.StringVarP(&f.config, "config", "c", "", "YAML or TOML config file")
	fl.BoolVar(&f.csv, "csv", false, "parse input as CSV, using --delimiter as the separator if it is one character")
	cmd.PersistentFlags().CountVarP(&f.verbosity, "verbose", "v", "increase verbosity (-v, -vv, -vvv)")

	return cmd
}

func run(cmd *cobra.Command, args []string, f flags) error {
	logger := logging.Get("cli")

	opts, err := loadConfigOptions(f.config, logger)
	if err != nil {
		return err
	}
	flagOpts, err := flagOptions(cmd, f)
	if err != nil {
		return err
	}
	w, err := colwriter.New(append(opts, flagOpts...)...)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		if err := readInput(cmd, w, name, f); err != nil {
			return err
		}
	}
	logger.Debug().Int("rows", w.Len()).Msg("Input buffered")

	if _, err := w.WriteTo(cmd.OutOrStdout()); err != nil {
		if errors.Is(err, colwriter.ErrEmptyBuffer) {
			logger.Info().Msg("No input rows")
			return nil
		}
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout())
	return err
}

func loadConfigOptions(path string, logger zerolog.Logger) ([]colwriter.Option, error) {
	if path == "" {
		path = searchConfig()
		if path == "" {
			logger.Debug().Msg("No config file found")
			return nil, nil
		}
	}
	kind, err := colwriter.ConfigKindFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	cfg, err := colwriter.LoadConfig(file, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug().Str("path", path).Int("keys", len(cfg)).Msg("Config loaded")
	return []colwriter.Option{colwriter.WithConfig(cfg)}, nil
}

func searchConfig() string {
	for _, name := range configNames {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path
		}
	}
	return ""
}

func flagOptions(cmd *cobra.Command, f flags) ([]colwriter.Option, error) {
	var opts []colwriter.Option
	fl := cmd.Flags()

	if fl.Changed("padding") {
		if len(f.padding) == 1 {
			opts = append(opts, colwriter.WithPadding(f.padding[0]))
		} else {
			opts = append(opts, colwriter.WithColumnPadding(f.padding...))
		}
	}
	if fl.Changed("align") {
		aligns := make([]colwriter.Alignment, len(f.align))
		for i, s := range f.align {
			a, err := colwriter.ParseAlignment(s)
			if err != nil {
				return nil, err
			}
			aligns[i] = a
		}
		if len(aligns) == 1 {
			opts = append(opts, colwriter.WithAlignment(aligns[0]))
		} else {
			opts = append(opts, colwriter.WithColumnAlignment(aligns...))
		}
	}
	if fl.Changed("pad-char") {
		if len(f.padChar) == 1 {
			opts = append(opts, colwriter.WithPadChar(f.padChar[0]))
		} else {
			opts = append(opts, colwriter.WithColumnPadChar(f.padChar...))
		}
	}
	if fl.Changed("delimiter") {
		opts = append(opts, colwriter.WithDelimiter(unescape(f.delimiter)))
	}
	return opts, nil
}

// unescape interprets Go escape sequences in s, returning s unchanged when
// it is not a valid quoted-string body.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return u
}

func readInput(cmd *cobra.Command, w *colwriter.Writer, name string, f flags) error {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}

	if f.csv {
		var comma rune
		if d := []rune(w.Delimiter()); len(d) == 1 {
			comma = d[0]
		}
		if comma == '\t' && !cmd.Flags().Changed("delimiter") {
			comma = ','
		}
		return w.ReadCSV(r, comma)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	w.WriteLine(strings.TrimSuffix(string(data), "\n"))
	return nil
}
