package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	decimal "github.com/chtoucas/Narvalo.NET-sub007"
)

// errRejected is returned when at least one value could not be rounded.
var errRejected = errors.New("some values were rejected")

// options are the settings of the root command.
// Each one comes from its flag or, if the flag is not set, from the
// DECROUND_* environment variable.
type options struct {
	Mode    decimal.RoundingMode `mapstructure:"mode"`
	Scale   int                  `mapstructure:"scale"`
	Verbose bool                 `mapstructure:"verbose"`
}

// run executes decround with the given arguments and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "decround",
	})
	root, err := newRootCmd(viper.New(), logger, stdin, stdout)
	if err != nil {
		logger.Error("decround failed", "err", err)
		return 1
	}
	root.SetArgs(valueArgs(root.Flags(), args))
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			logger.Error("decround failed", "err", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(v *viper.Viper, logger *log.Logger, stdin io.Reader, stdout io.Writer) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "decround [value ...]",
		Short: "Round decimal numbers",
		Long: `decround rounds decimal numbers to a number of digits after the decimal point.

Values are taken from the arguments or, when there are none, read one per
line from the standard input. Each rounded value is printed on its own line.

  decround --mode half-up -1.5 2.5

Defaults can be overridden with DECROUND_MODE, DECROUND_SCALE and
DECROUND_VERBOSE. Flags take precedence over the environment.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts options
			if err := v.Unmarshal(&opts, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
				return fmt.Errorf("decoding options: %w", err)
			}
			if opts.Verbose {
				logger.SetLevel(log.DebugLevel)
			}
			r := rounder{
				mode:   opts.Mode,
				scale:  opts.Scale,
				logger: logger,
				out:    stdout,
			}
			if err := r.check(); err != nil {
				return err
			}
			if len(args) > 0 {
				return r.roundAll(args)
			}
			return r.roundLines(stdin)
		},
	}

	cmd.Flags().String("mode", decimal.ToEven.String(), "rounding mode, see 'decround modes'")
	cmd.Flags().Int("scale", 0, "number of digits after the decimal point")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	v.SetEnvPrefix("DECROUND")
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	cmd.AddCommand(newModesCmd(stdout))
	return cmd, nil
}

// valueArgs moves negative numbers behind a "--" separator, so that
// "-1.5" is read as a value rather than as a shorthand flag.
// Arguments are returned unchanged if there is no such number before
// an existing separator.
func valueArgs(flags *pflag.FlagSet, args []string) []string {
	var opts, values []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			values = append(values, args[i+1:]...)
			i = len(args)
		case isNegative(a):
			values = append(values, a)
		case strings.HasPrefix(a, "-"):
			opts = append(opts, a)
			if takesValue(flags, a) && i+1 < len(args) {
				i++
				opts = append(opts, args[i])
			}
		default:
			values = append(values, a)
		}
	}
	if !slices.ContainsFunc(values, isNegative) {
		return args
	}
	return append(append(opts, "--"), values...)
}

// isNegative reports whether a looks like a negative number.
func isNegative(a string) bool {
	return len(a) > 1 && a[0] == '-' && (a[1] >= '0' && a[1] <= '9' || a[1] == '.')
}

// takesValue reports whether the flag a consumes the next argument.
func takesValue(flags *pflag.FlagSet, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(a, "--"); ok {
		f = flags.Lookup(name)
	} else if len(a) == 2 {
		f = flags.ShorthandLookup(a[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func newModesCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the rounding modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range decimal.Modes() {
				status := "supported"
				if !m.IsSupported() {
					status = "unsupported"
				}
				if _, err := fmt.Fprintf(stdout, "%v\t%v\n", m, status); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// rounder rounds textual values and prints the results.
type rounder struct {
	mode   decimal.RoundingMode
	scale  int
	logger *log.Logger
	out    io.Writer
}

// check fails fast if the mode or the scale cannot be used.
func (r rounder) check() error {
	if _, err := (decimal.Decimal{}).RoundTo(r.scale, r.mode); err != nil {
		return err
	}
	r.logger.Debug("rounder ready", "mode", r.mode, "scale", r.scale)
	return nil
}

func (r rounder) roundAll(values []string) error {
	var rejected int
	for _, s := range values {
		if err := r.round(s); err != nil {
			if errors.Is(err, errRejected) {
				rejected++
				continue
			}
			return err
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%v value(s): %w", rejected, errRejected)
	}
	return nil
}

func (r rounder) roundLines(in io.Reader) error {
	var values []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading values: %w", err)
	}
	return r.roundAll(values)
}

// round rounds a single value.
// Values that cannot be parsed or rounded are logged and reported as
// errRejected, whereas write failures are returned as is.
func (r rounder) round(s string) error {
	d, err := decimal.Parse(s)
	if err != nil {
		r.logger.Error("rejected value", "value", s, "err", err)
		return errRejected
	}
	f, err := d.RoundTo(r.scale, r.mode)
	if err != nil {
		r.logger.Error("rejected value", "value", s, "err", err)
		return errRejected
	}
	r.logger.Debug("rounded", "value", d, "result", f)
	_, err = fmt.Fprintln(r.out, f)
	return err
}
