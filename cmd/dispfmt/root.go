package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/dispfmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	verbosity  int
	configPath string
	newline    bool
	buffer     int
	display    string
	style      string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dispfmt [flags] FORMAT [ARG...]",
		Short: "Render a dispfmt template",
		Long: `dispfmt renders FORMAT with the given arguments, like printf(1).

C conversions (%d, %-8s, %#x, %.3f, ...) take one argument each. Each {}
takes one argument, parsed as YAML and displayed in the --display format.
If arguments remain after FORMAT is used up, FORMAT is applied again.`,
		Args: cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, required := opts.configPath, true
			if path == "" {
				path, required = defaultConfigPath(), false
			}
			cfg, err := loadConfig(path, required, changedFlags(cmd, opts))
			if err != nil {
				return err
			}
			return run(out, cfg, args[0], args[1:])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/dispfmt/config.toml)")
	flags.BoolVarP(&opts.newline, "newline", "n", false, "Print a trailing newline")
	flags.IntVar(&opts.buffer, "buffer", 0, "Render into a buffer of this many bytes, truncating (0 means unbounded)")
	flags.StringVarP(&opts.display, "display", "d", "text", "Format for {} fields: text, json, yaml or toml")
	flags.StringVar(&opts.style, "style", "", "Style for {} fields on a terminal: bold, italic, underline, faint or reverse")
	flags.SetInterspersed(false)

	return cmd
}

// changedFlags returns the config keys set explicitly on the command line.
func changedFlags(cmd *cobra.Command, opts options) map[string]interface{} {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("newline") {
		overrides["newline"] = opts.newline
	}
	if flags.Changed("buffer") {
		overrides["buffer"] = opts.buffer
	}
	if flags.Changed("display") {
		overrides["display"] = opts.display
	}
	if flags.Changed("style") {
		overrides["style"] = opts.style
	}
	return overrides
}

// run renders format until the operands are used up.
func run(out io.Writer, cfg config, format string, operands []string) error {
	format = unescape(format)
	slots := argSlots(format)
	conv := converter{cfg: cfg, style: isTerminal(out)}
	log.Debug().Str("format", format).Int("slots", len(slots)).Int("operands", len(operands)).Msg("Rendering")

	for pass := 0; pass == 0 || len(operands) > 0; pass++ {
		args, rest, err := conv.convert(slots, operands)
		if err != nil {
			return err
		}
		st, err := render(out, cfg, format, dispfmt.NewArgs(args...))
		if err != nil {
			return err
		}
		log.Debug().
			Int("pass", pass).
			Int("native", st.Native).
			Int("opaque", st.Opaque).
			Int("invalid", st.Invalid).
			Int("skipped", st.Skipped).
			Int("bytes", st.Bytes).
			Msg("Render completed")
		if st.Skipped > 0 {
			log.Info().Int("skipped", st.Skipped).Msg("Some {} fields could not be displayed")
		}
		if !takesOperands(slots) && len(rest) > 0 {
			log.Warn().Strs("operands", rest).Msg("Ignoring operands, format takes no arguments")
			break
		}
		operands = rest
	}

	if cfg.Newline {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("%w: %w", dispfmt.ErrSinkWrite, err)
		}
	}
	return nil
}

// render picks the sink: a fixed buffer when configured, the byte sink for
// the process's standard output, and a stream otherwise.
func render(out io.Writer, cfg config, format string, args *dispfmt.Args) (dispfmt.Stats, error) {
	if cfg.Buffer > 0 {
		sink := dispfmt.Buffer(make([]byte, cfg.Buffer))
		st, err := dispfmt.Render(sink, format, args)
		if err != nil {
			return st, err
		}
		if sink.Truncated() {
			log.Warn().Int("buffer", cfg.Buffer).Msg("Output truncated")
		}
		if _, err := out.Write(sink.Bytes()); err != nil {
			return st, fmt.Errorf("%w: %w", dispfmt.ErrSinkWrite, err)
		}
		return st, nil
	}
	if f, ok := out.(*os.File); ok && f == os.Stdout {
		return dispfmt.Render(dispfmt.Stdout(), format, args)
	}
	return dispfmt.Render(dispfmt.Stream(out), format, args)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
