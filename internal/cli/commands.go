// Package cli builds the mmv command line.
package cli

import (
	"io"
	"strings"

	"github.com/arthur-debert/mmv/internal/version"
	"github.com/arthur-debert/mmv/pkg/config"
	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/filesystem"
	"github.com/arthur-debert/mmv/pkg/logging"
	"github.com/arthur-debert/mmv/pkg/massmove"
	"github.com/arthur-debert/mmv/pkg/ui"
	"github.com/arthur-debert/mmv/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// flagKeys maps flags to the configuration keys they override.
var flagKeys = map[string]string{
	"force":   "rename.overwrite",
	"dry-run": "rename.dry_run",
	"prefix":  "placeholder.prefix",
	"format":  "output.format",
	"color":   "output.color",
}

// state is what PersistentPreRunE prepares for the commands.
type state struct {
	verbosity int
	cfg       *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	st := &state{}
	var (
		force       bool
		dryRun      bool
		interactive bool
		prefix      string
		format      string
		color       string
	)

	rootCmd := &cobra.Command{
		Use:     "mmv SOURCE TARGET",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMassMove(cmd, st.cfg, args[0], args[1], interactive)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&st.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto", MsgFlagColor)

	rootCmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, MsgFlagInteractive)
	rootCmd.Flags().StringVar(&prefix, "prefix", "#", MsgFlagPrefix)

	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion("auto", "term", "text", "json", "yaml"))
	_ = rootCmd.RegisterFlagCompletionFunc("color", fixedCompletion(config.ColorAuto, config.ColorAlways, config.ColorNever))

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(st))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// prepare loads the configuration with changed flags applied on top, then
// sets up logging and the color profile from it.
func (st *state) prepare(cmd *cobra.Command) error {
	overrides := make(map[string]interface{})
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if f.Value.Type() == "bool" {
			overrides[key] = f.Value.String() == "true"
		} else {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}
	st.cfg = cfg

	logging.Setup(logging.Options{
		Verbosity: st.verbosity,
		Console:   cmd.ErrOrStderr(),
		NoFile:    !cfg.Logging.File,
	})
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	mode, err := ui.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid color mode")
	}
	ui.ApplyColorMode(mode)
	return nil
}

func newRenderer(cfg *config.Config, w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid output format")
	}
	return ui.NewRenderer(format, w)
}

// runMassMove renames the files matching source to target. With
// interactive the plan is shown on stderr and runs only once approved. A
// partial result is rendered before the error is returned.
func runMassMove(cmd *cobra.Command, cfg *config.Config, source, target string, interactive bool) error {
	logging.LogCommand("mmv", []string{source, target})
	logger := logging.GetLogger("cli")

	renderer, err := newRenderer(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	mover := massmove.New(filesystem.NewOS(), massmove.Options{Prefix: cfg.Placeholder.Prefix})
	plan, err := mover.Plan(cmd.Context(), massmove.Request{
		Source:    source,
		Target:    target,
		Overwrite: cfg.Rename.Overwrite,
		DryRun:    cfg.Rename.DryRun,
	})
	if err != nil {
		return err
	}

	if interactive && !plan.DryRun {
		dialog := confirmations.NewConsoleDialog(cmd.InOrStdin(), cmd.ErrOrStderr())
		ok, err := dialog.ConfirmPlan(plan)
		if err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "confirmation failed")
		}
		if !ok {
			logger.Info().Int("operations", len(plan.Operations)).Msg("Declined by user")
			return renderer.RenderMessage(MsgDeclined)
		}
	}

	result, runErr := mover.Execute(cmd.Context(), plan)
	if result != nil {
		if err := renderer.RenderResult(result); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to render result")
		}
		logger.Info().
			Int("succeeded", result.Succeeded).
			Int("total", result.Total()).
			Bool("dryRun", result.DryRun).
			Msg("Mass move finished")
	}
	return runErr
}

// PrintError writes err to w in the error style.
func PrintError(w io.Writer, err error) {
	renderer, rerr := ui.NewRenderer(ui.FormatAuto, w)
	if rerr == nil && renderer.RenderError(err) == nil {
		return
	}
	_, _ = io.WriteString(w, "Error: "+strings.TrimSpace(err.Error())+"\n")
}
