// Package lcovsum wires the CLI commands together.
package lcovsum

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/term"

	"github.com/meza/lcov-summary/cmd/lcovsum/version"
	"github.com/meza/lcov-summary/internal/constants"
	"github.com/meza/lcov-summary/internal/environment"
	"github.com/meza/lcov-summary/internal/i18n"
	"github.com/meza/lcov-summary/internal/lcov"
	"github.com/meza/lcov-summary/internal/logger"
	"github.com/meza/lcov-summary/internal/perf"
	"github.com/meza/lcov-summary/internal/report"
	"github.com/meza/lcov-summary/internal/tui"
)

// errMissingArgument signals a missing positional argument. The usage line is
// printed before it is returned, so cobra's own reporting stays silent.
var errMissingArgument = errors.New("missing lcov file argument")

// errReportUnreadable signals an unreadable input file, already reported to
// the user.
var errReportUnreadable = errors.New("coverage report unreadable")

type reportOptions struct {
	Path    string
	Quiet   bool
	Debug   bool
	NoColor bool
}

type reportDeps struct {
	fs     afero.Fs
	logger *logger.Logger
}

type reportRunner func(context.Context, *cobra.Command, reportOptions, reportDeps) error

func Command() *cobra.Command {
	return commandWithRunner(runReport)
}

func commandWithRunner(runner reportRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     constants.CommandName + " <lcov_file>",
		Short:   i18n.T("app.description"),
		Version: environment.AppVersion(),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, span := perf.StartSpan(cmd.Context(), "app.command.report")

			quiet, err := cmd.Flags().GetBool("quiet")
			if err != nil {
				span.SetAttributes(attribute.Bool("success", false))
				span.End()
				return err
			}
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				span.SetAttributes(attribute.Bool("success", false))
				span.End()
				return err
			}
			noColor, err := cmd.Flags().GetBool("no-color")
			if err != nil {
				span.SetAttributes(attribute.Bool("success", false))
				span.End()
				return err
			}
			showPerf, err := cmd.Flags().GetBool("perf")
			if err != nil {
				span.SetAttributes(attribute.Bool("success", false))
				span.End()
				return err
			}

			log := logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet, debug)

			if len(args) < 1 {
				log.Log(i18n.T("cmd.root.usage"), true)
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				span.SetAttributes(attribute.Bool("success", false))
				span.End()
				return errMissingArgument
			}

			deps := reportDeps{
				fs:     afero.NewOsFs(),
				logger: log,
			}

			err = runner(ctx, cmd, reportOptions{
				Path:    args[0],
				Quiet:   quiet,
				Debug:   debug,
				NoColor: noColor,
			}, deps)

			span.SetAttributes(attribute.Bool("success", err == nil))
			span.End()

			if showPerf {
				printPerfSummary(log)
			}

			if err != nil {
				cmd.SilenceUsage = true
				if errors.Is(err, errReportUnreadable) {
					// Already reported through deps.logger.
					cmd.SilenceErrors = true
				}
			}

			return err
		},
	}
	cobra.MousetrapHelpText = "" // allow the app to run in windows by clicking the exe

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, i18n.T("cmd.root.flag.quiet"))
	rootCmd.PersistentFlags().BoolP("debug", "d", false, i18n.T("cmd.root.flag.debug"))
	rootCmd.PersistentFlags().Bool("no-color", false, i18n.T("cmd.root.flag.no_color"))
	rootCmd.PersistentFlags().Bool("perf", false, i18n.T("cmd.root.flag.perf"))
	rootCmd.AddCommand(version.Command())

	translateDefaultHelpFacilities(rootCmd)
	fixFlagUsageAlignment(rootCmd)

	return rootCmd
}

func runReport(_ context.Context, cmd *cobra.Command, opts reportOptions, deps reportDeps) error {
	table, err := lcov.Parse(deps.fs, opts.Path)
	if err != nil {
		deps.logger.Error(i18n.T("error.file_not_found", i18n.Tvars{
			Data: &i18n.TData{"path": opts.Path},
		}))
		return errReportUnreadable
	}

	deps.logger.Debug(i18n.T("cmd.root.debug.parsed", i18n.Tvars{
		Data: &i18n.TData{"files": len(table), "path": opts.Path},
	}))

	colorize := !opts.NoColor && tui.IsTerminalWriter(cmd.OutOrStdout())
	view := report.Render(table, colorize)

	if tui.ShouldUsePager(opts.Quiet, cmd.InOrStdin(), cmd.OutOrStdout()) {
		model := tui.NewPagerModel(view)
		program := tea.NewProgram(model, tui.ProgramOptions(cmd.InOrStdin(), cmd.OutOrStdout())...)
		if _, err := program.Run(); err != nil {
			return err
		}
		return nil
	}

	deps.logger.Log(view, true)
	return nil
}

func printPerfSummary(log *logger.Logger) {
	log.Errorf("%s\n", i18n.T("perf.header"))
	for _, span := range perf.GetSpans() {
		log.Errorf("  %s: %s\n", span.Name, span.Duration())
	}
}

func translateDefaultHelpFacilities(rootCmd *cobra.Command) {
	subcommands := rootCmd.Commands()
	allCommands := make([]*cobra.Command, 0, len(subcommands)+1)
	allCommands = append(allCommands, rootCmd)
	allCommands = append(allCommands, subcommands...)

	for _, cmd := range allCommands {
		cmd.InitDefaultHelpFlag()
		flags := cmd.Flags()
		flags.Lookup("help").Usage = i18n.T("cmd.help.template", i18n.Tvars{
			Data: &i18n.TData{"command": cmd.Name()},
		})
	}

	rootCmd.InitDefaultHelpCmd()
	helpCmd, _, e := rootCmd.Find([]string{"help"})

	if e == nil {
		helpCmd.Short = i18n.T("cmd.help.usage.short")
		helpCmd.Long = i18n.T("cmd.help.usage.long", i18n.Tvars{
			Data: &i18n.TData{"appName": rootCmd.Name()},
		})
		helpCmd.Run = func(c *cobra.Command, args []string) {
			cmd, _, e := c.Root().Find(args)
			if cmd == nil || e != nil {
				c.PrintErrln(i18n.T("cmd.help.error", i18n.Tvars{
					Data: &i18n.TData{"topic": fmt.Sprintf("%#q", args)},
				}) + "\n")
				cobra.CheckErr(c.Root().Usage())
			} else {
				cmd.InitDefaultHelpFlag()
				cmd.InitDefaultVersionFlag()
				cobra.CheckErr(cmd.Help())
			}
		}
	}
}

func fixFlagUsageAlignment(rootCmd *cobra.Command) {
	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	usageTemplate := rootCmd.UsageTemplate()
	usageTemplate = strings.ReplaceAll(usageTemplate, ".FlagUsages", fmt.Sprintf(".FlagUsagesWrapped %d", width))
	rootCmd.SetUsageTemplate(usageTemplate)
}

func Execute() error {
	return Command().Execute()
}
