package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"lintcore/internal/diag"
	"lintcore/internal/diagfmt"
	"lintcore/internal/driver"
	"lintcore/internal/estree"
)

var outputFormats = map[string]struct{}{"pretty": {}, "short": {}, "json": {}}

var checkCmd = &cobra.Command{
	Use:   "check [flags] <tree.json|tree.msgpack>",
	Short: "Run rules over an ESTree document",
	Long: `Load an ESTree program (bare Program node or {path, source, program} envelope),
resolve its scopes and report diagnostics from the selected rules.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes")
	checkCmd.Flags().Bool("exit-zero", false, "exit with 0 even when diagnostics are reported")
	checkCmd.Flags().Int("jobs", 0, "max rules running concurrently (0 = GOMAXPROCS)")
	checkCmd.Flags().StringSlice("rule", nil, "run only these rule codes")
	checkCmd.Flags().StringSlice("exclude", nil, "skip these rule codes")
	checkCmd.Flags().StringSlice("tag", nil, "run only rules carrying one of these tags")
	checkCmd.Flags().StringSlice("severity", nil, "override severity, code=info|warning|error")
	checkCmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	checkCmd.Flags().String("encoding", "auto", "document encoding (auto|json|msgpack)")
}

// checkSettings is the merged view of flags and lintcore.toml.
type checkSettings struct {
	Format         string
	WithNotes      bool
	ExitZero       bool
	MaxDiagnostics int
	PathMode       diagfmt.PathMode
	Timings        bool
	Driver         driver.CheckOptions
}

func runCheck(cmd *cobra.Command, args []string) error {
	input := args[0]

	traceSess, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer traceSess.Close(cmd)

	profSess, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := profSess.Stop(); stopErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", stopErr)
		}
	}()

	settings, err := readCheckSettings(cmd, input)
	if err != nil {
		return err
	}

	result, err := driver.CheckFile(cmd.Context(), input, settings.Driver)
	if err != nil {
		traceSess.dumpOnError(cmd)
		return fmt.Errorf("check failed: %w", err)
	}

	bag := result.Run.Merged
	reported := bag.Len()
	if err := writeDiagnostics(cmd.OutOrStdout(), bag, result, settings); err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}
	if settings.Timings && result.Timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), result.Timer.Summary())
	}

	if reported > 0 && !settings.ExitZero {
		return exitError{code: 1}
	}
	return nil
}

func writeDiagnostics(out io.Writer, bag *diag.Bag, result *driver.CheckResult, s checkSettings) error {
	switch s.Format {
	case "pretty":
		dropped := bag.Truncate(s.MaxDiagnostics)
		err := diagfmt.Pretty(out, bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     colorOn(),
			Context:   1,
			PathMode:  s.PathMode,
			ShowNotes: s.WithNotes,
		})
		if err != nil {
			return err
		}
		if dropped > 0 {
			_, err = fmt.Fprintf(out, "... %d more diagnostics not shown\n", dropped)
		}
		return err
	case "short":
		dropped := bag.Truncate(s.MaxDiagnostics)
		if text := diag.FormatShort(bag.Items(), result.FileSet, s.WithNotes); text != "" {
			if _, err := fmt.Fprintln(out, text); err != nil {
				return err
			}
		}
		if dropped > 0 {
			_, err := fmt.Fprintf(out, "... %d more diagnostics not shown\n", dropped)
			return err
		}
		return nil
	case "json":
		return diagfmt.JSON(out, bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         s.PathMode,
			Max:              s.MaxDiagnostics,
			IncludeNotes:     s.WithNotes,
		})
	default:
		return fmt.Errorf("unknown format: %s", s.Format)
	}
}

func readCheckSettings(cmd *cobra.Command, input string) (checkSettings, error) {
	var s checkSettings
	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	configPath, err := root.GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := resolveConfig(configPath, input)
	if err != nil {
		return s, err
	}

	if s.Format, err = flags.GetString("format"); err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	if !flags.Changed("format") && cfg.defined("output", "format") {
		s.Format = cfg.Config.Output.Format
	}
	if _, ok := outputFormats[s.Format]; !ok {
		return s, fmt.Errorf("unknown format: %s", s.Format)
	}

	if s.WithNotes, err = flags.GetBool("with-notes"); err != nil {
		return s, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if !flags.Changed("with-notes") && cfg.defined("output", "with-notes") {
		s.WithNotes = cfg.Config.Output.WithNotes
	}
	if s.ExitZero, err = flags.GetBool("exit-zero"); err != nil {
		return s, fmt.Errorf("failed to get exit-zero flag: %w", err)
	}
	if s.MaxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !root.Changed("max-diagnostics") && cfg.defined("output", "max-diagnostics") {
		s.MaxDiagnostics = cfg.Config.Output.MaxDiagnostics
	}
	if s.Timings, err = root.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}

	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return s, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if !flags.Changed("path-mode") && cfg.defined("output", "path-mode") {
		pathMode = cfg.Config.Output.PathMode
	}
	if s.PathMode, err = diagfmt.ParsePathMode(pathMode); err != nil {
		return s, err
	}

	opts := &s.Driver
	opts.Timings = s.Timings
	if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
		return s, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !flags.Changed("jobs") && cfg.defined("run", "jobs") {
		opts.Jobs = cfg.Config.Run.Jobs
	}

	encoding, err := flags.GetString("encoding")
	if err != nil {
		return s, fmt.Errorf("failed to get encoding flag: %w", err)
	}
	switch encoding {
	case "auto":
		opts.Encoding = estree.EncodingAuto
	case "json":
		opts.Encoding = estree.EncodingJSON
	case "msgpack":
		opts.Encoding = estree.EncodingMsgpack
	default:
		return s, fmt.Errorf("unknown encoding: %s", encoding)
	}

	opts.Selection = cfg.selection()
	if flags.Changed("rule") {
		if opts.Selection.Include, err = flags.GetStringSlice("rule"); err != nil {
			return s, fmt.Errorf("failed to get rule flag: %w", err)
		}
	}
	if flags.Changed("tag") {
		if opts.Selection.Tags, err = flags.GetStringSlice("tag"); err != nil {
			return s, fmt.Errorf("failed to get tag flag: %w", err)
		}
	}
	// --rule без --tag сужает выбор: теги из файла не добавляют правил
	if flags.Changed("rule") && !flags.Changed("tag") {
		opts.Selection.Tags = nil
	}
	if flags.Changed("exclude") {
		excluded, err := flags.GetStringSlice("exclude")
		if err != nil {
			return s, fmt.Errorf("failed to get exclude flag: %w", err)
		}
		opts.Selection.Exclude = append(opts.Selection.Exclude, excluded...)
	}

	if opts.Severity, err = cfg.severities(); err != nil {
		return s, err
	}
	overrides, err := flags.GetStringSlice("severity")
	if err != nil {
		return s, fmt.Errorf("failed to get severity flag: %w", err)
	}
	for _, raw := range overrides {
		code, level, ok := strings.Cut(raw, "=")
		if !ok || code == "" {
			return s, fmt.Errorf("invalid --severity %q (expected code=level)", raw)
		}
		sev, err := diag.ParseSeverity(level)
		if err != nil {
			return s, fmt.Errorf("invalid --severity %q: %w", raw, err)
		}
		if opts.Severity == nil {
			opts.Severity = make(map[string]diag.Severity)
		}
		opts.Severity[code] = sev
	}
	return s, nil
}
