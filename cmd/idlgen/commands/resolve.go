package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/idlgen/config"
	"github.com/teranos/idlgen/display"
	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/internal/watch"
	"github.com/teranos/idlgen/logger"
)

// ResolveCmd represents the resolve command
var ResolveCmd = &cobra.Command{
	Use:   "resolve [model-file]",
	Short: "Compute the declaration order of a model",
	Long: `Resolve the declaration order of every type in a model snapshot.

Types are emitted so that anything embedded by value is declared first.
Types in a recursive group get a forward declaration when a sibling embeds
them by value. Recursion across modules is rejected.

The model file is read as YAML, JSON or TOML by extension. Without an
argument, model.path from idlgen.toml is used.

Examples:
  idlgen resolve model.yaml                # Print the plan as a table
  idlgen resolve model.yaml --format yaml  # Print the plan as YAML
  idlgen resolve -o plan.json model.yaml   # Write the plan to a file
  idlgen resolve --watch                   # Re-run when the model changes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	ResolveCmd.Flags().StringP("format", "f", "", "Output format: text, json, yaml (default: output.format)")
	ResolveCmd.Flags().StringP("output", "o", "", "Write the plan to a file (default: output.path or stdout)")
	ResolveCmd.Flags().BoolP("watch", "w", false, "Re-run whenever the model or config file changes")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := modelPath(cfg, args)
	if err != nil {
		return err
	}

	if watching, _ := cmd.Flags().GetBool("watch"); watching {
		return watchResolve(cmd, cfg, path)
	}
	return resolveOnce(cmd, path, cfg)
}

// resolveOnce resolves the model and writes the plan where cfg and the
// flags say. Watch mode calls it with each reloaded cfg.
func resolveOnce(cmd *cobra.Command, path string, cfg *config.Config) error {
	run, err := resolveModel(path, cfg)
	if err != nil {
		return err
	}
	return writePlan(cmd.OutOrStdout(), run, outputPath(cmd, cfg), outputFormat(cmd, cfg))
}

// outputPath returns --output, or output.path from cfg
func outputPath(cmd *cobra.Command, cfg *config.Config) string {
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		return output
	}
	return cfg.Output.Path
}

// writePlan renders the plan to stdout, or to output when set
func writePlan(stdout io.Writer, run *Run, output, format string) error {
	if output == "" {
		return display.RenderPlan(stdout, run.Plan, format)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}
	f, err := os.Create(output)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", output)
	}
	defer f.Close()

	if err := display.RenderPlan(f, run.Plan, format); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s %s (%d types)\n", pterm.LightGreen("✓ Wrote"), output, len(run.Result.Order))
	return nil
}

// watchResolve runs once, then again after every debounced change to the
// model or config file until interrupted. Failures are reported, not returned.
func watchResolve(cmd *cobra.Command, cfg *config.Config, path string) error {
	files := []string{path}
	if configPath, _ := cmd.Root().PersistentFlags().GetString("config"); configPath != "" {
		files = append(files, configPath)
	} else if found := config.FindProjectConfig(); found != "" {
		files = append(files, found)
	}

	report := func(cfg *config.Config) {
		if err := resolveOnce(cmd, path, cfg); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), display.FormatError(err))
		}
	}
	report(cfg)

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	w, err := watch.New(files, debounce, logger.Named("watch"), func(changed []string) error {
		logger.Infow("Re-resolving after change", "files", changed)
		reloaded, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		report(reloaded)
		return nil
	})
	if err != nil {
		return err
	}
	w.Start()
	defer w.Stop()

	pterm.Info.Printfln("Watching %d files, press Ctrl+C to stop", len(files))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}
