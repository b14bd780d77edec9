package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/idlgen/config"
	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/logger"
)

// RootCmd is the idlgen command line
var RootCmd = &cobra.Command{
	Use:   "idlgen",
	Short: "idlgen - declaration order for IDL type models",
	Long: `idlgen - declaration order for IDL type models.

idlgen reads a model of modules and types and computes the order in which a
code generator must emit the type definitions, including which types need a
forward declaration.

Available commands:
  resolve - Compute and print the emission plan
  check   - Compare the plan with a committed baseline
  lint    - Check the model against naming and modeling rules
  config  - Manage idlgen.toml
  version - Show version information

Examples:
  idlgen resolve model.yaml        # Show the plan
  idlgen check model.yaml          # Fail when the committed plan is stale
  idlgen config init               # Write idlgen.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		// 'config init' must work next to a broken config file
		logJSON := false
		if cmd.Name() != "init" {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logJSON = cfg.Log.JSON
		}

		if err := logger.Initialize(logJSON, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugw("Logger initialized",
			logger.FieldComponent, cmd.Name(),
			"level_name", logger.LevelName(verbosity),
			"json", logJSON)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (repeat for more detail: -v, -vv)")
	RootCmd.PersistentFlags().String("config", "", "Config file (default: nearest "+config.FileName+")")
	RootCmd.PersistentFlags().Bool("json", false, "Output JSON")

	RootCmd.AddCommand(ResolveCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(LintCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(VersionCmd)
}

// loadConfig reads the configuration named by --config, or the nearest idlgen.toml
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}

// outputFormat resolves the plan format: --json wins over --format, which wins over output.format
func outputFormat(cmd *cobra.Command, cfg *config.Config) string {
	if json, _ := cmd.Root().PersistentFlags().GetBool("json"); json {
		return config.FormatJSON
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		return f.Value.String()
	}
	return cfg.Output.Format
}
