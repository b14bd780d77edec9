package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/idlgen/display"
	"github.com/teranos/idlgen/logger"
	"github.com/teranos/idlgen/model"
	"github.com/teranos/idlgen/validate"
)

// LintCmd checks a model against the naming and modeling rules
var LintCmd = &cobra.Command{
	Use:   "lint [model-file]",
	Short: "Check a model against naming and modeling rules",
	Long: `Check a model against naming and modeling rules without resolving it.

resolve and check run the same rules first and stop on error findings.
lint lists every finding, including warnings and infos. Rule severities are
set per rule name in the [lint.severity] table of idlgen.toml; "off"
disables a rule. Rules run even when lint.enabled is false.

Rules:
  module_name_case          Module names are lower snake case
  type_reserved_name        Type names are not IDL keywords
  type_name_case            Type names are upper camel case
  type_kind_members         Typedefs alias one type, map types hold one map, enum literals have no type
  type_duplicate_attribute  Attribute names are unique within a type
  enum_literal_prefix       Enum literals start with the enum name
  attribute_reserved_name   Attribute names are not IDL keywords
  attribute_name_case       Attribute names are lower snake case
  attribute_map_key         Map keys are primitive, enums or typedefs
  module_notes, type_notes, attribute_notes
                            Notes are present (off by default)

Exit codes:
  0 - No error findings
  1 - At least one error finding, or the model failed to load

Examples:
  idlgen lint model.yaml              # Table of findings
  idlgen lint model.yaml --json       # Findings as JSON`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	LintCmd.Flags().StringP("format", "f", "", "Output format: text, json, yaml (default: output.format)")
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := modelPath(cfg, args)
	if err != nil {
		return err
	}

	snapshot, err := model.LoadFile(path, cfg.LoadOptions())
	if err != nil {
		return err
	}

	report := validate.Run(snapshot, cfg.RuleOptions())
	logger.Infow("Model linted",
		logger.FieldModel, path,
		"errors", report.Count(validate.SeverityError),
		"warnings", report.Count(validate.SeverityWarning))

	if err := display.RenderFindings(cmd.OutOrStdout(), report, outputFormat(cmd, cfg)); err != nil {
		return err
	}
	return report.Err()
}
