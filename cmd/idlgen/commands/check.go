package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/idlgen/display"
	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/logger"
	"github.com/teranos/idlgen/plan"
)

// CheckCmd checks if a committed plan is up to date
var CheckCmd = &cobra.Command{
	Use:   "check [model-file]",
	Short: "Check if the committed plan is up to date",
	Long: `Check that resolving the model reproduces the committed plan.

The baseline is a plan written by 'idlgen resolve -o' or 'idlgen check --update'.
Positions, forward-declaration flags and kinds are compared per type.

Exit codes:
  0 - Plan is up to date
  1 - Plan is out of date (differences shown), or the model failed to resolve

Examples:
  idlgen check model.yaml                       # Compare with check.baseline
  idlgen check model.yaml --baseline plan.yaml  # Compare with a specific file
  idlgen check model.yaml --update              # Rewrite the baseline`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringP("baseline", "b", "", "Committed plan to compare with (default: check.baseline)")
	CheckCmd.Flags().Bool("update", false, "Write the current plan as the new baseline")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := modelPath(cfg, args)
	if err != nil {
		return err
	}

	baseline, _ := cmd.Flags().GetString("baseline")
	if baseline == "" {
		baseline = cfg.Check.Baseline
	}

	run, err := resolveModel(path, cfg)
	if err != nil {
		return err
	}

	if update, _ := cmd.Flags().GetBool("update"); update {
		if err := plan.Save(run.Plan, baseline); err != nil {
			return err
		}
		logger.Infow("Baseline updated", "baseline", baseline, logger.FieldRunID, run.ID)
		return display.RenderDiff(cmd.OutOrStdout(), &plan.Diff{UpToDate: true}, baseline)
	}

	want, err := plan.LoadBaseline(baseline)
	if err != nil {
		return errors.WithHint(err, "create it with 'idlgen check --update'")
	}

	diff := plan.Compare(want, run.Plan)
	if display.ShouldOutputJSON(cmd) {
		if err := display.WriteJSON(cmd.OutOrStdout(), diff); err != nil {
			return err
		}
	} else if err := display.RenderDiff(cmd.OutOrStdout(), diff, baseline); err != nil {
		return err
	}

	if !diff.UpToDate {
		return errors.WithHint(
			errors.Wrapf(errors.ErrDrift, "%d differences in %s", len(diff.Differences), baseline),
			"run 'idlgen check --update' to accept the new order")
	}
	return nil
}
