package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/idlgen/display"
	"github.com/teranos/idlgen/model"
	"github.com/teranos/idlgen/validate"
	"github.com/teranos/idlgen/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show idlgen version information",
	Long:  `Display version, build time, commit hash, platform, supported model formats and lint rules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get(model.SupportedFormats, len(validate.Rules))

		if display.ShouldOutputJSON(cmd) {
			return display.WriteJSON(cmd.OutOrStdout(), info)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, info.String())
		if !info.Release() {
			fmt.Fprintln(out, "Development build")
		}
		fmt.Fprintf(out, "Platform: %s\n", info.Platform)
		fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
		fmt.Fprintf(out, "Model formats: %s\n", info.ModelFormats)
		fmt.Fprintf(out, "Lint rules: %d\n", info.LintRules)
		return nil
	},
}
