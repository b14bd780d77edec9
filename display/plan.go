package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/plan"
)

// RenderPlan writes p to w as "text", "json" or "yaml"
func RenderPlan(w io.Writer, p *plan.Plan, format string) error {
	if format != "text" {
		data, err := plan.Marshal(p, format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, strings.TrimRight(string(data), "\n"))
		return err
	}

	data := pterm.TableData{{"#", "Module", "Type", "Kind", "Forward"}}
	for _, block := range p.Blocks {
		for _, d := range block.Declarations {
			forward := ""
			if d.Forward {
				forward = pterm.Yellow("yes")
			}
			data = append(data, []string{
				fmt.Sprintf("%d", d.Rank),
				block.Module,
				d.ID,
				d.Kind.String(),
				forward,
			})
		}
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render plan table")
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", table, summary(p.Counts))
	return err
}

func summary(c plan.Counts) string {
	return fmt.Sprintf("%s declarations: %d structs, %d unions, %d typedefs, %d enums, %d maps",
		pterm.Green(fmt.Sprintf("%d", c.Total())),
		c.Structs, c.Unions, c.Typedefs, c.Enums, c.Maps)
}

// RenderDiff writes a drift report to w
func RenderDiff(w io.Writer, diff *plan.Diff, baseline string) error {
	if diff.UpToDate {
		_, err := fmt.Fprintf(w, "%s %s\n", pterm.Green("✓ Up to date:"), baseline)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", pterm.Red("✗ Plan differs from"), baseline)
	for _, d := range diff.Differences {
		fmt.Fprintf(&b, "  %s %s\n", pterm.Gray("→"), d)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatError renders err with its hints for the terminal
func FormatError(err error) string {
	msg := pterm.Red(err.Error())
	hints := errors.GetAllHints(err)
	if len(hints) == 0 && errors.IsInvalidInputError(err) {
		hints = []string{"the input file is malformed; model and baseline files are YAML, JSON or TOML"}
	}
	if len(hints) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	fmt.Fprintf(&b, "\n\n%s", pterm.Green("Hints:"))
	for _, hint := range hints {
		fmt.Fprintf(&b, "\n  • %s", hint)
	}
	return b.String()
}
