package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/validate"
)

// RenderFindings writes a lint report to w as "text", "json" or "yaml".
// Text output lists the most severe findings first.
func RenderFindings(w io.Writer, report *validate.Report, format string) error {
	switch format {
	case "json":
		return WriteJSON(w, report)
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return errors.Wrap(err, "failed to marshal YAML")
		}
		_, err = fmt.Fprint(w, string(data))
		return err
	case "text":
	default:
		return errors.Wrapf(errors.ErrUnsupportedFormat, "lint format %q", format)
	}

	if len(report.Findings) == 0 {
		_, err := fmt.Fprintf(w, "%s\n", pterm.Green("✓ No findings"))
		return err
	}

	data := pterm.TableData{{"Severity", "Subject", "Message", "Rule"}}
	for _, f := range report.Sorted() {
		data = append(data, []string{severityLabel(f.Severity), f.Subject, f.Message, f.Rule})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render findings table")
	}

	counts := make([]string, 0, len(validate.Severities))
	for _, s := range validate.Severities {
		if n := report.Count(s); n > 0 {
			counts = append(counts, fmt.Sprintf("%d %s", n, s))
		}
	}
	_, err = fmt.Fprintf(w, "%s\n%d findings: %s\n", table, len(report.Findings), strings.Join(counts, ", "))
	return err
}

func severityLabel(s validate.Severity) string {
	switch s {
	case validate.SeverityError:
		return pterm.Red(string(s))
	case validate.SeverityWarning:
		return pterm.Yellow(string(s))
	case validate.SeverityInfo:
		return pterm.Blue(string(s))
	default:
		return string(s)
	}
}
