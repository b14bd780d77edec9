package validate

import (
	"strings"

	"github.com/teranos/idlgen/errors"
)

// Severity decides what a finding does to the run
type Severity string

const (
	SeverityError   Severity = "error"   // Fails resolve, check and lint
	SeverityWarning Severity = "warning" // Logged and listed by lint
	SeverityInfo    Severity = "info"    // Listed by lint, logged with -v
	SeverityOff     Severity = "off"     // Rule is not run
)

// Severities lists the accepted values, most severe first
var Severities = []Severity{SeverityError, SeverityWarning, SeverityInfo, SeverityOff}

// ParseSeverity accepts a severity name, case-insensitive. "warn" is
// accepted for "warning".
func ParseSeverity(s string) (Severity, error) {
	switch v := Severity(strings.ToLower(strings.TrimSpace(s))); v {
	case SeverityError, SeverityWarning, SeverityInfo, SeverityOff:
		return v, nil
	case "warn":
		return SeverityWarning, nil
	default:
		return "", errors.NewInvalidInputError("unknown severity %q", s)
	}
}

func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}
