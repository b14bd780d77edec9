package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCamelCase(t *testing.T) {
	tests := []struct {
		name          string
		abbreviations []string
		want          bool
	}{
		{"", nil, false},
		{" ", nil, false},
		{"core module", nil, false},
		{"coreModule", nil, false},
		{"CoreModule1", nil, true},
		{"CoreModule_1", nil, false},
		{"Quaternion", nil, true},
		{"X", nil, true},
		{"MCMContact", nil, false},
		{"URI", nil, false},
		{"MCMContact", []string{"MCM"}, true},
		{"URI", []string{"URI"}, true},
		{"CQL2ExpressionTypeEnum", []string{"CQL"}, true},
		{"XMLHttpRequest", []string{"XML", "HTTP"}, true},
		{"ParserXML", []string{"XML"}, true},
		{"HTTPSURLParser", []string{"HTTP", "HTTPS", "URL"}, true},
		{"mCMContact", []string{"MCM"}, false},
		{"MCM_Contact", []string{"MCM"}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isCamelCase(tt.name, tt.abbreviations), "%q %v", tt.name, tt.abbreviations)
	}
}

func TestIsLowerSnakeCase(t *testing.T) {
	for name, want := range map[string]bool{
		"":            false,
		"core":        true,
		"core_module": true,
		"module_1":    true,
		"coreModule":  false,
		"CoreModule":  false,
		"_core":       false,
		"core__data":  false,
		"core_":       false,
		"1core":       false,
		"core data":   false,
	} {
		assert.Equal(t, want, isLowerSnakeCase(name), name)
	}
}
