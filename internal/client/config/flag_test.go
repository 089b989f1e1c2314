package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"-a", "http://h:1", "-f", "x.db", "-t", "7", "-l", "debug"},
			expected: &Config{ServerURL: "http://h:1", DatabasePath: "x.db", RequestTimeout: 7 * time.Second, LogLevel: "debug"}},
		{name: "foreign flags are skipped", args: []string{"-c", "cfg.json", "-z", "-f=y.db"},
			expected: &Config{DatabasePath: "y.db"}},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
