package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "dash token is not a value",
			args:         []string{"-d", "-p", "mock"},
			allowedFlags: []string{"-d", "-p"},
			want:         []string{"-d", "-p", "mock"},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-s"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
		{
			name:         "order preserved",
			args:         []string{"-a", ":8080", "-l", "debug", "-a", ":9090"},
			allowedFlags: []string{"-a", "-l"},
			want:         []string{"-a", ":8080", "-l", "debug", "-a", ":9090"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "/etc/nt.json", ConfigFile([]string{"-c", "/etc/nt.json"}))
	assert.Equal(t, "/etc/long.json", ConfigFile([]string{"-a", ":1", "-config", "/etc/long.json"}))
	assert.Equal(t, "/2.json", ConfigFile([]string{"-c", "/1.json", "-config=/2.json"}))
	assert.Empty(t, ConfigFile([]string{"-x", "1"}))
	assert.Empty(t, ConfigFile(nil))
}
