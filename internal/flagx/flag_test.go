package flagx

import (
	"os"
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
			name:         "separate value form",
			args:         []string{"-f", "心狗家庭", "-x", "nope"},
			allowedFlags: []string{"-f"},
			want:         []string{"-f", "心狗家庭"},
		},
		{
			name:         "equals form",
			args:         []string{"--config=conf.json", "-t=5"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=conf.json"},
		},
		{
			name:         "flag followed by another flag keeps no value",
			args:         []string{"-f", "-t", "5"},
			allowedFlags: []string{"-f"},
			want:         []string{"-f"},
		},
		{
			name:         "nothing allowed",
			args:         []string{"-a", "1", "-b", "2"},
			allowedFlags: []string{"-z"},
			want:         []string{},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-f"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short flag", []string{"prog", "-c", "conf.json"}, "conf.json"},
		{"long flag", []string{"prog", "-config", "other.json"}, "other.json"},
		{"absent", []string{"prog", "-f", "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreArgs(t, tt.args)
			assert.Equal(t, tt.want, ConfigFileFlag())
		})
	}
}

func restoreArgs(t *testing.T, args []string) {
	t.Helper()
	old := os.Args
	os.Args = args
	t.Cleanup(func() { os.Args = old })
}
