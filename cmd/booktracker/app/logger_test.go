package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{name: "default", config: Config{}, want: "warn"},
		{name: "verbose", config: Config{Verbose: true}, want: "debug"},
		{name: "quiet", config: Config{Quiet: true}, want: "error"},
		{name: "verbose and quiet", config: Config{Verbose: true, Quiet: true}, want: "error"},
		{name: "explicit level wins", config: Config{Verbose: true, LogLevel: "info"}, want: "info"},
		{name: "invalid level", config: Config{LogLevel: "loud"}, want: "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, level, validateLogLevel(level))
	}
	assert.Equal(t, "warn", validateLogLevel("fatal"))
	assert.Equal(t, "warn", validateLogLevel(""))
}
