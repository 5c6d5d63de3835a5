package logging

import (
	"testing"

	"github.com/calcsuite/calcsuite/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		wantErr bool
	}{
		{"json info", config.LoggingConfig{Level: "info", Format: "json"}, false},
		{"text debug", config.LoggingConfig{Level: "debug", Format: "text"}, false},
		{"empty defaults", config.LoggingConfig{}, false},
		{"bad level", config.LoggingConfig{Level: "loud", Format: "text"}, true},
		{"bad format", config.LoggingConfig{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if logger == nil {
				t.Fatal("nil logger")
			}
			logger.Debug("probe")
		})
	}
}
