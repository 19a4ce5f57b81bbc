package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSettings() *Settings {
	return &Settings{
		WebServer: WebServerSettings{Host: "127.0.0.1", Port: "8000"},
		Database:  DatabaseSettings{Path: "mcpdict.db", BusyTimeout: 2000},
		Lookup:    LookupSettings{MaxChars: 512},
	}
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{name: "valid", mutate: func(s *Settings) {}},
		{
			name:    "empty database path",
			mutate:  func(s *Settings) { s.Database.Path = "" },
			wantErr: "database.path",
		},
		{
			name:    "negative busy timeout",
			mutate:  func(s *Settings) { s.Database.BusyTimeout = -1 },
			wantErr: "busytimeout",
		},
		{
			name:    "zero max chars",
			mutate:  func(s *Settings) { s.Lookup.MaxChars = 0 },
			wantErr: "maxchars",
		},
		{
			name:    "non-numeric port",
			mutate:  func(s *Settings) { s.WebServer.Port = "http" },
			wantErr: "webserver.port",
		},
		{
			name:    "port out of range",
			mutate:  func(s *Settings) { s.WebServer.Port = "70000" },
			wantErr: "webserver.port",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := validSettings()
			tt.mutate(s)
			err := ValidateSettings(s)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
