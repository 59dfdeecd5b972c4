package types

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty config is valid",
			config:  Config{},
			wantErr: nil,
		},
		{
			name:    "plain file name is valid",
			config:  Config{DataDir: "/tmp/data", Database: "shop.db"},
			wantErr: nil,
		},
		{
			name:    "database with a directory component is rejected",
			config:  Config{DataDir: "/tmp/data", Database: "nested/shop.db"},
			wantErr: ErrDatabaseNameInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"defaults to madang.db in the current directory", Config{}, filepath.Join(".", DefaultDatabaseFile)},
		{"joins data dir and default name", Config{DataDir: "/srv/madang"}, filepath.Join("/srv/madang", DefaultDatabaseFile)},
		{"custom name", Config{DataDir: "/srv/madang", Database: "shop.db"}, filepath.Join("/srv/madang", "shop.db")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.Path(); got != tt.want {
				t.Fatalf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}
