package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestResolveHostKeyPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"", filepath.Join(home, ".snake", "host_key")},
		{"~/keys/snake", filepath.Join(home, "keys", "snake")},
		{"/etc/snake/key", "/etc/snake/key"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := resolveHostKeyPath(tc.in)
			if err != nil {
				t.Fatalf("resolveHostKeyPath(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("resolveHostKeyPath(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestNewSSHServerCreatesKeyDirectory(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "nested", "host_key")

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: keyPath,
		IdleTimeout: time.Minute,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}

	if _, err := os.Stat(filepath.Dir(keyPath)); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}
