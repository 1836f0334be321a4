package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHostKeyPath(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
	info, err := os.Stat(filepath.Dir(want))
	if err != nil {
		t.Fatalf("key directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("key directory is not a directory")
	}
}

func TestResolveHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if want := filepath.Join(home, ".clochfhada", "host_key"); got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}

func TestSSHServerSessionSeed(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Seed = 42

	srv, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if got := srv.sessionSeed(); got != 42 {
		t.Errorf("sessionSeed() = %d, expected the configured 42", got)
	}

	srv.config.Seed = 0
	if got := srv.sessionSeed(); got == 0 {
		t.Error("sessionSeed() should fall back to a clock seed")
	}
}
