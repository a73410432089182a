package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetress/internal/games/tetress"
)

func TestShutdownClosesStoreAfterServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.store == nil {
		t.Fatal("expected scores database to be open")
	}
	if _, err := srv.store.TopScores(tetress.ID, 1); err != nil {
		t.Fatalf("TopScores before shutdown: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if _, err := srv.store.TopScores(tetress.ID, 1); err == nil {
		t.Error("scores database still open after shutdown")
	}
}
