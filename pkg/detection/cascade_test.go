package detection

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCascadeMissingModel(t *testing.T) {
	_, err := NewCascade(filepath.Join(t.TempDir(), "no_such_cascade.xml"), DefaultConfig())
	if err == nil {
		t.Fatal("expected error for missing model file")
	}
}

func TestNewCascadeInvalidModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.xml")
	if err := os.WriteFile(path, []byte("not a cascade"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewCascade(path, DefaultConfig())
	if err == nil {
		t.Fatal("expected error for invalid model file")
	}
}

func TestNewCascadeInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScaleFactor = 0.5

	_, err := NewCascade("haarcascade_frontalface_default.xml", cfg)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
}
