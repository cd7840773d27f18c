package processor

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestUniqueFacePathSameSecond(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1700000000, 0)

	p1, err := uniqueFacePath(dir, now)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "face_1700000000.jpg"); p1 != want {
		t.Errorf("first path = %q, want %q", p1, want)
	}

	// Once the first file exists, the same second yields suffixed names.
	if err := os.WriteFile(p1, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	p2, err := uniqueFacePath(dir, now)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "face_1700000000_1.jpg"); p2 != want {
		t.Errorf("second path = %q, want %q", p2, want)
	}

	if err := os.WriteFile(p2, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	p3, err := uniqueFacePath(dir, now)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "face_1700000000_2.jpg"); p3 != want {
		t.Errorf("third path = %q, want %q", p3, want)
	}
}

func TestUniqueFacePathCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "faces")

	if _, err := uniqueFacePath(dir, time.Unix(1700000000, 0)); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("face directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("face directory path is not a directory")
	}
}
