package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const facePrefix = "face"

// uniqueFacePath returns a crop filename under dir that does not
// collide with any existing file: face_<unix-seconds>.jpg, then
// face_<unix-seconds>_<n>.jpg for n = 1, 2, ... The directory is
// created if absent.
//
// Uniqueness is existence-check-then-use: safe within a single
// process run, not against concurrent writers.
func uniqueFacePath(dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create face directory: %w", err)
	}

	ts := now.Unix()
	path := filepath.Join(dir, fmt.Sprintf("%s_%d.jpg", facePrefix, ts))
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d_%d.jpg", facePrefix, ts, n))
	}
}
