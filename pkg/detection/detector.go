// Package detection provides face detection using computer vision
package detection

import (
	"image"

	"gocv.io/x/gocv"
)

// Detector is the interface for face detection backends
type Detector interface {
	// Detect finds faces in the grayscale image and returns their
	// bounding rectangles in source-image pixel coordinates.
	// Order is defined by the backend and is not spatially stable
	// between frames.
	Detect(gray gocv.Mat) []image.Rectangle

	// Close releases resources
	Close() error
}

// Config holds detector configuration
type Config struct {
	ScaleFactor  float64 // Image pyramid scale step between detection passes
	MinNeighbors int     // Minimum neighbor rectangles to retain a detection
	MinWidth     int     // Minimum detectable face width in pixels
	MinHeight    int     // Minimum detectable face height in pixels
}

// DefaultConfig returns production defaults for the Haar cascade
func DefaultConfig() Config {
	return Config{
		ScaleFactor:  1.1,
		MinNeighbors: 3,
		MinWidth:     30,
		MinHeight:    30,
	}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.ScaleFactor <= 1.0 {
		errors = append(errors, "scale factor must be greater than 1.0")
	}
	if c.MinNeighbors < 0 {
		errors = append(errors, "min neighbors must not be negative")
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		errors = append(errors, "min size must not be negative")
	}

	return errors
}

// Nearest returns the index of the widest detection, which under the
// pinhole model is the face closest to the camera. Returns -1 when the
// slice is empty.
func Nearest(faces []image.Rectangle) int {
	best := -1
	bestWidth := 0
	for i, f := range faces {
		if f.Dx() > bestWidth {
			bestWidth = f.Dx()
			best = i
		}
	}
	return best
}
