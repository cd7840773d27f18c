package detection

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

// CascadeDetector detects faces with a pretrained Haar cascade via
// OpenCV's CascadeClassifier.
type CascadeDetector struct {
	classifier gocv.CascadeClassifier
	config     Config
}

// NewCascade loads the cascade model at modelPath and returns a ready
// detector. The model file is checked before touching OpenCV so a bad
// path fails fast with a useful message.
func NewCascade(modelPath string, cfg Config) (*CascadeDetector, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid detector config: %v", errs)
	}

	// Check if model file exists first
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("cascade file not found: %s", modelPath)
	}

	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(modelPath) {
		classifier.Close()
		return nil, fmt.Errorf("load cascade: %s", modelPath)
	}

	return &CascadeDetector{
		classifier: classifier,
		config:     cfg,
	}, nil
}

// Detect runs the cascade over the grayscale frame and returns one
// rectangle per candidate face. No upper size cap is applied.
func (d *CascadeDetector) Detect(gray gocv.Mat) []image.Rectangle {
	return d.classifier.DetectMultiScaleWithParams(
		gray,
		d.config.ScaleFactor,
		d.config.MinNeighbors,
		0, // flags, unused by the modern cascade path
		image.Pt(d.config.MinWidth, d.config.MinHeight),
		image.Point{}, // no max size
	)
}

// Close releases the classifier resources
func (d *CascadeDetector) Close() error {
	return d.classifier.Close()
}
