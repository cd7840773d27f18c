// Package distance estimates how far a detected face is from the
// camera using a pinhole-camera approximation.
package distance

// Estimator converts a face width in pixels to a distance in
// centimeters using the pinhole model:
//
//	distance = (realFaceWidth * focalLength) / pixelWidth
//
// FocalLength is a camera calibration constant; RealFaceWidth is the
// assumed real-world face width in centimeters.
type Estimator struct {
	FocalLength   float64
	RealFaceWidth float64
}

// Estimate returns the approximate distance in centimeters for a face
// bounding box of the given pixel width. pixelWidth must be positive;
// the cascade never emits a zero-width rectangle.
func (e Estimator) Estimate(pixelWidth int) float64 {
	return (e.RealFaceWidth * e.FocalLength) / float64(pixelWidth)
}

// Category returns a human-readable distance category for log records.
func Category(cm float64) string {
	if cm <= 0 {
		return "unknown"
	}
	if cm < 50 {
		return "very close"
	}
	if cm < 100 {
		return "close"
	}
	if cm < 200 {
		return "nearby"
	}
	if cm < 300 {
		return "moderate"
	}
	return "far"
}
