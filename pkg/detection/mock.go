package detection

import (
	"image"

	"gocv.io/x/gocv"
)

// Mock is a scripted Detector for tests. Each call to Detect returns
// the next entry in Frames; once the script is exhausted the last
// entry repeats.
type Mock struct {
	Frames [][]image.Rectangle

	// Calls counts how many times Detect has been invoked.
	Calls int

	// Closed reports whether Close was called.
	Closed bool
}

// Detect returns the next scripted detection set.
func (m *Mock) Detect(gocv.Mat) []image.Rectangle {
	if len(m.Frames) == 0 {
		m.Calls++
		return nil
	}
	i := m.Calls
	if i >= len(m.Frames) {
		i = len(m.Frames) - 1
	}
	m.Calls++
	return m.Frames[i]
}

// Close marks the mock closed.
func (m *Mock) Close() error {
	m.Closed = true
	return nil
}
