// Package annotate draws face detection results onto frames and
// formats the labels that go with them.
package annotate

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Drawing constants matching the recorded output format.
const (
	boxThickness   = 3
	labelScale     = 1.0
	labelThickness = 1
)

var (
	boxColor  = color.RGBA{R: 255, G: 50, B: 50}
	textColor = color.RGBA{R: 255, G: 255, B: 255}

	// Fixed screen position of the face-count summary line.
	summaryOrigin = image.Pt(10, 40)
)

// CountLabel formats the face-count summary, e.g. "2 faces found".
func CountLabel(n int) string {
	if n == 1 {
		return "1 face found"
	}
	return fmt.Sprintf("%d faces found", n)
}

// FaceLabel formats the per-face label from a zero-based detection
// index and an estimated distance in centimeters, e.g.
// "Face 1 Dist: 112.00 cm".
func FaceLabel(index int, distanceCM float64) string {
	return fmt.Sprintf("Face %d Dist: %.2f cm", index+1, distanceCM)
}

// DrawFaceBox outlines a detected face.
func DrawFaceBox(frame *gocv.Mat, face image.Rectangle) {
	gocv.Rectangle(frame, face, boxColor, boxThickness)
}

// DrawFaceLabel renders a per-face label at the given point, normally
// the top-left corner of the face rectangle.
func DrawFaceLabel(frame *gocv.Mat, label string, at image.Point) {
	gocv.PutText(frame, label, at, gocv.FontHersheyDuplex, labelScale, textColor, labelThickness)
}

// DrawSummary renders the face-count summary at its fixed position.
func DrawSummary(frame *gocv.Mat, label string) {
	gocv.PutText(frame, label, summaryOrigin, gocv.FontHersheyDuplex, labelScale, textColor, labelThickness)
}
