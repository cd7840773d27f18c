// Facewatch - live face detection with distance estimation
//
// Captures webcam frames, detects faces with a Haar cascade, estimates
// the distance to each face, saves a crop of every newly seen face,
// and records the annotated stream to faces/output_video.avi. Press q
// in the video window to quit.
package main

import (
	"os"

	"github.com/google/uuid"

	"github.com/facewatch/go-facewatch/internal/log"
	"github.com/facewatch/go-facewatch/pkg/processor"
)

const (
	windowName  = "Face Detection"
	quitKey     = 'q'
	pollDelayMS = 20
)

func main() {
	log.Init("info")

	if err := run(); err != nil {
		log.Error("session failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	logger := log.With("session", uuid.NewString())

	cfg := processor.DefaultConfig()
	logger.Info("starting capture",
		"camera", cfg.CameraIndex,
		"cascade", cfg.CascadePath,
		"focal_length", cfg.FocalLength,
		"face_width_cm", cfg.RealFaceWidth,
		"speed_up", cfg.SpeedUpFactor,
		"output", cfg.OutputPath)

	proc, err := processor.New(cfg)
	if err != nil {
		return err
	}
	defer proc.Close()

	for {
		if err := proc.ProcessFrame(); err != nil {
			return err
		}
		proc.Display(windowName)

		if proc.WaitKey(pollDelayMS) == quitKey {
			logger.Info("quit requested")
			return nil
		}
	}
}
