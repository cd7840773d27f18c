// Package processor runs the per-frame face watching pipeline:
// capture, optional frame-skip, grayscale conversion, cascade
// detection, save-once crop persistence, distance labeling, and
// encoding of the annotated stream to a video file.
package processor

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"gocv.io/x/gocv"

	"github.com/facewatch/go-facewatch/internal/log"
	"github.com/facewatch/go-facewatch/pkg/annotate"
	"github.com/facewatch/go-facewatch/pkg/detection"
	"github.com/facewatch/go-facewatch/pkg/distance"
)

// FrameSource yields frames on demand. *gocv.VideoCapture satisfies it.
type FrameSource interface {
	Read(m *gocv.Mat) bool
	Close() error
}

// FrameSink accepts successive frames for encoding. *gocv.VideoWriter
// satisfies it.
type FrameSink interface {
	Write(img gocv.Mat) error
	Close() error
}

// FrameProcessor owns a capture source, a face detector, and a video
// sink, and drives one frame through the pipeline per ProcessFrame
// call. It is single-threaded; every step blocks.
type FrameProcessor struct {
	cfg       Config
	source    FrameSource
	detector  detection.Detector
	sink      FrameSink
	estimator distance.Estimator

	window *gocv.Window
	frame  gocv.Mat
	gray   gocv.Mat

	sampler frameSampler
	saved   saveTracker

	logger *slog.Logger
}

// New opens the capture device, loads the cascade model, and opens the
// output video writer. Any of the three failing is fatal; there is no
// degraded mode.
func New(cfg Config) (*FrameProcessor, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %v", errs)
	}

	source, err := gocv.OpenVideoCapture(cfg.CameraIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrSourceUnavailable, cfg.CameraIndex, err)
	}

	detector, err := detection.NewCascade(cfg.CascadePath, detection.DefaultConfig())
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("%w: %v", ErrModelLoadFailed, err)
	}

	// The writer needs the output directory to exist before it opens.
	if err := os.MkdirAll(cfg.FaceDir, 0o755); err != nil {
		detector.Close()
		source.Close()
		return nil, fmt.Errorf("%w: create output directory: %v", ErrSinkUnavailable, err)
	}

	sink, err := gocv.VideoWriterFile(cfg.OutputPath, cfg.Codec, cfg.FPS, cfg.FrameWidth, cfg.FrameHeight, true)
	if err != nil {
		detector.Close()
		source.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrSinkUnavailable, cfg.OutputPath, err)
	}
	if !sink.IsOpened() {
		sink.Close()
		detector.Close()
		source.Close()
		return nil, fmt.Errorf("%w: %s", ErrSinkUnavailable, cfg.OutputPath)
	}

	return newWithDeps(cfg, source, detector, sink), nil
}

// newWithDeps wires the processor from already-open collaborators.
// Tests use it to inject mocks.
func newWithDeps(cfg Config, source FrameSource, detector detection.Detector, sink FrameSink) *FrameProcessor {
	return &FrameProcessor{
		cfg:      cfg,
		source:   source,
		detector: detector,
		sink:     sink,
		estimator: distance.Estimator{
			FocalLength:   cfg.FocalLength,
			RealFaceWidth: cfg.RealFaceWidth,
		},
		frame:   gocv.NewMat(),
		gray:    gocv.NewMat(),
		sampler: frameSampler{skip: cfg.SpeedUpFactor - 1},
		logger:  log.With("component", "processor"),
	}
}

// ProcessFrame drives one capture through the pipeline. Frames gated
// out by the speed-up factor are dropped silently after capture; fully
// processed frames are detected, annotated, and encoded to the sink.
func (p *FrameProcessor) ProcessFrame() error {
	if ok := p.source.Read(&p.frame); !ok || p.frame.Empty() {
		return ErrCaptureFailed
	}

	if !p.sampler.Next() {
		return nil
	}

	gocv.CvtColor(p.frame, &p.gray, gocv.ColorBGRToGray)
	faces := p.detector.Detect(p.gray)

	if i := detection.Nearest(faces); i >= 0 {
		p.logger.Debug("faces detected",
			"count", len(faces),
			"nearest_cm", p.estimator.Estimate(faces[i].Dx()))
	}

	p.saved.Sync(len(faces))

	if err := p.annotateFrame(faces); err != nil {
		return err
	}

	if err := p.sink.Write(p.frame); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}

// annotateFrame draws boxes and labels for every detection and
// persists a crop for each slot not yet saved in the current run.
func (p *FrameProcessor) annotateFrame(faces []image.Rectangle) error {
	for i, face := range faces {
		annotate.DrawFaceBox(&p.frame, face)

		if !p.saved.Saved(i) {
			if err := p.saveCrop(i, face); err != nil {
				return err
			}
			p.saved.Mark(i)
		}

		dist := p.estimator.Estimate(face.Dx())
		annotate.DrawFaceLabel(&p.frame, annotate.FaceLabel(i, dist), face.Min)
	}

	annotate.DrawSummary(&p.frame, annotate.CountLabel(len(faces)))
	return nil
}

// saveCrop writes the face region to a uniquely named JPEG under the
// face directory. The crop is taken after the box is drawn, so box
// edges can bleed into it; that matches the recorded output format.
func (p *FrameProcessor) saveCrop(index int, face image.Rectangle) error {
	path, err := uniqueFacePath(p.cfg.FaceDir, time.Now())
	if err != nil {
		return err
	}

	region := p.frame.Region(face)
	defer region.Close()

	if ok := gocv.IMWrite(path, region); !ok {
		p.logger.Warn("face crop not written", "path", path, "face", index+1)
		return nil
	}

	dist := p.estimator.Estimate(face.Dx())
	p.logger.Info("saved face crop",
		"path", path,
		"face", index+1,
		"distance_cm", dist,
		"range", distance.Category(dist))
	return nil
}

// Display renders the current frame buffer to the named window. The
// window is created on first use. Skipped frames show raw; processed
// frames show annotated.
func (p *FrameProcessor) Display(windowName string) {
	if p.window == nil {
		p.window = gocv.NewWindow(windowName)
	}
	p.window.IMShow(p.frame)
}

// WaitKey polls the display for a key press for up to ms milliseconds
// and returns the key code, or a negative value if none was pressed.
// Display must have been called at least once.
func (p *FrameProcessor) WaitKey(ms int) int {
	if p.window == nil {
		return -1
	}
	return p.window.WaitKey(ms)
}

// Close releases the capture source, detector, video sink, display
// window, and frame buffers. Safe to call on any exit path.
func (p *FrameProcessor) Close() error {
	var errs []error

	if p.source != nil {
		errs = append(errs, p.source.Close())
	}
	if p.detector != nil {
		errs = append(errs, p.detector.Close())
	}
	if p.sink != nil {
		errs = append(errs, p.sink.Close())
	}
	if p.window != nil {
		errs = append(errs, p.window.Close())
	}
	errs = append(errs, p.frame.Close(), p.gray.Close())

	return errors.Join(errs...)
}
