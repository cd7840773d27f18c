package processor

// Config holds all parameters for a capture session.
// Immutable once the processor is constructed.
type Config struct {
	// CascadePath is the pretrained Haar cascade model file.
	CascadePath string

	// FocalLength is the camera calibration constant for the pinhole
	// distance model.
	FocalLength float64

	// RealFaceWidth is the assumed real-world face width in centimeters.
	RealFaceWidth float64

	// CameraIndex selects the capture device.
	CameraIndex int

	// SpeedUpFactor fully processes 1 of every N captured frames.
	// 1 means every frame; must be >= 1.
	SpeedUpFactor int

	// FaceDir is where face crops are saved. Created if absent.
	FaceDir string

	// OutputPath is the annotated video file.
	OutputPath string

	// Video writer parameters.
	Codec       string  // FourCC tag
	FPS         float64 // Output frame rate
	FrameWidth  int     // Output frame width in pixels
	FrameHeight int     // Output frame height in pixels
}

// DefaultConfig returns the standard session configuration.
// Focal length 800 and a 14cm reference face width are reasonable for
// a typical laptop webcam; recalibrate for other cameras.
func DefaultConfig() Config {
	return Config{
		CascadePath:   "haarcascade_frontalface_default.xml",
		FocalLength:   800,
		RealFaceWidth: 14.0,
		CameraIndex:   0,
		SpeedUpFactor: 2,
		FaceDir:       "faces",
		OutputPath:    "faces/output_video.avi",
		Codec:         "MJPG",
		FPS:           30,
		FrameWidth:    640,
		FrameHeight:   480,
	}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.CascadePath == "" {
		errors = append(errors, "cascade path is required")
	}
	if c.FocalLength <= 0 {
		errors = append(errors, "focal length must be positive")
	}
	if c.RealFaceWidth <= 0 {
		errors = append(errors, "real face width must be positive")
	}
	if c.CameraIndex < 0 {
		errors = append(errors, "camera index must not be negative")
	}
	if c.SpeedUpFactor < 1 {
		errors = append(errors, "speed-up factor must be at least 1")
	}
	if c.FaceDir == "" {
		errors = append(errors, "face directory is required")
	}
	if c.OutputPath == "" {
		errors = append(errors, "output path is required")
	}
	if len(c.Codec) != 4 {
		errors = append(errors, "codec must be a four-character tag")
	}
	if c.FPS <= 0 {
		errors = append(errors, "fps must be positive")
	}
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		errors = append(errors, "frame size must be positive")
	}

	return errors
}
