package flick

// --- Default tuning values ---

const (
	defaultDragStartPx    = 8.0
	defaultTapMaxMs       = 220.0
	defaultDoubleTapMaxMs = 300.0
	defaultPinchStartPx   = 6.0
	defaultMinScale       = 0.5
	defaultMaxScale       = 3.0

	defaultMinThrowSpeed = 0.1
	defaultThrowMass     = 1.0
	defaultDragSmoothing = 0.2

	defaultRestitution = 0.5

	defaultVelocityMaxSamples = 8
	defaultVelocityMaxAgeMs   = 120.0
	defaultVelocityDecayMs    = 40.0
)

// Config holds every tunable threshold for gesture recognition and motion
// control. All fields are independent; zero values are not usable, so
// start from DefaultConfig and override.
type Config struct {
	// Gesture thresholds (screen-space pixels / milliseconds).
	DragStartPx    float64 // movement before a press becomes a drag
	TapMaxMs       float64 // max press duration for a tap
	DoubleTapMaxMs float64 // max gap between taps on the same target
	PinchStartPx   float64 // inter-pointer distance change before scaling engages
	MinScale       float64
	MaxScale       float64

	// Throw behavior (surface units per second).
	MinThrowSpeed float64 // below this a release applies no impulse
	MaxThrowSpeed map[ObjectKind]float64
	ThrowMass     float64 // assumed mass for impulse = velocity * mass

	// DragSmoothing is the fraction of the remaining distance to the
	// pointer target that is NOT covered each move event. 0 snaps
	// instantly; values near 1 barely move.
	DragSmoothing float64

	// Boundary behavior.
	BoundaryMargin    map[ObjectKind]float64 // inset from the region edge, surface units
	BounceRestitution float64                // fraction of speed kept after a rebound

	// Velocity estimator window.
	VelocityMaxSamples int
	VelocityMaxAgeMs   float64
	VelocityDecayMs    float64
}

// DefaultConfig returns a Config with the stock tuning. The numeric
// defaults are starting points validated by feel, not hard requirements.
func DefaultConfig() Config {
	return Config{
		DragStartPx:    defaultDragStartPx,
		TapMaxMs:       defaultTapMaxMs,
		DoubleTapMaxMs: defaultDoubleTapMaxMs,
		PinchStartPx:   defaultPinchStartPx,
		MinScale:       defaultMinScale,
		MaxScale:       defaultMaxScale,

		MinThrowSpeed: defaultMinThrowSpeed,
		MaxThrowSpeed: map[ObjectKind]float64{
			KindFile:    4.0,
			KindContent: 2.5,
		},
		ThrowMass:     defaultThrowMass,
		DragSmoothing: defaultDragSmoothing,

		BoundaryMargin: map[ObjectKind]float64{
			KindFile:    0.04,
			KindContent: 0.10,
		},
		BounceRestitution: defaultRestitution,

		VelocityMaxSamples: defaultVelocityMaxSamples,
		VelocityMaxAgeMs:   defaultVelocityMaxAgeMs,
		VelocityDecayMs:    defaultVelocityDecayMs,
	}
}

// maxThrowSpeed returns the throw speed cap for kind, or the file cap when
// the kind has no entry.
func (c *Config) maxThrowSpeed(kind ObjectKind) float64 {
	if v, ok := c.MaxThrowSpeed[kind]; ok {
		return v
	}
	return c.MaxThrowSpeed[KindFile]
}
