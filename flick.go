package flick

// ObjectID identifies a manipulable object registered on a Surface.
// IDs are assigned by the host application; 0 is a valid ID.
type ObjectID uint32

// ObjectKind classifies an object for kind-dependent tuning (boundary
// margins, throw speed caps). Files are small cards; content panels are
// larger and must stay fully inside the region.
type ObjectKind uint8

const (
	KindFile ObjectKind = iota
	KindContent
)

// PointerEventType is the raw event class delivered by an input source.
type PointerEventType uint8

const (
	PointerDown PointerEventType = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is one raw input event in arrival order. X and Y are screen
// coordinates in pixels. TimestampMs is milliseconds on a monotonic clock;
// only differences between timestamps are meaningful.
type PointerEvent struct {
	PointerID   int
	Type        PointerEventType
	X, Y        float64
	TimestampMs float64
}
