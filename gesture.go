package flick

import "math"

// --- Gesture states ---

// GestureState is the current phase of one per-object gesture interpreter.
type GestureState uint8

const (
	StateIdle GestureState = iota
	StatePressing
	StateDragging
	StatePinching
	StateReleased // transient: observed only during drag-end handling
)

// String returns the state name for debugging.
func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressing:
		return "pressing"
	case StateDragging:
		return "dragging"
	case StatePinching:
		return "pinching"
	case StateReleased:
		return "released"
	}
	return "unknown"
}

// --- Commands ---

// CommandType tags a semantic gesture output.
type CommandType uint8

const (
	CommandTap CommandType = iota
	CommandDoubleTap
	CommandDragStart
	CommandDragMove
	CommandDragEnd
	CommandPinch
	CommandPinchEnd
	CommandCancel
)

// Command is one semantic gesture emitted by a Gesture machine. The host
// consumes the command stream instead of being called back from inside the
// state machine, which keeps classification independent of rendering.
type Command struct {
	Type        CommandType
	Target      ObjectID
	X, Y        float64 // pointer position in screen space (pinch: midpoint)
	TimestampMs float64
	Scale       float64 // valid for CommandPinch and CommandPinchEnd
}

// --- Per-pointer state ---

// activePointer tracks one pressed physical pointer for the lifetime of a
// press→release session.
type activePointer struct {
	id      int
	x, y    float64
	downTMs float64
}

// --- Gesture machine ---

// Gesture classifies the pointer stream routed to a single object into
// taps, double-taps, drags, and two-finger pinches. Transitions are a pure
// function of the current state, the pointer set, and the configured
// thresholds; Handle mutates the machine and returns the commands the
// event produced.
//
// Malformed sequences (moves or ups for untracked pointer ids, duplicate
// downs) are ignored rather than treated as errors: pointer devices are
// unreliable sources.
type Gesture struct {
	target ObjectID
	cfg    *Config

	state    GestureState
	pointers []activePointer

	// Press tracking (single-pointer states).
	pressX, pressY float64
	pressTMs       float64

	// Double-tap tracking.
	lastTapTMs float64
	hasLastTap bool

	// Pinch tracking.
	pinchInitialDist float64
	pinchEngaged     bool
	pinchScale       float64
}

// NewGesture creates an idle machine for the given target. cfg is shared,
// not copied; threshold changes apply to subsequent events.
func NewGesture(target ObjectID, cfg *Config) *Gesture {
	return &Gesture{target: target, cfg: cfg, pinchScale: 1}
}

// State returns the machine's current phase.
func (g *Gesture) State() GestureState {
	return g.state
}

// Target returns the object this machine classifies input for.
func (g *Gesture) Target() ObjectID {
	return g.target
}

// PointerCount returns the number of currently tracked pointers.
func (g *Gesture) PointerCount() int {
	return len(g.pointers)
}

// Handle advances the machine by one event and returns any commands it
// produced, in emission order.
func (g *Gesture) Handle(ev PointerEvent) []Command {
	switch ev.Type {
	case PointerDown:
		return g.handleDown(ev)
	case PointerMove:
		return g.handleMove(ev)
	case PointerUp:
		return g.handleUp(ev)
	case PointerCancel:
		return g.handleCancel(ev)
	}
	return nil
}

func (g *Gesture) handleDown(ev PointerEvent) []Command {
	if g.findPointer(ev.PointerID) != nil {
		return nil // duplicate down for a tracked id
	}
	g.pointers = append(g.pointers, activePointer{
		id: ev.PointerID, x: ev.X, y: ev.Y, downTMs: ev.TimestampMs,
	})

	// Pointer-count transitions run before anything else: a second finger
	// always wins over an in-progress single-finger decision.
	switch len(g.pointers) {
	case 1:
		if g.state == StateIdle {
			g.state = StatePressing
			g.pressX, g.pressY = ev.X, ev.Y
			g.pressTMs = ev.TimestampMs
		}
		return nil
	case 2:
		var cmds []Command
		if g.state == StateDragging {
			// The drag is abandoned, not released: no throw.
			cmds = append(cmds, g.command(CommandCancel, ev))
		}
		g.state = StatePinching
		g.pinchInitialDist = g.pointerDistance()
		g.pinchEngaged = false
		g.pinchScale = 1
		return cmds
	}
	// Third and later pointers are tracked but do not affect the gesture.
	return nil
}

func (g *Gesture) handleMove(ev PointerEvent) []Command {
	p := g.findPointer(ev.PointerID)
	if p == nil {
		return nil
	}
	p.x, p.y = ev.X, ev.Y

	switch g.state {
	case StatePressing:
		dx := ev.X - g.pressX
		dy := ev.Y - g.pressY
		if math.Hypot(dx, dy) > g.cfg.DragStartPx {
			g.state = StateDragging
			return []Command{g.command(CommandDragStart, ev)}
		}
	case StateDragging:
		return []Command{g.command(CommandDragMove, ev)}
	case StatePinching:
		return g.updatePinch(ev)
	}
	return nil
}

func (g *Gesture) handleUp(ev PointerEvent) []Command {
	p := g.findPointer(ev.PointerID)
	if p == nil {
		return nil
	}
	downTMs := p.downTMs
	g.removePointer(ev.PointerID)

	switch g.state {
	case StatePressing:
		g.state = StateIdle
		duration := ev.TimestampMs - downTMs
		dx := ev.X - g.pressX
		dy := ev.Y - g.pressY
		if duration < g.cfg.TapMaxMs && math.Hypot(dx, dy) < g.cfg.DragStartPx {
			return []Command{g.emitTap(ev)}
		}
	case StateDragging:
		if len(g.pointers) == 0 {
			g.state = StateReleased
			cmd := g.command(CommandDragEnd, ev)
			g.state = StateIdle
			return []Command{cmd}
		}
	case StatePinching:
		if len(g.pointers) < 2 {
			// One finger remains, but the original press-time reference is
			// no longer meaningful: back to idle, not pressing.
			g.state = StateIdle
			cmd := g.command(CommandPinchEnd, ev)
			cmd.Scale = g.pinchScale
			return []Command{cmd}
		}
		// A spare pointer lifted; re-anchor so the scale stays continuous
		// for the surviving pair.
		if g.pinchScale > 0 {
			g.pinchInitialDist = g.pointerDistance() / g.pinchScale
		}
	}
	return nil
}

// pointerDistance is the screen-space distance between the two pointers
// that define the pinch.
func (g *Gesture) pointerDistance() float64 {
	if len(g.pointers) < 2 {
		return 0
	}
	dx := g.pointers[1].x - g.pointers[0].x
	dy := g.pointers[1].y - g.pointers[0].y
	return math.Hypot(dx, dy)
}

func (g *Gesture) handleCancel(ev PointerEvent) []Command {
	if g.findPointer(ev.PointerID) == nil {
		return nil
	}
	g.removePointer(ev.PointerID)

	// A cancelled gesture is not a deliberate release: no tap, no throw.
	prev := g.state
	g.state = StateIdle
	g.pointers = g.pointers[:0]

	switch prev {
	case StateDragging:
		return []Command{g.command(CommandCancel, ev)}
	case StatePinching:
		cmd := g.command(CommandPinchEnd, ev)
		cmd.Scale = g.pinchScale
		return []Command{cmd}
	}
	return nil
}

// emitTap produces a tap or, when a previous tap on this target landed
// within the double-tap window, a double-tap. The tap clock resets after a
// double-tap so a third rapid tap starts a fresh sequence.
func (g *Gesture) emitTap(ev PointerEvent) Command {
	if g.hasLastTap && ev.TimestampMs-g.lastTapTMs < g.cfg.DoubleTapMaxMs {
		g.hasLastTap = false
		return g.command(CommandDoubleTap, ev)
	}
	g.hasLastTap = true
	g.lastTapTMs = ev.TimestampMs
	return g.command(CommandTap, ev)
}

// reset force-returns the machine to idle, dropping all tracked pointers.
// Used when the coordinator has to refuse a transition (lost a lock race).
func (g *Gesture) reset() {
	g.state = StateIdle
	g.pointers = g.pointers[:0]
	g.pinchEngaged = false
}

// resetTapClock forgets the pending tap so it cannot pair into a
// double-tap. Called by the coordinator when a tap lands on a different
// target.
func (g *Gesture) resetTapClock() {
	g.hasLastTap = false
}

func (g *Gesture) updatePinch(ev PointerEvent) []Command {
	if len(g.pointers) < 2 || g.pinchInitialDist <= 0 {
		return nil
	}
	dist := g.pointerDistance()

	if !g.pinchEngaged {
		if math.Abs(dist-g.pinchInitialDist) <= g.cfg.PinchStartPx {
			return nil
		}
		g.pinchEngaged = true
	}

	scale := dist / g.pinchInitialDist
	if scale < g.cfg.MinScale {
		scale = g.cfg.MinScale
	} else if scale > g.cfg.MaxScale {
		scale = g.cfg.MaxScale
	}
	g.pinchScale = scale

	mx := (g.pointers[0].x + g.pointers[1].x) / 2
	my := (g.pointers[0].y + g.pointers[1].y) / 2
	cmd := Command{
		Type:        CommandPinch,
		Target:      g.target,
		X:           mx,
		Y:           my,
		TimestampMs: ev.TimestampMs,
		Scale:       scale,
	}
	return []Command{cmd}
}

func (g *Gesture) command(t CommandType, ev PointerEvent) Command {
	return Command{
		Type:        t,
		Target:      g.target,
		X:           ev.X,
		Y:           ev.Y,
		TimestampMs: ev.TimestampMs,
	}
}

func (g *Gesture) findPointer(id int) *activePointer {
	for i := range g.pointers {
		if g.pointers[i].id == id {
			return &g.pointers[i]
		}
	}
	return nil
}

func (g *Gesture) removePointer(id int) {
	for i := range g.pointers {
		if g.pointers[i].id == id {
			copy(g.pointers[i:], g.pointers[i+1:])
			g.pointers = g.pointers[:len(g.pointers)-1]
			return
		}
	}
}
