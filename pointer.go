package flick

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// EbitenPointerSource polls Ebitengine mouse and touch state once per
// frame and synthesizes the ordered PointerEvent stream a Surface
// consumes. The mouse occupies pointer slot 0 (left button only); touches
// are assigned stable slots 1-9 for as long as they stay down.
type EbitenPointerSource struct {
	surface *Surface
	now     func() float64 // milliseconds on a monotonic clock

	down  [maxPointers]bool
	lastX [maxPointers]float64
	lastY [maxPointers]float64

	touchMap    [maxPointers]ebiten.TouchID
	touchUsed   [maxPointers]bool
	touchIDsBuf []ebiten.TouchID
}

// NewEbitenPointerSource creates a source feeding the given surface.
func NewEbitenPointerSource(s *Surface) *EbitenPointerSource {
	start := time.Now()
	return &EbitenPointerSource{
		surface: s,
		now: func() float64 {
			return float64(time.Since(start).Microseconds()) / 1000.0
		},
	}
}

// Update reads the current input state and emits any resulting events.
// Call once per ebiten Update, before Surface.Step.
func (p *EbitenPointerSource) Update() {
	tMs := p.now()
	p.updateMouse(tMs)
	p.updateTouches(tMs)
}

// CancelAll emits a cancel for every pressed pointer and forgets all touch
// slots. Call when the window loses focus so no drag is left owning the
// manipulation lock.
func (p *EbitenPointerSource) CancelAll() {
	tMs := p.now()
	for i := range p.down {
		if !p.down[i] {
			continue
		}
		p.surface.HandlePointerEvent(PointerEvent{
			PointerID:   i,
			Type:        PointerCancel,
			X:           p.lastX[i],
			Y:           p.lastY[i],
			TimestampMs: tMs,
		})
		p.down[i] = false
	}
	for i := 1; i < maxPointers; i++ {
		p.touchUsed[i] = false
		p.touchMap[i] = 0
	}
}

func (p *EbitenPointerSource) updateMouse(tMs float64) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.emit(0, float64(mx), float64(my), pressed, tMs)
}

func (p *EbitenPointerSource) updateTouches(tMs float64) {
	p.touchIDsBuf = ebiten.AppendTouchIDs(p.touchIDsBuf[:0])

	var active [maxPointers]bool
	for _, tid := range p.touchIDsBuf {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		p.emit(slot, float64(tx), float64(ty), true, tMs)
	}

	// Touches that vanished this frame release their slot.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !active[i] {
			if p.down[i] {
				p.emit(i, p.lastX[i], p.lastY[i], false, tMs)
			}
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (p *EbitenPointerSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// emit compares the polled state against the previous frame and delivers
// down/move/up events in device order.
func (p *EbitenPointerSource) emit(id int, x, y float64, pressed bool, tMs float64) {
	switch {
	case pressed && !p.down[id]:
		p.down[id] = true
		p.surface.HandlePointerEvent(PointerEvent{
			PointerID: id, Type: PointerDown, X: x, Y: y, TimestampMs: tMs,
		})
	case pressed && p.down[id]:
		if x != p.lastX[id] || y != p.lastY[id] {
			p.surface.HandlePointerEvent(PointerEvent{
				PointerID: id, Type: PointerMove, X: x, Y: y, TimestampMs: tMs,
			})
		}
	case !pressed && p.down[id]:
		p.down[id] = false
		p.surface.HandlePointerEvent(PointerEvent{
			PointerID: id, Type: PointerUp, X: x, Y: y, TimestampMs: tMs,
		})
	}
	p.lastX[id] = x
	p.lastY[id] = y
}
