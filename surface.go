package flick

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// --- Event types ---

// EventType identifies a gesture event class for callback handles.
type EventType uint8

const (
	EventTap EventType = iota
	EventDoubleTap
	EventDragStart
	EventDragMove
	EventDragEnd
	EventPinch
)

// --- Handler registry ---

type tapHandler struct {
	id uint32
	fn func(ObjectID)
}

type dragHandler struct {
	id uint32
	fn func(ObjectID, mgl64.Vec3)
}

type pinchHandler struct {
	id uint32
	fn func(ObjectID, float64)
}

type handlerRegistry struct {
	tap       []tapHandler
	doubleTap []tapHandler
	dragStart []dragHandler
	dragMove  []dragHandler
	dragEnd   []dragHandler
	pinch     []pinchHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered surface-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventTap:
		h.reg.tap = removeTapHandler(h.reg.tap, h.id)
	case EventDoubleTap:
		h.reg.doubleTap = removeTapHandler(h.reg.doubleTap, h.id)
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDragMove:
		h.reg.dragMove = removeDragHandler(h.reg.dragMove, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	case EventPinch:
		h.reg.pinch = removePinchHandler(h.reg.pinch, h.id)
	}
}

func removeTapHandler(s []tapHandler, id uint32) []tapHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tapHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePinchHandler(s []pinchHandler, id uint32) []pinchHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pinchHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Per-object state ---

type object struct {
	id      ObjectID
	kind    ObjectKind
	body    Body
	sim     *SimBody // non-nil when the Surface integrates the body itself
	shape   HitShape
	gesture *Gesture

	home  mgl64.Vec3 // recall target, captured at registration
	scale float64

	pinching  bool
	pinchBase float64

	recall     *VecTween
	scaleTween *ScaleTween
}

// --- Surface ---

// Surface is the coordinator that owns every manipulable object, routes
// raw pointer events to per-object gesture machines, runs the drag bridge
// and settle animations, and enforces the boundary every step.
//
// All methods must be called from the same goroutine as the simulation
// tick; the core is frame-driven and does no locking beyond the
// manipulation lock itself.
type Surface struct {
	cfg    Config
	region Region
	proj   Projector
	lock   ManipulationLock

	objects map[ObjectID]*object
	order   []ObjectID // registration order; later objects hit-test on top

	handlers handlerRegistry
	sink     func(Command)

	drag       *dragBridge
	dragTarget ObjectID

	lastTapTarget ObjectID
	hasLastTap    bool

	// pointerOwner routes move/up/cancel events to the object whose
	// gesture machine accepted the pointer's down event.
	pointerOwner map[int]ObjectID

	// RecallDuration is the double-tap recall animation length in
	// seconds. SettleDuration is the pinch scale snap length.
	RecallDuration float32
	SettleDuration float32
}

// NewSurface creates an empty surface with the given tuning, playable
// region, and camera projector.
func NewSurface(cfg Config, region Region, proj Projector) *Surface {
	return &Surface{
		cfg:            cfg,
		region:         region,
		proj:           proj,
		objects:        make(map[ObjectID]*object),
		pointerOwner:   make(map[int]ObjectID),
		RecallDuration: 0.35,
		SettleDuration: 0.15,
	}
}

// Region returns the surface's playable region.
func (s *Surface) Region() Region {
	return s.region
}

// SetRegion replaces the playable region. Takes effect on the next
// enforcement pass and on the next move of an in-flight drag.
func (s *Surface) SetRegion(r Region) {
	s.region = r
}

// Config returns a pointer to the surface's tuning so individual
// thresholds can be adjusted at runtime.
func (s *Surface) Config() *Config {
	return &s.cfg
}

// Add registers a manipulable object. body is the physics engine's handle
// for it and shape its interactive footprint. The body's current position
// becomes its home, the target of the double-tap recall. Adding an ID
// twice replaces the earlier registration.
func (s *Surface) Add(id ObjectID, kind ObjectKind, body Body, shape HitShape) {
	if _, exists := s.objects[id]; exists {
		s.Remove(id)
	}
	obj := &object{
		id:      id,
		kind:    kind,
		body:    body,
		shape:   shape,
		gesture: NewGesture(id, &s.cfg),
		home:    body.Position(),
		scale:   1,
	}
	if sim, ok := body.(*SimBody); ok {
		obj.sim = sim
	}
	s.objects[id] = obj
	s.order = append(s.order, id)
}

// Remove unregisters an object. An in-flight drag on it is cancelled so
// the manipulation lock is never left dangling.
func (s *Surface) Remove(id ObjectID) {
	obj, ok := s.objects[id]
	if !ok {
		return
	}
	if s.drag != nil && s.dragTarget == id {
		s.drag.Cancel()
		s.drag = nil
	}
	if obj.recall != nil {
		obj.recall.Stop()
	}
	delete(s.objects, id)
	for i := range s.order {
		if s.order[i] == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	for pid, owner := range s.pointerOwner {
		if owner == id {
			delete(s.pointerOwner, pid)
		}
	}
	if s.hasLastTap && s.lastTapTarget == id {
		s.hasLastTap = false
	}
}

// Scale returns an object's current display scale (1 when unknown).
func (s *Surface) Scale(id ObjectID) float64 {
	if obj, ok := s.objects[id]; ok {
		return obj.scale
	}
	return 1
}

// GestureState returns the named object's current gesture phase.
func (s *Surface) GestureState(id ObjectID) GestureState {
	if obj, ok := s.objects[id]; ok {
		return obj.gesture.State()
	}
	return StateIdle
}

// Lock exposes the manipulation lock, mainly for inspection.
func (s *Surface) Lock() *ManipulationLock {
	return &s.lock
}

// SetCommandSink installs a consumer for the raw gesture command stream.
// Commands are delivered after their side effects (drag bridge, tweens)
// have been applied. Pass nil to remove.
func (s *Surface) SetCommandSink(fn func(Command)) {
	s.sink = fn
}

// --- Callback registration ---

// OnTap registers a callback fired when an object is tapped.
func (s *Surface) OnTap(fn func(ObjectID)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.tap = append(s.handlers.tap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventTap}
}

// OnDoubleTap registers a callback fired when an object is double-tapped.
func (s *Surface) OnDoubleTap(fn func(ObjectID)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.doubleTap = append(s.handlers.doubleTap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDoubleTap}
}

// OnDragStart registers a callback fired when a drag begins. The position
// is the body's position on the surface.
func (s *Surface) OnDragStart(fn func(ObjectID, mgl64.Vec3)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.dragStart = append(s.handlers.dragStart, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDragStart}
}

// OnDragMove registers a callback fired for each drag movement.
func (s *Surface) OnDragMove(fn func(ObjectID, mgl64.Vec3)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.dragMove = append(s.handlers.dragMove, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDragMove}
}

// OnDragEnd registers a callback fired when a drag releases or is
// cancelled.
func (s *Surface) OnDragEnd(fn func(ObjectID, mgl64.Vec3)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.dragEnd = append(s.handlers.dragEnd, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDragEnd}
}

// OnPinch registers a callback fired with the object's updated display
// scale while a pinch is active.
func (s *Surface) OnPinch(fn func(ObjectID, float64)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pinch = append(s.handlers.pinch, pinchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPinch}
}

// --- Hit testing ---

// hitTest finds the topmost object whose footprint contains the surface
// point under the screen position. Later-registered objects are on top.
func (s *Surface) hitTest(x, y float64) *object {
	ray := s.proj.ScreenRay(x, y)
	for i := len(s.order) - 1; i >= 0; i-- {
		obj := s.objects[s.order[i]]
		if obj.shape == nil {
			continue
		}
		hit, ok := ray.IntersectHorizontal(obj.body.Position()[1])
		if !ok {
			continue
		}
		pos := obj.body.Position()
		dx := hit[0] - pos[0]
		dz := hit[2] - pos[2]
		if sc := obj.scale; sc > 0 && sc != 1 {
			dx /= sc
			dz /= sc
		}
		if obj.shape.Contains(dx, dz) {
			return obj
		}
	}
	return nil
}

// --- Event routing ---

// HandlePointerEvent routes one raw input event. Events must arrive in
// raw device order (down, move*, up) per pointer id. Down events are
// hit-tested; while the manipulation lock is held by another object the
// event is swallowed before the target's machine ever leaves idle.
func (s *Surface) HandlePointerEvent(ev PointerEvent) {
	var obj *object

	switch ev.Type {
	case PointerDown:
		obj = s.hitTest(ev.X, ev.Y)
		if obj == nil {
			return
		}
		if owner, _, held := s.lock.Owner(); held && owner != obj.id {
			return // another object is being manipulated
		}
		s.pointerOwner[ev.PointerID] = obj.id

	case PointerMove, PointerUp, PointerCancel:
		id, ok := s.pointerOwner[ev.PointerID]
		if !ok {
			return
		}
		obj = s.objects[id]
		if ev.Type == PointerUp || ev.Type == PointerCancel {
			delete(s.pointerOwner, ev.PointerID)
		}
	}
	if obj == nil {
		return
	}

	for _, cmd := range obj.gesture.Handle(ev) {
		s.runCommand(obj, cmd)
	}
}

// CancelAll delivers a cancel for every pressed pointer. Hosts call this
// when the pointer leaves the interactive surface or the window loses
// focus; it never produces a throw and always frees the lock.
func (s *Surface) CancelAll(tMs float64) {
	for pid := range s.pointerOwner {
		s.HandlePointerEvent(PointerEvent{
			PointerID:   pid,
			Type:        PointerCancel,
			TimestampMs: tMs,
		})
	}
}

// runCommand applies a gesture command's side effects, then forwards it to
// the callbacks and the command sink.
func (s *Surface) runCommand(obj *object, cmd Command) {
	switch cmd.Type {
	case CommandTap:
		// A tap on a new target resets the previous target's pending tap,
		// so alternating taps never pair into a double-tap.
		if s.hasLastTap && s.lastTapTarget != obj.id {
			if prev, ok := s.objects[s.lastTapTarget]; ok {
				prev.gesture.resetTapClock()
			}
		}
		s.lastTapTarget = obj.id
		s.hasLastTap = true
		for _, h := range s.handlers.tap {
			h.fn(obj.id)
		}

	case CommandDoubleTap:
		s.hasLastTap = false
		s.startRecall(obj)
		for _, h := range s.handlers.doubleTap {
			h.fn(obj.id)
		}

	case CommandDragStart:
		if s.drag != nil {
			break
		}
		guard, ok := s.lock.TryAcquire(obj.id, obj.kind)
		if !ok {
			obj.gesture.reset()
			break
		}
		if obj.recall != nil {
			obj.recall.Stop()
			obj.recall = nil
		}
		s.drag = newDragBridge(obj.body, obj.kind, &s.cfg, &s.region, s.proj, guard)
		s.dragTarget = obj.id
		s.drag.Move(cmd.X, cmd.Y, cmd.TimestampMs)
		for _, h := range s.handlers.dragStart {
			h.fn(obj.id, obj.body.Position())
		}

	case CommandDragMove:
		if s.drag == nil || s.dragTarget != obj.id {
			break
		}
		s.drag.Move(cmd.X, cmd.Y, cmd.TimestampMs)
		for _, h := range s.handlers.dragMove {
			h.fn(obj.id, obj.body.Position())
		}

	case CommandDragEnd:
		if s.drag == nil || s.dragTarget != obj.id {
			break
		}
		s.drag.End()
		s.drag = nil
		for _, h := range s.handlers.dragEnd {
			h.fn(obj.id, obj.body.Position())
		}

	case CommandCancel:
		if s.drag != nil && s.dragTarget == obj.id {
			s.drag.Cancel()
			s.drag = nil
			for _, h := range s.handlers.dragEnd {
				h.fn(obj.id, obj.body.Position())
			}
		}

	case CommandPinch:
		if !obj.pinching {
			obj.pinching = true
			obj.pinchBase = obj.scale
			obj.scaleTween = nil
		}
		obj.scale = obj.pinchBase * cmd.Scale
		for _, h := range s.handlers.pinch {
			h.fn(obj.id, obj.scale)
		}

	case CommandPinchEnd:
		if obj.pinching {
			obj.pinching = false
			// The per-gesture ratio is clamped, but the compounded scale
			// can still drift out of range; snap it back with an ease.
			if target := clampScale(obj.scale, s.cfg.MinScale, s.cfg.MaxScale); target != obj.scale {
				obj.scaleTween = NewScaleTween(&obj.scale, target, s.SettleDuration, ease.OutQuad)
			}
		}
	}

	if s.sink != nil {
		s.sink(cmd)
	}
}

// startRecall sends an object back to its home position and resting scale.
func (s *Surface) startRecall(obj *object) {
	if s.drag != nil && s.dragTarget == obj.id {
		return // cannot recall mid-drag
	}
	if obj.recall != nil {
		obj.recall.Stop()
	}
	obj.recall = NewVecTween(obj.body, obj.home, s.RecallDuration, ease.OutCubic)
	if obj.scale != 1 {
		obj.scaleTween = NewScaleTween(&obj.scale, 1, s.RecallDuration, ease.OutCubic)
	}
}

func clampScale(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Simulation step ---

// Step advances the surface by dt seconds. Call once per simulation tick,
// after all pointer events for the frame have been handled and after any
// external physics engine has integrated its bodies. Order within the
// step: settle animations, built-in body integration, then boundary
// enforcement over every tracked body. Enforcement runs last so its
// corrections are never overwritten, and unconditionally so thrown
// un-grabbed objects are constrained too.
func (s *Surface) Step(dt float64) {
	fdt := float32(dt)

	for _, id := range s.order {
		obj := s.objects[id]
		if obj.recall != nil {
			obj.recall.Update(fdt)
			if obj.recall.Done {
				obj.recall = nil
			}
		}
		if obj.scaleTween != nil {
			obj.scaleTween.Update(fdt)
			if obj.scaleTween.Done {
				obj.scaleTween = nil
			}
		}
	}

	for _, id := range s.order {
		if obj := s.objects[id]; obj.sim != nil {
			obj.sim.Step(dt)
		}
	}

	for _, id := range s.order {
		obj := s.objects[id]
		s.region.Enforce(obj.body, obj.kind, s.cfg.BounceRestitution)
	}
}
