package physics

// DefaultContactOffset is the distance at which the engine starts generating
// contacts for a collider.
const DefaultContactOffset = 0.01

// Task is polled once per rendered frame until it reports done.
type Task interface {
	Poll() bool
}

type TaskFunc func() bool

func (f TaskFunc) Poll() bool {
	return f()
}

// Deferred holds one-shot tasks that wait on engine layout. It is driven from
// the render loop, never from inside a physics step.
type Deferred struct {
	tasks []Task
}

func (d *Deferred) Schedule(t Task) {
	if d == nil || t == nil {
		return
	}
	d.tasks = append(d.tasks, t)
}

// RunFrame polls every pending task once and drops the finished ones.
func (d *Deferred) RunFrame() {
	if d == nil || len(d.tasks) == 0 {
		return
	}
	pending := d.tasks[:0]
	for _, t := range d.tasks {
		if !t.Poll() {
			pending = append(pending, t)
		}
	}
	for i := len(pending); i < len(d.tasks); i++ {
		d.tasks[i] = nil
	}
	d.tasks = pending
}

func (d *Deferred) Pending() int {
	if d == nil {
		return 0
	}
	return len(d.tasks)
}

// ColliderFixup waits until the actor's collider height differs from the
// height it had when the fixup was created, then completes the actor's
// layout with the settled height.
type ColliderFixup struct {
	actor   *Actor
	initial float64
	frames  int
}

func NewColliderFixup(a *Actor) *ColliderFixup {
	f := &ColliderFixup{actor: a}
	if a != nil {
		f.initial = a.Collider.Size.Y
	}
	return f
}

func (f *ColliderFixup) Poll() bool {
	if f == nil || f.actor == nil {
		return true
	}
	if f.actor.LayoutReady() {
		return true
	}
	h := f.actor.Collider.Size.Y
	if h == f.initial {
		f.frames++
		return false
	}
	f.actor.OnLayoutReady(h)
	return true
}

// Frames is the number of frames the fixup has waited so far.
func (f *ColliderFixup) Frames() int {
	if f == nil {
		return 0
	}
	return f.frames
}

// ContactFixup shrinks one collider dimension by four contact offsets so the
// engine's contact margin does not leave a visible gap. The world-space size
// never drops below one contact offset.
func ContactFixup(size, scale, contactOffset float64) float64 {
	total := size * scale
	if total == 0 {
		return size
	}
	corrected := total - contactOffset*4
	if corrected < contactOffset {
		corrected = contactOffset
	}
	return corrected / total * size
}

// ApplyContactFixup resizes the engine collider of a.
func (a *Actor) ApplyContactFixup(contactOffset float64) {
	if a == nil {
		return
	}
	a.Collider.Size.X = ContactFixup(a.Collider.Size.X, a.cfg.Scale.X, contactOffset)
	a.Collider.Size.Y = ContactFixup(a.Collider.Size.Y, a.cfg.Scale.Y, contactOffset)
}
