package reactive

// Trigger is a data-less signal used purely for change notification: Track
// subscribes the current effect, Notify re-runs every subscriber. Because
// signal writes always notify, a trigger fires even though its value never
// changes.
type Trigger struct {
	signal *Signal[struct{}]
}

// NewTrigger creates a trigger owned by the current scope.
func NewTrigger() *Trigger {
	return &Trigger{signal: NewSignal(struct{}{})}
}

// Notify synchronously re-runs every effect tracking this trigger.
func (t *Trigger) Notify() {
	t.signal.Set(struct{}{})
}

// Track subscribes the current effect to this trigger.
func (t *Trigger) Track() {
	t.signal.Track()
}

// ID returns the identity of the trigger's underlying signal.
func (t *Trigger) ID() uint64 {
	return t.signal.ID()
}
