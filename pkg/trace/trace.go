package trace

// Recorder receives intermediate values produced while an operation runs.
// Implementations must not retain the value slice past the call; callers may
// reuse the underlying buffer.
type Recorder interface {
	Record(step string, value []byte)
}

// RecorderFunc adapts an ordinary function to the Recorder interface.
type RecorderFunc func(step string, value []byte)

// Record invokes the underlying function.
func (f RecorderFunc) Record(step string, value []byte) {
	f(step, value)
}

// Emit forwards a step to r if r is non-nil. The primitive packages call this
// so a nil recorder costs a single branch.
func Emit(r Recorder, step string, value []byte) {
	if r != nil {
		r.Record(step, value)
	}
}
