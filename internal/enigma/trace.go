package enigma

// Step describes one conversion as seen by a Tracer. Settings hold the
// positions of slots 1..n-1 as indices.
type Step struct {
	Before  []int
	After   []int
	Input   int
	Plugged int
	Rotated int
	Output  int
}

// Tracer receives a Step for every symbol a machine converts.
type Tracer interface {
	TraceStep(Step)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(Step)

// TraceStep calls f(s).
func (f TracerFunc) TraceStep(s Step) { f(s) }
