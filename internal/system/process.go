package system

// Process is a resumable piece of work that spans several frames, such as a
// burst of shots or a delayed spawn.
type Process interface {
	Tick(deltaTime float64, clockRunning bool)
	Done() bool
}

// ProcessRunner ticks processes in the order they were added and drops the
// finished ones.
type ProcessRunner struct {
	procs []Process
}

func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{}
}

// Add registers p. A process that is already done is ignored.
func (r *ProcessRunner) Add(p Process) {
	if p == nil || p.Done() {
		return
	}
	r.procs = append(r.procs, p)
}

// Update ticks every process once. Processes added during the pass are
// ticked on the next call.
func (r *ProcessRunner) Update(deltaTime float64, clockRunning bool) {
	n := len(r.procs)
	for i := 0; i < n; i++ {
		r.procs[i].Tick(deltaTime, clockRunning)
	}
	kept := r.procs[:0]
	for _, p := range r.procs {
		if !p.Done() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(r.procs); i++ {
		r.procs[i] = nil
	}
	r.procs = kept
}

// Len is the number of unfinished processes.
func (r *ProcessRunner) Len() int {
	return len(r.procs)
}

func (r *ProcessRunner) Clear() {
	r.procs = nil
}
