package profile

// Profiler describes a profiling session.
type Profiler struct {
	// Mode selects what is profiled. See [Modes].
	Mode string
	// Path is the output directory. Empty uses the working directory.
	Path string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Start begins profiling and returns a value whose Stop method ends it.
//
// If the package was built without the pprof tag, or Mode is empty or
// unknown, Start returns a no-op. Start and Stop are always safe to call.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
