// Package profile provides optional runtime profiling for argp.
//
// Profiling is backed by [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof -o argp .
//
// Without the tag every operation is a no-op and [Modes] is empty.
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode
// (cpu.pprof, mem.pprof, ...). Analyze them with go tool pprof:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// Supported modes: allocs, block, clock, cpu, goroutine, heap, mem, mutex,
// thread, trace.
//
// With the tag, this package also imports [net/http/pprof], registering its
// handlers on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
