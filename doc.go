// Package keyfmt compiles {key} placeholder templates once and renders them
// against arbitrarily many data values without re-parsing.
//
// The work splits across three pieces: a registry of named callbacks
// (pkg/registry), a compiler that resolves a template against the registry
// into an immutable sequence, and a render walk over that sequence
// (pkg/template). This root package re-exports the common surface so most
// callers only import keyfmt:
//
//	reg := keyfmt.NewRegistry(
//		keyfmt.Pair[string]{Key: "foo", Callback: func(d string) (string, bool) { return "foo:" + d, true }},
//		keyfmt.Pair[string]{Key: "bar", Callback: func(d string) (string, bool) { return "bar:" + d, true }},
//	)
//	seq, err := keyfmt.Compile(reg, "{foo}, {bar}")
//	out, _ := seq.Render("A") // "foo:A, bar:A"
//	out, _ = seq.Render("B")  // "foo:B, bar:B"
//
// Write literal braces as {{ and }}. Compiled sequences are immutable and
// safe for concurrent renders.
package keyfmt
