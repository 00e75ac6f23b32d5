// Package template compiles placeholder templates into reusable sequences
// and renders those sequences against caller data.
//
// A template is plain text with {key} placeholders. Compile resolves every
// placeholder against a registry exactly once, producing an immutable
// Sequence that can be rendered any number of times with different data
// without re-parsing the template:
//
//	reg := registry.New(
//		registry.Pair[string]{Key: "foo", Callback: func(d string) (string, bool) { return "foo:" + d, true }},
//	)
//	seq, err := template.Compile(reg, "{foo}")
//	out, err := seq.Render("A") // "foo:A"
//	out, err = seq.Render("B")  // "foo:B", no recompilation
//
// Literal braces are written as {{ and }}. A key may contain any character
// except braces. Sequences are safe for concurrent Render calls as long as
// the registered callbacks are.
package template
