package template

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-keyfmt/pkg/registry"
)

// benchSetup builds a registry with keyCount numbered keys and a template
// referencing every one of them, mirroring heavy batch-format workloads.
func benchSetup(keyCount int) (*registry.Registry[string], string) {
	reg := registry.New[string]()
	var tmpl strings.Builder
	for i := 0; i < keyCount; i++ {
		reg.Insert(fmt.Sprintf("k%d", i), func(d string) (string, bool) { return "_" + d + "_", true })
		fmt.Fprintf(&tmpl, "{k%d}", i)
	}
	return reg, tmpl.String()
}

func BenchmarkCompile(b *testing.B) {
	reg, tmpl := benchSetup(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(reg, tmpl); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	reg, tmpl := benchSetup(1000)
	seq, err := Compile(reg, tmpl)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seq.Render("data"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderTo(b *testing.B) {
	reg, tmpl := benchSetup(1000)
	seq, err := Compile(reg, tmpl)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := seq.RenderTo(io.Discard, "data"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompileSmall(b *testing.B) {
	reg := registry.New(
		registry.Pair[string]{Key: "artist", Callback: func(d string) (string, bool) { return d, true }},
		registry.Pair[string]{Key: "title", Callback: func(d string) (string, bool) { return d, true }},
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(reg, "{artist} - {title}.flac"); err != nil {
			b.Fatal(err)
		}
	}
}
