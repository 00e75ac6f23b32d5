package manifest

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-keyfmt/pkg/registry"
	"github.com/goliatone/go-keyfmt/pkg/template"
)

const sampleYAML = `
patterns:
  track: "{artist} - {title}"
  short: "{title}"
`

func TestLoad_YAML(t *testing.T) {
	set, err := Load([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"short", "track"}, set.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	pattern, ok := set.Pattern("track")
	if !ok {
		t.Fatal("pattern track not found")
	}
	if want := "{artist} - {title}"; pattern != want {
		t.Fatalf("pattern mismatch\nwant: %q\n got: %q", want, pattern)
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load([]byte("patterns:\n  a: \"{x}\"\nextras:\n  - nope\n"))
	if err == nil {
		t.Fatal("unknown top-level field should fail strict parsing")
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	set, err := Load(nil)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if set.Len() != 0 {
		t.Fatalf("want empty set, got %d patterns", set.Len())
	}
}

func TestLoadFS_MergesAndDispatches(t *testing.T) {
	fsys := fstest.MapFS{
		"naming.yml":       {Data: []byte("patterns:\n  track: \"{artist} - {title}\"\n")},
		"extra/more.json":  {Data: []byte(`{"patterns": {"flat": "{title}"}}`)},
		"ignore/notes.txt": {Data: []byte("not a manifest")},
	}
	set, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if diff := cmp.Diff([]string{"flat", "track"}, set.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_DuplicateAcrossFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("patterns:\n  track: \"{artist}\"\n")},
		"b.yaml": {Data: []byte("patterns:\n  track: \"{title}\"\n")},
	}
	_, err := LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), `duplicate pattern "track"`) {
		t.Fatalf("want duplicate pattern error, got %v", err)
	}
}

func TestLoadFS_EmptyPatternName(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("patterns:\n  \"  \": \"{artist}\"\n")},
	}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("blank pattern name should fail")
	}
}

func TestCompileAll(t *testing.T) {
	set, err := Load([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	reg := registry.New(
		registry.Pair[string]{Key: "artist", Callback: func(d string) (string, bool) { return "A-" + d, true }},
		registry.Pair[string]{Key: "title", Callback: func(d string) (string, bool) { return "T-" + d, true }},
	)

	compiled, err := CompileAll(set, reg)
	if err != nil {
		t.Fatalf("compile all: %v", err)
	}
	if len(compiled) != 2 {
		t.Fatalf("want 2 compiled patterns, got %d", len(compiled))
	}
	out, err := compiled["track"].Render("x")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "A-x - T-x"; out != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestCompileAll_WrapsCompileError(t *testing.T) {
	set, err := Load([]byte("patterns:\n  bad: \"{missing}\"\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	_, err = CompileAll(set, registry.New[string]())
	if err == nil {
		t.Fatal("compiling against an empty registry should fail")
	}
	if !strings.Contains(err.Error(), `pattern "bad"`) {
		t.Fatalf("error should name the failing pattern, got %v", err)
	}
	var unknown *template.UnknownKeyError
	if !errors.As(err, &unknown) || unknown.Key != "missing" {
		t.Fatalf("error should wrap the core unknown-key error, got %v", err)
	}
}
