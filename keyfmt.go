package keyfmt

import (
	"github.com/goliatone/go-keyfmt/pkg/registry"
	"github.com/goliatone/go-keyfmt/pkg/template"
)

// Callback produces the replacement text for one placeholder; see
// registry.Callback.
type Callback[T any] = registry.Callback[T]

// Pair couples a key with its callback for NewRegistry.
type Pair[T any] = registry.Pair[T]

// Registry maps placeholder keys to callbacks.
type Registry[T any] = registry.Registry[T]

// Sequence is the reusable compiled form of a template.
type Sequence[T any] = template.Sequence[T]

// UnknownKeyError reports a placeholder whose key had no registry entry.
type UnknownKeyError = template.UnknownKeyError

// NoDataError reports a callback with no value for the rendered data.
type NoDataError = template.NoDataError

// WriteError reports a failed output sink during RenderTo.
type WriteError = template.WriteError

// Sentinel errors from the compiler, re-exported for errors.Is checks.
var (
	ErrImbalancedBrackets = template.ErrImbalancedBrackets
	ErrOverflow           = template.ErrOverflow
)

// NewRegistry creates a registry seeded with the provided pairs.
func NewRegistry[T any](pairs ...Pair[T]) *Registry[T] {
	return registry.New(pairs...)
}

// Compile parses tmpl against reg into a reusable sequence.
func Compile[T any](reg *Registry[T], tmpl string) (*Sequence[T], error) {
	return template.Compile(reg, tmpl)
}

// MustCompile is Compile panicking on error, for templates fixed at startup.
func MustCompile[T any](reg *Registry[T], tmpl string) *Sequence[T] {
	return template.MustCompile(reg, tmpl)
}

// Render compiles tmpl and renders it against data in one call. Prefer
// Compile plus repeated Sequence.Render when the same template is applied to
// more than one data value; that is the point of this module.
func Render[T any](reg *Registry[T], tmpl string, data T) (string, error) {
	seq, err := template.Compile(reg, tmpl)
	if err != nil {
		return "", err
	}
	return seq.Render(data)
}
