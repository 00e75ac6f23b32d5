package template

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-keyfmt/pkg/registry"
)

// piece is one compiled segment of a template: verbatim text when cb is nil,
// otherwise a placeholder bound to the callback resolved at compile time.
type piece[T any] struct {
	text string
	key  string
	cb   registry.Callback[T]
}

// Sequence is the compiled form of a template: an ordered, immutable list of
// pieces. It holds its own callback handles and has no remaining dependency
// on the registry it was compiled from. A Sequence may be shared across
// goroutines and rendered concurrently.
type Sequence[T any] struct {
	pieces []piece[T]
}

// Len reports the number of compiled pieces. Consecutive literal runs are
// coalesced, so Len is at most one greater than twice the placeholder count.
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pieces)
}

// Keys returns the placeholder keys in template order, including duplicates.
func (s *Sequence[T]) Keys() []string {
	if s == nil {
		return nil
	}
	var keys []string
	for _, p := range s.pieces {
		if p.cb != nil {
			keys = append(keys, p.key)
		}
	}
	return keys
}

// Compile parses tmpl in a single left-to-right pass and resolves every
// {key} placeholder against reg, returning the reusable compiled sequence.
// A nil registry behaves like an empty one.
//
// Compilation fails with ErrImbalancedBrackets on malformed placeholder
// syntax, with an UnknownKeyError when a referenced key has no registry
// entry, and with ErrOverflow if index arithmetic would wrap. No partial
// sequence is returned on failure. Errors report the first malformed
// construct encountered.
func Compile[T any](reg *registry.Registry[T], tmpl string) (*Sequence[T], error) {
	pieces := make([]piece[T], 0, 8)
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			pieces = append(pieces, piece[T]{text: run.String()})
			run.Reset()
		}
	}

	inKey := false
	keyStart := 0

	for i := 0; i < len(tmpl); {
		r, size := utf8.DecodeRuneInString(tmpl[i:])
		next, err := checkedAdd(i, size)
		if err != nil {
			return nil, err
		}

		if inKey {
			switch r {
			case '{':
				// nested opening brace inside a key
				return nil, ErrImbalancedBrackets
			case '}':
				key := tmpl[keyStart:i]
				cb, ok := reg.Lookup(key)
				if !ok {
					return nil, &UnknownKeyError{Key: key}
				}
				pieces = append(pieces, piece[T]{key: key, cb: cb})
				inKey = false
			}
			i = next
			continue
		}

		switch r {
		case '{':
			if strings.HasPrefix(tmpl[next:], "{") {
				run.WriteByte('{')
				if i, err = checkedAdd(next, 1); err != nil {
					return nil, err
				}
				continue
			}
			flush()
			inKey = true
			keyStart = next
		case '}':
			if strings.HasPrefix(tmpl[next:], "}") {
				run.WriteByte('}')
				if i, err = checkedAdd(next, 1); err != nil {
					return nil, err
				}
				continue
			}
			// unmatched closing brace
			return nil, ErrImbalancedBrackets
		default:
			run.WriteString(tmpl[i:next])
		}
		i = next
	}

	if inKey {
		// placeholder still open at end of input
		return nil, ErrImbalancedBrackets
	}
	flush()

	return &Sequence[T]{pieces: pieces}, nil
}

// MustCompile is like Compile but panics on error. It simplifies wiring
// templates known to be valid at program start.
func MustCompile[T any](reg *registry.Registry[T], tmpl string) *Sequence[T] {
	seq, err := Compile(reg, tmpl)
	if err != nil {
		panic(err)
	}
	return seq
}

func checkedAdd(a, b int) (int, error) {
	if a > math.MaxInt-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

func checkedMul(a, b int) (int, error) {
	if a != 0 && b > math.MaxInt/a {
		return 0, ErrOverflow
	}
	return a * b, nil
}
