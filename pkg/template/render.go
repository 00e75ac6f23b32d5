package template

import (
	"io"
	"strings"
)

// renderSizeHint pre-sizes the output buffer at a small constant per piece.
// Purely a reallocation tactic; rendered output is unaffected.
const renderSizeHint = 16

// Render walks the sequence in order against data and returns the composed
// string. A callback reporting no data fails the call with a NoDataError for
// its key and no partial output is returned. Output is deterministic for
// deterministic callbacks: it depends only on data.
func (s *Sequence[T]) Render(data T) (string, error) {
	var out strings.Builder
	hint, err := checkedMul(s.Len(), renderSizeHint)
	if err != nil {
		return "", err
	}
	out.Grow(hint)
	if err := s.RenderTo(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

// RenderTo is Render targeting an arbitrary writer. Sink failures are
// wrapped in a WriteError. Unlike Render, text appended before a failing
// piece has already reached w; callers needing all-or-nothing output should
// use Render or stage into a buffer.
func (s *Sequence[T]) RenderTo(w io.Writer, data T) error {
	if s == nil {
		return nil
	}
	for _, p := range s.pieces {
		if p.cb == nil {
			if _, err := io.WriteString(w, p.text); err != nil {
				return &WriteError{Err: err}
			}
			continue
		}
		produced, ok := p.cb(data)
		if !ok {
			return &NoDataError{Key: p.key}
		}
		if _, err := io.WriteString(w, produced); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}
