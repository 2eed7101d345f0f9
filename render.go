package funcfmt

import (
	"io"
	"strings"
)

// bytes reserved per piece when rendering; only a hint
const renderGrowth = 4

// Render expands pieces against data. It stops at the first callback that
// reports no data and returns a NoDataError for its key. A formatter piece
// without a callback counts as having no data.
func Render[T any](pieces Pieces[T], data T) (string, error) {
	size, err := checkedMul(len(pieces), renderGrowth)
	if err != nil {
		return "", err
	}

	sb := &strings.Builder{}
	sb.Grow(size)
	for _, p := range pieces {
		if p.IsLiteral() {
			sb.WriteRune(p.Char)
			continue
		}
		if p.Formatter.Callback == nil {
			return "", &NoDataError{Key: p.Formatter.Key}
		}
		s, ok := p.Formatter.Callback(data)
		if !ok {
			return "", &NoDataError{Key: p.Formatter.Key}
		}
		sb.WriteString(s)
	}

	return sb.String(), nil
}

func (ps Pieces[T]) Render(data T) (string, error) {
	return Render(ps, data)
}

// RenderTo renders ps and writes the result to w. Nothing is written when
// rendering fails; a failed or short write is returned as a *WriteError.
func (ps Pieces[T]) RenderTo(w io.Writer, data T) error {
	body, err := Render(ps, data)
	if err != nil {
		return err
	}

	n, err := io.WriteString(w, body)
	if err != nil {
		return &WriteError{Err: err}
	}
	if n != len(body) {
		return &WriteError{Err: io.ErrShortWrite}
	}

	return nil
}
