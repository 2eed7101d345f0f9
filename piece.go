package funcfmt

import "strings"

// Piece is one element of a compiled template: either a literal rune or a
// reference to a formatter. A formatter piece owns its copy of the Formatter,
// so the FormatMap it was compiled from can change afterwards.
type Piece[T any] struct {
	Char      rune
	Formatter *Formatter[T]
}

func literal[T any](r rune) Piece[T] {
	return Piece[T]{Char: r}
}

func (p Piece[T]) IsLiteral() bool {
	return p.Formatter == nil
}

// Equal reports whether two pieces are the same. Formatter pieces compare by
// key only; the callbacks they hold are not compared.
func (p Piece[T]) Equal(o Piece[T]) bool {
	if p.IsLiteral() || o.IsLiteral() {
		return p.IsLiteral() && o.IsLiteral() && p.Char == o.Char
	}

	return p.Formatter.Key == o.Formatter.Key
}

func (p Piece[T]) String() string {
	if !p.IsLiteral() {
		return "{" + p.Formatter.Key + "}"
	}
	switch p.Char {
	case '{':
		return "{{"
	case '}':
		return "}}"
	}

	return string(p.Char)
}

// Pieces is a compiled template. It is never modified after Compile returns
// and may be rendered any number of times, concurrently if the callbacks
// allow it.
type Pieces[T any] []Piece[T]

func (ps Pieces[T]) Equal(o Pieces[T]) bool {
	if len(ps) != len(o) {
		return false
	}
	for i := range ps {
		if !ps[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// String returns a template that compiles back to the same pieces, with
// literal braces escaped.
func (ps Pieces[T]) String() string {
	sb := &strings.Builder{}
	for _, p := range ps {
		sb.WriteString(p.String())
	}

	return sb.String()
}

// Keys returns the formatter keys in template order, duplicates included.
func (ps Pieces[T]) Keys() []string {
	var keys []string
	for _, p := range ps {
		if !p.IsLiteral() {
			keys = append(keys, p.Formatter.Key)
		}
	}

	return keys
}
