package funcfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatMap(t *testing.T) {
	m := NewFormatMap(
		Entry("a", func(int) (string, bool) { return "first", true }),
		Entry("b", func(int) (string, bool) { return "b", true }),
		Entry("a", func(int) (string, bool) { return "second", true }),
		Formatter[int]{Key: "nil"},
	)
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	s, ok := m["a"].Callback(0)
	assert.True(t, ok)
	assert.Equal(t, "second", s)
}

func TestRegister(t *testing.T) {
	m := FormatMap[int]{}
	m.Register("x", func(int) (string, bool) { return "x", true })
	m.Register("x", func(int) (string, bool) { return "y", true })
	m.Register("skip", nil)

	assert.Equal(t, []string{"x"}, m.Keys())
	assert.Equal(t, "x", m["x"].Key)
	s, _ := m["x"].Callback(0)
	assert.Equal(t, "y", s)
}

func TestCompileUsesMapKeyNotFormatterKey(t *testing.T) {
	m := FormatMap[int]{
		"real": {Key: "stale", Callback: func(int) (string, bool) { return "ok", true }},
	}
	pieces, err := m.Compile("{real}")
	require.NoError(t, err)
	assert.Equal(t, []string{"real"}, pieces.Keys())
}

func TestFields(t *testing.T) {
	pieces, err := Fields("host", "port").Compile("{host}:{port}")
	require.NoError(t, err)

	content, err := pieces.Render(map[string]string{"host": "localhost", "port": "8080", "extra": "x"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", content)

	content, err = pieces.Render(map[string]string{"host": "", "port": ""})
	require.NoError(t, err)
	assert.Equal(t, ":", content)

	_, err = pieces.Render(map[string]string{"host": "localhost"})
	assert.Equal(t, &NoDataError{Key: "port"}, err)

	_, err = Fields("host").Compile("{host}:{port}")
	assert.Equal(t, &UnknownFieldError{Key: "port"}, err)
}

func TestPieceEqual(t *testing.T) {
	one := func(string) (string, bool) { return "1", true }
	two := func(string) (string, bool) { return "2", true }

	a := Piece[string]{Formatter: &Formatter[string]{Key: "k", Callback: one}}
	b := Piece[string]{Formatter: &Formatter[string]{Key: "k", Callback: two}}
	c := Piece[string]{Formatter: &Formatter[string]{Key: "other", Callback: one}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(literal[string]('k')))
	assert.False(t, literal[string]('k').Equal(a))
	assert.True(t, literal[string]('k').Equal(literal[string]('k')))
	assert.False(t, literal[string]('k').Equal(literal[string]('j')))

	assert.False(t, Pieces[string]{a}.Equal(Pieces[string]{a, b}))
	assert.True(t, Pieces[string]{a, literal[string]('x')}.Equal(Pieces[string]{b, literal[string]('x')}))
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "a", literal[string]('a').String())
	assert.Equal(t, "{{", literal[string]('{').String())
	assert.Equal(t, "}}", literal[string]('}').String())
	assert.Equal(t, "{key}", Piece[string]{Formatter: &Formatter[string]{Key: "key"}}.String())
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, &UnknownFieldError{Key: "baz"}, "unknown field 'baz'")
	assert.EqualError(t, &NoDataError{Key: "nodata"}, "no data for field 'nodata'")
	assert.EqualError(t, ErrMismatchedBrackets, "mismatched brackets in format")
	assert.EqualError(t, ErrOverflow, "integer overflow/underflow")
}
