// Package funcfmt compiles {key} templates against a map of callbacks once and
// renders the result many times against different data.
package funcfmt

import "sort"

// Callback produces the text for one placeholder. Returning false means the
// data holds nothing for that placeholder and rendering fails with a
// NoDataError.
type Callback[T any] func(data T) (string, bool)

// Formatter binds a key to its callback.
type Formatter[T any] struct {
	Key      string
	Callback Callback[T]
}

// FormatMap maps placeholder keys to formatters. It is owned by the caller
// and only read by Compile.
type FormatMap[T any] map[string]Formatter[T]

func Entry[T any](key string, cb func(data T) (string, bool)) Formatter[T] {
	return Formatter[T]{Key: key, Callback: cb}
}

// NewFormatMap builds a FormatMap from entries. Later entries replace earlier
// ones with the same key; entries without a callback are skipped.
func NewFormatMap[T any](entries ...Formatter[T]) FormatMap[T] {
	m := make(FormatMap[T], len(entries))
	for _, e := range entries {
		if e.Callback == nil {
			continue
		}
		m[e.Key] = e
	}

	return m
}

// Register adds or replaces the formatter for key. A nil callback is ignored.
func (m FormatMap[T]) Register(key string, cb func(data T) (string, bool)) {
	if cb == nil {
		return
	}
	m[key] = Entry(key, cb)
}

func (m FormatMap[T]) Compile(tmpl string) (Pieces[T], error) {
	return Compile(m, tmpl)
}

func (m FormatMap[T]) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Fields returns a FormatMap over string records: each key renders the record
// value stored under the same name, and a missing value is reported as no
// data.
func Fields(keys ...string) FormatMap[map[string]string] {
	m := make(FormatMap[map[string]string], len(keys))
	for _, k := range keys {
		key := k
		m.Register(key, func(rec map[string]string) (string, bool) {
			v, ok := rec[key]
			return v, ok
		})
	}

	return m
}
