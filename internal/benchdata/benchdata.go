// Package benchdata builds the numbered-key template shared by the benchmarks
// and the funcfmt -bench command.
package benchdata

import (
	"strconv"
	"strings"

	"fbnoi.com/funcfmt"
)

// Keys is the number of placeholders in the benchmark template.
const Keys = 19

// Input is the data the benchmark template is rendered against.
const Input = "bar"

// Numbered returns a FormatMap with keys "1" to "n", each wrapping its input
// in underscores, the template "{1}{2}...{n}" and its rendering of Input.
func Numbered(n int) (funcfmt.FormatMap[string], string, string) {
	m := funcfmt.FormatMap[string]{}
	tmpl := &strings.Builder{}
	expected := &strings.Builder{}
	for i := 1; i <= n; i++ {
		key := strconv.Itoa(i)
		m.Register(key, func(e string) (string, bool) {
			return "_" + e + "_", true
		})
		tmpl.WriteString("{" + key + "}")
		expected.WriteString("_" + Input + "_")
	}

	return m, tmpl.String(), expected.String()
}
