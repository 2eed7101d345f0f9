package funcfmt

const noWord = -1

// Compile turns tmpl into pieces using the formatters in m.
//
// A placeholder is written {key}; {{ and }} stand for literal braces. Every
// placeholder key must be present in m. The template is scanned rune by
// rune, so keys and literals are never split inside a multi-byte character.
//
// The template must be valid UTF-8. Each invalid byte is decoded as
// utf8.RuneError (U+FFFD), both in literal text, where it renders as U+FFFD,
// and in keys, which are then looked up and reported with U+FFFD in place of
// the original byte.
func Compile[T any](m FormatMap[T], tmpl string) (Pieces[T], error) {
	var (
		runes = []rune(tmpl)
		out   = make(Pieces[T], 0, len(runes))
		start = noWord
		err   error
	)

	for idx := 0; idx < len(runes); idx++ {
		cur := runes[idx]
		switch {
		case cur == '{' && start == noWord:
			if peek(runes, idx) == '{' {
				out = append(out, literal[T]('{'))
				idx++
				continue
			}
			if start, err = checkedAdd(idx, 1); err != nil {
				return nil, err
			}
		case cur == '{':
			return nil, newMismatchedBrackets(idx)
		case cur == '}' && start == noWord:
			if peek(runes, idx) != '}' {
				return nil, newMismatchedBrackets(idx)
			}
			out = append(out, literal[T]('}'))
			idx++
		case cur == '}':
			key := string(runes[start:idx])
			f, ok := m[key]
			if !ok || f.Callback == nil {
				return nil, &UnknownFieldError{Key: key}
			}
			out = append(out, Piece[T]{Formatter: &Formatter[T]{Key: key, Callback: f.Callback}})
			start = noWord
		case start != noWord:
			// part of the key
		default:
			out = append(out, literal[T](cur))
		}
	}

	if start != noWord {
		open, err := checkedSub(start, 1)
		if err != nil {
			return nil, err
		}
		return nil, newMismatchedBrackets(open)
	}

	return out, nil
}

// peek returns the rune after idx, or 0 at the end of input.
func peek(runes []rune, idx int) rune {
	if idx+1 < len(runes) {
		return runes[idx+1]
	}

	return 0
}
