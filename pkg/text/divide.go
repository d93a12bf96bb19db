package text

import (
	"unicode/utf8"
)

// piece is an intermediate span of the source. sep holds the discarded
// separator text that preceded it, if any.
type piece struct {
	text   string
	offset int
	sep    string
}

type span struct {
	piece

	leaf       bool
	separators []separator
}

// divide breaks text into pieces that each fit into a chunk, except for
// atomic units that are larger than the chunk size on their own.
func (s *Splitter) divide(text string) []piece {
	var result []piece

	stack := []span{
		{
			piece:      piece{text: text},
			separators: s.separators,
		},
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.leaf {
			result = append(result, current.piece)
			continue
		}

		if len(current.separators) == 0 {
			result = append(result, atoms(current.piece)...)
			continue
		}

		sep, rest := selectSeparator(current.text, current.separators)

		parts := s.splitOn(current.piece, sep)

		// pushed in reverse so that pieces pop off in source order
		for i := len(parts) - 1; i >= 0; i-- {
			part := parts[i]

			if s.length(part.text) <= s.chunkSize {
				stack = append(stack, span{piece: part, leaf: true})
				continue
			}

			stack = append(stack, span{piece: part, separators: rest})
		}
	}

	return result
}

// splitOn splits p at every occurrence of sep, applying the keep policy.
// Empty parts are dropped. Only discarded separators are tracked on the
// resulting pieces.
func (s *Splitter) splitOn(p piece, sep separator) []piece {
	if sep.atomic() {
		return atoms(p)
	}

	matches := sep.matches(p.text)

	if len(matches) == 0 {
		return []piece{p}
	}

	var result []piece

	add := func(start, end int, prefix string) {
		if end <= start {
			return
		}

		result = append(result, piece{
			text:   p.text[start:end],
			offset: p.offset + start,
			sep:    prefix,
		})
	}

	switch s.keep {
	case KeepSeparatorStart:
		add(0, matches[0][0], "")

		for i, m := range matches {
			end := len(p.text)

			if i+1 < len(matches) {
				end = matches[i+1][0]
			}

			add(m[0], end, "")
		}

	case KeepSeparatorEnd:
		start := 0

		for _, m := range matches {
			add(start, m[1], "")
			start = m[1]
		}

		add(start, len(p.text), "")

	default:
		start := 0
		prefix := p.sep

		for _, m := range matches {
			add(start, m[0], prefix)

			start = m[1]
			prefix = p.text[m[0]:m[1]]
		}

		add(start, len(p.text), prefix)
	}

	return result
}

// atoms splits p into single runes. The first rune inherits the separator.
func atoms(p piece) []piece {
	result := make([]piece, 0, utf8.RuneCountInString(p.text))

	for i := 0; i < len(p.text); {
		_, size := utf8.DecodeRuneInString(p.text[i:])

		a := piece{
			text:   p.text[i : i+size],
			offset: p.offset + i,
		}

		if i == 0 {
			a.sep = p.sep
		}

		result = append(result, a)

		i += size
	}

	return result
}
