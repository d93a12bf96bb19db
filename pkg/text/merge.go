package text

import (
	"strings"
)

// merge packs pieces greedily into chunks of at most chunkSize, carrying
// trailing pieces of width up to chunkOverlap into the next chunk.
func (s *Splitter) merge(pieces []piece) []Chunk {
	result := []Chunk{}

	var window []piece

	flush := func() {
		if len(window) == 0 {
			return
		}

		if c, ok := s.chunk(join(window), window[0].offset); ok {
			result = append(result, c)
		}
	}

	for _, p := range pieces {
		if s.length(p.text) > s.chunkSize {
			flush()

			if c, ok := s.chunk(p.text, p.offset); ok {
				result = append(result, c)
			}

			window = nil
			continue
		}

		if len(window) > 0 && s.length(join(window, p)) > s.chunkSize {
			flush()

			window = s.overlap(window, p)
		}

		window = append(window, p)
	}

	flush()

	return result
}

// overlap drops leading pieces from window until what remains is no larger
// than chunkOverlap and leaves room for next.
func (s *Splitter) overlap(window []piece, next piece) []piece {
	for len(window) > 0 {
		if s.length(join(window)) <= s.chunkOverlap && s.length(join(window, next)) <= s.chunkSize {
			break
		}

		window = window[1:]
	}

	return append([]piece(nil), window...)
}

// join concatenates pieces, reinserting discarded separators between them.
func join(window []piece, more ...piece) string {
	var sb strings.Builder

	write := func(i int, p piece) {
		if i > 0 {
			sb.WriteString(p.sep)
		}

		sb.WriteString(p.text)
	}

	for i, p := range window {
		write(i, p)
	}

	for i, p := range more {
		write(len(window)+i, p)
	}

	return sb.String()
}
