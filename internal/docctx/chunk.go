package docctx

import "strings"

const (
	// DefaultChunkSize is the target chunk length in characters.
	DefaultChunkSize = 1000

	// DefaultOverlap is how many characters consecutive chunks share.
	DefaultOverlap = 200
)

// Chunk splits text into chunks of at most size characters where
// consecutive chunks overlap by overlap characters. Chunks are trimmed
// and empty chunks are dropped.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultOverlap
		if overlap >= size {
			overlap = size / 5
		}
	}

	runes := []rune(text)
	step := size - overlap

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
	}

	return chunks
}
