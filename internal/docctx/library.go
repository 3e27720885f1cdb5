package docctx

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// Library holds chunked study material keyed by topic. Topics come
// from PDF file names: "Loops.pdf" provides chunks for topic "Loops".
type Library struct {
	chunks map[string][]string
}

// LoadDir builds a Library from every PDF in dir. A missing or empty
// directory yields an empty library; generation then runs without
// grounding context.
func LoadDir(dir string) (*Library, error) {
	lib := &Library{chunks: make(map[string][]string)}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return lib, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read context dir %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}

		text, err := ExtractText(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}

		topic := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		lib.chunks[topic] = Chunk(text, DefaultChunkSize, DefaultOverlap)
	}

	return lib, nil
}

// Chunks returns all chunks for a topic, nil if the topic has none.
func (l *Library) Chunks(topic string) []string {
	return l.chunks[topic]
}

// RandomChunk returns one chunk for the topic, or "" when the library
// has no material for it.
func (l *Library) RandomChunk(topic string) string {
	chunks := l.chunks[topic]
	if len(chunks) == 0 {
		return ""
	}
	return chunks[rand.IntN(len(chunks))]
}

// Topics lists the topics with loaded material.
func (l *Library) Topics() []string {
	out := make([]string, 0, len(l.chunks))
	for t := range l.chunks {
		out = append(out, t)
	}
	return out
}
