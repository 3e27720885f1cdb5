package docctx

import (
	"strings"
	"testing"
)

func TestChunk_SizeAndOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 30) // 300 chars
	chunks := Chunk(text, 100, 20)

	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	for i, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk %d exceeds size: %d", i, len(c))
		}
	}

	// Consecutive chunks share the overlap region.
	first := chunks[0]
	second := chunks[1]
	if !strings.HasPrefix(second, first[len(first)-20:]) {
		t.Error("expected second chunk to start with the overlap of the first")
	}
}

func TestChunk_ShortText(t *testing.T) {
	chunks := Chunk("a short paragraph", 1000, 200)
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk, got %d", len(chunks))
	}
	if chunks[0] != "a short paragraph" {
		t.Fatalf("unexpected chunk: %q", chunks[0])
	}
}

func TestChunk_TrimsAndDropsEmpty(t *testing.T) {
	chunks := Chunk("   \n\t  ", 1000, 200)
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks for whitespace, got %v", chunks)
	}

	chunks = Chunk("  padded text  ", 1000, 200)
	if len(chunks) != 1 || chunks[0] != "padded text" {
		t.Fatalf("expected trimmed chunk, got %v", chunks)
	}
}

func TestChunk_Defaults(t *testing.T) {
	text := strings.Repeat("x", 2500)
	chunks := Chunk(text, 0, -1)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple default-size chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != DefaultChunkSize {
		t.Fatalf("expected default chunk size, got %d", len(chunks[0]))
	}
}

func TestLibrary_EmptyDir(t *testing.T) {
	lib, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lib.Topics()) != 0 {
		t.Fatalf("expected no topics, got %v", lib.Topics())
	}
	if got := lib.RandomChunk("Loops"); got != "" {
		t.Fatalf("expected empty context, got %q", got)
	}
}

func TestLibrary_MissingDir(t *testing.T) {
	lib, err := LoadDir("/does/not/exist")
	if err != nil {
		t.Fatalf("missing dir should yield an empty library: %v", err)
	}
	if len(lib.Topics()) != 0 {
		t.Fatalf("expected no topics, got %v", lib.Topics())
	}
}
