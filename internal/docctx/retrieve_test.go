package docctx

import (
	"reflect"
	"testing"
)

func TestTopChunks_RanksByOverlap(t *testing.T) {
	chunks := []string{
		"Lists are mutable sequences. Append adds an element to the end.",
		"A dictionary maps keys to values. Keys must be hashable.",
		"Tuples are immutable. Once created they cannot change.",
	}

	got := TopChunks(chunks, "How do dictionary keys work?", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(got))
	}
	if got[0] != chunks[1] {
		t.Errorf("expected the dictionary chunk first, got %q", got[0])
	}
}

func TestTopChunks_NoOverlapFallsBackToFirst(t *testing.T) {
	chunks := []string{"alpha", "beta", "gamma"}
	got := TopChunks(chunks, "zzz qqq xxx", 2)
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected first chunks %v, got %v", want, got)
	}
}

func TestTopChunks_Bounds(t *testing.T) {
	chunks := []string{"only one chunk about loops"}
	if got := TopChunks(chunks, "loops", 4); len(got) != 1 {
		t.Errorf("expected 1 chunk, got %d", len(got))
	}
	if got := TopChunks(nil, "loops", 4); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := TopChunks(chunks, "loops", 0); got != nil {
		t.Errorf("expected nil for k=0, got %v", got)
	}
}
