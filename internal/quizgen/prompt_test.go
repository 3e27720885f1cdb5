package quizgen

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildUserMessage_TruncatesContextOnRuneBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxContextChars = 10

	// Multibyte text: byte-indexed slicing would cut a rune in half.
	in := GenerateInput{
		Topic:   "Chapter08 More About Strings",
		Context: strings.Repeat("héllo wörld ", 5),
	}

	msg := buildUserMessage(in, cfg)
	if !utf8.ValidString(msg) {
		t.Fatal("message contains a split rune")
	}

	start := strings.Index(msg, "Study material:\n")
	if start < 0 {
		t.Fatal("study material section missing")
	}
	excerpt := msg[start+len("Study material:\n"):]
	excerpt = excerpt[:strings.Index(excerpt, "\n")]
	if got := utf8.RuneCountInString(excerpt); got != cfg.MaxContextChars {
		t.Errorf("expected %d runes of context, got %d", cfg.MaxContextChars, got)
	}
}

func TestBuildUserMessage_ShortContextKeptWhole(t *testing.T) {
	cfg := DefaultConfig()
	in := GenerateInput{Topic: "Chapter04 Loops", Context: "for i in range(3): print(i)"}

	msg := buildUserMessage(in, cfg)
	if !strings.Contains(msg, in.Context) {
		t.Error("short context should be included verbatim")
	}
}
