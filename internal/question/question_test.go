package question

import (
	"strings"
	"testing"
)

func validQuestion() Question {
	return Question{
		Topic:       "Chapter05 Functions",
		Text:        "What keyword defines a function in Python?",
		Options:     []string{"func", "def", "function", "lambda"},
		Answer:      "def",
		Explanation: "Functions are defined with the def keyword.",
	}
}

func TestValidate_OK(t *testing.T) {
	q := validQuestion()
	if err := q.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyText(t *testing.T) {
	q := validQuestion()
	q.Text = "   "
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestValidate_OptionCount(t *testing.T) {
	q := validQuestion()
	q.Options = q.Options[:3]
	err := q.Validate()
	if err == nil {
		t.Fatal("expected error for 3 options")
	}
	if !strings.Contains(err.Error(), "expected 4 options") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestValidate_DuplicateOption(t *testing.T) {
	q := validQuestion()
	q.Options[2] = " def "
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for duplicate option")
	}
}

func TestValidate_CaseDistinctOptions(t *testing.T) {
	// Case carries meaning in Python: 'abc' and 'ABC' are different
	// values, so they are legitimate distractors for each other.
	q := Question{
		Topic:       "Chapter08 More About Strings",
		Text:        "What does 'abc'.upper().lower() evaluate to?",
		Options:     []string{"'ABC'", "'abc'", "'Abc'", "an error"},
		Answer:      "'abc'",
		Explanation: "upper() produces 'ABC'; lower() maps it back to 'abc'.",
	}
	if err := q.Validate(); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}
}

func TestValidate_AnswerNotInOptions(t *testing.T) {
	q := validQuestion()
	q.Answer = "return"
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for answer outside options")
	}
}

func TestValidate_AnswerMatchIgnoresPadding(t *testing.T) {
	q := validQuestion()
	q.Answer = "  def "
	if err := q.Validate(); err != nil {
		t.Fatalf("padded answer match should pass: %v", err)
	}
}

func TestValidate_AnswerMatchIsCaseSensitive(t *testing.T) {
	q := validQuestion()
	q.Answer = "Def"
	if err := q.Validate(); err == nil {
		t.Fatal("expected error: answer differs from every option by case")
	}
}

func TestSameOption(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"def", " def ", true},
		{"'abc'", "'ABC'", false},
		{"a b", "a  b", false},
	}
	for _, tt := range tests {
		if got := SameOption(tt.a, tt.b); got != tt.want {
			t.Errorf("SameOption(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  What is  a tuple? ", "what is a tuple?"},
		{"def\tfoo():\n  pass", "def foo(): pass"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSameText(t *testing.T) {
	if !SameText("What is a list?", "  what IS a  list? ") {
		t.Error("expected normalized texts to match")
	}
	if SameText("What is a list?", "What is a tuple?") {
		t.Error("expected different texts not to match")
	}
}
