package export

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/pyquiz/internal/question"
)

// Moodle XML import format, multichoice questions only.

type moodleQuiz struct {
	XMLName   xml.Name         `xml:"quiz"`
	Questions []moodleQuestion `xml:"question"`
}

type moodleQuestion struct {
	Type            string          `xml:"type,attr"`
	Category        *moodleText     `xml:"category,omitempty"`
	Name            *moodleText     `xml:"name,omitempty"`
	QuestionText    *moodleRichText `xml:"questiontext,omitempty"`
	Answers         []moodleAnswer  `xml:"answer,omitempty"`
	ShuffleAnswers  string          `xml:"shuffleanswers,omitempty"`
	Single          string          `xml:"single,omitempty"`
	AnswerNumbering string          `xml:"answernumbering,omitempty"`
}

type moodleText struct {
	Text string `xml:"text"`
}

type moodleRichText struct {
	Format string `xml:"format,attr"`
	Text   string `xml:"text"`
}

type moodleAnswer struct {
	Fraction string      `xml:"fraction,attr"`
	Text     string      `xml:"text"`
	Feedback *moodleText `xml:"feedback,omitempty"`
}

// Moodle writes the questions to path in Moodle XML import format.
// Records that fail validation (for example an answer that is not
// among the options) are skipped with a warning rather than failing
// the export. Category, when non-empty, becomes a leading category
// element under $course$. Returns the number of questions exported.
func Moodle(qs []question.Question, category, path string, log *logrus.Logger) (int, error) {
	quiz := moodleQuiz{}

	if category != "" {
		quiz.Questions = append(quiz.Questions, moodleQuestion{
			Type:     "category",
			Category: &moodleText{Text: "$course$/" + category},
		})
	}

	exported := 0
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			if log != nil {
				log.WithFields(logrus.Fields{
					"topic": q.Topic,
					"text":  q.Text,
				}).WithError(err).Warn("skipping invalid question in moodle export")
			}
			continue
		}

		mq := moodleQuestion{
			Type:            "multichoice",
			Name:            &moodleText{Text: fmt.Sprintf("%s Q%d", q.Topic, i+1)},
			QuestionText:    &moodleRichText{Format: "html", Text: q.Text},
			ShuffleAnswers:  "1",
			Single:          "true",
			AnswerNumbering: "abc",
		}
		for _, opt := range q.Options {
			ans := moodleAnswer{Fraction: "0", Text: opt}
			if question.SameOption(opt, q.Answer) {
				ans.Fraction = "100"
				if q.Explanation != "" {
					ans.Feedback = &moodleText{Text: q.Explanation}
				}
			}
			mq.Answers = append(mq.Answers, ans)
		}

		quiz.Questions = append(quiz.Questions, mq)
		exported++
	}

	data, err := xml.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return 0, &ExportError{Format: "moodle", Path: path, Err: err}
	}

	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return 0, &ExportError{Format: "moodle", Path: path, Err: err}
	}

	return exported, nil
}
