package question

// DefaultTopics is the built-in topic list, one per textbook chapter.
// The generate command and the quiz setup screen both offer these;
// arbitrary topics are accepted everywhere a topic string is taken.
var DefaultTopics = []string{
	"Chapter01 Introduction to Computers and Programming",
	"Chapter02 Input, Processing, and Output",
	"Chapter03 Decision Structures and Boolean Logic",
	"Chapter04 Repetition Structures",
	"Chapter05 Functions",
	"Chapter06 Files and Exceptions",
	"Chapter07 Lists and Tuples",
	"Chapter08 More About Strings",
	"Chapter09 Dictionaries and Sets",
}

// ExcludedTerms are subjects the generator is told to avoid. The turtle
// module is out of scope for the target curriculum.
var ExcludedTerms = []string{
	"turtle graphics", "turtle", "turtle module",
	"turtle.forward", "turtle.backward", "turtle.left", "turtle.right",
}
