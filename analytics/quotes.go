package analytics

// One quote ships with every report, picked uniformly at random.
var motivationalQuotes = []string{
	"Focus today, shine tomorrow.",
	"Every moment of focus builds your future.",
	"Productivity is never an accident. It's the result of commitment.",
	"Small progress is still progress. Keep going!",
	"Your focus determines your reality.",
	"Success is the sum of small efforts repeated day in and day out.",
	"The way to get started is to quit talking and begin doing.",
	"Don't watch the clock; do what it does. Keep going.",
	"The future depends on what you do today.",
	"Concentrate all your thoughts upon the work at hand.",
}

// fallbackQuote is used when report computation itself fails.
const fallbackQuote = "Every journey begins with a single step."
