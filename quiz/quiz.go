package quiz

import (
	"math/rand"
	"sort"
	"strings"
)

// NoAnswer marks a question slot the player never answered.
const NoAnswer = -1

type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"-"`
}

// catalog is the fixed question set, in stable definition order. The shuffle
// permutes this order by seed; the order here must never change once seeds
// are in the wild.
var catalog = []Question{
	{"What is 5 + 3?", []string{"6", "8", "10", "12"}, 1},
	{"What is the capital of France?", []string{"Berlin", "Madrid", "Paris", "Rome"}, 2},
	{"Which one is a programming language?", []string{"HTML", "Go", "HTTP", "SQL Server"}, 1},
	{"What is 9 x 2?", []string{"18", "11", "12", "20"}, 0},
	{"Which planet is known as the Red Planet?", []string{"Venus", "Mars", "Jupiter", "Saturn"}, 1},
	{"What is 10 / 2?", []string{"3", "4", "5", "6"}, 2},
	{"Which is NOT a planet?", []string{"Earth", "Pluto", "Mars", "Sirius"}, 3},
	{"Which company created Go?", []string{"Apple", "Google", "Microsoft", "IBM"}, 1},
	{"What does CPU stand for?", []string{"Central Processing Unit", "Computer Personal Unit", "Central Print Unit", "Control Processing Utility"}, 0},
	{"Which one is a web browser?", []string{"Windows", "Chrome", "Linux", "Android"}, 1},
}

// Catalog returns a copy of the question set in definition order.
func Catalog() []Question {
	questions := make([]Question, len(catalog))
	copy(questions, catalog)
	return questions
}

// NewSeed returns a fresh non-zero shuffle seed. Zero is reserved as the
// "no seed yet" sentinel round-tripped through form fields.
func NewSeed() int64 {
	for {
		if seed := rand.Int63(); seed != 0 {
			return seed
		}
	}
}

// Shuffle returns the catalog permuted by seed. One sort key is drawn per
// question, in catalog order, from a generator seeded with the exact seed
// value; the questions are then stable-sorted by those keys. The result is a
// pure function of the seed, so a later request carrying the same seed
// reconstructs the identical order.
func Shuffle(seed int64) []Question {
	questions := Catalog()
	r := rand.New(rand.NewSource(seed))

	keys := make([]int, len(questions))
	for i := range keys {
		keys[i] = r.Int()
	}

	order := make([]int, len(questions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	shuffled := make([]Question, len(questions))
	for i, j := range order {
		shuffled[i] = questions[j]
	}
	return shuffled
}

// PadAnswers normalizes a submitted answer list to exactly n slots. Missing
// slots become NoAnswer; extra slots are dropped.
func PadAnswers(answers []int, n int) []int {
	padded := make([]int, n)
	for i := range padded {
		if i < len(answers) {
			padded[i] = answers[i]
		} else {
			padded[i] = NoAnswer
		}
	}
	return padded
}

// ScoreAnswers compares each submitted answer index against its question's
// correct index. Missing or out-of-range indices count as incorrect; malformed
// input never fails scoring.
func ScoreAnswers(questions []Question, answers []int) (int, []bool) {
	answers = PadAnswers(answers, len(questions))

	score := 0
	correctness := make([]bool, len(questions))
	for i, question := range questions {
		if answers[i] == question.CorrectIndex {
			correctness[i] = true
			score++
		}
	}
	return score, correctness
}

// TimerSeconds maps a difficulty to its countdown budget: "Hard" in any case
// gets 30 seconds, everything else 60.
func TimerSeconds(difficulty string) int {
	if strings.EqualFold(difficulty, "Hard") {
		return 30
	}
	return 60
}
