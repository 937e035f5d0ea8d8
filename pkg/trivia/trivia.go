// Package trivia generates quiz questions about a verified catalog entry by
// filling templates with the entry's metadata and shuffling in distractors.
package trivia

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/flickscope/flickscope/pkg/genres"
	"github.com/flickscope/flickscope/pkg/resolve"
	"github.com/flickscope/flickscope/pkg/tmdb"
)

const optionsPerQuestion = 4

type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

type Generator struct {
	resolver *resolve.Resolver
}

func New(resolver *resolve.Resolver) *Generator {
	return &Generator{resolver: resolver}
}

// Questions verifies the title and builds one question per metadata field
// the entry actually carries. Verification failures propagate; they name
// the offending title.
func (g *Generator) Questions(ctx context.Context, kind tmdb.Kind, title string) (string, []Question, error) {
	entry, _, err := g.resolver.Resolve(ctx, kind, title)
	if err != nil {
		return "", nil, err
	}

	var questions []Question
	if q, ok := yearQuestion(entry); ok {
		questions = append(questions, q)
	}
	if q, ok := genreQuestion(entry); ok {
		questions = append(questions, q)
	}
	if q, ok := ratingQuestion(entry); ok {
		questions = append(questions, q)
	}

	return entry.Title, questions, nil
}

func yearQuestion(e tmdb.Entry) (Question, bool) {
	year, err := strconv.Atoi(e.Year())
	if err != nil {
		return Question{}, false
	}

	answer := strconv.Itoa(year)
	options := []string{
		answer,
		strconv.Itoa(year - 2),
		strconv.Itoa(year + 1),
		strconv.Itoa(year + 3),
	}

	return Question{
		Question: fmt.Sprintf("In which year was %q released?", e.Title),
		Options:  shuffled(options),
		Answer:   answer,
	}, true
}

func genreQuestion(e tmdb.Entry) (Question, bool) {
	if len(e.GenreIDs) == 0 {
		return Question{}, false
	}
	answer := genres.Name(e.GenreIDs[0])
	if answer == "" {
		return Question{}, false
	}

	options := []string{answer}
	for _, name := range shuffled(genres.AllNames()) {
		if len(options) == optionsPerQuestion {
			break
		}
		if name != answer {
			options = append(options, name)
		}
	}

	return Question{
		Question: fmt.Sprintf("Which genre best describes %q?", e.Title),
		Options:  shuffled(options),
		Answer:   answer,
	}, true
}

func ratingQuestion(e tmdb.Entry) (Question, bool) {
	if e.VoteAverage == 0 {
		return Question{}, false
	}

	answer := fmt.Sprintf("%.1f", e.VoteAverage)
	options := []string{answer}
	for _, offset := range []float64{-1.4, -0.7, 0.8} {
		wrong := e.VoteAverage + offset
		if wrong < 0 {
			wrong = 0.1
		}
		if wrong > 10 {
			wrong = 9.9
		}
		options = append(options, fmt.Sprintf("%.1f", wrong))
	}

	return Question{
		Question: fmt.Sprintf("What is %q rated out of 10?", e.Title),
		Options:  shuffled(options),
		Answer:   answer,
	}, true
}

func shuffled(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
