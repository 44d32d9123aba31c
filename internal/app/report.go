package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/mj-jones15/pastProjects/internal/domain"
)

// Report grades a sequence of problems and remembers the ones answered
// wrongly. correct+incorrect always equals the number of inserted problems.
type Report struct {
	problems  []*domain.Problem
	retry     []*domain.Problem
	correct   int
	incorrect int
}

func NewReport() *Report {
	return &Report{}
}

// Insert records p with the learner's response and grades it immediately.
func (r *Report) Insert(p *domain.Problem, response int) {
	r.problems = append(r.problems, p)
	if p.CheckAnswer(response) {
		r.correct++
		return
	}
	r.incorrect++
	r.retry = append(r.retry, p)
}

func (r *Report) CorrectCount() int   { return r.correct }
func (r *Report) IncorrectCount() int { return r.incorrect }

// Pending is the number of problems still waiting in the retry queue.
func (r *Report) Pending() int { return len(r.retry) }

// Problems returns the inserted problems in insertion order.
func (r *Report) Problems() []*domain.Problem {
	return append([]*domain.Problem(nil), r.problems...)
}

// RetryQueue returns the problems still to be practiced, oldest first.
func (r *Report) RetryQueue() []*domain.Problem {
	return append([]*domain.Problem(nil), r.retry...)
}

// WriteSummary renders every problem, optionally with its answer, followed by
// the counts and an encouragement line. It never changes the report.
func (r *Report) WriteSummary(w io.Writer, showAnswers bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, "You have solved the following %d math problems: \n", len(r.problems))
	for _, p := range r.problems {
		for _, line := range p.Lines() {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		if showAnswers {
			result, _ := p.Result()
			fmt.Fprintf(&b, "%5d\n", result)
		}
		b.WriteByte('\n')
	}
	b.WriteString("----------------------------------\n")
	fmt.Fprintf(&b, "You answered %d questions correctly.\n", r.correct)
	fmt.Fprintf(&b, "You made %d mistakes.\n", r.incorrect)
	if r.correct > r.incorrect {
		b.WriteString("Great job!\n")
	} else {
		b.WriteString("You will do better next time.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
