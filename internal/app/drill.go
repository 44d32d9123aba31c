package app

import (
	"context"
	"fmt"

	"github.com/mj-jones15/pastProjects/internal/domain"
)

// ProblemSource supplies the problems for one drill.
type ProblemSource interface {
	Problems(ctx context.Context) ([]*domain.Problem, error)
}

// Options tune how a drill reports back to the learner.
type Options struct {
	ShowAnswers bool
}

// Result summarizes a finished drill.
type Result struct {
	Problems        int `json:"problems"`
	FirstTryCorrect int `json:"firstTryCorrect"`
	Correct         int `json:"correct"`
	Incorrect       int `json:"incorrect"`
	RetryPasses     int `json:"retryPasses"`
}

// Drill asks every problem once, prints the summary, then keeps running retry
// passes until every missed problem has been answered correctly.
type Drill struct {
	source ProblemSource
}

func NewDrill(source ProblemSource) *Drill {
	return &Drill{source: source}
}

func (d *Drill) Run(ctx context.Context, learner Learner, opts Options) (Result, error) {
	problems, err := d.source.Problems(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(problems) == 0 {
		return Result{}, domain.ErrNoProblems
	}

	report := NewReport()
	for i, p := range problems {
		if _, err := fmt.Fprintf(learner, "Problem %d of %d\n", i+1, len(problems)); err != nil {
			return Result{}, err
		}
		answer, err := CollectAnswer(ctx, learner, p)
		if err != nil {
			return Result{}, err
		}
		report.Insert(p, answer)
	}

	res := Result{Problems: len(problems), FirstTryCorrect: report.CorrectCount()}
	// Answers stay hidden until practice is over.
	if err := report.WriteSummary(learner, false); err != nil {
		return res, err
	}

	for more := report.Pending() > 0; more; {
		if _, err := fmt.Fprintf(learner, "\nLet's practice the %d problem(s) you missed.\n", report.Pending()); err != nil {
			return res, err
		}
		res.RetryPasses++
		more, err = report.NeedMorePractice(ctx, learner)
		if err != nil {
			res.Correct, res.Incorrect = report.CorrectCount(), report.IncorrectCount()
			return res, err
		}
	}

	if res.RetryPasses > 0 {
		if err := report.WriteSummary(learner, opts.ShowAnswers); err != nil {
			return res, err
		}
	}
	res.Correct, res.Incorrect = report.CorrectCount(), report.IncorrectCount()
	return res, nil
}
