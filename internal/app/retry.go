package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/mj-jones15/pastProjects/internal/domain"
)

// RetryPass walks the retry queue once. The cursor indexes the problem being
// asked; a correct answer deletes that slot in place so the cursor already
// points at the next queued problem, a wrong answer moves the cursor on.
// Only one pass may be open on a report at a time.
type RetryPass struct {
	report   *Report
	cursor   int
	asked    int
	resolved int
}

// NewRetryPass starts a pass at the head of the retry queue.
func (r *Report) NewRetryPass() *RetryPass {
	return &RetryPass{report: r}
}

// Current returns the problem at the cursor, or false once the pass is done.
func (p *RetryPass) Current() (*domain.Problem, bool) {
	if p.Done() {
		return nil, false
	}
	return p.report.retry[p.cursor], true
}

// Submit grades answer against the current problem and steps the pass.
// It reports whether the answer was correct; it is a no-op once Done.
func (p *RetryPass) Submit(answer int) bool {
	problem, ok := p.Current()
	if !ok {
		return false
	}
	p.asked++
	if !problem.CheckAnswer(answer) {
		p.cursor++
		return false
	}

	r := p.report
	r.retry = slices.Delete(r.retry, p.cursor, p.cursor+1)
	r.correct++
	r.incorrect--
	p.resolved++
	return true
}

func (p *RetryPass) Done() bool    { return p.cursor >= len(p.report.retry) }
func (p *RetryPass) Asked() int    { return p.asked }
func (p *RetryPass) Resolved() int { return p.resolved }

// NeedMorePractice runs one retry pass against the learner and reports
// whether problems remain queued afterwards. Call it again for another pass.
func (r *Report) NeedMorePractice(ctx context.Context, learner Learner) (bool, error) {
	pass := r.NewRetryPass()
	for {
		problem, ok := pass.Current()
		if !ok {
			break
		}
		answer, err := CollectAnswer(ctx, learner, problem)
		if err != nil {
			return r.Pending() > 0, err
		}
		if pass.Submit(answer) {
			_, err = fmt.Fprintf(learner, "Congratulations! %d is the right answer.\n", answer)
		} else {
			_, err = fmt.Fprintln(learner, "Sorry, the answer is wrong. You may practice again.")
		}
		if err != nil {
			return r.Pending() > 0, err
		}
	}
	return r.Pending() > 0, nil
}
