package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mj-jones15/pastProjects/internal/domain"
)

func TestRetrySessionScenario(t *testing.T) {
	report := NewReport()
	report.Insert(applied(5, 3, domain.OpAdd), 8)
	report.Insert(applied(5, 3, domain.OpAdd), 7)

	learner := newScriptedLearner("8")
	more, err := report.NeedMorePractice(context.Background(), learner)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if more {
		t.Fatalf("expected queue to be empty after the correct retry")
	}
	if report.CorrectCount() != 2 || report.IncorrectCount() != 0 {
		t.Fatalf("expected 2/0, got %d/%d", report.CorrectCount(), report.IncorrectCount())
	}
	if learner.count("Congratulations! 8 is the right answer.") != 1 {
		t.Fatalf("expected congratulations, got %q", learner.String())
	}

	more, err = report.NeedMorePractice(context.Background(), newScriptedLearner())
	if err != nil || more {
		t.Fatalf("expected a further pass to report nothing left, got %v, %v", more, err)
	}
}

func TestRetrySessionWrongAnswerKeepsProblem(t *testing.T) {
	report := NewReport()
	report.Insert(applied(9, 3, domain.OpDiv), 2)

	learner := newScriptedLearner("4")
	more, err := report.NeedMorePractice(context.Background(), learner)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !more || report.Pending() != 1 {
		t.Fatalf("expected the problem to stay queued")
	}
	if learner.count("Sorry, the answer is wrong. You may practice again.") != 1 {
		t.Fatalf("expected sorry notice, got %q", learner.String())
	}
	if learner.reads != 1 {
		t.Fatalf("expected one question per queued problem in a pass, got %d", learner.reads)
	}
}

func TestRetrySessionInputErrorLeavesReportConsistent(t *testing.T) {
	report := NewReport()
	report.Insert(applied(1, 1, domain.OpAdd), 0)
	report.Insert(applied(2, 2, domain.OpAdd), 0)

	more, err := report.NeedMorePractice(context.Background(), newScriptedLearner("2"))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if !more || report.Pending() != 1 {
		t.Fatalf("expected one problem left, pending=%d", report.Pending())
	}
	if report.CorrectCount()+report.IncorrectCount() != 2 {
		t.Fatalf("accounting broken: %d/%d", report.CorrectCount(), report.IncorrectCount())
	}
}

// TestRetryPassEnumeratesQueues drives one pass over every queue of up to five
// problems and every combination of right and wrong answers, checking the
// visit order and the queue left behind.
func TestRetryPassEnumeratesQueues(t *testing.T) {
	for n := 0; n <= 5; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			t.Run(fmt.Sprintf("n=%d/mask=%0*b", n, n+1, mask), func(t *testing.T) {
				report := NewReport()
				report.Insert(applied(100, 1, domain.OpAdd), 101)
				var queued []int
				for i := 0; i < n; i++ {
					report.Insert(applied(i, 1, domain.OpAdd), -1)
					queued = append(queued, i)
				}

				var asked, wantLeft []int
				for i := 0; i < n; i++ {
					if mask&(1<<i) == 0 {
						wantLeft = append(wantLeft, i)
					}
				}

				pass := report.NewRetryPass()
				for {
					p, ok := pass.Current()
					if !ok {
						break
					}
					asked = append(asked, p.Left)
					answer := p.Left + 1
					if mask&(1<<p.Left) == 0 {
						answer = -1
					}
					if got := pass.Submit(answer); got != (answer != -1) {
						t.Fatalf("Submit(%d) = %v", answer, got)
					}
					checkInvariants(t, report)
				}

				if diff := cmp.Diff(queued, asked); diff != "" {
					t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
				}
				if diff := cmp.Diff(wantLeft, lefts(report.RetryQueue())); diff != "" {
					t.Fatalf("queue after pass mismatch (-want +got):\n%s", diff)
				}
				if pass.Asked() != n || pass.Resolved() != n-len(wantLeft) {
					t.Fatalf("asked=%d resolved=%d", pass.Asked(), pass.Resolved())
				}
				if report.CorrectCount() != 1+pass.Resolved() || report.IncorrectCount() != len(wantLeft) {
					t.Fatalf("counts %d/%d", report.CorrectCount(), report.IncorrectCount())
				}
				if pass.Submit(0) {
					t.Fatalf("Submit after the pass ended must be a no-op")
				}

				// The next pass only revisits what is left, in the same order.
				next := report.NewRetryPass()
				var revisited []int
				for {
					p, ok := next.Current()
					if !ok {
						break
					}
					revisited = append(revisited, p.Left)
					next.Submit(-1)
				}
				if diff := cmp.Diff(wantLeft, revisited); diff != "" {
					t.Fatalf("second pass mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func checkInvariants(t *testing.T, report *Report) {
	t.Helper()
	problems := report.Problems()
	if report.CorrectCount()+report.IncorrectCount() != len(problems) {
		t.Fatalf("correct+incorrect=%d, problems=%d", report.CorrectCount()+report.IncorrectCount(), len(problems))
	}
	member := make(map[*domain.Problem]bool, len(problems))
	for _, p := range problems {
		member[p] = true
	}
	for _, q := range report.RetryQueue() {
		if !member[q] {
			t.Fatalf("queued problem %s is not in the report", q)
		}
	}
}

func lefts(problems []*domain.Problem) []int {
	var out []int
	for _, p := range problems {
		out = append(out, p.Left)
	}
	return out
}
