package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mj-jones15/pastProjects/internal/domain"
)

func TestCollectAnswerRepromptsOnMalformedInput(t *testing.T) {
	learner := newScriptedLearner("abc", "42")
	got, err := CollectAnswer(context.Background(), learner, applied(40, 2, domain.OpAdd))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if n := learner.count(invalidInputNotice); n != 1 {
		t.Fatalf("expected exactly one re-prompt notice, got %d", n)
	}
	if n := learner.count(answerPrompt); n != 2 {
		t.Fatalf("expected the answer prompt twice, got %d", n)
	}
	if !strings.HasPrefix(learner.String(), "   40\n+   2\n-----\n") {
		t.Fatalf("expected the problem to be rendered first, got %q", learner.String())
	}
}

func TestCollectAnswerAcceptsSignedAndPaddedIntegers(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"8", 8},
		{"  -3 ", -3},
		{"+12", 12},
		{"007", 7},
	}
	for _, tc := range tests {
		got, err := CollectAnswer(context.Background(), newScriptedLearner(tc.line), applied(1, 1, domain.OpAdd))
		if err != nil || got != tc.want {
			t.Errorf("CollectAnswer(%q) = %d, %v; want %d", tc.line, got, err, tc.want)
		}
	}
}

func TestCollectAnswerKeepsAskingWithoutLimit(t *testing.T) {
	lines := []string{"", "x", "4.5", "1e3", "9 9", "two", "5"}
	learner := newScriptedLearner(lines...)
	got, err := CollectAnswer(context.Background(), learner, applied(2, 3, domain.OpAdd))
	if err != nil || got != 5 {
		t.Fatalf("expected 5, got %d, %v", got, err)
	}
	if n := learner.count(invalidInputNotice); n != len(lines)-1 {
		t.Fatalf("expected %d notices, got %d", len(lines)-1, n)
	}
}

func TestCollectAnswerStopsWhenInputEnds(t *testing.T) {
	_, err := CollectAnswer(context.Background(), newScriptedLearner("nope"), applied(2, 3, domain.OpAdd))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
