package app

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/mj-jones15/pastProjects/internal/domain"
)

// scriptedLearner replays canned input lines and records everything written.
type scriptedLearner struct {
	bytes.Buffer
	lines []string
	reads int
}

func newScriptedLearner(lines ...string) *scriptedLearner {
	return &scriptedLearner{lines: lines}
}

func (l *scriptedLearner) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if l.reads >= len(l.lines) {
		return "", io.EOF
	}
	line := l.lines[l.reads]
	l.reads++
	return line, nil
}

func (l *scriptedLearner) count(s string) int {
	return strings.Count(l.String(), s)
}

type staticSource []*domain.Problem

func (s staticSource) Problems(context.Context) ([]*domain.Problem, error) {
	return s, nil
}

func applied(left, right int, op domain.Operator) *domain.Problem {
	p := domain.NewProblem(left, right)
	if err := p.Apply(op); err != nil {
		panic(err)
	}
	return p
}
