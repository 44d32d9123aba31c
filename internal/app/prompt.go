package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mj-jones15/pastProjects/internal/domain"
)

const (
	answerPrompt       = "Please type your answer: "
	invalidInputNotice = "Invalid input. Please try again."
)

// Learner is the text channel a drill talks through: console, websocket, or a
// script in tests.
type Learner interface {
	io.Writer
	ReadLine(ctx context.Context) (string, error)
}

// CollectAnswer shows the problem and keeps asking until the learner types an
// integer. Malformed lines are answered with a fixed notice and never returned
// as errors; only a failing Learner ends the loop early.
func CollectAnswer(ctx context.Context, learner Learner, p *domain.Problem) (int, error) {
	if err := p.Render(learner); err != nil {
		return 0, err
	}
	for {
		if _, err := fmt.Fprintln(learner, answerPrompt); err != nil {
			return 0, err
		}
		line, err := learner.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		answer, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return answer, nil
		}
		if _, err := fmt.Fprintln(learner, invalidInputNotice); err != nil {
			return 0, err
		}
	}
}
