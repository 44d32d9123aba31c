// Package generator builds the default four-problem sheet: one problem per
// operator with random operands.
package generator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/mj-jones15/pastProjects/internal/domain"
)

const (
	maxOperand = 99
	maxDivisor = 12
)

type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand is useful for tests that need a repeatable sheet.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Problems returns + - * ÷ problems in that order. Divisors are never zero.
func (g *Generator) Problems(_ context.Context) ([]*domain.Problem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	problems := make([]*domain.Problem, 0, len(domain.Operators))
	for _, op := range domain.Operators {
		left := 1 + g.rnd.Intn(maxOperand)
		right := 1 + g.rnd.Intn(maxOperand)
		if op == domain.OpDiv {
			right = 1 + g.rnd.Intn(maxDivisor)
		}
		p := domain.NewProblem(left, right)
		if err := p.Apply(op); err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, nil
}
