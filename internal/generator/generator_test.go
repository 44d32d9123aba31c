package generator

import (
	"context"
	"math/rand"
	"testing"

	"github.com/mj-jones15/pastProjects/internal/domain"
)

func TestProblemsOnePerOperator(t *testing.T) {
	g := NewWithRand(rand.New(rand.NewSource(1)))
	for round := 0; round < 200; round++ {
		problems, err := g.Problems(context.Background())
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(problems) != 4 {
			t.Fatalf("expected 4 problems, got %d", len(problems))
		}
		for i, p := range problems {
			if p.Op != domain.Operators[i] {
				t.Fatalf("problem %d has operator %s, want %s", i, p.Op, domain.Operators[i])
			}
			if _, ok := p.Result(); !ok {
				t.Fatalf("problem %s not applied", p)
			}
			if p.Left < 1 || p.Left > maxOperand || p.Right < 1 {
				t.Fatalf("operands out of range: %s", p)
			}
		}
		if d := problems[3]; d.Right > maxDivisor {
			t.Fatalf("divisor %d above %d", d.Right, maxDivisor)
		}
	}
}

func TestProblemsRepeatableWithSeed(t *testing.T) {
	a, _ := NewWithRand(rand.New(rand.NewSource(7))).Problems(context.Background())
	b, _ := NewWithRand(rand.New(rand.NewSource(7))).Problems(context.Background())
	for i := range a {
		if a[i].String() != b[i].String() {
			t.Fatalf("sheets differ at %d: %s vs %s", i, a[i], b[i])
		}
	}
}
