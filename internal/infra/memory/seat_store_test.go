package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/mj-jones15/pastProjects/internal/domain"
)

func TestSeatStoreSingleHolder(t *testing.T) {
	store := NewSeatStore()

	release, err := store.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if _, err := store.Acquire(context.Background()); !errors.Is(err, domain.ErrSeatTaken) {
		t.Fatalf("expected ErrSeatTaken, got %v", err)
	}

	release()
	release()

	again, err := store.Acquire(context.Background())
	if err != nil {
		t.Fatalf("expected seat free after release: %v", err)
	}
	again()
}
