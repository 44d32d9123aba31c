package app

import (
	"context"

	"github.com/golang/glog"
	"github.com/mj-jones15/pastProjects/internal/domain"
)

// WorksheetRepository loads worksheets (from cache/backing store).
type WorksheetRepository interface {
	GetWorksheet(ctx context.Context, id string) (domain.Worksheet, error)
}

// SeatStore hands out the single drill seat. Acquire fails with
// domain.ErrSeatTaken while someone else holds it.
type SeatStore interface {
	Acquire(ctx context.Context) (release func(), err error)
}

// DrillService runs one drill at a time, from a worksheet when an ID is given
// and from the generator otherwise.
type DrillService struct {
	seats      SeatStore
	worksheets WorksheetRepository
	generator  ProblemSource
	opts       Options
}

func NewDrillService(seats SeatStore, worksheets WorksheetRepository, generator ProblemSource, opts Options) *DrillService {
	return &DrillService{seats: seats, worksheets: worksheets, generator: generator, opts: opts}
}

// Start claims the seat, runs the drill against learner and frees the seat.
func (s *DrillService) Start(ctx context.Context, worksheetID string, learner Learner) (Result, error) {
	release, err := s.seats.Acquire(ctx)
	if err != nil {
		return Result{}, err
	}
	defer release()

	var source ProblemSource = s.generator
	if worksheetID != "" {
		source = NewWorksheetSource(s.worksheets, worksheetID)
	}

	res, err := NewDrill(source).Run(ctx, learner, s.opts)
	if err != nil {
		return res, err
	}
	glog.V(1).Infof("drill finished worksheet=%q problems=%d first-try=%d passes=%d",
		worksheetID, res.Problems, res.FirstTryCorrect, res.RetryPasses)
	return res, nil
}

// WorksheetSource adapts a stored worksheet to ProblemSource.
type WorksheetSource struct {
	repo WorksheetRepository
	id   string
}

func NewWorksheetSource(repo WorksheetRepository, id string) *WorksheetSource {
	return &WorksheetSource{repo: repo, id: id}
}

func (s *WorksheetSource) Problems(ctx context.Context) ([]*domain.Problem, error) {
	ws, err := s.repo.GetWorksheet(ctx, s.id)
	if err != nil {
		return nil, err
	}
	return ws.Problems()
}
