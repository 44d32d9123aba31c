package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/mj-jones15/pastProjects/internal/domain"
	"golang.org/x/sync/singleflight"
)

// WorksheetLoader fetches worksheets from a backing store (Postgres, config).
type WorksheetLoader interface {
	LoadWorksheet(ctx context.Context, id string) (domain.Worksheet, error)
}

// WorksheetRepository keeps loaded worksheets for a TTL so repeated drills on
// the same sheet skip the loader. Concurrent misses share one load.
type WorksheetRepository struct {
	loader WorksheetLoader
	ttl    time.Duration
	clock  func() time.Time
	group  singleflight.Group

	mu      sync.RWMutex
	rnd     *rand.Rand
	entries map[string]entry
}

type entry struct {
	worksheet domain.Worksheet
	expiresAt time.Time
}

func NewWorksheetRepository(loader WorksheetLoader, ttl time.Duration) *WorksheetRepository {
	return &WorksheetRepository{
		loader:  loader,
		ttl:     ttl,
		clock:   time.Now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		entries: make(map[string]entry),
	}
}

func (r *WorksheetRepository) GetWorksheet(ctx context.Context, id string) (domain.Worksheet, error) {
	if ws, ok := r.cached(id); ok {
		return ws, nil
	}

	v, err, _ := r.group.Do(id, func() (interface{}, error) {
		if ws, ok := r.cached(id); ok {
			return ws, nil
		}
		ws, err := r.loader.LoadWorksheet(ctx, id)
		if err != nil {
			return domain.Worksheet{}, err
		}
		if err := ws.Validate(); err != nil {
			return domain.Worksheet{}, err
		}

		r.mu.Lock()
		r.entries[id] = entry{worksheet: ws, expiresAt: r.clock().Add(r.jitteredTTL())}
		r.mu.Unlock()
		return ws, nil
	})
	if err != nil {
		return domain.Worksheet{}, err
	}
	return v.(domain.Worksheet), nil
}

func (r *WorksheetRepository) cached(id string) (domain.Worksheet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok || !e.expiresAt.After(r.clock()) {
		return domain.Worksheet{}, false
	}
	return e.worksheet, true
}

// jitteredTTL spreads expirations by up to 10% of the TTL. Callers hold mu.
func (r *WorksheetRepository) jitteredTTL() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	return r.ttl + time.Duration(r.rnd.Int63n(int64(r.ttl)/10+1))
}

// StaticWorksheetLoader serves worksheets from a fixed set, typically the
// ones declared in the config file.
type StaticWorksheetLoader struct {
	worksheets map[string]domain.Worksheet
}

func NewStaticWorksheetLoader(worksheets []domain.Worksheet) *StaticWorksheetLoader {
	byID := make(map[string]domain.Worksheet, len(worksheets))
	for _, ws := range worksheets {
		byID[ws.ID] = ws
	}
	return &StaticWorksheetLoader{worksheets: byID}
}

func (l *StaticWorksheetLoader) LoadWorksheet(_ context.Context, id string) (domain.Worksheet, error) {
	if ws, ok := l.worksheets[id]; ok {
		return ws, nil
	}
	return domain.Worksheet{}, domain.ErrWorksheetNotFound
}
