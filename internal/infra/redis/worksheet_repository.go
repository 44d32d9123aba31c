package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/mj-jones15/pastProjects/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// WorksheetLoader fetches worksheets from a backing store (Postgres, config).
type WorksheetLoader interface {
	LoadWorksheet(ctx context.Context, id string) (domain.Worksheet, error)
}

// WorksheetRepository caches worksheets in Redis as JSON under
// worksheet:{id} and falls back to a loader on a miss.
type WorksheetRepository struct {
	client *redis.Client
	loader WorksheetLoader
	ttl    time.Duration
	group  singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewWorksheetRepository(client *redis.Client, loader WorksheetLoader, ttl time.Duration) *WorksheetRepository {
	return &WorksheetRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *WorksheetRepository) GetWorksheet(ctx context.Context, id string) (domain.Worksheet, error) {
	if ws, ok := r.fromCache(ctx, id); ok {
		return ws, nil
	}

	v, err, _ := r.group.Do(id, func() (interface{}, error) {
		if ws, ok := r.fromCache(ctx, id); ok {
			return ws, nil
		}
		ws, err := r.loader.LoadWorksheet(ctx, id)
		if err != nil {
			return domain.Worksheet{}, err
		}
		if err := ws.Validate(); err != nil {
			return domain.Worksheet{}, err
		}

		data, err := json.Marshal(ws)
		if err != nil {
			return domain.Worksheet{}, errors.Wrapf(err, "encode worksheet %s", id)
		}
		// A failed write only costs a reload next time.
		if err := r.client.Set(ctx, key(id), data, r.jitteredTTL()).Err(); err != nil {
			glog.Warningf("cache worksheet %s: %v", id, err)
		}
		return ws, nil
	})
	if err != nil {
		return domain.Worksheet{}, err
	}
	return v.(domain.Worksheet), nil
}

func (r *WorksheetRepository) fromCache(ctx context.Context, id string) (domain.Worksheet, bool) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			glog.V(1).Infof("worksheet cache read %s: %v", id, err)
		}
		return domain.Worksheet{}, false
	}
	var ws domain.Worksheet
	if err := json.Unmarshal(data, &ws); err != nil {
		glog.Warningf("drop corrupt cached worksheet %s: %v", id, err)
		return domain.Worksheet{}, false
	}
	return ws, true
}

func (r *WorksheetRepository) jitteredTTL() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(int64(r.ttl)/10+1))
}

func key(id string) string {
	return "worksheet:" + id
}
