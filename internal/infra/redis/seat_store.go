package redis

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/mj-jones15/pastProjects/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const seatKey = "drill:seat"

// releaseSeat deletes the seat only if it still carries our token, so an
// expired holder cannot free a seat someone else has since taken.
var releaseSeat = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SeatStore shares the single drill seat between every instance pointed at
// the same Redis. The seat expires after ttl if its holder disappears.
type SeatStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSeatStore(client *redis.Client, ttl time.Duration) *SeatStore {
	return &SeatStore{client: client, ttl: ttl}
}

func (s *SeatStore) Acquire(ctx context.Context) (func(), error) {
	token := uuid.NewString()
	ok, err := s.client.SetNX(ctx, seatKey, token, s.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "claim drill seat")
	}
	if !ok {
		return nil, domain.ErrSeatTaken
	}
	return func() {
		// The request context may already be gone when the drill ends.
		if err := releaseSeat.Run(context.Background(), s.client, []string{seatKey}, token).Err(); err != nil {
			glog.Warningf("release drill seat: %v", err)
		}
	}, nil
}
