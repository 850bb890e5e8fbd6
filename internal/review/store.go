// Package review keeps the latest miscategorization flags in Redis so an
// operator can look at them after the run.
package review

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"dropicat/internal/model"
)

const (
	flagsTTL  = 7 * 24 * time.Hour
	latestKey = "review:flags:latest"
)

// RunKey is the key holding the flags of one categorizer run.
func RunKey(runID string) string {
	return "review:flags:" + runID
}

type Store struct {
	Client *redis.Client
}

func NewStore(addr string) *Store {
	return &Store{Client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Publish stores flags under the run key and under the latest key, both
// with a TTL. An empty list is stored too, so "latest" never goes stale.
func (s *Store) Publish(ctx context.Context, runID string, flags []model.MiscategorizationFlag) error {
	if flags == nil {
		flags = []model.MiscategorizationFlag{}
	}
	b, err := json.Marshal(flags)
	if err != nil {
		return err
	}

	pipe := s.Client.TxPipeline()
	pipe.Set(ctx, RunKey(runID), b, flagsTTL)
	pipe.Set(ctx, latestKey, b, flagsTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// Latest returns the flags of the most recent run. A missing key yields an
// empty list.
func (s *Store) Latest(ctx context.Context) ([]model.MiscategorizationFlag, error) {
	val, err := s.Client.Get(ctx, latestKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var flags []model.MiscategorizationFlag
	if err := json.Unmarshal([]byte(val), &flags); err != nil {
		return nil, err
	}
	return flags, nil
}

func (s *Store) Close() error {
	return s.Client.Close()
}

// NewSince returns the flags in current whose product name was not flagged
// in previous.
func NewSince(previous, current []model.MiscategorizationFlag) []model.MiscategorizationFlag {
	seen := make(map[string]bool, len(previous))
	for _, f := range previous {
		seen[f.Name] = true
	}

	var fresh []model.MiscategorizationFlag
	for _, f := range current {
		if !seen[f.Name] {
			fresh = append(fresh, f)
		}
	}
	return fresh
}
