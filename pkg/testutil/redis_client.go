package testutil

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient is an in-memory sorted-set implementation of the redis
// client interface, enough to exercise the leaderboard.
type MockRedisClient struct {
	sets map[string]map[string]float64
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{sets: map[string]map[string]float64{}}
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	_, ok := m.sets[key]
	return ok, nil
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.sets, key)
	}

	return nil
}

func (m *MockRedisClient) ZAdd(ctx context.Context, key string, z redis.Z) error {
	if m.sets[key] == nil {
		m.sets[key] = map[string]float64{}
	}

	m.sets[key][z.Member.(string)] = z.Score
	return nil
}

func (m *MockRedisClient) ZIncrBy(
	ctx context.Context, key string, incr int64, member string,
) error {
	if m.sets[key] == nil {
		m.sets[key] = map[string]float64{}
	}

	m.sets[key][member] += float64(incr)
	return nil
}

func (m *MockRedisClient) ZRevRangeWithScores(
	ctx context.Context, key string, offset, limit int,
) ([]redis.Z, error) {
	members := m.revRange(key)
	if offset >= len(members) {
		return nil, nil
	}

	end := offset + limit
	if end > len(members) {
		end = len(members)
	}

	return members[offset:end], nil
}

func (m *MockRedisClient) ZRevRank(
	ctx context.Context, key string, member string,
) (uint64, error) {
	for i, z := range m.revRange(key) {
		if z.Member == member {
			return uint64(i), nil
		}
	}

	return 0, redis.Nil
}

func (m *MockRedisClient) revRange(key string) []redis.Z {
	members := []redis.Z{}
	for member, score := range m.sets[key] {
		members = append(members, redis.Z{Member: member, Score: score})
	}

	sort.Slice(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			return members[i].Score > members[j].Score
		}

		return members[i].Member.(string) > members[j].Member.(string)
	})

	return members
}
