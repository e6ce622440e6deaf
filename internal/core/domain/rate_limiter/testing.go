package ratelimiter

import (
	"context"
	"sync"
)

type FakeRateLimiter struct {
	Allow       bool
	CheckedKeys []string
	lock        sync.Mutex
}

func NewFakeRateLimiter(allow bool) *FakeRateLimiter {
	return &FakeRateLimiter{Allow: allow}
}

func (f *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.CheckedKeys = append(f.CheckedKeys, key)
	if f.Allow {
		return Allowed()
	}
	return NotAllowed()
}
