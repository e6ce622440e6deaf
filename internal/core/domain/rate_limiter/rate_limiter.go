package ratelimiter

import "context"

type Interval int

const (
	Minute Interval = iota
	Hour
)

type Limit struct {
	Interval Interval
	Value    uint
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
