package ratelimit

// Limit is a sliding-window quota for one key class.
type Limit struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// RateLimiter answers whether one more request fits the key's quota.
type RateLimiter interface {
	Allow(key string, limit Limit) (bool, error)
}
