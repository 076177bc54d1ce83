// Package ratelimiter implements a token bucket limiter with an in-memory
// store and HTTP middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 6 * time.Second,
//	})
//
//	r.With(ratelimiter.Middleware(limiter, ips.Key, log)).Post("/login", login)
//
// A bucket holds Capacity tokens and regains RefillRate tokens every
// RefillInterval. A request is allowed while the remaining count is not
// negative.
package ratelimiter
