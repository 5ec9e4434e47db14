package chaincodec

import "time"

const (
	defaultTTL         = 10 * time.Minute
	defaultMaxParallel = 8
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func frameCost(_ string, frame []byte) int64 { return int64(len(frame)) }
