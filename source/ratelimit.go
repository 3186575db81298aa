package source

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// RateLimited wraps an Opener and throttles reads to the byte rate allowed by
// the limiter. All handles opened through the same RateLimited source share
// one limiter.
type RateLimited struct {
	inner   Opener
	limiter *rate.Limiter
}

// NewRateLimited creates a rate-limited view of inner. The limiter's tokens
// are consumed per byte read.
func NewRateLimited(inner Opener, limiter *rate.Limiter) *RateLimited {
	return &RateLimited{inner: inner, limiter: limiter}
}

// Open opens the named input; reads on the returned handle are throttled.
func (r *RateLimited) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := r.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &limitedReader{rc: rc, limiter: r.limiter, ctx: ctx}, nil
}

type limitedReader struct {
	rc      io.ReadCloser
	limiter *rate.Limiter
	ctx     context.Context
}

func (l *limitedReader) Read(p []byte) (int, error) {
	// Cap the request at the limiter burst so WaitN can always succeed.
	if burst := l.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := l.rc.Read(p)
	if n > 0 {
		if werr := l.limiter.WaitN(l.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (l *limitedReader) Close() error {
	return l.rc.Close()
}
