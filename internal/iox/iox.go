// Package iox contains io extensions.
package iox

import (
	"context"
	"io"
)

// ReadAllContext is like [io.ReadAll] but returns early with the context
// error when ctx is done. The reading goroutine then keeps running until
// r returns, so callers should close the underlying body.
func ReadAllContext(ctx context.Context, r io.Reader) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	resch := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		resch <- result{data, err}
	}()
	select {
	case res := <-resch:
		if res.err != nil {
			return nil, res.err
		}
		return res.data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
