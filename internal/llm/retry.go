package llm

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

const retryBaseDelay = 300 * time.Millisecond

type retryingClient struct {
	base Client
}

// WithRetry wraps a client with a single retry on transient failures.
func WithRetry(base Client) Client {
	if base == nil {
		return nil
	}
	return retryingClient{base: base}
}

func (r retryingClient) GenerateIdeas(ctx context.Context, input IdeasInput) ([]Idea, error) {
	ideas, err := r.base.GenerateIdeas(ctx, input)
	if err == nil || !shouldRetry(err) {
		return ideas, err
	}
	log.Printf("llm retry op=generate_ideas error=%v", err)
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return r.base.GenerateIdeas(ctx, input)
}

func (r retryingClient) Embed(ctx context.Context, text string) ([]float32, error) {
	vector, err := r.base.Embed(ctx, text)
	if err == nil || !shouldRetry(err) {
		return vector, err
	}
	log.Printf("llm retry op=embed error=%v", err)
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return r.base.Embed(ctx, text)
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
