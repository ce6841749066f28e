package forward

import "context"

// Request is the part of an incoming request that resolution depends on.
type Request struct {
	// Endpoint is the dot-separated route identifier, e.g. "info.show".
	Endpoint string

	// Component is the name of the component serving the request, or empty
	// when the application serves it directly.
	Component string
}

type requestKey struct{}

// WithRequest returns a context carrying req.
func WithRequest(ctx context.Context, req Request) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

// RequestFromContext returns the request stored by WithRequest.
func RequestFromContext(ctx context.Context) (Request, bool) {
	req, ok := ctx.Value(requestKey{}).(Request)
	return req, ok
}
