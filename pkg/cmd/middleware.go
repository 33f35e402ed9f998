package cmd

// Middleware wraps a body (e.g. logging, history, panic recovery).
type Middleware func(Body) Body

// Apply applies middlewares in order; the first in the list is the outermost.
func Apply(b Body, mws ...Middleware) Body {
	for i := len(mws) - 1; i >= 0; i-- {
		b = mws[i](b)
	}
	return b
}
