package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Stack is an ordered list of middleware; the first element is outermost.
type Stack []Middleware

// Use appends mw when enabled is true, so optional layers keep their slot.
func (s Stack) Use(enabled bool, mw Middleware) Stack {
	if !enabled {
		return s
	}
	return append(s, mw)
}

// Then wraps h with every middleware in the stack.
func (s Stack) Then(h http.Handler) http.Handler {
	for i := len(s) - 1; i >= 0; i-- {
		h = s[i](h)
	}
	return h
}

// Chain combines middleware into one: Chain(a, b)(h) == a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		return Stack(mws).Then(final)
	}
}
