/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import "context"

// Mode selects which lookups a resolution performs.
type Mode int

const (
	// ModeImport resolves for an @import rule. It is the default and is the
	// only mode that considers ".import" variants.
	ModeImport Mode = iota
	// ModeUse resolves for a @use or @forward rule and skips every
	// ".import" lookup.
	ModeUse
)

// String returns the rule name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeImport:
		return "import"
	case ModeUse:
		return "use"
	default:
		return "unknown"
	}
}

// ParseMode parses "import" or "use". The empty string is ModeImport.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "import":
		return ModeImport, nil
	case "use", "forward":
		return ModeUse, nil
	default:
		return ModeImport, &UnknownModeError{Mode: s}
	}
}

type modeKey struct{}

// WithMode returns a copy of ctx that resolves in mode m.
func WithMode(ctx context.Context, m Mode) context.Context {
	return context.WithValue(ctx, modeKey{}, m)
}

// ModeOf returns the mode carried by ctx, or ModeImport if none is set.
func ModeOf(ctx context.Context) Mode {
	if m, ok := ctx.Value(modeKey{}).(Mode); ok {
		return m
	}
	return ModeImport
}

// InUseRule runs fn with ModeUse. The mode lives only in the context handed
// to fn, so the caller's mode is unchanged however fn exits.
func InUseRule[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return fn(WithMode(ctx, ModeUse))
}

// InImportRule runs fn with ModeImport, e.g. for an @import nested inside a
// module loaded by @use.
func InImportRule[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return fn(WithMode(ctx, ModeImport))
}

// AsyncResult is the outcome of an asynchronous scoped call.
type AsyncResult[T any] struct {
	Value T
	Err   error
}

// InUseRuleAsync runs fn on its own goroutine with ModeUse and delivers the
// result on the returned channel, which receives exactly one value and is
// then closed. Other goroutines never observe fn's mode.
func InUseRuleAsync[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan AsyncResult[T] {
	out := make(chan AsyncResult[T], 1)
	scoped := WithMode(ctx, ModeUse)
	go func() {
		defer close(out)
		v, err := fn(scoped)
		out <- AsyncResult[T]{Value: v, Err: err}
	}()
	return out
}
