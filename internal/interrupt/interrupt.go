// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package interrupt turns an operator interrupt into a cancellation token.
//
// The token does not cancel in-flight requests. It is consulted by the
// artifact poll loop between iterations, so the operation that is running
// when the interrupt arrives finishes and its results are kept.
package interrupt

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/MKhiriev/octo-exporter/internal/app"
)

// AckMessage is printed once when the first interrupt is received.
const AckMessage = app.MsgCancelAck

// Signal is the read side of a cancellation token.
type Signal interface {
	IsSet() bool
	Done() <-chan struct{}
}

// Flag is a set-once cancellation token. The zero value is not usable; use
// [NewFlag].
type Flag struct {
	set  atomic.Bool
	once sync.Once
	done chan struct{}
}

// NewFlag returns an unset Flag.
func NewFlag() *Flag {
	return &Flag{done: make(chan struct{})}
}

// Set marks the flag. Only the first call has an effect.
func (f *Flag) Set() {
	f.once.Do(func() {
		f.set.Store(true)
		close(f.done)
	})
}

// IsSet reports whether Set has been called.
func (f *Flag) IsSet() bool {
	return f.set.Load()
}

// Done returns a channel closed when the flag is set.
func (f *Flag) Done() <-chan struct{} {
	return f.done
}

// DefaultSignals are the signals treated as an operator interrupt.
func DefaultSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}

// Listen sets flag on the first of sigs (DefaultSignals when empty) and
// prints [AckMessage] to out. After the first signal it stops intercepting,
// so a second interrupt terminates the process the default way.
//
// Listen returns immediately; the listener goroutine exits when ctx is done.
func Listen(ctx context.Context, flag *Flag, out io.Writer, sigs ...os.Signal) {
	if len(sigs) == 0 {
		sigs = DefaultSignals()
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go watch(ctx, ch, flag, out, func() { signal.Stop(ch) })
}

func watch(ctx context.Context, ch <-chan os.Signal, flag *Flag, out io.Writer, stop func()) {
	defer stop()

	select {
	case <-ctx.Done():
	case <-ch:
		flag.Set()
		fmt.Fprintln(out, AckMessage)
	}
}

var _ Signal = (*Flag)(nil)
