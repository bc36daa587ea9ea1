// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interrupt

import (
	"bytes"
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer guards bytes.Buffer for a writer goroutine and a reader test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestFlag_SetOnce(t *testing.T) {
	f := NewFlag()
	assert.False(t, f.IsSet())

	select {
	case <-f.Done():
		t.Fatal("done channel closed before Set")
	default:
	}

	f.Set()
	assert.True(t, f.IsSet())

	// повторный Set не должен паниковать на закрытом канале
	assert.NotPanics(t, f.Set)

	select {
	case <-f.Done():
	default:
		t.Fatal("done channel not closed after Set")
	}
}

func TestFlag_ConcurrentReaders(t *testing.T) {
	f := NewFlag()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-f.Done()
			assert.True(t, f.IsSet())
		}()
	}

	f.Set()
	wg.Wait()
}

func TestWatch_SignalSetsFlagAndAcknowledges(t *testing.T) {
	f := NewFlag()
	out := &syncBuffer{}
	ch := make(chan os.Signal, 1)
	stopped := make(chan struct{})

	go watch(context.Background(), ch, f, out, func() { close(stopped) })
	ch <- syscall.SIGINT

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("flag was not set")
	}
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop after first signal")
	}
	assert.Equal(t, AckMessage+"\n", out.String())
}

func TestWatch_ContextDoneLeavesFlagUnset(t *testing.T) {
	f := NewFlag()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	go watch(ctx, make(chan os.Signal), f, &syncBuffer{}, func() { close(stopped) })
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop on context cancel")
	}
	assert.False(t, f.IsSet())
}
