package shutdown

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) component(name string) Shutdownable {
	return Func(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, name)
	})
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestShutdownRunsComponentsInReverseOnce(t *testing.T) {
	rec := &recorder{}
	m := NewManager(nil)
	m.Register(rec.component("store"))
	m.Register(rec.component("window"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"window", "store"}, rec.snapshot())
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownDoesNotWaitForeverOnStuckComponent(t *testing.T) {
	rec := &recorder{}
	block := make(chan struct{})
	defer close(block)

	m := NewManager(nil)
	m.SetTimeout(20 * time.Millisecond)
	m.Register(rec.component("after"))
	m.Register(Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, []string{"after"}, rec.snapshot())
}

func TestSignalTriggersShutdown(t *testing.T) {
	rec := &recorder{}
	m := NewManager(nil)
	m.Register(rec.component("app"))

	sigChan := make(chan os.Signal, 1)
	go m.listen(sigChan)
	sigChan <- os.Interrupt

	select {
	case <-m.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("signal did not trigger shutdown")
	}
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 5*time.Second, 10*time.Millisecond)
}
