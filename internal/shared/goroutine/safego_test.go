package goroutine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

func TestSafeGo_RecoversPanic(t *testing.T) {
	done := make(chan struct{})
	SafeGo(logger.NewNopLogger(), "panicker", func() {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}
}

func TestGroup_WaitsForAll(t *testing.T) {
	g := NewGroup(logger.NewNopLogger())
	var count int32

	for i := 0; i < 5; i++ {
		g.Go("worker", func() {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&count, 1)
		})
	}
	g.Go("panicker", func() { panic("ignored") })

	g.Wait()
	assert.Equal(t, int32(5), atomic.LoadInt32(&count))
}
