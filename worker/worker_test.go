package worker

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPool(workers int) *Pool {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), workers)
}

func TestPoolRunsInOrder(t *testing.T) {
	p := newTestPool(1)

	var order []int
	for i := 0; i < 10; i++ {
		assert.True(t, p.Submit(func() { order = append(order, i) }))
	}
	p.Close()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestPoolSurvivesPanic(t *testing.T) {
	p := newTestPool(2)

	var ran atomic.Int32
	p.Submit(func() { panic("boom") })
	for i := 0; i < 5; i++ {
		p.Submit(func() { ran.Add(1) })
	}
	p.Close()
	assert.Equal(t, int32(5), ran.Load())
}

func TestPoolClosed(t *testing.T) {
	p := newTestPool(1)
	p.Close()
	p.Close()
	assert.False(t, p.Submit(func() { t.Fatal("job ran after close") }))
}
