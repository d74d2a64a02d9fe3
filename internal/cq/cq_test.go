package cq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueBatches(t *testing.T) {
	q := New[int]()
	defer q.Stop()

	for i := 0; i < 3; i++ {
		q.Add() <- i
	}

	select {
	case batch := <-q.Get():
		assert.Equal(t, []int{0, 1, 2}, batch)
	case <-time.After(time.Second):
		require.FailNow(t, "no batch")
	}

	select {
	case batch := <-q.Get():
		assert.Failf(t, "unexpected batch", "%v", batch)
	default:
	}

	q.Add() <- 3
	assert.Equal(t, []int{3}, <-q.Get())
}
