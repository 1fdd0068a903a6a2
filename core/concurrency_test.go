// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvlath/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from a hub
// to distinct leaves are safe and all leaves appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id+1))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	hub, ok := g.IndexOf("X")
	require.True(t, ok)
	require.Len(t, g.Neighbors(hub), num)
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReaders runs many readers against a finished graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge(fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", i+1), 1)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for r := 0; r < 16; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sum := 0
			for _, d := range g.Degrees() {
				sum += d
			}
			require.Equal(t, 2*g.EdgeCount(), sum)
		}()
	}
	wg.Wait()
}
