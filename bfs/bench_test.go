package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/igris/bfs"
	"github.com/katalvlaran/igris/topology"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	var pairs [][2]string
	for i := 0; i < N; i++ {
		pairs = append(pairs, [2]string{fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)})
	}
	g := build(b, pairs...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBFS_IGRIS measures BFS over a generated small-world graph.
func BenchmarkBFS_IGRIS(b *testing.B) {
	g, err := topology.Build(0.2, 4, topology.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "cell_0")
	}
}
