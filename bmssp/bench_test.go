package bmssp_test

import (
	"testing"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/internal/baseline"
	"github.com/katalvlaran/bmssp/internal/graphgen"
)

func benchmarkCompute(b *testing.B, n int, p float64) {
	g, err := graphgen.Sparse(n, p, 20, 42)
	if err != nil {
		b.Fatal(err)
	}
	e := bmssp.New(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Compute(0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompute_N100(b *testing.B)  { benchmarkCompute(b, 100, 0.05) }
func BenchmarkCompute_N1000(b *testing.B) { benchmarkCompute(b, 1000, 0.01) }
func BenchmarkCompute_N5000(b *testing.B) { benchmarkCompute(b, 5000, 0.002) }

func benchmarkDijkstra(b *testing.B, n int, p float64) {
	g, err := graphgen.Sparse(n, p, 20, 42)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := baseline.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDijkstra_N100(b *testing.B)  { benchmarkDijkstra(b, 100, 0.05) }
func BenchmarkDijkstra_N1000(b *testing.B) { benchmarkDijkstra(b, 1000, 0.01) }
func BenchmarkDijkstra_N5000(b *testing.B) { benchmarkDijkstra(b, 5000, 0.002) }
