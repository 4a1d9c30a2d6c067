package tsp

import "testing"

func TestSolveSANeverWorsens(t *testing.T) {
	adj := randomAdjacencyMatrix(12, 50)
	path := make([]int, len(adj))
	for i := range path {
		path[i] = i
	}
	before := totalDistance(path, adj)

	sa := solveSA(adj)
	after := totalDistance(sa, adj)
	if after > before {
		t.Fatalf("solveSA produced a worse tour: before=%d after=%d", before, after)
	}
}

func TestSolveChristofidesApproxValidPermutation(t *testing.T) {
	adj := randomAdjacencyMatrix(8, 20)
	path := solveChristofidesApprox(adj)
	if len(path) != len(adj) {
		t.Fatalf("expected permutation of length %d, got %d", len(adj), len(path))
	}
	seen := make(map[int]bool)
	for _, v := range path {
		if seen[v] {
			t.Fatalf("duplicate city %d in tour", v)
		}
		seen[v] = true
	}
}

func TestTotalDistanceClosedTour(t *testing.T) {
	// 两点闭合路径的距离应计两倍单程距离
	if got := totalDistance([]int{0, 1}, [][]int{{0, 3}, {3, 0}}); got != 6 {
		t.Fatalf("expected closed-tour distance 6, got %d", got)
	}
}
