package tsp

import (
	"math"
	"math/rand"
)

// solveSA 是模拟退火变体的参考实现，未被 Solve 接入主流水线；保留用于
// 与 solveNaive 对照测试不同策略在同一邻接矩阵上的表现
func solveSA(adj [][]int) []int {
	n := len(adj)
	currentPath := make([]int, n)
	for i := range currentPath {
		currentPath[i] = i
	}
	currentDistance := totalDistance(currentPath, adj)

	bestPath := append([]int(nil), currentPath...)
	bestDistance := currentDistance

	temperature := 1000.0
	for temperature > 1.0 {
		newPath := append([]int(nil), currentPath...)
		idx1 := rand.Intn(n)
		idx2 := rand.Intn(n)
		newPath[idx1], newPath[idx2] = newPath[idx2], newPath[idx1]

		newDistance := totalDistance(newPath, adj)
		delta := newDistance - currentDistance

		if delta < 0 || rand.Float64() < math.Exp(-float64(delta)/temperature) {
			currentPath = newPath
			currentDistance = newDistance
		}

		if currentDistance < bestDistance {
			bestPath = append([]int(nil), currentPath...)
			bestDistance = currentDistance
		}

		temperature *= 0.995
	}

	return bestPath
}
