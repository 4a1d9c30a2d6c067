// Package tsp 提供贪心教室重排邻域内部使用的旅行商问题微求解器
package tsp

import (
	"math/rand"

	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
)

// RoomVisit 把一个时间槽和一间教室绑在一起，表示某人在某个时刻所在的教室
type RoomVisit struct {
	Slot int
	Room model.Room
}

// Solve 是唯一接入主流水线的求解器：朴素随机交换爬山法（见 naive.go）。
// reference_sa.go、reference_christofides.go 中的替代实现保留作为参考，未被调用。
func Solve(path []RoomVisit, p *project.Project) []RoomVisit {
	return solveNaive(path, p)
}

// totalDistanceProj 计算按 path 顺序访问各教室、最终回到起点的闭合路径总距离
func totalDistanceProj(path []RoomVisit, p *project.Project) int {
	if len(path) < 2 {
		return 0
	}
	total := 0
	for i := 0; i < len(path); i++ {
		next := (i + 1) % len(path)
		total += p.Rooms.Distance(path[i].Room, path[next].Room)
	}
	return total
}

// totalDistance 计算整数邻接矩阵上闭合路径的总距离，供参考实现的测试使用
func totalDistance(path []int, adj [][]int) int {
	if len(path) < 2 {
		return 0
	}
	total := 0
	for i := 0; i < len(path); i++ {
		next := (i + 1) % len(path)
		total += adj[path[i]][path[next]]
	}
	return total
}

// randomAdjacencyMatrix 生成对称的随机整数邻接矩阵，供参考实现的测试使用
func randomAdjacencyMatrix(n int, maxWeight int) [][]int {
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := rand.Intn(maxWeight)
			adj[i][j] = w
			adj[j][i] = w
		}
	}
	return adj
}
