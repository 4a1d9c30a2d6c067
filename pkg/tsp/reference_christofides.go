package tsp

// solveChristofidesApprox 是 Christofides 风格近似算法的参考实现：最近邻
// 构造初始巡回，再反复做 2-opt 修正直到不再改进。未被 Solve 接入主流水线，保留作为
// 与 solveNaive/solveSA 对照的第三种策略。
func solveChristofidesApprox(adj [][]int) []int {
	n := len(adj)
	if n == 0 {
		return nil
	}

	visited := make([]bool, n)
	path := make([]int, 0, n)
	current := 0
	visited[current] = true
	path = append(path, current)

	for len(path) < n {
		best := -1
		bestDist := 0
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if best == -1 || adj[current][j] < bestDist {
				best = j
				bestDist = adj[current][j]
			}
		}
		visited[best] = true
		path = append(path, best)
		current = best
	}

	return twoOpt(path, adj)
}

// twoOpt 对闭合巡回反复做 2-opt 局部修正，直到一整轮扫描都没有改进为止
func twoOpt(path []int, adj [][]int) []int {
	n := len(path)
	improved := true
	for improved {
		improved = false
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				before := totalDistance(path, adj)
				reversed := make([]int, n)
				copy(reversed, path)
				reverseSegment(reversed, i, j)
				after := totalDistance(reversed, adj)
				if after < before {
					path = reversed
					improved = true
				}
			}
		}
	}
	return path
}

func reverseSegment(path []int, i, j int) {
	for i < j {
		path[i], path[j] = path[j], path[i]
		i++
		j--
	}
}
