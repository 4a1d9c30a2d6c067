package tsp

import (
	"math/rand"

	"github.com/paiban/paiban/pkg/project"
)

// solveNaive 朴素随机交换爬山法：固定跑 1000 次迭代，每次随机交换路径中
// 两个位置，只有严格变优才接受，否则丢弃
func solveNaive(rooms []RoomVisit, p *project.Project) []RoomVisit {
	path := make([]RoomVisit, len(rooms))
	copy(path, rooms)
	if len(path) < 2 {
		return path
	}

	minDistance := totalDistanceProj(path, p)

	for i := 0; i < 1000; i++ {
		newPath := make([]RoomVisit, len(path))
		copy(newPath, path)
		idx1 := rand.Intn(len(path))
		idx2 := rand.Intn(len(path))
		newPath[idx1], newPath[idx2] = newPath[idx2], newPath[idx1]

		newDistance := totalDistanceProj(newPath, p)
		if newDistance < minDistance {
			path = newPath
			minDistance = newDistance
		}
	}

	return path
}
