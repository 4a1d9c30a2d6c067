// Package optimizer 实现自适应 MOSA 主循环：维护种群、温度与每个
// 邻域族的权重，每轮迭代生成候选、评分、筛选天际线、调整权重、降温
package optimizer

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/paiban/paiban/pkg/criteria"
	"github.com/paiban/paiban/pkg/neighborhoods"
	"github.com/paiban/paiban/pkg/pareto"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// numNeighborhoods 是邻域族的总数，固定为 5：relocate、两种单维度 swap、
// 双维度 swap、greedy_room
const numNeighborhoods = 5

var neighborhoodNames = [numNeighborhoods]string{
	"relocate", "swap_room_only", "swap_time_only", "swap_time_and_room", "greedy_room",
}

var neighborhoodFuncs = [numNeighborhoods]neighborhoods.MoveFunc{
	neighborhoods.Relocate,
	neighborhoods.SwapRoomOnly,
	neighborhoods.SwapTimeOnly,
	neighborhoods.SwapTimeAndRoom,
	neighborhoods.GreedyRoom,
}

// avgReference 是 1/numNeighborhoods，惩罚门使用的固定基准线，而不是
// 每轮重新计算的平均值
const avgReference = 1.0 / float64(numNeighborhoods)

// Run 是一次完整的优化运行，ID 出现在该运行的开始、中断与结束日志行里，
// 不写入 log.json（google/uuid 从教师代码里按实体主键的用途重新定位到运行标识）
type Run struct {
	ID       uuid.UUID
	Project  *project.Project
	Criteria *criteria.Registry
}

// NewRun 构造一次新的运行，生成一个运行 ID
func NewRun(p *project.Project, reg *criteria.Registry) *Run {
	return &Run{ID: uuid.New(), Project: p, Criteria: reg}
}

// StepRecord 对应 log.json 里 steps 数组的一条记录
type StepRecord struct {
	Iteration               int       `json:"i"`
	Weights                 []float64 `json:"weights"`
	NeighborhoodAverage     []float64 `json:"neighborhood_average"`
	HistorySize             int       `json:"history_size"`
	NeighborhoodGradingTime int64     `json:"neighborhood_grading_time_ms"`
	MOSATime                int64     `json:"mosa_time_ms"`
	AverageScores           []float64 `json:"average_scores"`
	MaxScores               []float32 `json:"max_scores"`
	Graded                  int       `json:"graded"`
	Temperature             float64   `json:"temperature"`
}

// Result 是一次运行结束后的产出：最终种群及逐轮的步骤记录
type Result struct {
	Population []solution.Solution
	Steps      []StepRecord
}

// historyQueue 是带容量上限的 FIFO 去重集合，用于判断一个解是否在近期
// 出现过（新颖性奖励）
type historyQueue struct {
	size  int
	order []uint64
	seen  map[uint64]struct{}
}

func newHistoryQueue(size int) *historyQueue {
	return &historyQueue{size: size, seen: make(map[uint64]struct{}, size)}
}

func (h *historyQueue) Contains(hash uint64) bool {
	_, ok := h.seen[hash]
	return ok
}

func (h *historyQueue) Add(hash uint64) {
	if _, dup := h.seen[hash]; dup {
		return
	}
	h.order = append(h.order, hash)
	h.seen[hash] = struct{}{}
	for len(h.order) > h.size {
		oldest := h.order[0]
		h.order = h.order[1:]
		delete(h.seen, oldest)
	}
}

func (h *historyQueue) Len() int { return len(h.order) }

// parallelFillCounter 并行为种群里每一份解重建计数缓存，worker 数由
// runtime.GOMAXPROCS 决定——沿用教师 ParallelEvaluator 的 job/result
// channel + WaitGroup 结构（见 pkg/scheduler/optimizer/parallel.go）
func parallelFillCounter(population []solution.Solution, p *project.Project, workers int) {
	jobs := make(chan int, len(population))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				population[idx].FillCounter(p)
			}
		}()
	}
	for i := range population {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// generateCandidates 对种群里每一份解、每一个邻域族并行运行移动生成器，
// 按邻域族分桶收集候选
func generateCandidates(population []solution.Solution, p *project.Project, workers int) [numNeighborhoods][]solution.Solution {
	type job struct {
		solIdx  int
		neighIdx int
	}

	jobs := make(chan job, len(population)*numNeighborhoods)
	results := make([][]solution.Solution, len(population)*numNeighborhoods)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				ch := make(chan solution.Solution, 256)
				go func() {
					neighborhoodFuncs[j.neighIdx](population[j.solIdx], p, ch)
					close(ch)
				}()
				var bucket []solution.Solution
				for s := range ch {
					bucket = append(bucket, s)
				}
				results[j.solIdx*numNeighborhoods+j.neighIdx] = bucket
			}
		}()
	}

	for i := range population {
		for n := 0; n < numNeighborhoods; n++ {
			jobs <- job{i, n}
		}
	}
	close(jobs)
	wg.Wait()

	var buckets [numNeighborhoods][]solution.Solution
	for i := range population {
		for n := 0; n < numNeighborhoods; n++ {
			buckets[n] = append(buckets[n], results[i*numNeighborhoods+n]...)
		}
	}
	return buckets
}

// sampleBucket 从候选桶里均匀抽样最多 count 个，和原实现的
// choose_multiple 一样不要求全量评分每一个候选
func sampleBucket(bucket []solution.Solution, count int) []solution.Solution {
	if count >= len(bucket) {
		return bucket
	}
	if count <= 0 {
		return nil
	}
	idx := rand.Perm(len(bucket))[:count]
	out := make([]solution.Solution, count)
	for i, j := range idx {
		out[i] = bucket[j]
	}
	return out
}

// gradeParallel 并行对抽样得到的候选按全部准则打分
func gradeParallel(candidates []struct {
	Solution solution.Solution
	Source   int
}, reg *criteria.Registry, p *project.Project, workers int) []pareto.Graded {
	jobs := make(chan int, len(candidates))
	out := make([]pareto.Graded, len(candidates))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				c := candidates[idx]
				out[idx] = pareto.Graded{
					Scores:   reg.Evaluate(c.Solution, p),
					Source:   c.Source,
					Solution: c.Solution,
				}
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}
