package optimizer

import (
	"context"
	"runtime"
	"time"

	"github.com/paiban/paiban/pkg/initial"
	"github.com/paiban/paiban/pkg/logger"
	"github.com/paiban/paiban/pkg/pareto"
	"github.com/paiban/paiban/pkg/solution"
)

// Optimize 运行完整的自适应 MOSA 主循环：先为 Config.PopulationSize
// 条链各自独立构造初始可行解，再反复做 "并行填充计数 -> 并行生成候选
// -> 按权重抽样 -> 并行评分 -> 热力学天际线筛选 -> 调整邻域权重 ->
// 降温" 直到 Config.MaxIter 轮跑完或 ctx 被取消
func (r *Run) Optimize(ctx context.Context) (*Result, error) {
	workers := runtime.GOMAXPROCS(0)
	cfg := r.Project.Config

	population := make([]solution.Solution, 0, cfg.PopulationSize)
	for i := 0; i < cfg.PopulationSize; i++ {
		s, err := initial.FindInitialSolution(r.Project)
		if err != nil {
			return nil, err
		}
		population = append(population, s)
	}
	r.Criteria.Init(r.Project)

	temperature := cfg.InitialTemperature
	neighborhoodScores := [numNeighborhoods]float64{}
	factoredWeights := [numNeighborhoods]float64{}
	lastWeights := [numNeighborhoods]float64{}
	for i := range neighborhoodScores {
		neighborhoodScores[i] = 1.0
		factoredWeights[i] = avgReference
		lastWeights[i] = avgReference
	}

	history := newHistoryQueue(cfg.HistorySize)
	result := &Result{}

	log := logger.Get()
	log.Info().Str("run_id", r.ID.String()).Int("population_size", cfg.PopulationSize).Msg("optimization run started")

	for i := 0; i < cfg.MaxIter; i++ {
		select {
		case <-ctx.Done():
			log.Warn().Str("run_id", r.ID.String()).Int("iteration", i).Msg("optimization interrupted")
			result.Population = population
			return result, nil
		default:
		}

		parallelFillCounter(population, r.Project, workers)

		buckets := generateCandidates(population, r.Project, workers)

		var sampled []struct {
			Solution solution.Solution
			Source   int
		}
		available := [numNeighborhoods]int{}
		for n := 0; n < numNeighborhoods; n++ {
			available[n] = len(buckets[n])
			count := int(float64(len(buckets[n])) * factoredWeights[n])
			for _, s := range sampleBucket(buckets[n], count) {
				sampled = append(sampled, struct {
					Solution solution.Solution
					Source   int
				}{s, n})
			}
		}

		gradeStart := time.Now()
		graded := gradeParallel(sampled, r.Criteria, r.Project, workers)
		gradeElapsed := time.Since(gradeStart)

		mosaStart := time.Now()
		survivors := pareto.RandomMOSA(graded, cfg.PopulationSize, temperature)
		mosaElapsed := time.Since(mosaStart)

		nextPopulation := make([]solution.Solution, 0, len(survivors))
		for _, surv := range survivors {
			nextPopulation = append(nextPopulation, surv.Solution)
			h := surv.Solution.Hash()
			if !history.Contains(h) {
				neighborhoodScores[surv.Source] += 2.0
				history.Add(h)
			}
		}
		if len(nextPopulation) > 0 {
			population = nextPopulation
		}

		perCandidate := [numNeighborhoods]float64{}
		var perCandidateTotal float64
		for n := range perCandidate {
			if available[n] == 0 {
				continue
			}
			perCandidate[n] = neighborhoodScores[n] / float64(available[n])
			perCandidateTotal += perCandidate[n]
		}
		averageScores := [numNeighborhoods]float64{}
		if perCandidateTotal > 0 {
			for n := range averageScores {
				averageScores[n] = perCandidate[n] / perCandidateTotal
			}
		}

		factoredScores := applyPenaltyGate(averageScores, lastWeights, cfg.PenaltyFactor, cfg.PenaltyThreshold)
		lastWeights = factoredWeights
		factoredWeights = rescaleWeights(factoredScores, available, cfg.ExpectedGradedNum)

		maxScores := maxPerCriterion(graded)

		result.Steps = append(result.Steps, StepRecord{
			Iteration:               i,
			Weights:                 factoredWeights[:],
			NeighborhoodAverage:     averageScores[:],
			HistorySize:             history.Len(),
			NeighborhoodGradingTime: gradeElapsed.Milliseconds(),
			MOSATime:                mosaElapsed.Milliseconds(),
			AverageScores:           averageScores[:],
			MaxScores:               maxScores,
			Graded:                  len(graded),
			Temperature:             temperature,
		})

		if i%20 == 0 {
			fields := log.Info().Int("iteration", i).Float64("temperature", temperature)
			for n, name := range neighborhoodNames {
				fields = fields.Float64(name+"_weight", factoredWeights[n])
			}
			fields.Msg("optimizer step")
		}

		temperature *= 0.998
	}

	result.Population = population
	log.Info().Str("run_id", r.ID.String()).Int("steps", len(result.Steps)).Msg("optimization run finished")
	return result, nil
}

// applyPenaltyGate 压制那些平均得分高于 1/numNeighborhoods、且上一轮权重
// 低于 penaltyThreshold 的邻域族——见 DESIGN.md 开放问题 7 的决策记录
func applyPenaltyGate(averageScores, lastWeights [numNeighborhoods]float64, penaltyFactor, penaltyThreshold float64) [numNeighborhoods]float64 {
	decay := penaltyThreshold / penaltyFactor
	out := averageScores
	for i := range out {
		if averageScores[i] > avgReference && lastWeights[i] < penaltyThreshold {
			out[i] = (1-decay)*averageScores[i] + avgReference*decay
		}
	}
	return out
}

// rescaleWeights 把调整后的分数换算成下一轮每个邻域族的抽样比例，
// 目标是让下一轮总评分候选数接近 expectedGradedNum
func rescaleWeights(factoredScores [numNeighborhoods]float64, available [numNeighborhoods]int, expectedGradedNum int) [numNeighborhoods]float64 {
	out := [numNeighborhoods]float64{}
	for i := range out {
		if available[i] == 0 {
			out[i] = 0
			continue
		}
		w := factoredScores[i] * float64(expectedGradedNum) / float64(available[i])
		if w > 1 {
			w = 1
		}
		if w < 0 {
			w = 0
		}
		out[i] = w
	}
	return out
}

func maxPerCriterion(graded []pareto.Graded) []float32 {
	if len(graded) == 0 {
		return nil
	}
	max := make([]float32, len(graded[0].Scores))
	for _, g := range graded {
		for i, s := range g.Scores {
			if s > max[i] {
				max[i] = s
			}
		}
	}
	return max
}
