// Package criteria 实现准则的封闭标签变体集合：每种准则类型是一个
// Go 类型，Registry 按 criteria.json 里的键名分派解析与求值
package criteria

import (
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// Criterion 是单个准则的契约：Init 在项目装载完成后调用一次，建立准则
// 需要的索引；Evaluate 给一个解打一个标量分，全部准则统一遵循
// "越大越好" 的约定
type Criterion interface {
	Init(p *project.Project)
	Evaluate(s solution.Solution, p *project.Project) float32
}

// Registry 持有全部已解析的准则实例：同一类型的条目保持 criteria.json
// 中的声明顺序；不同类型之间的先后取决于 Go map 的遍历顺序，不保证与
// 文件中的声明顺序一致
type Registry struct {
	criteria []Criterion
}

// Count 返回已注册的准则数量
func (r *Registry) Count() int { return len(r.criteria) }

// Evaluate 对一个解依次调用每条准则，返回与准则顺序一一对应的分数切片
func (r *Registry) Evaluate(s solution.Solution, p *project.Project) []float32 {
	scores := make([]float32, len(r.criteria))
	for i, c := range r.criteria {
		scores[i] = c.Evaluate(s, p)
	}
	return scores
}

func signedScore(score float32, weight float32, kind string) float32 {
	if kind == "max" {
		return score * weight
	}
	return -score * weight
}

func defaultWeight(w float32) float32 {
	if w == 0 {
		return 1.0
	}
	return w
}
