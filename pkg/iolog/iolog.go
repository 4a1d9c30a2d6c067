// Package iolog 把一次运行的过程与结果写成 log.json，对应原实现里
// log.rs 的 Log 结构，但不借助一个 static mut 全局：调用方显式持有
// 一个 *Sink，在初始解、优化结束后的步骤记录与收尾三个调用点写入
package iolog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paiban/paiban/pkg/criteria"
	"github.com/paiban/paiban/pkg/optimizer"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// document 是 log.json 的序列化形状，字段名与原实现的 Log 结构一一对应
type document struct {
	InitialMethod string    `json:"initial_method"`
	InitialTime   int64     `json:"initial_time"`
	InitialScores []float32 `json:"initial_scores"`

	Steps           []optimizer.StepRecord `json:"steps"`
	Solutions       [][][]solution.Placement `json:"solutions"`
	SolutionsScores [][]float32             `json:"solutions_scores"`
}

// Sink 累积一次运行要写入 log.json 的全部数据
type Sink struct {
	doc document
}

// NewSink 构造一个空的 Sink
func NewSink() *Sink {
	return &Sink{}
}

// RecordInitial 记录初始解的求解方法、耗时（毫秒）与各准则得分
func (sk *Sink) RecordInitial(p *project.Project, reg *criteria.Registry, elapsedMillis int64, s solution.Solution) {
	sk.doc.InitialMethod = p.Config.InitialMethod
	sk.doc.InitialTime = elapsedMillis
	sk.doc.InitialScores = reg.Evaluate(s, p)
}

// RecordSteps 追加优化主循环产生的逐轮步骤记录
func (sk *Sink) RecordSteps(steps []optimizer.StepRecord) {
	sk.doc.Steps = append(sk.doc.Steps, steps...)
}

// Finish 记录最终种群及其各自的准则得分；写文件由 Write 完成
func (sk *Sink) Finish(p *project.Project, reg *criteria.Registry, population []solution.Solution) error {
	sk.doc.Solutions = make([][][]solution.Placement, len(population))
	sk.doc.SolutionsScores = make([][]float32, len(population))
	for i, s := range population {
		sk.doc.Solutions[i] = s.Slots
		sk.doc.SolutionsScores[i] = reg.Evaluate(s, p)
	}
	return nil
}

// Write 把累积的文档序列化为 JSON 并写到 dir/log.json
func (sk *Sink) Write(dir string) error {
	data, err := json.Marshal(sk.doc)
	if err != nil {
		return fmt.Errorf("iolog: failed to marshal log document: %w", err)
	}
	path := filepath.Join(dir, "log.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("iolog: failed to write %s: %w", path, err)
	}
	return nil
}
