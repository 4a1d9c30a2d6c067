// 排课引擎命令行入口
// 一次性批处理：装载工程目录、求初始解、（可选）跑完整的自适应优化，
// 最后把结果写成 log.json

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paiban/paiban/internal/config"
	"github.com/paiban/paiban/pkg/criteria"
	"github.com/paiban/paiban/pkg/initial"
	"github.com/paiban/paiban/pkg/iolog"
	"github.com/paiban/paiban/pkg/logger"
	"github.com/paiban/paiban/pkg/optimizer"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/render"
	"github.com/paiban/paiban/pkg/solution"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load process config:", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: "stdout"})

	onlyInitial := flag.Bool("only-initial", false, "只求初始可行解，打印表格后退出，不进入优化主循环")
	flag.Parse()

	projectPath := cfg.DefaultProjectPath
	if flag.NArg() > 0 {
		projectPath = flag.Arg(0)
	}

	log := logger.Get()
	log.Info().Str("project_path", projectPath).Msg("装载工程")

	p, err := project.Build(projectPath)
	if err != nil {
		log.Error().Err(err).Msg("装载工程失败")
		os.Exit(1)
	}
	log.Info().Str("project", p.String()).Msg("工程装载完成")

	reg, err := criteria.Parse(projectPath)
	if err != nil {
		log.Error().Err(err).Msg("解析准则失败")
		os.Exit(1)
	}
	reg.Init(p)

	sink := iolog.NewSink()

	initialStart := time.Now()
	initialSolution, err := initial.FindInitialSolution(p)
	initialElapsed := time.Since(initialStart)
	if err != nil {
		log.Error().Err(err).Msg("未找到可行的初始解")
		os.Exit(1)
	}
	initialSolution.FillCounter(p)
	sink.RecordInitial(p, reg, initialElapsed.Milliseconds(), initialSolution)
	log.Info().Dur("elapsed", initialElapsed).Msg("初始解求解完成")

	if *onlyInitial {
		render.Table(os.Stdout, initialSolution, p, -1)
		if err := sink.Finish(p, reg, []solution.Solution{initialSolution}); err != nil {
			log.Error().Err(err).Msg("写入 log.json 失败")
			os.Exit(1)
		}
		if err := sink.Write(projectPath); err != nil {
			log.Error().Err(err).Msg("写入 log.json 失败")
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-interrupt
		log.Warn().Msg("收到中断信号，将在当前迭代结束后停止")
		cancel()
	}()

	run := optimizer.NewRun(p, reg)
	result, err := run.Optimize(ctx)
	if err != nil {
		log.Error().Err(err).Msg("优化主循环失败")
		os.Exit(1)
	}
	sink.RecordSteps(result.Steps)

	if err := sink.Finish(p, reg, result.Population); err != nil {
		log.Error().Err(err).Msg("写入 log.json 失败")
		os.Exit(1)
	}
	if err := sink.Write(projectPath); err != nil {
		log.Error().Err(err).Msg("写入 log.json 失败")
		os.Exit(1)
	}

	log.Info().Int("population_size", len(result.Population)).Int("steps", len(result.Steps)).Msg("优化运行完成")
}
