package main

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/devakorn/portfolio/canvas"
	"github.com/devakorn/portfolio/config"
	"github.com/devakorn/portfolio/systems"
	"github.com/devakorn/portfolio/telemetry"
)

// Target describes the look to tune for.
type Target struct {
	Width, Height  int     // Canvas size in px
	LinksPerDot    float64 // Mean drawn links per particle
	PairCheckLimit float64 // Pair checks per frame before a cost penalty
}

// FitnessEvaluator runs headless fields and scores them against a target.
type FitnessEvaluator struct {
	params     *ParamVector
	frames     int
	seeds      []int64
	baseConfig *config.Config
	target     Target

	mu        sync.Mutex
	lastStats telemetry.WindowStats
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, frames int, seeds []int64, baseCfg *config.Config, target Target) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		frames:     frames,
		seeds:      seeds,
		baseConfig: baseCfg,
		target:     target,
	}
}

// LastStats returns the averaged window from the most recent Evaluate.
func (fe *FitnessEvaluator) LastStats() telemetry.WindowStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastStats
}

// Evaluate scores a raw parameter vector (lower = better). Seeds run in
// parallel and their scores are averaged.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := *fe.baseConfig
	fe.params.ApplyToConfig(&cfg, x)

	results := make([]telemetry.WindowStats, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = fe.run(cfg.Particles, cfg.Derived.FrameDT, seed)
		}()
	}
	wg.Wait()

	var avg telemetry.WindowStats
	var total float64
	for _, r := range results {
		total += fe.Score(r)
		avg.Particles = r.Particles
		avg.LinksMean += r.LinksMean / float64(len(results))
		avg.PairChecksMean += r.PairChecksMean / float64(len(results))
		avg.Frames = r.Frames
	}

	fe.mu.Lock()
	fe.lastStats = avg
	fe.mu.Unlock()
	return total / float64(len(results))
}

// Score is the squared relative error of links per particle plus a penalty
// for pair checks above the limit.
func (fe *FitnessEvaluator) Score(ws telemetry.WindowStats) float64 {
	if ws.Particles == 0 || ws.Frames == 0 {
		return math.Inf(1)
	}
	lpd := ws.LinksMean / float64(ws.Particles)
	rel := (lpd - fe.target.LinksPerDot) / fe.target.LinksPerDot
	score := rel * rel
	if fe.target.PairCheckLimit > 0 && ws.PairChecksMean > fe.target.PairCheckLimit {
		score += ws.PairChecksMean/fe.target.PairCheckLimit - 1
	}
	return score
}

// run drives one field on a recorder for the configured frames and
// returns a single window over all of them.
func (fe *FitnessEvaluator) run(pc config.ParticlesConfig, dt float64, seed int64) telemetry.WindowStats {
	fieldCfg, err := systems.FieldConfigFrom(pc)
	if err != nil {
		return telemetry.WindowStats{}
	}

	rec := canvas.NewRecorder(fe.target.Width, fe.target.Height)
	queue := canvas.NewFrameQueue()
	field := systems.NewField(rec, queue, fieldCfg, rand.New(rand.NewSource(seed)))
	defer field.Stop()

	collector := telemetry.NewCollector(float64(fe.frames)*dt, dt)
	field.OnFrame(collector.Record)

	now := time.Unix(0, 0)
	step := time.Duration(dt * float64(time.Second))
	for range fe.frames {
		now = now.Add(step)
		queue.Flush(now)
	}
	return collector.Flush(int64(fe.frames))
}
