package searcher

import (
	"sync"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/stat"
)

type SearchMetric struct {
	Duration     time.Duration
	Workers      int
	Iterations   int64 // Completed iterations
	Aborted      int64 // Iterations dropped after an adapter error
	FullPlayouts int64 // Rollouts that reached the end of the game
	Stalls       int64 // Rollouts stopped because a player had no move
	MeanScore    float64
	ScoreStdDev  float64
}

type Collector interface {
	Start(workers int)
	AddIteration()
	AddAborted()
	AddPlayout(score float64, full bool)
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	workers      int
	iterations   atomic.Int64
	aborted      atomic.Int64
	fullPlayouts atomic.Int64
	stalls       atomic.Int64

	mu     sync.Mutex
	scores []float64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(workers int) {
	m.startTime = time.Now()
	m.workers = workers
	m.iterations.Store(0)
	m.aborted.Store(0)
	m.fullPlayouts.Store(0)
	m.stalls.Store(0)

	m.mu.Lock()
	m.scores = m.scores[:0]
	m.mu.Unlock()
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddAborted() {
	m.aborted.Add(1)
}

func (m *collector) AddPlayout(score float64, full bool) {
	if full {
		m.fullPlayouts.Add(1)
	} else {
		m.stalls.Add(1)
	}

	m.mu.Lock()
	m.scores = append(m.scores, score)
	m.mu.Unlock()
}

func (m *collector) Complete() SearchMetric {
	m.mu.Lock()
	mean, std := scoreStats(m.scores)
	m.mu.Unlock()

	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Workers:      m.workers,
		Iterations:   m.iterations.Load(),
		Aborted:      m.aborted.Load(),
		FullPlayouts: m.fullPlayouts.Load(),
		Stalls:       m.stalls.Load(),
		MeanScore:    mean,
		ScoreStdDev:  std,
	}
}

func scoreStats(scores []float64) (mean, std float64) {
	switch len(scores) {
	case 0:
		return 0, 0
	case 1: // Sample deviation is undefined for a single score
		return scores[0], 0
	default:
		return stat.MeanStdDev(scores, nil)
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers int)                   {}
func (m *dummyCollector) AddIteration()                       {}
func (m *dummyCollector) AddAborted()                         {}
func (m *dummyCollector) AddPlayout(score float64, full bool) {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }
