package metrics

import (
	"sync/atomic"
	"time"
)

// AgentConfig describes one AI player taking part in an experiment.
type AgentConfig struct {
	ID         int
	Difficulty string
	Depth      int
	Seed       uint64
}

type SearchMetric struct {
	Difficulty string
	Depth      int
	Duration   time.Duration
	Nodes      int
	Leaves     int
	Cutoffs    int
	Score      float64 // Best root score, Hard only
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "white", "black", "draw" or "" when the turn limit was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(difficulty string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetScore(score float64)
	Complete() SearchMetric
}

type collector struct {
	difficulty string
	depth      int
	startTime  time.Time
	nodes      atomic.Int32
	leaves     atomic.Int32
	cutoffs    atomic.Int32
	score      float64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(difficulty string, depth int) {
	m.startTime = time.Now()
	m.difficulty = difficulty
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.score = 0
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetScore(score float64) {
	m.score = score
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Difficulty: m.difficulty,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		Score:      m.score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(difficulty string, depth int) {}
func (m *dummyCollector) AddNode()                           {}
func (m *dummyCollector) AddLeaf()                           {}
func (m *dummyCollector) AddCutoff()                         {}
func (m *dummyCollector) SetScore(score float64)             {}
func (m *dummyCollector) Complete() SearchMetric             { return SearchMetric{} }
