package view

import (
	"time"

	"github.com/rs/zerolog"
)

// Strategy names one of the three synchronization approaches.
type Strategy string

const (
	StrategyFullRedraw    Strategy = "full-redraw"
	StrategyBatchedRedraw Strategy = "batched-redraw"
	StrategyInsertOne     Strategy = "insert-one"
)

// Result reports what a single synchronization call cost.
type Result struct {
	Strategy Strategy
	Items    int
	Reflows  int
	Elapsed  time.Duration
}

// Synchronizer reconciles an ordered item list with an on-screen container.
// All three strategies leave the container's child sequence equal to the
// item list, position for position; they differ in reflow cost and in
// whether previously-displayed nodes survive with their transient state.
type Synchronizer struct {
	log zerolog.Logger
	now func() time.Time
}

// NewSynchronizer returns a synchronizer logging each call at debug level.
func NewSynchronizer(log zerolog.Logger) *Synchronizer {
	return &Synchronizer{log: log, now: time.Now}
}

// FullRedraw clears the container and appends each item one at a time onto
// the live tree: n items cost n+1 reflows (one for the clear). Everything
// previously on screen is discarded, so any transient state those nodes
// held is lost.
func (s *Synchronizer) FullRedraw(c *Container, items []*Node) Result {
	start := s.now()
	before := c.Reflows()
	c.Clear()
	for _, it := range items {
		c.Append(it)
	}
	return s.finish(StrategyFullRedraw, c, len(items), before, start)
}

// BatchedRedraw clears the container, builds the new child sequence in an
// off-screen fragment, and splices it in with a single append: two reflows
// total regardless of n. Same state-loss caveat as FullRedraw.
func (s *Synchronizer) BatchedRedraw(c *Container, items []*Node) Result {
	start := s.now()
	before := c.Reflows()
	c.Clear()
	frag := NewFragment()
	for _, it := range items {
		frag.Append(it)
	}
	c.AppendFragment(frag)
	return s.finish(StrategyBatchedRedraw, c, len(items), before, start)
}

// InsertOne inserts item before the child currently at pos, leaving every
// other child untouched: one reflow, and all other on-screen nodes keep
// their identity and transient state. Any pos outside [0, Len) resolves to
// append, including negative values.
func (s *Synchronizer) InsertOne(c *Container, item *Node, pos int) Result {
	start := s.now()
	before := c.Reflows()
	c.InsertBefore(item, c.ChildAt(pos))
	return s.finish(StrategyInsertOne, c, 1, before, start)
}

func (s *Synchronizer) finish(st Strategy, c *Container, items, reflowsBefore int, start time.Time) Result {
	r := Result{
		Strategy: st,
		Items:    items,
		Reflows:  c.Reflows() - reflowsBefore,
		Elapsed:  s.now().Sub(start),
	}
	s.log.Debug().
		Str("strategy", string(r.Strategy)).
		Int("items", r.Items).
		Int("reflows", r.Reflows).
		Dur("elapsed", r.Elapsed).
		Msg("container synchronized")
	return r
}
