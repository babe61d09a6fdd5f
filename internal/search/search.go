package search

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnolang/seqprove/internal/logic"
	"github.com/gnolang/seqprove/internal/rules"
)

// defaultParallelDepth bounds how deep branches keep being forked when
// parallel search is on. Below it, subtrees are searched inline.
const defaultParallelDepth = 6

// Searcher expands open claims into derivations by trying rules in a fixed
// order. A Searcher holds no per-search state and is safe for concurrent use.
type Searcher struct {
	order         []logic.Rule
	parallel      bool
	parallelDepth int
	logger        *zap.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithOrder replaces the rule priority order. The order is not validated
// here; callers taking it from user input should run ValidateOrder first.
func WithOrder(order []logic.Rule) Option {
	return func(s *Searcher) {
		s.order = append([]logic.Rule(nil), order...)
	}
}

// WithParallel searches the premises of branching rules concurrently.
func WithParallel(parallel bool) Option {
	return func(s *Searcher) {
		s.parallel = parallel
	}
}

// WithParallelDepth sets how many levels of branching may fork goroutines.
func WithParallelDepth(depth int) Option {
	return func(s *Searcher) {
		s.parallelDepth = depth
	}
}

// WithLogger traces every rule application at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Searcher using DefaultOrder, sequential, without logging.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		order:         append([]logic.Rule(nil), DefaultOrder...),
		parallelDepth: defaultParallelDepth,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Order returns a copy of the rule order in use.
func (s *Searcher) Order() []logic.Rule {
	return append([]logic.Rule(nil), s.order...)
}

// Search expands every open node of t until no rule applies. Complete
// nodes are returned unchanged, so Search is idempotent.
func Search(t logic.Tree) logic.Tree {
	return New().Search(t)
}

// Search expands t with the searcher's order.
func (s *Searcher) Search(t logic.Tree) logic.Tree {
	return s.search(t, 0)
}

func (s *Searcher) search(t logic.Tree, depth int) logic.Tree {
	switch node := t.(type) {
	case logic.Complete:
		return node
	case logic.Open:
		return s.expand(node.Sequent, depth)
	default:
		return t
	}
}

func (s *Searcher) expand(c logic.Claim, depth int) logic.Tree {
	for _, rule := range s.order {
		out := rules.Apply(c, rule)
		if !out.IsClosed() {
			continue
		}
		s.logger.Debug("rule applied",
			zap.Stringer("rule", out.Rule),
			zap.Stringer("claim", c),
			zap.Int("premises", len(out.Subclaims)),
			zap.Int("depth", depth),
		)
		return logic.Complete{
			Sequent:   c,
			Subproofs: s.premises(out.Subclaims, depth+1),
			Rule:      out.Rule,
		}
	}
	s.logger.Debug("claim stuck", zap.Stringer("claim", c), zap.Int("depth", depth))
	return logic.NewOpen(c)
}

func (s *Searcher) premises(claims []logic.Claim, depth int) []logic.Tree {
	subproofs := make([]logic.Tree, len(claims))
	if !s.parallel || len(claims) < 2 || depth > s.parallelDepth {
		for i, c := range claims {
			subproofs[i] = s.expand(c, depth)
		}
		return subproofs
	}

	// each goroutine writes only its own slot
	var g errgroup.Group
	for i, c := range claims {
		i, c := i, c
		g.Go(func() error {
			subproofs[i] = s.expand(c, depth)
			return nil
		})
	}
	_ = g.Wait()
	return subproofs
}
