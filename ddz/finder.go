package ddz

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"
)

// Finder enumerates the responses a pool of cards can play against a
// target hand. A Finder holds no per-call state and is safe for concurrent
// use.
type Finder struct {
	logger  *log.Logger
	workers int
}

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// WithLogger sets the logger used for debug records.
func WithLogger(logger *log.Logger) FinderOption {
	return func(f *Finder) {
		if logger != nil {
			f.logger = logger.WithPrefix("finder")
		}
	}
}

// WithWorkers bounds the goroutines FindAll runs at once.
func WithWorkers(n int) FinderOption {
	return func(f *Finder) {
		if n > 0 {
			f.workers = n
		}
	}
}

// NewFinder creates a finder. Without options it logs nowhere and uses one
// worker per CPU.
func NewFinder(opts ...FinderOption) *Finder {
	f := &Finder{
		logger:  log.New(io.Discard),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFinder = NewFinder()

// FindBeating returns every representative subset of pool that beats
// target, using a default Finder.
func FindBeating(pool, target Hand) ([][]Card, error) {
	return defaultFinder.FindBeating(pool, target)
}

// GeneratorFor returns the shape-specific generator answering target
// shape s, or nil when only bombs and the rocket can answer (Bomb) or
// nothing can (Mess, Rocket).
func GeneratorFor(s Shape) Generator {
	switch s {
	case Single:
		return FindSingles
	case Pair:
		return FindPairs
	case Triple:
		return FindTriples
	case TriplePlusSingle:
		return FindTriplePlusSingles
	case TriplePlusPair:
		return FindTriplePlusPairs
	case Straight:
		return FindStraights
	case PairStraight:
		return FindPairStraights
	case TripleStraight:
		return FindTripleStraights
	case TripleStraightWithWings:
		return FindTripleStraightsWithWings
	case QuadPlusTwoSingles:
		return FindQuadPlusTwoSingles
	case QuadPlusTwoPairs:
		return FindQuadPlusTwoPairs
	case Mess, Bomb, Rocket:
	}
	return nil
}

// FindBeating returns every representative subset of pool that beats
// target: same-shape responses first, then bombs, then the rocket. Mess
// and Rocket targets have no responses. An empty result is not an error.
func (f *Finder) FindBeating(pool, target Hand) ([][]Card, error) {
	if !answerable(target) {
		return nil, nil
	}

	var out [][]Card
	if gen := GeneratorFor(target.Shape()); gen != nil {
		shaped, err := gen(pool, target)
		if err != nil {
			return nil, err
		}
		out = append(out, shaped...)
	}
	out = append(out, FindBombs(pool, target)...)
	if rocket := FindRocket(pool, target); rocket != nil {
		out = append(out, rocket)
	}

	f.logger.Debug("Enumerated responses", "target", target, "shape", target.Shape(), "pool", pool.Len(), "candidates", len(out))
	return out, nil
}

// answerable reports whether anything could legally beat target.
func answerable(target Hand) bool {
	switch target.Value().Tier {
	case TierIncomparable, TierRocket:
		return false
	default:
		return true
	}
}
