package replicate

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/statforge/mixedsim/dataset"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidReplicates indicates a non-positive replicate count.
	ErrInvalidReplicates = errors.New("replicate: replicate count must be positive")

	// ErrNilDraw indicates a nil draw function.
	ErrNilDraw = errors.New("replicate: draw function must not be nil")
)

// DefaultSeed is the fixed "zero" base seed used when callers pass seed==0.
const DefaultSeed uint64 = 1

// DrawFunc produces one full simulated dataset. rep is the replicate index
// (0-based); src is a deterministic random source owned exclusively by
// this replicate.
type DrawFunc func(rep int, src rand.Source) (*dataset.Frame, error)

// options carries the resolved configuration of one Run call.
type options struct {
	seed    uint64
	workers int
}

// Option mutates the internal options state.
type Option func(*options)

// WithSeed sets the base seed for stream derivation.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func WithSeed(seed uint64) Option {
	if seed == 0 {
		seed = DefaultSeed
	}

	return func(o *options) { o.seed = seed }
}

// WithWorkers bounds the number of concurrently running replicates.
// Panics on n ≤ 0 (programmer error). Default is GOMAXPROCS.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("replicate: WithWorkers requires n > 0")
	}

	return func(o *options) { o.workers = n }
}

// Run executes n independent replicates of draw and returns their frames
// in replicate order. Each replicate receives a source seeded by
// deriveSeed(baseSeed, index), so results are reproducible for a given
// seed regardless of scheduling. The first error cancels the remaining
// replicates and is returned; no partial result slice escapes.
//
// Complexity: O(n) scheduling overhead plus the cost of the draws.
func Run(ctx context.Context, n int, draw DrawFunc, opts ...Option) ([]*dataset.Frame, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidReplicates, n)
	}
	if draw == nil {
		return nil, ErrNilDraw
	}

	o := options{seed: DefaultSeed, workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		frames = make([]*dataset.Frame, n)
		g, gc  = errgroup.WithContext(ctx)
	)
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		rep := i
		g.Go(func() error {
			if err := gc.Err(); err != nil {
				return err
			}
			f, err := draw(rep, rand.NewSource(deriveSeed(o.seed, uint64(rep))))
			if err != nil {
				return fmt.Errorf("replicate %d: %w", rep, err)
			}
			frames[rep] = f

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return frames, nil
}

// Merge row-concatenates frames into one table, adding a leading
// "replicate" column (1-based) so pooled results remain attributable.
// All frames must share an identical column layout.
//
// Complexity: O(total rows · cols).
func Merge(frames []*dataset.Frame) (*dataset.Frame, error) {
	out := dataset.New()
	for i, f := range frames {
		tagged := dataset.New()
		rep := make([]float64, f.NumRows())
		for r := range rep {
			rep[r] = float64(i + 1)
		}
		if err := tagged.AddColumn("replicate", rep); err != nil {
			return nil, err
		}
		if err := tagged.Bind(f); err != nil {
			return nil, err
		}
		if out.NumCols() == 0 {
			err := out.Bind(tagged)
			if err != nil {
				return nil, err
			}

			continue
		}
		if err := out.Append(tagged); err != nil {
			return nil, err
		}
	}

	return out, nil
}
