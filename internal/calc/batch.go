package calc

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of evaluating one of the expressions given to
// EvalAll. Err is nil when Val is valid.
type Result struct {
	Src string
	Val int64
	Err error
}

// EvalAll evaluates each expression in srcs on its own goroutine, running at
// most `workers` evaluations at once (no limit if workers <= 0). The results
// are in the same order as srcs. A failing expression does not stop the others,
// its error is recorded in its Result and names the 1-based index of the
// expression. The returned error is only non-nil when ctx is done before all
// expressions were evaluated.
func EvalAll(ctx context.Context, srcs []string, workers int) ([]Result, error) {
	results := make([]Result, len(srcs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, src := range srcs {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			val, err := Eval(src)
			if err != nil {
				err = errors.Wrapf(err, "expression %d", i+1)
			}
			results[i] = Result{src, val, err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
