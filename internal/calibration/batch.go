package calibration

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runBatchInto fans a scenario batch out across goroutines with
// golang.org/x/sync/errgroup, writing each result into its own index of
// reports/errs so no two goroutines ever touch shared mutable state.
func runBatchInto(ctx context.Context, scenarios []Scenario, reports []Report, errs []error) {
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			report, err := Run(gctx, sc)
			reports[i] = report
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()
}
