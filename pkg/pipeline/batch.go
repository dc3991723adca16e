package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/contextembed/metadata-engine/pkg/llm"
	"github.com/contextembed/metadata-engine/pkg/models"
)

// ProcessBatch runs all inputs against one profile with bounded
// parallelism. Per-image isolation: a failed image yields a RunResult
// with Err set and the rest of the batch continues. Results come back in
// completion order; correlate with RunResult.InputID.
func (e *Engine) ProcessBatch(
	ctx context.Context,
	inputs []ImageInput,
	profile *models.OnboardingProfile,
	onProgress func(completed, total int),
) []RunResult {
	if len(inputs) == 0 {
		return nil
	}

	items := make([]llm.WorkItem[RunResult], 0, len(inputs))
	for _, input := range inputs {
		input := input
		items = append(items, llm.WorkItem[RunResult]{
			ID: input.ID,
			Execute: func(ctx context.Context) (RunResult, error) {
				res := e.ProcessImage(ctx, input, profile)
				// Failures stay inside the RunResult so the pool does not
				// double-report them.
				return res, nil
			},
		})
	}

	workResults := llm.RunAll(ctx, e.pool, items, onProgress)

	results := make([]RunResult, 0, len(workResults))
	failed := 0
	for _, wr := range workResults {
		res := wr.Result
		if wr.Err != nil && res.Err == nil {
			res.Err = wr.Err
			res.InputID = wr.ID
		}
		if res.Err != nil {
			failed++
		}
		results = append(results, res)
	}

	e.logger.Info("batch processed",
		zap.Int("total", len(inputs)),
		zap.Int("failed", failed),
		zap.String("breaker", e.breaker.State().String()))

	return results
}
