package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/model"
)

// DecomposeJob builds the breakdown of one input
type DecomposeJob struct {
	Input string
	Slots int
}

// Execute executes the decompose job
func (j *DecomposeJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &DecomposeResult{Input: j.Input, Error: err}
	}
	b := expand.Build(j.Input, j.Slots)
	return &DecomposeResult{Input: j.Input, Breakdown: &b}
}

// DecomposeResult is the outcome of a decompose job.
// Invalid input is not an error; it yields a breakdown with Valid=false.
type DecomposeResult struct {
	Input     string
	Breakdown *model.Breakdown
	Error     error
}

// GetError returns the error from the decompose result
func (r *DecomposeResult) GetError() error {
	return r.Error
}

// BatchProcessor decomposes many inputs concurrently
type BatchProcessor struct {
	slots       int
	concurrency int
	logger      *zap.Logger
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(slots, concurrency int, logger *zap.Logger) *BatchProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchProcessor{
		slots:       slots,
		concurrency: concurrency,
		logger:      logger,
	}
}

// ProcessInputs decomposes inputs and returns results in input order
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []string) []*DecomposeResult {
	if len(inputs) == 0 {
		return []*DecomposeResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	submitted := 0
	for _, input := range inputs {
		if !pool.Submit(&DecomposeJob{Input: input, Slots: b.slots}) {
			b.logger.Warn("Batch cancelled before all inputs were queued",
				zap.Int("queued", submitted), zap.Int("total", len(inputs)))
			break
		}
		submitted++
	}

	results := pool.Wait()

	out := make([]*DecomposeResult, len(results))
	for i, r := range results {
		out[i] = r.(*DecomposeResult)
	}

	b.logger.Debug("Batch complete", zap.Int("inputs", len(inputs)), zap.Int("results", len(out)))
	return out
}

// ProcessFile reads inputs from a file and decomposes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*DecomposeResult, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return b.ProcessInputs(ctx, inputs), nil
}

// ReadInputsFromFile reads one literal per line, skipping blank lines and
// # comments and dropping duplicates.
func ReadInputsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}
