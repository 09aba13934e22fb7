package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/floatchat/internal/resolve"
)

// Resolver answers a single query
type Resolver interface {
	Resolve(query string) resolve.Result
}

// ResolveJob resolves one query of a batch
type ResolveJob struct {
	Index    int
	Query    string
	Resolver Resolver
}

// Execute implements Job
func (j *ResolveJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &QueryResult{Index: j.Index, Query: j.Query, Error: err}
	}
	res := j.Resolver.Resolve(j.Query)
	return &QueryResult{Index: j.Index, Query: j.Query, Result: res}
}

// QueryResult is the outcome of a ResolveJob
type QueryResult struct {
	Index  int
	Query  string
	Result resolve.Result
	Error  error
}

// GetError implements Result
func (r *QueryResult) GetError() error {
	return r.Error
}

// BatchProcessor resolves many queries concurrently
type BatchProcessor struct {
	resolver    Resolver
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(resolver Resolver, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		resolver:    resolver,
		concurrency: concurrency,
	}
}

// ProcessQueries resolves queries and returns results in input order.
// Queries not started before ctx is cancelled are reported with ctx's error.
func (b *BatchProcessor) ProcessQueries(ctx context.Context, queries []string) []*QueryResult {
	if len(queries) == 0 {
		return []*QueryResult{}
	}

	jobs := make([]Job, len(queries))
	for i, q := range queries {
		jobs[i] = &ResolveJob{Index: i, Query: q, Resolver: b.resolver}
	}

	pool := NewPool(ctx, b.concurrency)
	results := pool.Run(jobs)

	out := make([]*QueryResult, len(queries))
	for _, r := range results {
		qr := r.(*QueryResult)
		out[qr.Index] = qr
	}

	for i, qr := range out {
		if qr == nil {
			err := ctx.Err()
			if err == nil {
				err = fmt.Errorf("query %d was not processed", i)
			}
			out[i] = &QueryResult{Index: i, Query: queries[i], Error: err}
		}
	}

	return out
}

// ProcessFile reads queries from a file and resolves them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*QueryResult, error) {
	queries, err := ReadQueriesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}

	return b.ProcessQueries(ctx, queries), nil
}

// ReadQueriesFromFile reads one query per line.
// Blank lines and '#' comments are skipped; repeated queries are dropped.
func ReadQueriesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var queries []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			queries = append(queries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return queries, nil
}
