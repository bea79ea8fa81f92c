package calculation

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rpgo/savings-planner/internal/domain"
)

// PersonSuggestions holds the suggestions computed for one saver.
type PersonSuggestions struct {
	Person  domain.Person
	Records []domain.ResultRecord
}

// ProgressFunc is called after each saver is processed.
type ProgressFunc func(done, total int)

// SuggestAll runs s.Suggest for every saver on a bounded worker pool. Results are
// returned in input order. workers <= 0 means GOMAXPROCS.
func SuggestAll(ctx context.Context, s Suggester, people []domain.Person, products []domain.SavingsProduct, workers int, progressFn ProgressFunc) ([]PersonSuggestions, error) {
	if len(people) == 0 {
		return []PersonSuggestions{}, ctx.Err()
	}

	numWorkers := workers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers > len(people) {
		numWorkers = len(people)
	}

	work := make(chan int, len(people))
	results := make([]PersonSuggestions, len(people))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range people {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				if ctx.Err() != nil {
					return
				}
				results[idx] = PersonSuggestions{
					Person:  people[idx],
					Records: s.Suggest(people[idx], products),
				}
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(people))
				}
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Flatten concatenates batch results, keeping saver order.
func Flatten(batch []PersonSuggestions) []domain.ResultRecord {
	n := 0
	for _, ps := range batch {
		n += len(ps.Records)
	}
	records := make([]domain.ResultRecord, 0, n)
	for _, ps := range batch {
		records = append(records, ps.Records...)
	}
	return records
}
