package esv

import (
	"context"
	"sync/atomic"

	"github.com/jorge-barreto/plancal/internal/plan"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stats summarizes an enrichment run.
type Stats struct {
	Requested int
	Fetched   int
	Failed    int
}

// Enrich fetches the memory-verse text of every week that carries an API request
// and stores it in that week's MemoryVerse.Text. At most concurrency fetches run
// at once. A failed fetch is logged and leaves the week without text; it never
// stops the other weeks.
func Enrich(ctx context.Context, weeks []plan.Week, f Fetcher, concurrency int, log *zap.SugaredLogger) Stats {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if concurrency < 1 {
		concurrency = 1
	}

	var g errgroup.Group
	g.SetLimit(concurrency)

	var requested, fetched, failed atomic.Int64
	for i := range weeks {
		mv := &weeks[i].MemoryVerse
		if mv.API == nil {
			continue
		}
		requested.Add(1)
		label := weeks[i].Label
		g.Go(func() error {
			text, err := f.Fetch(ctx, mv.API)
			if err != nil {
				failed.Add(1)
				log.Warnw("memory verse fetch failed", "week", label, "verse", mv.Label, "error", err)
				return nil
			}
			mv.Text = text
			fetched.Add(1)
			log.Debugw("memory verse fetched", "week", label, "verse", mv.Label)
			return nil
		})
	}
	_ = g.Wait()

	return Stats{
		Requested: int(requested.Load()),
		Fetched:   int(fetched.Load()),
		Failed:    int(failed.Load()),
	}
}
