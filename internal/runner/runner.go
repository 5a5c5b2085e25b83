package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jorge-barreto/plancal/internal/calendar"
	"github.com/jorge-barreto/plancal/internal/config"
	"github.com/jorge-barreto/plancal/internal/esv"
	"github.com/jorge-barreto/plancal/internal/plan"
	"github.com/jorge-barreto/plancal/internal/ux"
	"go.uber.org/zap"
)

// ErrNoToken is returned when enrichment is requested without an access token.
var ErrNoToken = errors.New("memory verse enrichment requested but no ESV API token is set (use --token or " + config.TokenEnv + ")")

// Runner drives one export: parse, optionally enrich, encode, write.
type Runner struct {
	Config  *config.Config
	Input   string
	Output  string
	Mode    calendar.Mode
	Token   string
	Enrich  bool
	DryRun  bool
	Fetcher esv.Fetcher // nil uses an esv.Client built from Config
	Log     *zap.SugaredLogger
	Now     func() time.Time
}

// Result describes what an export produced.
type Result struct {
	Plan   *plan.Plan
	Events int
	Stats  esv.Stats
}

// Run executes the export.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if r.Input == "" {
		return nil, plan.ErrNoInput
	}
	if !r.DryRun {
		if err := calendar.CheckOutputPath(r.Output); err != nil {
			return nil, err
		}
	}
	if r.Enrich && r.Token == "" {
		return nil, ErrNoToken
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	parser := plan.NewParser(plan.Options{
		Year:    r.Config.Year,
		Dialect: plan.Dialect(r.Config.Dialect),
		Links:   r.Config.Links(),
		Token:   r.Token,
		Logger:  log,
	})
	p, err := parser.ParseFile(r.Input)
	if err != nil {
		return nil, err
	}
	ux.Parsed(r.Input, len(p.Weeks), p.ReadingCount())

	res := &Result{Plan: p}
	if r.Enrich {
		res.Stats = esv.Enrich(ctx, p.Weeks, r.fetcher(), r.Config.FetchConcurrency, log)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		ux.Enriched(res.Stats.Fetched, res.Stats.Requested, res.Stats.Failed)
	}

	if r.DryRun {
		r.DryRunPrint(p)
		return res, nil
	}

	events := calendar.FromPlan(p, r.Mode)
	res.Events = len(events)
	if len(events) == 0 {
		log.Warnw("no events to export", "input", r.Input)
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	data, err := calendar.Encode(events, now())
	if err != nil {
		return nil, fmt.Errorf("encoding calendar: %w", err)
	}
	if err := calendar.WriteFile(r.Output, data); err != nil {
		return nil, fmt.Errorf("writing %s: %w", r.Output, err)
	}
	ux.Success(res.Events, r.Output)
	return res, nil
}

// DryRunPrint prints the parsed plan without writing a calendar.
func (r *Runner) DryRunPrint(p *plan.Plan) {
	ux.RenderSummary(p)
}

func (r *Runner) fetcher() esv.Fetcher {
	if r.Fetcher != nil {
		return r.Fetcher
	}
	return &esv.Client{Timeout: r.Config.Timeout()}
}
