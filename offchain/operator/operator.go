package operator

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/metrics"
)

// TickResult summarizes one operator pass
type TickResult struct {
	Now       int64
	Funds     int
	Planned   int
	Submitted int
	Failed    int
}

// Operator plans period-bound fund transitions and submits them
type Operator struct {
	sender     string
	source     FundSource
	planner    *Planner
	submitter  TxSubmitter
	journal    *Journal
	maxPerTick int
	clock      func() time.Time

	mu        sync.Mutex
	lastBlock BlockEvent

	tickMu  sync.Mutex
	ticking atomic.Bool
}

// Options tunes an Operator
type Options struct {
	MaxPerTick  int
	MaxAttempts int
	Clock       func() time.Time
}

// New creates an operator submitting as sender. journal may be nil.
func New(sender string, source FundSource, submitter TxSubmitter, journal *Journal, opts Options) *Operator {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Operator{
		sender:     sender,
		source:     source,
		planner:    NewPlanner(journal, opts.MaxAttempts),
		submitter:  submitter,
		journal:    journal,
		maxPerTick: opts.MaxPerTick,
		clock:      opts.Clock,
	}
}

// ObserveBlock records the latest block. The chain judges periods against
// block time, so ticks use it once known.
func (o *Operator) ObserveBlock(ev BlockEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if ev.Height > o.lastBlock.Height {
		o.lastBlock = ev
	}
}

func (o *Operator) now() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.lastBlock.Time.IsZero() {
		return o.lastBlock.Time.Unix()
	}
	return o.clock().Unix()
}

// Tick fetches funds, plans due actions and submits them one transaction each
func (o *Operator) Tick(ctx context.Context) (TickResult, error) {
	o.tickMu.Lock()
	defer o.tickMu.Unlock()

	c := metrics.GetCollector()
	res := TickResult{Now: o.now()}

	funds, err := o.source.Funds(ctx)
	if err != nil {
		return res, fmt.Errorf("operator: list funds: %w", err)
	}
	res.Funds = len(funds)

	if res.Planned, err = o.planner.Observe(funds, res.Now); err != nil {
		return res, fmt.Errorf("operator: plan: %w", err)
	}

	for _, a := range o.planner.Due(res.Now, o.maxPerTick) {
		timer := metrics.NewTimer()
		err := o.submit(ctx, a)
		if err != nil {
			res.Failed++
			c.RecordOperatorAction(string(a.Kind), "failed", timer.ElapsedMs())
			log.Printf("[ERROR] submit %s: %v", a, err)
			if o.journal != nil {
				if jerr := o.journal.MarkFailed(a, err); jerr != nil {
					log.Printf("[ERROR] journal %s: %v", a, jerr)
				}
			}
			if ctx.Err() != nil {
				break
			}
			continue
		}

		res.Submitted++
		o.planner.MarkDone(a)
		c.RecordOperatorAction(string(a.Kind), "submitted", timer.ElapsedMs())
		log.Printf("[INFO] submitted %s", a)
		if o.journal != nil {
			if jerr := o.journal.MarkSubmitted(a); jerr != nil {
				log.Printf("[ERROR] journal %s: %v", a, jerr)
			}
		}
	}

	c.SetOperatorQueueDepth(o.planner.Len())
	return res, ctx.Err()
}

func (o *Operator) submit(ctx context.Context, a Action) error {
	msg, err := a.Msg(o.sender)
	if err != nil {
		return err
	}
	return o.submitter.Submit(ctx, []sdk.Msg{msg})
}

// Run ticks on the cron schedule and, when watcher is set, on every new
// block until ctx is done
func (o *Operator) Run(ctx context.Context, tickCron string, watcher *BlockWatcher) error {
	tick := func() {
		// Skip when the previous tick is still running
		if !o.ticking.CompareAndSwap(false, true) {
			return
		}
		defer o.ticking.Store(false)

		res, err := o.Tick(ctx)
		if err != nil && ctx.Err() == nil {
			log.Printf("[ERROR] tick: %v", err)
			return
		}
		if res.Submitted > 0 || res.Failed > 0 {
			log.Printf("[INFO] tick at %d: funds=%d planned=%d submitted=%d failed=%d",
				res.Now, res.Funds, res.Planned, res.Submitted, res.Failed)
		}
	}

	sched := NewScheduler()
	if err := sched.Register(tickCron, tick); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if watcher == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	return watcher.Run(ctx, func(ev BlockEvent) {
		o.ObserveBlock(ev)
		tick()
	})
}
