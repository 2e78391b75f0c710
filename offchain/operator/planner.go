package operator

import (
	"sync"

	"github.com/openalpha/fundchain/x/fund/types"
)

// Plan returns the transitions of f that are due at now. It applies the same
// period rules the chain enforces, so a planned action is never rejected for
// timing.
func Plan(f *types.Fund, now int64) []Action {
	var actions []Action
	due := func(kind ActionKind, start, period int64) {
		if types.Elapsed(start, period, now) {
			actions = append(actions, Action{Kind: kind, FundID: f.ID, DueAt: start + period})
		}
	}

	switch f.Status {
	case types.StatusOnSale:
		due(ActionCloseSales, f.SalesPeriodStartTime, f.Config.Raise.RaisePeriod)
	case types.StatusClosed:
		if period := f.Config.Bonus.BonusPeriod; period > 0 && types.Elapsed(f.LastBonusTime, period, now) {
			// A bonus without profit leaves LastBonusTime unchanged, so the
			// due time advances per elapsed period to allow a retry each period.
			elapsed := (now - f.LastBonusTime) / period
			actions = append(actions, Action{Kind: ActionBonus, FundID: f.ID, DueAt: f.LastBonusTime + elapsed*period})
		}
		due(ActionStartSettlement, f.ClosedPeriodStartTime, f.Config.ClosedPeriod)
	case types.StatusRedemption:
		if f.IsPerpetual() {
			due(ActionContinuation, f.RedemptionPeriodStartTime, f.Config.RedemptionPeriod)
		}
	}
	return actions
}

// Planner turns fund snapshots into a deduplicated queue of due actions
type Planner struct {
	mu          sync.Mutex
	queue       *Queue
	journal     *Journal
	maxAttempts int
	done        map[string]struct{}
}

// NewPlanner creates a planner. A nil journal disables cross-restart dedupe.
func NewPlanner(journal *Journal, maxAttempts int) *Planner {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Planner{
		queue:       NewQueue(),
		journal:     journal,
		maxAttempts: maxAttempts,
		done:        make(map[string]struct{}),
	}
}

// Observe plans every fund at now and queues the actions not yet handled.
// It returns the number of newly queued actions.
func (p *Planner) Observe(funds []*types.Fund, now int64) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	added := 0
	for _, f := range funds {
		for _, a := range Plan(f, now) {
			id := a.ID()
			if _, ok := p.done[id]; ok || p.queue.Has(id) {
				continue
			}
			if p.journal != nil {
				ok, err := p.journal.ShouldSubmit(a, p.maxAttempts)
				if err != nil {
					return added, err
				}
				if !ok {
					continue
				}
			}
			p.queue.Push(a)
			added++
		}
	}
	return added, nil
}

// Due removes and returns up to limit queued actions due at now, earliest first
func (p *Planner) Due(now int64, limit int) []Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.PopDue(now, limit)
}

// MarkDone keeps a submitted action from being planned again
func (p *Planner) MarkDone(a Action) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done[a.ID()] = struct{}{}
}

// Len returns the number of queued actions
func (p *Planner) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Len()
}
