package types

import (
	"cosmossdk.io/math"
)

// BonusDebt is a holder's accumulator snapshot for one reward denom, scaled by BonusScale
type BonusDebt struct {
	Denom string   `json:"denom"`
	DebtX math.Int `json:"debt_x"`
}

// ShareHolding is one holder's position in a fund
type ShareHolding struct {
	Balance     math.Int    `json:"balance"`
	LockTicket  LockTicket  `json:"lock_ticket"`
	ApproveLock ApproveLock `json:"approve_lock"`
	BonusDebts  []BonusDebt `json:"bonus_debts,omitempty"`
}

// NewShareHolding returns an empty holding
func NewShareHolding() *ShareHolding {
	return &ShareHolding{
		Balance:     math.ZeroInt(),
		LockTicket:  EmptyLockTicket(),
		ApproveLock: EmptyApproveLock(),
	}
}

// DebtOf returns the bonus debt for denom
func (h *ShareHolding) DebtOf(denom string) math.Int {
	for _, d := range h.BonusDebts {
		if d.Denom == denom {
			return d.DebtX
		}
	}
	return math.ZeroInt()
}

// SetDebt records the bonus debt for denom
func (h *ShareHolding) SetDebt(denom string, debtX math.Int) {
	for i, d := range h.BonusDebts {
		if d.Denom == denom {
			h.BonusDebts[i].DebtX = debtX
			return
		}
	}
	h.BonusDebts = append(h.BonusDebts, BonusDebt{Denom: denom, DebtX: debtX})
}

// LockedAmount returns the frozen part of the balance at now
func (h *ShareHolding) LockedAmount(now int64) math.Int {
	return h.LockTicket.LockedAmount(now)
}

// Lockables returns the balance that is free to move at now
func (h *ShareHolding) Lockables(now int64) math.Int {
	free := h.Balance.Sub(h.LockedAmount(now))
	if free.IsNegative() {
		return math.ZeroInt()
	}
	return free
}

// IsEmpty returns true if nothing about the holding needs to be persisted
func (h *ShareHolding) IsEmpty() bool {
	if !h.Balance.IsZero() || !h.LockTicket.IsEmpty() {
		return false
	}
	if h.ApproveLock.Locker != "" || !h.ApproveLock.Amount.IsZero() {
		return false
	}
	for _, d := range h.BonusDebts {
		if !d.DebtX.IsZero() {
			return false
		}
	}
	return true
}
