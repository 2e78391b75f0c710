package types

import (
	stdmath "math"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MaxLockDuration caps lock approvals and tickets at one hundred years
const MaxLockDuration int64 = 100 * 365 * 24 * 60 * 60

// ValidateLockDuration rejects negative durations and durations above MaxLockDuration
func ValidateLockDuration(d int64) error {
	if d < 0 {
		return errors.Wrapf(ErrInvalidDuration, "%d is negative", d)
	}
	if d > MaxLockDuration {
		return errors.Wrapf(ErrInvalidDuration, "%d exceeds %d", d, MaxLockDuration)
	}
	return nil
}

// LockTicket freezes part of a holder's balance for a bounded duration
type LockTicket struct {
	Locker   string   `json:"locker"`
	Amount   math.Int `json:"amount"`
	Start    int64    `json:"start"`
	Duration int64    `json:"duration"`
}

// ApproveLock pre-authorizes a locker to open a lock ticket
type ApproveLock struct {
	Locker      string   `json:"locker"`
	Amount      math.Int `json:"amount"`
	MaxDuration int64    `json:"max_duration"`
}

// EmptyLockTicket returns a cleared ticket
func EmptyLockTicket() LockTicket {
	return LockTicket{Amount: math.ZeroInt()}
}

// EmptyApproveLock returns a cleared approval
func EmptyApproveLock() ApproveLock {
	return ApproveLock{Amount: math.ZeroInt()}
}

// End returns the last second the ticket holds, saturating at the int64 maximum
func (t LockTicket) End() int64 {
	if t.Duration > stdmath.MaxInt64-t.Start {
		return stdmath.MaxInt64
	}
	return t.Start + t.Duration
}

// IsExpired returns true once now is past the end of the lock duration
func (t LockTicket) IsExpired(now int64) bool {
	return now > t.End()
}

// IsActive returns true while the ticket holds a non-zero amount and has not expired
func (t LockTicket) IsActive(now int64) bool {
	if t.Amount.IsNil() || !t.Amount.IsPositive() {
		return false
	}
	return !t.IsExpired(now)
}

// LockedAmount returns the amount frozen at now
func (t LockTicket) LockedAmount(now int64) math.Int {
	if !t.IsActive(now) {
		return math.ZeroInt()
	}
	return t.Amount
}

// IsEmpty returns true if the ticket was never opened or has been cleared
func (t LockTicket) IsEmpty() bool {
	return t.Locker == "" && (t.Amount.IsNil() || t.Amount.IsZero())
}
