package keeper

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// ApproveLock lets locker freeze up to amount of holder's shares for at
// most maxDuration seconds. A new approval replaces the previous one.
func (k *Keeper) ApproveLock(ctx sdk.Context, fundID uint64, holder, locker string, amount math.Int, maxDuration int64) error {
	if amount.IsNegative() {
		return errors.Wrap(types.ErrInvalidAmount, "approval cannot be negative")
	}
	if err := types.ValidateLockDuration(maxDuration); err != nil {
		return err
	}
	if _, err := k.mustGetShareToken(ctx, fundID); err != nil {
		return err
	}

	h := k.GetHolding(ctx, fundID, holder)
	if amount.GT(h.Balance) {
		return errors.Wrapf(types.ErrApproveExceedsBalance, "amount %s, balance %s", amount, h.Balance)
	}
	now := ctx.BlockTime().Unix()
	if h.LockTicket.IsActive(now) {
		return errors.Wrapf(types.ErrPriorLockOutstanding, "locked %s until %d", h.LockTicket.Amount, h.LockTicket.End())
	}

	h.ApproveLock = types.ApproveLock{Locker: locker, Amount: amount, MaxDuration: maxDuration}
	k.SetHolding(ctx, fundID, holder, h)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApproveLock,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyApprover, holder),
			sdk.NewAttribute(types.AttributeKeyLocker, locker),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyDuration, formatInt64(maxDuration)),
		),
	)
	return nil
}

// Lock opens a lock ticket on holder's shares. Only the approved locker may
// call it and the approved amount is consumed.
func (k *Keeper) Lock(ctx sdk.Context, fundID uint64, locker, holder string, amount math.Int, duration int64) error {
	if !amount.IsPositive() {
		return errors.Wrap(types.ErrInvalidAmount, "lock amount must be positive")
	}
	if err := types.ValidateLockDuration(duration); err != nil {
		return err
	}
	if _, err := k.mustGetShareToken(ctx, fundID); err != nil {
		return err
	}

	h := k.GetHolding(ctx, fundID, holder)
	if err := k.requireUnlocked(ctx, h, amount); err != nil {
		return err
	}
	approval := h.ApproveLock
	if approval.Locker == "" || approval.Locker != locker {
		return errors.Wrapf(types.ErrNotLocker, "%s", locker)
	}
	if amount.GT(approval.Amount) {
		return errors.Wrapf(types.ErrExceedsApprovedAmount, "amount %s, approved %s", amount, approval.Amount)
	}
	if duration > approval.MaxDuration {
		return errors.Wrapf(types.ErrExceedsApprovedDuration, "duration %d, approved %d", duration, approval.MaxDuration)
	}
	now := ctx.BlockTime().Unix()
	if h.LockTicket.IsActive(now) {
		return errors.Wrap(types.ErrNotLockingNow, "a lock ticket is already open")
	}

	h.ApproveLock.Amount = approval.Amount.Sub(amount)
	h.LockTicket = types.LockTicket{Locker: locker, Amount: amount, Start: now, Duration: duration}
	k.SetHolding(ctx, fundID, holder, h)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLock,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyLocker, locker),
			sdk.NewAttribute(types.AttributeKeyUser, holder),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyDuration, formatInt64(duration)),
		),
	)
	return nil
}

// IncreaseLockAmount adds extra shares to an active lock ticket
func (k *Keeper) IncreaseLockAmount(ctx sdk.Context, fundID uint64, locker, holder string, extra math.Int) error {
	if !extra.IsPositive() {
		return errors.Wrap(types.ErrInvalidAmount, "extra amount must be positive")
	}
	if _, err := k.mustGetShareToken(ctx, fundID); err != nil {
		return err
	}

	h := k.GetHolding(ctx, fundID, holder)
	ticket := h.LockTicket
	if ticket.Locker == "" || ticket.Locker != locker {
		return errors.Wrapf(types.ErrNotLocker, "%s", locker)
	}
	now := ctx.BlockTime().Unix()
	if !ticket.IsActive(now) {
		return errors.Wrap(types.ErrNotLockingNow, "no active lock ticket")
	}
	if extra.GT(h.ApproveLock.Amount) {
		return errors.Wrapf(types.ErrExceedsApprovedAmount, "extra %s, approved %s", extra, h.ApproveLock.Amount)
	}
	total := ticket.Amount.Add(extra)
	if total.GT(h.Balance) {
		return errors.Wrapf(types.ErrInsufficientUnlockedBalance, "locked %s, balance %s", total, h.Balance)
	}

	h.ApproveLock.Amount = h.ApproveLock.Amount.Sub(extra)
	h.LockTicket.Amount = total
	k.SetHolding(ctx, fundID, holder, h)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeIncreaseLockAmount,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyLocker, locker),
			sdk.NewAttribute(types.AttributeKeyUser, holder),
			sdk.NewAttribute(types.AttributeKeyAmount, extra.String()),
		),
	)
	return nil
}

// Unlock releases amount from holder's lock ticket. An expired ticket is
// cleared entirely whatever amount is given.
func (k *Keeper) Unlock(ctx sdk.Context, fundID uint64, locker, holder string, amount math.Int) error {
	if amount.IsNegative() {
		return errors.Wrap(types.ErrInvalidAmount, "unlock amount cannot be negative")
	}
	if _, err := k.mustGetShareToken(ctx, fundID); err != nil {
		return err
	}

	h := k.GetHolding(ctx, fundID, holder)
	ticket := h.LockTicket
	if ticket.Locker == "" || ticket.Locker != locker {
		return errors.Wrapf(types.ErrNotLocker, "%s", locker)
	}

	released := amount
	switch {
	case ticket.IsExpired(ctx.BlockTime().Unix()):
		released = ticket.Amount
		h.LockTicket = types.EmptyLockTicket()
	case amount.GT(ticket.Amount):
		return errors.Wrapf(types.ErrExceedsLockedAmount, "amount %s, locked %s", amount, ticket.Amount)
	default:
		h.LockTicket.Amount = ticket.Amount.Sub(amount)
		if h.LockTicket.Amount.IsZero() {
			h.LockTicket = types.EmptyLockTicket()
		}
	}
	k.SetHolding(ctx, fundID, holder, h)

	k.emitUnlock(ctx, fundID, locker, holder, released)
	return nil
}

// UnlockAll clears holder's lock ticket
func (k *Keeper) UnlockAll(ctx sdk.Context, fundID uint64, locker, holder string) error {
	if _, err := k.mustGetShareToken(ctx, fundID); err != nil {
		return err
	}

	h := k.GetHolding(ctx, fundID, holder)
	ticket := h.LockTicket
	if ticket.Locker == "" || ticket.Locker != locker {
		return errors.Wrapf(types.ErrNotLocker, "%s", locker)
	}
	h.LockTicket = types.EmptyLockTicket()
	k.SetHolding(ctx, fundID, holder, h)

	k.emitUnlock(ctx, fundID, locker, holder, ticket.Amount)
	return nil
}

func (k *Keeper) emitUnlock(ctx sdk.Context, fundID uint64, locker, holder string, amount math.Int) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnlock,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyLocker, locker),
			sdk.NewAttribute(types.AttributeKeyUser, holder),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}

// LockedAmountOf returns the frozen part of holder's balance
func (k *Keeper) LockedAmountOf(ctx sdk.Context, fundID uint64, holder string) math.Int {
	return k.GetHolding(ctx, fundID, holder).LockedAmount(ctx.BlockTime().Unix())
}

// LockablesOf returns the part of holder's balance that can still move or be locked
func (k *Keeper) LockablesOf(ctx sdk.Context, fundID uint64, holder string) math.Int {
	return k.GetHolding(ctx, fundID, holder).Lockables(ctx.BlockTime().Unix())
}
