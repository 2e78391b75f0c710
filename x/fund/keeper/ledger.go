package keeper

import (
	"strconv"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// ============ Share Ledger Storage ============

// GetShareToken returns the share token of a fund
func (k *Keeper) GetShareToken(ctx sdk.Context, fundID uint64) (*types.ShareToken, bool) {
	var token types.ShareToken
	if !k.getJSON(ctx, types.ShareTokenKey(fundID), &token) {
		return nil, false
	}
	return &token, true
}

// SetShareToken saves the share token of a fund
func (k *Keeper) SetShareToken(ctx sdk.Context, token *types.ShareToken) {
	k.setJSON(ctx, types.ShareTokenKey(token.FundID), token)
}

func (k *Keeper) mustGetShareToken(ctx sdk.Context, fundID uint64) (*types.ShareToken, error) {
	token, found := k.GetShareToken(ctx, fundID)
	if !found {
		return nil, errors.Wrapf(types.ErrFundNotFound, "share token of fund %d", fundID)
	}
	return token, nil
}

// GetHolding returns the holding of holder, or an empty one
func (k *Keeper) GetHolding(ctx sdk.Context, fundID uint64, holder string) *types.ShareHolding {
	var h types.ShareHolding
	if !k.getJSON(ctx, types.HoldingKey(fundID, holder), &h) {
		return types.NewShareHolding()
	}
	return &h
}

// SetHolding saves a holding, deleting it once nothing is left to track
func (k *Keeper) SetHolding(ctx sdk.Context, fundID uint64, holder string, h *types.ShareHolding) {
	if h.IsEmpty() {
		k.GetStore(ctx).Delete(types.HoldingKey(fundID, holder))
		return
	}
	k.setJSON(ctx, types.HoldingKey(fundID, holder), h)
}

// GetAccumulator returns accBonusPerTokenX of denom
func (k *Keeper) GetAccumulator(ctx sdk.Context, fundID uint64, denom string) math.Int {
	var acc types.BonusAccumulator
	if !k.getJSON(ctx, types.AccumulatorKey(fundID, denom), &acc) {
		return math.ZeroInt()
	}
	return acc.AccBonusPerTokenX
}

func (k *Keeper) setAccumulator(ctx sdk.Context, fundID uint64, denom string, accX math.Int) {
	k.setJSON(ctx, types.AccumulatorKey(fundID, denom), types.BonusAccumulator{Denom: denom, AccBonusPerTokenX: accX})
}

// BalanceOf returns the share balance of holder
func (k *Keeper) BalanceOf(ctx sdk.Context, fundID uint64, holder string) math.Int {
	return k.GetHolding(ctx, fundID, holder).Balance
}

// TotalSupply returns the outstanding shares of a fund
func (k *Keeper) TotalSupply(ctx sdk.Context, fundID uint64) math.Int {
	token, found := k.GetShareToken(ctx, fundID)
	if !found {
		return math.ZeroInt()
	}
	return token.TotalSupply
}

// GetAllowance returns how many shares spender may move for owner
func (k *Keeper) GetAllowance(ctx sdk.Context, fundID uint64, owner, spender string) math.Int {
	var amount math.Int
	if !k.getJSON(ctx, types.AllowanceKey(fundID, owner, spender), &amount) {
		return math.ZeroInt()
	}
	return amount
}

func (k *Keeper) setAllowance(ctx sdk.Context, fundID uint64, owner, spender string, amount math.Int) {
	if amount.IsZero() {
		k.GetStore(ctx).Delete(types.AllowanceKey(fundID, owner, spender))
		return
	}
	k.setJSON(ctx, types.AllowanceKey(fundID, owner, spender), amount)
}

// ============ Settle-Then-Move Hooks ============

// owedBonus returns the bonus accrued by h since its last snapshot
func (k *Keeper) owedBonus(ctx sdk.Context, token *types.ShareToken, h *types.ShareHolding) (sdk.Coins, error) {
	owed := sdk.NewCoins()
	for _, denom := range token.BonusDenoms {
		pending, err := types.PendingBonus(h.Balance, k.GetAccumulator(ctx, token.FundID, denom), h.DebtOf(denom))
		if err != nil {
			return nil, err
		}
		owed = owed.Add(coin(denom, pending)...)
	}
	return owed, nil
}

// snapshotDebts resets every bonus debt of h to its current balance
func (k *Keeper) snapshotDebts(ctx sdk.Context, token *types.ShareToken, h *types.ShareHolding) error {
	for _, denom := range token.BonusDenoms {
		debt, err := types.DebtFor(h.Balance, k.GetAccumulator(ctx, token.FundID, denom))
		if err != nil {
			return err
		}
		h.SetDebt(denom, debt)
	}
	return nil
}

// payBonus sends settled bonus from the bonus pool to holder
func (k *Keeper) payBonus(ctx sdk.Context, fundID uint64, holder string, owed sdk.Coins) error {
	if owed.IsZero() {
		return nil
	}
	to, err := accAddress(holder)
	if err != nil {
		return errors.Wrapf(types.ErrInvalidAddress, "%s: %s", holder, err)
	}
	if err := k.bankKeeper.SendCoins(ctx, types.BonusPoolAddress(fundID), to, owed); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDrawBonus,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyUser, holder),
			sdk.NewAttribute(types.AttributeKeyAmount, owed.String()),
		),
	)
	return nil
}

func (k *Keeper) requireUnlocked(ctx sdk.Context, h *types.ShareHolding, amount math.Int) error {
	free := h.Lockables(ctx.BlockTime().Unix())
	if amount.GT(free) {
		return errors.Wrapf(types.ErrInsufficientUnlockedBalance, "amount %s, unlocked %s", amount, free)
	}
	return nil
}

func (k *Keeper) emitShareTransfer(ctx sdk.Context, fundID uint64, from, to string, amount math.Int) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeShareTransfer,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyFrom, from),
			sdk.NewAttribute(types.AttributeKeyTo, to),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}

// ============ Balance Mutations ============

// Mint creates shares for holder
func (k *Keeper) Mint(ctx sdk.Context, fundID uint64, holder string, amount math.Int) error {
	if !amount.IsPositive() {
		return errors.Wrap(types.ErrInvalidAmount, "mint amount must be positive")
	}
	token, err := k.mustGetShareToken(ctx, fundID)
	if err != nil {
		return err
	}

	h := k.GetHolding(ctx, fundID, holder)
	owed, err := k.owedBonus(ctx, token, h)
	if err != nil {
		return err
	}
	h.Balance = h.Balance.Add(amount)
	token.TotalSupply = token.TotalSupply.Add(amount)
	if err := k.snapshotDebts(ctx, token, h); err != nil {
		return err
	}
	k.SetHolding(ctx, fundID, holder, h)
	k.SetShareToken(ctx, token)

	k.emitShareTransfer(ctx, fundID, "", holder, amount)
	return k.payBonus(ctx, fundID, holder, owed)
}

// Burn destroys unlocked shares of holder
func (k *Keeper) Burn(ctx sdk.Context, fundID uint64, holder string, amount math.Int) error {
	if !amount.IsPositive() {
		return errors.Wrap(types.ErrInvalidAmount, "burn amount must be positive")
	}
	token, err := k.mustGetShareToken(ctx, fundID)
	if err != nil {
		return err
	}

	h := k.GetHolding(ctx, fundID, holder)
	if err := k.requireUnlocked(ctx, h, amount); err != nil {
		return err
	}
	owed, err := k.owedBonus(ctx, token, h)
	if err != nil {
		return err
	}
	h.Balance = h.Balance.Sub(amount)
	token.TotalSupply = token.TotalSupply.Sub(amount)
	if err := k.snapshotDebts(ctx, token, h); err != nil {
		return err
	}
	k.SetHolding(ctx, fundID, holder, h)
	k.SetShareToken(ctx, token)

	k.emitShareTransfer(ctx, fundID, holder, "", amount)
	return k.payBonus(ctx, fundID, holder, owed)
}

// Transfer moves unlocked shares, settling bonus on both sides first
func (k *Keeper) Transfer(ctx sdk.Context, fundID uint64, from, to string, amount math.Int) error {
	if !amount.IsPositive() {
		return errors.Wrap(types.ErrInvalidAmount, "transfer amount must be positive")
	}
	token, err := k.mustGetShareToken(ctx, fundID)
	if err != nil {
		return err
	}

	sender := k.GetHolding(ctx, fundID, from)
	if err := k.requireUnlocked(ctx, sender, amount); err != nil {
		return err
	}
	if from == to {
		_, err := k.DrawBonus(ctx, fundID, from)
		return err
	}

	recipient := k.GetHolding(ctx, fundID, to)
	senderOwed, err := k.owedBonus(ctx, token, sender)
	if err != nil {
		return err
	}
	recipientOwed, err := k.owedBonus(ctx, token, recipient)
	if err != nil {
		return err
	}

	sender.Balance = sender.Balance.Sub(amount)
	recipient.Balance = recipient.Balance.Add(amount)
	if err := k.snapshotDebts(ctx, token, sender); err != nil {
		return err
	}
	if err := k.snapshotDebts(ctx, token, recipient); err != nil {
		return err
	}
	k.SetHolding(ctx, fundID, from, sender)
	k.SetHolding(ctx, fundID, to, recipient)

	k.emitShareTransfer(ctx, fundID, from, to, amount)
	if err := k.payBonus(ctx, fundID, from, senderOwed); err != nil {
		return err
	}
	return k.payBonus(ctx, fundID, to, recipientOwed)
}

// Approve sets the number of shares spender may move on behalf of owner
func (k *Keeper) Approve(ctx sdk.Context, fundID uint64, owner, spender string, amount math.Int) error {
	if amount.IsNegative() {
		return errors.Wrap(types.ErrInvalidAmount, "allowance cannot be negative")
	}
	if _, err := k.mustGetShareToken(ctx, fundID); err != nil {
		return err
	}
	k.setAllowance(ctx, fundID, owner, spender, amount)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeShareApproval,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeySpender, spender),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

func (k *Keeper) spendAllowance(ctx sdk.Context, fundID uint64, owner, spender string, amount math.Int) error {
	allowance := k.GetAllowance(ctx, fundID, owner, spender)
	if amount.GT(allowance) {
		return errors.Wrapf(types.ErrInsufficientAllowance, "allowance %s, requested %s", allowance, amount)
	}
	k.setAllowance(ctx, fundID, owner, spender, allowance.Sub(amount))
	return nil
}

// TransferFrom moves shares of from using the spender's allowance
func (k *Keeper) TransferFrom(ctx sdk.Context, fundID uint64, spender, from, to string, amount math.Int) error {
	if err := k.spendAllowance(ctx, fundID, from, spender, amount); err != nil {
		return err
	}
	return k.Transfer(ctx, fundID, from, to, amount)
}

// BurnFrom destroys shares of holder using the spender's allowance
func (k *Keeper) BurnFrom(ctx sdk.Context, fundID uint64, spender, holder string, amount math.Int) error {
	if err := k.spendAllowance(ctx, fundID, holder, spender, amount); err != nil {
		return err
	}
	return k.Burn(ctx, fundID, holder, amount)
}

// ============ Bonus Distribution ============

// OfferBonus pulls amount of denom from the payer into the bonus pool and
// credits it to every outstanding share. It is only reachable from fund
// operations.
func (k *Keeper) OfferBonus(ctx sdk.Context, fundID uint64, from sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	if amount.IsNegative() {
		return errors.Wrap(types.ErrInvalidAmount, "bonus amount cannot be negative")
	}
	token, err := k.mustGetShareToken(ctx, fundID)
	if err != nil {
		return err
	}

	inc, err := types.AccumulatorIncrement(amount, token.TotalSupply)
	if err != nil {
		return err
	}
	index, err := token.RegisterBonusDenom(denom, k.GetParams(ctx).MaxBonusTokens)
	if err != nil {
		return err
	}
	k.setAccumulator(ctx, fundID, denom, k.GetAccumulator(ctx, fundID, denom).Add(inc))
	k.SetShareToken(ctx, token)

	if err := k.bankKeeper.SendCoins(ctx, from, types.BonusPoolAddress(fundID), coin(denom, amount)); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOfferBonus,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyBonusTokenIndex, strconv.Itoa(index)),
		),
	)
	return nil
}

// DrawBonus pays out the pending bonus of holder without moving shares
func (k *Keeper) DrawBonus(ctx sdk.Context, fundID uint64, holder string) (sdk.Coins, error) {
	token, err := k.mustGetShareToken(ctx, fundID)
	if err != nil {
		return nil, err
	}
	h := k.GetHolding(ctx, fundID, holder)
	owed, err := k.owedBonus(ctx, token, h)
	if err != nil {
		return nil, err
	}
	if err := k.snapshotDebts(ctx, token, h); err != nil {
		return nil, err
	}
	k.SetHolding(ctx, fundID, holder, h)

	if err := k.payBonus(ctx, fundID, holder, owed); err != nil {
		return nil, err
	}
	return owed, nil
}

// PendingBonus returns the bonus holder could draw now, one coin per
// registered bonus denom in registration order
func (k *Keeper) PendingBonus(ctx sdk.Context, fundID uint64, holder string) ([]sdk.Coin, error) {
	token, err := k.mustGetShareToken(ctx, fundID)
	if err != nil {
		return nil, err
	}
	h := k.GetHolding(ctx, fundID, holder)
	out := make([]sdk.Coin, 0, len(token.BonusDenoms))
	for _, denom := range token.BonusDenoms {
		pending, err := types.PendingBonus(h.Balance, k.GetAccumulator(ctx, fundID, denom), h.DebtOf(denom))
		if err != nil {
			return nil, err
		}
		out = append(out, sdk.NewCoin(denom, pending))
	}
	return out, nil
}
