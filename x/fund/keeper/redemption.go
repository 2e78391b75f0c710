package keeper

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// RedemptionAll redeems every share holder owns
func (k *Keeper) RedemptionAll(ctx sdk.Context, sender string, fundID uint64, holder string) (math.Int, error) {
	if holder == "" {
		holder = sender
	}
	return k.redeem(ctx, sender, fundID, holder, k.BalanceOf(ctx, fundID, holder))
}

// RedemptionByShare redeems share of holder's shares
func (k *Keeper) RedemptionByShare(ctx sdk.Context, sender string, fundID uint64, holder string, share math.Int) (math.Int, error) {
	if holder == "" {
		holder = sender
	}
	return k.redeem(ctx, sender, fundID, holder, share)
}

// redeem burns share of holder's shares and pays out its part of the
// redemption base. A sender other than the holder spends its allowance.
func (k *Keeper) redeem(ctx sdk.Context, sender string, fundID uint64, holder string, share math.Int) (math.Int, error) {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return math.Int{}, err
	}
	if err := types.CheckOperation(types.OpRedeem, fund.Status); err != nil {
		return math.Int{}, err
	}
	if !share.IsPositive() {
		return math.Int{}, errors.Wrap(types.ErrNotRedeemable, "nothing to redeem")
	}
	if sender != holder && k.GetAllowance(ctx, fundID, holder, sender).IsZero() {
		return math.Int{}, errors.Wrapf(types.ErrNotShareOwner, "%s", sender)
	}
	balance := k.BalanceOf(ctx, fundID, holder)
	if share.GT(balance) {
		return math.Int{}, errors.Wrapf(types.ErrRedeemExceedsShare, "share %s, balance %s", share, balance)
	}

	base := types.RedemptionBase(fund)
	payout, err := types.RedemptionPayout(share, base, k.TotalSupply(ctx, fundID))
	if err != nil {
		return math.Int{}, err
	}

	if sender == holder {
		err = k.Burn(ctx, fundID, holder, share)
	} else {
		err = k.BurnFrom(ctx, fundID, sender, holder, share)
	}
	if err != nil {
		return math.Int{}, err
	}

	if fund.Status == types.StatusSalesFailed {
		fund.InitialTotalValue = base.Sub(payout)
	} else {
		fund.RedemptionTotalValue = base.Sub(payout)
	}
	fund.TotalSalesShare = fund.TotalSalesShare.Sub(share)
	k.SetFund(ctx, fund)

	denom := fund.Config.Raise.RaiseDenom
	if err := k.sendFromEscrow(ctx, fundID, holder, coin(denom, payout)); err != nil {
		return math.Int{}, err
	}
	if err := k.recordHistory(ctx, fundID, holder, types.HistoryKindRedemption, coin(denom, payout)); err != nil {
		return math.Int{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRedemptionFund,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyUser, holder),
			sdk.NewAttribute(types.AttributeKeySpender, sender),
			sdk.NewAttribute(types.AttributeKeyShare, share.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, payout.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, fund.Status.String()),
		),
	)

	k.logger.Info("fund shares redeemed", "fund_id", fundID, "holder", holder, "share", share.String(), "payout", payout.String())
	return payout, nil
}
