package keeper

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// CreateFund registers a new fund waiting for its sale to start. The owner
// is the fund sponsor and holds admin rights from creation.
func (k *Keeper) CreateFund(ctx sdk.Context, owner, multisig string, config types.FundConfig) (uint64, error) {
	if _, err := accAddress(owner); err != nil {
		return 0, errors.Wrapf(types.ErrInvalidAddress, "owner: %s", err)
	}
	if err := config.Validate(); err != nil {
		return 0, err
	}

	fundID := k.nextSequence(ctx, types.FundSequenceKey)
	fund := types.NewFund(fundID, owner, multisig, config, ctx.BlockTime().Unix())
	k.SetFund(ctx, fund)
	k.SetShareToken(ctx, types.NewShareToken(fundID, config.Raise.RaiseDenom))
	k.grantRole(ctx, fundID, types.RoleAdmin, owner)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreateFund,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyDenom, config.Raise.RaiseDenom),
			sdk.NewAttribute(types.AttributeKeyPolicy, config.InvestPolicy),
			sdk.NewAttribute(types.AttributeKeyPolicyAccount, types.PolicyAddress(fundID, config.InvestPolicy).String()),
		),
	)

	k.logger.Info("fund created", "fund_id", fundID, "owner", owner, "name", config.Name)
	return fundID, nil
}

// ResetFundData replaces the whole config before the sale starts
func (k *Keeper) ResetFundData(ctx sdk.Context, owner string, fundID uint64, config types.FundConfig) error {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return err
	}
	if err := k.requireOwner(fund, owner); err != nil {
		return err
	}
	if err := types.CheckOperation(types.OpResetFundData, fund.Status); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	fund.Config = config
	k.SetFund(ctx, fund)
	// nothing has been minted yet, so the token can be rebuilt on the new denom
	k.SetShareToken(ctx, types.NewShareToken(fundID, config.Raise.RaiseDenom))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResetFundData,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
		),
	)
	return nil
}

// StartFundSales opens the sale and makes every manager an admin
func (k *Keeper) StartFundSales(ctx sdk.Context, owner string, fundID uint64) error {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return err
	}
	if err := k.requireOwner(fund, owner); err != nil {
		return err
	}
	if fund.Status, err = types.Transition(types.OpStartSales, fund.Status, types.StatusOnSale); err != nil {
		return err
	}

	fund.SalesPeriodStartTime = ctx.BlockTime().Unix()
	k.SetFund(ctx, fund)
	for _, manager := range fund.Config.Manage.Managers {
		k.grantRole(ctx, fundID, types.RoleAdmin, manager)
	}

	k.emitStatus(ctx, types.EventTypeStartFundSales, fund)
	return nil
}

// BuyFund sells share to buyer at the current net value and returns the cost
func (k *Keeper) BuyFund(ctx sdk.Context, buyer string, fundID uint64, share math.Int) (math.Int, error) {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return math.Int{}, err
	}
	if err := types.CheckOperation(types.OpBuy, fund.Status); err != nil {
		return math.Int{}, err
	}
	if !share.IsPositive() {
		return math.Int{}, errors.Wrap(types.ErrInvalidAmount, "share must be positive")
	}
	buyerAddr, err := accAddress(buyer)
	if err != nil {
		return math.Int{}, errors.Wrapf(types.ErrInvalidAddress, "buyer: %s", err)
	}

	netValue := fund.Config.Raise.InitialNetValue
	if fund.Status == types.StatusRedemption {
		if !fund.IsPerpetual() {
			return math.Int{}, errors.Wrap(types.ErrNotBuyable, "fund is not perpetual")
		}
		netValue = fund.RedemptionNetValue
	}
	if err := checkPurchase(fund, share); err != nil {
		return math.Int{}, err
	}
	cost, err := share.SafeMul(netValue)
	if err != nil {
		return math.Int{}, errors.Wrap(types.ErrArithmeticOverflow, err.Error())
	}

	fund.TotalSalesShare = fund.TotalSalesShare.Add(share)
	if fund.Status == types.StatusRedemption {
		fund.RedemptionTotalValue = fund.RedemptionTotalValue.Add(cost)
	}
	k.SetFund(ctx, fund)
	if err := k.Mint(ctx, fundID, buyer, share); err != nil {
		return math.Int{}, err
	}

	denom := fund.Config.Raise.RaiseDenom
	if err := k.bankKeeper.SendCoins(ctx, buyerAddr, types.EscrowAddress(fundID), coin(denom, cost)); err != nil {
		return math.Int{}, err
	}
	if err := k.recordHistory(ctx, fundID, buyer, types.HistoryKindBuy, coin(denom, cost)); err != nil {
		return math.Int{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBuyFund,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyUser, buyer),
			sdk.NewAttribute(types.AttributeKeyShare, share.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, cost.String()),
			sdk.NewAttribute(types.AttributeKeyNetValue, netValue.String()),
		),
	)

	k.logger.Info("fund shares bought", "fund_id", fundID, "buyer", buyer, "share", share.String(), "cost", cost.String())
	return cost, nil
}

// checkPurchase enforces the per-purchase bounds. Under a hard top the last
// buyer must take exactly the remaining shares, both during the sale and in
// perpetual redemption.
func checkPurchase(fund *types.Fund, share math.Int) error {
	raise := fund.Config.Raise
	if share.GT(raise.MaxSharePurchase) {
		return errors.Wrapf(types.ErrAboveMaxPurchase, "share %s, max %s", share, raise.MaxSharePurchase)
	}
	if raise.IsHardTop {
		remaining := fund.RemainingShare()
		if remaining.LT(raise.MinSharePurchase) || share.GT(remaining) {
			if !share.Equal(remaining) {
				return errors.Wrapf(types.ErrRemainingShareMismatch, "share %s, remaining %s", share, remaining)
			}
			return nil
		}
	}
	if share.LT(raise.MinSharePurchase) {
		return errors.Wrapf(types.ErrBelowMinPurchase, "share %s, min %s", share, raise.MinSharePurchase)
	}
	return nil
}

// CloseFundSales ends the sale. A fund that reached its minimum raise is
// closed and its capital forwarded to the invest policy; otherwise it fails
// and the capital stays in escrow for refunds.
func (k *Keeper) CloseFundSales(ctx sdk.Context, admin string, fundID uint64) (types.FundStatus, error) {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return 0, err
	}
	if err := k.requireAdmin(ctx, fund, admin); err != nil {
		return fund.Status, err
	}
	if err := types.CheckOperation(types.OpCloseSales, fund.Status); err != nil {
		return fund.Status, err
	}
	now := ctx.BlockTime().Unix()
	if !types.Elapsed(fund.SalesPeriodStartTime, fund.Config.Raise.RaisePeriod, now) {
		return fund.Status, errors.Wrapf(types.ErrSalePeriodNotElapsed, "sale ends at %d", fund.SalesPeriodStartTime+fund.Config.Raise.RaisePeriod)
	}

	raise := fund.Config.Raise
	initialTotal, err := fund.TotalSalesShare.SafeMul(raise.InitialNetValue)
	if err != nil {
		return fund.Status, errors.Wrap(types.ErrArithmeticOverflow, err.Error())
	}
	fund.InitialTotalValue = initialTotal

	if fund.TotalSalesShare.LT(raise.MinRaiseShare) {
		fund.Status, _ = types.Transition(types.OpCloseSales, fund.Status, types.StatusSalesFailed)
		k.SetFund(ctx, fund)
		k.emitStatus(ctx, types.EventTypeFundSalesFailed, fund)
		return fund.Status, nil
	}

	fund.Status, _ = types.Transition(types.OpCloseSales, fund.Status, types.StatusClosed)
	fund.ClosedPeriodStartTime = now
	fund.LastBonusTime = now
	fund.LastBonusAfterNetValue = raise.InitialNetValue
	k.SetFund(ctx, fund)

	if err := k.forwardEscrow(ctx, fund); err != nil {
		return fund.Status, err
	}
	k.emitStatus(ctx, types.EventTypeStartFundClosed, fund)
	return fund.Status, nil
}

// StartFundSettlement pauses the fund once the closed period is over so the
// invest policy can unwind
func (k *Keeper) StartFundSettlement(ctx sdk.Context, admin string, fundID uint64) error {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(ctx, fund, admin); err != nil {
		return err
	}
	if err := types.CheckOperation(types.OpStartSettlement, fund.Status); err != nil {
		return err
	}
	if !types.Elapsed(fund.ClosedPeriodStartTime, fund.Config.ClosedPeriod, ctx.BlockTime().Unix()) {
		return errors.Wrapf(types.ErrClosedPeriodNotElapsed, "closed period ends at %d", fund.ClosedPeriodStartTime+fund.Config.ClosedPeriod)
	}

	fund.Status, _ = types.Transition(types.OpStartSettlement, fund.Status, types.StatusSettlement)
	k.SetFund(ctx, fund)

	k.emitStatus(ctx, types.EventTypeStartFundSettlement, fund)
	return nil
}

// FundSettlement takes the final value from the invest policy, pays the
// accrued management fee and fixes the redemption net value
func (k *Keeper) FundSettlement(ctx sdk.Context, admin string, fundID uint64) (math.Int, error) {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.requireAdmin(ctx, fund, admin); err != nil {
		return math.Int{}, err
	}
	if fund.Status, err = types.Transition(types.OpSettle, fund.Status, types.StatusRedemption); err != nil {
		return math.Int{}, err
	}
	policy := policyAccount(fund)

	denom := fund.Config.Raise.RaiseDenom
	value, err := k.investKeeper.Settle(ctx, policy, denom)
	if err != nil {
		return math.Int{}, err
	}
	fee, err := k.GetManageFee(ctx, fund)
	if err != nil {
		return math.Int{}, err
	}
	if fee.GT(value) {
		fee = value
	}

	fund.RedemptionTotalValue = value.Sub(fee)
	fund.RedemptionNetValue = math.ZeroInt()
	if fund.TotalSalesShare.IsPositive() {
		fund.RedemptionNetValue = fund.RedemptionTotalValue.Quo(fund.TotalSalesShare)
	}
	fund.RedemptionPeriodStartTime = ctx.BlockTime().Unix()
	k.SetFund(ctx, fund)

	escrow := types.EscrowAddress(fundID)
	if value.IsPositive() {
		if err := k.investKeeper.Withdraw(ctx, policy, escrow, sdk.NewCoin(denom, value)); err != nil {
			return math.Int{}, err
		}
	}
	if err := k.payManageFee(ctx, fund, fee); err != nil {
		return math.Int{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundSettlement,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyTotalValue, value.String()),
			sdk.NewAttribute(types.AttributeKeyManageFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyNetValue, fund.RedemptionNetValue.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, fund.Status.String()),
		),
	)

	k.logger.Info("fund settled", "fund_id", fundID, "total_value", value.String(), "manage_fee", fee.String(), "net_value", fund.RedemptionNetValue.String())
	return fund.RedemptionNetValue, nil
}

// payManageFee splits fee equally between the managers other than the
// sponsor, or pays it all to the sponsor when there are none
func (k *Keeper) payManageFee(ctx sdk.Context, fund *types.Fund, fee math.Int) error {
	if !fee.IsPositive() {
		return nil
	}
	denom := fund.Config.Raise.RaiseDenom
	recipients := fund.BonusManagers()
	if len(recipients) == 0 {
		recipients = []string{fund.Sponsor()}
	}
	each := fee.QuoRaw(int64(len(recipients)))
	for _, recipient := range recipients {
		if err := k.sendFromEscrow(ctx, fund.ID, recipient, coin(denom, each)); err != nil {
			return err
		}
	}
	if rest := fee.Sub(each.MulRaw(int64(len(recipients)))); rest.IsPositive() {
		k.logger.Warn("manage fee remainder kept in escrow", "fund_id", fund.ID, "remainder", rest.String())
	}
	return nil
}

// StartFundLiquidation moves a closed fund into liquidation on behalf of governance
func (k *Keeper) StartFundLiquidation(ctx sdk.Context, caller string, fundID uint64) error {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return err
	}
	if err := k.requireInternal(ctx, fund, caller); err != nil {
		return err
	}
	if fund.Status, err = types.Transition(types.OpStartLiquidation, fund.Status, types.StatusLiquidation); err != nil {
		return err
	}
	k.SetFund(ctx, fund)

	k.emitStatus(ctx, types.EventTypeStartFundLiquidation, fund)
	return nil
}

// FundContinuation reopens a perpetual fund for another closed period at
// the redemption net value, applying any scheduled invest policy change
func (k *Keeper) FundContinuation(ctx sdk.Context, admin string, fundID uint64) error {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(ctx, fund, admin); err != nil {
		return err
	}
	if err := types.CheckOperation(types.OpContinuation, fund.Status); err != nil {
		return err
	}
	if !fund.IsPerpetual() {
		return types.ErrNotPerpetual
	}
	now := ctx.BlockTime().Unix()
	if !types.Elapsed(fund.RedemptionPeriodStartTime, fund.Config.RedemptionPeriod, now) {
		return errors.Wrapf(types.ErrRedemptionPeriodNotElapsed, "redemption period ends at %d", fund.RedemptionPeriodStartTime+fund.Config.RedemptionPeriod)
	}

	initialTotal, err := fund.TotalSalesShare.SafeMul(fund.RedemptionNetValue)
	if err != nil {
		return errors.Wrap(types.ErrArithmeticOverflow, err.Error())
	}
	fund.InitialTotalValue = initialTotal
	fund.LastBonusAfterNetValue = fund.RedemptionNetValue
	fund.ClosedPeriodStartTime = now
	fund.LastBonusTime = now
	if fund.IsChangeInvestPolicy {
		fund.Config.InvestPolicy = fund.NewInvestPolicy
		fund.IsChangeInvestPolicy = false
		fund.NewInvestPolicy = ""
	}
	fund.Status, _ = types.Transition(types.OpContinuation, fund.Status, types.StatusClosed)
	k.SetFund(ctx, fund)

	if err := k.forwardEscrow(ctx, fund); err != nil {
		return err
	}

	k.emitStatus(ctx, types.EventTypeStartFundClosed, fund)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundContinuation,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyNetValue, fund.RedemptionNetValue.String()),
			sdk.NewAttribute(types.AttributeKeyPolicy, fund.Config.InvestPolicy),
			sdk.NewAttribute(types.AttributeKeyPolicyAccount, policyAccount(fund).String()),
		),
	)
	return nil
}

// FundStop ends a fund that is not perpetual once redemption has opened
func (k *Keeper) FundStop(ctx sdk.Context, admin string, fundID uint64) error {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(ctx, fund, admin); err != nil {
		return err
	}
	if err := types.CheckOperation(types.OpStop, fund.Status); err != nil {
		return err
	}
	if fund.IsPerpetual() {
		return types.ErrPerpetual
	}

	fund.Status, _ = types.Transition(types.OpStop, fund.Status, types.StatusStop)
	k.SetFund(ctx, fund)

	k.emitStatus(ctx, types.EventTypeFundStop, fund)
	return nil
}

// ============ Helpers ============

// forwardEscrow sends the escrowed settlement balance to the invest policy
func (k *Keeper) forwardEscrow(ctx sdk.Context, fund *types.Fund) error {
	policy := policyAccount(fund)
	escrow := types.EscrowAddress(fund.ID)
	balance := k.bankKeeper.GetBalance(ctx, escrow, fund.Config.Raise.RaiseDenom)
	if !balance.IsPositive() {
		return nil
	}
	return k.bankKeeper.SendCoins(ctx, escrow, policy, sdk.NewCoins(balance))
}

// policyAccount is the module account holding the fund's deployed capital
func policyAccount(fund *types.Fund) sdk.AccAddress {
	return types.PolicyAddress(fund.ID, fund.Config.InvestPolicy)
}

func (k *Keeper) sendFromEscrow(ctx sdk.Context, fundID uint64, recipient string, amt sdk.Coins) error {
	if amt.IsZero() {
		return nil
	}
	to, err := accAddress(recipient)
	if err != nil {
		return errors.Wrapf(types.ErrInvalidAddress, "%s: %s", recipient, err)
	}
	return k.bankKeeper.SendCoins(ctx, types.EscrowAddress(fundID), to, amt)
}

func (k *Keeper) emitStatus(ctx sdk.Context, eventType string, fund *types.Fund) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fund.ID)),
			sdk.NewAttribute(types.AttributeKeyStatus, fund.Status.String()),
			sdk.NewAttribute(types.AttributeKeyShare, fund.TotalSalesShare.String()),
		),
	)
	k.logger.Info("fund status changed", "fund_id", fund.ID, "status", fund.Status.String(), "event", eventType)
}

// recordHistory hands an activity entry to the user history collaborator
func (k *Keeper) recordHistory(ctx sdk.Context, fundID uint64, account, kind string, coins sdk.Coins) error {
	if k.history == nil {
		return nil
	}
	seq := k.nextSequence(ctx, types.HistorySequenceKey)
	return k.history.Record(ctx, types.HistoryRecord{
		ID:      types.HistoryRecordID(seq),
		FundID:  fundID,
		Account: account,
		Kind:    kind,
		Coins:   coins,
		Time:    ctx.BlockTime().Unix(),
	})
}
