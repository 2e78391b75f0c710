package keeper

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// ElapsedDays returns the whole days since the current closed period began
func (k *Keeper) ElapsedDays(ctx sdk.Context, fund *types.Fund) int64 {
	dayLength := k.GetParams(ctx).DayLength
	if dayLength <= 0 || fund.ClosedPeriodStartTime == 0 {
		return 0
	}
	elapsed := ctx.BlockTime().Unix() - fund.ClosedPeriodStartTime
	if elapsed <= 0 {
		return 0
	}
	return elapsed / dayLength
}

// GetManageFee returns the management fee accrued since the fund closed
func (k *Keeper) GetManageFee(ctx sdk.Context, fund *types.Fund) (math.Int, error) {
	return types.ManageFee(fund.TotalSalesShare, fund.BaseNetValue(), fund.Config.Manage.ManagerFeeRatio, k.ElapsedDays(ctx, fund))
}

// FundBonus distributes the profit made since the last bonus. The protocol
// fee, sponsor and manager shares are paid out directly and the users' share
// is offered to every holder through the share ledger.
func (k *Keeper) FundBonus(ctx sdk.Context, admin string, fundID uint64) (types.BonusSplit, error) {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return types.BonusSplit{}, err
	}
	if err := k.requireAdmin(ctx, fund, admin); err != nil {
		return types.BonusSplit{}, err
	}
	if err := types.CheckOperation(types.OpBonus, fund.Status); err != nil {
		return types.BonusSplit{}, err
	}
	now := ctx.BlockTime().Unix()
	if !types.Elapsed(fund.LastBonusTime, fund.Config.Bonus.BonusPeriod, now) {
		return types.BonusSplit{}, errors.Wrapf(types.ErrBonusPeriodNotReached, "next bonus at %d", fund.LastBonusTime+fund.Config.Bonus.BonusPeriod)
	}
	policy := policyAccount(fund)

	denom := fund.Config.Raise.RaiseDenom
	value, err := k.investKeeper.TotalValue(ctx, policy, denom)
	if err != nil {
		return types.BonusSplit{}, err
	}

	params := k.GetParams(ctx)
	managers := fund.BonusManagers()
	split, err := types.ComputeBonus(types.BonusInputs{
		TotalSalesShare:         fund.TotalSalesShare,
		InitialNetValue:         fund.BaseNetValue(),
		LastBonusAfterNetValue:  fund.LastBonusAfterNetValue,
		CurrentTotalValue:       value,
		ElapsedDays:             k.ElapsedDays(ctx, fund),
		ManagerFeeRatio:         fund.Config.Manage.ManagerFeeRatio,
		ProtocolFeeRatio:        params.ProtocolFeeRatio,
		BonusRatio:              fund.Config.Bonus.BonusRatio,
		ManagerBonusDivideRatio: fund.Config.Bonus.ManagerBonusDivideRatio,
		SponsorDivideRatio:      fund.Config.SponsorDivideRatio,
		BonusManagerCount:       len(managers),
	})
	if err != nil {
		return types.BonusSplit{}, err
	}

	fund.LastBonusAfterNetValue = split.AfterNetValue
	fund.LastBonusTime = now
	fund.TotalUsersBonusAmount = fund.TotalUsersBonusAmount.Add(split.UsersBonus)
	k.SetFund(ctx, fund)

	escrow := types.EscrowAddress(fundID)
	if withdrawal := split.Withdrawal(); withdrawal.IsPositive() {
		if err := k.investKeeper.Withdraw(ctx, policy, escrow, sdk.NewCoin(denom, withdrawal)); err != nil {
			return types.BonusSplit{}, err
		}
	}
	if err := k.transferProtocolFeeAndBonus(ctx, fund, params, managers, split); err != nil {
		return types.BonusSplit{}, err
	}
	if err := k.OfferBonus(ctx, fundID, escrow, denom, split.UsersBonus); err != nil {
		return types.BonusSplit{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundBonus,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyTotalValue, value.String()),
			sdk.NewAttribute(types.AttributeKeyManageFee, split.ManageFee.String()),
			sdk.NewAttribute(types.AttributeKeyProtocolFee, split.ProtocolFee.String()),
			sdk.NewAttribute(types.AttributeKeyManagersBonus, split.ManagersBonus.String()),
			sdk.NewAttribute(types.AttributeKeySponsorBonus, split.SponsorBonus.String()),
			sdk.NewAttribute(types.AttributeKeyUsersBonus, split.UsersBonus.String()),
			sdk.NewAttribute(types.AttributeKeyManagerRemainder, split.ManagerRemainder.String()),
			sdk.NewAttribute(types.AttributeKeyNetValue, split.AfterNetValue.String()),
		),
	)

	k.logger.Info(
		"fund bonus distributed",
		"fund_id", fundID,
		"protocol_fee", split.ProtocolFee.String(),
		"managers_bonus", split.ManagersBonus.String(),
		"users_bonus", split.UsersBonus.String(),
		"net_value", split.AfterNetValue.String(),
	)
	return split, nil
}

func (k *Keeper) transferProtocolFeeAndBonus(
	ctx sdk.Context,
	fund *types.Fund,
	params types.Params,
	managers []string,
	split types.BonusSplit,
) error {
	denom := fund.Config.Raise.RaiseDenom
	if params.ProtocolFeeRecipient == "" {
		k.logger.Warn("protocol fee recipient unset, fee kept in escrow", "fund_id", fund.ID, "protocol_fee", split.ProtocolFee.String())
	} else if err := k.sendFromEscrow(ctx, fund.ID, params.ProtocolFeeRecipient, coin(denom, split.ProtocolFee)); err != nil {
		return err
	}

	if err := k.sendFromEscrow(ctx, fund.ID, fund.Sponsor(), coin(denom, split.SponsorBonus)); err != nil {
		return err
	}
	for _, manager := range managers {
		if err := k.sendFromEscrow(ctx, fund.ID, manager, coin(denom, split.PerManagerBonus)); err != nil {
			return err
		}
	}
	if split.ManagerRemainder.IsPositive() {
		k.logger.Warn("manager bonus remainder kept in escrow", "fund_id", fund.ID, "remainder", split.ManagerRemainder.String())
	}
	return nil
}
