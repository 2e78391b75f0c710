package keeper

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// FundInvest runs an invest instruction directly when a single signature is
// enough, otherwise it emits a proposal for the multi-sig wallet to execute.
func (k *Keeper) FundInvest(ctx sdk.Context, admin string, fundID uint64, req types.InvestRequest) (bool, sdk.Coins, error) {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return false, nil, err
	}
	if err := k.requireAdmin(ctx, fund, admin); err != nil {
		return false, nil, err
	}
	if err := types.CheckOperation(types.OpInvest, fund.Status); err != nil {
		return false, nil, err
	}

	if fund.Config.Manage.NumberOfNeedSignedAddresses <= 1 {
		harvested, err := k.executeInvest(ctx, fund, req)
		if err != nil {
			return false, nil, err
		}
		return true, harvested, nil
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundInvestProposed,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyAddress, admin),
			sdk.NewAttribute(types.AttributeKeyDefi, req.Defi),
			sdk.NewAttribute(types.AttributeKeyDenom, req.Denom),
			sdk.NewAttribute(types.AttributeKeyHasHarvest, formatBool(req.HasHarvest)),
			sdk.NewAttribute(types.AttributeKeySigners, formatID(fund.Config.Manage.NumberOfNeedSignedAddresses)),
		),
	)
	return false, nil, nil
}

// ExecuteFundInvest runs an invest instruction signed off by the fund's
// multi-sig wallet
func (k *Keeper) ExecuteFundInvest(ctx sdk.Context, wallet string, fundID uint64, req types.InvestRequest) (sdk.Coins, error) {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return nil, err
	}
	if err := types.CheckOperation(types.OpInvest, fund.Status); err != nil {
		return nil, err
	}
	if fund.MultiSigWallet == "" || wallet != fund.MultiSigWallet {
		return nil, errors.Wrapf(types.ErrNotMultiSig, "%s", wallet)
	}
	return k.executeInvest(ctx, fund, req)
}

// executeInvest hands req to the invest policy and offers harvested rewards
// to the holders as bonus
func (k *Keeper) executeInvest(ctx sdk.Context, fund *types.Fund, req types.InvestRequest) (sdk.Coins, error) {
	policy := policyAccount(fund)
	escrow := types.EscrowAddress(fund.ID)
	req.FundID = fund.ID
	req.Recipient = escrow.String()

	harvested, err := k.investKeeper.Invest(ctx, policy, req)
	if err != nil {
		return nil, err
	}
	if req.HasHarvest {
		for _, c := range harvested {
			if err := k.OfferBonus(ctx, fund.ID, escrow, c.Denom, c.Amount); err != nil {
				return nil, err
			}
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundInvestExecuted,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fund.ID)),
			sdk.NewAttribute(types.AttributeKeyDefi, req.Defi),
			sdk.NewAttribute(types.AttributeKeyDenom, req.Denom),
			sdk.NewAttribute(types.AttributeKeyHasHarvest, formatBool(req.HasHarvest)),
			sdk.NewAttribute(types.AttributeKeyAmount, harvested.String()),
		),
	)
	return harvested, nil
}

// WithdrawFundBonus pays holder's pending bonus without moving shares
func (k *Keeper) WithdrawFundBonus(ctx sdk.Context, holder string, fundID uint64) (sdk.Coins, error) {
	if _, err := k.mustGetFund(ctx, fundID); err != nil {
		return nil, err
	}
	bonus, err := k.DrawBonus(ctx, fundID, holder)
	if err != nil {
		return nil, err
	}
	if !bonus.IsZero() {
		if err := k.recordHistory(ctx, fundID, holder, types.HistoryKindWithdrawBonus, bonus); err != nil {
			return nil, err
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawFundBonus,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyUser, holder),
			sdk.NewAttribute(types.AttributeKeyAmount, bonus.String()),
		),
	)
	return bonus, nil
}
