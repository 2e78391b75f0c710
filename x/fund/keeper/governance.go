package keeper

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// ModifyFundData replaces the config of a closed fund on behalf of
// governance. The invest policy and settlement denom cannot change here: an
// empty value keeps the current one and a different one is rejected. Admin rights
// of the previous managers are revoked and only handed to the new managers
// when resetManagerStatus is set.
func (k *Keeper) ModifyFundData(ctx sdk.Context, caller string, fundID uint64, config types.FundConfig, resetManagerStatus bool) error {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return err
	}
	if err := k.requireInternal(ctx, fund, caller); err != nil {
		return err
	}
	if err := types.CheckOperation(types.OpModifyFundData, fund.Status); err != nil {
		return err
	}

	if config.InvestPolicy == "" {
		config.InvestPolicy = fund.Config.InvestPolicy
	}
	if config.InvestPolicy != fund.Config.InvestPolicy {
		return errors.Wrapf(types.ErrImmutableConfig, "invest policy %s, use change invest policy", config.InvestPolicy)
	}
	if config.Raise.RaiseDenom == "" {
		config.Raise.RaiseDenom = fund.Config.Raise.RaiseDenom
	}
	if config.Raise.RaiseDenom != fund.Config.Raise.RaiseDenom {
		return errors.Wrapf(types.ErrImmutableConfig, "raise denom %s, fund holds %s", config.Raise.RaiseDenom, fund.Config.Raise.RaiseDenom)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	for _, manager := range fund.Config.Manage.Managers {
		if manager != fund.Owner {
			k.revokeRole(ctx, fundID, types.RoleAdmin, manager)
		}
	}
	if resetManagerStatus {
		for _, manager := range config.Manage.Managers {
			k.grantRole(ctx, fundID, types.RoleAdmin, manager)
		}
	}
	fund.Config = config
	k.SetFund(ctx, fund)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeModifyFundData,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyAddress, caller),
			sdk.NewAttribute(types.AttributeKeyResetManager, formatBool(resetManagerStatus)),
		),
	)
	return nil
}

// ChangeInvestPolicy schedules newPolicy to replace the invest policy at
// the next continuation
func (k *Keeper) ChangeInvestPolicy(ctx sdk.Context, caller string, fundID uint64, newPolicy string) error {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return err
	}
	if err := k.requireInternal(ctx, fund, caller); err != nil {
		return err
	}
	if err := types.CheckOperation(types.OpChangeInvestPolicy, fund.Status); err != nil {
		return err
	}
	if err := types.ValidatePolicyName(newPolicy); err != nil {
		return err
	}

	fund.IsChangeInvestPolicy = true
	fund.NewInvestPolicy = newPolicy
	k.SetFund(ctx, fund)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChangeInvestPolicy,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyPolicy, newPolicy),
		),
	)
	return nil
}

// ChangeNumberOfNeedSignedAddresses sets how many managers must sign an
// invest instruction
func (k *Keeper) ChangeNumberOfNeedSignedAddresses(ctx sdk.Context, caller string, fundID uint64, number uint64) error {
	fund, err := k.mustGetFund(ctx, fundID)
	if err != nil {
		return err
	}
	if err := k.requireInternal(ctx, fund, caller); err != nil {
		return err
	}
	if err := types.CheckOperation(types.OpChangeSigners, fund.Status); err != nil {
		return err
	}
	if number == 0 || number > uint64(len(fund.Config.Manage.Managers)) {
		return errors.Wrapf(types.ErrInvalidSignerCount, "%d of %d managers", number, len(fund.Config.Manage.Managers))
	}

	fund.Config.Manage.NumberOfNeedSignedAddresses = number
	k.SetFund(ctx, fund)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChangeSigners,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeySigners, formatID(number)),
		),
	)
	return nil
}
