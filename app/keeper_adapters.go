package app

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	fundtypes "github.com/openalpha/fundchain/x/fund/types"
)

// Event types emitted by the adapters
const (
	EventTypeInvestRequest = "invest_policy_request"
	EventTypeUserHistory   = "user_history"
)

// policyBank is the part of the bank keeper the invest policy adapter needs
type policyBank interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// bankInvestPolicy treats an invest policy as a custodial account: its value
// is the account balance and positions are opened off-chain from the emitted
// request events.
type bankInvestPolicy struct {
	bank policyBank
}

func newBankInvestPolicy(bank policyBank) fundtypes.InvestPolicyKeeper {
	return bankInvestPolicy{bank: bank}
}

func (p bankInvestPolicy) TotalValue(ctx context.Context, policy sdk.AccAddress, denom string) (math.Int, error) {
	if p.bank == nil {
		return math.Int{}, fmt.Errorf("bank keeper not set")
	}
	return p.bank.GetBalance(ctx, policy, denom).Amount, nil
}

func (p bankInvestPolicy) Withdraw(ctx context.Context, policy, to sdk.AccAddress, amount sdk.Coin) error {
	if p.bank == nil {
		return fmt.Errorf("bank keeper not set")
	}
	if !amount.IsPositive() {
		return nil
	}
	return p.bank.SendCoins(ctx, policy, to, sdk.NewCoins(amount))
}

func (p bankInvestPolicy) Invest(ctx context.Context, policy sdk.AccAddress, req fundtypes.InvestRequest) (sdk.Coins, error) {
	params, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			EventTypeInvestRequest,
			sdk.NewAttribute(fundtypes.AttributeKeyFundID, fmt.Sprint(req.FundID)),
			sdk.NewAttribute(fundtypes.AttributeKeyPolicy, policy.String()),
			sdk.NewAttribute("request", string(params)),
		),
	)
	// Harvests land in the policy account between blocks; nothing is
	// collected synchronously.
	return sdk.NewCoins(), nil
}

func (p bankInvestPolicy) Settle(ctx context.Context, policy sdk.AccAddress, denom string) (math.Int, error) {
	return p.TotalValue(ctx, policy, denom)
}

// eventHistory publishes history records as events for indexers
type eventHistory struct{}

func newEventHistory() fundtypes.UserHistory {
	return eventHistory{}
}

func (eventHistory) Record(ctx context.Context, rec fundtypes.HistoryRecord) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			EventTypeUserHistory,
			sdk.NewAttribute("id", rec.ID),
			sdk.NewAttribute(fundtypes.AttributeKeyFundID, fmt.Sprint(rec.FundID)),
			sdk.NewAttribute(fundtypes.AttributeKeyUser, rec.Account),
			sdk.NewAttribute("kind", rec.Kind),
			sdk.NewAttribute(fundtypes.AttributeKeyAmount, rec.Coins.String()),
		),
	)
	return nil
}
