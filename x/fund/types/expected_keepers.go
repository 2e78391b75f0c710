package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the bank module
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// InvestRequest is an instruction for the invest policy, executed on behalf
// of the multi-sig wallet
type InvestRequest struct {
	FundID     uint64 `json:"fund_id"`
	Defi       string `json:"defi"`
	Params     []byte `json:"params"`
	Denom      string `json:"denom"`
	HasHarvest bool   `json:"has_harvest"`
	Recipient  string `json:"recipient"`
}

// InvestPolicyKeeper is the adapter that deploys fund capital into external
// yield positions
type InvestPolicyKeeper interface {
	// TotalValue returns the mark-to-market value of the policy's position in denom
	TotalValue(ctx context.Context, policy sdk.AccAddress, denom string) (math.Int, error)

	// Withdraw moves amount from the policy back to the fund
	Withdraw(ctx context.Context, policy, to sdk.AccAddress, amount sdk.Coin) error

	// Invest executes a position change. When HasHarvest is set, harvested
	// reward coins are sent to req.Recipient and returned.
	Invest(ctx context.Context, policy sdk.AccAddress, req InvestRequest) (sdk.Coins, error)

	// Settle unwinds all positions and returns the final value in denom
	Settle(ctx context.Context, policy sdk.AccAddress, denom string) (math.Int, error)
}

// UserHistory records user activity outside of the fund state
type UserHistory interface {
	Record(ctx context.Context, rec HistoryRecord) error
}
