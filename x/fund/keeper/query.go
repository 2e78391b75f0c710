package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// HoldingView is a holding together with its lock figures at query time
type HoldingView struct {
	Holder       string              `json:"holder"`
	Holding      *types.ShareHolding `json:"holding"`
	LockedAmount math.Int            `json:"locked_amount"`
	Lockables    math.Int            `json:"lockables"`
}

// QueryServer defines the fund QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Fund returns a fund by ID
func (q *QueryServer) Fund(ctx context.Context, fundID uint64) (*types.Fund, error) {
	return q.keeper.mustGetFund(sdk.UnwrapSDKContext(ctx), fundID)
}

// Funds returns a page of funds
func (q *QueryServer) Funds(ctx context.Context, offset, limit uint64) ([]*types.Fund, uint64, error) {
	all := q.keeper.GetAllFunds(sdk.UnwrapSDKContext(ctx))
	total := uint64(len(all))

	if offset >= total {
		return []*types.Fund{}, total, nil
	}
	end := offset + limit
	if end > total || limit == 0 {
		end = total
	}
	return all[offset:end], total, nil
}

// ShareBalance returns holder's share balance
func (q *QueryServer) ShareBalance(ctx context.Context, fundID uint64, holder string) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, err := q.keeper.mustGetShareToken(sdkCtx, fundID); err != nil {
		return math.Int{}, err
	}
	return q.keeper.BalanceOf(sdkCtx, fundID, holder), nil
}

// Holding returns holder's full position
func (q *QueryServer) Holding(ctx context.Context, fundID uint64, holder string) (*HoldingView, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, err := q.keeper.mustGetShareToken(sdkCtx, fundID); err != nil {
		return nil, err
	}
	h := q.keeper.GetHolding(sdkCtx, fundID, holder)
	now := sdkCtx.BlockTime().Unix()
	return &HoldingView{
		Holder:       holder,
		Holding:      h,
		LockedAmount: h.LockedAmount(now),
		Lockables:    h.Lockables(now),
	}, nil
}

// PendingBonus returns what holder could draw now
func (q *QueryServer) PendingBonus(ctx context.Context, fundID uint64, holder string) ([]sdk.Coin, error) {
	return q.keeper.PendingBonus(sdk.UnwrapSDKContext(ctx), fundID, holder)
}

// Accumulator returns the bonus accumulator of denom
func (q *QueryServer) Accumulator(ctx context.Context, fundID uint64, denom string) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	token, err := q.keeper.mustGetShareToken(sdkCtx, fundID)
	if err != nil {
		return math.Int{}, err
	}
	if token.BonusTokenIndex(denom) == 0 {
		return math.Int{}, errors.Wrapf(types.ErrFundNotFound, "bonus denom %s not registered", denom)
	}
	return q.keeper.GetAccumulator(sdkCtx, fundID, denom), nil
}

// NetValue returns the per-share value of a fund in its current status
func (q *QueryServer) NetValue(ctx context.Context, fundID uint64) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	fund, err := q.keeper.mustGetFund(sdkCtx, fundID)
	if err != nil {
		return math.Int{}, err
	}
	if fund.Status != types.StatusClosed {
		return types.NetValue(fund, math.ZeroInt(), math.ZeroInt()), nil
	}

	value, err := q.keeper.investKeeper.TotalValue(sdkCtx, policyAccount(fund), fund.Config.Raise.RaiseDenom)
	if err != nil {
		return math.Int{}, err
	}
	fee, err := q.keeper.GetManageFee(sdkCtx, fund)
	if err != nil {
		return math.Int{}, err
	}
	return types.NetValue(fund, value, fee), nil
}

// ManageFee returns the management fee accrued so far
func (q *QueryServer) ManageFee(ctx context.Context, fundID uint64) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	fund, err := q.keeper.mustGetFund(sdkCtx, fundID)
	if err != nil {
		return math.Int{}, err
	}
	return q.keeper.GetManageFee(sdkCtx, fund)
}

// Params returns the module params
func (q *QueryServer) Params(ctx context.Context) (types.Params, error) {
	return q.keeper.GetParams(sdk.UnwrapSDKContext(ctx)), nil
}
