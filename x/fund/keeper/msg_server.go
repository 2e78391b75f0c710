package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/metrics"
	"github.com/openalpha/fundchain/x/fund/types"
)

var _ types.MsgServer = (*MsgServer)(nil)

// MsgServer defines the fund MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// run executes fn atomically and records the outcome
func (m *MsgServer) run(ctx context.Context, msg string, fn func(ctx sdk.Context) error) error {
	timer := metrics.NewTimer()
	err := m.keeper.atomically(sdk.UnwrapSDKContext(ctx), fn)
	metrics.GetCollector().RecordMsg(msg, err, timer.ElapsedMs())
	return err
}

func (m *MsgServer) recordStatus(ctx context.Context, fundID uint64) {
	if fund, found := m.keeper.GetFund(sdk.UnwrapSDKContext(ctx), fundID); found {
		metrics.GetCollector().RecordStatus(formatID(fundID), fund.Status.String())
	}
}

// ============ Lifecycle ============

// CreateFund handles MsgCreateFund
func (m *MsgServer) CreateFund(ctx context.Context, msg *types.MsgCreateFund) (*types.MsgCreateFundResponse, error) {
	var fundID uint64
	err := m.run(ctx, "create_fund", func(ctx sdk.Context) (err error) {
		fundID, err = m.keeper.CreateFund(ctx, msg.Owner, msg.MultiSigWallet, msg.Config)
		return err
	})
	if err != nil {
		return nil, err
	}
	m.recordStatus(ctx, fundID)
	return &types.MsgCreateFundResponse{FundID: fundID}, nil
}

// ResetFundData handles MsgResetFundData
func (m *MsgServer) ResetFundData(ctx context.Context, msg *types.MsgResetFundData) (*types.MsgResetFundDataResponse, error) {
	err := m.run(ctx, "reset_fund_data", func(ctx sdk.Context) error {
		return m.keeper.ResetFundData(ctx, msg.Owner, msg.FundID, msg.Config)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgResetFundDataResponse{}, nil
}

// StartFundSales handles MsgStartFundSales
func (m *MsgServer) StartFundSales(ctx context.Context, msg *types.MsgStartFundSales) (*types.MsgStartFundSalesResponse, error) {
	err := m.run(ctx, "start_fund_sales", func(ctx sdk.Context) error {
		return m.keeper.StartFundSales(ctx, msg.Owner, msg.FundID)
	})
	if err != nil {
		return nil, err
	}
	m.recordStatus(ctx, msg.FundID)
	return &types.MsgStartFundSalesResponse{}, nil
}

// BuyFund handles MsgBuyFund
func (m *MsgServer) BuyFund(ctx context.Context, msg *types.MsgBuyFund) (*types.MsgBuyFundResponse, error) {
	share, err := types.ParsePositiveAmount(msg.Share)
	if err != nil {
		return nil, err
	}

	var cost math.Int
	err = m.run(ctx, "buy_fund", func(ctx sdk.Context) (err error) {
		cost, err = m.keeper.BuyFund(ctx, msg.Buyer, msg.FundID, share)
		return err
	})
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if fund, found := m.keeper.GetFund(sdkCtx, msg.FundID); found {
		metrics.GetCollector().RecordBuy(formatID(msg.FundID), fund.Config.Raise.RaiseDenom, share, cost)
		metrics.GetCollector().RecordSupply(formatID(msg.FundID), fund.TotalSalesShare)
	}
	return &types.MsgBuyFundResponse{Cost: cost.String()}, nil
}

// CloseFundSales handles MsgCloseFundSales
func (m *MsgServer) CloseFundSales(ctx context.Context, msg *types.MsgCloseFundSales) (*types.MsgCloseFundSalesResponse, error) {
	var status types.FundStatus
	err := m.run(ctx, "close_fund_sales", func(ctx sdk.Context) (err error) {
		status, err = m.keeper.CloseFundSales(ctx, msg.Admin, msg.FundID)
		return err
	})
	if err != nil {
		return nil, err
	}
	m.recordStatus(ctx, msg.FundID)
	return &types.MsgCloseFundSalesResponse{Status: status.String()}, nil
}

// FundBonus handles MsgFundBonus
func (m *MsgServer) FundBonus(ctx context.Context, msg *types.MsgFundBonus) (*types.MsgFundBonusResponse, error) {
	var split types.BonusSplit
	err := m.run(ctx, "fund_bonus", func(ctx sdk.Context) (err error) {
		split, err = m.keeper.FundBonus(ctx, msg.Admin, msg.FundID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.GetCollector().RecordBonus(formatID(msg.FundID), split.ProtocolFee, split.ManagersBonus, split.SponsorBonus, split.UsersBonus)
	return &types.MsgFundBonusResponse{
		ProtocolFee:   split.ProtocolFee.String(),
		ManagersBonus: split.ManagersBonus.String(),
		SponsorBonus:  split.SponsorBonus.String(),
		UsersBonus:    split.UsersBonus.String(),
	}, nil
}

// StartFundSettlement handles MsgStartFundSettlement
func (m *MsgServer) StartFundSettlement(ctx context.Context, msg *types.MsgStartFundSettlement) (*types.MsgStartFundSettlementResponse, error) {
	err := m.run(ctx, "start_fund_settlement", func(ctx sdk.Context) error {
		return m.keeper.StartFundSettlement(ctx, msg.Admin, msg.FundID)
	})
	if err != nil {
		return nil, err
	}
	m.recordStatus(ctx, msg.FundID)
	return &types.MsgStartFundSettlementResponse{}, nil
}

// FundSettlement handles MsgFundSettlement
func (m *MsgServer) FundSettlement(ctx context.Context, msg *types.MsgFundSettlement) (*types.MsgFundSettlementResponse, error) {
	var netValue math.Int
	err := m.run(ctx, "fund_settlement", func(ctx sdk.Context) (err error) {
		netValue, err = m.keeper.FundSettlement(ctx, msg.Admin, msg.FundID)
		return err
	})
	if err != nil {
		return nil, err
	}
	m.recordStatus(ctx, msg.FundID)
	return &types.MsgFundSettlementResponse{RedemptionNetValue: netValue.String()}, nil
}

// FundContinuation handles MsgFundContinuation
func (m *MsgServer) FundContinuation(ctx context.Context, msg *types.MsgFundContinuation) (*types.MsgFundContinuationResponse, error) {
	err := m.run(ctx, "fund_continuation", func(ctx sdk.Context) error {
		return m.keeper.FundContinuation(ctx, msg.Admin, msg.FundID)
	})
	if err != nil {
		return nil, err
	}
	m.recordStatus(ctx, msg.FundID)
	return &types.MsgFundContinuationResponse{}, nil
}

// FundStop handles MsgFundStop
func (m *MsgServer) FundStop(ctx context.Context, msg *types.MsgFundStop) (*types.MsgFundStopResponse, error) {
	err := m.run(ctx, "fund_stop", func(ctx sdk.Context) error {
		return m.keeper.FundStop(ctx, msg.Admin, msg.FundID)
	})
	if err != nil {
		return nil, err
	}
	m.recordStatus(ctx, msg.FundID)
	return &types.MsgFundStopResponse{}, nil
}

// StartFundLiquidation handles MsgStartFundLiquidation
func (m *MsgServer) StartFundLiquidation(ctx context.Context, msg *types.MsgStartFundLiquidation) (*types.MsgStartFundLiquidationResponse, error) {
	err := m.run(ctx, "start_fund_liquidation", func(ctx sdk.Context) error {
		return m.keeper.StartFundLiquidation(ctx, msg.Caller, msg.FundID)
	})
	if err != nil {
		return nil, err
	}
	m.recordStatus(ctx, msg.FundID)
	return &types.MsgStartFundLiquidationResponse{}, nil
}

// ============ Governance ============

// ModifyFundData handles MsgModifyFundData
func (m *MsgServer) ModifyFundData(ctx context.Context, msg *types.MsgModifyFundData) (*types.MsgModifyFundDataResponse, error) {
	err := m.run(ctx, "modify_fund_data", func(ctx sdk.Context) error {
		return m.keeper.ModifyFundData(ctx, msg.Caller, msg.FundID, msg.Config, msg.ResetManagerStatus)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgModifyFundDataResponse{}, nil
}

// ChangeInvestPolicy handles MsgChangeInvestPolicy
func (m *MsgServer) ChangeInvestPolicy(ctx context.Context, msg *types.MsgChangeInvestPolicy) (*types.MsgChangeInvestPolicyResponse, error) {
	err := m.run(ctx, "change_invest_policy", func(ctx sdk.Context) error {
		return m.keeper.ChangeInvestPolicy(ctx, msg.Caller, msg.FundID, msg.NewPolicy)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgChangeInvestPolicyResponse{}, nil
}

// ChangeNumberOfNeedSignedAddresses handles MsgChangeNumberOfNeedSignedAddresses
func (m *MsgServer) ChangeNumberOfNeedSignedAddresses(ctx context.Context, msg *types.MsgChangeNumberOfNeedSignedAddresses) (*types.MsgChangeNumberOfNeedSignedAddressesResponse, error) {
	err := m.run(ctx, "change_signed_addresses", func(ctx sdk.Context) error {
		return m.keeper.ChangeNumberOfNeedSignedAddresses(ctx, msg.Caller, msg.FundID, msg.Number)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgChangeNumberOfNeedSignedAddressesResponse{}, nil
}

// SetInternalCaller handles MsgSetInternalCaller
func (m *MsgServer) SetInternalCaller(ctx context.Context, msg *types.MsgSetInternalCaller) (*types.MsgSetInternalCallerResponse, error) {
	err := m.run(ctx, "set_internal_caller", func(ctx sdk.Context) error {
		return m.keeper.SetInternalCaller(ctx, msg.Authority, msg.FundID, msg.Address, msg.Enabled)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetInternalCallerResponse{}, nil
}

// UpdateParams handles MsgUpdateParams
func (m *MsgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	err := m.run(ctx, "update_params", func(ctx sdk.Context) error {
		return m.keeper.UpdateParams(ctx, msg.Authority, msg.Params)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}

// ============ Invest ============

// FundInvest handles MsgFundInvest
func (m *MsgServer) FundInvest(ctx context.Context, msg *types.MsgFundInvest) (*types.MsgFundInvestResponse, error) {
	var (
		executed  bool
		harvested sdk.Coins
	)
	err := m.run(ctx, "fund_invest", func(ctx sdk.Context) (err error) {
		executed, harvested, err = m.keeper.FundInvest(ctx, msg.Admin, msg.FundID, types.InvestRequest{
			Defi:       msg.Defi,
			Params:     msg.Params,
			Denom:      msg.Denom,
			HasHarvest: msg.HasHarvest,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgFundInvestResponse{Executed: executed, Harvested: harvested.String()}, nil
}

// ExecuteFundInvest handles MsgExecuteFundInvest
func (m *MsgServer) ExecuteFundInvest(ctx context.Context, msg *types.MsgExecuteFundInvest) (*types.MsgExecuteFundInvestResponse, error) {
	var harvested sdk.Coins
	err := m.run(ctx, "execute_fund_invest", func(ctx sdk.Context) (err error) {
		harvested, err = m.keeper.ExecuteFundInvest(ctx, msg.Wallet, msg.FundID, types.InvestRequest{
			Defi:       msg.Defi,
			Params:     msg.Params,
			Denom:      msg.Denom,
			HasHarvest: msg.HasHarvest,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgExecuteFundInvestResponse{Harvested: harvested.String()}, nil
}

// ============ Redemption And Bonus ============

// RedemptionAll handles MsgRedemptionAll
func (m *MsgServer) RedemptionAll(ctx context.Context, msg *types.MsgRedemptionAll) (*types.MsgRedemptionAllResponse, error) {
	holder := msg.Holder
	if holder == "" {
		holder = msg.Sender
	}
	share := m.keeper.BalanceOf(sdk.UnwrapSDKContext(ctx), msg.FundID, holder)

	var payout math.Int
	err := m.run(ctx, "redemption_all", func(ctx sdk.Context) (err error) {
		payout, err = m.keeper.RedemptionAll(ctx, msg.Sender, msg.FundID, holder)
		return err
	})
	if err != nil {
		return nil, err
	}
	m.recordRedemption(ctx, msg.FundID, share, payout)
	return &types.MsgRedemptionAllResponse{Payout: payout.String()}, nil
}

// RedemptionByShare handles MsgRedemptionByShare
func (m *MsgServer) RedemptionByShare(ctx context.Context, msg *types.MsgRedemptionByShare) (*types.MsgRedemptionByShareResponse, error) {
	share, err := types.ParsePositiveAmount(msg.Share)
	if err != nil {
		return nil, err
	}

	var payout math.Int
	err = m.run(ctx, "redemption_by_share", func(ctx sdk.Context) (err error) {
		payout, err = m.keeper.RedemptionByShare(ctx, msg.Sender, msg.FundID, msg.Holder, share)
		return err
	})
	if err != nil {
		return nil, err
	}
	m.recordRedemption(ctx, msg.FundID, share, payout)
	return &types.MsgRedemptionByShareResponse{Payout: payout.String()}, nil
}

func (m *MsgServer) recordRedemption(ctx context.Context, fundID uint64, share, payout math.Int) {
	fund, found := m.keeper.GetFund(sdk.UnwrapSDKContext(ctx), fundID)
	if !found {
		return
	}
	c := metrics.GetCollector()
	c.RecordRedemption(formatID(fundID), fund.Config.Raise.RaiseDenom, share, payout)
	c.RecordSupply(formatID(fundID), fund.TotalSalesShare)
}

// WithdrawFundBonus handles MsgWithdrawFundBonus
func (m *MsgServer) WithdrawFundBonus(ctx context.Context, msg *types.MsgWithdrawFundBonus) (*types.MsgWithdrawFundBonusResponse, error) {
	var bonus sdk.Coins
	err := m.run(ctx, "withdraw_fund_bonus", func(ctx sdk.Context) (err error) {
		bonus, err = m.keeper.WithdrawFundBonus(ctx, msg.Holder, msg.FundID)
		return err
	})
	if err != nil {
		return nil, err
	}
	for _, c := range bonus {
		metrics.GetCollector().RecordBonusDrawn(formatID(msg.FundID), c.Denom, c.Amount)
	}
	return &types.MsgWithdrawFundBonusResponse{Bonus: bonus.String()}, nil
}

// ============ Share Ledger ============

// TransferShares handles MsgTransferShares
func (m *MsgServer) TransferShares(ctx context.Context, msg *types.MsgTransferShares) (*types.MsgTransferSharesResponse, error) {
	amount, err := types.ParsePositiveAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	err = m.run(ctx, "transfer_shares", func(ctx sdk.Context) error {
		return m.keeper.Transfer(ctx, msg.FundID, msg.From, msg.To, amount)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgTransferSharesResponse{}, nil
}

// ApproveShares handles MsgApproveShares
func (m *MsgServer) ApproveShares(ctx context.Context, msg *types.MsgApproveShares) (*types.MsgApproveSharesResponse, error) {
	amount, err := types.ParseAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	err = m.run(ctx, "approve_shares", func(ctx sdk.Context) error {
		return m.keeper.Approve(ctx, msg.FundID, msg.Owner, msg.Spender, amount)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgApproveSharesResponse{}, nil
}

// TransferSharesFrom handles MsgTransferSharesFrom
func (m *MsgServer) TransferSharesFrom(ctx context.Context, msg *types.MsgTransferSharesFrom) (*types.MsgTransferSharesFromResponse, error) {
	amount, err := types.ParsePositiveAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	err = m.run(ctx, "transfer_shares_from", func(ctx sdk.Context) error {
		return m.keeper.TransferFrom(ctx, msg.FundID, msg.Spender, msg.From, msg.To, amount)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgTransferSharesFromResponse{}, nil
}

// ============ Lock Registry ============

// ApproveLock handles MsgApproveLock
func (m *MsgServer) ApproveLock(ctx context.Context, msg *types.MsgApproveLock) (*types.MsgApproveLockResponse, error) {
	amount, err := types.ParseAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	err = m.run(ctx, "approve_lock", func(ctx sdk.Context) error {
		return m.keeper.ApproveLock(ctx, msg.FundID, msg.Holder, msg.Locker, amount, msg.MaxDuration)
	})
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordLock(formatID(msg.FundID), "approve")
	return &types.MsgApproveLockResponse{}, nil
}

// Lock handles MsgLock
func (m *MsgServer) Lock(ctx context.Context, msg *types.MsgLock) (*types.MsgLockResponse, error) {
	amount, err := types.ParsePositiveAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	err = m.run(ctx, "lock", func(ctx sdk.Context) error {
		return m.keeper.Lock(ctx, msg.FundID, msg.Locker, msg.Holder, amount, msg.Duration)
	})
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordLock(formatID(msg.FundID), "lock")
	return &types.MsgLockResponse{}, nil
}

// IncreaseLockAmount handles MsgIncreaseLockAmount
func (m *MsgServer) IncreaseLockAmount(ctx context.Context, msg *types.MsgIncreaseLockAmount) (*types.MsgIncreaseLockAmountResponse, error) {
	amount, err := types.ParsePositiveAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	err = m.run(ctx, "increase_lock_amount", func(ctx sdk.Context) error {
		return m.keeper.IncreaseLockAmount(ctx, msg.FundID, msg.Locker, msg.Holder, amount)
	})
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordLock(formatID(msg.FundID), "increase")
	return &types.MsgIncreaseLockAmountResponse{}, nil
}

// Unlock handles MsgUnlock
func (m *MsgServer) Unlock(ctx context.Context, msg *types.MsgUnlock) (*types.MsgUnlockResponse, error) {
	amount, err := types.ParseAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	err = m.run(ctx, "unlock", func(ctx sdk.Context) error {
		return m.keeper.Unlock(ctx, msg.FundID, msg.Locker, msg.Holder, amount)
	})
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordLock(formatID(msg.FundID), "unlock")
	return &types.MsgUnlockResponse{}, nil
}

// UnlockAll handles MsgUnlockAll
func (m *MsgServer) UnlockAll(ctx context.Context, msg *types.MsgUnlockAll) (*types.MsgUnlockAllResponse, error) {
	err := m.run(ctx, "unlock_all", func(ctx sdk.Context) error {
		return m.keeper.UnlockAll(ctx, msg.FundID, msg.Locker, msg.Holder)
	})
	if err != nil {
		return nil, err
	}
	metrics.GetCollector().RecordLock(formatID(msg.FundID), "unlock_all")
	return &types.MsgUnlockAllResponse{}, nil
}
