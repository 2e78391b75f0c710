package keeper

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

func TestCreateFund(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.createFund(t, env.config())

	fund := env.mustFund(t, fundID)
	if fund.Status != types.StatusWaitingForSale {
		t.Errorf("expected waiting_for_sale, got %s", fund.Status)
	}
	if !env.keeper.HasRole(env.ctx, fundID, types.RoleAdmin, env.owner) {
		t.Error("expected owner to be admin")
	}
	if env.keeper.HasRole(env.ctx, fundID, types.RoleAdmin, env.alice) {
		t.Error("expected managers to become admin only when the sale starts")
	}
	token, found := env.keeper.GetShareToken(env.ctx, fundID)
	if !found {
		t.Fatal("expected share token")
	}
	if len(token.BonusDenoms) != 1 || token.BonusDenoms[0] != testDenom {
		t.Errorf("expected raise denom as first bonus token, got %v", token.BonusDenoms)
	}

	second := env.createFund(t, env.config())
	if second != fundID+1 {
		t.Errorf("expected sequential fund ids, got %d then %d", fundID, second)
	}

	config := env.config()
	config.Bonus.BonusRatio = types.MaxBonusRatio + 1
	_, err := env.keeper.CreateFund(env.ctx, env.owner, env.wallet, config)
	expectError(t, err, types.ErrInvalidBonusRatio)
}

func TestResetFundData(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.createFund(t, env.config())

	config := env.config()
	config.Name = "beta"
	config.Raise.RaiseDenom = "uusdt"
	err := env.keeper.ResetFundData(env.ctx, env.alice, fundID, config)
	expectError(t, err, types.ErrNotOwner)

	stolen := config
	stolen.InvestPolicy = env.bob
	err = env.keeper.ResetFundData(env.ctx, env.owner, fundID, stolen)
	expectError(t, err, types.ErrInvalidInvestPolicy)

	if err := env.keeper.ResetFundData(env.ctx, env.owner, fundID, config); err != nil {
		t.Fatalf("reset fund data: %v", err)
	}
	fund := env.mustFund(t, fundID)
	if fund.Config.Name != "beta" {
		t.Errorf("expected name beta, got %s", fund.Config.Name)
	}
	token, _ := env.keeper.GetShareToken(env.ctx, fundID)
	if token.BonusDenoms[0] != "uusdt" {
		t.Errorf("expected share token rebuilt on uusdt, got %v", token.BonusDenoms)
	}

	if err := env.keeper.StartFundSales(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("start sales: %v", err)
	}
	err = env.keeper.ResetFundData(env.ctx, env.owner, fundID, config)
	expectError(t, err, types.ErrInvalidStatus)
}

func TestBuyFund(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.createFund(t, env.config())

	_, err := env.keeper.BuyFund(env.ctx, env.alice, fundID, math.NewInt(100))
	expectError(t, err, types.ErrInvalidStatus)

	if err := env.keeper.StartFundSales(env.ctx, env.alice, fundID); err == nil {
		t.Fatal("expected non-owner start to fail")
	}
	if err := env.keeper.StartFundSales(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("start sales: %v", err)
	}
	if !env.keeper.HasRole(env.ctx, fundID, types.RoleAdmin, env.alice) {
		t.Error("expected managers to be admin once on sale")
	}

	env.buy(t, fundID, env.alice, 600)
	expectInt(t, "escrow", env.bank.balance(types.EscrowAddress(fundID), testDenom), 12000)
	expectInt(t, "alice shares", env.keeper.BalanceOf(env.ctx, fundID, env.alice), 600)
	expectInt(t, "total sales share", env.mustFund(t, fundID).TotalSalesShare, 600)
	expectInt(t, "alice cash", env.balance(env.alice), 0)

	if len(env.history.records) != 1 || env.history.records[0].Kind != types.HistoryKindBuy {
		t.Errorf("expected one buy record, got %+v", env.history.records)
	}

	_, err = env.keeper.BuyFund(env.ctx, env.bob, fundID, math.NewInt(5))
	expectError(t, err, types.ErrBelowMinPurchase)

	_, err = env.keeper.BuyFund(env.ctx, env.bob, fundID, math.NewInt(10001))
	expectError(t, err, types.ErrAboveMaxPurchase)

	// bob has no cash, so the transfer fails after the checks pass
	if _, err := env.keeper.BuyFund(env.ctx, env.bob, fundID, math.NewInt(100)); err == nil {
		t.Error("expected buy without funds to fail")
	}
}

func TestBuyFundHardTop(t *testing.T) {
	env := setupKeeper(t)
	config := env.config()
	config.Raise.IsHardTop = true
	config.Raise.TargetRaiseShare = math.NewInt(1005)
	fundID := env.openFund(t, config)

	env.buy(t, fundID, env.alice, 600)

	// 405 remain, more than that must be refused rather than truncated
	env.bank.mint(acc(env.bob), sdk.NewCoins(sdk.NewInt64Coin(testDenom, 20*500)))
	_, err := env.keeper.BuyFund(env.ctx, env.bob, fundID, math.NewInt(500))
	expectError(t, err, types.ErrRemainingShareMismatch)

	env.buy(t, fundID, env.bob, 400)

	// 5 remain, below the minimum purchase, so only exactly 5 is accepted
	env.bank.mint(acc(env.carol), sdk.NewCoins(sdk.NewInt64Coin(testDenom, 20*10)))
	_, err = env.keeper.BuyFund(env.ctx, env.carol, fundID, math.NewInt(3))
	expectError(t, err, types.ErrRemainingShareMismatch)
	if _, err := env.keeper.BuyFund(env.ctx, env.carol, fundID, math.NewInt(5)); err != nil {
		t.Fatalf("expected exact remaining purchase, got %v", err)
	}
	expectInt(t, "total sales share", env.mustFund(t, fundID).TotalSalesShare, 1005)
}

func TestBuyFundHardTopInRedemption(t *testing.T) {
	env := setupKeeper(t)
	config := env.config()
	config.RedemptionPeriod = 7 * day
	config.Raise.IsHardTop = true
	config.Raise.TargetRaiseShare = math.NewInt(1009)
	fundID := env.closedFund(t, config)

	env.at(day + 30*day)
	if err := env.keeper.StartFundSettlement(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("start settlement: %v", err)
	}
	if _, err := env.keeper.FundSettlement(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("settle: %v", err)
	}
	expectInt(t, "net value", env.mustFund(t, fundID).RedemptionNetValue, 19)

	// the hard top still caps the fund once it sells at the redemption net value
	env.bank.mint(acc(env.carol), sdk.NewCoins(sdk.NewInt64Coin(testDenom, 19*5000)))
	_, err := env.keeper.BuyFund(env.ctx, env.carol, fundID, math.NewInt(5000))
	expectError(t, err, types.ErrRemainingShareMismatch)

	// 9 remain, below the minimum purchase, and exactly 9 is accepted
	if _, err := env.keeper.BuyFund(env.ctx, env.carol, fundID, math.NewInt(9)); err != nil {
		t.Fatalf("expected exact remaining purchase, got %v", err)
	}
	fund := env.mustFund(t, fundID)
	expectInt(t, "total sales share", fund.TotalSalesShare, 1009)

	_, err = env.keeper.BuyFund(env.ctx, env.carol, fundID, math.NewInt(10))
	expectError(t, err, types.ErrRemainingShareMismatch)
	expectInt(t, "total sales share", env.mustFund(t, fundID).TotalSalesShare, 1009)
}

func TestCloseFundSales(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.openFund(t, env.config())
	env.buy(t, fundID, env.alice, 600)
	env.buy(t, fundID, env.bob, 400)

	_, err := env.keeper.CloseFundSales(env.ctx, env.bob, fundID)
	expectError(t, err, types.ErrNotAdmin)

	_, err = env.keeper.CloseFundSales(env.ctx, env.owner, fundID)
	expectError(t, err, types.ErrSalePeriodNotElapsed)

	env.at(day)
	status, err := env.keeper.CloseFundSales(env.ctx, env.alice, fundID)
	if err != nil {
		t.Fatalf("close sales: %v", err)
	}
	if status != types.StatusClosed {
		t.Fatalf("expected closed, got %s", status)
	}

	fund := env.mustFund(t, fundID)
	expectInt(t, "initial total value", fund.InitialTotalValue, 20000)
	expectInt(t, "last bonus net value", fund.LastBonusAfterNetValue, 20)
	if fund.ClosedPeriodStartTime != env.now() || fund.LastBonusTime != env.now() {
		t.Errorf("expected closed period and bonus clock to start at %d", env.now())
	}
	expectInt(t, "policy", env.policyBalance(fundID, env.policy), 20000)
	expectInt(t, "escrow", env.bank.balance(types.EscrowAddress(fundID), testDenom), 0)

	if _, ok := findEvent(env.ctx, types.EventTypeStartFundClosed); !ok {
		t.Error("expected start_fund_closed event")
	}
}

func TestSalesFailedRefund(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.openFund(t, env.config())
	env.buy(t, fundID, env.alice, 500)

	env.at(day)
	status, err := env.keeper.CloseFundSales(env.ctx, env.owner, fundID)
	if err != nil {
		t.Fatalf("close sales: %v", err)
	}
	if status != types.StatusSalesFailed {
		t.Fatalf("expected sales_failed, got %s", status)
	}
	expectInt(t, "initial total value", env.mustFund(t, fundID).InitialTotalValue, 10000)
	expectInt(t, "escrow", env.bank.balance(types.EscrowAddress(fundID), testDenom), 10000)

	payout, err := env.keeper.RedemptionAll(env.ctx, env.alice, fundID, "")
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	expectInt(t, "payout", payout, 10000)
	expectInt(t, "alice cash", env.balance(env.alice), 10000)
	expectInt(t, "supply", env.keeper.TotalSupply(env.ctx, fundID), 0)
	expectInt(t, "initial total value after refund", env.mustFund(t, fundID).InitialTotalValue, 0)
}

func TestSettlementAndRedemption(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.closedFund(t, env.config())

	err := env.keeper.StartFundSettlement(env.ctx, env.owner, fundID)
	expectError(t, err, types.ErrClosedPeriodNotElapsed)

	_, err = env.keeper.RedemptionAll(env.ctx, env.alice, fundID, "")
	expectError(t, err, types.ErrInvalidStatus)

	// the policy earns 1000 over the closed period
	env.bank.mint(types.PolicyAddress(fundID, env.policy), sdk.NewCoins(sdk.NewInt64Coin(testDenom, 1000)))
	env.at(day + 30*day)

	if err := env.keeper.StartFundSettlement(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("start settlement: %v", err)
	}
	netValue, err := env.keeper.FundSettlement(env.ctx, env.owner, fundID)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}

	// fee = 1000 * 20 * 100 * 30 / 1e6 = 60, paid to the only non-sponsor manager
	expectInt(t, "net value", netValue, 20)
	expectInt(t, "alice fee", env.balance(env.alice), 60)
	fund := env.mustFund(t, fundID)
	if fund.Status != types.StatusRedemption {
		t.Fatalf("expected redemption, got %s", fund.Status)
	}
	expectInt(t, "redemption total value", fund.RedemptionTotalValue, 20940)
	expectInt(t, "escrow", env.bank.balance(types.EscrowAddress(fundID), testDenom), 20940)

	payout, err := env.keeper.RedemptionByShare(env.ctx, env.alice, fundID, "", math.NewInt(600))
	if err != nil {
		t.Fatalf("redeem alice: %v", err)
	}
	expectInt(t, "alice payout", payout, 12564)

	payout, err = env.keeper.RedemptionAll(env.ctx, env.bob, fundID, "")
	if err != nil {
		t.Fatalf("redeem bob: %v", err)
	}
	expectInt(t, "bob payout", payout, 8376)
	expectInt(t, "escrow after redemption", env.bank.balance(types.EscrowAddress(fundID), testDenom), 0)

	if err := env.keeper.FundStop(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if env.mustFund(t, fundID).Status != types.StatusStop {
		t.Error("expected stop")
	}
	err = env.keeper.FundContinuation(env.ctx, env.owner, fundID)
	expectError(t, err, types.ErrInvalidStatus)
}

func TestRedemptionErrors(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.closedFund(t, env.config())
	env.at(day + 30*day)
	if err := env.keeper.StartFundSettlement(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("start settlement: %v", err)
	}
	if _, err := env.keeper.FundSettlement(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("settle: %v", err)
	}

	_, err := env.keeper.RedemptionByShare(env.ctx, env.alice, fundID, "", math.NewInt(601))
	expectError(t, err, types.ErrRedeemExceedsShare)

	_, err = env.keeper.RedemptionByShare(env.ctx, env.alice, fundID, "", math.ZeroInt())
	expectError(t, err, types.ErrNotRedeemable)

	_, err = env.keeper.RedemptionAll(env.ctx, env.carol, fundID, env.alice)
	expectError(t, err, types.ErrNotShareOwner)

	if err := env.keeper.Approve(env.ctx, fundID, env.alice, env.carol, math.NewInt(100)); err != nil {
		t.Fatalf("approve: %v", err)
	}
	_, err = env.keeper.RedemptionByShare(env.ctx, env.carol, fundID, env.alice, math.NewInt(101))
	expectError(t, err, types.ErrInsufficientAllowance)

	// redeeming for a holder pays the holder, not the spender
	payout, err := env.keeper.RedemptionByShare(env.ctx, env.carol, fundID, env.alice, math.NewInt(100))
	if err != nil {
		t.Fatalf("redeem with allowance: %v", err)
	}
	expectInt(t, "payout", payout, 1994)
	expectInt(t, "alice cash", env.balance(env.alice), 60+1994)
	expectInt(t, "carol cash", env.balance(env.carol), 0)

	// locked shares cannot be redeemed
	if err := env.keeper.ApproveLock(env.ctx, fundID, env.bob, env.carol, math.NewInt(400), 100); err != nil {
		t.Fatalf("approve lock: %v", err)
	}
	if err := env.keeper.Lock(env.ctx, fundID, env.carol, env.bob, math.NewInt(400), 100); err != nil {
		t.Fatalf("lock: %v", err)
	}
	_, err = env.keeper.RedemptionAll(env.ctx, env.bob, fundID, "")
	expectError(t, err, types.ErrInsufficientUnlockedBalance)
}

func TestPerpetualContinuation(t *testing.T) {
	env := setupKeeper(t)
	config := env.config()
	config.RedemptionPeriod = 7 * day
	fundID := env.closedFund(t, config)
	newPolicy := "usdc-staking"

	err := env.keeper.ChangeInvestPolicy(env.ctx, env.owner, fundID, newPolicy)
	expectError(t, err, types.ErrNotInternal)

	if err := env.keeper.SetInternalCaller(env.ctx, env.gov, fundID, env.carol, true); err != nil {
		t.Fatalf("set internal caller: %v", err)
	}
	// a policy is a strategy name, never someone else's account
	err = env.keeper.ChangeInvestPolicy(env.ctx, env.carol, fundID, env.bob)
	expectError(t, err, types.ErrInvalidInvestPolicy)
	if err := env.keeper.ChangeInvestPolicy(env.ctx, env.carol, fundID, newPolicy); err != nil {
		t.Fatalf("change invest policy: %v", err)
	}

	env.at(day + 30*day)
	if err := env.keeper.StartFundSettlement(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("start settlement: %v", err)
	}
	if _, err := env.keeper.FundSettlement(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("settle: %v", err)
	}
	// zero profit leaves 20000 - fee 60 = 19940, 19 per share
	expectInt(t, "net value", env.mustFund(t, fundID).RedemptionNetValue, 19)

	err = env.keeper.FundStop(env.ctx, env.owner, fundID)
	expectError(t, err, types.ErrPerpetual)

	// perpetual funds sell at the redemption net value
	env.buy(t, fundID, env.carol, 100)
	fund := env.mustFund(t, fundID)
	expectInt(t, "total sales share", fund.TotalSalesShare, 1100)
	expectInt(t, "redemption total value", fund.RedemptionTotalValue, 19940+1900)

	err = env.keeper.FundContinuation(env.ctx, env.owner, fundID)
	expectError(t, err, types.ErrRedemptionPeriodNotElapsed)

	env.at(day + 37*day)
	if err := env.keeper.FundContinuation(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("continuation: %v", err)
	}
	fund = env.mustFund(t, fundID)
	if fund.Status != types.StatusClosed {
		t.Fatalf("expected closed, got %s", fund.Status)
	}
	if fund.Config.InvestPolicy != newPolicy || fund.IsChangeInvestPolicy {
		t.Errorf("expected scheduled policy %s to apply, got %s", newPolicy, fund.Config.InvestPolicy)
	}
	expectInt(t, "initial total value", fund.InitialTotalValue, 1100*19)
	expectInt(t, "last bonus net value", fund.LastBonusAfterNetValue, 19)
	expectInt(t, "new policy", env.policyBalance(fundID, newPolicy), 19940+1900)
	expectInt(t, "old policy", env.policyBalance(fundID, env.policy), 0)
	if _, ok := findEvent(env.ctx, types.EventTypeFundContinuation); !ok {
		t.Error("expected fund_continuation event")
	}
}

func TestStartFundLiquidation(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.closedFund(t, env.config())

	err := env.keeper.StartFundLiquidation(env.ctx, env.owner, fundID)
	expectError(t, err, types.ErrNotInternal)

	err = env.keeper.SetInternalCaller(env.ctx, env.owner, fundID, env.carol, true)
	expectError(t, err, types.ErrUnauthorized)

	if err := env.keeper.SetInternalCaller(env.ctx, env.gov, fundID, env.carol, true); err != nil {
		t.Fatalf("set internal caller: %v", err)
	}
	if err := env.keeper.StartFundLiquidation(env.ctx, env.carol, fundID); err != nil {
		t.Fatalf("liquidate: %v", err)
	}
	if env.mustFund(t, fundID).Status != types.StatusLiquidation {
		t.Fatal("expected liquidation")
	}

	_, err = env.keeper.FundBonus(env.ctx, env.owner, fundID)
	expectError(t, err, types.ErrInvalidStatus)
	_, err = env.keeper.RedemptionAll(env.ctx, env.alice, fundID, "")
	expectError(t, err, types.ErrInvalidStatus)
}

func TestModifyFundData(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.closedFund(t, env.config())
	if err := env.keeper.SetInternalCaller(env.ctx, env.gov, fundID, env.carol, true); err != nil {
		t.Fatalf("set internal caller: %v", err)
	}

	config := env.config()
	config.Manage.Managers = []string{env.owner, env.bob}

	err := env.keeper.ModifyFundData(env.ctx, env.alice, fundID, config, true)
	expectError(t, err, types.ErrNotInternal)

	moved := config
	moved.InvestPolicy = "elsewhere"
	err = env.keeper.ModifyFundData(env.ctx, env.carol, fundID, moved, false)
	expectError(t, err, types.ErrImmutableConfig)

	redenominated := config
	redenominated.Raise.RaiseDenom = "uatom"
	err = env.keeper.ModifyFundData(env.ctx, env.carol, fundID, redenominated, false)
	expectError(t, err, types.ErrImmutableConfig)
	if len(env.mustFund(t, fundID).Config.Manage.Managers) != 2 || env.mustFund(t, fundID).Config.Manage.Managers[1] != env.alice {
		t.Error("expected a rejected modification to leave the config untouched")
	}

	// empty policy and denom keep the current values
	kept := config
	kept.InvestPolicy = ""
	kept.Raise.RaiseDenom = ""
	if err := env.keeper.ModifyFundData(env.ctx, env.carol, fundID, kept, false); err != nil {
		t.Fatalf("modify fund data: %v", err)
	}
	fund := env.mustFund(t, fundID)
	if fund.Config.InvestPolicy != env.policy || fund.Config.Raise.RaiseDenom != testDenom {
		t.Errorf("expected policy and denom to be kept, got %s %s", fund.Config.InvestPolicy, fund.Config.Raise.RaiseDenom)
	}
	if env.keeper.HasRole(env.ctx, fundID, types.RoleAdmin, env.alice) {
		t.Error("expected previous manager to lose admin")
	}
	if env.keeper.HasRole(env.ctx, fundID, types.RoleAdmin, env.bob) {
		t.Error("expected new manager to wait for a reset")
	}
	if !env.keeper.HasRole(env.ctx, fundID, types.RoleAdmin, env.owner) {
		t.Error("expected owner to keep admin")
	}

	if err := env.keeper.ModifyFundData(env.ctx, env.carol, fundID, config, true); err != nil {
		t.Fatalf("modify fund data: %v", err)
	}
	if !env.keeper.HasRole(env.ctx, fundID, types.RoleAdmin, env.bob) {
		t.Error("expected new manager to become admin")
	}

	err = env.keeper.ChangeNumberOfNeedSignedAddresses(env.ctx, env.carol, fundID, 3)
	expectError(t, err, types.ErrInvalidSignerCount)
	if err := env.keeper.ChangeNumberOfNeedSignedAddresses(env.ctx, env.carol, fundID, 2); err != nil {
		t.Fatalf("change signers: %v", err)
	}
	if env.mustFund(t, fundID).Config.Manage.NumberOfNeedSignedAddresses != 2 {
		t.Error("expected two signers")
	}
}

func TestNetValueQuery(t *testing.T) {
	env := setupKeeper(t)
	config := env.config()
	fundID := env.openFund(t, config)
	q := NewQueryServerImpl(env.keeper)

	nav, err := q.NetValue(env.ctx, fundID)
	if err != nil {
		t.Fatalf("net value: %v", err)
	}
	expectInt(t, "net value on sale", nav, 20)

	env.buy(t, fundID, env.alice, 5000)
	env.buy(t, fundID, env.bob, 5000)
	env.at(day)
	if _, err := env.keeper.CloseFundSales(env.ctx, env.owner, fundID); err != nil {
		t.Fatalf("close sales: %v", err)
	}

	// the position is marked down to 100020; one day accrues a fee of 20
	env.markPolicy(fundID, 100020)
	env.at(2 * day)

	fee, err := q.ManageFee(env.ctx, fundID)
	if err != nil {
		t.Fatalf("manage fee: %v", err)
	}
	expectInt(t, "manage fee", fee, 20)

	nav, err = q.NetValue(env.ctx, fundID)
	if err != nil {
		t.Fatalf("net value: %v", err)
	}
	expectInt(t, "net value closed", nav, 10)
}
