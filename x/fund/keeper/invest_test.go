package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

func investRequest(harvest bool) types.InvestRequest {
	return types.InvestRequest{Defi: "pool-7", Params: []byte(`{"action":"stake"}`), Denom: testDenom, HasHarvest: harvest}
}

func TestFundInvestSingleSigner(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.closedFund(t, env.config())
	env.invest.harvest = sdk.NewCoins(sdk.NewInt64Coin(rewardDenom, 1000))

	_, _, err := env.keeper.FundInvest(env.ctx, env.carol, fundID, investRequest(true))
	expectError(t, err, types.ErrNotAdmin)

	executed, harvested, err := env.keeper.FundInvest(env.ctx, env.alice, fundID, investRequest(true))
	if err != nil {
		t.Fatalf("fund invest: %v", err)
	}
	if !executed {
		t.Fatal("expected direct execution with one signer")
	}
	expectInt(t, "harvested", harvested.AmountOf(rewardDenom), 1000)

	if len(env.invest.requests) != 1 {
		t.Fatalf("expected one invest request, got %d", len(env.invest.requests))
	}
	req := env.invest.requests[0]
	if req.FundID != fundID || req.Recipient != types.EscrowAddress(fundID).String() {
		t.Errorf("unexpected request %+v", req)
	}

	// harvest is offered to holders 600/400
	pending, _ := env.keeper.PendingBonus(env.ctx, fundID, env.alice)
	expectInt(t, "alice reward", pendingOf(pending, rewardDenom), 600)
	pending, _ = env.keeper.PendingBonus(env.ctx, fundID, env.bob)
	expectInt(t, "bob reward", pendingOf(pending, rewardDenom), 400)

	drawn, err := env.keeper.WithdrawFundBonus(env.ctx, env.bob, fundID)
	if err != nil {
		t.Fatalf("withdraw bonus: %v", err)
	}
	expectInt(t, "bob drawn", drawn.AmountOf(rewardDenom), 400)
	last := env.history.records[len(env.history.records)-1]
	if last.Kind != types.HistoryKindWithdrawBonus || last.Account != env.bob {
		t.Errorf("expected withdraw record for bob, got %+v", last)
	}
}

func TestFundInvestMultiSig(t *testing.T) {
	env := setupKeeper(t)
	config := env.config()
	config.Manage.NumberOfNeedSignedAddresses = 2
	fundID := env.closedFund(t, config)

	executed, _, err := env.keeper.FundInvest(env.ctx, env.alice, fundID, investRequest(false))
	if err != nil {
		t.Fatalf("fund invest: %v", err)
	}
	if executed || len(env.invest.requests) != 0 {
		t.Fatal("expected a proposal only")
	}
	attrs, ok := findEvent(env.ctx, types.EventTypeFundInvestProposed)
	if !ok {
		t.Fatal("expected fund_invest_proposed event")
	}
	if attrs[types.AttributeKeySigners] != "2" {
		t.Errorf("expected 2 signers, got %s", attrs[types.AttributeKeySigners])
	}

	_, err = env.keeper.ExecuteFundInvest(env.ctx, env.alice, fundID, investRequest(false))
	expectError(t, err, types.ErrNotMultiSig)

	if _, err := env.keeper.ExecuteFundInvest(env.ctx, env.wallet, fundID, investRequest(false)); err != nil {
		t.Fatalf("execute invest: %v", err)
	}
	if len(env.invest.requests) != 1 {
		t.Errorf("expected one executed request, got %d", len(env.invest.requests))
	}
}

func TestExecuteFundInvestStatus(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.openFund(t, env.config())

	// status is checked before the caller
	_, err := env.keeper.ExecuteFundInvest(env.ctx, env.alice, fundID, investRequest(false))
	expectError(t, err, types.ErrInvalidStatus)
}

func TestWithdrawFundBonusEmpty(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.closedFund(t, env.config())
	before := len(env.history.records)

	drawn, err := env.keeper.WithdrawFundBonus(env.ctx, env.alice, fundID)
	if err != nil {
		t.Fatalf("withdraw bonus: %v", err)
	}
	if !drawn.IsZero() {
		t.Errorf("expected nothing to draw, got %s", drawn)
	}
	if len(env.history.records) != before {
		t.Error("expected no history record for an empty draw")
	}
	expectInt(t, "shares", env.keeper.BalanceOf(env.ctx, fundID, env.alice), 600)
}
