package keeper

import (
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

const rewardDenom = "ureward"

func (e *testEnv) ledgerFund(t *testing.T) uint64 {
	t.Helper()
	fundID := e.createFund(t, e.config())
	if err := e.keeper.Mint(e.ctx, fundID, e.alice, math.NewInt(600)); err != nil {
		t.Fatalf("failed to mint: %v", err)
	}
	if err := e.keeper.Mint(e.ctx, fundID, e.bob, math.NewInt(400)); err != nil {
		t.Fatalf("failed to mint: %v", err)
	}
	return fundID
}

func (e *testEnv) offer(t *testing.T, fundID uint64, denom string, amount int64) {
	t.Helper()
	payer := acc(e.carol)
	e.bank.mint(payer, sdk.NewCoins(sdk.NewInt64Coin(denom, amount)))
	if err := e.keeper.OfferBonus(e.ctx, fundID, payer, denom, math.NewInt(amount)); err != nil {
		t.Fatalf("failed to offer bonus: %v", err)
	}
}

func pendingOf(coins []sdk.Coin, denom string) math.Int {
	for _, c := range coins {
		if c.Denom == denom {
			return c.Amount
		}
	}
	return math.ZeroInt()
}

// TestOfferBonusSplitsBySupply offers 5 tokens over 1000 shares held 600/400
func TestOfferBonusSplitsBySupply(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	env.offer(t, fundID, rewardDenom, 5)

	expectInt(t, "accumulator", env.keeper.GetAccumulator(env.ctx, fundID, rewardDenom), 5_000_000_000)

	alice, err := env.keeper.PendingBonus(env.ctx, fundID, env.alice)
	if err != nil {
		t.Fatalf("pending bonus: %v", err)
	}
	expectInt(t, "alice pending", pendingOf(alice, rewardDenom), 3)

	bob, _ := env.keeper.PendingBonus(env.ctx, fundID, env.bob)
	expectInt(t, "bob pending", pendingOf(bob, rewardDenom), 2)

	expectInt(t, "bonus pool", env.bank.balance(types.BonusPoolAddress(fundID), rewardDenom), 5)

	token, _ := env.keeper.GetShareToken(env.ctx, fundID)
	if token.BonusTokenIndex(rewardDenom) != 2 {
		t.Errorf("expected reward denom at index 2, got %d", token.BonusTokenIndex(rewardDenom))
	}
	attrs, ok := findEvent(env.ctx, types.EventTypeOfferBonus)
	if !ok {
		t.Fatal("expected offer_bonus event")
	}
	if attrs[types.AttributeKeyBonusTokenIndex] != "2" {
		t.Errorf("expected bonus token index 2, got %s", attrs[types.AttributeKeyBonusTokenIndex])
	}
}

func TestOfferBonusZeroSupply(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.createFund(t, env.config())
	payer := acc(env.carol)
	env.bank.mint(payer, sdk.NewCoins(sdk.NewInt64Coin(rewardDenom, 5)))

	err := env.keeper.OfferBonus(env.ctx, fundID, payer, rewardDenom, math.NewInt(5))
	expectError(t, err, types.ErrZeroSupply)

	// nothing leaves the payer when the offer is refused
	expectInt(t, "payer balance", env.bank.balance(payer, rewardDenom), 5)

	if err := env.keeper.OfferBonus(env.ctx, fundID, payer, rewardDenom, math.ZeroInt()); err != nil {
		t.Errorf("expected zero offer to be a no-op, got %v", err)
	}
}

func TestOfferBonusTokenLimit(t *testing.T) {
	env := setupKeeper(t)
	params := env.keeper.GetParams(env.ctx)
	params.MaxBonusTokens = 2
	if err := env.keeper.SetParams(env.ctx, params); err != nil {
		t.Fatalf("set params: %v", err)
	}
	fundID := env.ledgerFund(t)

	env.offer(t, fundID, rewardDenom, 10)
	env.offer(t, fundID, testDenom, 10)

	payer := acc(env.carol)
	env.bank.mint(payer, sdk.NewCoins(sdk.NewInt64Coin("uother", 10)))
	err := env.keeper.OfferBonus(env.ctx, fundID, payer, "uother", math.NewInt(10))
	expectError(t, err, types.ErrTooManyBonusTokens)
}

func TestTransferSettlesBonus(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	env.offer(t, fundID, rewardDenom, 5)

	if err := env.keeper.Transfer(env.ctx, fundID, env.alice, env.bob, math.NewInt(100)); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	expectInt(t, "alice reward", env.bank.balance(acc(env.alice), rewardDenom), 3)
	expectInt(t, "bob reward", env.bank.balance(acc(env.bob), rewardDenom), 2)
	expectInt(t, "alice shares", env.keeper.BalanceOf(env.ctx, fundID, env.alice), 500)
	expectInt(t, "bob shares", env.keeper.BalanceOf(env.ctx, fundID, env.bob), 500)

	// the new balances start from the current accumulator
	for _, holder := range []string{env.alice, env.bob} {
		pending, _ := env.keeper.PendingBonus(env.ctx, fundID, holder)
		expectInt(t, "pending after transfer", pendingOf(pending, rewardDenom), 0)
	}

	env.offer(t, fundID, rewardDenom, 10)
	pending, _ := env.keeper.PendingBonus(env.ctx, fundID, env.alice)
	expectInt(t, "alice pending after second offer", pendingOf(pending, rewardDenom), 5)
}

func TestTransferToSelfDrawsBonus(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	env.offer(t, fundID, rewardDenom, 5)

	if err := env.keeper.Transfer(env.ctx, fundID, env.alice, env.alice, math.NewInt(600)); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	expectInt(t, "alice shares", env.keeper.BalanceOf(env.ctx, fundID, env.alice), 600)
	expectInt(t, "alice reward", env.bank.balance(acc(env.alice), rewardDenom), 3)
}

func TestMintAndBurnSupply(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	expectInt(t, "supply", env.keeper.TotalSupply(env.ctx, fundID), 1000)

	if err := env.keeper.Burn(env.ctx, fundID, env.bob, math.NewInt(400)); err != nil {
		t.Fatalf("burn: %v", err)
	}
	expectInt(t, "supply after burn", env.keeper.TotalSupply(env.ctx, fundID), 600)
	expectInt(t, "bob shares", env.keeper.BalanceOf(env.ctx, fundID, env.bob), 0)

	err := env.keeper.Burn(env.ctx, fundID, env.bob, math.NewInt(1))
	expectError(t, err, types.ErrInsufficientUnlockedBalance)
}

func TestTransferRespectsLocks(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	locker := env.carol

	if err := env.keeper.ApproveLock(env.ctx, fundID, env.alice, locker, math.NewInt(500), 100); err != nil {
		t.Fatalf("approve lock: %v", err)
	}
	if err := env.keeper.Lock(env.ctx, fundID, locker, env.alice, math.NewInt(500), 100); err != nil {
		t.Fatalf("lock: %v", err)
	}

	err := env.keeper.Transfer(env.ctx, fundID, env.alice, env.bob, math.NewInt(101))
	expectError(t, err, types.ErrInsufficientUnlockedBalance)

	if err := env.keeper.Transfer(env.ctx, fundID, env.alice, env.bob, math.NewInt(100)); err != nil {
		t.Errorf("expected unlocked part to move, got %v", err)
	}

	// once the ticket expires the whole balance is free again
	env.at(101)
	if err := env.keeper.Transfer(env.ctx, fundID, env.alice, env.bob, math.NewInt(500)); err != nil {
		t.Errorf("expected transfer after expiry, got %v", err)
	}
}

func TestTransferFromAllowance(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)

	err := env.keeper.TransferFrom(env.ctx, fundID, env.carol, env.alice, env.bob, math.NewInt(10))
	expectError(t, err, types.ErrInsufficientAllowance)

	if err := env.keeper.Approve(env.ctx, fundID, env.alice, env.carol, math.NewInt(50)); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := env.keeper.TransferFrom(env.ctx, fundID, env.carol, env.alice, env.bob, math.NewInt(30)); err != nil {
		t.Fatalf("transfer from: %v", err)
	}
	expectInt(t, "allowance", env.keeper.GetAllowance(env.ctx, fundID, env.alice, env.carol), 20)
	expectInt(t, "bob shares", env.keeper.BalanceOf(env.ctx, fundID, env.bob), 430)

	err = env.keeper.TransferFrom(env.ctx, fundID, env.carol, env.alice, env.bob, math.NewInt(21))
	expectError(t, err, types.ErrInsufficientAllowance)
}

func TestDrawBonus(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	env.offer(t, fundID, rewardDenom, 5)

	drawn, err := env.keeper.DrawBonus(env.ctx, fundID, env.alice)
	if err != nil {
		t.Fatalf("draw bonus: %v", err)
	}
	expectInt(t, "drawn", drawn.AmountOf(rewardDenom), 3)

	// a second draw has nothing left
	drawn, err = env.keeper.DrawBonus(env.ctx, fundID, env.alice)
	if err != nil {
		t.Fatalf("draw bonus: %v", err)
	}
	if !drawn.IsZero() {
		t.Errorf("expected nothing on second draw, got %s", drawn)
	}
	expectInt(t, "shares untouched", env.keeper.BalanceOf(env.ctx, fundID, env.alice), 600)
}

// TestLedgerRandomSequence drives a fixed-seed mix of ledger operations and
// checks that balances sum to supply and undrawn bonus stays covered by the pool
func TestLedgerRandomSequence(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	holders := []string{env.alice, env.bob, env.carol}
	rng := rand.New(rand.NewSource(7))
	offered := math.ZeroInt()

	for step := 0; step < 400; step++ {
		holder := holders[rng.Intn(len(holders))]
		bal := env.keeper.BalanceOf(env.ctx, fundID, holder)
		supply := env.keeper.TotalSupply(env.ctx, fundID)

		switch op := rng.Intn(5); op {
		case 0:
			amt := math.NewInt(rng.Int63n(500) + 1)
			if err := env.keeper.Mint(env.ctx, fundID, holder, amt); err != nil {
				t.Fatalf("step %d mint: %v", step, err)
			}
		case 1:
			// keep supply positive so offers stay valid
			if !bal.IsPositive() || bal.GTE(supply) {
				continue
			}
			amt := math.NewInt(rng.Int63n(bal.Int64()) + 1)
			if err := env.keeper.Burn(env.ctx, fundID, holder, amt); err != nil {
				t.Fatalf("step %d burn: %v", step, err)
			}
		case 2:
			if !bal.IsPositive() {
				continue
			}
			to := holders[rng.Intn(len(holders))]
			amt := math.NewInt(rng.Int63n(bal.Int64()) + 1)
			if err := env.keeper.Transfer(env.ctx, fundID, holder, to, amt); err != nil {
				t.Fatalf("step %d transfer: %v", step, err)
			}
		case 3:
			amt := rng.Int63n(1000) + 1
			env.offer(t, fundID, rewardDenom, amt)
			offered = offered.AddRaw(amt)
		case 4:
			if _, err := env.keeper.DrawBonus(env.ctx, fundID, holder); err != nil {
				t.Fatalf("step %d draw: %v", step, err)
			}
		}

		sum := math.ZeroInt()
		pendingSum := math.ZeroInt()
		paid := math.ZeroInt()
		for _, h := range holders {
			sum = sum.Add(env.keeper.BalanceOf(env.ctx, fundID, h))
			pending, err := env.keeper.PendingBonus(env.ctx, fundID, h)
			if err != nil {
				t.Fatalf("step %d pending: %v", step, err)
			}
			p := pendingOf(pending, rewardDenom)
			if p.IsNegative() {
				t.Fatalf("step %d: negative pending %s for %s", step, p, h)
			}
			pendingSum = pendingSum.Add(p)
			paid = paid.Add(env.bank.balance(acc(h), rewardDenom))
		}
		if got := env.keeper.TotalSupply(env.ctx, fundID); !sum.Equal(got) {
			t.Fatalf("step %d: balances sum to %s, supply is %s", step, sum, got)
		}
		pool := env.bank.balance(types.BonusPoolAddress(fundID), rewardDenom)
		if pendingSum.GT(pool) {
			t.Fatalf("step %d: pending %s exceeds bonus pool %s", step, pendingSum, pool)
		}
		if !pool.Add(paid).Equal(offered) {
			t.Fatalf("step %d: pool %s plus paid %s differs from offered %s", step, pool, paid, offered)
		}
	}
}
