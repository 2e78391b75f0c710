package keeper

import (
	stdmath "math"
	"testing"

	"cosmossdk.io/math"

	"github.com/openalpha/fundchain/x/fund/types"
)

func TestExpiredLockReleasesWithoutUnlock(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	locker := env.carol

	if err := env.keeper.ApproveLock(env.ctx, fundID, env.alice, locker, math.NewInt(500), 60); err != nil {
		t.Fatalf("approve lock: %v", err)
	}
	if err := env.keeper.Lock(env.ctx, fundID, locker, env.alice, math.NewInt(500), 60); err != nil {
		t.Fatalf("lock: %v", err)
	}
	expectInt(t, "locked", env.keeper.LockedAmountOf(env.ctx, fundID, env.alice), 500)
	expectInt(t, "lockables", env.keeper.LockablesOf(env.ctx, fundID, env.alice), 100)

	env.at(100)
	expectInt(t, "locked after expiry", env.keeper.LockedAmountOf(env.ctx, fundID, env.alice), 0)
	expectInt(t, "lockables after expiry", env.keeper.LockablesOf(env.ctx, fundID, env.alice), 600)

	if err := env.keeper.Unlock(env.ctx, fundID, locker, env.alice, math.ZeroInt()); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	h := env.keeper.GetHolding(env.ctx, fundID, env.alice)
	if !h.LockTicket.IsEmpty() {
		t.Errorf("expected ticket to be cleared, got %+v", h.LockTicket)
	}
	attrs, ok := findEvent(env.ctx, types.EventTypeUnlock)
	if !ok {
		t.Fatal("expected unlock event")
	}
	if attrs[types.AttributeKeyAmount] != "500" {
		t.Errorf("expected full amount in unlock event, got %s", attrs[types.AttributeKeyAmount])
	}
}

func TestLockErrors(t *testing.T) {
	testCases := []struct {
		name    string
		approve int64
		maxDur  int64
		amount  int64
		dur     int64
		locker  func(env *testEnv) string
		want    error
	}{
		{
			name:    "wrong locker",
			approve: 300, maxDur: 100, amount: 100, dur: 50,
			locker: func(env *testEnv) string { return env.bob },
			want:   types.ErrNotLocker,
		},
		{
			name:    "above approved amount",
			approve: 300, maxDur: 100, amount: 301, dur: 50,
			locker: func(env *testEnv) string { return env.carol },
			want:   types.ErrExceedsApprovedAmount,
		},
		{
			name:    "above approved duration",
			approve: 300, maxDur: 100, amount: 100, dur: 101,
			locker: func(env *testEnv) string { return env.carol },
			want:   types.ErrExceedsApprovedDuration,
		},
		{
			name:    "above unlocked balance",
			approve: 600, maxDur: 100, amount: 601, dur: 50,
			locker: func(env *testEnv) string { return env.carol },
			want:   types.ErrInsufficientUnlockedBalance,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := setupKeeper(t)
			fundID := env.ledgerFund(t)
			if err := env.keeper.ApproveLock(env.ctx, fundID, env.alice, env.carol, math.NewInt(tc.approve), tc.maxDur); err != nil {
				t.Fatalf("approve lock: %v", err)
			}
			err := env.keeper.Lock(env.ctx, fundID, tc.locker(env), env.alice, math.NewInt(tc.amount), tc.dur)
			expectError(t, err, tc.want)
		})
	}
}

func TestApproveLockErrors(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)

	err := env.keeper.ApproveLock(env.ctx, fundID, env.alice, env.carol, math.NewInt(601), 100)
	expectError(t, err, types.ErrApproveExceedsBalance)

	if err := env.keeper.ApproveLock(env.ctx, fundID, env.alice, env.carol, math.NewInt(200), 100); err != nil {
		t.Fatalf("approve lock: %v", err)
	}
	if err := env.keeper.Lock(env.ctx, fundID, env.carol, env.alice, math.NewInt(100), 100); err != nil {
		t.Fatalf("lock: %v", err)
	}
	err = env.keeper.ApproveLock(env.ctx, fundID, env.alice, env.carol, math.NewInt(200), 100)
	expectError(t, err, types.ErrPriorLockOutstanding)

	// a second ticket cannot be opened while the first is active
	err = env.keeper.Lock(env.ctx, fundID, env.carol, env.alice, math.NewInt(50), 10)
	expectError(t, err, types.ErrNotLockingNow)
}

func TestLockDurationOverflow(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)

	err := env.keeper.ApproveLock(env.ctx, fundID, env.alice, env.carol, math.NewInt(200), stdmath.MaxInt64)
	expectError(t, err, types.ErrInvalidDuration)
	err = env.keeper.ApproveLock(env.ctx, fundID, env.alice, env.carol, math.NewInt(200), -1)
	expectError(t, err, types.ErrInvalidDuration)

	if err := env.keeper.ApproveLock(env.ctx, fundID, env.alice, env.carol, math.NewInt(200), types.MaxLockDuration); err != nil {
		t.Fatalf("approve lock: %v", err)
	}
	err = env.keeper.Lock(env.ctx, fundID, env.carol, env.alice, math.NewInt(100), stdmath.MaxInt64)
	expectError(t, err, types.ErrInvalidDuration)

	if err := env.keeper.Lock(env.ctx, fundID, env.carol, env.alice, math.NewInt(100), types.MaxLockDuration); err != nil {
		t.Fatalf("lock: %v", err)
	}
	env.at(types.MaxLockDuration)
	expectInt(t, "locked at the last second", env.keeper.LockedAmountOf(env.ctx, fundID, env.alice), 100)
	env.at(types.MaxLockDuration + 1)
	expectInt(t, "locked after the bound", env.keeper.LockedAmountOf(env.ctx, fundID, env.alice), 0)
}

func TestIncreaseLockAmount(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	locker := env.carol

	if err := env.keeper.ApproveLock(env.ctx, fundID, env.alice, locker, math.NewInt(400), 100); err != nil {
		t.Fatalf("approve lock: %v", err)
	}
	if err := env.keeper.Lock(env.ctx, fundID, locker, env.alice, math.NewInt(300), 100); err != nil {
		t.Fatalf("lock: %v", err)
	}

	err := env.keeper.IncreaseLockAmount(env.ctx, fundID, locker, env.alice, math.NewInt(101))
	expectError(t, err, types.ErrExceedsApprovedAmount)

	if err := env.keeper.IncreaseLockAmount(env.ctx, fundID, locker, env.alice, math.NewInt(100)); err != nil {
		t.Fatalf("increase lock: %v", err)
	}
	expectInt(t, "locked", env.keeper.LockedAmountOf(env.ctx, fundID, env.alice), 400)

	err = env.keeper.IncreaseLockAmount(env.ctx, fundID, env.bob, env.alice, math.NewInt(1))
	expectError(t, err, types.ErrNotLocker)

	env.at(101)
	err = env.keeper.IncreaseLockAmount(env.ctx, fundID, locker, env.alice, math.NewInt(1))
	expectError(t, err, types.ErrNotLockingNow)
}

func TestUnlock(t *testing.T) {
	env := setupKeeper(t)
	fundID := env.ledgerFund(t)
	locker := env.carol

	if err := env.keeper.ApproveLock(env.ctx, fundID, env.alice, locker, math.NewInt(300), 100); err != nil {
		t.Fatalf("approve lock: %v", err)
	}
	if err := env.keeper.Lock(env.ctx, fundID, locker, env.alice, math.NewInt(300), 100); err != nil {
		t.Fatalf("lock: %v", err)
	}

	err := env.keeper.Unlock(env.ctx, fundID, locker, env.alice, math.NewInt(301))
	expectError(t, err, types.ErrExceedsLockedAmount)

	err = env.keeper.Unlock(env.ctx, fundID, env.bob, env.alice, math.NewInt(1))
	expectError(t, err, types.ErrNotLocker)

	if err := env.keeper.Unlock(env.ctx, fundID, locker, env.alice, math.NewInt(100)); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	expectInt(t, "locked", env.keeper.LockedAmountOf(env.ctx, fundID, env.alice), 200)

	if err := env.keeper.UnlockAll(env.ctx, fundID, locker, env.alice); err != nil {
		t.Fatalf("unlock all: %v", err)
	}
	expectInt(t, "locked after unlock all", env.keeper.LockedAmountOf(env.ctx, fundID, env.alice), 0)

	err = env.keeper.UnlockAll(env.ctx, fundID, locker, env.alice)
	expectError(t, err, types.ErrNotLocker)
}
