package types

import (
	stdmath "math"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBonusWaterfall(t *testing.T) {
	split, err := ComputeBonus(BonusInputs{
		TotalSalesShare:         math.NewInt(20000),
		InitialNetValue:         math.NewInt(20),
		LastBonusAfterNetValue:  math.ZeroInt(),
		CurrentTotalValue:       math.NewInt(1_000_040),
		ElapsedDays:             1,
		ManagerFeeRatio:         100,
		ProtocolFeeRatio:        100,
		BonusRatio:              2000,
		ManagerBonusDivideRatio: 2000,
		SponsorDivideRatio:      2000,
		BonusManagerCount:       1,
	})
	require.NoError(t, err)

	expect := map[string]int64{
		"manage fee":     40,
		"net value diff": 50,
		"total increase": 1_000_000,
		"protocol fee":   10_000,
		"fund bonus":     198_000,
		"managers bonus": 39_600,
		"sponsor bonus":  7_920,
		"per manager":    31_680,
		"users bonus":    158_400,
		"after value":    39,
	}
	got := map[string]math.Int{
		"manage fee":     split.ManageFee,
		"net value diff": split.NetValueDiff,
		"total increase": split.TotalIncrease,
		"protocol fee":   split.ProtocolFee,
		"fund bonus":     split.FundTotalBonus,
		"managers bonus": split.ManagersBonus,
		"sponsor bonus":  split.SponsorBonus,
		"per manager":    split.PerManagerBonus,
		"users bonus":    split.UsersBonus,
		"after value":    split.AfterNetValue,
	}
	for name, want := range expect {
		assert.Equal(t, math.NewInt(want).String(), got[name].String(), name)
	}
	assert.True(t, split.ManagerRemainder.IsZero())
	assert.Equal(t, "208000", split.Withdrawal().String())
}

func TestComputeBonusSplitsManagers(t *testing.T) {
	in := BonusInputs{
		TotalSalesShare:         math.NewInt(1000),
		InitialNetValue:         math.NewInt(1),
		LastBonusAfterNetValue:  math.ZeroInt(),
		CurrentTotalValue:       math.NewInt(10_000),
		BonusRatio:              10000,
		ManagerBonusDivideRatio: 2000,
		SponsorDivideRatio:      0,
		BonusManagerCount:       3,
	}

	split, err := ComputeBonus(in)
	require.NoError(t, err)
	// 2000 for managers, split three ways
	assert.Equal(t, "666", split.PerManagerBonus.String())
	assert.Equal(t, "2", split.ManagerRemainder.String())
	assert.Equal(t, "0", split.AfterNetValue.String())

	in.BonusManagerCount = 0
	split, err = ComputeBonus(in)
	require.NoError(t, err)
	assert.Equal(t, split.ManagersBonus.String(), split.SponsorBonus.String())
	assert.True(t, split.PerManagerBonus.IsZero())
}

func TestComputeBonusNoProfit(t *testing.T) {
	base := BonusInputs{
		TotalSalesShare:        math.NewInt(20000),
		InitialNetValue:        math.NewInt(20),
		LastBonusAfterNetValue: math.NewInt(20),
		CurrentTotalValue:      math.NewInt(400_000),
		ElapsedDays:            1,
		ManagerFeeRatio:        100,
	}
	_, err := ComputeBonus(base)
	require.ErrorIs(t, err, ErrNoProfit)

	base.CurrentTotalValue = math.NewInt(40)
	_, err = ComputeBonus(base)
	require.ErrorIs(t, err, ErrNoProfit)

	base.TotalSalesShare = math.ZeroInt()
	_, err = ComputeBonus(base)
	require.ErrorIs(t, err, ErrZeroSupply)
}

func TestManageFee(t *testing.T) {
	fee, err := ManageFee(math.NewInt(10000), math.NewInt(10), 20, 10)
	require.NoError(t, err)
	assert.Equal(t, "20", fee.String())

	fee, err = ManageFee(math.NewInt(10000), math.NewInt(10), 20, 0)
	require.NoError(t, err)
	assert.True(t, fee.IsZero())
}

func TestAccumulator(t *testing.T) {
	inc, err := AccumulatorIncrement(math.NewInt(5), math.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, "5000000000", inc.String())

	pending, err := PendingBonus(math.NewInt(600), inc, math.ZeroInt())
	require.NoError(t, err)
	assert.Equal(t, "3", pending.String())

	debt, err := DebtFor(math.NewInt(600), inc)
	require.NoError(t, err)
	pending, err = PendingBonus(math.NewInt(600), inc, debt)
	require.NoError(t, err)
	assert.True(t, pending.IsZero())

	// a debt above the gross entitlement never yields a negative bonus
	pending, err = PendingBonus(math.NewInt(100), inc, debt)
	require.NoError(t, err)
	assert.True(t, pending.IsZero())

	_, err = AccumulatorIncrement(math.NewInt(5), math.ZeroInt())
	require.ErrorIs(t, err, ErrZeroSupply)
}

func TestRegisterBonusDenom(t *testing.T) {
	token := NewShareToken(1, "uusdc")
	assert.Equal(t, 1, token.BonusTokenIndex("uusdc"))
	assert.Equal(t, 0, token.BonusTokenIndex("ureward"))

	idx, err := token.RegisterBonusDenom("ureward", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = token.RegisterBonusDenom("ureward", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = token.RegisterBonusDenom("uother", 2)
	require.ErrorIs(t, err, ErrTooManyBonusTokens)
}

func TestRedemptionPayout(t *testing.T) {
	testCases := []struct {
		share, base, supply int64
		want                string
	}{
		{1000, 1000, 5000, "200"},
		{600, 1000, 5000, "120"},
		{5000, 1000, 5000, "1000"},
		{1, 1, 3, "0"},
	}
	for _, tc := range testCases {
		got, err := RedemptionPayout(math.NewInt(tc.share), math.NewInt(tc.base), math.NewInt(tc.supply))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String())
	}

	_, err := RedemptionPayout(math.NewInt(1), math.NewInt(1), math.ZeroInt())
	require.ErrorIs(t, err, ErrZeroSupply)
	_, err = RedemptionPayout(math.NewInt(6), math.NewInt(1), math.NewInt(5))
	require.ErrorIs(t, err, ErrRedeemExceedsShare)
}

func TestRedemptionBase(t *testing.T) {
	f := NewFund(1, "owner", "wallet", validConfig(), 0)
	f.InitialTotalValue = math.NewInt(10)
	f.RedemptionTotalValue = math.NewInt(20)

	f.Status = StatusSalesFailed
	assert.Equal(t, "10", RedemptionBase(f).String())
	f.Status = StatusRedemption
	assert.Equal(t, "20", RedemptionBase(f).String())
}

func TestNetValue(t *testing.T) {
	f := NewFund(1, "owner", "wallet", validConfig(), 0)
	f.TotalSalesShare = math.NewInt(10000)
	f.RedemptionNetValue = math.NewInt(33)

	testCases := []struct {
		status FundStatus
		want   string
	}{
		{StatusWaitingForSale, "20"},
		{StatusOnSale, "20"},
		{StatusSalesFailed, "20"},
		{StatusClosed, "10"},
		{StatusSettlement, "0"},
		{StatusRedemption, "33"},
		{StatusStop, "33"},
		{StatusLiquidation, "0"},
	}
	for _, tc := range testCases {
		f.Status = tc.status
		got := NetValue(f, math.NewInt(100_020), math.NewInt(20))
		assert.Equal(t, tc.want, got.String(), tc.status.String())
	}

	f.Status = StatusClosed
	assert.True(t, NetValue(f, math.NewInt(10), math.NewInt(20)).IsZero())
}

func TestLockTicket(t *testing.T) {
	ticket := LockTicket{Locker: "locker", Amount: math.NewInt(500), Start: 100, Duration: 60}
	assert.True(t, ticket.IsActive(160))
	assert.Equal(t, "500", ticket.LockedAmount(160).String())
	assert.True(t, ticket.IsExpired(161))
	assert.True(t, ticket.LockedAmount(161).IsZero())
	assert.False(t, ticket.IsEmpty())
	assert.True(t, EmptyLockTicket().IsEmpty())

	// a stored ticket whose end overflows int64 stays active instead of wrapping
	forever := LockTicket{Locker: "locker", Amount: math.NewInt(500), Start: 1_700_000_000, Duration: stdmath.MaxInt64}
	assert.Equal(t, int64(stdmath.MaxInt64), forever.End())
	assert.True(t, forever.IsActive(1_700_000_001))
	assert.Equal(t, "500", forever.LockedAmount(stdmath.MaxInt64).String())

	h := NewShareHolding()
	h.Balance = math.NewInt(800)
	h.LockTicket = ticket
	assert.Equal(t, "300", h.Lockables(120).String())
	assert.Equal(t, "800", h.Lockables(200).String())
	assert.False(t, h.IsEmpty())
	assert.True(t, NewShareHolding().IsEmpty())
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("0")
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = ParsePositiveAmount("42")
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())

	for _, s := range []string{"", "-1", "1.5", "abc"} {
		_, err := ParseAmount(s)
		assert.ErrorIs(t, err, ErrInvalidAmount, s)
	}
	_, err = ParsePositiveAmount("0")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
