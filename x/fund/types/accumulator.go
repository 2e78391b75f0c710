package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// BonusScale is the fixed-point scale of accumulators and bonus debts
var BonusScale = math.NewInt(1_000_000_000_000)

// BonusAccumulator is the cumulative bonus per share of one reward denom
type BonusAccumulator struct {
	Denom             string   `json:"denom"`
	AccBonusPerTokenX math.Int `json:"acc_bonus_per_token_x"`
}

// ShareToken is the supply-side record of a fund's shares
type ShareToken struct {
	FundID      uint64   `json:"fund_id"`
	TotalSupply math.Int `json:"total_supply"`
	BonusDenoms []string `json:"bonus_denoms"`
}

// NewShareToken creates a share token with the fund's settlement denom as
// its first bonus token
func NewShareToken(fundID uint64, raiseDenom string) *ShareToken {
	return &ShareToken{
		FundID:      fundID,
		TotalSupply: math.ZeroInt(),
		BonusDenoms: []string{raiseDenom},
	}
}

// BonusTokenIndex returns the 1-based index of denom, or 0 if unregistered
func (t *ShareToken) BonusTokenIndex(denom string) int {
	for i, d := range t.BonusDenoms {
		if d == denom {
			return i + 1
		}
	}
	return 0
}

// RegisterBonusDenom adds denom to the bonus token list if needed and returns its index
func (t *ShareToken) RegisterBonusDenom(denom string, max uint32) (int, error) {
	if idx := t.BonusTokenIndex(denom); idx > 0 {
		return idx, nil
	}
	if uint32(len(t.BonusDenoms)) >= max {
		return 0, ErrTooManyBonusTokens
	}
	t.BonusDenoms = append(t.BonusDenoms, denom)
	return len(t.BonusDenoms), nil
}

func checked(v math.Int, err error) (math.Int, error) {
	if err != nil {
		return math.Int{}, errors.Wrap(ErrArithmeticOverflow, err.Error())
	}
	return v, nil
}

// AccumulatorIncrement returns amount*BonusScale/totalSupply
func AccumulatorIncrement(amount, totalSupply math.Int) (math.Int, error) {
	if totalSupply.IsNil() || !totalSupply.IsPositive() {
		return math.Int{}, ErrZeroSupply
	}
	scaled, err := checked(amount.SafeMul(BonusScale))
	if err != nil {
		return math.Int{}, err
	}
	return scaled.Quo(totalSupply), nil
}

// DebtFor returns the bonus debt snapshot of balance at accX
func DebtFor(balance, accX math.Int) (math.Int, error) {
	return checked(balance.SafeMul(accX))
}

// PendingBonus returns (balance*accX - debtX) / BonusScale, never negative
func PendingBonus(balance, accX, debtX math.Int) (math.Int, error) {
	gross, err := DebtFor(balance, accX)
	if err != nil {
		return math.Int{}, err
	}
	pending := gross.Sub(debtX)
	if !pending.IsPositive() {
		return math.ZeroInt(), nil
	}
	return pending.Quo(BonusScale), nil
}
