package types

import (
	"cosmossdk.io/math"
)

// BonusInputs is everything the profit waterfall depends on
type BonusInputs struct {
	TotalSalesShare         math.Int
	InitialNetValue         math.Int
	LastBonusAfterNetValue  math.Int
	CurrentTotalValue       math.Int
	ElapsedDays             int64
	ManagerFeeRatio         uint64
	ProtocolFeeRatio        uint64
	BonusRatio              uint64
	ManagerBonusDivideRatio uint64
	SponsorDivideRatio      uint64
	BonusManagerCount       int
}

// BonusSplit is the result of one profit distribution
type BonusSplit struct {
	ManageFee        math.Int `json:"manage_fee"`
	NetValueDiff     math.Int `json:"net_value_diff"`
	TotalIncrease    math.Int `json:"total_increase"`
	ProtocolFee      math.Int `json:"protocol_fee"`
	FundTotalBonus   math.Int `json:"fund_total_bonus"`
	ManagersBonus    math.Int `json:"managers_bonus"`
	SponsorBonus     math.Int `json:"sponsor_bonus"`
	PerManagerBonus  math.Int `json:"per_manager_bonus"`
	ManagerRemainder math.Int `json:"manager_remainder"`
	UsersBonus       math.Int `json:"users_bonus"`
	AfterNetValue    math.Int `json:"after_net_value"`
}

// Withdrawal returns the amount pulled from the invest policy
func (s BonusSplit) Withdrawal() math.Int {
	return s.ProtocolFee.Add(s.FundTotalBonus)
}

// ManageFee returns share * netValue * feeRatio * days / ManageFeeDenominator
func ManageFee(share, netValue math.Int, feeRatio uint64, days int64) (math.Int, error) {
	if days <= 0 || feeRatio == 0 {
		return math.ZeroInt(), nil
	}
	v, err := checked(share.SafeMul(netValue))
	if err != nil {
		return math.Int{}, err
	}
	if v, err = checked(v.SafeMul(math.NewIntFromUint64(feeRatio))); err != nil {
		return math.Int{}, err
	}
	if v, err = checked(v.SafeMul(math.NewInt(days))); err != nil {
		return math.Int{}, err
	}
	return v.QuoRaw(ManageFeeDenominator), nil
}

func mulRatio(v math.Int, ratio uint64) (math.Int, error) {
	scaled, err := checked(v.SafeMul(math.NewIntFromUint64(ratio)))
	if err != nil {
		return math.Int{}, err
	}
	return scaled.QuoRaw(RatioDenominator), nil
}

// ComputeBonus runs the fee and profit waterfall
func ComputeBonus(in BonusInputs) (BonusSplit, error) {
	if in.TotalSalesShare.IsNil() || !in.TotalSalesShare.IsPositive() {
		return BonusSplit{}, ErrZeroSupply
	}

	fee, err := ManageFee(in.TotalSalesShare, in.InitialNetValue, in.ManagerFeeRatio, in.ElapsedDays)
	if err != nil {
		return BonusSplit{}, err
	}
	net := in.CurrentTotalValue.Sub(fee)
	if !net.IsPositive() {
		return BonusSplit{}, ErrNoProfit
	}

	diff := net.Quo(in.TotalSalesShare).Sub(in.LastBonusAfterNetValue)
	if !diff.IsPositive() {
		return BonusSplit{}, ErrNoProfit
	}

	totalIncrease, err := checked(diff.SafeMul(in.TotalSalesShare))
	if err != nil {
		return BonusSplit{}, err
	}
	protocolFee, err := mulRatio(totalIncrease, in.ProtocolFeeRatio)
	if err != nil {
		return BonusSplit{}, err
	}
	fundTotalBonus, err := mulRatio(totalIncrease.Sub(protocolFee), in.BonusRatio)
	if err != nil {
		return BonusSplit{}, err
	}
	managersBonus, err := mulRatio(fundTotalBonus, in.ManagerBonusDivideRatio)
	if err != nil {
		return BonusSplit{}, err
	}
	sponsorBonus, err := mulRatio(managersBonus, in.SponsorDivideRatio)
	if err != nil {
		return BonusSplit{}, err
	}

	perManager, remainder := math.ZeroInt(), math.ZeroInt()
	rest := managersBonus.Sub(sponsorBonus)
	if in.BonusManagerCount > 0 {
		count := math.NewInt(int64(in.BonusManagerCount))
		perManager = rest.Quo(count)
		remainder = rest.Sub(perManager.Mul(count))
	} else {
		sponsorBonus = managersBonus
	}

	after := net.Sub(protocolFee).Sub(fundTotalBonus)
	if after.IsNegative() {
		after = math.ZeroInt()
	}

	return BonusSplit{
		ManageFee:        fee,
		NetValueDiff:     diff,
		TotalIncrease:    totalIncrease,
		ProtocolFee:      protocolFee,
		FundTotalBonus:   fundTotalBonus,
		ManagersBonus:    managersBonus,
		SponsorBonus:     sponsorBonus,
		PerManagerBonus:  perManager,
		ManagerRemainder: remainder,
		UsersBonus:       fundTotalBonus.Sub(managersBonus),
		AfterNetValue:    after.Quo(in.TotalSalesShare),
	}, nil
}
