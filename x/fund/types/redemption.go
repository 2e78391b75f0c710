package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// RedemptionBase returns the value redeemed shares are paid out of
func RedemptionBase(f *Fund) math.Int {
	if f.Status == StatusSalesFailed {
		return f.InitialTotalValue
	}
	return f.RedemptionTotalValue
}

// RedemptionPayout returns share * base / totalSupply
func RedemptionPayout(share, base, totalSupply math.Int) (math.Int, error) {
	if totalSupply.IsNil() || !totalSupply.IsPositive() {
		return math.Int{}, ErrZeroSupply
	}
	if share.GT(totalSupply) {
		return math.Int{}, errors.Wrapf(ErrRedeemExceedsShare, "share %s exceeds supply %s", share, totalSupply)
	}
	scaled, err := checked(share.SafeMul(base))
	if err != nil {
		return math.Int{}, err
	}
	return scaled.Quo(totalSupply), nil
}

// NetValue returns the per-share value reported for a fund in its current
// status. totalValue and manageFee are only consulted while CLOSED.
func NetValue(f *Fund, totalValue, manageFee math.Int) math.Int {
	switch f.Status {
	case StatusClosed:
		if !f.TotalSalesShare.IsPositive() {
			return math.ZeroInt()
		}
		net := totalValue.Sub(manageFee)
		if net.IsNegative() {
			return math.ZeroInt()
		}
		return net.Quo(f.TotalSalesShare)
	case StatusRedemption, StatusStop:
		return f.RedemptionNetValue
	case StatusWaitingForSale, StatusOnSale, StatusSalesFailed:
		return f.Config.Raise.InitialNetValue
	default:
		return math.ZeroInt()
	}
}
