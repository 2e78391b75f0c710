package types

import (
	"cosmossdk.io/math"
)

// Fund is the lifecycle and accounting record of one fund
type Fund struct {
	ID             uint64     `json:"id"`
	Owner          string     `json:"owner"`
	MultiSigWallet string     `json:"multisig_wallet"`
	Status         FundStatus `json:"status"`
	Config         FundConfig `json:"config"`

	TotalSalesShare        math.Int `json:"total_sales_share"`
	InitialTotalValue      math.Int `json:"initial_total_value"`
	LastBonusAfterNetValue math.Int `json:"last_bonus_after_net_value"`
	RedemptionTotalValue   math.Int `json:"redemption_total_value"`
	RedemptionNetValue     math.Int `json:"redemption_net_value"`
	TotalUsersBonusAmount  math.Int `json:"total_users_bonus_amount"`

	LastBonusTime             int64 `json:"last_bonus_time"`
	SalesPeriodStartTime      int64 `json:"sales_period_start_time"`
	ClosedPeriodStartTime     int64 `json:"closed_period_start_time"`
	RedemptionPeriodStartTime int64 `json:"redemption_period_start_time"`

	IsChangeInvestPolicy bool   `json:"is_change_invest_policy"`
	NewInvestPolicy      string `json:"new_invest_policy,omitempty"`

	CreatedAt int64 `json:"created_at"`
}

// NewFund creates a fund waiting for its sale to start
func NewFund(id uint64, owner, multisig string, config FundConfig, createdAt int64) *Fund {
	return &Fund{
		ID:                     id,
		Owner:                  owner,
		MultiSigWallet:         multisig,
		Status:                 StatusWaitingForSale,
		Config:                 config,
		TotalSalesShare:        math.ZeroInt(),
		InitialTotalValue:      math.ZeroInt(),
		LastBonusAfterNetValue: math.ZeroInt(),
		RedemptionTotalValue:   math.ZeroInt(),
		RedemptionNetValue:     math.ZeroInt(),
		TotalUsersBonusAmount:  math.ZeroInt(),
		CreatedAt:              createdAt,
	}
}

// Sponsor returns the address receiving the sponsor share of manager bonus
func (f *Fund) Sponsor() string {
	return f.Owner
}

// IsPerpetual returns true if the fund may continue after redemption
func (f *Fund) IsPerpetual() bool {
	return f.Config.IsPerpetual()
}

// BonusManagers returns the managers paid a per-manager bonus, which
// excludes the sponsor
func (f *Fund) BonusManagers() []string {
	out := make([]string, 0, len(f.Config.Manage.Managers))
	for _, m := range f.Config.Manage.Managers {
		if m != f.Sponsor() {
			out = append(out, m)
		}
	}
	return out
}

// RemainingShare returns the shares left before the raise target is reached
func (f *Fund) RemainingShare() math.Int {
	remaining := f.Config.Raise.TargetRaiseShare.Sub(f.TotalSalesShare)
	if remaining.IsNegative() {
		return math.ZeroInt()
	}
	return remaining
}

// Elapsed reports whether period seconds have passed since start
func Elapsed(start, period, now int64) bool {
	return now >= start+period
}

// BaseNetValue returns the per-share value the current closed period was
// opened at, which the management fee accrues on
func (f *Fund) BaseNetValue() math.Int {
	if f.TotalSalesShare.IsPositive() && f.InitialTotalValue.IsPositive() {
		return f.InitialTotalValue.Quo(f.TotalSalesShare)
	}
	return f.Config.Raise.InitialNetValue
}
