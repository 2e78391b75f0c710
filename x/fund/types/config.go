package types

import (
	"regexp"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Ratio limits
const (
	RatioDenominator           = 10000
	MaxSponsorDivideRatio      = 10000
	MaxBonusRatio              = 10000
	MaxManagerBonusDivideRatio = 2000
	MaxManagerFeeRatio         = 100
	ManageFeeDenominator       = 1_000_000
)

// policyNameRegex matches invest policy strategy names
var policyNameRegex = regexp.MustCompile(`^[a-z][a-z0-9._-]{0,63}$`)

// ValidatePolicyName checks an invest policy strategy name. Policies are
// named, not addressed: their capital always sits in PolicyAddress.
func ValidatePolicyName(name string) error {
	if !policyNameRegex.MatchString(name) {
		return errors.Wrapf(ErrInvalidInvestPolicy, "%q", name)
	}
	if _, err := sdk.AccAddressFromBech32(name); err == nil {
		return errors.Wrapf(ErrInvalidInvestPolicy, "%s is an account address", name)
	}
	return nil
}

// RaiseData configures the sale period
type RaiseData struct {
	RaiseDenom       string   `json:"raise_denom"`
	TargetRaiseShare math.Int `json:"target_raise_share"`
	InitialNetValue  math.Int `json:"initial_net_value"`
	MinRaiseShare    math.Int `json:"min_raise_share"`
	IsHardTop        bool     `json:"is_hard_top"`
	RaisePeriod      int64    `json:"raise_period"`
	MinSharePurchase math.Int `json:"min_share_purchase"`
	MaxSharePurchase math.Int `json:"max_share_purchase"`
}

// BonusData configures profit distribution
type BonusData struct {
	BonusPeriod             int64  `json:"bonus_period"`
	BonusRatio              uint64 `json:"bonus_ratio"`
	ManagerBonusDivideRatio uint64 `json:"manager_bonus_divide_ratio"`
}

// ManageData configures the management team
type ManageData struct {
	Managers                    []string `json:"managers"`
	NumberOfNeedSignedAddresses uint64   `json:"number_of_need_signed_addresses"`
	ManagerFeeRatio             uint64   `json:"manager_fee_ratio"`
}

// FundConfig is the full set of parameters a fund is created with
type FundConfig struct {
	Name               string     `json:"name"`
	InvestPolicy       string     `json:"invest_policy"`
	ClosedPeriod       int64      `json:"closed_period"`
	RedemptionPeriod   int64      `json:"redemption_period"`
	MinOpenInterest    math.Int   `json:"min_open_interest"`
	SponsorDivideRatio uint64     `json:"sponsor_divide_ratio"`
	Raise              RaiseData  `json:"raise"`
	Bonus              BonusData  `json:"bonus"`
	Manage             ManageData `json:"manage"`
}

// IsPerpetual returns true if the fund may continue after redemption
func (c FundConfig) IsPerpetual() bool {
	return c.RedemptionPeriod != 0
}

func isNilOrNegative(v math.Int) bool {
	return v.IsNil() || v.IsNegative()
}

// Validate checks the config against the bounds enforced at creation and on
// every later mutation
func (c FundConfig) Validate() error {
	if c.Name == "" {
		return errors.Wrap(ErrInvalidFundConfig, "name cannot be empty")
	}
	if err := ValidatePolicyName(c.InvestPolicy); err != nil {
		return err
	}
	if c.ClosedPeriod < 0 || c.RedemptionPeriod < 0 || c.Raise.RaisePeriod < 0 || c.Bonus.BonusPeriod < 0 {
		return errors.Wrap(ErrInvalidFundConfig, "periods cannot be negative")
	}
	if isNilOrNegative(c.MinOpenInterest) {
		return errors.Wrap(ErrInvalidFundConfig, "min open interest cannot be negative")
	}
	if c.SponsorDivideRatio > MaxSponsorDivideRatio {
		return ErrInvalidSponsorRatio
	}
	if err := c.Raise.Validate(); err != nil {
		return err
	}
	if c.Bonus.BonusRatio > MaxBonusRatio {
		return ErrInvalidBonusRatio
	}
	if c.Bonus.ManagerBonusDivideRatio > MaxManagerBonusDivideRatio {
		return ErrInvalidManagerBonusRatio
	}
	return c.Manage.Validate()
}

// Validate checks the sale parameters
func (r RaiseData) Validate() error {
	if err := sdk.ValidateDenom(r.RaiseDenom); err != nil {
		return errors.Wrapf(ErrInvalidFundConfig, "raise denom: %s", err)
	}
	for _, v := range []math.Int{r.TargetRaiseShare, r.MinRaiseShare, r.MinSharePurchase, r.MaxSharePurchase} {
		if isNilOrNegative(v) {
			return errors.Wrap(ErrInvalidFundConfig, "share amounts cannot be negative")
		}
	}
	if r.InitialNetValue.IsNil() || !r.InitialNetValue.IsPositive() {
		return errors.Wrap(ErrInvalidFundConfig, "initial net value must be positive")
	}
	if r.MinSharePurchase.GTE(r.MaxSharePurchase) {
		return ErrInvalidPurchaseBounds
	}
	return nil
}

// Validate checks the management team
func (m ManageData) Validate() error {
	if len(m.Managers) == 0 {
		return errors.Wrap(ErrInvalidFundConfig, "at least one manager is required")
	}
	seen := make(map[string]bool, len(m.Managers))
	for _, manager := range m.Managers {
		if _, err := sdk.AccAddressFromBech32(manager); err != nil {
			return errors.Wrapf(ErrInvalidFundConfig, "manager %s: %s", manager, err)
		}
		if seen[manager] {
			return errors.Wrapf(ErrInvalidFundConfig, "duplicate manager %s", manager)
		}
		seen[manager] = true
	}
	if m.NumberOfNeedSignedAddresses == 0 || m.NumberOfNeedSignedAddresses > uint64(len(m.Managers)) {
		return ErrInvalidSignerCount
	}
	if m.ManagerFeeRatio > MaxManagerFeeRatio {
		return ErrInvalidManagerFeeRatio
	}
	return nil
}

// IsManager returns true if addr is one of the configured managers
func (m ManageData) IsManager(addr string) bool {
	for _, manager := range m.Managers {
		if manager == addr {
			return true
		}
	}
	return false
}
