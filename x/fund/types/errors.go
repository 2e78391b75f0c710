package types

import (
	"cosmossdk.io/errors"
)

// Module error codes
var (
	// Authorization errors
	ErrUnauthorized  = errors.Register(ModuleName, 2, "unauthorized")
	ErrNotOwner      = errors.Register(ModuleName, 3, "caller is not the fund owner")
	ErrNotAdmin      = errors.Register(ModuleName, 4, "caller is not a fund admin")
	ErrNotInternal   = errors.Register(ModuleName, 5, "caller is not an internal caller")
	ErrNotMultiSig   = errors.Register(ModuleName, 6, "caller is not the multi-sig wallet")
	ErrNotLocker     = errors.Register(ModuleName, 7, "caller is not the locker")
	ErrNotShareOwner = errors.Register(ModuleName, 8, "caller may not move these shares")

	// State errors
	ErrInvalidStatus              = errors.Register(ModuleName, 10, "operation not allowed in current fund status")
	ErrSalePeriodNotElapsed       = errors.Register(ModuleName, 11, "fund is in the sale period")
	ErrBonusPeriodNotReached      = errors.Register(ModuleName, 12, "not reached next bonus time")
	ErrClosedPeriodNotElapsed     = errors.Register(ModuleName, 13, "fund is in the closed period")
	ErrRedemptionPeriodNotElapsed = errors.Register(ModuleName, 14, "fund is in the redemption period")
	ErrNotPerpetual               = errors.Register(ModuleName, 15, "fund is not perpetual")
	ErrPerpetual                  = errors.Register(ModuleName, 16, "perpetual fund cannot be stopped")
	ErrNotBuyable                 = errors.Register(ModuleName, 17, "fund is not on sale or in perpetual redemption")
	ErrNotRedeemable              = errors.Register(ModuleName, 18, "fund is not in sales failed, redemption or stop status")

	// Bounds errors
	ErrInvalidFundConfig        = errors.Register(ModuleName, 30, "invalid fund config")
	ErrInvalidSponsorRatio      = errors.Register(ModuleName, 31, "sponsor divide ratio exceeds 10000")
	ErrInvalidPurchaseBounds    = errors.Register(ModuleName, 32, "min share purchase must be less than max share purchase")
	ErrInvalidBonusRatio        = errors.Register(ModuleName, 33, "bonus ratio exceeds 10000")
	ErrInvalidManagerBonusRatio = errors.Register(ModuleName, 34, "manager bonus divide ratio exceeds 2000")
	ErrInvalidManagerFeeRatio   = errors.Register(ModuleName, 35, "manager fee ratio exceeds 100")
	ErrInvalidSignerCount       = errors.Register(ModuleName, 36, "number of need signed addresses must be between 1 and the manager count")
	ErrAboveMaxPurchase         = errors.Register(ModuleName, 37, "buy share greater than max share purchase")
	ErrBelowMinPurchase         = errors.Register(ModuleName, 38, "buy share less than min share purchase")
	ErrRemainingShareMismatch   = errors.Register(ModuleName, 39, "buy share must equal remaining share")
	ErrInvalidAmount            = errors.Register(ModuleName, 40, "invalid amount")
	ErrInvalidParams            = errors.Register(ModuleName, 41, "invalid params")
	ErrTooManyBonusTokens       = errors.Register(ModuleName, 42, "bonus tokens max is 10")
	ErrArithmeticOverflow       = errors.Register(ModuleName, 43, "arithmetic overflow")
	ErrInvalidInvestPolicy      = errors.Register(ModuleName, 44, "invalid invest policy name")
	ErrImmutableConfig          = errors.Register(ModuleName, 45, "config field cannot be modified")
	ErrInvalidDuration          = errors.Register(ModuleName, 46, "invalid lock duration")

	// Conservation errors
	ErrInsufficientUnlockedBalance = errors.Register(ModuleName, 50, "amount exceeds the balance after locked")
	ErrExceedsLockedAmount         = errors.Register(ModuleName, 51, "exceeding the locked amount")
	ErrExceedsApprovedAmount       = errors.Register(ModuleName, 52, "exceeding the maximum approved lock amount")
	ErrExceedsApprovedDuration     = errors.Register(ModuleName, 53, "exceeding the maximum approved lock duration")
	ErrApproveExceedsBalance       = errors.Register(ModuleName, 54, "the amount of approve lock exceeds balance")
	ErrPriorLockOutstanding        = errors.Register(ModuleName, 55, "not meet approve lock condition")
	ErrNotLockingNow               = errors.Register(ModuleName, 56, "lock amount is zero or lock duration passed")
	ErrInsufficientAllowance       = errors.Register(ModuleName, 57, "insufficient share allowance")
	ErrRedeemExceedsShare          = errors.Register(ModuleName, 58, "redemption share greater than user share")

	// Economic errors
	ErrNoProfit   = errors.Register(ModuleName, 70, "no profit")
	ErrZeroSupply = errors.Register(ModuleName, 71, "share total supply is zero")

	// Lookup errors
	ErrFundNotFound   = errors.Register(ModuleName, 80, "fund not found")
	ErrInvalidAddress = errors.Register(ModuleName, 81, "invalid address")
)
