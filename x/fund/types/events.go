package types

// Event types
const (
	EventTypeCreateFund           = "create_fund"
	EventTypeResetFundData        = "reset_fund_data"
	EventTypeStartFundSales       = "start_fund_sales"
	EventTypeStartFundClosed      = "start_fund_closed"
	EventTypeFundSalesFailed      = "fund_sales_failed"
	EventTypeStartFundSettlement  = "start_fund_settlement"
	EventTypeFundSettlement       = "fund_settlement"
	EventTypeStartFundLiquidation = "start_fund_liquidation"
	EventTypeFundContinuation     = "fund_continuation"
	EventTypeFundStop             = "fund_stop"
	EventTypeBuyFund              = "buy_fund"
	EventTypeRedemptionFund       = "redemption_fund"
	EventTypeFundBonus            = "fund_bonus"
	EventTypeWithdrawFundBonus    = "withdraw_fund_bonus"
	EventTypeOfferBonus           = "offer_bonus"
	EventTypeDrawBonus            = "draw_bonus"
	EventTypeShareTransfer        = "share_transfer"
	EventTypeShareApproval        = "share_approval"
	EventTypeApproveLock          = "approve_lock"
	EventTypeLock                 = "lock"
	EventTypeIncreaseLockAmount   = "increase_lock_amount"
	EventTypeUnlock               = "unlock"
	EventTypeFundInvestProposed   = "fund_invest_proposed"
	EventTypeFundInvestExecuted   = "fund_invest_executed"
	EventTypeModifyFundData       = "modify_fund_data"
	EventTypeChangeInvestPolicy   = "change_invest_policy"
	EventTypeChangeSigners        = "change_signed_addresses"
	EventTypeSetInternalCaller    = "set_internal_caller"
	EventTypeUpdateParams         = "update_fund_params"
	EventTypeUserHistory          = "fund_user_history"
)

// Event attribute keys
const (
	AttributeKeyFundID           = "fund_id"
	AttributeKeyUser             = "user"
	AttributeKeyOwner            = "owner"
	AttributeKeyStatus           = "status"
	AttributeKeyShare            = "share"
	AttributeKeyAmount           = "amount"
	AttributeKeyDenom            = "denom"
	AttributeKeyNetValue         = "net_value"
	AttributeKeyTotalValue       = "total_value"
	AttributeKeyProtocolFee      = "protocol_fee"
	AttributeKeyManagersBonus    = "managers_bonus"
	AttributeKeySponsorBonus     = "sponsor_bonus"
	AttributeKeyUsersBonus       = "users_bonus"
	AttributeKeyManagerRemainder = "manager_bonus_remainder"
	AttributeKeyManageFee        = "manage_fee"
	AttributeKeyFrom             = "from"
	AttributeKeyTo               = "to"
	AttributeKeySpender          = "spender"
	AttributeKeyApprover         = "approver"
	AttributeKeyLocker           = "locker"
	AttributeKeyDuration         = "duration"
	AttributeKeyBonusTokenIndex  = "bonus_token_index"
	AttributeKeyPolicy           = "invest_policy"
	AttributeKeyPolicyAccount    = "policy_account"
	AttributeKeyDefi             = "defi"
	AttributeKeyHasHarvest       = "has_harvest"
	AttributeKeySigners          = "number_of_need_signed_addresses"
	AttributeKeyResetManager     = "reset_manager_status"
	AttributeKeyAddress          = "address"
	AttributeKeyEnabled          = "enabled"
	AttributeKeyRecordID         = "record_id"
	AttributeKeyKind             = "kind"
)
