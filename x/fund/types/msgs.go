package types

import (
	"fmt"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types for the fund module
const (
	TypeMsgCreateFund                        = "create_fund"
	TypeMsgResetFundData                     = "reset_fund_data"
	TypeMsgStartFundSales                    = "start_fund_sales"
	TypeMsgBuyFund                           = "buy_fund"
	TypeMsgCloseFundSales                    = "close_fund_sales"
	TypeMsgFundBonus                         = "fund_bonus"
	TypeMsgStartFundSettlement               = "start_fund_settlement"
	TypeMsgFundSettlement                    = "fund_settlement"
	TypeMsgFundContinuation                  = "fund_continuation"
	TypeMsgFundStop                          = "fund_stop"
	TypeMsgStartFundLiquidation              = "start_fund_liquidation"
	TypeMsgModifyFundData                    = "modify_fund_data"
	TypeMsgChangeInvestPolicy                = "change_invest_policy"
	TypeMsgChangeNumberOfNeedSignedAddresses = "change_number_of_need_signed_addresses"
	TypeMsgFundInvest                        = "fund_invest"
	TypeMsgExecuteFundInvest                 = "execute_fund_invest"
	TypeMsgRedemptionAll                     = "redemption_all"
	TypeMsgRedemptionByShare                 = "redemption_by_share"
	TypeMsgWithdrawFundBonus                 = "withdraw_fund_bonus"
	TypeMsgTransferShares                    = "transfer_shares"
	TypeMsgApproveShares                     = "approve_shares"
	TypeMsgTransferSharesFrom                = "transfer_shares_from"
	TypeMsgApproveLock                       = "approve_lock"
	TypeMsgLock                              = "lock"
	TypeMsgIncreaseLockAmount                = "increase_lock_amount"
	TypeMsgUnlock                            = "unlock"
	TypeMsgUnlockAll                         = "unlock_all"
	TypeMsgSetInternalCaller                 = "set_internal_caller"
	TypeMsgUpdateParams                      = "update_params"
)

// ParseAmount parses a non-negative integer amount
func ParseAmount(s string) (math.Int, error) {
	v, ok := math.NewIntFromString(s)
	if !ok || v.IsNegative() {
		return math.Int{}, errors.Wrapf(ErrInvalidAmount, "invalid amount %q", s)
	}
	return v, nil
}

// ParsePositiveAmount parses a strictly positive integer amount
func ParsePositiveAmount(s string) (math.Int, error) {
	v, err := ParseAmount(s)
	if err != nil {
		return math.Int{}, err
	}
	if v.IsZero() {
		return math.Int{}, errors.Wrap(ErrInvalidAmount, "amount must be positive")
	}
	return v, nil
}

func validateOptionalAddress(addr string) error {
	if addr == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "%s: %s", addr, err)
	}
	return nil
}

// MsgCreateFund creates a fund owned by the signer
type MsgCreateFund struct {
	Owner          string     `json:"owner"`
	MultiSigWallet string     `json:"multisig_wallet"`
	Config         FundConfig `json:"config"`
}

// Proto interface implementations for MsgCreateFund
func (msg *MsgCreateFund) Reset() { *msg = MsgCreateFund{} }
func (msg *MsgCreateFund) String() string {
	return fmt.Sprintf("MsgCreateFund{Owner: %s, MultiSigWallet: %s}", msg.Owner, msg.MultiSigWallet)
}
func (msg *MsgCreateFund) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgCreateFund
func (msg *MsgCreateFund) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgCreateFund"
}

// Route implements sdk.Msg
func (msg *MsgCreateFund) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgCreateFund) Type() string { return TypeMsgCreateFund }

// ValidateBasic for MsgCreateFund
func (msg *MsgCreateFund) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "owner: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.MultiSigWallet); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "multisig wallet: %s", err)
	}
	return msg.Config.Validate()
}

// GetSigners returns the signer addresses for MsgCreateFund
func (msg *MsgCreateFund) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{signer}
}

// MsgCreateFundResponse is the response for MsgCreateFund
type MsgCreateFundResponse struct {
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgCreateFundResponse
func (msg *MsgCreateFundResponse) Reset()         { *msg = MsgCreateFundResponse{} }
func (msg *MsgCreateFundResponse) String() string { return fmt.Sprint(msg.FundID) }
func (msg *MsgCreateFundResponse) ProtoMessage()  {}

// MsgResetFundData replaces the config of a fund that has not started its sale
type MsgResetFundData struct {
	Owner  string     `json:"owner"`
	FundID uint64     `json:"fund_id"`
	Config FundConfig `json:"config"`
}

// Proto interface implementations for MsgResetFundData
func (msg *MsgResetFundData) Reset() { *msg = MsgResetFundData{} }
func (msg *MsgResetFundData) String() string {
	return fmt.Sprintf("MsgResetFundData{Owner: %s, FundID: %d}", msg.Owner, msg.FundID)
}
func (msg *MsgResetFundData) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgResetFundData
func (msg *MsgResetFundData) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgResetFundData"
}

// Route implements sdk.Msg
func (msg *MsgResetFundData) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgResetFundData) Type() string { return TypeMsgResetFundData }

// ValidateBasic for MsgResetFundData
func (msg *MsgResetFundData) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "owner: %s", err)
	}
	return msg.Config.Validate()
}

// GetSigners returns the signer addresses for MsgResetFundData
func (msg *MsgResetFundData) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{signer}
}

// MsgResetFundDataResponse is the response for MsgResetFundData
type MsgResetFundDataResponse struct{}

// Proto interface implementations for MsgResetFundDataResponse
func (msg *MsgResetFundDataResponse) Reset()         { *msg = MsgResetFundDataResponse{} }
func (msg *MsgResetFundDataResponse) String() string { return "MsgResetFundDataResponse" }
func (msg *MsgResetFundDataResponse) ProtoMessage()  {}

// MsgStartFundSales opens the sale period
type MsgStartFundSales struct {
	Owner  string `json:"owner"`
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgStartFundSales
func (msg *MsgStartFundSales) Reset() { *msg = MsgStartFundSales{} }
func (msg *MsgStartFundSales) String() string {
	return fmt.Sprintf("MsgStartFundSales{Owner: %s, FundID: %d}", msg.Owner, msg.FundID)
}
func (msg *MsgStartFundSales) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgStartFundSales
func (msg *MsgStartFundSales) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgStartFundSales"
}

// Route implements sdk.Msg
func (msg *MsgStartFundSales) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgStartFundSales) Type() string { return TypeMsgStartFundSales }

// ValidateBasic for MsgStartFundSales
func (msg *MsgStartFundSales) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "owner: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgStartFundSales
func (msg *MsgStartFundSales) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{signer}
}

// MsgStartFundSalesResponse is the response for MsgStartFundSales
type MsgStartFundSalesResponse struct{}

// Proto interface implementations for MsgStartFundSalesResponse
func (msg *MsgStartFundSalesResponse) Reset()         { *msg = MsgStartFundSalesResponse{} }
func (msg *MsgStartFundSalesResponse) String() string { return "MsgStartFundSalesResponse" }
func (msg *MsgStartFundSalesResponse) ProtoMessage()  {}

// MsgBuyFund buys shares of a fund
type MsgBuyFund struct {
	Buyer  string `json:"buyer"`
	FundID uint64 `json:"fund_id"`
	Share  string `json:"share"`
}

// Proto interface implementations for MsgBuyFund
func (msg *MsgBuyFund) Reset() { *msg = MsgBuyFund{} }
func (msg *MsgBuyFund) String() string {
	return fmt.Sprintf("MsgBuyFund{Buyer: %s, FundID: %d, Share: %s}", msg.Buyer, msg.FundID, msg.Share)
}
func (msg *MsgBuyFund) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgBuyFund
func (msg *MsgBuyFund) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgBuyFund"
}

// Route implements sdk.Msg
func (msg *MsgBuyFund) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgBuyFund) Type() string { return TypeMsgBuyFund }

// ValidateBasic for MsgBuyFund
func (msg *MsgBuyFund) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "buyer: %s", err)
	}
	_, err := ParsePositiveAmount(msg.Share)
	return err
}

// GetSigners returns the signer addresses for MsgBuyFund
func (msg *MsgBuyFund) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Buyer)
	return []sdk.AccAddress{signer}
}

// MsgBuyFundResponse is the response for MsgBuyFund
type MsgBuyFundResponse struct {
	Cost string `json:"cost"`
}

// Proto interface implementations for MsgBuyFundResponse
func (msg *MsgBuyFundResponse) Reset()         { *msg = MsgBuyFundResponse{} }
func (msg *MsgBuyFundResponse) String() string { return msg.Cost }
func (msg *MsgBuyFundResponse) ProtoMessage()  {}

// MsgCloseFundSales ends the sale period
type MsgCloseFundSales struct {
	Admin  string `json:"admin"`
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgCloseFundSales
func (msg *MsgCloseFundSales) Reset() { *msg = MsgCloseFundSales{} }
func (msg *MsgCloseFundSales) String() string {
	return fmt.Sprintf("MsgCloseFundSales{Admin: %s, FundID: %d}", msg.Admin, msg.FundID)
}
func (msg *MsgCloseFundSales) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgCloseFundSales
func (msg *MsgCloseFundSales) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgCloseFundSales"
}

// Route implements sdk.Msg
func (msg *MsgCloseFundSales) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgCloseFundSales) Type() string { return TypeMsgCloseFundSales }

// ValidateBasic for MsgCloseFundSales
func (msg *MsgCloseFundSales) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "admin: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgCloseFundSales
func (msg *MsgCloseFundSales) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{signer}
}

// MsgCloseFundSalesResponse is the response for MsgCloseFundSales
type MsgCloseFundSalesResponse struct {
	Status string `json:"status"`
}

// Proto interface implementations for MsgCloseFundSalesResponse
func (msg *MsgCloseFundSalesResponse) Reset()         { *msg = MsgCloseFundSalesResponse{} }
func (msg *MsgCloseFundSalesResponse) String() string { return msg.Status }
func (msg *MsgCloseFundSalesResponse) ProtoMessage()  {}

// MsgFundBonus distributes profit since the last bonus
type MsgFundBonus struct {
	Admin  string `json:"admin"`
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgFundBonus
func (msg *MsgFundBonus) Reset() { *msg = MsgFundBonus{} }
func (msg *MsgFundBonus) String() string {
	return fmt.Sprintf("MsgFundBonus{Admin: %s, FundID: %d}", msg.Admin, msg.FundID)
}
func (msg *MsgFundBonus) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgFundBonus
func (msg *MsgFundBonus) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgFundBonus"
}

// Route implements sdk.Msg
func (msg *MsgFundBonus) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgFundBonus) Type() string { return TypeMsgFundBonus }

// ValidateBasic for MsgFundBonus
func (msg *MsgFundBonus) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "admin: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgFundBonus
func (msg *MsgFundBonus) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{signer}
}

// MsgFundBonusResponse is the response for MsgFundBonus
type MsgFundBonusResponse struct {
	ProtocolFee   string `json:"protocol_fee"`
	ManagersBonus string `json:"managers_bonus"`
	SponsorBonus  string `json:"sponsor_bonus"`
	UsersBonus    string `json:"users_bonus"`
}

// Proto interface implementations for MsgFundBonusResponse
func (msg *MsgFundBonusResponse) Reset()         { *msg = MsgFundBonusResponse{} }
func (msg *MsgFundBonusResponse) String() string { return msg.ProtocolFee }
func (msg *MsgFundBonusResponse) ProtoMessage()  {}

// MsgStartFundSettlement moves a closed fund into settlement
type MsgStartFundSettlement struct {
	Admin  string `json:"admin"`
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgStartFundSettlement
func (msg *MsgStartFundSettlement) Reset() { *msg = MsgStartFundSettlement{} }
func (msg *MsgStartFundSettlement) String() string {
	return fmt.Sprintf("MsgStartFundSettlement{Admin: %s, FundID: %d}", msg.Admin, msg.FundID)
}
func (msg *MsgStartFundSettlement) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgStartFundSettlement
func (msg *MsgStartFundSettlement) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgStartFundSettlement"
}

// Route implements sdk.Msg
func (msg *MsgStartFundSettlement) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgStartFundSettlement) Type() string { return TypeMsgStartFundSettlement }

// ValidateBasic for MsgStartFundSettlement
func (msg *MsgStartFundSettlement) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "admin: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgStartFundSettlement
func (msg *MsgStartFundSettlement) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{signer}
}

// MsgStartFundSettlementResponse is the response for MsgStartFundSettlement
type MsgStartFundSettlementResponse struct{}

// Proto interface implementations for MsgStartFundSettlementResponse
func (msg *MsgStartFundSettlementResponse) Reset()         { *msg = MsgStartFundSettlementResponse{} }
func (msg *MsgStartFundSettlementResponse) String() string { return "MsgStartFundSettlementResponse" }
func (msg *MsgStartFundSettlementResponse) ProtoMessage()  {}

// MsgFundSettlement settles positions and opens redemption
type MsgFundSettlement struct {
	Admin  string `json:"admin"`
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgFundSettlement
func (msg *MsgFundSettlement) Reset() { *msg = MsgFundSettlement{} }
func (msg *MsgFundSettlement) String() string {
	return fmt.Sprintf("MsgFundSettlement{Admin: %s, FundID: %d}", msg.Admin, msg.FundID)
}
func (msg *MsgFundSettlement) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgFundSettlement
func (msg *MsgFundSettlement) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgFundSettlement"
}

// Route implements sdk.Msg
func (msg *MsgFundSettlement) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgFundSettlement) Type() string { return TypeMsgFundSettlement }

// ValidateBasic for MsgFundSettlement
func (msg *MsgFundSettlement) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "admin: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgFundSettlement
func (msg *MsgFundSettlement) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{signer}
}

// MsgFundSettlementResponse is the response for MsgFundSettlement
type MsgFundSettlementResponse struct {
	RedemptionNetValue string `json:"redemption_net_value"`
}

// Proto interface implementations for MsgFundSettlementResponse
func (msg *MsgFundSettlementResponse) Reset()         { *msg = MsgFundSettlementResponse{} }
func (msg *MsgFundSettlementResponse) String() string { return msg.RedemptionNetValue }
func (msg *MsgFundSettlementResponse) ProtoMessage()  {}

// MsgFundContinuation re-enters the closed period of a perpetual fund
type MsgFundContinuation struct {
	Admin  string `json:"admin"`
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgFundContinuation
func (msg *MsgFundContinuation) Reset() { *msg = MsgFundContinuation{} }
func (msg *MsgFundContinuation) String() string {
	return fmt.Sprintf("MsgFundContinuation{Admin: %s, FundID: %d}", msg.Admin, msg.FundID)
}
func (msg *MsgFundContinuation) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgFundContinuation
func (msg *MsgFundContinuation) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgFundContinuation"
}

// Route implements sdk.Msg
func (msg *MsgFundContinuation) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgFundContinuation) Type() string { return TypeMsgFundContinuation }

// ValidateBasic for MsgFundContinuation
func (msg *MsgFundContinuation) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "admin: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgFundContinuation
func (msg *MsgFundContinuation) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{signer}
}

// MsgFundContinuationResponse is the response for MsgFundContinuation
type MsgFundContinuationResponse struct{}

// Proto interface implementations for MsgFundContinuationResponse
func (msg *MsgFundContinuationResponse) Reset()         { *msg = MsgFundContinuationResponse{} }
func (msg *MsgFundContinuationResponse) String() string { return "MsgFundContinuationResponse" }
func (msg *MsgFundContinuationResponse) ProtoMessage()  {}

// MsgFundStop stops a non-perpetual fund after redemption
type MsgFundStop struct {
	Admin  string `json:"admin"`
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgFundStop
func (msg *MsgFundStop) Reset() { *msg = MsgFundStop{} }
func (msg *MsgFundStop) String() string {
	return fmt.Sprintf("MsgFundStop{Admin: %s, FundID: %d}", msg.Admin, msg.FundID)
}
func (msg *MsgFundStop) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgFundStop
func (msg *MsgFundStop) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgFundStop"
}

// Route implements sdk.Msg
func (msg *MsgFundStop) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgFundStop) Type() string { return TypeMsgFundStop }

// ValidateBasic for MsgFundStop
func (msg *MsgFundStop) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "admin: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgFundStop
func (msg *MsgFundStop) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{signer}
}

// MsgFundStopResponse is the response for MsgFundStop
type MsgFundStopResponse struct{}

// Proto interface implementations for MsgFundStopResponse
func (msg *MsgFundStopResponse) Reset()         { *msg = MsgFundStopResponse{} }
func (msg *MsgFundStopResponse) String() string { return "MsgFundStopResponse" }
func (msg *MsgFundStopResponse) ProtoMessage()  {}

// MsgStartFundLiquidation moves a closed fund into liquidation
type MsgStartFundLiquidation struct {
	Caller string `json:"caller"`
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgStartFundLiquidation
func (msg *MsgStartFundLiquidation) Reset() { *msg = MsgStartFundLiquidation{} }
func (msg *MsgStartFundLiquidation) String() string {
	return fmt.Sprintf("MsgStartFundLiquidation{Caller: %s, FundID: %d}", msg.Caller, msg.FundID)
}
func (msg *MsgStartFundLiquidation) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgStartFundLiquidation
func (msg *MsgStartFundLiquidation) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgStartFundLiquidation"
}

// Route implements sdk.Msg
func (msg *MsgStartFundLiquidation) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgStartFundLiquidation) Type() string { return TypeMsgStartFundLiquidation }

// ValidateBasic for MsgStartFundLiquidation
func (msg *MsgStartFundLiquidation) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "caller: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgStartFundLiquidation
func (msg *MsgStartFundLiquidation) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{signer}
}

// MsgStartFundLiquidationResponse is the response for MsgStartFundLiquidation
type MsgStartFundLiquidationResponse struct{}

// Proto interface implementations for MsgStartFundLiquidationResponse
func (msg *MsgStartFundLiquidationResponse) Reset()         { *msg = MsgStartFundLiquidationResponse{} }
func (msg *MsgStartFundLiquidationResponse) String() string { return "MsgStartFundLiquidationResponse" }
func (msg *MsgStartFundLiquidationResponse) ProtoMessage()  {}

// MsgModifyFundData replaces the config of a closed fund
type MsgModifyFundData struct {
	Caller             string     `json:"caller"`
	FundID             uint64     `json:"fund_id"`
	Config             FundConfig `json:"config"`
	ResetManagerStatus bool       `json:"reset_manager_status"`
}

// Proto interface implementations for MsgModifyFundData
func (msg *MsgModifyFundData) Reset() { *msg = MsgModifyFundData{} }
func (msg *MsgModifyFundData) String() string {
	return fmt.Sprintf("MsgModifyFundData{Caller: %s, FundID: %d, ResetManagerStatus: %t}", msg.Caller, msg.FundID, msg.ResetManagerStatus)
}
func (msg *MsgModifyFundData) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgModifyFundData
func (msg *MsgModifyFundData) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgModifyFundData"
}

// Route implements sdk.Msg
func (msg *MsgModifyFundData) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgModifyFundData) Type() string { return TypeMsgModifyFundData }

// ValidateBasic for MsgModifyFundData
func (msg *MsgModifyFundData) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "caller: %s", err)
	}
	return msg.Config.Validate()
}

// GetSigners returns the signer addresses for MsgModifyFundData
func (msg *MsgModifyFundData) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{signer}
}

// MsgModifyFundDataResponse is the response for MsgModifyFundData
type MsgModifyFundDataResponse struct{}

// Proto interface implementations for MsgModifyFundDataResponse
func (msg *MsgModifyFundDataResponse) Reset()         { *msg = MsgModifyFundDataResponse{} }
func (msg *MsgModifyFundDataResponse) String() string { return "MsgModifyFundDataResponse" }
func (msg *MsgModifyFundDataResponse) ProtoMessage()  {}

// MsgChangeInvestPolicy schedules an invest policy change applied at continuation
type MsgChangeInvestPolicy struct {
	Caller    string `json:"caller"`
	FundID    uint64 `json:"fund_id"`
	NewPolicy string `json:"new_policy"`
}

// Proto interface implementations for MsgChangeInvestPolicy
func (msg *MsgChangeInvestPolicy) Reset() { *msg = MsgChangeInvestPolicy{} }
func (msg *MsgChangeInvestPolicy) String() string {
	return fmt.Sprintf("MsgChangeInvestPolicy{Caller: %s, FundID: %d, NewPolicy: %s}", msg.Caller, msg.FundID, msg.NewPolicy)
}
func (msg *MsgChangeInvestPolicy) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgChangeInvestPolicy
func (msg *MsgChangeInvestPolicy) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgChangeInvestPolicy"
}

// Route implements sdk.Msg
func (msg *MsgChangeInvestPolicy) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgChangeInvestPolicy) Type() string { return TypeMsgChangeInvestPolicy }

// ValidateBasic for MsgChangeInvestPolicy
func (msg *MsgChangeInvestPolicy) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "caller: %s", err)
	}
	return ValidatePolicyName(msg.NewPolicy)
}

// GetSigners returns the signer addresses for MsgChangeInvestPolicy
func (msg *MsgChangeInvestPolicy) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{signer}
}

// MsgChangeInvestPolicyResponse is the response for MsgChangeInvestPolicy
type MsgChangeInvestPolicyResponse struct{}

// Proto interface implementations for MsgChangeInvestPolicyResponse
func (msg *MsgChangeInvestPolicyResponse) Reset()         { *msg = MsgChangeInvestPolicyResponse{} }
func (msg *MsgChangeInvestPolicyResponse) String() string { return "MsgChangeInvestPolicyResponse" }
func (msg *MsgChangeInvestPolicyResponse) ProtoMessage()  {}

// MsgChangeNumberOfNeedSignedAddresses changes the multi-sig threshold
type MsgChangeNumberOfNeedSignedAddresses struct {
	Caller string `json:"caller"`
	FundID uint64 `json:"fund_id"`
	Number uint64 `json:"number"`
}

// Proto interface implementations for MsgChangeNumberOfNeedSignedAddresses
func (msg *MsgChangeNumberOfNeedSignedAddresses) Reset() { *msg = MsgChangeNumberOfNeedSignedAddresses{} }
func (msg *MsgChangeNumberOfNeedSignedAddresses) String() string {
	return fmt.Sprintf("MsgChangeNumberOfNeedSignedAddresses{Caller: %s, FundID: %d, Number: %d}", msg.Caller, msg.FundID, msg.Number)
}
func (msg *MsgChangeNumberOfNeedSignedAddresses) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgChangeNumberOfNeedSignedAddresses
func (msg *MsgChangeNumberOfNeedSignedAddresses) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgChangeNumberOfNeedSignedAddresses"
}

// Route implements sdk.Msg
func (msg *MsgChangeNumberOfNeedSignedAddresses) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgChangeNumberOfNeedSignedAddresses) Type() string { return TypeMsgChangeNumberOfNeedSignedAddresses }

// ValidateBasic for MsgChangeNumberOfNeedSignedAddresses
func (msg *MsgChangeNumberOfNeedSignedAddresses) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "caller: %s", err)
	}
	if msg.Number == 0 {
		return ErrInvalidSignerCount
	}
	return nil
}

// GetSigners returns the signer addresses for MsgChangeNumberOfNeedSignedAddresses
func (msg *MsgChangeNumberOfNeedSignedAddresses) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{signer}
}

// MsgChangeNumberOfNeedSignedAddressesResponse is the response for MsgChangeNumberOfNeedSignedAddresses
type MsgChangeNumberOfNeedSignedAddressesResponse struct{}

// Proto interface implementations for MsgChangeNumberOfNeedSignedAddressesResponse
func (msg *MsgChangeNumberOfNeedSignedAddressesResponse) Reset()         { *msg = MsgChangeNumberOfNeedSignedAddressesResponse{} }
func (msg *MsgChangeNumberOfNeedSignedAddressesResponse) String() string { return "MsgChangeNumberOfNeedSignedAddressesResponse" }
func (msg *MsgChangeNumberOfNeedSignedAddressesResponse) ProtoMessage()  {}

// MsgFundInvest proposes or executes an invest policy instruction
type MsgFundInvest struct {
	Admin      string `json:"admin"`
	FundID     uint64 `json:"fund_id"`
	Defi       string `json:"defi"`
	Params     []byte `json:"params"`
	Denom      string `json:"denom"`
	HasHarvest bool   `json:"has_harvest"`
}

// Proto interface implementations for MsgFundInvest
func (msg *MsgFundInvest) Reset() { *msg = MsgFundInvest{} }
func (msg *MsgFundInvest) String() string {
	return fmt.Sprintf("MsgFundInvest{Admin: %s, FundID: %d, Defi: %s, Denom: %s}", msg.Admin, msg.FundID, msg.Defi, msg.Denom)
}
func (msg *MsgFundInvest) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgFundInvest
func (msg *MsgFundInvest) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgFundInvest"
}

// Route implements sdk.Msg
func (msg *MsgFundInvest) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgFundInvest) Type() string { return TypeMsgFundInvest }

// ValidateBasic for MsgFundInvest
func (msg *MsgFundInvest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "admin: %s", err)
	}
	return sdk.ValidateDenom(msg.Denom)
}

// GetSigners returns the signer addresses for MsgFundInvest
func (msg *MsgFundInvest) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{signer}
}

// MsgFundInvestResponse is the response for MsgFundInvest
type MsgFundInvestResponse struct {
	Executed  bool   `json:"executed"`
	Harvested string `json:"harvested"`
}

// Proto interface implementations for MsgFundInvestResponse
func (msg *MsgFundInvestResponse) Reset()         { *msg = MsgFundInvestResponse{} }
func (msg *MsgFundInvestResponse) String() string { return fmt.Sprint(msg.Executed) }
func (msg *MsgFundInvestResponse) ProtoMessage()  {}

// MsgExecuteFundInvest executes an invest policy instruction from the multi-sig wallet
type MsgExecuteFundInvest struct {
	Wallet     string `json:"wallet"`
	FundID     uint64 `json:"fund_id"`
	Defi       string `json:"defi"`
	Params     []byte `json:"params"`
	Denom      string `json:"denom"`
	HasHarvest bool   `json:"has_harvest"`
}

// Proto interface implementations for MsgExecuteFundInvest
func (msg *MsgExecuteFundInvest) Reset() { *msg = MsgExecuteFundInvest{} }
func (msg *MsgExecuteFundInvest) String() string {
	return fmt.Sprintf("MsgExecuteFundInvest{Wallet: %s, FundID: %d, Defi: %s, Denom: %s}", msg.Wallet, msg.FundID, msg.Defi, msg.Denom)
}
func (msg *MsgExecuteFundInvest) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgExecuteFundInvest
func (msg *MsgExecuteFundInvest) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgExecuteFundInvest"
}

// Route implements sdk.Msg
func (msg *MsgExecuteFundInvest) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgExecuteFundInvest) Type() string { return TypeMsgExecuteFundInvest }

// ValidateBasic for MsgExecuteFundInvest
func (msg *MsgExecuteFundInvest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Wallet); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "wallet: %s", err)
	}
	return sdk.ValidateDenom(msg.Denom)
}

// GetSigners returns the signer addresses for MsgExecuteFundInvest
func (msg *MsgExecuteFundInvest) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Wallet)
	return []sdk.AccAddress{signer}
}

// MsgExecuteFundInvestResponse is the response for MsgExecuteFundInvest
type MsgExecuteFundInvestResponse struct {
	Harvested string `json:"harvested"`
}

// Proto interface implementations for MsgExecuteFundInvestResponse
func (msg *MsgExecuteFundInvestResponse) Reset()         { *msg = MsgExecuteFundInvestResponse{} }
func (msg *MsgExecuteFundInvestResponse) String() string { return msg.Harvested }
func (msg *MsgExecuteFundInvestResponse) ProtoMessage()  {}

// MsgRedemptionAll redeems every share of a holder
type MsgRedemptionAll struct {
	Sender string `json:"sender"`
	FundID uint64 `json:"fund_id"`
	Holder string `json:"holder,omitempty"`
}

// Proto interface implementations for MsgRedemptionAll
func (msg *MsgRedemptionAll) Reset() { *msg = MsgRedemptionAll{} }
func (msg *MsgRedemptionAll) String() string {
	return fmt.Sprintf("MsgRedemptionAll{Sender: %s, FundID: %d, Holder: %s}", msg.Sender, msg.FundID, msg.Holder)
}
func (msg *MsgRedemptionAll) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgRedemptionAll
func (msg *MsgRedemptionAll) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgRedemptionAll"
}

// Route implements sdk.Msg
func (msg *MsgRedemptionAll) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRedemptionAll) Type() string { return TypeMsgRedemptionAll }

// ValidateBasic for MsgRedemptionAll
func (msg *MsgRedemptionAll) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	return validateOptionalAddress(msg.Holder)
}

// GetSigners returns the signer addresses for MsgRedemptionAll
func (msg *MsgRedemptionAll) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{signer}
}

// MsgRedemptionAllResponse is the response for MsgRedemptionAll
type MsgRedemptionAllResponse struct {
	Payout string `json:"payout"`
}

// Proto interface implementations for MsgRedemptionAllResponse
func (msg *MsgRedemptionAllResponse) Reset()         { *msg = MsgRedemptionAllResponse{} }
func (msg *MsgRedemptionAllResponse) String() string { return msg.Payout }
func (msg *MsgRedemptionAllResponse) ProtoMessage()  {}

// MsgRedemptionByShare redeems part of a holder's shares
type MsgRedemptionByShare struct {
	Sender string `json:"sender"`
	FundID uint64 `json:"fund_id"`
	Holder string `json:"holder,omitempty"`
	Share  string `json:"share"`
}

// Proto interface implementations for MsgRedemptionByShare
func (msg *MsgRedemptionByShare) Reset() { *msg = MsgRedemptionByShare{} }
func (msg *MsgRedemptionByShare) String() string {
	return fmt.Sprintf("MsgRedemptionByShare{Sender: %s, FundID: %d, Holder: %s, Share: %s}", msg.Sender, msg.FundID, msg.Holder, msg.Share)
}
func (msg *MsgRedemptionByShare) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgRedemptionByShare
func (msg *MsgRedemptionByShare) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgRedemptionByShare"
}

// Route implements sdk.Msg
func (msg *MsgRedemptionByShare) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRedemptionByShare) Type() string { return TypeMsgRedemptionByShare }

// ValidateBasic for MsgRedemptionByShare
func (msg *MsgRedemptionByShare) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	if err := validateOptionalAddress(msg.Holder); err != nil {
		return err
	}
	_, err := ParsePositiveAmount(msg.Share)
	return err
}

// GetSigners returns the signer addresses for MsgRedemptionByShare
func (msg *MsgRedemptionByShare) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{signer}
}

// MsgRedemptionByShareResponse is the response for MsgRedemptionByShare
type MsgRedemptionByShareResponse struct {
	Payout string `json:"payout"`
}

// Proto interface implementations for MsgRedemptionByShareResponse
func (msg *MsgRedemptionByShareResponse) Reset()         { *msg = MsgRedemptionByShareResponse{} }
func (msg *MsgRedemptionByShareResponse) String() string { return msg.Payout }
func (msg *MsgRedemptionByShareResponse) ProtoMessage()  {}

// MsgWithdrawFundBonus claims pending bonus without moving shares
type MsgWithdrawFundBonus struct {
	Holder string `json:"holder"`
	FundID uint64 `json:"fund_id"`
}

// Proto interface implementations for MsgWithdrawFundBonus
func (msg *MsgWithdrawFundBonus) Reset() { *msg = MsgWithdrawFundBonus{} }
func (msg *MsgWithdrawFundBonus) String() string {
	return fmt.Sprintf("MsgWithdrawFundBonus{Holder: %s, FundID: %d}", msg.Holder, msg.FundID)
}
func (msg *MsgWithdrawFundBonus) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgWithdrawFundBonus
func (msg *MsgWithdrawFundBonus) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgWithdrawFundBonus"
}

// Route implements sdk.Msg
func (msg *MsgWithdrawFundBonus) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgWithdrawFundBonus) Type() string { return TypeMsgWithdrawFundBonus }

// ValidateBasic for MsgWithdrawFundBonus
func (msg *MsgWithdrawFundBonus) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Holder); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "holder: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgWithdrawFundBonus
func (msg *MsgWithdrawFundBonus) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Holder)
	return []sdk.AccAddress{signer}
}

// MsgWithdrawFundBonusResponse is the response for MsgWithdrawFundBonus
type MsgWithdrawFundBonusResponse struct {
	Bonus string `json:"bonus"`
}

// Proto interface implementations for MsgWithdrawFundBonusResponse
func (msg *MsgWithdrawFundBonusResponse) Reset()         { *msg = MsgWithdrawFundBonusResponse{} }
func (msg *MsgWithdrawFundBonusResponse) String() string { return msg.Bonus }
func (msg *MsgWithdrawFundBonusResponse) ProtoMessage()  {}

// MsgTransferShares transfers shares
type MsgTransferShares struct {
	From   string `json:"from"`
	FundID uint64 `json:"fund_id"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// Proto interface implementations for MsgTransferShares
func (msg *MsgTransferShares) Reset() { *msg = MsgTransferShares{} }
func (msg *MsgTransferShares) String() string {
	return fmt.Sprintf("MsgTransferShares{From: %s, FundID: %d, To: %s, Amount: %s}", msg.From, msg.FundID, msg.To, msg.Amount)
}
func (msg *MsgTransferShares) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgTransferShares
func (msg *MsgTransferShares) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgTransferShares"
}

// Route implements sdk.Msg
func (msg *MsgTransferShares) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgTransferShares) Type() string { return TypeMsgTransferShares }

// ValidateBasic for MsgTransferShares
func (msg *MsgTransferShares) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.From); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "from: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "to: %s", err)
	}
	_, err := ParsePositiveAmount(msg.Amount)
	return err
}

// GetSigners returns the signer addresses for MsgTransferShares
func (msg *MsgTransferShares) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.From)
	return []sdk.AccAddress{signer}
}

// MsgTransferSharesResponse is the response for MsgTransferShares
type MsgTransferSharesResponse struct{}

// Proto interface implementations for MsgTransferSharesResponse
func (msg *MsgTransferSharesResponse) Reset()         { *msg = MsgTransferSharesResponse{} }
func (msg *MsgTransferSharesResponse) String() string { return "MsgTransferSharesResponse" }
func (msg *MsgTransferSharesResponse) ProtoMessage()  {}

// MsgApproveShares sets a spender allowance
type MsgApproveShares struct {
	Owner   string `json:"owner"`
	FundID  uint64 `json:"fund_id"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

// Proto interface implementations for MsgApproveShares
func (msg *MsgApproveShares) Reset() { *msg = MsgApproveShares{} }
func (msg *MsgApproveShares) String() string {
	return fmt.Sprintf("MsgApproveShares{Owner: %s, FundID: %d, Spender: %s, Amount: %s}", msg.Owner, msg.FundID, msg.Spender, msg.Amount)
}
func (msg *MsgApproveShares) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgApproveShares
func (msg *MsgApproveShares) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgApproveShares"
}

// Route implements sdk.Msg
func (msg *MsgApproveShares) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgApproveShares) Type() string { return TypeMsgApproveShares }

// ValidateBasic for MsgApproveShares
func (msg *MsgApproveShares) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "owner: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Spender); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "spender: %s", err)
	}
	_, err := ParseAmount(msg.Amount)
	return err
}

// GetSigners returns the signer addresses for MsgApproveShares
func (msg *MsgApproveShares) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{signer}
}

// MsgApproveSharesResponse is the response for MsgApproveShares
type MsgApproveSharesResponse struct{}

// Proto interface implementations for MsgApproveSharesResponse
func (msg *MsgApproveSharesResponse) Reset()         { *msg = MsgApproveSharesResponse{} }
func (msg *MsgApproveSharesResponse) String() string { return "MsgApproveSharesResponse" }
func (msg *MsgApproveSharesResponse) ProtoMessage()  {}

// MsgTransferSharesFrom transfers shares using an allowance
type MsgTransferSharesFrom struct {
	Spender string `json:"spender"`
	FundID  uint64 `json:"fund_id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Amount  string `json:"amount"`
}

// Proto interface implementations for MsgTransferSharesFrom
func (msg *MsgTransferSharesFrom) Reset() { *msg = MsgTransferSharesFrom{} }
func (msg *MsgTransferSharesFrom) String() string {
	return fmt.Sprintf("MsgTransferSharesFrom{Spender: %s, FundID: %d, From: %s, To: %s}", msg.Spender, msg.FundID, msg.From, msg.To)
}
func (msg *MsgTransferSharesFrom) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgTransferSharesFrom
func (msg *MsgTransferSharesFrom) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgTransferSharesFrom"
}

// Route implements sdk.Msg
func (msg *MsgTransferSharesFrom) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgTransferSharesFrom) Type() string { return TypeMsgTransferSharesFrom }

// ValidateBasic for MsgTransferSharesFrom
func (msg *MsgTransferSharesFrom) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Spender); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "spender: %s", err)
	}
	for _, addr := range []string{msg.From, msg.To} {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return errors.Wrapf(ErrInvalidAddress, "%s: %s", addr, err)
		}
	}
	_, err := ParsePositiveAmount(msg.Amount)
	return err
}

// GetSigners returns the signer addresses for MsgTransferSharesFrom
func (msg *MsgTransferSharesFrom) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Spender)
	return []sdk.AccAddress{signer}
}

// MsgTransferSharesFromResponse is the response for MsgTransferSharesFrom
type MsgTransferSharesFromResponse struct{}

// Proto interface implementations for MsgTransferSharesFromResponse
func (msg *MsgTransferSharesFromResponse) Reset()         { *msg = MsgTransferSharesFromResponse{} }
func (msg *MsgTransferSharesFromResponse) String() string { return "MsgTransferSharesFromResponse" }
func (msg *MsgTransferSharesFromResponse) ProtoMessage()  {}

// MsgApproveLock authorizes a locker to freeze shares
type MsgApproveLock struct {
	Holder      string `json:"holder"`
	FundID      uint64 `json:"fund_id"`
	Locker      string `json:"locker"`
	Amount      string `json:"amount"`
	MaxDuration int64  `json:"max_duration"`
}

// Proto interface implementations for MsgApproveLock
func (msg *MsgApproveLock) Reset() { *msg = MsgApproveLock{} }
func (msg *MsgApproveLock) String() string {
	return fmt.Sprintf("MsgApproveLock{Holder: %s, FundID: %d, Locker: %s, Amount: %s}", msg.Holder, msg.FundID, msg.Locker, msg.Amount)
}
func (msg *MsgApproveLock) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgApproveLock
func (msg *MsgApproveLock) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgApproveLock"
}

// Route implements sdk.Msg
func (msg *MsgApproveLock) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgApproveLock) Type() string { return TypeMsgApproveLock }

// ValidateBasic for MsgApproveLock
func (msg *MsgApproveLock) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Holder); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "holder: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Locker); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "locker: %s", err)
	}
	if err := ValidateLockDuration(msg.MaxDuration); err != nil {
		return err
	}
	_, err := ParseAmount(msg.Amount)
	return err
}

// GetSigners returns the signer addresses for MsgApproveLock
func (msg *MsgApproveLock) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Holder)
	return []sdk.AccAddress{signer}
}

// MsgApproveLockResponse is the response for MsgApproveLock
type MsgApproveLockResponse struct{}

// Proto interface implementations for MsgApproveLockResponse
func (msg *MsgApproveLockResponse) Reset()         { *msg = MsgApproveLockResponse{} }
func (msg *MsgApproveLockResponse) String() string { return "MsgApproveLockResponse" }
func (msg *MsgApproveLockResponse) ProtoMessage()  {}

// MsgLock freezes shares of a holder
type MsgLock struct {
	Locker   string `json:"locker"`
	FundID   uint64 `json:"fund_id"`
	Holder   string `json:"holder"`
	Amount   string `json:"amount"`
	Duration int64  `json:"duration"`
}

// Proto interface implementations for MsgLock
func (msg *MsgLock) Reset() { *msg = MsgLock{} }
func (msg *MsgLock) String() string {
	return fmt.Sprintf("MsgLock{Locker: %s, FundID: %d, Holder: %s, Amount: %s}", msg.Locker, msg.FundID, msg.Holder, msg.Amount)
}
func (msg *MsgLock) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgLock
func (msg *MsgLock) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgLock"
}

// Route implements sdk.Msg
func (msg *MsgLock) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgLock) Type() string { return TypeMsgLock }

// ValidateBasic for MsgLock
func (msg *MsgLock) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Locker); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "locker: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Holder); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "holder: %s", err)
	}
	if err := ValidateLockDuration(msg.Duration); err != nil {
		return err
	}
	_, err := ParsePositiveAmount(msg.Amount)
	return err
}

// GetSigners returns the signer addresses for MsgLock
func (msg *MsgLock) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Locker)
	return []sdk.AccAddress{signer}
}

// MsgLockResponse is the response for MsgLock
type MsgLockResponse struct{}

// Proto interface implementations for MsgLockResponse
func (msg *MsgLockResponse) Reset()         { *msg = MsgLockResponse{} }
func (msg *MsgLockResponse) String() string { return "MsgLockResponse" }
func (msg *MsgLockResponse) ProtoMessage()  {}

// MsgIncreaseLockAmount adds shares to an active lock
type MsgIncreaseLockAmount struct {
	Locker string `json:"locker"`
	FundID uint64 `json:"fund_id"`
	Holder string `json:"holder"`
	Amount string `json:"amount"`
}

// Proto interface implementations for MsgIncreaseLockAmount
func (msg *MsgIncreaseLockAmount) Reset() { *msg = MsgIncreaseLockAmount{} }
func (msg *MsgIncreaseLockAmount) String() string {
	return fmt.Sprintf("MsgIncreaseLockAmount{Locker: %s, FundID: %d, Holder: %s, Amount: %s}", msg.Locker, msg.FundID, msg.Holder, msg.Amount)
}
func (msg *MsgIncreaseLockAmount) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgIncreaseLockAmount
func (msg *MsgIncreaseLockAmount) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgIncreaseLockAmount"
}

// Route implements sdk.Msg
func (msg *MsgIncreaseLockAmount) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgIncreaseLockAmount) Type() string { return TypeMsgIncreaseLockAmount }

// ValidateBasic for MsgIncreaseLockAmount
func (msg *MsgIncreaseLockAmount) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Locker); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "locker: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Holder); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "holder: %s", err)
	}
	_, err := ParsePositiveAmount(msg.Amount)
	return err
}

// GetSigners returns the signer addresses for MsgIncreaseLockAmount
func (msg *MsgIncreaseLockAmount) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Locker)
	return []sdk.AccAddress{signer}
}

// MsgIncreaseLockAmountResponse is the response for MsgIncreaseLockAmount
type MsgIncreaseLockAmountResponse struct{}

// Proto interface implementations for MsgIncreaseLockAmountResponse
func (msg *MsgIncreaseLockAmountResponse) Reset()         { *msg = MsgIncreaseLockAmountResponse{} }
func (msg *MsgIncreaseLockAmountResponse) String() string { return "MsgIncreaseLockAmountResponse" }
func (msg *MsgIncreaseLockAmountResponse) ProtoMessage()  {}

// MsgUnlock releases part of a lock
type MsgUnlock struct {
	Locker string `json:"locker"`
	FundID uint64 `json:"fund_id"`
	Holder string `json:"holder"`
	Amount string `json:"amount"`
}

// Proto interface implementations for MsgUnlock
func (msg *MsgUnlock) Reset() { *msg = MsgUnlock{} }
func (msg *MsgUnlock) String() string {
	return fmt.Sprintf("MsgUnlock{Locker: %s, FundID: %d, Holder: %s, Amount: %s}", msg.Locker, msg.FundID, msg.Holder, msg.Amount)
}
func (msg *MsgUnlock) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgUnlock
func (msg *MsgUnlock) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgUnlock"
}

// Route implements sdk.Msg
func (msg *MsgUnlock) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUnlock) Type() string { return TypeMsgUnlock }

// ValidateBasic for MsgUnlock
func (msg *MsgUnlock) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Locker); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "locker: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Holder); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "holder: %s", err)
	}
	_, err := ParseAmount(msg.Amount)
	return err
}

// GetSigners returns the signer addresses for MsgUnlock
func (msg *MsgUnlock) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Locker)
	return []sdk.AccAddress{signer}
}

// MsgUnlockResponse is the response for MsgUnlock
type MsgUnlockResponse struct{}

// Proto interface implementations for MsgUnlockResponse
func (msg *MsgUnlockResponse) Reset()         { *msg = MsgUnlockResponse{} }
func (msg *MsgUnlockResponse) String() string { return "MsgUnlockResponse" }
func (msg *MsgUnlockResponse) ProtoMessage()  {}

// MsgUnlockAll releases a whole lock
type MsgUnlockAll struct {
	Locker string `json:"locker"`
	FundID uint64 `json:"fund_id"`
	Holder string `json:"holder"`
}

// Proto interface implementations for MsgUnlockAll
func (msg *MsgUnlockAll) Reset() { *msg = MsgUnlockAll{} }
func (msg *MsgUnlockAll) String() string {
	return fmt.Sprintf("MsgUnlockAll{Locker: %s, FundID: %d, Holder: %s}", msg.Locker, msg.FundID, msg.Holder)
}
func (msg *MsgUnlockAll) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgUnlockAll
func (msg *MsgUnlockAll) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgUnlockAll"
}

// Route implements sdk.Msg
func (msg *MsgUnlockAll) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUnlockAll) Type() string { return TypeMsgUnlockAll }

// ValidateBasic for MsgUnlockAll
func (msg *MsgUnlockAll) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Locker); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "locker: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Holder); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "holder: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgUnlockAll
func (msg *MsgUnlockAll) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Locker)
	return []sdk.AccAddress{signer}
}

// MsgUnlockAllResponse is the response for MsgUnlockAll
type MsgUnlockAllResponse struct{}

// Proto interface implementations for MsgUnlockAllResponse
func (msg *MsgUnlockAllResponse) Reset()         { *msg = MsgUnlockAllResponse{} }
func (msg *MsgUnlockAllResponse) String() string { return "MsgUnlockAllResponse" }
func (msg *MsgUnlockAllResponse) ProtoMessage()  {}

// MsgSetInternalCaller grants or revokes the internal caller role
type MsgSetInternalCaller struct {
	Authority string `json:"authority"`
	FundID    uint64 `json:"fund_id"`
	Address   string `json:"address"`
	Enabled   bool   `json:"enabled"`
}

// Proto interface implementations for MsgSetInternalCaller
func (msg *MsgSetInternalCaller) Reset() { *msg = MsgSetInternalCaller{} }
func (msg *MsgSetInternalCaller) String() string {
	return fmt.Sprintf("MsgSetInternalCaller{Authority: %s, FundID: %d, Address: %s, Enabled: %t}", msg.Authority, msg.FundID, msg.Address, msg.Enabled)
}
func (msg *MsgSetInternalCaller) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgSetInternalCaller
func (msg *MsgSetInternalCaller) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgSetInternalCaller"
}

// Route implements sdk.Msg
func (msg *MsgSetInternalCaller) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgSetInternalCaller) Type() string { return TypeMsgSetInternalCaller }

// ValidateBasic for MsgSetInternalCaller
func (msg *MsgSetInternalCaller) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "authority: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Address); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "address: %s", err)
	}
	return nil
}

// GetSigners returns the signer addresses for MsgSetInternalCaller
func (msg *MsgSetInternalCaller) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{signer}
}

// MsgSetInternalCallerResponse is the response for MsgSetInternalCaller
type MsgSetInternalCallerResponse struct{}

// Proto interface implementations for MsgSetInternalCallerResponse
func (msg *MsgSetInternalCallerResponse) Reset()         { *msg = MsgSetInternalCallerResponse{} }
func (msg *MsgSetInternalCallerResponse) String() string { return "MsgSetInternalCallerResponse" }
func (msg *MsgSetInternalCallerResponse) ProtoMessage()  {}

// MsgUpdateParams updates the module params
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// Proto interface implementations for MsgUpdateParams
func (msg *MsgUpdateParams) Reset() { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string {
	return fmt.Sprintf("MsgUpdateParams{Authority: %s}", msg.Authority)
}
func (msg *MsgUpdateParams) ProtoMessage() {}

// XXX_MessageName returns the message type URL for MsgUpdateParams
func (msg *MsgUpdateParams) XXX_MessageName() string {
	return "fundchain.fund.v1.MsgUpdateParams"
}

// Route implements sdk.Msg
func (msg *MsgUpdateParams) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// ValidateBasic for MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "authority: %s", err)
	}
	return msg.Params.Validate()
}

// GetSigners returns the signer addresses for MsgUpdateParams
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{signer}
}

// MsgUpdateParamsResponse is the response for MsgUpdateParams
type MsgUpdateParamsResponse struct{}

// Proto interface implementations for MsgUpdateParamsResponse
func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) String() string { return "MsgUpdateParamsResponse" }
func (msg *MsgUpdateParamsResponse) ProtoMessage()  {}
