package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the module's types on the given LegacyAmino codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateFund{}, "fund/MsgCreateFund", nil)
	cdc.RegisterConcrete(&MsgResetFundData{}, "fund/MsgResetFundData", nil)
	cdc.RegisterConcrete(&MsgStartFundSales{}, "fund/MsgStartFundSales", nil)
	cdc.RegisterConcrete(&MsgBuyFund{}, "fund/MsgBuyFund", nil)
	cdc.RegisterConcrete(&MsgCloseFundSales{}, "fund/MsgCloseFundSales", nil)
	cdc.RegisterConcrete(&MsgFundBonus{}, "fund/MsgFundBonus", nil)
	cdc.RegisterConcrete(&MsgStartFundSettlement{}, "fund/MsgStartFundSettlement", nil)
	cdc.RegisterConcrete(&MsgFundSettlement{}, "fund/MsgFundSettlement", nil)
	cdc.RegisterConcrete(&MsgFundContinuation{}, "fund/MsgFundContinuation", nil)
	cdc.RegisterConcrete(&MsgFundStop{}, "fund/MsgFundStop", nil)
	cdc.RegisterConcrete(&MsgStartFundLiquidation{}, "fund/MsgStartFundLiquidation", nil)
	cdc.RegisterConcrete(&MsgModifyFundData{}, "fund/MsgModifyFundData", nil)
	cdc.RegisterConcrete(&MsgChangeInvestPolicy{}, "fund/MsgChangeInvestPolicy", nil)
	cdc.RegisterConcrete(&MsgChangeNumberOfNeedSignedAddresses{}, "fund/MsgChangeNumberOfNeedSignedAddresses", nil)
	cdc.RegisterConcrete(&MsgFundInvest{}, "fund/MsgFundInvest", nil)
	cdc.RegisterConcrete(&MsgExecuteFundInvest{}, "fund/MsgExecuteFundInvest", nil)
	cdc.RegisterConcrete(&MsgRedemptionAll{}, "fund/MsgRedemptionAll", nil)
	cdc.RegisterConcrete(&MsgRedemptionByShare{}, "fund/MsgRedemptionByShare", nil)
	cdc.RegisterConcrete(&MsgWithdrawFundBonus{}, "fund/MsgWithdrawFundBonus", nil)
	cdc.RegisterConcrete(&MsgTransferShares{}, "fund/MsgTransferShares", nil)
	cdc.RegisterConcrete(&MsgApproveShares{}, "fund/MsgApproveShares", nil)
	cdc.RegisterConcrete(&MsgTransferSharesFrom{}, "fund/MsgTransferSharesFrom", nil)
	cdc.RegisterConcrete(&MsgApproveLock{}, "fund/MsgApproveLock", nil)
	cdc.RegisterConcrete(&MsgLock{}, "fund/MsgLock", nil)
	cdc.RegisterConcrete(&MsgIncreaseLockAmount{}, "fund/MsgIncreaseLockAmount", nil)
	cdc.RegisterConcrete(&MsgUnlock{}, "fund/MsgUnlock", nil)
	cdc.RegisterConcrete(&MsgUnlockAll{}, "fund/MsgUnlockAll", nil)
	cdc.RegisterConcrete(&MsgSetInternalCaller{}, "fund/MsgSetInternalCaller", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "fund/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the fund module's interface types
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateFund{},
		&MsgResetFundData{},
		&MsgStartFundSales{},
		&MsgBuyFund{},
		&MsgCloseFundSales{},
		&MsgFundBonus{},
		&MsgStartFundSettlement{},
		&MsgFundSettlement{},
		&MsgFundContinuation{},
		&MsgFundStop{},
		&MsgStartFundLiquidation{},
		&MsgModifyFundData{},
		&MsgChangeInvestPolicy{},
		&MsgChangeNumberOfNeedSignedAddresses{},
		&MsgFundInvest{},
		&MsgExecuteFundInvest{},
		&MsgRedemptionAll{},
		&MsgRedemptionByShare{},
		&MsgWithdrawFundBonus{},
		&MsgTransferShares{},
		&MsgApproveShares{},
		&MsgTransferSharesFrom{},
		&MsgApproveLock{},
		&MsgLock{},
		&MsgIncreaseLockAmount{},
		&MsgUnlock{},
		&MsgUnlockAll{},
		&MsgSetInternalCaller{},
		&MsgUpdateParams{},
	)
}

// MsgServer defines the fund module's message service
type MsgServer interface {
	CreateFund(context.Context, *MsgCreateFund) (*MsgCreateFundResponse, error)
	ResetFundData(context.Context, *MsgResetFundData) (*MsgResetFundDataResponse, error)
	StartFundSales(context.Context, *MsgStartFundSales) (*MsgStartFundSalesResponse, error)
	BuyFund(context.Context, *MsgBuyFund) (*MsgBuyFundResponse, error)
	CloseFundSales(context.Context, *MsgCloseFundSales) (*MsgCloseFundSalesResponse, error)
	FundBonus(context.Context, *MsgFundBonus) (*MsgFundBonusResponse, error)
	StartFundSettlement(context.Context, *MsgStartFundSettlement) (*MsgStartFundSettlementResponse, error)
	FundSettlement(context.Context, *MsgFundSettlement) (*MsgFundSettlementResponse, error)
	FundContinuation(context.Context, *MsgFundContinuation) (*MsgFundContinuationResponse, error)
	FundStop(context.Context, *MsgFundStop) (*MsgFundStopResponse, error)
	StartFundLiquidation(context.Context, *MsgStartFundLiquidation) (*MsgStartFundLiquidationResponse, error)
	ModifyFundData(context.Context, *MsgModifyFundData) (*MsgModifyFundDataResponse, error)
	ChangeInvestPolicy(context.Context, *MsgChangeInvestPolicy) (*MsgChangeInvestPolicyResponse, error)
	ChangeNumberOfNeedSignedAddresses(context.Context, *MsgChangeNumberOfNeedSignedAddresses) (*MsgChangeNumberOfNeedSignedAddressesResponse, error)
	FundInvest(context.Context, *MsgFundInvest) (*MsgFundInvestResponse, error)
	ExecuteFundInvest(context.Context, *MsgExecuteFundInvest) (*MsgExecuteFundInvestResponse, error)
	RedemptionAll(context.Context, *MsgRedemptionAll) (*MsgRedemptionAllResponse, error)
	RedemptionByShare(context.Context, *MsgRedemptionByShare) (*MsgRedemptionByShareResponse, error)
	WithdrawFundBonus(context.Context, *MsgWithdrawFundBonus) (*MsgWithdrawFundBonusResponse, error)
	TransferShares(context.Context, *MsgTransferShares) (*MsgTransferSharesResponse, error)
	ApproveShares(context.Context, *MsgApproveShares) (*MsgApproveSharesResponse, error)
	TransferSharesFrom(context.Context, *MsgTransferSharesFrom) (*MsgTransferSharesFromResponse, error)
	ApproveLock(context.Context, *MsgApproveLock) (*MsgApproveLockResponse, error)
	Lock(context.Context, *MsgLock) (*MsgLockResponse, error)
	IncreaseLockAmount(context.Context, *MsgIncreaseLockAmount) (*MsgIncreaseLockAmountResponse, error)
	Unlock(context.Context, *MsgUnlock) (*MsgUnlockResponse, error)
	UnlockAll(context.Context, *MsgUnlockAll) (*MsgUnlockAllResponse, error)
	SetInternalCaller(context.Context, *MsgSetInternalCaller) (*MsgSetInternalCallerResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// RegisterMsgServer is a no-op: the msg service router needs protobuf service
// descriptors, which the hand-written msgs do not have. Fund msgs are not
// routable in a delivered tx until then; the MsgServer is driven directly.
// TODO: generate proto/fundchain/fund/v1/tx.proto and register the service here.
func RegisterMsgServer(s interface{}, srv MsgServer) {}
