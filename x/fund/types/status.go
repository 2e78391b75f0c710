package types

import (
	"cosmossdk.io/errors"
)

// FundStatus is the lifecycle state of a fund
type FundStatus uint8

const (
	StatusWaitingForSale FundStatus = iota // Created, sale not started
	StatusOnSale                           // Shares can be bought at the initial net value
	StatusSalesFailed                      // Minimum raise not reached, capital refundable
	StatusClosed                           // Capital deployed through the invest policy
	StatusSettlement                       // Positions being unwound
	StatusRedemption                       // Holders can redeem at the redemption net value
	StatusLiquidation                      // Terminal, entered by governance
	StatusStop                             // Terminal for non-perpetual funds
)

// String returns the string representation of FundStatus
func (s FundStatus) String() string {
	switch s {
	case StatusWaitingForSale:
		return "waiting_for_sale"
	case StatusOnSale:
		return "on_sale"
	case StatusSalesFailed:
		return "sales_failed"
	case StatusClosed:
		return "closed"
	case StatusSettlement:
		return "settlement"
	case StatusRedemption:
		return "redemption"
	case StatusLiquidation:
		return "liquidation"
	case StatusStop:
		return "stop"
	default:
		return "unknown"
	}
}

// IsTerminal returns true if no transition leaves the status
func (s FundStatus) IsTerminal() bool {
	return s == StatusLiquidation || s == StatusStop
}

// Operation names a guarded fund entry point
type Operation string

const (
	OpResetFundData      Operation = "reset_fund_data"
	OpStartSales         Operation = "start_sales"
	OpBuy                Operation = "buy"
	OpCloseSales         Operation = "close_sales"
	OpBonus              Operation = "bonus"
	OpStartSettlement    Operation = "start_settlement"
	OpSettle             Operation = "settle"
	OpStartLiquidation   Operation = "start_liquidation"
	OpContinuation       Operation = "continuation"
	OpStop               Operation = "stop"
	OpRedeem             Operation = "redeem"
	OpModifyFundData     Operation = "modify_fund_data"
	OpChangeInvestPolicy Operation = "change_invest_policy"
	OpChangeSigners      Operation = "change_signers"
	OpInvest             Operation = "invest"
)

// rule lists the statuses an operation may start from and, for transitions,
// the statuses it may end in. An empty to-set means the status is unchanged.
type rule struct {
	from []FundStatus
	to   []FundStatus
}

var lifecycle = map[Operation]rule{
	OpResetFundData:      {from: []FundStatus{StatusWaitingForSale}},
	OpStartSales:         {from: []FundStatus{StatusWaitingForSale}, to: []FundStatus{StatusOnSale}},
	OpBuy:                {from: []FundStatus{StatusOnSale, StatusRedemption}},
	OpCloseSales:         {from: []FundStatus{StatusOnSale}, to: []FundStatus{StatusClosed, StatusSalesFailed}},
	OpBonus:              {from: []FundStatus{StatusClosed}},
	OpStartSettlement:    {from: []FundStatus{StatusClosed}, to: []FundStatus{StatusSettlement}},
	OpSettle:             {from: []FundStatus{StatusSettlement}, to: []FundStatus{StatusRedemption}},
	OpStartLiquidation:   {from: []FundStatus{StatusClosed}, to: []FundStatus{StatusLiquidation}},
	OpContinuation:       {from: []FundStatus{StatusRedemption}, to: []FundStatus{StatusClosed}},
	OpStop:               {from: []FundStatus{StatusRedemption}, to: []FundStatus{StatusStop}},
	OpRedeem:             {from: []FundStatus{StatusSalesFailed, StatusRedemption, StatusStop}},
	OpModifyFundData:     {from: []FundStatus{StatusClosed}},
	OpChangeInvestPolicy: {from: []FundStatus{StatusClosed}},
	OpChangeSigners:      {from: []FundStatus{StatusClosed}},
	OpInvest:             {from: []FundStatus{StatusClosed}},
}

func contains(set []FundStatus, s FundStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// CheckOperation returns an error unless op may run while the fund is in status s
func CheckOperation(op Operation, s FundStatus) error {
	r, ok := lifecycle[op]
	if !ok {
		return errors.Wrapf(ErrInvalidStatus, "unknown operation %s", op)
	}
	if !contains(r.from, s) {
		return errors.Wrapf(ErrInvalidStatus, "%s not allowed in status %s", op, s)
	}
	return nil
}

// Transition validates moving from one status to another through op and
// returns the target status
func Transition(op Operation, from, to FundStatus) (FundStatus, error) {
	if err := CheckOperation(op, from); err != nil {
		return from, err
	}
	if !contains(lifecycle[op].to, to) {
		return from, errors.Wrapf(ErrInvalidStatus, "%s cannot move %s to %s", op, from, to)
	}
	return to, nil
}

// Targets returns the statuses op may move a fund into
func Targets(op Operation) []FundStatus {
	r := lifecycle[op]
	out := make([]FundStatus, len(r.to))
	copy(out, r.to)
	return out
}
