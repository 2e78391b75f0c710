package operator

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"

	"github.com/openalpha/fundchain/x/fund/types"
)

// ActionKind is a period-bound transition the operator drives
type ActionKind string

const (
	ActionCloseSales      ActionKind = "close_fund_sales"
	ActionBonus           ActionKind = "fund_bonus"
	ActionStartSettlement ActionKind = "start_fund_settlement"
	ActionContinuation    ActionKind = "fund_continuation"
)

// priority orders actions that fall due at the same second. A bonus is paid
// before the closed period is settled.
func (k ActionKind) priority() int {
	switch k {
	case ActionCloseSales:
		return 0
	case ActionBonus:
		return 1
	case ActionStartSettlement:
		return 2
	case ActionContinuation:
		return 3
	default:
		return 4
	}
}

// actionNamespace scopes deterministic action IDs
var actionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("fundchain/offchain/operator"))

// Action is one planned transition of one fund
type Action struct {
	Kind   ActionKind `json:"kind"`
	FundID uint64     `json:"fund_id"`
	DueAt  int64      `json:"due_at"`
}

// ID derives a stable identifier, so the same transition for the same
// period is never planned twice
func (a Action) ID() string {
	return uuid.NewSHA1(actionNamespace, []byte(fmt.Sprintf("%d/%s/%d", a.FundID, a.Kind, a.DueAt))).String()
}

func (a Action) String() string {
	return fmt.Sprintf("%s(fund=%d, due=%d)", a.Kind, a.FundID, a.DueAt)
}

// Msg builds the fund message executing the action as sender
func (a Action) Msg(sender string) (sdk.Msg, error) {
	switch a.Kind {
	case ActionCloseSales:
		return &types.MsgCloseFundSales{Admin: sender, FundID: a.FundID}, nil
	case ActionBonus:
		return &types.MsgFundBonus{Admin: sender, FundID: a.FundID}, nil
	case ActionStartSettlement:
		return &types.MsgStartFundSettlement{Admin: sender, FundID: a.FundID}, nil
	case ActionContinuation:
		return &types.MsgFundContinuation{Admin: sender, FundID: a.FundID}, nil
	default:
		return nil, fmt.Errorf("operator: unknown action kind %q", a.Kind)
	}
}
