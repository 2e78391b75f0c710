package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"
)

// History record kinds
const (
	HistoryKindBuy           = "buy"
	HistoryKindRedemption    = "redemption"
	HistoryKindWithdrawBonus = "withdraw_bonus"
)

// historyNamespace scopes deterministic history record IDs
var historyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("fundchain/x/fund/history"))

// HistoryRecord is one user-facing activity entry handed to UserHistory
type HistoryRecord struct {
	ID      string    `json:"id"`
	FundID  uint64    `json:"fund_id"`
	Account string    `json:"account"`
	Kind    string    `json:"kind"`
	Coins   sdk.Coins `json:"coins"`
	Time    int64     `json:"time"`
}

// HistoryRecordID derives the record ID from the module-wide history sequence
func HistoryRecordID(seq uint64) string {
	return uuid.NewSHA1(historyNamespace, []byte(fmt.Sprintf("%d", seq))).String()
}
