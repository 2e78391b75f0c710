package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []FundStatus{
	StatusWaitingForSale,
	StatusOnSale,
	StatusSalesFailed,
	StatusClosed,
	StatusSettlement,
	StatusRedemption,
	StatusLiquidation,
	StatusStop,
}

func TestStatusString(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range allStatuses {
		name := s.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate status name %s", name)
		seen[name] = true
	}
	assert.Equal(t, "unknown", FundStatus(99).String())
	assert.True(t, StatusStop.IsTerminal())
	assert.True(t, StatusLiquidation.IsTerminal())
	assert.False(t, StatusRedemption.IsTerminal())
}

func TestTransitionTable(t *testing.T) {
	allowed := map[Operation]map[FundStatus][]FundStatus{
		OpStartSales:       {StatusWaitingForSale: {StatusOnSale}},
		OpCloseSales:       {StatusOnSale: {StatusClosed, StatusSalesFailed}},
		OpStartSettlement:  {StatusClosed: {StatusSettlement}},
		OpSettle:           {StatusSettlement: {StatusRedemption}},
		OpStartLiquidation: {StatusClosed: {StatusLiquidation}},
		OpContinuation:     {StatusRedemption: {StatusClosed}},
		OpStop:             {StatusRedemption: {StatusStop}},
	}

	for op, froms := range allowed {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				got, err := Transition(op, from, to)
				if containsStatus(froms[from], to) {
					require.NoError(t, err, "%s %s -> %s", op, from, to)
					assert.Equal(t, to, got)
					continue
				}
				require.ErrorIs(t, err, ErrInvalidStatus, "%s %s -> %s", op, from, to)
				assert.Equal(t, from, got)
			}
		}
	}
}

func containsStatus(set []FundStatus, s FundStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func TestCheckOperation(t *testing.T) {
	testCases := []struct {
		op      Operation
		allowed []FundStatus
	}{
		{OpResetFundData, []FundStatus{StatusWaitingForSale}},
		{OpBuy, []FundStatus{StatusOnSale, StatusRedemption}},
		{OpBonus, []FundStatus{StatusClosed}},
		{OpRedeem, []FundStatus{StatusSalesFailed, StatusRedemption, StatusStop}},
		{OpModifyFundData, []FundStatus{StatusClosed}},
		{OpChangeInvestPolicy, []FundStatus{StatusClosed}},
		{OpChangeSigners, []FundStatus{StatusClosed}},
		{OpInvest, []FundStatus{StatusClosed}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.op), func(t *testing.T) {
			for _, s := range allStatuses {
				err := CheckOperation(tc.op, s)
				if containsStatus(tc.allowed, s) {
					assert.NoError(t, err, s.String())
				} else {
					assert.ErrorIs(t, err, ErrInvalidStatus, s.String())
				}
			}
		})
	}

	assert.ErrorIs(t, CheckOperation(Operation("nope"), StatusClosed), ErrInvalidStatus)
}

func TestTerminalStatusesHaveNoExit(t *testing.T) {
	ops := []Operation{OpStartSales, OpCloseSales, OpStartSettlement, OpSettle, OpStartLiquidation, OpContinuation, OpStop}
	for _, from := range []FundStatus{StatusLiquidation, StatusStop} {
		for _, op := range ops {
			for _, to := range Targets(op) {
				_, err := Transition(op, from, to)
				assert.Error(t, err, "%s from %s", op, from)
			}
		}
	}
}
