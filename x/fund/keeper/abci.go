package keeper

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/metrics"
)

// EndBlocker refreshes the per-status and supply gauges
func (k *Keeper) EndBlocker(ctx sdk.Context) error {
	start := time.Now()

	funds := k.GetAllFunds(ctx)
	byStatus := make(map[string]int)
	c := metrics.GetCollector()
	for _, fund := range funds {
		byStatus[fund.Status.String()]++
		c.RecordSupply(formatID(fund.ID), fund.TotalSalesShare)
	}
	c.UpdateFundGauges(byStatus)
	c.UpdateBlockHeight(ctx.BlockHeight())

	k.logger.Debug("fund EndBlocker completed",
		"block", ctx.BlockHeight(),
		"funds", len(funds),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
