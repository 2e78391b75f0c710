package keeper

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func coin(denom string, amount math.Int) sdk.Coins {
	if !amount.IsPositive() {
		return sdk.NewCoins()
	}
	return sdk.NewCoins(sdk.NewCoin(denom, amount))
}

func accAddress(addr string) (sdk.AccAddress, error) {
	return sdk.AccAddressFromBech32(addr)
}
