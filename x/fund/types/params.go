package types

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
const (
	DefaultProtocolFeeRatio uint64 = 100 // 1% over RatioDenominator
	DefaultDayLength        int64  = 86400
	DefaultMaxBonusTokens   uint32 = 10
)

// Params holds module-wide parameters
type Params struct {
	ProtocolFeeRecipient string `json:"protocol_fee_recipient"`
	ProtocolFeeRatio     uint64 `json:"protocol_fee_ratio"`
	DayLength            int64  `json:"day_length"`
	MaxBonusTokens       uint32 `json:"max_bonus_tokens"`
}

// DefaultParams returns the default module parameters. The protocol fee
// recipient is left empty and must be set by governance or genesis.
func DefaultParams() Params {
	return Params{
		ProtocolFeeRatio: DefaultProtocolFeeRatio,
		DayLength:        DefaultDayLength,
		MaxBonusTokens:   DefaultMaxBonusTokens,
	}
}

// Validate validates the params
func (p Params) Validate() error {
	if p.ProtocolFeeRecipient != "" {
		if _, err := sdk.AccAddressFromBech32(p.ProtocolFeeRecipient); err != nil {
			return errors.Wrapf(ErrInvalidParams, "protocol fee recipient: %s", err)
		}
	}
	if p.ProtocolFeeRatio > RatioDenominator {
		return errors.Wrap(ErrInvalidParams, "protocol fee ratio exceeds 10000")
	}
	if p.DayLength <= 0 {
		return errors.Wrap(ErrInvalidParams, "day length must be positive")
	}
	if p.MaxBonusTokens == 0 || p.MaxBonusTokens > DefaultMaxBonusTokens {
		return errors.Wrapf(ErrInvalidParams, "max bonus tokens must be between 1 and %d", DefaultMaxBonusTokens)
	}
	return nil
}

// GenesisState defines the fund module's genesis state
type GenesisState struct {
	Params Params `json:"params"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	return gs.Params.Validate()
}
