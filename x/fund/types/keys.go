package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "fund"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	FundKeyPrefix        = []byte{0x01}
	FundSequenceKey      = []byte{0x02}
	ParamsKey            = []byte{0x03}
	HistorySequenceKey   = []byte{0x04}
	ShareTokenKeyPrefix  = []byte{0x10}
	HoldingKeyPrefix     = []byte{0x11}
	AccumulatorKeyPrefix = []byte{0x12}
	AllowanceKeyPrefix   = []byte{0x13}
	ACLKeyPrefix         = []byte{0x20}
)

// Role is an access-control role scoped to a single fund
type Role byte

const (
	RoleAdmin    Role = 0x01
	RoleInternal Role = 0x02
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleInternal:
		return "internal"
	default:
		return "unknown"
	}
}

func fundIDBytes(fundID uint64) []byte {
	return sdk.Uint64ToBigEndian(fundID)
}

// lengthPrefixed keeps variable-length segments unambiguous inside composite keys
func lengthPrefixed(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}

func join(parts ...[]byte) []byte {
	var key []byte
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

// FundKey returns the store key of a fund record
func FundKey(fundID uint64) []byte {
	return join(FundKeyPrefix, fundIDBytes(fundID))
}

// ShareTokenKey returns the store key of a fund's share token
func ShareTokenKey(fundID uint64) []byte {
	return join(ShareTokenKeyPrefix, fundIDBytes(fundID))
}

// HoldingKey returns the store key of a holder's share record
func HoldingKey(fundID uint64, holder string) []byte {
	return join(HoldingKeyPrefix, fundIDBytes(fundID), lengthPrefixed(holder))
}

// HoldingPrefix returns the prefix covering every holder of a fund
func HoldingPrefix(fundID uint64) []byte {
	return join(HoldingKeyPrefix, fundIDBytes(fundID))
}

// AccumulatorKey returns the store key of a reward denom accumulator
func AccumulatorKey(fundID uint64, denom string) []byte {
	return join(AccumulatorKeyPrefix, fundIDBytes(fundID), lengthPrefixed(denom))
}

// AllowanceKey returns the store key of an owner/spender share allowance
func AllowanceKey(fundID uint64, owner, spender string) []byte {
	return join(AllowanceKeyPrefix, fundIDBytes(fundID), lengthPrefixed(owner), lengthPrefixed(spender))
}

// ACLKey returns the store key of a role grant
func ACLKey(fundID uint64, role Role, addr string) []byte {
	return join(ACLKeyPrefix, fundIDBytes(fundID), []byte{byte(role)}, lengthPrefixed(addr))
}

// ACLRolePrefix returns the prefix covering all grants of one role in a fund
func ACLRolePrefix(fundID uint64, role Role) []byte {
	return join(ACLKeyPrefix, fundIDBytes(fundID), []byte{byte(role)})
}

// EscrowAddress is the account holding a fund's raised capital and redemption cash
func EscrowAddress(fundID uint64) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte("escrow"), fundIDBytes(fundID)))
}

// PolicyAddress is the module-owned account custodying the capital a fund
// has deployed under the named invest policy
func PolicyAddress(fundID uint64, policy string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte("policy"), fundIDBytes(fundID), []byte(policy)))
}

// BonusPoolAddress is the account holding offered but undrawn bonus tokens
func BonusPoolAddress(fundID uint64) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte("bonus"), fundIDBytes(fundID)))
}
