package keeper

import (
	"encoding/json"

	"cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// Keeper manages the fund module state
type Keeper struct {
	cdc          codec.BinaryCodec
	storeKey     storetypes.StoreKey
	bankKeeper   types.BankKeeper
	investKeeper types.InvestPolicyKeeper
	history      types.UserHistory
	logger       log.Logger
	authority    string
}

// NewKeeper creates a new fund keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	investKeeper types.InvestPolicyKeeper,
	history types.UserHistory,
	authority string,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		cdc:          cdc,
		storeKey:     storeKey,
		bankKeeper:   bankKeeper,
		investKeeper: investKeeper,
		history:      history,
		authority:    authority,
		logger:       logger.With("module", "x/fund"),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the governance authority address
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// atomically runs fn against a branched store and commits only if fn succeeds
func (k *Keeper) atomically(ctx sdk.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func (k *Keeper) setJSON(ctx sdk.Context, key []byte, v interface{}) {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	k.GetStore(ctx).Set(key, bz)
}

func (k *Keeper) getJSON(ctx sdk.Context, key []byte, v interface{}) bool {
	bz := k.GetStore(ctx).Get(key)
	if bz == nil {
		return false
	}
	if err := json.Unmarshal(bz, v); err != nil {
		k.logger.Error("failed to decode store value", "key", key, "error", err)
		return false
	}
	return true
}

// ============ Params ============

// GetParams returns the module params
func (k *Keeper) GetParams(ctx sdk.Context) types.Params {
	var params types.Params
	if !k.getJSON(ctx, types.ParamsKey, &params) {
		return types.DefaultParams()
	}
	return params
}

// SetParams stores the module params
func (k *Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	k.setJSON(ctx, types.ParamsKey, params)
	return nil
}

// ============ Fund Records ============

// SetFund saves a fund to the store
func (k *Keeper) SetFund(ctx sdk.Context, fund *types.Fund) {
	k.setJSON(ctx, types.FundKey(fund.ID), fund)
}

// GetFund retrieves a fund from the store
func (k *Keeper) GetFund(ctx sdk.Context, fundID uint64) (*types.Fund, bool) {
	var fund types.Fund
	if !k.getJSON(ctx, types.FundKey(fundID), &fund) {
		return nil, false
	}
	return &fund, true
}

func (k *Keeper) mustGetFund(ctx sdk.Context, fundID uint64) (*types.Fund, error) {
	fund, found := k.GetFund(ctx, fundID)
	if !found {
		return nil, errors.Wrapf(types.ErrFundNotFound, "fund %d", fundID)
	}
	return fund, nil
}

// GetAllFunds returns all funds
func (k *Keeper) GetAllFunds(ctx sdk.Context) []*types.Fund {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.FundKeyPrefix)
	defer iterator.Close()

	var funds []*types.Fund
	for ; iterator.Valid(); iterator.Next() {
		var fund types.Fund
		if err := json.Unmarshal(iterator.Value(), &fund); err != nil {
			continue
		}
		funds = append(funds, &fund)
	}
	return funds
}

func (k *Keeper) nextSequence(ctx sdk.Context, key []byte) uint64 {
	store := k.GetStore(ctx)
	seq := uint64(1)
	if bz := store.Get(key); bz != nil {
		seq = sdk.BigEndianToUint64(bz) + 1
	}
	store.Set(key, sdk.Uint64ToBigEndian(seq))
	return seq
}

// ============ Access Control ============

// HasRole reports whether addr holds role in a fund
func (k *Keeper) HasRole(ctx sdk.Context, fundID uint64, role types.Role, addr string) bool {
	return k.GetStore(ctx).Has(types.ACLKey(fundID, role, addr))
}

func (k *Keeper) grantRole(ctx sdk.Context, fundID uint64, role types.Role, addr string) {
	k.GetStore(ctx).Set(types.ACLKey(fundID, role, addr), []byte{0x01})
}

func (k *Keeper) revokeRole(ctx sdk.Context, fundID uint64, role types.Role, addr string) {
	k.GetStore(ctx).Delete(types.ACLKey(fundID, role, addr))
}

// GetRoleMembers returns every address holding role in a fund
func (k *Keeper) GetRoleMembers(ctx sdk.Context, fundID uint64, role types.Role) []string {
	prefix := types.ACLRolePrefix(fundID, role)
	iterator := storetypes.KVStorePrefixIterator(k.GetStore(ctx), prefix)
	defer iterator.Close()

	var members []string
	for ; iterator.Valid(); iterator.Next() {
		// key suffix is a one-byte length followed by the address
		members = append(members, string(iterator.Key()[len(prefix)+1:]))
	}
	return members
}

func (k *Keeper) requireOwner(fund *types.Fund, caller string) error {
	if fund.Owner != caller {
		return errors.Wrapf(types.ErrNotOwner, "%s", caller)
	}
	return nil
}

func (k *Keeper) requireAdmin(ctx sdk.Context, fund *types.Fund, caller string) error {
	if !k.HasRole(ctx, fund.ID, types.RoleAdmin, caller) {
		return errors.Wrapf(types.ErrNotAdmin, "%s", caller)
	}
	return nil
}

func (k *Keeper) requireInternal(ctx sdk.Context, fund *types.Fund, caller string) error {
	if !k.HasRole(ctx, fund.ID, types.RoleInternal, caller) {
		return errors.Wrapf(types.ErrNotInternal, "%s", caller)
	}
	return nil
}

// SetInternalCaller grants or revokes the internal caller role. Only the
// governance authority may manage the allow-list.
func (k *Keeper) SetInternalCaller(ctx sdk.Context, authority string, fundID uint64, addr string, enabled bool) error {
	if authority != k.authority {
		return errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", k.authority, authority)
	}
	if _, err := k.mustGetFund(ctx, fundID); err != nil {
		return err
	}
	if enabled {
		k.grantRole(ctx, fundID, types.RoleInternal, addr)
	} else {
		k.revokeRole(ctx, fundID, types.RoleInternal, addr)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetInternalCaller,
			sdk.NewAttribute(types.AttributeKeyFundID, formatID(fundID)),
			sdk.NewAttribute(types.AttributeKeyAddress, addr),
			sdk.NewAttribute(types.AttributeKeyEnabled, formatBool(enabled)),
		),
	)
	return nil
}

// UpdateParams replaces the module params
func (k *Keeper) UpdateParams(ctx sdk.Context, authority string, params types.Params) error {
	if authority != k.authority {
		return errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", k.authority, authority)
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeUpdateParams))
	return nil
}

// ============ Genesis ============

// InitGenesis initializes the module state from genesis
func (k *Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) error {
	return k.SetParams(ctx, gs.Params)
}

// ExportGenesis exports the module params
func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{Params: k.GetParams(ctx)}
}
