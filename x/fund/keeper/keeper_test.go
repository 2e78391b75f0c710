package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

const (
	testDenom   = "uusdc"
	testGenesis = int64(1_700_000_000)
	day         = int64(86400)
)

// mockBankKeeper is a map-backed bank that refuses overdrafts
type mockBankKeeper struct {
	balances map[string]sdk.Coins
}

func newMockBankKeeper() *mockBankKeeper {
	return &mockBankKeeper{balances: make(map[string]sdk.Coins)}
}

func (b *mockBankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := b.balances[fromAddr.String()]
	if !from.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s < %s", from, amt)
	}
	b.balances[fromAddr.String()] = from.Sub(amt...)
	b.balances[toAddr.String()] = b.balances[toAddr.String()].Add(amt...)
	return nil
}

func (b *mockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *mockBankKeeper) mint(addr sdk.AccAddress, amt sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(amt...)
}

func (b *mockBankKeeper) balance(addr sdk.AccAddress, denom string) math.Int {
	return b.balances[addr.String()].AmountOf(denom)
}

// mockInvestPolicy values a policy at its bank balance
type mockInvestPolicy struct {
	bank     *mockBankKeeper
	requests []types.InvestRequest
	harvest  sdk.Coins
}

func (p *mockInvestPolicy) TotalValue(ctx context.Context, policy sdk.AccAddress, denom string) (math.Int, error) {
	return p.bank.balance(policy, denom), nil
}

func (p *mockInvestPolicy) Withdraw(ctx context.Context, policy, to sdk.AccAddress, amount sdk.Coin) error {
	return p.bank.SendCoins(ctx, policy, to, sdk.NewCoins(amount))
}

func (p *mockInvestPolicy) Invest(ctx context.Context, policy sdk.AccAddress, req types.InvestRequest) (sdk.Coins, error) {
	p.requests = append(p.requests, req)
	if !req.HasHarvest || p.harvest.IsZero() {
		return sdk.NewCoins(), nil
	}
	recipient, err := sdk.AccAddressFromBech32(req.Recipient)
	if err != nil {
		return nil, err
	}
	p.bank.mint(recipient, p.harvest)
	return p.harvest, nil
}

func (p *mockInvestPolicy) Settle(ctx context.Context, policy sdk.AccAddress, denom string) (math.Int, error) {
	return p.bank.balance(policy, denom), nil
}

// mockHistory keeps every record it is given
type mockHistory struct {
	records []types.HistoryRecord
}

func (h *mockHistory) Record(ctx context.Context, rec types.HistoryRecord) error {
	h.records = append(h.records, rec)
	return nil
}

type testEnv struct {
	keeper  *Keeper
	ctx     sdk.Context
	bank    *mockBankKeeper
	invest  *mockInvestPolicy
	history *mockHistory

	owner  string
	alice  string
	bob    string
	carol  string
	policy string
	wallet string
	gov    string
}

func testAddr(name string) string {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz).String()
}

func acc(addr string) sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(addr)
}

// setupKeeper creates a keeper on an in-memory IAVL store
func setupKeeper(tb testing.TB) *testEnv {
	tb.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		tb.Fatalf("failed to load store: %v", err)
	}

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	ctx = ctx.WithBlockTime(time.Unix(testGenesis, 0))

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(interfaceRegistry)

	bank := newMockBankKeeper()
	invest := &mockInvestPolicy{bank: bank}
	history := &mockHistory{}
	gov := testAddr("gov")

	env := &testEnv{
		keeper:  NewKeeper(cdc, storeKey, bank, invest, history, gov, log.NewNopLogger()),
		ctx:     ctx,
		bank:    bank,
		invest:  invest,
		history: history,
		owner:   testAddr("owner"),
		alice:   testAddr("alice"),
		bob:     testAddr("bob"),
		carol:   testAddr("carol"),
		policy:  "usdc-lending",
		wallet:  testAddr("multisig"),
		gov:     gov,
	}

	params := types.DefaultParams()
	params.ProtocolFeeRecipient = env.owner
	if err := env.keeper.SetParams(ctx, params); err != nil {
		tb.Fatalf("failed to set params: %v", err)
	}
	return env
}

// at moves the block time offset seconds past genesis
func (e *testEnv) at(offset int64) {
	e.ctx = e.ctx.WithBlockTime(time.Unix(testGenesis+offset, 0)).WithEventManager(sdk.NewEventManager())
}

func (e *testEnv) now() int64 {
	return e.ctx.BlockTime().Unix()
}

func (e *testEnv) config() types.FundConfig {
	return types.FundConfig{
		Name:               "alpha",
		InvestPolicy:       e.policy,
		ClosedPeriod:       30 * day,
		RedemptionPeriod:   0,
		MinOpenInterest:    math.ZeroInt(),
		SponsorDivideRatio: 2000,
		Raise: types.RaiseData{
			RaiseDenom:       testDenom,
			TargetRaiseShare: math.NewInt(20000),
			InitialNetValue:  math.NewInt(20),
			MinRaiseShare:    math.NewInt(1000),
			IsHardTop:        false,
			RaisePeriod:      day,
			MinSharePurchase: math.NewInt(10),
			MaxSharePurchase: math.NewInt(10000),
		},
		Bonus: types.BonusData{
			BonusPeriod:             day,
			BonusRatio:              2000,
			ManagerBonusDivideRatio: 2000,
		},
		Manage: types.ManageData{
			Managers:                    []string{e.owner, e.alice},
			NumberOfNeedSignedAddresses: 1,
			ManagerFeeRatio:             100,
		},
	}
}

func (e *testEnv) createFund(tb testing.TB, config types.FundConfig) uint64 {
	tb.Helper()
	fundID, err := e.keeper.CreateFund(e.ctx, e.owner, e.wallet, config)
	if err != nil {
		tb.Fatalf("failed to create fund: %v", err)
	}
	return fundID
}

// openFund creates a fund and starts its sale
func (e *testEnv) openFund(tb testing.TB, config types.FundConfig) uint64 {
	tb.Helper()
	fundID := e.createFund(tb, config)
	if err := e.keeper.StartFundSales(e.ctx, e.owner, fundID); err != nil {
		tb.Fatalf("failed to start sales: %v", err)
	}
	return fundID
}

// buy funds buyer with the exact cost and buys share
func (e *testEnv) buy(tb testing.TB, fundID uint64, buyer string, share int64) {
	tb.Helper()
	fund, _ := e.keeper.GetFund(e.ctx, fundID)
	netValue := fund.Config.Raise.InitialNetValue
	if fund.Status == types.StatusRedemption {
		netValue = fund.RedemptionNetValue
	}
	e.bank.mint(acc(buyer), sdk.NewCoins(sdk.NewCoin(fund.Config.Raise.RaiseDenom, netValue.MulRaw(share))))
	if _, err := e.keeper.BuyFund(e.ctx, buyer, fundID, math.NewInt(share)); err != nil {
		tb.Fatalf("failed to buy %d shares: %v", share, err)
	}
}

// closedFund returns a fund closed with alice holding 600 and bob 400 shares
func (e *testEnv) closedFund(tb testing.TB, config types.FundConfig) uint64 {
	tb.Helper()
	fundID := e.openFund(tb, config)
	e.buy(tb, fundID, e.alice, 600)
	e.buy(tb, fundID, e.bob, 400)
	e.at(config.Raise.RaisePeriod)
	status, err := e.keeper.CloseFundSales(e.ctx, e.owner, fundID)
	if err != nil {
		tb.Fatalf("failed to close sales: %v", err)
	}
	if status != types.StatusClosed {
		tb.Fatalf("expected closed, got %s", status)
	}
	return fundID
}

func (e *testEnv) mustFund(tb testing.TB, fundID uint64) *types.Fund {
	tb.Helper()
	fund, found := e.keeper.GetFund(e.ctx, fundID)
	if !found {
		tb.Fatalf("fund %d not found", fundID)
	}
	return fund
}

func (e *testEnv) balance(addr string) math.Int {
	return e.bank.balance(acc(addr), testDenom)
}

// policyBalance returns what the fund has deployed under policy
func (e *testEnv) policyBalance(fundID uint64, policy string) math.Int {
	return e.bank.balance(types.PolicyAddress(fundID, policy), testDenom)
}

// markPolicy sets the value of the fund's current invest policy position
func (e *testEnv) markPolicy(fundID uint64, value int64) {
	e.bank.balances[types.PolicyAddress(fundID, e.policy).String()] = sdk.NewCoins(sdk.NewInt64Coin(testDenom, value))
}

func expectError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil", target)
	}
	if !errors.IsOf(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}

func expectInt(t *testing.T, what string, got math.Int, want int64) {
	t.Helper()
	if !got.Equal(math.NewInt(want)) {
		t.Errorf("expected %s %d, got %s", what, want, got)
	}
}

// findEvent returns the attributes of the last event of eventType
func findEvent(ctx sdk.Context, eventType string) (map[string]string, bool) {
	events := ctx.EventManager().Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type != eventType {
			continue
		}
		attrs := make(map[string]string, len(events[i].Attributes))
		for _, a := range events[i].Attributes {
			attrs[a.Key] = a.Value
		}
		return attrs, true
	}
	return nil, false
}
