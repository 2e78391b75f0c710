package operator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

// FundSource lists the funds the operator plans for
type FundSource interface {
	Funds(ctx context.Context) ([]*types.Fund, error)
}

// StoreReader reads raw keys of a module store. client.Context satisfies it.
type StoreReader interface {
	QueryStore(key []byte, storeName string) ([]byte, int64, error)
}

// StoreFundSource reads fund records straight from the fund module store
type StoreFundSource struct {
	reader StoreReader
}

// NewStoreFundSource creates a fund source over reader
func NewStoreFundSource(reader StoreReader) *StoreFundSource {
	return &StoreFundSource{reader: reader}
}

// Funds returns every fund that can still transition
func (s *StoreFundSource) Funds(ctx context.Context) ([]*types.Fund, error) {
	bz, _, err := s.reader.QueryStore(types.FundSequenceKey, types.StoreKey)
	if err != nil {
		return nil, fmt.Errorf("operator: query fund sequence: %w", err)
	}
	if len(bz) == 0 {
		return nil, nil
	}
	last := sdk.BigEndianToUint64(bz)

	funds := make([]*types.Fund, 0, last)
	for id := uint64(1); id <= last; id++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bz, _, err := s.reader.QueryStore(types.FundKey(id), types.StoreKey)
		if err != nil {
			return nil, fmt.Errorf("operator: query fund %d: %w", id, err)
		}
		if len(bz) == 0 {
			continue
		}
		var f types.Fund
		if err := json.Unmarshal(bz, &f); err != nil {
			return nil, fmt.Errorf("operator: decode fund %d: %w", id, err)
		}
		if f.Status.IsTerminal() {
			continue
		}
		funds = append(funds, &f)
	}
	return funds, nil
}

// StaticFundSource serves a fixed, replaceable set of funds
type StaticFundSource struct {
	mu    sync.RWMutex
	funds []*types.Fund
}

// NewStaticFundSource creates a static source
func NewStaticFundSource(funds ...*types.Fund) *StaticFundSource {
	return &StaticFundSource{funds: funds}
}

// Set replaces the served funds
func (s *StaticFundSource) Set(funds ...*types.Fund) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.funds = funds
}

// Funds returns the served funds
func (s *StaticFundSource) Funds(ctx context.Context) ([]*types.Fund, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.Fund, len(s.funds))
	copy(out, s.funds)
	return out, nil
}
