package operator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openalpha/fundchain/x/fund/types"
)

type mapStore struct {
	data map[string][]byte
	err  error
}

func (m *mapStore) QueryStore(key []byte, storeName string) ([]byte, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	if storeName != types.StoreKey {
		return nil, 0, errors.New("unknown store")
	}
	return m.data[string(key)], 1, nil
}

func (m *mapStore) putFund(t *testing.T, f *types.Fund) {
	bz, err := json.Marshal(f)
	require.NoError(t, err)
	m.data[string(types.FundKey(f.ID))] = bz
}

func TestStoreFundSource(t *testing.T) {
	store := &mapStore{data: map[string][]byte{}}
	src := NewStoreFundSource(store)

	funds, err := src.Funds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, funds)

	store.data[string(types.FundSequenceKey)] = sdk.Uint64ToBigEndian(4)
	store.putFund(t, testFund(1, types.StatusOnSale))
	store.putFund(t, testFund(2, types.StatusStop))
	store.putFund(t, testFund(4, types.StatusClosed))

	funds, err = src.Funds(context.Background())
	require.NoError(t, err)
	require.Len(t, funds, 2)
	assert.Equal(t, uint64(1), funds[0].ID)
	assert.Equal(t, uint64(4), funds[1].ID)
	assert.Equal(t, 30*day, funds[1].Config.ClosedPeriod)

	store.data[string(types.FundKey(3))] = []byte("{")
	_, err = src.Funds(context.Background())
	assert.Error(t, err)

	store.err = errors.New("connection refused")
	_, err = src.Funds(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestStaticFundSource(t *testing.T) {
	src := NewStaticFundSource(testFund(1, types.StatusOnSale))
	funds, err := src.Funds(context.Background())
	require.NoError(t, err)
	assert.Len(t, funds, 1)

	src.Set()
	funds, err = src.Funds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, funds)
}
