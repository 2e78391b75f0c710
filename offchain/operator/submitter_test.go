package operator

import (
	"context"
	"errors"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openalpha/fundchain/x/fund/types"
)

func bonusMsgs(n int) []sdk.Msg {
	msgs := make([]sdk.Msg, n)
	for i := range msgs {
		msgs[i] = &types.MsgFundBonus{Admin: "operator", FundID: uint64(i + 1)}
	}
	return msgs
}

type recordingBroadcaster struct {
	batches  [][]sdk.Msg
	failures int
}

func (b *recordingBroadcaster) Broadcast(ctx context.Context, msgs []sdk.Msg) error {
	if b.failures > 0 {
		b.failures--
		return errors.New("sequence mismatch")
	}
	b.batches = append(b.batches, msgs)
	return nil
}

func TestBatchSubmitterSplitsBatches(t *testing.T) {
	b := &recordingBroadcaster{}
	s := NewBatchSubmitter(b, &BatchSubmitterConfig{BatchSize: 2, RetryAttempts: 1})

	require.NoError(t, s.Submit(context.Background(), bonusMsgs(5)))
	require.Len(t, b.batches, 3)
	assert.Len(t, b.batches[0], 2)
	assert.Len(t, b.batches[2], 1)

	status := s.GetStatus()
	assert.Equal(t, int64(1), status.TotalSubmissions)
	assert.Zero(t, status.PendingTxCount)

	require.NoError(t, s.Submit(context.Background(), nil))
	assert.Len(t, b.batches, 3)
}

func TestBatchSubmitterRetries(t *testing.T) {
	b := &recordingBroadcaster{failures: 2}
	s := NewBatchSubmitter(b, &BatchSubmitterConfig{BatchSize: 10, RetryAttempts: 3, RetryDelay: time.Millisecond})

	require.NoError(t, s.Submit(context.Background(), bonusMsgs(1)))
	assert.Len(t, b.batches, 1)

	b.failures = 3
	err := s.Submit(context.Background(), bonusMsgs(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all retry attempts failed")
	assert.Equal(t, int64(1), s.GetStatus().FailedSubmissions)
	assert.Contains(t, s.GetStatus().LastError, "sequence mismatch")
}

func TestBatchSubmitterStopsOnCancel(t *testing.T) {
	b := &recordingBroadcaster{failures: 10}
	s := NewBatchSubmitter(b, &BatchSubmitterConfig{BatchSize: 1, RetryAttempts: 5, RetryDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Submit(ctx, bonusMsgs(1))
	require.ErrorIs(t, err, context.Canceled)
}

func TestMockSubmitter(t *testing.T) {
	s := NewMockSubmitter()
	s.FailNext(1)
	require.ErrorIs(t, s.Submit(context.Background(), bonusMsgs(1)), ErrSimulatedFailure)
	require.NoError(t, s.Submit(context.Background(), bonusMsgs(2)))

	assert.Len(t, s.Submitted(), 2)
	status := s.GetStatus()
	assert.Equal(t, int64(1), status.TotalSubmissions)
	assert.Equal(t, int64(1), status.FailedSubmissions)
}

func TestNewSubmitter(t *testing.T) {
	s, err := NewSubmitter("mock", nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &MockSubmitter{}, s)

	_, err = NewSubmitter("batch", nil, nil)
	assert.Error(t, err)

	s, err = NewSubmitter("batch", BroadcasterFunc(func(context.Context, []sdk.Msg) error { return nil }), nil)
	require.NoError(t, err)
	assert.IsType(t, &BatchSubmitter{}, s)

	_, err = NewSubmitter("grpc", nil, nil)
	assert.Error(t, err)
}
