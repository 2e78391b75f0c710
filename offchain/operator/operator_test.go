package operator

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openalpha/fundchain/x/fund/types"
)

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestOperatorTick(t *testing.T) {
	j, err := OpenJournal(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	onSale := testFund(1, types.StatusOnSale)
	closed := testFund(2, types.StatusClosed)
	closed.ClosedPeriodStartTime = 0
	closed.LastBonusTime = 0
	src := NewStaticFundSource(onSale, closed)

	sub := NewMockSubmitter()
	op := New("operator", src, sub, j, Options{MaxAttempts: 2, Clock: fixedClock(day)})

	res, err := op.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Funds)
	assert.Equal(t, 2, res.Planned)
	assert.Equal(t, 2, res.Submitted)

	msgs := sub.Submitted()
	require.Len(t, msgs, 2)
	assert.Equal(t, &types.MsgCloseFundSales{Admin: "operator", FundID: 1}, msgs[0])
	assert.Equal(t, &types.MsgFundBonus{Admin: "operator", FundID: 2}, msgs[1])

	// the journal keeps a second tick from resubmitting
	res, err = op.Tick(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Planned)
	assert.Len(t, sub.Submitted(), 2)
}

func TestOperatorRetriesFailures(t *testing.T) {
	j, err := OpenJournal(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	src := NewStaticFundSource(testFund(1, types.StatusOnSale))
	sub := NewMockSubmitter()
	op := New("operator", src, sub, j, Options{MaxAttempts: 2, Clock: fixedClock(day)})

	sub.FailNext(5)
	res, err := op.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)

	res, err = op.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)

	// attempts exhausted
	res, err = op.Tick(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Planned)

	records, err := j.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, RecordFailed, records[0].State)
	assert.Equal(t, 2, records[0].Attempts)
}

func TestOperatorUsesBlockTime(t *testing.T) {
	src := NewStaticFundSource(testFund(1, types.StatusOnSale))
	sub := NewMockSubmitter()
	op := New("operator", src, sub, nil, Options{Clock: fixedClock(10 * day)})

	// the chain has not reached the end of the sale yet
	op.ObserveBlock(BlockEvent{Height: 5, Time: time.Unix(day-1, 0)})
	res, err := op.Tick(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Submitted)

	// older heights are ignored
	op.ObserveBlock(BlockEvent{Height: 4, Time: time.Unix(day, 0)})
	res, err = op.Tick(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Submitted)

	op.ObserveBlock(BlockEvent{Height: 6, Time: time.Unix(day, 0)})
	res, err = op.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Submitted)
}

func TestOperatorMaxPerTick(t *testing.T) {
	src := NewStaticFundSource(
		testFund(1, types.StatusOnSale),
		testFund(2, types.StatusOnSale),
		testFund(3, types.StatusOnSale),
	)
	sub := NewMockSubmitter()
	op := New("operator", src, sub, nil, Options{MaxPerTick: 2, Clock: fixedClock(day)})

	res, err := op.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Submitted)

	res, err = op.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Submitted)
}

func TestSchedulerRegister(t *testing.T) {
	s := NewScheduler()
	require.NoError(t, s.Register("*/5 * * * * *", func() {}))
	assert.Len(t, s.Cron.Entries(), 1)
	assert.Error(t, s.Register("every tuesday", func() {}))

	s.Start()
	s.Stop()
}
