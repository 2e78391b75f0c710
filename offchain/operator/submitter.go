package operator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ErrSimulatedFailure is returned by a MockSubmitter set to fail
var ErrSimulatedFailure = errors.New("operator: simulated failure")

// TxSubmitter submits fund messages to the chain
type TxSubmitter interface {
	// Submit broadcasts msgs, possibly split across several transactions
	Submit(ctx context.Context, msgs []sdk.Msg) error

	// GetStatus returns the submitter status
	GetStatus() SubmitterStatus
}

// SubmitterStatus represents the status of a submitter
type SubmitterStatus struct {
	Connected         bool
	PendingTxCount    int
	LastSubmitTime    time.Time
	LastError         string
	TotalSubmissions  int64
	FailedSubmissions int64
}

// MockSubmitter records messages instead of broadcasting them
type MockSubmitter struct {
	mu       sync.Mutex
	msgs     []sdk.Msg
	status   SubmitterStatus
	failNext int
}

// NewMockSubmitter creates a new mock submitter
func NewMockSubmitter() *MockSubmitter {
	return &MockSubmitter{
		status: SubmitterStatus{Connected: true},
	}
}

// Submit records msgs
func (s *MockSubmitter) Submit(ctx context.Context, msgs []sdk.Msg) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext > 0 {
		s.failNext--
		s.status.FailedSubmissions++
		s.status.LastError = ErrSimulatedFailure.Error()
		return ErrSimulatedFailure
	}

	s.msgs = append(s.msgs, msgs...)
	s.status.TotalSubmissions++
	s.status.LastSubmitTime = time.Now()

	log.Printf("[MockSubmitter] Submitted %d messages", len(msgs))
	return nil
}

// GetStatus returns the mock submitter status
func (s *MockSubmitter) GetStatus() SubmitterStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Submitted returns all recorded messages
func (s *MockSubmitter) Submitted() []sdk.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sdk.Msg, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// FailNext makes the next n submissions fail
func (s *MockSubmitter) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
}

// Broadcaster signs and broadcasts one transaction carrying msgs
type Broadcaster interface {
	Broadcast(ctx context.Context, msgs []sdk.Msg) error
}

// BroadcasterFunc adapts a function to Broadcaster
type BroadcasterFunc func(ctx context.Context, msgs []sdk.Msg) error

// Broadcast calls f
func (f BroadcasterFunc) Broadcast(ctx context.Context, msgs []sdk.Msg) error {
	return f(ctx, msgs)
}

// ClientBroadcaster signs with the keyring of a client context and
// broadcasts through its node client
type ClientBroadcaster struct {
	clientCtx client.Context
	factory   tx.Factory
}

// NewClientBroadcaster creates a broadcaster from an initialized client
// context and tx factory
func NewClientBroadcaster(clientCtx client.Context, factory tx.Factory) *ClientBroadcaster {
	return &ClientBroadcaster{clientCtx: clientCtx, factory: factory}
}

// Broadcast signs msgs into one transaction and broadcasts it. A transaction
// rejected by CheckTx is returned as an error.
func (b *ClientBroadcaster) Broadcast(ctx context.Context, msgs []sdk.Msg) error {
	clientCtx := b.clientCtx.WithCmdContext(ctx)

	txf, err := b.factory.Prepare(clientCtx)
	if err != nil {
		return fmt.Errorf("prepare tx factory: %w", err)
	}
	builder, err := txf.BuildUnsignedTx(msgs...)
	if err != nil {
		return fmt.Errorf("build tx: %w", err)
	}
	if err := tx.Sign(ctx, txf, clientCtx.FromName, builder, true); err != nil {
		return fmt.Errorf("sign tx: %w", err)
	}
	txBytes, err := clientCtx.TxConfig.TxEncoder()(builder.GetTx())
	if err != nil {
		return fmt.Errorf("encode tx: %w", err)
	}

	res, err := clientCtx.BroadcastTx(txBytes)
	if err != nil {
		return fmt.Errorf("broadcast tx: %w", err)
	}
	if res.Code != 0 {
		return fmt.Errorf("tx %s rejected with code %d: %s", res.TxHash, res.Code, res.RawLog)
	}
	log.Printf("[ClientBroadcaster] broadcast tx %s with %d messages", res.TxHash, len(msgs))
	return nil
}

// BatchSubmitter submits messages in batches, retrying each batch
type BatchSubmitter struct {
	broadcaster   Broadcaster
	batchSize     int
	retryAttempts int
	retryDelay    time.Duration

	mu     sync.Mutex
	status SubmitterStatus
}

// BatchSubmitterConfig holds configuration for BatchSubmitter
type BatchSubmitterConfig struct {
	BatchSize     int
	RetryAttempts int
	RetryDelay    time.Duration
}

// DefaultBatchSubmitterConfig returns default configuration
func DefaultBatchSubmitterConfig() *BatchSubmitterConfig {
	return &BatchSubmitterConfig{
		BatchSize:     20,
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

// NewBatchSubmitter creates a new batch submitter
func NewBatchSubmitter(broadcaster Broadcaster, config *BatchSubmitterConfig) *BatchSubmitter {
	if config == nil {
		config = DefaultBatchSubmitterConfig()
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 1
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}

	return &BatchSubmitter{
		broadcaster:   broadcaster,
		batchSize:     config.BatchSize,
		retryAttempts: config.RetryAttempts,
		retryDelay:    config.RetryDelay,
		status: SubmitterStatus{
			Connected: true,
		},
	}
}

// Submit submits msgs in batches
func (s *BatchSubmitter) Submit(ctx context.Context, msgs []sdk.Msg) error {
	if len(msgs) == 0 {
		return nil
	}

	s.mu.Lock()
	s.status.PendingTxCount = len(msgs)
	s.mu.Unlock()

	for i := 0; i < len(msgs); i += s.batchSize {
		end := i + s.batchSize
		if end > len(msgs) {
			end = len(msgs)
		}

		if err := s.submitBatchWithRetry(ctx, msgs[i:end]); err != nil {
			s.mu.Lock()
			s.status.FailedSubmissions++
			s.status.LastError = err.Error()
			s.status.PendingTxCount = len(msgs) - i
			s.mu.Unlock()
			return fmt.Errorf("operator: submit batch: %w", err)
		}
	}

	s.mu.Lock()
	s.status.TotalSubmissions++
	s.status.LastSubmitTime = time.Now()
	s.status.PendingTxCount = 0
	s.mu.Unlock()

	return nil
}

// submitBatchWithRetry submits a batch with retry logic
func (s *BatchSubmitter) submitBatchWithRetry(ctx context.Context, batch []sdk.Msg) error {
	var lastErr error
	for attempt := 0; attempt < s.retryAttempts; attempt++ {
		err := s.broadcaster.Broadcast(ctx, batch)
		if err == nil {
			return nil
		}
		lastErr = err
		log.Printf("[BatchSubmitter] attempt %d of %d failed: %v", attempt+1, s.retryAttempts, err)

		if attempt == s.retryAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}
	return fmt.Errorf("all retry attempts failed: %w", lastErr)
}

// GetStatus returns the submitter status
func (s *BatchSubmitter) GetStatus() SubmitterStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// NewSubmitter creates a submitter by type. The broadcaster is only used by
// the "batch" submitter.
func NewSubmitter(submitterType string, broadcaster Broadcaster, config *BatchSubmitterConfig) (TxSubmitter, error) {
	switch submitterType {
	case "", "mock":
		return NewMockSubmitter(), nil
	case "batch":
		if broadcaster == nil {
			return nil, errors.New("operator: batch submitter requires a broadcaster")
		}
		return NewBatchSubmitter(broadcaster, config), nil
	default:
		return nil, fmt.Errorf("operator: unknown submitter type %q", submitterType)
	}
}
