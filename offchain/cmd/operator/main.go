package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/openalpha/fundchain/app"
	"github.com/openalpha/fundchain/metrics"
	"github.com/openalpha/fundchain/offchain/operator"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to YAML config file")
	rpcURL := flag.String("rpc", "", "Chain RPC URL")
	wsURL := flag.String("ws", "", "WebSocket URL")
	submitterType := flag.String("submitter", "", "Submitter type (mock or batch)")
	from := flag.String("from", "", "Key name (batch) or address (mock) the operator acts as")
	watch := flag.Bool("watch", false, "Tick on every new block")
	once := flag.Bool("once", false, "Run a single tick and exit")
	flag.Parse()

	cfg, err := operator.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[ERROR] load config: %v", err)
	}

	// Override with command line flags
	if *rpcURL != "" {
		cfg.Chain.RPCURL = *rpcURL
	}
	if *wsURL != "" {
		cfg.Chain.WebSocketURL = *wsURL
	}
	if *submitterType != "" {
		cfg.Submitter.Type = *submitterType
	}
	if *from != "" {
		cfg.Chain.From = *from
	}
	if *watch {
		cfg.Schedule.WatchBlocks = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[ERROR] invalid config: %v", err)
	}

	log.Println("=== fundchain operator ===")
	log.Printf("Chain RPC: %s", cfg.Chain.RPCURL)
	log.Printf("WebSocket: %s (watch=%v)", cfg.Chain.WebSocketURL, cfg.Schedule.WatchBlocks)
	log.Printf("Tick: %s", cfg.Schedule.TickCron)
	log.Printf("Submitter: %s", cfg.Submitter.Type)
	log.Printf("Journal: %s", cfg.Journal.Path)
	log.Println("==========================")

	clientCtx, err := newClientContext(cfg)
	if err != nil {
		log.Fatalf("[ERROR] client context: %v", err)
	}

	sender := cfg.Chain.From
	var broadcaster operator.Broadcaster
	if cfg.Submitter.Type == "batch" {
		sender = clientCtx.FromAddress.String()
		broadcaster = operator.NewClientBroadcaster(clientCtx, newTxFactory(cfg, clientCtx))
	}
	submitter, err := operator.NewSubmitter(cfg.Submitter.Type, broadcaster, cfg.BatchConfig())
	if err != nil {
		log.Fatalf("[ERROR] submitter: %v", err)
	}

	journal, err := operator.OpenJournal(cfg.Journal.Path)
	if err != nil {
		log.Fatalf("[ERROR] journal: %v", err)
	}
	defer journal.Close()

	op := operator.New(sender, operator.NewStoreFundSource(clientCtx), submitter, journal, operator.Options{
		MaxPerTick:  cfg.Schedule.MaxPerTick,
		MaxAttempts: cfg.Submitter.MaxAttempts,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *once {
		res, err := op.Tick(ctx)
		if err != nil {
			log.Fatalf("[ERROR] tick: %v", err)
		}
		log.Printf("[INFO] tick: funds=%d planned=%d submitted=%d failed=%d", res.Funds, res.Planned, res.Submitted, res.Failed)
		return
	}

	metricsServer := startMetricsServer(cfg.Metrics.Addr)

	var watcher *operator.BlockWatcher
	if cfg.Schedule.WatchBlocks {
		watcher = operator.NewBlockWatcher(cfg.Chain.WebSocketURL, cfg.Schedule.ReconnectDelay)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- op.Run(ctx, cfg.Schedule.TickCron, watcher)
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Periodic status logging
	statsTicker := time.NewTicker(time.Minute)
	defer statsTicker.Stop()

	log.Println("[INFO] operator is running. Press Ctrl+C to stop.")

	for {
		select {
		case sig := <-sigCh:
			log.Printf("[INFO] received signal: %v", sig)
			cancel()
			<-errCh
			shutdown(metricsServer)
			log.Println("[INFO] operator stopped")
			return
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("[ERROR] operator exited: %v", err)
			}
			shutdown(metricsServer)
			return
		case <-statsTicker.C:
			status := submitter.GetStatus()
			log.Printf("[INFO] submissions=%d failed=%d pending=%d last_error=%q",
				status.TotalSubmissions, status.FailedSubmissions, status.PendingTxCount, status.LastError)
		}
	}
}

// newClientContext connects to the node and, for the batch submitter, loads
// the signing key
func newClientContext(cfg *operator.Config) (client.Context, error) {
	encodingConfig := app.MakeEncodingConfig()

	rpcClient, err := client.NewClientFromNode(cfg.Chain.RPCURL)
	if err != nil {
		return client.Context{}, fmt.Errorf("connect %s: %w", cfg.Chain.RPCURL, err)
	}

	clientCtx := client.Context{}.
		WithCodec(encodingConfig.Codec).
		WithInterfaceRegistry(encodingConfig.InterfaceRegistry).
		WithTxConfig(encodingConfig.TxConfig).
		WithLegacyAmino(encodingConfig.Amino).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithClient(rpcClient).
		WithNodeURI(cfg.Chain.RPCURL).
		WithChainID(cfg.Chain.ChainID).
		WithHomeDir(cfg.Chain.Home).
		WithBroadcastMode(flags.BroadcastSync).
		WithSkipConfirmation(true)

	if cfg.Submitter.Type != "batch" {
		return clientCtx, nil
	}

	kr, err := keyring.New(sdk.KeyringServiceName(), cfg.Chain.KeyringBackend, cfg.Chain.Home, os.Stdin, encodingConfig.Codec)
	if err != nil {
		return client.Context{}, fmt.Errorf("open keyring: %w", err)
	}
	record, err := kr.Key(cfg.Chain.From)
	if err != nil {
		return client.Context{}, fmt.Errorf("load key %s: %w", cfg.Chain.From, err)
	}
	addr, err := record.GetAddress()
	if err != nil {
		return client.Context{}, fmt.Errorf("key address: %w", err)
	}

	return clientCtx.
		WithKeyring(kr).
		WithFromName(cfg.Chain.From).
		WithFromAddress(addr), nil
}

func newTxFactory(cfg *operator.Config, clientCtx client.Context) tx.Factory {
	return tx.Factory{}.
		WithChainID(cfg.Chain.ChainID).
		WithKeybase(clientCtx.Keyring).
		WithTxConfig(clientCtx.TxConfig).
		WithAccountRetriever(clientCtx.AccountRetriever).
		WithGas(cfg.Chain.Gas).
		WithGasPrices(cfg.Chain.GasPrices)
}

func startMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[ERROR] metrics server: %v", err)
		}
	}()
	log.Printf("[INFO] metrics listening on %s", addr)
	return server
}

func shutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}
