package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/edi-wallet/core/internal/wallet/apiv1"
	"github.com/edi-wallet/core/internal/wallet/db"
	"github.com/edi-wallet/core/internal/wallet/httpserver"
	"github.com/edi-wallet/core/pkg/configuration"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/storagecrypt"
	"github.com/edi-wallet/core/pkg/trace"
)

type service interface {
	Close(ctx context.Context) error
}

func main() {
	var (
		wg                 = &sync.WaitGroup{}
		ctx                = context.Background()
		services           = make(map[string]service)
		serviceName string = "wallet"
	)

	cfg, err := configuration.New(ctx)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(serviceName, cfg.Common.Log.FolderPath, cfg.Common.Production)
	if err != nil {
		panic(err)
	}

	mainLog := log.New("main")

	tracer, err := trace.New(ctx, cfg, serviceName, log)
	if err != nil {
		panic(err)
	}

	if len(cfg.Wallet.StorageEncryptionKey) != storagecrypt.KeySize {
		panic(errors.New("wallet: storage_encryption_key must be exactly 32 bytes"))
	}
	var storageKey [storagecrypt.KeySize]byte
	copy(storageKey[:], cfg.Wallet.StorageEncryptionKey)

	store, err := storagecrypt.Open(ctx, cfg.Wallet.StoragePath, storageKey, tracer, log)
	if err != nil {
		panic(err)
	}
	services["store"] = closerFunc(store.Close)

	dbService, err := db.New(ctx, cfg, tracer, log)
	services["dbService"] = dbService
	if err != nil {
		panic(err)
	}

	apiv1Client, err := apiv1.New(ctx, dbService, tracer, cfg, log, store)
	if err != nil {
		panic(err)
	}

	httpService, err := httpserver.New(ctx, cfg, apiv1Client, tracer, log)
	services["httpserver"] = httpService
	if err != nil {
		panic(err)
	}

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan

	mainLog.Info("HALTING SIGNAL!")

	for serviceName, service := range services {
		if err := service.Close(ctx); err != nil {
			mainLog.Trace("serviceName", serviceName, "error", err)
		}
	}

	wg.Wait()

	mainLog.Info("Stopped")
}

// closerFunc adapts a plain func() error Close method to the service
// interface's context-taking Close.
type closerFunc func() error

func (f closerFunc) Close(ctx context.Context) error {
	return f()
}
