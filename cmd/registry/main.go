package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"github.com/edi-wallet/core/internal/registry/apiv1"
	"github.com/edi-wallet/core/internal/registry/db"
	"github.com/edi-wallet/core/internal/registry/httpserver"
	"github.com/edi-wallet/core/internal/registry/tree"
	"github.com/edi-wallet/core/pkg/configuration"
	"github.com/edi-wallet/core/pkg/logger"
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
		serviceName string = "registry"
	)

	cfg, err := configuration.New(ctx)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(serviceName, cfg.Common.Log.FolderPath, cfg.Common.Production)
	if err != nil {
		panic(err)
	}

	// main function log
	mainLog := log.New("main")

	tracer, err := trace.New(ctx, cfg, serviceName, log)
	if err != nil {
		panic(err)
	}

	dbService, err := db.New(ctx, cfg, log)
	services["dbService"] = dbService
	if err != nil {
		panic(err)
	}

	treeService, err := tree.New(ctx, wg, dbService, cfg, log)
	services["treeService"] = treeService
	if err != nil {
		panic(err)
	}

	apiv1Client, err := apiv1.New(ctx, cfg, treeService, log)
	if err != nil {
		panic(err)
	}

	httpService, err := httpserver.New(ctx, cfg, apiv1Client, tracer, log)
	services["httpService"] = httpService
	if err != nil {
		panic(err)
	}

	// Handle sigterm and await termChan signal
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan // Blocks here until interrupted

	mainLog.Info("HALTING SIGNAL!")

	for serviceName, service := range services {
		if err := service.Close(ctx); err != nil {
			mainLog.Error(err, "serviceName", serviceName)
		}
	}

	if err := tracer.Shutdown(ctx); err != nil {
		mainLog.Error(err, "Tracer shutdown")
	}

	wg.Wait() // Block here until are workers are done

	mainLog.Info("Stopped")
}
