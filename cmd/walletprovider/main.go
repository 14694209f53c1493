package main

import (
	"context"
	"crypto/x509"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edi-wallet/core/internal/walletprovider/apiv1"
	"github.com/edi-wallet/core/internal/walletprovider/db"
	"github.com/edi-wallet/core/internal/walletprovider/httpserver"
	"github.com/edi-wallet/core/pkg/configuration"
	"github.com/edi-wallet/core/pkg/jose"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/pki"
	"github.com/edi-wallet/core/pkg/trace"
	"github.com/edi-wallet/core/pkg/walletattest/android"
	"github.com/edi-wallet/core/pkg/walletattest/apple"
)

type service interface {
	Close(ctx context.Context) error
}

func loadRoots(path string) (*x509.CertPool, error) {
	cert, chain, err := pki.ParseX509CertificateFromFile(path)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	pool.AddCert(cert)
	for _, c := range chain[1:] {
		pool.AddCert(c)
	}
	return pool, nil
}

// unconfiguredIntegrityKeyFunc rejects all Play Integrity verdict JWTs
// until Google's public verdict-signing JWKs are wired in.
func unconfiguredIntegrityKeyFunc(*jwt.Token) (any, error) {
	return nil, errors.New("walletprovider: play integrity key resolution not configured")
}

func main() {
	var (
		wg                 = &sync.WaitGroup{}
		ctx                = context.Background()
		services           = make(map[string]service)
		serviceName string = "walletprovider"
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

	certKey, err := jose.ParseSigningKey(cfg.WalletProvider.CertificateKeyPath)
	if err != nil {
		panic(err)
	}
	wuaKey, err := jose.ParseSigningKey(cfg.WalletProvider.WUAIssuerKeyPath)
	if err != nil {
		panic(err)
	}

	var appleVerifier *apple.Verifier
	if cfg.WalletProvider.AppleAttest.RootCertPath != "" {
		roots, err := loadRoots(cfg.WalletProvider.AppleAttest.RootCertPath)
		if err != nil {
			panic(err)
		}
		appleVerifier = apple.New(apple.Config{
			Roots: roots,
			AppID: cfg.WalletProvider.AppleAttest.AppID,
		})
	}

	var androidVerifier *android.Verifier
	if cfg.WalletProvider.AndroidAttest.RootCertPath != "" {
		roots, err := loadRoots(cfg.WalletProvider.AndroidAttest.RootCertPath)
		if err != nil {
			panic(err)
		}
		androidVerifier = android.New(android.Config{
			Roots:            roots,
			IntegrityKeyFunc: unconfiguredIntegrityKeyFunc,
			PackageName:      cfg.WalletProvider.AndroidAttest.PackageName,
		})
	}

	dbService, err := db.New(ctx, cfg, tracer, log)
	services["dbService"] = dbService
	if err != nil {
		panic(err)
	}

	apiv1Client, err := apiv1.New(ctx, dbService, tracer, cfg, log, certKey, wuaKey, appleVerifier, androidVerifier)
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
