package apiv1

import (
	"context"
	"crypto/ecdsa"
	"errors"

	"github.com/edi-wallet/core/internal/walletprovider/db"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/model"
	"github.com/edi-wallet/core/pkg/trace"
	"github.com/edi-wallet/core/pkg/walletattest/android"
	"github.com/edi-wallet/core/pkg/walletattest/apple"
)

// hsmKeySize is the size, in bytes, of the AES-256-GCM key wrapping
// every WP-generated holder key at rest.
const hsmKeySize = 32

// Client holds the wallet provider's public API object: registration and
// the instruction protocol (spec §4.1, §4.2).
type Client struct {
	cfg    *model.Cfg
	db     *db.Service
	log    *logger.Log
	tracer *trace.Tracer

	certKey *ecdsa.PrivateKey
	wuaKey  *ecdsa.PrivateKey

	// hsmKey wraps every GenerateKey/IssueWte-minted private key before
	// it is persisted via c.db. A real deployment would keep this
	// material, and the unwrap operation, inside an HSM; here it is an
	// AES-256-GCM key held in process memory (see DESIGN.md).
	hsmKey [hsmKeySize]byte

	appleVerifier   *apple.Verifier
	androidVerifier *android.Verifier
}

// New creates a new instance of the wallet provider's public API.
func New(ctx context.Context, dbSvc *db.Service, tracer *trace.Tracer, cfg *model.Cfg, log *logger.Log, certKey, wuaKey *ecdsa.PrivateKey, appleVerifier *apple.Verifier, androidVerifier *android.Verifier) (*Client, error) {
	if len(cfg.WalletProvider.HSMWrappingKey) != hsmKeySize {
		return nil, errors.New("walletprovider: hsm_wrapping_key must be exactly 32 bytes")
	}

	c := &Client{
		cfg:             cfg,
		db:              dbSvc,
		log:             log.New("apiv1"),
		tracer:          tracer,
		certKey:         certKey,
		wuaKey:          wuaKey,
		appleVerifier:   appleVerifier,
		androidVerifier: androidVerifier,
	}
	copy(c.hsmKey[:], cfg.WalletProvider.HSMWrappingKey)

	c.log.Info("Started")

	return c, nil
}
