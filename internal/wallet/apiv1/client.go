package apiv1

import (
	"context"

	"github.com/edi-wallet/core/internal/wallet/db"
	"github.com/edi-wallet/core/pkg/datastoreclient"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/model"
	"github.com/edi-wallet/core/pkg/storagecrypt"
	"github.com/edi-wallet/core/pkg/trace"
	"github.com/edi-wallet/core/pkg/walletproviderclient"
)

// Client holds the public api object
type Client struct {
	cfg             *model.Cfg
	db              *db.Service
	log             *logger.Log
	tracer          *trace.Tracer
	datastoreClient *datastoreclient.Client

	// store is the on-device encrypted store backing the wallet session:
	// the active PIN salt, attested key, wallet certificate, sequence
	// number, and issued attestations (spec §4.5).
	store *storagecrypt.Service

	// session drives registration and the instruction protocol against
	// the configured wallet provider (spec §4.1, §4.2).
	session *WalletSession
}

// New creates a new instance of the public api. store may be nil when the
// wallet provider instruction protocol isn't needed (e.g. server-side
// credential offer handling only).
func New(ctx context.Context, db *db.Service, tracer *trace.Tracer, cfg *model.Cfg, log *logger.Log, store *storagecrypt.Service) (*Client, error) {
	c := &Client{
		cfg:    cfg,
		db:     db,
		log:    log.New("apiv1"),
		tracer: tracer,
		store:  store,
	}

	if store != nil && cfg.Wallet.WalletProviderURL != "" {
		wpClient, err := walletproviderclient.New(&walletproviderclient.Config{URL: cfg.Wallet.WalletProviderURL})
		if err != nil {
			return nil, err
		}
		c.session = NewWalletSession(wpClient, store, tracer, log)
	}

	c.log.Info("Started")

	return c, nil
}
