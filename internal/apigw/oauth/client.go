package oauth

import (
	"context"
	"github.com/edi-wallet/core/internal/apigw/db"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/model"
)

type Client struct {
	cfg *model.Cfg
	db  *db.Service
	log *logger.Log
}

func New(ctx context.Context, cfg *model.Cfg, db *db.Service, log *logger.Log) (*Client, error) {
	client := &Client{
		cfg: cfg,
		db:  db,
		log: log,
	}

	return client, nil
}
