//go:build !saml

package main

import (
	"context"
	"github.com/edi-wallet/core/internal/issuer/httpserver"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/model"
)

func initSAMLService(ctx context.Context, cfg *model.Cfg, log *logger.Log) (httpserver.SAMLService, error) {
	if cfg.Issuer.SAML.Enabled {
		log.Info("SAML enabled in config but not compiled in. Rebuild with -tags saml")
	}
	return nil, nil
}
