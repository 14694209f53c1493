// Package httpserver exposes the wallet provider's registration and
// instruction-protocol endpoints over HTTP, grounded on
// internal/wallet/httpserver's Service{cfg,log,server,apiv1,gin,tracer,
// httpHelpers}/New/Close shape.
package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edi-wallet/core/internal/walletprovider/apiv1"
	"github.com/edi-wallet/core/pkg/httphelpers"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/model"
	"github.com/edi-wallet/core/pkg/trace"
)

// Service is the wallet provider's HTTP server.
type Service struct {
	cfg         *model.Cfg
	log         *logger.Log
	server      *http.Server
	apiv1       *apiv1.Client
	gin         *gin.Engine
	tracer      *trace.Tracer
	httpHelpers *httphelpers.Client
}

// New starts the wallet provider's HTTP server.
func New(ctx context.Context, cfg *model.Cfg, client *apiv1.Client, tracer *trace.Tracer, log *logger.Log) (*Service, error) {
	s := &Service{
		cfg:    cfg,
		log:    log.New("httpserver"),
		apiv1:  client,
		gin:    gin.New(),
		tracer: tracer,
		server: &http.Server{},
	}

	var err error
	s.httpHelpers, err = httphelpers.New(ctx, s.tracer, s.cfg, s.log)
	if err != nil {
		return nil, err
	}

	rg, err := s.httpHelpers.Server.Default(ctx, s.server, s.gin, s.cfg.WalletProvider.APIServer.Addr)
	if err != nil {
		return nil, err
	}

	s.httpHelpers.Server.RegEndpoint(ctx, rg, http.MethodGet, "health", http.StatusOK, s.endpointHealth)
	s.httpHelpers.Server.RegEndpoint(ctx, rg, http.MethodPost, "enroll", http.StatusOK, s.endpointEnroll)
	s.httpHelpers.Server.RegEndpoint(ctx, rg, http.MethodPost, "register", http.StatusCreated, s.endpointRegister)
	s.httpHelpers.Server.RegEndpoint(ctx, rg, http.MethodPost, "wallet/:wallet_id/challenge", http.StatusOK, s.endpointChallenge)
	s.httpHelpers.Server.RegEndpoint(ctx, rg, http.MethodPost, "wallet/:wallet_id/instruction", http.StatusOK, s.endpointInstruction)

	go func() {
		if err := s.httpHelpers.Server.ListenAndServe(ctx, s.server, s.cfg.WalletProvider.APIServer); err != nil {
			s.log.Trace("listen_error", "error", err)
		}
	}()

	s.log.Info("Started")

	return s, nil
}

// Close stops the wallet provider's HTTP server.
func (s *Service) Close(ctx context.Context) error {
	s.log.Info("Stopped")
	return nil
}
