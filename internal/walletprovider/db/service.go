// Package db is the wallet provider's persistence layer: wallet records,
// the PIN/sequence-number state machine, and transient enrollment
// challenges, grounded on internal/wallet/db's
// Service{dbClient,cfg,log,tracer,probeStore}/connect/Status/Close shape
// (dc4eu-vc's own Mongo-backed service idiom).
package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edi-wallet/core/internal/gen/status/apiv1_status"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/model"
	"github.com/edi-wallet/core/pkg/trace"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// ErrNoDocuments is returned when no documents are found.
var ErrNoDocuments = errors.New("no documents in result")

// Service is the wallet provider's database service.
type Service struct {
	dbClient   *mongo.Client
	cfg        *model.Cfg
	log        *logger.Log
	tracer     *trace.Tracer
	probeStore *apiv1_status.StatusProbeStore

	wallets       *mongo.Collection
	enrollments   *mongo.Collection
	generatedKeys *mongo.Collection
	counters      *mongo.Collection
}

// New creates a new wallet provider database service.
func New(ctx context.Context, cfg *model.Cfg, tracer *trace.Tracer, log *logger.Log) (*Service, error) {
	service := &Service{
		log:        log.New("db"),
		cfg:        cfg,
		tracer:     tracer,
		probeStore: &apiv1_status.StatusProbeStore{},
	}

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := service.connect(ctx); err != nil {
		return nil, err
	}

	db := service.dbClient.Database("wallet_provider")
	service.wallets = db.Collection("wallets")
	service.enrollments = db.Collection("enrollments")
	service.generatedKeys = db.Collection("generated_keys")
	service.counters = db.Collection("counters")

	if _, err := service.enrollments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    map[string]int{"expires_at": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	}); err != nil {
		return nil, err
	}

	service.log.Info("Started")

	return service, nil
}

func (s *Service) connect(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:connect")
	defer span.End()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.Common.Mongo.URI))
	if err != nil {
		return err
	}
	s.dbClient = client

	return nil
}

// Status returns the status of the database.
func (s *Service) Status(ctx context.Context) *apiv1_status.StatusProbe {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:status")
	defer span.End()

	if time.Now().Before(s.probeStore.NextCheck.AsTime()) {
		return s.probeStore.PreviousResult
	}
	probe := &apiv1_status.StatusProbe{
		Name:          "db",
		Healthy:       true,
		Message:       "OK",
		LastCheckedTS: timestamppb.Now(),
	}

	if err := s.dbClient.Ping(ctx, nil); err != nil {
		probe.Message = err.Error()
		probe.Healthy = false
	}

	s.probeStore.PreviousResult = probe
	s.probeStore.NextCheck = timestamppb.New(time.Now().Add(10 * time.Second))

	return probe
}

// Close closes the database connection.
func (s *Service) Close(ctx context.Context) error {
	return s.dbClient.Disconnect(ctx)
}
