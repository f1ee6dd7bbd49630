package http

import (
	"github.com/MKhiriev/stack-underflow/internal/config"
	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/service"
	"github.com/MKhiriev/stack-underflow/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// traceIDs issues ids for requests arriving without X-Trace-ID.
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
