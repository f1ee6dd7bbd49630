package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	pinger    Pinger

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, pinger Pinger, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		pinger:    pinger,
		logger:    logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// CheckHealth pings the storage.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.pinger == nil {
		return ErrStorageUnavailable
	}

	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.CheckHealth").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
