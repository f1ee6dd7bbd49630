package service

import (
	"github.com/MKhiriev/stack-underflow/internal/config"
	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/store"
	"github.com/MKhiriev/stack-underflow/internal/utils"
	"github.com/MKhiriev/stack-underflow/models"
)

type Services struct {
	AuthService     AuthService
	QuestionService QuestionService
	CommentService  CommentService
	AppInfoService  AppInfoService
}

// NewServices builds every service on top of storages. Each domain service
// is wrapped by its validation decorator.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	sanitizer := utils.NewSanitizer(cfg.App.SanitizeHTML)

	return &Services{
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		QuestionService: NewQuestionValidationService(sanitizer).
			Wrap(NewQuestionService(storages.QuestionRepository, logger)),
		CommentService: NewCommentValidationService(sanitizer).
			Wrap(NewCommentService(storages.CommentRepository, logger)),
		AppInfoService: NewAppInfoService(buildInfo, storages, logger),
	}
}
