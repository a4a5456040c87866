package api

import (
	"github.com/hanbit-dev/carebond/internal/db"
	"github.com/hanbit-dev/carebond/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.onboardingService = services.NewOnboardingService(handler.repositories.Users, handler.repositories.Patients)
	handler.profileService = services.NewProfileService(handler.repositories.Users, handler.repositories.Patients, handler.repositories.GuardianRequests)
	handler.reportService = services.NewReportService(handler.repositories.Reports, handler.repositories.Patients, handler.repositories.GuardianRequests)
	handler.messageService = services.NewMessageService(handler.repositories.Messages)
	handler.photoService = services.NewPhotoService(handler.repositories.Photos)
	handler.exportService = services.NewExportService(handler.repositories.Reports)
	return handler
}
