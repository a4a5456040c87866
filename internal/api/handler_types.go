package api

import (
	"time"

	"github.com/hanbit-dev/carebond/internal/db"
	"github.com/hanbit-dev/carebond/internal/i18n"
	"github.com/hanbit-dev/carebond/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager

	repositories      *db.Repositories
	authService       *services.AuthService
	onboardingService *services.OnboardingService
	profileService    *services.ProfileService
	reportService     *services.ReportService
	messageService    *services.MessageService
	photoService      *services.PhotoService
	exportService     *services.ExportService
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	Role       string `json:"role" form:"role"`
	RememberMe bool   `json:"rememberMe" form:"rememberMe"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
}

type fieldCheckInput struct {
	Form  string `json:"form"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type guardianOnboardingPayload struct {
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Age          int      `json:"age"`
	Address      string   `json:"address"`
	Relationship string   `json:"relationship"`
	PatientName  string   `json:"patientName"`
	PatientAge   int      `json:"patientAge"`
	Medications  []string `json:"medications"`
}

type caregiverOnboardingPayload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Age          int    `json:"age"`
	Address      string `json:"address"`
	Workplace    string `json:"workplace"`
	MatchingCode string `json:"matchingCode"`
}

type acquaintanceOnboardingPayload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Age          int    `json:"age"`
	Relationship string `json:"relationship"`
	MatchingCode string `json:"matchingCode"`
}

type profileUpdatePayload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Age          int    `json:"age"`
	Address      string `json:"address"`
	Workplace    string `json:"workplace"`
	Relationship string `json:"relationship"`
}

type medicationPayload struct {
	Name string `json:"name"`
}

type guardianRequestPayload struct {
	Request string `json:"request"`
}

type timeEntryPayload struct {
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Description string `json:"description"`
}

type checklistTogglePayload struct {
	Category  string `json:"category"`
	Name      string `json:"name"`
	TimeOfDay string `json:"timeOfDay"`
}

type specialNotePayload struct {
	Text string `json:"text"`
}

type acknowledgePayload struct {
	RequestID string `json:"requestId"`
}

type messagePayload struct {
	Text string `json:"text"`
}

type photoUploadPayload struct {
	Data        string `json:"data"`
	ContentType string `json:"contentType"`
	Caption     string `json:"caption"`
}
