package db

import "gorm.io/gorm"

type Repositories struct {
	Users            *UserRepository
	Patients         *PatientRepository
	GuardianRequests *GuardianRequestRepository
	Reports          *ReportRepository
	Messages         *MessageRepository
	Photos           *PhotoRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(database),
		Patients:         NewPatientRepository(database),
		GuardianRequests: NewGuardianRequestRepository(database),
		Reports:          NewReportRepository(database),
		Messages:         NewMessageRepository(database),
		Photos:           NewPhotoRepository(database),
	}
}
