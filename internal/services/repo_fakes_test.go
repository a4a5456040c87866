package services

import (
	"time"

	"github.com/hanbit-dev/carebond/internal/models"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	nextID uint
	users  map[uint]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]models.User{}}
}

func (repo *fakeUserRepo) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (repo *fakeUserRepo) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *fakeUserRepo) FindByID(userID uint) (models.User, error) {
	user, ok := repo.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (repo *fakeUserRepo) Create(user *models.User) error {
	user.ID = repo.nextID
	repo.nextID++
	user.CreatedAt = time.Now().UTC()
	repo.users[user.ID] = *user
	return nil
}

func (repo *fakeUserRepo) Save(user *models.User) error {
	repo.users[user.ID] = *user
	return nil
}

type fakePatientRepo struct {
	nextID   uint
	patients map[uint]models.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{nextID: 1, patients: map[uint]models.Patient{}}
}

func (repo *fakePatientRepo) Create(patient *models.Patient) error {
	patient.ID = repo.nextID
	repo.nextID++
	repo.patients[patient.ID] = *patient
	return nil
}

func (repo *fakePatientRepo) FindByID(patientID uint) (models.Patient, error) {
	patient, ok := repo.patients[patientID]
	if !ok {
		return models.Patient{}, gorm.ErrRecordNotFound
	}
	return patient, nil
}

func (repo *fakePatientRepo) FindByMatchingCode(code string) (models.Patient, error) {
	for _, patient := range repo.patients {
		if patient.MatchingCode == code {
			return patient, nil
		}
	}
	return models.Patient{}, gorm.ErrRecordNotFound
}

func (repo *fakePatientRepo) Save(patient *models.Patient) error {
	repo.patients[patient.ID] = *patient
	return nil
}

type fakeRequestRepo struct {
	records []models.GuardianRequestRecord
}

func (repo *fakeRequestRepo) Create(record *models.GuardianRequestRecord) error {
	repo.records = append(repo.records, *record)
	return nil
}

func (repo *fakeRequestRepo) ListByPatient(patientID uint) ([]models.GuardianRequestRecord, error) {
	matched := make([]models.GuardianRequestRecord, 0)
	for _, record := range repo.records {
		if record.PatientID == patientID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (repo *fakeRequestRepo) Delete(id string) error {
	kept := repo.records[:0]
	for _, record := range repo.records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	repo.records = kept
	return nil
}

type fakeReportRepo struct {
	order   []string
	reports map[string]models.CareReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[string]models.CareReport{}}
}

func (repo *fakeReportRepo) ListByPatient(patientID uint) ([]models.CareReport, error) {
	matched := make([]models.CareReport, 0)
	for _, id := range repo.order {
		report := repo.reports[id]
		if report.PatientID == patientID {
			matched = append(matched, report)
		}
	}
	return matched, nil
}

func (repo *fakeReportRepo) ListByPatientRange(patientID uint, from *time.Time, to *time.Time) ([]models.CareReport, error) {
	matched := make([]models.CareReport, 0)
	for _, id := range repo.order {
		report := repo.reports[id]
		if report.PatientID != patientID {
			continue
		}
		if from != nil && report.Date.Before(*from) {
			continue
		}
		if to != nil && !report.Date.Before(*to) {
			continue
		}
		matched = append(matched, report)
	}
	return matched, nil
}

func (repo *fakeReportRepo) FindByID(id string) (models.CareReport, error) {
	report, ok := repo.reports[id]
	if !ok {
		return models.CareReport{}, gorm.ErrRecordNotFound
	}
	return report, nil
}

func (repo *fakeReportRepo) Upsert(report *models.CareReport) error {
	if _, exists := repo.reports[report.ID]; !exists {
		repo.order = append(repo.order, report.ID)
	}
	repo.reports[report.ID] = *report
	return nil
}

func (repo *fakeReportRepo) Delete(id string) error {
	delete(repo.reports, id)
	for index, storedID := range repo.order {
		if storedID == id {
			repo.order = append(repo.order[:index], repo.order[index+1:]...)
			break
		}
	}
	return nil
}

type fakeMessageRepo struct {
	messages []models.Message
}

func (repo *fakeMessageRepo) ListByPatient(patientID uint) ([]models.Message, error) {
	matched := make([]models.Message, 0)
	for _, message := range repo.messages {
		if message.PatientID == patientID {
			matched = append(matched, message)
		}
	}
	return matched, nil
}

func (repo *fakeMessageRepo) FindByID(id string) (models.Message, error) {
	for _, message := range repo.messages {
		if message.ID == id {
			return message, nil
		}
	}
	return models.Message{}, gorm.ErrRecordNotFound
}

func (repo *fakeMessageRepo) Create(message *models.Message) error {
	repo.messages = append(repo.messages, *message)
	return nil
}

func (repo *fakeMessageRepo) Delete(id string) error {
	kept := repo.messages[:0]
	for _, message := range repo.messages {
		if message.ID != id {
			kept = append(kept, message)
		}
	}
	repo.messages = kept
	return nil
}

type fakePhotoRepo struct {
	photos []models.Photo
}

func (repo *fakePhotoRepo) ListByPatient(patientID uint) ([]models.Photo, error) {
	matched := make([]models.Photo, 0)
	for _, photo := range repo.photos {
		if photo.PatientID == patientID {
			matched = append(matched, photo)
		}
	}
	return matched, nil
}

func (repo *fakePhotoRepo) FindByID(id string) (models.Photo, error) {
	for _, photo := range repo.photos {
		if photo.ID == id {
			return photo, nil
		}
	}
	return models.Photo{}, gorm.ErrRecordNotFound
}

func (repo *fakePhotoRepo) Create(photo *models.Photo) error {
	repo.photos = append(repo.photos, *photo)
	return nil
}

func (repo *fakePhotoRepo) Delete(id string) error {
	kept := repo.photos[:0]
	for _, photo := range repo.photos {
		if photo.ID != id {
			kept = append(kept, photo)
		}
	}
	repo.photos = kept
	return nil
}
