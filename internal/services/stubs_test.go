package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/gorm"
)

var errStubStore = errors.New("stub store failure")

type stubUserRepo struct {
	users     map[uint]models.User
	nextID    uint
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]models.User), nextID: 1}
}

func (repo *stubUserRepo) ExistsByNormalizedEmail(_ context.Context, email string) (bool, error) {
	_, err := repo.FindByNormalizedEmail(context.Background(), email)
	return err == nil, nil
}

func (repo *stubUserRepo) FindByNormalizedEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range repo.users {
		if strings.ToLower(strings.TrimSpace(user.Email)) == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *stubUserRepo) FindByOIDCSubject(_ context.Context, subject string) (models.User, error) {
	for _, user := range repo.users {
		if user.OIDCSubject != nil && *user.OIDCSubject == subject {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *stubUserRepo) FindByID(_ context.Context, userID uint) (models.User, error) {
	user, ok := repo.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (repo *stubUserRepo) Create(_ context.Context, user *models.User) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	user.ID = repo.nextID
	repo.nextID++
	repo.users[user.ID] = *user
	return nil
}

func (repo *stubUserRepo) UpdatePassword(_ context.Context, userID uint, passwordHash string, mustChangePassword bool) error {
	user := repo.users[userID]
	user.PasswordHash = passwordHash
	user.MustChangePassword = mustChangePassword
	repo.users[userID] = user
	return nil
}

func (repo *stubUserRepo) LinkOIDCSubject(_ context.Context, userID uint, subject string) error {
	user := repo.users[userID]
	user.OIDCSubject = &subject
	repo.users[userID] = user
	return nil
}

func (repo *stubUserRepo) ListWithMedicationNotifications(context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	for id := uint(1); id < repo.nextID; id++ {
		if user, ok := repo.users[id]; ok && user.NotifyMedications {
			users = append(users, user)
		}
	}
	return users, nil
}

type stubSymptomRepo struct {
	created     []models.Symptom
	createCalls int
	createErr   error
}

func (repo *stubSymptomRepo) ListByUser(_ context.Context, userID uint, _ db.ListOptions) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	for _, symptom := range repo.created {
		if symptom.UserID == userID {
			symptoms = append(symptoms, symptom)
		}
	}
	return symptoms, nil
}

func (repo *stubSymptomRepo) CreateBatch(_ context.Context, symptoms []models.Symptom) error {
	repo.createCalls++
	if repo.createErr != nil {
		return repo.createErr
	}
	for index := range symptoms {
		symptoms[index].ID = uint(len(repo.created) + 1)
		repo.created = append(repo.created, symptoms[index])
	}
	return nil
}

func (repo *stubSymptomRepo) FindByIDForUser(_ context.Context, symptomID uint, userID uint) (models.Symptom, error) {
	for _, symptom := range repo.created {
		if symptom.ID == symptomID && symptom.UserID == userID {
			return symptom, nil
		}
	}
	return models.Symptom{}, gorm.ErrRecordNotFound
}

func (repo *stubSymptomRepo) Delete(_ context.Context, symptom *models.Symptom) error {
	kept := repo.created[:0]
	for _, existing := range repo.created {
		if existing.ID != symptom.ID {
			kept = append(kept, existing)
		}
	}
	repo.created = kept
	return nil
}

type stubMedicationRepo struct {
	medications map[uint]models.Medication
	nextID      uint
}

func newStubMedicationRepo(medications ...models.Medication) *stubMedicationRepo {
	repo := &stubMedicationRepo{medications: make(map[uint]models.Medication), nextID: 1}
	for _, medication := range medications {
		_ = repo.Create(context.Background(), &medication)
	}
	return repo
}

func (repo *stubMedicationRepo) ListByUser(_ context.Context, userID uint, activeOnly bool) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	for id := uint(1); id < repo.nextID; id++ {
		medication, ok := repo.medications[id]
		if !ok || medication.UserID != userID || (activeOnly && !medication.Active) {
			continue
		}
		medications = append(medications, medication)
	}
	return medications, nil
}

func (repo *stubMedicationRepo) FindByIDForUser(_ context.Context, medicationID uint, userID uint) (models.Medication, error) {
	medication, ok := repo.medications[medicationID]
	if !ok || medication.UserID != userID {
		return models.Medication{}, gorm.ErrRecordNotFound
	}
	return medication, nil
}

func (repo *stubMedicationRepo) Create(_ context.Context, medication *models.Medication) error {
	medication.ID = repo.nextID
	repo.nextID++
	repo.medications[medication.ID] = *medication
	return nil
}

func (repo *stubMedicationRepo) Save(_ context.Context, medication *models.Medication) error {
	repo.medications[medication.ID] = *medication
	return nil
}

func (repo *stubMedicationRepo) SetActive(_ context.Context, medicationID uint, _ uint, active bool) error {
	medication := repo.medications[medicationID]
	medication.Active = active
	repo.medications[medicationID] = medication
	return nil
}

func (repo *stubMedicationRepo) Delete(_ context.Context, medication *models.Medication) error {
	delete(repo.medications, medication.ID)
	return nil
}

type stubMedicationLogRepo struct {
	logs []models.MedicationLog
}

func (repo *stubMedicationLogRepo) ListByUser(_ context.Context, userID uint, _ db.ListOptions) ([]models.MedicationLog, error) {
	logs := make([]models.MedicationLog, 0)
	for _, entry := range repo.logs {
		if entry.UserID == userID {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

func (repo *stubMedicationLogRepo) Create(_ context.Context, entry *models.MedicationLog) error {
	entry.ID = uint(len(repo.logs) + 1)
	entry.CreatedAt = time.Now()
	repo.logs = append(repo.logs, *entry)
	return nil
}

type stubNotificationRepo struct {
	notifications []models.Notification
}

func (repo *stubNotificationRepo) ListByUser(_ context.Context, userID uint, unreadOnly bool, _ int) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	for _, notification := range repo.notifications {
		if notification.UserID == userID && (!unreadOnly || !notification.Read) {
			notifications = append(notifications, notification)
		}
	}
	return notifications, nil
}

func (repo *stubNotificationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	unread, _ := repo.ListByUser(ctx, userID, true, 0)
	return int64(len(unread)), nil
}

func (repo *stubNotificationRepo) CreateIfAbsent(_ context.Context, notification *models.Notification) (bool, error) {
	if notification.DedupeKey != nil {
		for _, existing := range repo.notifications {
			if existing.UserID == notification.UserID && existing.DedupeKey != nil && *existing.DedupeKey == *notification.DedupeKey {
				return false, nil
			}
		}
	}
	notification.ID = uint(len(repo.notifications) + 1)
	repo.notifications = append(repo.notifications, *notification)
	return true, nil
}

func (repo *stubNotificationRepo) MarkRead(_ context.Context, notificationID uint, userID uint) (bool, error) {
	for index := range repo.notifications {
		if repo.notifications[index].ID == notificationID && repo.notifications[index].UserID == userID {
			repo.notifications[index].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (repo *stubNotificationRepo) MarkAllRead(_ context.Context, userID uint) (int64, error) {
	var updated int64
	for index := range repo.notifications {
		if repo.notifications[index].UserID == userID && !repo.notifications[index].Read {
			repo.notifications[index].Read = true
			updated++
		}
	}
	return updated, nil
}
