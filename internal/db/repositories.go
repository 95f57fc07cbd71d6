package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Symptoms       *SymptomRepository
	Cycles         *CycleRepository
	Medications    *MedicationRepository
	MedicationLogs *MedicationLogRepository
	Appointments   *AppointmentRepository
	Professionals  *ProfessionalRepository
	Notifications  *NotificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Symptoms:       NewSymptomRepository(database),
		Cycles:         NewCycleRepository(database),
		Medications:    NewMedicationRepository(database),
		MedicationLogs: NewMedicationLogRepository(database),
		Appointments:   NewAppointmentRepository(database),
		Professionals:  NewProfessionalRepository(database),
		Notifications:  NewNotificationRepository(database),
	}
}
