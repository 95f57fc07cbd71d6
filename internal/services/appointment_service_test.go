package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/models"
)

func openRepositoriesForTest(t *testing.T) (*db.Repositories, models.User) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "endotrack-services.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	user := models.User{Email: "paciente@endo.local", PasswordHash: "hash"}
	if err := repos.Users.Create(context.Background(), &user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return repos, user
}

func firstProfessional(t *testing.T, repos *db.Repositories, specialty string) models.Professional {
	t.Helper()

	professionals, err := repos.Professionals.List(context.Background(), specialty, "")
	if err != nil || len(professionals) == 0 {
		t.Fatalf("load %s: %v", specialty, err)
	}
	return professionals[0]
}

func TestAppointmentServiceBookValidatesSlot(t *testing.T) {
	repos, user := openRepositoriesForTest(t)
	service := NewAppointmentService(repos.Appointments, repos.Professionals, time.UTC)
	professional := firstProfessional(t, repos, "Ginecologista")
	now := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   AppointmentInput
		wantErr error
	}{
		{name: "missing time", input: AppointmentInput{ProfessionalID: professional.ID, Date: "2024-02-20"}, wantErr: ErrAppointmentDateTimeRequired},
		{name: "missing date", input: AppointmentInput{ProfessionalID: professional.ID, Time: "09:00"}, wantErr: ErrAppointmentDateTimeRequired},
		{name: "not a slot", input: AppointmentInput{ProfessionalID: professional.ID, Date: "2024-02-20", Time: "12:00"}, wantErr: ErrAppointmentSlotUnavailable},
		{name: "past date", input: AppointmentInput{ProfessionalID: professional.ID, Date: "2024-02-14", Time: "09:00"}, wantErr: ErrAppointmentDateInPast},
		{name: "unknown professional", input: AppointmentInput{ProfessionalID: 9999, Date: "2024-02-20", Time: "09:00"}, wantErr: ErrProfessionalNotFound},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.Book(context.Background(), user.ID, testCase.input, now); !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}

	overview, err := service.Overview(context.Background(), user.ID, now)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.Upcoming)+len(overview.Past) != 0 {
		t.Fatalf("expected no appointments after rejected bookings, got %#v", overview)
	}
}

func TestAppointmentServiceLifecycle(t *testing.T) {
	repos, user := openRepositoriesForTest(t)
	service := NewAppointmentService(repos.Appointments, repos.Professionals, time.UTC)
	professional := firstProfessional(t, repos, "Fisioterapeuta")
	now := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	booked, err := service.Book(ctx, user.ID, AppointmentInput{ProfessionalID: professional.ID, Date: "2024-02-20", Time: "09:30", Notes: "primeira consulta"}, now)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if booked.Status != models.AppointmentConfirmed || booked.Professional.Name != professional.Name {
		t.Fatalf("unexpected booked appointment: %#v", booked)
	}

	rescheduled, err := service.Reschedule(ctx, user.ID, booked.ID, "2024-02-22", "14:00", now)
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if rescheduled.Status != models.AppointmentScheduled || rescheduled.Time != "14:00" || rescheduled.Date.Format(dayLayout) != "2024-02-22" {
		t.Fatalf("unexpected rescheduled appointment: %#v", rescheduled)
	}

	second, err := service.Book(ctx, user.ID, AppointmentInput{ProfessionalID: professional.ID, Date: "2024-02-16", Time: "08:00"}, now)
	if err != nil {
		t.Fatalf("book second: %v", err)
	}
	if _, err := service.Complete(ctx, user.ID, second.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := service.Cancel(ctx, user.ID, second.ID); !errors.Is(err, ErrAppointmentClosed) {
		t.Fatalf("expected ErrAppointmentClosed, got %v", err)
	}

	overview, err := service.Overview(ctx, user.ID, now)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.Upcoming) != 1 || overview.Upcoming[0].ID != booked.ID {
		t.Fatalf("expected rescheduled appointment upcoming, got %#v", overview.Upcoming)
	}
	if len(overview.Past) != 1 || overview.Past[0].Status != models.AppointmentCompleted {
		t.Fatalf("expected completed appointment in past, got %#v", overview.Past)
	}

	if _, err := service.Cancel(ctx, user.ID+1, booked.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound for another user, got %v", err)
	}
}
