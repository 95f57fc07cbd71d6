package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Config struct {
	SecretKey    string
	Location     *time.Location
	CookieSecure bool
	// OIDC is nil when single sign-on is not configured.
	OIDC *OIDCProvider
}

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	oidc         *OIDCProvider
	cookieCodec  *secureCookieCodec
	loginLimiter *attemptLimiter

	repositories  *db.Repositories
	auth          *services.AuthService
	profiles      *services.ProfileService
	symptoms      *services.SymptomService
	cycles        *services.CycleService
	medications   *services.MedicationService
	appointments  *services.AppointmentService
	professionals *services.ProfessionalService
	notifications *services.NotificationService
	articles      *services.ArticleService
	activity      *services.ActivityService
	dashboard     *services.DashboardService
	reports       *services.ReportService
	exports       *services.ExportService
}

func NewHandler(database *gorm.DB, config Config) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if len(config.SecretKey) == 0 {
		return nil, errors.New("secret key is required")
	}
	location := config.Location
	if location == nil {
		location = time.Local
	}

	codec, err := newSecureCookieCodec([]byte(config.SecretKey))
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		secretKey:    []byte(config.SecretKey),
		location:     location,
		cookieSecure: config.CookieSecure,
		oidc:         config.OIDC,
		cookieCodec:  codec,
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	repos := db.NewRepositories(database)
	location := handler.location

	handler.repositories = repos
	handler.auth = services.NewAuthService(repos.Users)
	handler.profiles = services.NewProfileService(repos.Users)
	handler.symptoms = services.NewSymptomService(repos.Symptoms, location)
	handler.cycles = services.NewCycleService(repos.Cycles, location)
	handler.medications = services.NewMedicationService(repos.Medications, repos.MedicationLogs, location)
	handler.appointments = services.NewAppointmentService(repos.Appointments, repos.Professionals, location)
	handler.professionals = services.NewProfessionalService(repos.Professionals)
	handler.notifications = services.NewNotificationService(repos.Notifications)
	handler.articles = services.NewArticleService()
	handler.activity = services.NewActivityService(services.ActivitySources{
		Symptoms:     repos.Symptoms,
		Cycles:       repos.Cycles,
		Logs:         repos.MedicationLogs,
		Appointments: repos.Appointments,
	}, location)
	handler.dashboard = services.NewDashboardService(handler.cycles, handler.symptoms, handler.medications, handler.activity, handler.notifications, location)
	handler.reports = services.NewReportService(handler.activity, repos.Medications, location)
	handler.exports = services.NewExportService(location)
	return handler
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
