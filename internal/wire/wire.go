// Package wire provides dependency injection for the phishtrack
// application. It creates singleton services with lazy initialization.
package wire

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/example/phishtrack/internal/adapters/filesystem"
	"github.com/example/phishtrack/internal/adapters/sqlite"
	"github.com/example/phishtrack/internal/app"
	"github.com/example/phishtrack/internal/catalog"
	"github.com/example/phishtrack/internal/config"
	"github.com/example/phishtrack/internal/db"
	"github.com/example/phishtrack/internal/ports/primary"
)

var (
	cfg               *config.Config
	templates         *catalog.Catalog
	campaignService   primary.CampaignService
	enrollmentService primary.EnrollmentService
	mailoutService    primary.MailoutService
	trackingService   primary.TrackingService
	statsService      primary.StatsService

	cfgOnce sync.Once
	once    sync.Once
)

// Config returns the resolved configuration. Loading the configuration
// does not open the database.
func Config() *config.Config {
	cfgOnce.Do(initConfig)
	return cfg
}

// Catalog returns the built-in template catalog.
func Catalog() *catalog.Catalog {
	once.Do(initServices)
	return templates
}

// CampaignService returns the singleton CampaignService instance.
func CampaignService() primary.CampaignService {
	once.Do(initServices)
	return campaignService
}

// EnrollmentService returns the singleton EnrollmentService instance.
func EnrollmentService() primary.EnrollmentService {
	once.Do(initServices)
	return enrollmentService
}

// MailoutService returns the singleton MailoutService instance.
func MailoutService() primary.MailoutService {
	once.Do(initServices)
	return mailoutService
}

// TrackingService returns the singleton TrackingService instance.
func TrackingService() primary.TrackingService {
	once.Do(initServices)
	return trackingService
}

// StatsService returns the singleton StatsService instance.
func StatsService() primary.StatsService {
	once.Do(initServices)
	return statsService
}

func initConfig() {
	loaded, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	cfg = loaded

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfgOnce.Do(initConfig)

	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	// Secondary adapters
	campaignRepo := sqlite.NewCampaignRepository(database)
	employeeRepo := sqlite.NewEmployeeRepository(database)
	resultRepo := sqlite.NewResultRepository(database)
	enrollmentStore := sqlite.NewEnrollmentStore(database)
	mailbox := filesystem.NewMailbox()

	templates = catalog.Builtin()

	// Services (primary ports implementation)
	campaignService = app.NewCampaignService(campaignRepo, templates)
	enrollmentService = app.NewEnrollmentService(campaignRepo, enrollmentStore)
	mailoutService = app.NewMailoutService(campaignRepo, resultRepo, mailbox, templates, cfg.TrackingHost)
	trackingService = app.NewTrackingService(employeeRepo, resultRepo)
	statsService = app.NewStatsService(resultRepo)
}
