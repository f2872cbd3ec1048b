package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lagtech/expertos-api/internal/database"
)

// MaintenanceJob keeps the sqlite store healthy: it forces a WAL checkpoint
// so the log file cannot grow unbounded, and runs an integrity check.
type MaintenanceJob struct {
	db  *database.DB
	log zerolog.Logger
}

// NewMaintenanceJob creates a new database maintenance job
func NewMaintenanceJob(db *database.DB, log zerolog.Logger) *MaintenanceJob {
	return &MaintenanceJob{
		db:  db,
		log: log.With().Str("job", "db_maintenance").Logger(),
	}
}

// Name returns the job name
func (j *MaintenanceJob) Name() string {
	return "db_maintenance"
}

// Run executes the maintenance job
func (j *MaintenanceJob) Run() error {
	if err := j.db.WALCheckpoint("TRUNCATE"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := j.db.HealthCheck(ctx); err != nil {
		return err
	}

	j.log.Info().Msg("Database maintenance completed")
	return nil
}
