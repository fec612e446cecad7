package database

import (
	"database/sql"

	"github.com/ansh7432/MoodScope-Backend/config"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// ProvideDatabase provides a postgres client. A missing DATABASE_URL is
// not fatal: the service still analyzes playlists, it just keeps no
// history.
func ProvideDatabase(logger *zap.SugaredLogger, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("no database URL configured, analysis history disabled")
		return nil, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection", zap.Error(err))
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		logger.Error("Failed to ping database", zap.Error(err))
		return nil, err
	}

	return db, nil
}

var Options = ProvideDatabase
