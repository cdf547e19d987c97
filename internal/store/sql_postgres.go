package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	// register the "pgx" database/sql driver
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shubhamkr/streamtube-backend/internal/config"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// pingAttempts bounds the startup ping loop. Only errors classified as
// retryable (connection loss, deadlock, server starting up) trigger another
// attempt.
const pingAttempts = 3

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database, retrying transient failures
	for attempt := 1; ; attempt++ {
		err = conn.PingContext(ctx)
		if err == nil {
			break
		}
		if attempt == pingAttempts || classifier.Classify(err) != Retryable {
			log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
			return nil, err
		}
		log.Warn().Err(err).Int("attempt", attempt).Str("func", "NewConnectPostgres").Msg("database ping failed, retrying")
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
