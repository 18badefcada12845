// Package app arma las dependencias compartidas por los binarios a partir
// de la config.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"shelter-dogs/internal/adapters/auth/idp"
	blobmem "shelter-dogs/internal/adapters/blob/memory"
	blobs3 "shelter-dogs/internal/adapters/blob/s3"
	pg "shelter-dogs/internal/adapters/storage/postgres"
	"shelter-dogs/internal/platform/config"
	"shelter-dogs/internal/platform/logger"
	"shelter-dogs/internal/ports/auth"
	"shelter-dogs/internal/ports/blob"
)

func NewLogger(c config.LogConfig) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(c.Level),
		Format: logger.ParseFormat(c.Format),
		App:    c.App,
	})
}

// OpenDB devuelve nil si no hay DSN (storage en memoria).
func OpenDB(c config.Config, log logger.Logger) (*sql.DB, error) {
	if c.DBDSN == "" {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
		return nil, nil
	}
	db, err := pg.Open(c.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if c.AutoMigrate {
		n, err := pg.Migrate(db, false)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info("migrations applied", map[string]any{"count": n})
	}
	return db, nil
}

func NewBlobStore(ctx context.Context, c config.BlobConfig) (blob.Store, error) {
	if c.Driver != config.BlobS3 {
		return blobmem.NewStore(c.PublicBaseURL), nil
	}
	return blobs3.New(ctx, blobs3.Config{
		Bucket:          c.Bucket,
		Region:          c.Region,
		Endpoint:        c.Endpoint,
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		PathStyle:       c.PathStyle,
		PublicBaseURL:   c.PublicBaseURL,
	})
}

// NewAuthVerifier: nil sin BaseURL (modo dev con X-Debug-User-ID).
func NewAuthVerifier(c config.AuthConfig) (auth.AuthVerifier, error) {
	if c.BaseURL == "" {
		return nil, nil
	}
	client, err := idp.NewClient(idp.Config{
		BaseURL:      c.BaseURL,
		APIKey:       c.APIKey,
		APIKeyHeader: c.APIKeyHeader,
	})
	if err != nil {
		return nil, err
	}
	return idp.NewVerifier(client), nil
}
