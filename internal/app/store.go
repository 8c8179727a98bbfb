package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/repo/bolt"
	"github.com/Gunvolt24/storefront/internal/repo/firestore"
	"github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/Gunvolt24/storefront/internal/session"
)

// OpenStore — RemoteStore выбранного бэкенда и функция его закрытия.
// Для postgres перед открытием пула накатываются миграции.
func OpenStore(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.RemoteStore, func(), error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Store.Backend))

	switch backend {
	case config.BackendFirestore:
		client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		log.Infof(ctx, "remote store: firestore project=%s", cfg.Firestore.ProjectID)
		return firestore.NewStore(client), func() {
			if err := client.Close(); err != nil {
				log.Warnf(ctx, "firestore client close: %v", err)
			}
		}, nil

	case config.BackendPostgres:
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, nil, err
		}
		log.Infof(ctx, "remote store: postgres max_conns=%d", cfg.Postgres.MaxConns)
		return postgres.NewDocumentStore(pool), pool.Close, nil

	case config.BackendBolt:
		store, err := bolt.Open(cfg.Bolt.File, log)
		if err != nil {
			return nil, nil, err
		}
		log.Infof(ctx, "remote store: bolt file=%s", cfg.Bolt.File)
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warnf(ctx, "bolt close: %v", err)
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// newVerifier — Firebase при включённой авторизации, иначе токен считается uid.
func newVerifier(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.TokenVerifier, error) {
	if !cfg.Auth.Enabled {
		log.Warnf(ctx, "auth disabled: sign-in token is used as user id")
		return session.StaticVerifier{}, nil
	}
	return session.NewFirebaseVerifier(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
}
