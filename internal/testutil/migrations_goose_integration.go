//go:build integration

package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/repo/postgres"
)

// ApplyMigrationsGoose — применяет встроенные миграции (migrations/*.sql) к базе контейнера.
func ApplyMigrationsGoose(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.Migrate(ctx, dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
