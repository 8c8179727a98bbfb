// Пакет scheduler — периодические фоновые задачи на robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Gunvolt24/storefront/internal/ports"
)

// cronParser — стандартные поля, опциональные секунды и дескрипторы (@every, @hourly, ...).
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// refresher — принудительное обновление каталога.
type refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// CatalogRefresher — периодическое принудительное обновление кэша товаров.
type CatalogRefresher struct {
	spec    string
	target  refresher
	log     ports.Logger
	timeout time.Duration
	sched   *cron.Cron
}

// NewCatalogRefresher — проверяет расписание; пустой spec отключает задачу.
// timeout ограничивает один запуск (0 — без ограничения).
func NewCatalogRefresher(spec string, target refresher, log ports.Logger, timeout time.Duration) (*CatalogRefresher, error) {
	spec = strings.TrimSpace(spec)
	r := &CatalogRefresher{spec: spec, target: target, log: log, timeout: timeout}
	if spec == "" {
		return r, nil
	}
	if _, err := cronParser.Parse(spec); err != nil {
		return nil, fmt.Errorf("catalog refresh spec %q: %w", spec, err)
	}
	r.sched = cron.New(cron.WithParser(cronParser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	return r, nil
}

// Enabled — задано ли расписание.
func (r *CatalogRefresher) Enabled() bool { return r.sched != nil }

// Run — запускает планировщик и блокируется до отмены контекста;
// при остановке дожидается текущего запуска.
func (r *CatalogRefresher) Run(ctx context.Context) error {
	if r.sched == nil {
		r.log.Infof(ctx, "catalog refresher disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	if _, err := r.sched.AddFunc(r.spec, func() { r.runOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule catalog refresh: %w", err)
	}
	r.sched.Start()
	r.log.Infof(ctx, "catalog refresher started spec=%q", r.spec)

	<-ctx.Done()
	<-r.sched.Stop().Done()
	return ctx.Err()
}

func (r *CatalogRefresher) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	start := time.Now()
	n, err := r.target.Refresh(ctx)
	if err != nil {
		r.log.Errorf(ctx, "scheduled catalog refresh failed after %s: %v", time.Since(start), err)
		return
	}
	r.log.Infof(ctx, "scheduled catalog refresh products=%d took=%s", n, time.Since(start))
}
