//go:build integration

package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/domain"
	ikafka "github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/Gunvolt24/storefront/internal/ports"
	pgrepo "github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/Gunvolt24/storefront/internal/session"
	"github.com/Gunvolt24/storefront/internal/testutil"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/logger"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

const reloaded = `{"type":"catalog.reloaded"}`

// 1) Событие каталога принудительно обновляет кэш товаров
func TestKafka_Event_RefreshesCatalog_TC(t *testing.T) {
	st := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(st.kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(st.ctx, st.kf.Brokers[0], topic))

	sfx := testutil.UniqSuffix()
	seed := testutil.MakeProductDoc("p1-"+sfx, "Shoes")
	require.NoError(t, st.store.Put(st.ctx, domain.CollectionProducts, seed.ID, seed))
	require.Len(t, st.products.GetProducts(st.ctx, false), 1)

	// новый товар в хранилище — зеркало о нём не знает
	added := testutil.MakeProductDoc("p2-"+sfx, "Shoes")
	require.NoError(t, st.store.Put(st.ctx, domain.CollectionProducts, added.ID, added))
	require.Len(t, st.products.GetProducts(st.ctx, false), 1)

	st.runConsumer(t, topic, group, st.events)
	require.NoError(t, testutil.PublishCatalogEvent(st.ctx, st.kf.Brokers, topic,
		validate.CatalogEvent{Type: validate.EventProductUpdated, ProductID: added.ID}))

	waitProducts(t, st, 2)
}

// 2) Мусор пропускается (коммит), следующее валидное событие обрабатывается
func TestKafka_Skip_InvalidEvent_Then_Refresh_TC(t *testing.T) {
	st := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(st.kf.BaseTopic + "-invalid-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(st.ctx, st.kf.Brokers[0], topic))

	sfx := testutil.UniqSuffix()
	require.Len(t, st.products.GetProducts(st.ctx, false), 0)
	doc := testutil.MakeProductDoc("p-"+sfx, "Hats")
	require.NoError(t, st.store.Put(st.ctx, domain.CollectionProducts, doc.ID, doc))

	st.runConsumer(t, topic, group, st.events)

	require.NoError(t, testutil.PublishRaw(st.ctx, st.kf.Brokers, topic,
		[]byte("not-a-json"),
		[]byte(`{"type":"product.deleted"}`),
		[]byte(reloaded),
	))

	waitProducts(t, st, 1)
}

// 3) At-least-once: без коммита событие передоставляется после перезапуска
func TestKafka_Redelivery_AfterRestart_NoCommit_TC(t *testing.T) {
	st := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(st.kf.BaseTopic + "-redelivery-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(st.ctx, st.kf.Brokers[0], topic))

	require.Len(t, st.products.GetProducts(st.ctx, false), 0)
	doc := testutil.MakeProductDoc("p-"+testutil.UniqSuffix(), "Bags")
	require.NoError(t, st.store.Put(st.ctx, domain.CollectionProducts, doc.ID, doc))

	require.NoError(t, testutil.PublishRaw(st.ctx, st.kf.Brokers, topic, []byte(reloaded)))

	// Фаза 1: обработчик всегда падает временной ошибкой => оффсет НЕ коммитится
	failing := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        st.kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 300 * time.Millisecond,
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       300 * time.Millisecond,
	}, alwaysTempFailHandler{}, st.log)

	runCtx1, cancelRun1 := context.WithCancel(st.ctx)
	go func() { _ = failing.Run(runCtx1) }()
	time.Sleep(2 * time.Second)
	cancelRun1()
	_ = failing.Close()

	require.Len(t, st.products.GetProducts(st.ctx, false), 0)

	// Фаза 2: та же группа с рабочим обработчиком перехватывает некоммиченное
	st.runConsumer(t, topic, group, st.events)
	waitProducts(t, st, 1)
}

// -----------------функции-помощники-----------------

type stack struct {
	ctx      context.Context
	kf       *testutil.KafkaEnv
	log      ports.Logger
	store    *pgrepo.DocumentStore
	products *cachemem.ProductCache
	events   *usecase.CatalogEvents
}

func newStack(t *testing.T) *stack {
	t.Helper()

	// Длинный контекст — на контейнеры
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "catalog-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// Короткий контекст — сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	store := pgrepo.NewDocumentStore(pg.Pool)
	products := cachemem.NewProductCache(store, logg)
	wishlist := cachemem.NewWishlistCache(store, session.New(), products, logg)

	return &stack{
		ctx:      ctx,
		kf:       kf,
		log:      logg,
		store:    store,
		products: products,
		events:   usecase.NewCatalogEvents(products, wishlist, logg),
	}
}

type catalogHandler interface {
	HandleCatalogEvent(ctx context.Context, raw []byte) error
}

func (s *stack) runConsumer(t *testing.T, topic, group string, h catalogHandler) {
	t.Helper()
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        s.kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, h, s.log)

	runCtx, cancelRun := context.WithCancel(s.ctx)
	t.Cleanup(func() {
		cancelRun()
		_ = consumer.Close()
	})
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе/получить assignment
	time.Sleep(1500 * time.Millisecond)
}

func waitProducts(t *testing.T, s *stack, want int) {
	t.Helper()
	deadline := time.Now().Add(20 * time.Second)
	for {
		if got := len(s.products.GetProducts(s.ctx, false)); got == want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("catalog mirror did not reach %d products in time", want)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// временная "сетеподобная" ошибка
type tempNetErr struct{}

func (tempNetErr) Error() string   { return "temporary failure" }
func (tempNetErr) Temporary() bool { return true }
func (tempNetErr) Timeout() bool   { return true } // как у net.Error

type alwaysTempFailHandler struct{}

func (alwaysTempFailHandler) HandleCatalogEvent(context.Context, []byte) error {
	return tempNetErr{}
}

