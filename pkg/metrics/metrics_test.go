package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("catalog"))
	beforeProcessed := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("catalog"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("catalog"))

	metrics.KafkaMessagesConsumed.WithLabelValues("catalog").Inc()
	metrics.KafkaMessagesProcessed.WithLabelValues("catalog").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("catalog").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("catalog")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("catalog")); got != beforeProcessed+1 {
		t.Fatalf("KafkaMessagesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("catalog")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("metrics_test", "hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("metrics_test", "miss"))

	metrics.CacheOps.WithLabelValues("metrics_test", "hit").Inc()
	metrics.CacheOps.WithLabelValues("metrics_test", "hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("metrics_test", "hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("metrics_test", "miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestCacheItems_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	g := metrics.CacheItems.WithLabelValues("metrics_test")
	cur := testutil.ToFloat64(g)

	g.Set(cur + 5)
	if got := testutil.ToFloat64(g); got != cur+5 {
		t.Fatalf("CacheItems after +5: got=%v want=%v", got, cur+5)
	}

	g.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(g); got != cur {
		t.Fatalf("CacheItems restore: got=%v want=%v", got, cur)
	}
}

func TestRemoteDuration_Observe(t *testing.T) {
	metrics.MustRegister()

	before := testutil.CollectAndCount(metrics.RemoteDuration)
	metrics.RemoteDuration.WithLabelValues("metrics_test", "query").Observe(0.01)
	if got := testutil.CollectAndCount(metrics.RemoteDuration); got < before {
		t.Fatalf("RemoteDuration series: got=%d want>=%d", got, before)
	}
}
