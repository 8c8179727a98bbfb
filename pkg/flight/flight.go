// Пакет flight — защита от дублирующих загрузок: на один ключ в каждый момент
// идёт не больше одного запроса, остальные вызывающие ждут его результата.
package flight

import (
	"context"

	"github.com/Gunvolt24/storefront/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

// Result — итог ожидания загрузки.
type Result[T any] struct {
	Val    T
	Shared bool // вызывающий присоединился к чужой загрузке
}

// Group — single-flight над загрузками значения T.
type Group[T any] struct {
	name string
	sf   singleflight.Group
}

// New — группа с именем для метрик (обычно имя кэша).
func New[T any](name string) *Group[T] {
	return &Group[T]{name: name}
}

// Do — запустить fetch по ключу или дождаться уже идущего.
//
// Загрузка выполняется на контексте без отмены: вызывающий, который перестал
// ждать, не прерывает её для остальных. Если ctx вызывающего завершился раньше,
// возвращается ctx.Err(), а загрузка продолжается.
func (g *Group[T]) Do(ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (Result[T], error) {
	var leader bool
	flightCtx := context.WithoutCancel(ctx)

	ch := g.sf.DoChan(key, func() (any, error) {
		leader = true
		return fetch(flightCtx)
	})

	select {
	case res := <-ch:
		// leader пишется до отправки результата в канал — чтение безопасно.
		shared := !leader
		if shared {
			metrics.FlightShared.WithLabelValues(g.name).Inc()
		}
		if res.Err != nil {
			return Result[T]{Shared: shared}, res.Err
		}
		val, _ := res.Val.(T)
		return Result[T]{Val: val, Shared: shared}, nil
	case <-ctx.Done():
		return Result[T]{}, ctx.Err()
	}
}

// Forget — следующий Do по ключу начнёт новую загрузку, не дожидаясь текущей.
func (g *Group[T]) Forget(key string) {
	g.sf.Forget(key)
}
