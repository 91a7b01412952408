package querier

import (
	"context"
	"strconv"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "postgres_query_duration_seconds",
		Help:    "Postgres statement duration in seconds, QueryRow includes scan",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	},
	[]string{"method", "in_tx"},
)

// Querier прозрачно выбирает транзакцию из контекста (если tx.Manager ее открыл) или пул.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	defer q.observe(ctx, "exec", time.Now())
	return q.get(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	defer q.observe(ctx, "query", time.Now())
	return q.get(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &observedRow{
		row:   q.get(ctx).QueryRow(ctx, sql, args...),
		done:  func(start time.Time) { q.observe(ctx, "query_row", start) },
		start: time.Now(),
	}
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func (q *Querier) observe(ctx context.Context, method string, start time.Time) {
	_, onPool := q.get(ctx).(*pgxpool.Pool)
	inTx := !onPool
	QueryDuration.WithLabelValues(method, strconv.FormatBool(inTx)).Observe(time.Since(start).Seconds())
}

// observedRow QueryRow откладывает запрос до Scan, поэтому время снимаем там.
type observedRow struct {
	row   pgx.Row
	done  func(start time.Time)
	start time.Time
}

func (r *observedRow) Scan(dest ...any) error {
	defer r.done(r.start)
	return r.row.Scan(dest...)
}
