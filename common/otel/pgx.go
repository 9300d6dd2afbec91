package otel

import (
	"context"
	"strings"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PgxCustomTracer opens one client span per query.
type PgxCustomTracer struct{}

func (p PgxCustomTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx, span := Tracer.Start(ctx, querySpanName(data.SQL), trace.WithSpanKind(trace.SpanKindClient))

	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.statement", data.SQL),
		attribute.Int("db.args.count", len(data.Args)),
	)
	if conn != nil {
		span.SetAttributes(attribute.String("db.name", conn.Config().Database))
	}

	return ctx
}

// TraceQueryEnd closes the span opened by TraceQueryStart.
func (p PgxCustomTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	if data.Err != nil {
		span.SetStatus(codes.Error, data.Err.Error())
		span.RecordError(data.Err)
	} else {
		span.SetStatus(codes.Ok, "")
		span.SetAttributes(
			attribute.Int64("db.rows_affected", data.CommandTag.RowsAffected()),
		)
	}
}

// querySpanName names a span after the sqlc query annotation when present,
// e.g. "-- name: InsertBooking :one" becomes "pgx.InsertBooking".
func querySpanName(sql string) string {
	const marker = "-- name: "
	if !strings.HasPrefix(sql, marker) {
		return "pgx.query"
	}

	fields := strings.Fields(strings.TrimPrefix(sql, marker))
	if len(fields) == 0 {
		return "pgx.query"
	}

	return "pgx." + fields[0]
}
