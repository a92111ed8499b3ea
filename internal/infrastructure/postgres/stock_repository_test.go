package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingQuerier guarda el SQL recibido y responde con valores fijos.
type recordingQuerier struct {
	statements []string
	insertTag  string
	row        []any
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.statements = append(q.statements, sql)
	return pgconn.NewCommandTag(q.insertTag), nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.statements = append(q.statements, sql)
	return nil, errors.New("no usado")
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.statements = append(q.statements, sql)
	return fixedRow(q.row)
}

type fixedRow []any

func (r fixedRow) Scan(dest ...any) error {
	if len(dest) != len(r) {
		return errors.New("cantidad de columnas distinta")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r[i].(string)
		case *decimal.Decimal:
			*p = r[i].(decimal.Decimal)
		case *time.Time:
			*p = r[i].(time.Time)
		default:
			return errors.New("tipo de destino no soportado")
		}
	}
	return nil
}

func stockRow(current string, updated time.Time) []any {
	return []any{"t1", "p1", "b1", decimal.RequireFromString(current), decimal.Zero, decimal.RequireFromString("5"), updated}
}

func TestStockRepo_GetForUpdateCreaLaFilaAntesDeBloquear(t *testing.T) {
	q := &recordingQuerier{insertTag: "INSERT 0 1", row: stockRow("0", time.Now())}
	repo := NewStockRepository(q)

	level, err := repo.GetForUpdate(context.Background(), "t1", "p1", "b1")
	require.NoError(t, err)
	require.Len(t, q.statements, 2)
	assert.Contains(t, q.statements[0], "INSERT INTO stock_levels")
	assert.Contains(t, q.statements[0], "ON CONFLICT (tenant_id, product_id, branch_id) DO NOTHING")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(q.statements[1]), "FOR UPDATE"))

	assert.True(t, level.CurrentStock.IsZero())
	assert.True(t, level.UpdatedAt.IsZero(), "la fila recién creada se marca como nueva")
}

func TestStockRepo_GetForUpdateFilaExistente(t *testing.T) {
	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	q := &recordingQuerier{insertTag: "INSERT 0 0", row: stockRow("12", updated)}
	repo := NewStockRepository(q)

	level, err := repo.GetForUpdate(context.Background(), "t1", "p1", "b1")
	require.NoError(t, err)
	assert.True(t, level.CurrentStock.Equal(decimal.RequireFromString("12")))
	assert.True(t, level.MinStockLevel.Equal(decimal.RequireFromString("5")))
	assert.Equal(t, updated, level.UpdatedAt)
}
