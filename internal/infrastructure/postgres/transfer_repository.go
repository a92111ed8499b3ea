package postgres

import (
	"context"
	"fmt"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.StockTransferRepository = (*TransferRepo)(nil)

// TransferRepo traslados entre sucursales sobre PostgreSQL.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create registra el traslado.
func (r *TransferRepo) Create(ctx context.Context, t *entity.StockTransfer) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_transfers (id, tenant_id, transfer_number, product_id, from_branch_id, to_branch_id,
			quantity, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.TenantID, t.TransferNumber, t.ProductID, t.FromBranchID, t.ToBranchID,
		t.Quantity, t.Notes, t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transfer: %w", err)
	}
	return nil
}

// List traslados donde branchID es origen o destino (vacío = todos), más recientes primero.
func (r *TransferRepo) List(ctx context.Context, tenantID, branchID string, limit, offset int) ([]*entity.StockTransfer, error) {
	const query = `
		SELECT t.id, t.tenant_id, t.transfer_number, t.product_id, t.from_branch_id, t.to_branch_id,
		       t.quantity, t.notes, t.created_by, t.created_at,
		       COALESCE(p.name, ''), COALESCE(bf.name, ''), COALESCE(bt.name, '')
		FROM stock_transfers t
		LEFT JOIN products p  ON p.id  = t.product_id
		LEFT JOIN branches bf ON bf.id = t.from_branch_id
		LEFT JOIN branches bt ON bt.id = t.to_branch_id
		WHERE t.tenant_id = $1
		  AND ($2::TEXT = '' OR t.from_branch_id::TEXT = $2 OR t.to_branch_id::TEXT = $2)
		ORDER BY t.created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, tenantID, branchID, limitArg(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transfers: %w", err)
	}
	defer rows.Close()
	var out []*entity.StockTransfer
	for rows.Next() {
		var t entity.StockTransfer
		if err := rows.Scan(&t.ID, &t.TenantID, &t.TransferNumber, &t.ProductID, &t.FromBranchID, &t.ToBranchID,
			&t.Quantity, &t.Notes, &t.CreatedBy, &t.CreatedAt,
			&t.ProductName, &t.FromBranchName, &t.ToBranchName); err != nil {
			return nil, fmt.Errorf("scan stock transfer: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
