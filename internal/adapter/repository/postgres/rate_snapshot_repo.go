package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/soroyield/soroyield-backend/internal/domain"
)

// rateSnapshotRepository implements domain.RateSnapshotRepository
type rateSnapshotRepository struct {
	db *DB
}

// NewRateSnapshotRepository creates a new rate snapshot repository
func NewRateSnapshotRepository(db *DB) domain.RateSnapshotRepository {
	return &rateSnapshotRepository{db: db}
}

// Add stores a new rate snapshot
func (r *rateSnapshotRepository) Add(ctx context.Context, snapshot *domain.RateSnapshot) error {
	query := `
		INSERT INTO rate_snapshots (id, asset_id, utilization, supply_apr, supply_apy, borrow_apr, borrow_apy, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		snapshot.ID,
		snapshot.AssetID,
		snapshot.Utilization.String(),
		snapshot.SupplyAPR.String(),
		snapshot.SupplyAPY.String(),
		snapshot.BorrowAPR.String(),
		snapshot.BorrowAPY.String(),
		snapshot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rate snapshot: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recent snapshot for a given asset
func (r *rateSnapshotRepository) GetLatest(ctx context.Context, assetID string) (*domain.RateSnapshot, error) {
	query := `
		SELECT id, asset_id, utilization, supply_apr, supply_apy, borrow_apr, borrow_apy, created_at
		FROM rate_snapshots
		WHERE asset_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	snapshot, err := scanSnapshot(r.db.QueryRowContext(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no rate snapshots found for asset %s: %w", assetID, err)
		}
		return nil, fmt.Errorf("failed to get latest rate snapshot: %w", err)
	}

	return snapshot, nil
}

// ListLatest retrieves the most recent snapshot of every known asset
func (r *rateSnapshotRepository) ListLatest(ctx context.Context) ([]*domain.RateSnapshot, error) {
	query := `
		SELECT DISTINCT ON (asset_id) id, asset_id, utilization, supply_apr, supply_apy, borrow_apr, borrow_apy, created_at
		FROM rate_snapshots
		ORDER BY asset_id, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.RateSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rate snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rate snapshots: %w", err)
	}

	return snapshots, nil
}

// scanner covers both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanSnapshot reads one rate_snapshots row, parsing the DECIMAL columns
func scanSnapshot(row scanner) (*domain.RateSnapshot, error) {
	var snapshot domain.RateSnapshot
	var utilizationStr, supplyAPRStr, supplyAPYStr, borrowAPRStr, borrowAPYStr string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.AssetID,
		&utilizationStr,
		&supplyAPRStr,
		&supplyAPYStr,
		&borrowAPRStr,
		&borrowAPYStr,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"utilization", utilizationStr, &snapshot.Utilization},
		{"supply_apr", supplyAPRStr, &snapshot.SupplyAPR},
		{"supply_apy", supplyAPYStr, &snapshot.SupplyAPY},
		{"borrow_apr", borrowAPRStr, &snapshot.BorrowAPR},
		{"borrow_apy", borrowAPYStr, &snapshot.BorrowAPY},
	}
	for _, f := range fields {
		value, err := decimal.NewFromString(f.raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.name, err)
		}
		*f.dst = value
	}

	return &snapshot, nil
}
