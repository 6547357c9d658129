package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateSnapshot is one computed rates record for an asset, persisted every
// time a reserve snapshot is ingested. All rate fields are percentages in
// human units; Utilization is a fraction in [0, 1].
type RateSnapshot struct {
	ID          uuid.UUID
	AssetID     string
	Utilization decimal.Decimal
	SupplyAPR   decimal.Decimal
	SupplyAPY   decimal.Decimal
	BorrowAPR   decimal.Decimal
	BorrowAPY   decimal.Decimal
	CreatedAt   time.Time
}
