package persistence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	appsettlement "github.com/shopledger/backend/internal/application/settlement"
	"github.com/shopledger/backend/internal/domain/settlement"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSettlementScope runs a settlement inside one database transaction.
// The owner's debt rows stay locked until the transaction ends.
type GormSettlementScope struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormSettlementScope creates a new GormSettlementScope
func NewGormSettlementScope(db *gorm.DB) *GormSettlementScope {
	return &GormSettlementScope{db: db, now: time.Now}
}

// Execute opens a transaction and hands fn the ledger for the owner kind.
// Returning an error from fn rolls everything back.
func (s *GormSettlementScope) Execute(ctx context.Context, kind settlement.OwnerKind, fn func(settlement.Ledger) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ledger settlement.Ledger
		switch kind {
		case settlement.OwnerCustomer:
			ledger = &customerLedger{tx: tx, now: s.now}
		case settlement.OwnerSupplier:
			ledger = &supplierLedger{tx: tx, now: s.now}
		default:
			return shared.ErrInvalidInput.WithMessage(fmt.Sprintf("unknown owner kind %q", kind))
		}
		return fn(ledger)
	})
}

// customerLedger reads and writes the due of sales orders keyed by customer number
type customerLedger struct {
	tx  *gorm.DB
	now func() time.Time
}

type orderDebtRow struct {
	ID             uuid.UUID
	CustomerNumber int
	TotalPrice     decimal.Decimal
	PaidAmount     decimal.Decimal
	DueAmount      decimal.Decimal
	CreatedAt      time.Time
	Version        int
}

func (l *customerLedger) LoadForUpdate(ctx context.Context, ownerKey string) ([]settlement.Debt, error) {
	number, err := strconv.Atoi(ownerKey)
	if err != nil {
		return nil, shared.ErrInvalidInput.WithMessage("Customer number must be an integer")
	}

	var rows []orderDebtRow
	if err := forUpdate(l.tx.WithContext(ctx)).
		Model(&trade.Order{}).
		Select("id, customer_number, total_price, paid_amount, due_amount, created_at, version").
		Where("customer_number = ?", number).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	debts := make([]settlement.Debt, 0, len(rows))
	for _, row := range rows {
		debts = append(debts, settlement.Debt{
			ID:          row.ID,
			OwnerKey:    ownerKey,
			TotalAmount: row.TotalPrice,
			PaidAmount:  row.PaidAmount,
			DueAmount:   row.DueAmount,
			CreatedAt:   row.CreatedAt,
			Version:     row.Version,
		})
	}
	return debts, nil
}

func (l *customerLedger) Save(ctx context.Context, debts []settlement.Debt) error {
	for _, d := range debts {
		if err := saveDebt(l.tx.WithContext(ctx).Model(&trade.Order{}), d, "paid_amount", "due_amount", l.now()); err != nil {
			return err
		}
	}
	return nil
}

// supplierLedger reads and writes the unpaid part of purchase bills keyed by supplier id
type supplierLedger struct {
	tx  *gorm.DB
	now func() time.Time
}

type purchaseDebtRow struct {
	ID                uuid.UUID
	TotalAmount       decimal.Decimal
	PaymentBillAmount decimal.Decimal
	DueBillAmount     decimal.Decimal
	CreatedAt         time.Time
	Version           int
}

func (l *supplierLedger) LoadForUpdate(ctx context.Context, ownerKey string) ([]settlement.Debt, error) {
	supplierID, err := uuid.Parse(ownerKey)
	if err != nil {
		return nil, shared.ErrInvalidInput.WithMessage("Supplier id must be a UUID")
	}

	var rows []purchaseDebtRow
	if err := forUpdate(l.tx.WithContext(ctx)).
		Model(&trade.Purchase{}).
		Select("id, total_amount, payment_bill_amount, due_bill_amount, created_at, version").
		Where("supplier_id = ?", supplierID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	debts := make([]settlement.Debt, 0, len(rows))
	for _, row := range rows {
		debts = append(debts, settlement.Debt{
			ID:          row.ID,
			OwnerKey:    ownerKey,
			TotalAmount: row.TotalAmount,
			PaidAmount:  row.PaymentBillAmount,
			DueAmount:   row.DueBillAmount,
			CreatedAt:   row.CreatedAt,
			Version:     row.Version,
		})
	}
	return debts, nil
}

func (l *supplierLedger) Save(ctx context.Context, debts []settlement.Debt) error {
	for _, d := range debts {
		if err := saveDebt(l.tx.WithContext(ctx).Model(&trade.Purchase{}), d, "payment_bill_amount", "due_bill_amount", l.now()); err != nil {
			return err
		}
	}
	return nil
}

// saveDebt writes the new paid and due amounts guarded by the loaded version.
// Zero affected rows means another writer got there first.
func saveDebt(query *gorm.DB, d settlement.Debt, paidColumn, dueColumn string, now time.Time) error {
	result := query.
		Where("id = ? AND version = ?", d.ID, d.Version).
		UpdateColumns(map[string]any{
			paidColumn:   d.PaidAmount,
			dueColumn:    d.DueAmount,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

var _ appsettlement.LedgerScope = (*GormSettlementScope)(nil)
