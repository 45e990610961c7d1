package persistence

import (
	"context"
	"time"

	"github.com/docflow/backend/internal/domain/document"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sequenceCounter is one atomic counter row per document series
type sequenceCounter struct {
	Key       string `gorm:"type:varchar(120);primaryKey"`
	Prefix    string `gorm:"type:varchar(80);not null"`
	LastValue int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (sequenceCounter) TableName() string {
	return "document_sequences"
}

// numberedTable names a table and column holding issued document numbers
type numberedTable struct {
	table  string
	column string
}

var numberedTables = []numberedTable{
	{"purchase_orders", "order_number"},
	{"sale_orders", "order_number"},
	{"vendor_bills", "bill_number"},
	{"invoices", "invoice_number"},
}

// GormSequenceRepository implements SequenceRepository with a counter row
// per series. Reserving a number increments the row under a lock, so two
// concurrent creators can never compute the same number from a stale
// scan of existing documents.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GormSequenceRepository
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// NextNumber reserves and returns the next identifier in the series
func (r *GormSequenceRepository) NextNumber(ctx context.Context, series document.Series) (string, error) {
	var issued string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter sequenceCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("key = ?", series.Key).
			First(&counter).Error
		if err == gorm.ErrRecordNotFound {
			// First issue for this series: seed from documents already
			// carrying its prefix so legacy data keeps its numbering
			seed, err := r.seedValue(tx, series)
			if err != nil {
				return err
			}
			counter = sequenceCounter{Key: series.Key, Prefix: series.Prefix, LastValue: seed}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		counter.LastValue++
		counter.UpdatedAt = time.Now()
		if err := tx.Save(&counter).Error; err != nil {
			return err
		}

		issued = document.FormatIdentifier(series, counter.LastValue)
		return nil
	})
	return issued, err
}

// seedValue returns the highest suffix already issued under the series
// prefix across every document table, or zero when none exists
func (r *GormSequenceRepository) seedValue(tx *gorm.DB, series document.Series) (int64, error) {
	var max int64
	for _, nt := range numberedTables {
		var numbers []string
		if err := tx.Table(nt.table).
			Where(nt.column+" LIKE ?", series.Prefix+"%").
			Pluck(nt.column, &numbers).Error; err != nil {
			return 0, err
		}
		for _, number := range numbers {
			if suffix, ok := document.SuffixOf(series, number); ok && suffix > max {
				max = suffix
			}
		}
	}
	return max, nil
}

// Ensure GormSequenceRepository implements SequenceRepository
var _ document.SequenceRepository = (*GormSequenceRepository)(nil)
