package persistence

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// lineRow pairs a line's ID with its storable struct
type lineRow struct {
	id    uuid.UUID
	value any
}

// replaceLines syncs a document's stored line set with the aggregate:
// rows missing from the aggregate are deleted, the rest upserted. Runs
// inside the caller's transaction.
func replaceLines(tx *gorm.DB, fkColumn string, parentID uuid.UUID, model any, rows []lineRow) error {
	if len(rows) == 0 {
		return tx.Where(fkColumn+" = ?", parentID).Delete(model).Error
	}

	keep := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		keep[i] = row.id
	}
	if err := tx.Where(fkColumn+" = ? AND id NOT IN ?", parentID, keep).Delete(model).Error; err != nil {
		return err
	}
	for _, row := range rows {
		if err := tx.Save(row.value).Error; err != nil {
			return err
		}
	}
	return nil
}
