package db

import (
	"gorm.io/gorm"
)

// RegisterAuditCallbacks stamps CreatedBy on inserts and UpdatedBy on updates
// for any model that declares those fields. Timestamps are left to gorm.
func RegisterAuditCallbacks(db *gorm.DB, auditor string) error {
	if err := db.Callback().Create().Before("gorm:create").
		Register("audit:created_by", stampColumn("CreatedBy", auditor)); err != nil {
		return err
	}
	return db.Callback().Update().Before("gorm:update").
		Register("audit:updated_by", stampColumn("UpdatedBy", auditor))
}

func stampColumn(field, auditor string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if tx.Statement.Schema == nil || tx.Statement.Schema.LookUpField(field) == nil {
			return
		}
		tx.Statement.SetColumn(field, auditor)
	}
}
