package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate. Owners go
// before the tables that reference them.
func AllModels() []any {
	return []any{
		&Protein{},
		&Structure{},
	}
}

// DDLModels returns the models as SQLite DDL generators in creation order.
func DDLModels() []DDLGenerator {
	return []DDLGenerator{
		Protein{},
		Structure{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
