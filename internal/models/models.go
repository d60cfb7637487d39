package models

import "gorm.io/gorm"

// All lists every persisted model, parents before children.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Comment{},
		&Reply{},
		&Poll{},
		&Option{},
		&Like{},
		&Vote{},
		&Follow{},
	}
}

// Migrate creates or updates the schema, including unique and check constraints.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
