package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the contact center tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ContactCenter{},
		&TimeSchedule{},
	)
}
