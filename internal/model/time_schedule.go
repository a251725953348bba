package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// time_schedules
type TimeSchedule struct {
	// Serial id; ordering by it gives insertion order.
	ID uint `gorm:"primaryKey;autoIncrement"`

	ContactCenterID uuid.UUID `gorm:"type:uuid;not null;index:idx_time_schedules_center_day,priority:1"`

	// English day name, e.g. "Sunday".
	Day string `gorm:"type:varchar(16);not null;index:idx_time_schedules_center_day,priority:2"`

	// Wall-clock values without a date.
	PeriodStart datatypes.Time `gorm:"not null"`
	PeriodEnd   datatypes.Time `gorm:"not null"`

	TimeZone string `gorm:"column:timezone;type:varchar(64);not null;default:'UTC'"`

	// Persisted for the admin UI; opening checks do not read it.
	Closed bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	ContactCenter *ContactCenter `gorm:"foreignKey:ContactCenterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
