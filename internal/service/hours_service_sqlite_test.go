package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/time-manager/internal/model"
	"github.com/Leganyst/time-manager/internal/repository"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func clockTime(t time.Time) datatypes.Time {
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
}

func TestHoursService_SQLite_TwoContactCenters(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	now := sunday(t)

	centers := repository.NewGormContactCenterRepository(db)
	schedules := repository.NewGormTimeScheduleRepository(db)
	svc := NewHoursService(centers, schedules, FixedClock{T: now}, nil)

	first := &model.ContactCenter{Name: "first"}
	second := &model.ContactCenter{Name: "second"}
	empty := &model.ContactCenter{Name: "empty"}
	for _, cc := range []*model.ContactCenter{first, second, empty} {
		if err := centers.Create(ctx, cc); err != nil {
			t.Fatalf("create contact center: %v", err)
		}
	}

	rows := []model.TimeSchedule{
		{ContactCenterID: first.ID, Day: "Sunday", PeriodStart: clockTime(now.Add(-time.Hour)), PeriodEnd: clockTime(now.Add(2 * time.Hour)), TimeZone: "London"},
		{ContactCenterID: second.ID, Day: "Sunday", PeriodStart: clockTime(now.Add(2 * time.Hour)), PeriodEnd: clockTime(now.Add(5 * time.Hour)), TimeZone: "London"},
		{ContactCenterID: second.ID, Day: "Monday", PeriodStart: clockTime(now.Add(-3 * time.Hour)), PeriodEnd: clockTime(now.Add(6 * time.Hour)), TimeZone: "London"},
	}
	for i := range rows {
		if err := schedules.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("create schedule: %v", err)
		}
	}

	firstStatus, err := svc.Status(ctx, first.ID.String(), nil)
	if err != nil {
		t.Fatalf("first status: %v", err)
	}
	if !firstStatus.Open {
		t.Fatalf("expected first contact center open")
	}
	if firstStatus.WeekdayHours != "closed" || firstStatus.WeekendHours != "1PM-4PM" {
		t.Fatalf("unexpected first hours %+v", firstStatus)
	}

	secondOpen, err := svc.IsOpen(ctx, second.ID.String(), nil)
	if err != nil {
		t.Fatalf("second is open: %v", err)
	}
	if secondOpen {
		t.Fatalf("expected second contact center closed")
	}
	wd, err := svc.WeekdayHours(ctx, second.ID.String())
	if err != nil {
		t.Fatalf("second weekday hours: %v", err)
	}
	if wd != "11AM-8PM" {
		t.Fatalf("expected 11AM-8PM, got %q", wd)
	}

	emptyStatus, err := svc.Status(ctx, empty.ID.String(), nil)
	if err != nil {
		t.Fatalf("empty status: %v", err)
	}
	if !emptyStatus.Open || emptyStatus.WeekdayHours != "closed" || emptyStatus.WeekendHours != "closed" {
		t.Fatalf("unexpected empty status %+v", emptyStatus)
	}
}
