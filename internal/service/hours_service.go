package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Leganyst/time-manager/internal/metrics"
	"github.com/Leganyst/time-manager/internal/model"
	"github.com/Leganyst/time-manager/internal/pagination"
	"github.com/Leganyst/time-manager/internal/repository"
	"github.com/Leganyst/time-manager/internal/schedule"
)

var (
	ErrContactCenterNotFound = errors.New("contact center not found")
	ErrInvalidContactCenter  = errors.New("invalid contact center id")
)

// Status is the outcome of one evaluation for one contact center.
type Status struct {
	ContactCenterID string
	EvaluatedAt     time.Time
	Open            bool
	WeekdayHours    string
	WeekendHours    string
}

type ContactCenterSummary struct {
	ID   string
	Name string
}

type HoursService struct {
	contactCenters repository.ContactCenterRepository
	schedules      repository.TimeScheduleRepository
	clock          Clock
	metrics        *metrics.Recorder
}

func NewHoursService(
	contactCenters repository.ContactCenterRepository,
	schedules repository.TimeScheduleRepository,
	clock Clock,
	recorder *metrics.Recorder,
) *HoursService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &HoursService{
		contactCenters: contactCenters,
		schedules:      schedules,
		clock:          clock,
		metrics:        recorder,
	}
}

// Status answers all three questions with a single schedule query. A nil at
// means "now" according to the service clock.
func (s *HoursService) Status(ctx context.Context, contactCenterID string, at *time.Time) (Status, error) {
	started := time.Now()
	ref := s.reference(at)

	windows, err := s.loadWindows(ctx, contactCenterID)
	if err != nil {
		s.observe(metrics.ResultError, started)
		return Status{}, err
	}

	summary, err := schedule.Evaluate(ref, windows)
	if err != nil {
		s.observe(metrics.ResultError, started)
		log.Ctx(ctx).Error().Err(err).
			Str("contact_center_id", contactCenterID).
			Time("at", ref).
			Msg("Failed to evaluate opening hours")
		return Status{}, fmt.Errorf("evaluate contact center %s: %w", contactCenterID, err)
	}
	s.observe(resultLabel(summary.Open), started)

	return Status{
		ContactCenterID: contactCenterID,
		EvaluatedAt:     ref,
		Open:            summary.Open,
		WeekdayHours:    summary.WeekdayHours,
		WeekendHours:    summary.WeekendHours,
	}, nil
}

// IsOpen only loads the schedules of the reference weekday.
func (s *HoursService) IsOpen(ctx context.Context, contactCenterID string, at *time.Time) (bool, error) {
	started := time.Now()
	ref := s.reference(at)

	windows, err := s.loadWindows(ctx, contactCenterID, schedule.WeekdayOf(ref))
	if err != nil {
		s.observe(metrics.ResultError, started)
		return false, err
	}

	open, err := schedule.IsOpen(ref, windows)
	if err != nil {
		s.observe(metrics.ResultError, started)
		return false, fmt.Errorf("evaluate contact center %s: %w", contactCenterID, err)
	}
	s.observe(resultLabel(open), started)
	return open, nil
}

func (s *HoursService) WeekdayHours(ctx context.Context, contactCenterID string) (string, error) {
	windows, err := s.loadWindows(ctx, contactCenterID, schedule.WorkingDays...)
	if err != nil {
		return "", err
	}
	return schedule.WeekdayHours(windows), nil
}

func (s *HoursService) WeekendHours(ctx context.Context, contactCenterID string) (string, error) {
	windows, err := s.loadWindows(ctx, contactCenterID, schedule.WeekendDays...)
	if err != nil {
		return "", err
	}
	return schedule.WeekendHours(windows), nil
}

// ListContactCenters returns one page of contact centers ordered by name.
func (s *HoursService) ListContactCenters(ctx context.Context, req pagination.Request) (pagination.Page[ContactCenterSummary], error) {
	items, total, err := s.contactCenters.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		return pagination.Page[ContactCenterSummary]{}, fmt.Errorf("list contact centers: %w", err)
	}
	page := pagination.NewPage(items, req, total)
	return pagination.Map(page, func(cc model.ContactCenter) ContactCenterSummary {
		return ContactCenterSummary{ID: cc.ID.String(), Name: cc.Name}
	}), nil
}

func (s *HoursService) reference(at *time.Time) time.Time {
	if at != nil {
		return *at
	}
	return s.clock.Now()
}

func (s *HoursService) loadWindows(ctx context.Context, contactCenterID string, days ...schedule.Weekday) ([]schedule.Window, error) {
	if _, err := uuid.Parse(contactCenterID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContactCenter, contactCenterID)
	}

	if _, err := s.contactCenters.GetByID(ctx, contactCenterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrContactCenterNotFound, contactCenterID)
		}
		return nil, fmt.Errorf("get contact center %s: %w", contactCenterID, err)
	}

	rows, err := s.schedules.ListByContactCenter(ctx, contactCenterID, days...)
	if err != nil {
		return nil, fmt.Errorf("list time schedules for %s: %w", contactCenterID, err)
	}

	windows := make([]schedule.Window, 0, len(rows))
	for _, row := range rows {
		w, err := toWindow(row)
		if errors.Is(err, schedule.ErrInvalidWeekday) {
			// a day filter in SQL would never match such a row either
			log.Ctx(ctx).Warn().Err(err).
				Uint("time_schedule_id", row.ID).
				Str("contact_center_id", contactCenterID).
				Msg("Skipping time schedule with unknown day")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("time schedule %d: %w", row.ID, err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (s *HoursService) observe(result string, started time.Time) {
	s.metrics.Evaluation(result, time.Since(started).Seconds())
}

func toWindow(row model.TimeSchedule) (schedule.Window, error) {
	day, err := schedule.ParseWeekday(row.Day)
	if err != nil {
		return schedule.Window{}, err
	}
	if day.String() != row.Day {
		// stored names must be canonical, the SQL day filter compares exactly
		return schedule.Window{}, fmt.Errorf("%w: %q is not canonical", schedule.ErrInvalidWeekday, row.Day)
	}
	start, err := schedule.TimeOfDayFromDuration(time.Duration(row.PeriodStart))
	if err != nil {
		return schedule.Window{}, fmt.Errorf("period_start: %w", err)
	}
	end, err := schedule.TimeOfDayFromDuration(time.Duration(row.PeriodEnd))
	if err != nil {
		return schedule.Window{}, fmt.Errorf("period_end: %w", err)
	}
	return schedule.Window{
		Weekday:  day,
		Start:    start,
		End:      end,
		Timezone: row.TimeZone,
		Closed:   row.Closed,
	}, nil
}

func resultLabel(open bool) string {
	if open {
		return metrics.ResultOpen
	}
	return metrics.ResultClosed
}
