package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/time-manager/internal/model"
	"github.com/Leganyst/time-manager/internal/repository"
	"github.com/Leganyst/time-manager/internal/schedule"
)

// File is the YAML layout of a seed file:
//
//	contact_centers:
//	  - name: London support
//	    schedules:
//	      - {day: Monday, start: "09:00", end: "17:00", timezone: London}
type File struct {
	ContactCenters []ContactCenter `yaml:"contact_centers"`
}

type ContactCenter struct {
	Name      string     `yaml:"name"`
	Schedules []Schedule `yaml:"schedules"`
}

type Schedule struct {
	Day      string `yaml:"day"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Timezone string `yaml:"timezone"`
	Closed   bool   `yaml:"closed"`
}

type Result struct {
	Created []string
	Skipped []string
}

func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Apply inserts every contact center that does not exist yet, together with
// its schedules, in file order. Existing names are left untouched.
func Apply(ctx context.Context, db *gorm.DB, f *File) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		centers := repository.NewGormContactCenterRepository(tx)
		schedules := repository.NewGormTimeScheduleRepository(tx)

		for _, cc := range f.ContactCenters {
			if cc.Name == "" {
				return fmt.Errorf("contact center without a name")
			}
			_, err := centers.GetByName(ctx, cc.Name)
			if err == nil {
				res.Skipped = append(res.Skipped, cc.Name)
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("look up %q: %w", cc.Name, err)
			}

			center := &model.ContactCenter{Name: cc.Name}
			if err := centers.Create(ctx, center); err != nil {
				return fmt.Errorf("create %q: %w", cc.Name, err)
			}
			for i, s := range cc.Schedules {
				row, err := toModel(center, s)
				if err != nil {
					return fmt.Errorf("%q schedule %d: %w", cc.Name, i, err)
				}
				if err := schedules.Create(ctx, row); err != nil {
					return fmt.Errorf("%q schedule %d: %w", cc.Name, i, err)
				}
			}
			res.Created = append(res.Created, cc.Name)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Ctx(ctx).Info().
		Int("created", len(res.Created)).
		Int("skipped", len(res.Skipped)).
		Msg("Seed applied")
	return res, nil
}

func toModel(center *model.ContactCenter, s Schedule) (*model.TimeSchedule, error) {
	day, err := schedule.ParseWeekday(s.Day)
	if err != nil {
		return nil, err
	}
	start, err := schedule.ParseTimeOfDay(s.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := schedule.ParseTimeOfDay(s.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	tz := s.Timezone
	if tz == "" {
		tz = "UTC"
	}
	return &model.TimeSchedule{
		ContactCenterID: center.ID,
		Day:             day.String(),
		PeriodStart:     datatypes.NewTime(start.Hour, start.Minute, start.Second, 0),
		PeriodEnd:       datatypes.NewTime(end.Hour, end.Minute, end.Second, 0),
		TimeZone:        tz,
		Closed:          s.Closed,
	}, nil
}
