package schedule

import (
	"fmt"
	"strings"
	"time"
)

// friendlyZones maps the display names stored by the old admin tool to IANA
// zones. Anything not listed here is handed to time.LoadLocation as is.
var friendlyZones = map[string]string{
	"International Date Line West": "Etc/GMT+12",
	"Midway Island":                "Pacific/Midway",
	"Hawaii":                       "Pacific/Honolulu",
	"Alaska":                       "America/Juneau",
	"Pacific Time (US & Canada)":   "America/Los_Angeles",
	"Tijuana":                      "America/Tijuana",
	"Arizona":                      "America/Phoenix",
	"Mountain Time (US & Canada)":  "America/Denver",
	"Central Time (US & Canada)":   "America/Chicago",
	"Mexico City":                  "America/Mexico_City",
	"Eastern Time (US & Canada)":   "America/New_York",
	"Bogota":                       "America/Bogota",
	"Lima":                         "America/Lima",
	"Atlantic Time (Canada)":       "America/Halifax",
	"Caracas":                      "America/Caracas",
	"Santiago":                     "America/Santiago",
	"Brasilia":                     "America/Sao_Paulo",
	"Buenos Aires":                 "America/Argentina/Buenos_Aires",
	"Azores":                       "Atlantic/Azores",
	"UTC":                          "Etc/UTC",
	"Dublin":                       "Europe/Dublin",
	"Edinburgh":                    "Europe/London",
	"Lisbon":                       "Europe/Lisbon",
	"London":                       "Europe/London",
	"Casablanca":                   "Africa/Casablanca",
	"Amsterdam":                    "Europe/Amsterdam",
	"Berlin":                       "Europe/Berlin",
	"Brussels":                     "Europe/Brussels",
	"Copenhagen":                   "Europe/Copenhagen",
	"Madrid":                       "Europe/Madrid",
	"Paris":                        "Europe/Paris",
	"Prague":                       "Europe/Prague",
	"Rome":                         "Europe/Rome",
	"Stockholm":                    "Europe/Stockholm",
	"Vienna":                       "Europe/Vienna",
	"Warsaw":                       "Europe/Warsaw",
	"Zurich":                       "Europe/Zurich",
	"Athens":                       "Europe/Athens",
	"Bucharest":                    "Europe/Bucharest",
	"Cairo":                        "Africa/Cairo",
	"Helsinki":                     "Europe/Helsinki",
	"Jerusalem":                    "Asia/Jerusalem",
	"Kyiv":                         "Europe/Kiev",
	"Istanbul":                     "Europe/Istanbul",
	"Moscow":                       "Europe/Moscow",
	"Nairobi":                      "Africa/Nairobi",
	"Abu Dhabi":                    "Asia/Muscat",
	"Dubai":                        "Asia/Dubai",
	"Karachi":                      "Asia/Karachi",
	"Mumbai":                       "Asia/Kolkata",
	"New Delhi":                    "Asia/Kolkata",
	"Kathmandu":                    "Asia/Kathmandu",
	"Dhaka":                        "Asia/Dhaka",
	"Bangkok":                      "Asia/Bangkok",
	"Jakarta":                      "Asia/Jakarta",
	"Beijing":                      "Asia/Shanghai",
	"Hong Kong":                    "Asia/Hong_Kong",
	"Singapore":                    "Asia/Singapore",
	"Taipei":                       "Asia/Taipei",
	"Seoul":                        "Asia/Seoul",
	"Tokyo":                        "Asia/Tokyo",
	"Adelaide":                     "Australia/Adelaide",
	"Brisbane":                     "Australia/Brisbane",
	"Melbourne":                    "Australia/Melbourne",
	"Sydney":                       "Australia/Sydney",
	"Auckland":                     "Pacific/Auckland",
}

// LoadLocation resolves a window's zone name. Empty names are rejected rather
// than silently mapped to UTC.
func LoadLocation(name string) (*time.Location, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidTimezone)
	}
	if iana, ok := friendlyZones[key]; ok {
		key = iana
	}
	loc, err := time.LoadLocation(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}
