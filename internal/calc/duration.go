package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit multipliers in seconds.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400
	SecondsPerWeek   = 604800
)

// ParseISODuration converts an ISO-8601 duration string such as "PT1H2M3S",
// "P1DT2H" or "PT4M13S" to seconds. Weeks ("P2W") are accepted; calendar
// units (years, months) are rejected because their length in seconds is
// undefined. Fractional values are allowed on any component.
func ParseISODuration(s string) (float64, error) {
	if !strings.HasPrefix(s, "P") {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}

	var (
		total   float64
		num     strings.Builder
		inTime  bool
		matched bool
	)

	apply := func(mult float64) error {
		if num.Len() == 0 {
			return fmt.Errorf("invalid ISO-8601 duration %q: designator without value", s)
		}
		v, err := strconv.ParseFloat(num.String(), 64)
		if err != nil {
			return fmt.Errorf("invalid ISO-8601 duration %q: %w", s, err)
		}
		num.Reset()
		total += v * mult
		matched = true
		return nil
	}

	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9' || r == '.':
			num.WriteRune(r)
		case r == 'T':
			if num.Len() > 0 {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			inTime = true
		case r == 'W':
			if err := apply(SecondsPerWeek); err != nil {
				return 0, err
			}
		case r == 'D':
			if err := apply(SecondsPerDay); err != nil {
				return 0, err
			}
		case r == 'H':
			if !inTime {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			if err := apply(SecondsPerHour); err != nil {
				return 0, err
			}
		case r == 'M':
			if !inTime {
				return 0, fmt.Errorf("unsupported calendar component in duration %q", s)
			}
			if err := apply(SecondsPerMinute); err != nil {
				return 0, err
			}
		case r == 'S':
			if !inTime {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			if err := apply(1); err != nil {
				return 0, err
			}
		case r == 'Y':
			return 0, fmt.Errorf("unsupported calendar component in duration %q", s)
		default:
			return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
		}
	}

	if !matched || num.Len() > 0 {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}

	return total, nil
}

// FormatDuration renders a seconds count as a compound label such as
// "1d 1h 30m", omitting zero-valued units. Seconds are always shown when
// every other unit is zero, so zero renders as "0s".
func FormatDuration(totalSeconds float64) string {
	total := int(totalSeconds)
	days := total / SecondsPerDay
	hours := (total % SecondsPerDay) / SecondsPerHour
	minutes := (total % SecondsPerHour) / SecondsPerMinute
	seconds := total % SecondsPerMinute

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}
