package util

import (
	"fmt"
	"time"
)

// PeriodWindow returns the [start, end] reporting window for a dashboard
// period anchored at now. The end is always now itself; weeks start on
// Sunday and quarters on months 1, 4, 7 and 10.
func PeriodWindow(period string, now time.Time) (time.Time, time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "day":
		return midnight, now, nil
	case "week":
		return midnight.AddDate(0, 0, -int(midnight.Weekday())), now, nil
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now, nil
	case "quarter":
		quarterStart := now.Month() - (now.Month()-1)%3
		return time.Date(now.Year(), quarterStart, 1, 0, 0, 0, 0, now.Location()), now, nil
	case "year":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), now, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("invalid period: %s", period)
}
