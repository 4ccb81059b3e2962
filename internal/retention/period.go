// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package retention

import (
	"strconv"
	"time"

	"github.com/juju/errors"
)

// ParsePeriod converts a retention period of the form "<magnitude><unit>"
// into a duration. The unit is a single trailing letter: "d" for days,
// "h" for hours or "m" for minutes, so "7d" is seven days and "45m" is
// forty five minutes. The magnitude is not range checked, so "0d" and
// even negative periods parse successfully.
func ParsePeriod(period string) (time.Duration, error) {
	if len(period) < 2 {
		return 0, errors.NotValidf("retention period %q", period)
	}
	var unit time.Duration
	switch period[len(period)-1] {
	case 'd':
		unit = 24 * time.Hour
	case 'h':
		unit = time.Hour
	case 'm':
		unit = time.Minute
	default:
		return 0, errors.NotValidf("retention period unit %q", period[len(period)-1:])
	}
	magnitude, err := strconv.Atoi(period[:len(period)-1])
	if err != nil {
		return 0, errors.NotValidf("retention period magnitude %q", period[:len(period)-1])
	}
	return time.Duration(magnitude) * unit, nil
}
