package numfmt

import (
	"math"
	"time"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/cell"
)

const microsInADay = 24 * 60 * 60 * 1e6

var (
	excel1900Epoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	excel1904Epoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Serial range Excel can display: 0001-01-01 through 9999-12-31 in the
// 1900 system, with some headroom for the 1904 offset.
const (
	minSerial = -693594
	maxSerial = 2958466
)

// maxDurationDays is the largest whole number of days a time.Duration holds.
const maxDurationDays = float64(math.MaxInt64 / int64(24*time.Hour))

// TimeFromSerial converts an Excel date serial into a wall clock time in
// time.UTC. The 1900 system counts the fictitious 1900-02-29, so serials
// before it are shifted by one day.
func TimeFromSerial(serial float64, date1904 bool) time.Time {
	epoch := excel1900Epoch
	if date1904 {
		epoch = excel1904Epoch
	} else if serial >= 1 && serial < 60 {
		serial++
	}

	days := math.Floor(serial)
	micros := math.Round((serial - days) * microsInADay)
	return epoch.AddDate(0, 0, int(days)).Add(time.Duration(micros) * time.Microsecond)
}

// DurationFromSerial converts a serial counted in days into a duration,
// rounded to the microsecond.
func DurationFromSerial(serial float64) time.Duration {
	return time.Duration(math.Round(serial*microsInADay)) * time.Microsecond
}

// ToRaw converts a numeric cell shown with a format of the given kind.
//
// Date formats yield a cell.Date when the serial has no time part, time
// formats yield a cell.TimeOfDay when the serial lies within the first day,
// and everything else temporal yields a cell.DateTime. Serials that cannot be
// represented stay cell.Float.
func ToRaw(serial float64, kind Kind, date1904 bool) cell.Raw {
	if kind == General || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return cell.Float(serial)
	}

	if kind == Duration {
		if math.Abs(serial) >= maxDurationDays {
			return cell.Float(serial)
		}
		return cell.Duration(DurationFromSerial(serial))
	}

	if serial < minSerial || serial > maxSerial {
		return cell.Float(serial)
	}
	t := TimeFromSerial(serial, date1904)

	switch kind {
	case Date:
		if serial == math.Trunc(serial) {
			return cell.DateOf(t)
		}
	case Time:
		if serial >= 0 && serial < 1 {
			return cell.TimeOfDayOf(t)
		}
	}
	return cell.DateTime{Time: t}
}
