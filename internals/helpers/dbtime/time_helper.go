// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

var (
	locOnce sync.Once
	appLoc  *time.Location
	tzName  = "Asia/Jakarta"
)

// SetTimezone dipanggil sekali saat startup (APP_TIMEZONE).
func SetTimezone(name string) {
	if s := strings.TrimSpace(name); s != "" {
		tzName = s
	}
}

// Location: zona waktu pesantren, fallback Asia/Jakarta lalu UTC.
func Location() *time.Location {
	locOnce.Do(func() {
		if loc, err := time.LoadLocation(tzName); err == nil {
			appLoc = loc
			return
		}
		if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
			appLoc = loc
			return
		}
		appLoc = time.UTC
	})
	return appLoc
}

func Now() time.Time { return time.Now().In(Location()) }

// DateOf memotong waktu jadi tanggal kalender (UTC midnight) agar konsisten disimpan di kolom DATE.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Today: tanggal hari ini menurut zona waktu pesantren.
func Today() datatypes.Date { return DateOf(Now()) }

// ParseDate menerima "YYYY-MM-DD"; string kosong → hari ini.
func ParseDate(s string) (datatypes.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Today(), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return DateOf(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
