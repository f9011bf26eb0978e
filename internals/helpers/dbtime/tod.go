// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const todLayout = "15:04:05"

// Tod: jam dalam sehari (kolom TIME), dipakai sessions_ref.time_start/time_end.
// Tanggal & zona selalu dibuang; yang dibandingkan hanya jam.
type Tod struct{ time.Time }

func clockOf(t time.Time) Tod {
	return Tod{Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// Parse menerima "HH:MM" atau "HH:MM:SS".
func Parse(s string) (Tod, error) {
	s = strings.TrimSpace(s)
	if len(s) == len("15:04") {
		s += ":00"
	}
	t, err := time.Parse(todLayout, s)
	if err != nil {
		return Tod{}, err
	}
	return clockOf(t), nil
}

// Scan: postgres mengirim string "HH:MM:SS", sqlite bisa time.Time atau []byte.
func (t *Tod) Scan(v any) error {
	var (
		out Tod
		err error
	)
	switch x := v.(type) {
	case nil:
	case time.Time:
		out = clockOf(x)
	case []byte:
		out, err = Parse(string(x))
	case string:
		out, err = Parse(x)
	default:
		err = fmt.Errorf("tod: tipe Scan %T tidak didukung", v)
	}
	if err != nil {
		return err
	}
	*t = out
	return nil
}

func (t Tod) Value() (driver.Value, error) {
	return t.Format(todLayout), nil
}

// MarshalJSON: respons API memakai "HH:MM:SS", sama dengan isi kolom.
func (t Tod) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(t.Format(todLayout))
}

func (t Tod) Before(o Tod) bool {
	return t.Format(todLayout) < o.Format(todLayout)
}

func (t Tod) String() string { return t.Format("15:04") }
