// Package timeutil содержит чистые функции конвертации между локальным
// календарным днём тенанта и UTC-инстантами. Без состояния и I/O.
package timeutil

import (
	"fmt"
	"time"
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// LocalDayStartToUTC возвращает полночь указанной календарной даты в зоне loc,
// выраженную как UTC-инстант. Переходы на летнее/зимнее время учитываются
// правилами самой зоны, а не фиксированным смещением.
func LocalDayStartToUTC(dateISO string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, dateISO, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: parse date %q: %w", dateISO, err)
	}
	return t.UTC(), nil
}

// ISOWeekday возвращает день недели инстанта t, наблюдаемый в зоне loc,
// по ISO-нумерации: Monday=1 .. Sunday=7.
//
// В Go воскресенье имеет номер 0 - переотображение на 7 обязательно,
// потому что AvailabilityRule.Weekday хранится в ISO-нумерации.
func ISOWeekday(t time.Time, loc *time.Location) int {
	wd := int(t.In(loc).Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// AddMinutes сдвигает инстант на n минут. Чистая UTC-арифметика,
// от зоны не зависит.
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}
