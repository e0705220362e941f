package impl

import (
	"time"

	"contacts/internal/domain/entity"
)

// dateOf truncates t to its calendar day, keeping the wall clock date of t's location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// birthdayWindow lists the calendar days from today through today+days.
// Feb 29 is added next to Feb 28 in common years.
func birthdayWindow(today time.Time, days int) []entity.MonthDay {
	start := dateOf(today)
	seen := make(map[entity.MonthDay]struct{}, days+2)
	window := make([]entity.MonthDay, 0, days+2)

	add := func(md entity.MonthDay) {
		if _, ok := seen[md]; ok {
			return
		}
		seen[md] = struct{}{}
		window = append(window, md)
	}

	for i := 0; i <= days; i++ {
		d := start.AddDate(0, 0, i)
		add(entity.MonthDay{Month: d.Month(), Day: d.Day()})

		if d.Month() == time.February && d.Day() == 28 && !isLeapYear(d.Year()) {
			add(entity.MonthDay{Month: time.February, Day: 29})
		}
	}

	return window
}

// birthdayIn returns the date a birthday is celebrated in year.
func birthdayIn(year int, birthday time.Time) time.Time {
	month, day := birthday.Month(), birthday.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysUntilBirthday counts the days from today to the next celebration of birthday.
func daysUntilBirthday(today, birthday time.Time) int {
	start := dateOf(today)

	next := birthdayIn(start.Year(), birthday)
	if next.Before(start) {
		next = birthdayIn(start.Year()+1, birthday)
	}

	return int(next.Sub(start).Hours() / 24)
}
