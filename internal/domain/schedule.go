package domain

import "time"

// DaySchedule is one calendar day of a trip together with the activities
// that occur on it. Activities is never nil.
type DaySchedule struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// BuildSchedule partitions activities into one bucket per calendar day from
// startsAt to endsAt inclusive. Bucket membership is same year/month/day,
// not a 24-hour window, so a trip starting at 23:00 still owns its first
// calendar day in full.
//
// Activities must already be sorted by OccursAt ascending; the order is
// preserved within each bucket. Activities outside the trip range land in
// no bucket and are silently dropped.
func BuildSchedule(startsAt, endsAt time.Time, activities []Activity) []DaySchedule {
	first := dateOnly(startsAt)
	last := dateOnly(endsAt)

	// Walk calendar days rather than dividing elapsed hours: a DST
	// transition makes a day 23 or 25 hours long, which would skew the count.
	schedule := []DaySchedule{}
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		bucket := DaySchedule{Date: day, Activities: []Activity{}}
		for _, a := range activities {
			if sameDay(a.OccursAt, day) {
				bucket.Activities = append(bucket.Activities, a)
			}
		}
		schedule = append(schedule, bucket)
	}
	return schedule
}

// dateOnly truncates t to midnight of its calendar day, keeping the location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
