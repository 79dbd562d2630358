package domain

import "time"

// UpcomingWindow is how far ahead of now a dated task counts as upcoming.
const UpcomingWindow = 24 * time.Hour

// DateLayout is the calendar-date format used by date queries.
const DateLayout = "2006-01-02"

// targetTimeLayout is the wall-clock layout of Task.TargetTime.
const targetTimeLayout = "15:04"

// DueMoment returns the instant the task is considered due. When
// TargetTime is set and parseable it replaces the time-of-day portion of
// TargetDate, with seconds zeroed; otherwise TargetDate's own clock time
// applies (midnight when only a date was supplied). The second return is
// false for unscheduled tasks.
func (t *Task) DueMoment() (time.Time, bool) {
	if t.TargetDate == nil {
		return time.Time{}, false
	}
	d := *t.TargetDate
	if t.TargetTime != "" {
		if hm, err := time.Parse(targetTimeLayout, t.TargetTime); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), hm.Hour(), hm.Minute(), 0, 0, d.Location()), true
		}
	}
	return d, true
}

// IsOverdue returns true if the task is due before now and not completed.
// A task stays overdue until marked completed, however long ago it was due.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.IsCompleted() {
		return false
	}
	due, ok := t.DueMoment()
	return ok && due.Before(now)
}

// OccursOn returns true if the task's target calendar date equals the
// given YYYY-MM-DD date. The comparison uses the stored timestamp's own
// calendar date; no time-zone conversion is applied.
func (t *Task) OccursOn(date string) bool {
	if t.TargetDate == nil {
		return false
	}
	return t.TargetDate.Format(DateLayout) == date
}

// Reminders partitions non-completed, dated tasks by due moment.
type Reminders struct {
	Overdue  []*Task // Due before now
	Upcoming []*Task // Due within [now, now+24h], boundaries inclusive
}

// Classify buckets tasks into overdue and upcoming relative to now.
// Completed and unscheduled tasks are excluded from both buckets. The
// order inside each bucket follows the input order.
func Classify(tasks []*Task, now time.Time) Reminders {
	horizon := now.Add(UpcomingWindow)
	r := Reminders{Overdue: []*Task{}, Upcoming: []*Task{}}
	for _, t := range tasks {
		if t.IsCompleted() {
			continue
		}
		due, ok := t.DueMoment()
		if !ok {
			continue
		}
		switch {
		case due.Before(now):
			r.Overdue = append(r.Overdue, t)
		case !due.After(horizon):
			r.Upcoming = append(r.Upcoming, t)
		}
	}
	return r
}

// TasksOn returns all tasks whose target date falls on the given
// YYYY-MM-DD date, in input order.
func TasksOn(tasks []*Task, date string) []*Task {
	matched := []*Task{}
	for _, t := range tasks {
		if t.OccursOn(date) {
			matched = append(matched, t)
		}
	}
	return matched
}
