package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Filter selects a subset of the task collection.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
)

// ParseFilter validates a filter name. Empty means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending, FilterCompleted, FilterOverdue:
		return Filter(s), nil
	}
	return "", fmt.Errorf("unknown filter %q (expected all, pending, completed, or overdue)", s)
}

// SortKey orders a task projection.
type SortKey string

const (
	SortByDueDate  SortKey = "date"     // Due moment ascending, undated last
	SortByPriority SortKey = "priority" // High to low, unrecognized last
	SortByTitle    SortKey = "title"    // Case-sensitive lexicographic
)

// ParseSortKey validates a sort key name. Empty means SortByDueDate.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortByDueDate:
		return SortByDueDate, nil
	case SortByPriority, SortByTitle:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (expected date, priority, or title)", s)
}

// ComposeView returns a filtered, sorted projection of tasks. The input
// slice is never mutated. Filtering applies before sorting; the sort is
// stable, so ties keep their original insertion order and the result is
// fully reproducible for a given input and now.
func ComposeView(tasks []*Task, filter Filter, key SortKey, now time.Time) []*Task {
	view := []*Task{}
	for _, t := range tasks {
		if matchesFilter(t, filter, now) {
			view = append(view, t)
		}
	}
	slices.SortStableFunc(view, compareFunc(key))
	return view
}

func matchesFilter(t *Task, filter Filter, now time.Time) bool {
	switch filter {
	case FilterPending:
		return t.Status == StatusPending
	case FilterCompleted:
		return t.Status == StatusCompleted
	case FilterOverdue:
		return t.IsOverdue(now)
	}
	return true
}

func compareFunc(key SortKey) func(a, b *Task) int {
	switch key {
	case SortByPriority:
		return func(a, b *Task) int {
			return b.Priority.Weight() - a.Priority.Weight()
		}
	case SortByTitle:
		return func(a, b *Task) int {
			return strings.Compare(a.Title, b.Title)
		}
	}
	return compareByDueMoment
}

// compareByDueMoment orders dated tasks ascending by due moment and
// places all undated tasks after them. Undated tasks compare equal to
// each other so the stable sort preserves their relative order.
func compareByDueMoment(a, b *Task) int {
	dueA, okA := a.DueMoment()
	dueB, okB := b.DueMoment()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return dueA.Compare(dueB)
}
