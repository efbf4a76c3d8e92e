package schedule

import (
	"sort"

	"github.com/trezcool/ratiba/core/course"
)

// UnknownCourseName is the display label substituted when an entry's
// course reference does not resolve. Cascade deletion should prevent
// dangling references; this is handled rather than raised.
const UnknownCourseName = "Unknown Course"

type (
	// TimetableEntry is an Entry denormalized with its Course.
	TimetableEntry struct {
		Entry
		Course course.Course `json:"course"`
	}

	// DayGroup holds a day's entries, sorted ascending by start time.
	DayGroup struct {
		Day     string           `json:"day"`
		Entries []TimetableEntry `json:"entries"`
	}
)

// Denormalize joins each entry with its course, substituting the
// UnknownCourseName sentinel for unresolved references.
func Denormalize(entries []Entry, courses []course.Course) []TimetableEntry {
	byID := make(map[int]course.Course, len(courses))
	for _, crs := range courses {
		byID[crs.ID] = crs
	}

	result := make([]TimetableEntry, 0, len(entries))
	for _, ent := range entries {
		crs, ok := byID[ent.CourseID]
		if !ok {
			crs = course.Course{ID: ent.CourseID, Name: UnknownCourseName}
		}
		result = append(result, TimetableEntry{Entry: ent, Course: crs})
	}
	return result
}

// FilterByDegree returns the subset whose course degree equals `degree`;
// an empty degree returns the full set in the same order. The source
// slice is never mutated.
func FilterByDegree(entries []TimetableEntry, degree string) []TimetableEntry {
	if degree == "" {
		return entries
	}
	filtered := make([]TimetableEntry, 0, len(entries))
	for _, ent := range entries {
		if ent.Course.Degree == degree {
			filtered = append(filtered, ent)
		}
	}
	return filtered
}

// GroupByDay partitions entries by day-of-week. Groups appear in canonical
// week order (Monday..Sunday); days absent from the data are omitted.
// Within each group, entries are sorted ascending by start time using
// lexicographic comparison (chronological for zero-padded "HH:MM").
func GroupByDay(entries []TimetableEntry) []DayGroup {
	byDay := make(map[string][]TimetableEntry)
	for _, ent := range entries {
		byDay[ent.DayOfWeek] = append(byDay[ent.DayOfWeek], ent)
	}

	groups := make([]DayGroup, 0, len(byDay))
	for _, day := range WeekDays {
		dayEntries, ok := byDay[day]
		if !ok {
			continue
		}
		sort.SliceStable(dayEntries, func(i, j int) bool {
			return dayEntries[i].StartTime < dayEntries[j].StartTime
		})
		groups = append(groups, DayGroup{Day: day, Entries: dayEntries})
	}
	return groups
}
