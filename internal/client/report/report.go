// Package report derives study statistics from a list of syllabus topics:
// status tallies, completion progress and the seven-day revision rule.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/client/api"
)

// revisionThresholdDays is how many days a completed topic may rest before
// it is due for revision again.
const revisionThresholdDays = 7

// StatusCounts tallies topics by status.
type StatusCounts struct {
	Total      int
	Completed  int
	Pending    int
	InProgress int
}

// CountByStatus returns per-status tallies for the given topics.
func CountByStatus(topics []api.Topic) StatusCounts {
	c := StatusCounts{Total: len(topics)}
	for _, t := range topics {
		switch t.Status {
		case "Completed":
			c.Completed++
		case "Pending":
			c.Pending++
		case "In Progress":
			c.InProgress++
		}
	}
	return c
}

// Progress returns the completion percentage, rounded to the nearest
// integer. An empty list counts as zero progress.
func Progress(topics []api.Topic) int {
	if len(topics) == 0 {
		return 0
	}
	completed := 0
	for _, t := range topics {
		if t.Status == "Completed" {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(topics)) * 100))
}

// DaysSinceLastStudy returns the number of days since the topic was last
// studied, rounded up, and false when it was never studied.
func DaysSinceLastStudy(lastStudied *time.Time, now time.Time) (int, bool) {
	if lastStudied == nil {
		return 0, false
	}
	diff := now.Sub(*lastStudied)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24)), true
}

// NeedsRevision reports whether a topic studied at lastStudied is overdue
// under the seven-day rule. A topic never studied is not due.
func NeedsRevision(lastStudied *time.Time, now time.Time) bool {
	days, ok := DaysSinceLastStudy(lastStudied, now)
	return ok && days > revisionThresholdDays
}

// TopicsNeedingRevision returns the completed topics that are due for
// revision.
func TopicsNeedingRevision(topics []api.Topic, now time.Time) []api.Topic {
	due := make([]api.Topic, 0)
	for _, t := range topics {
		if t.Status == "Completed" && NeedsRevision(t.LastStudied, now) {
			due = append(due, t)
		}
	}
	return due
}

// RevisionMessage builds a short reminder line for a topic, or "" when the
// topic has no study history yet.
func RevisionMessage(t api.Topic, now time.Time) string {
	days, ok := DaysSinceLastStudy(t.LastStudied, now)
	if !ok || days == 0 {
		return ""
	}
	switch {
	case days > revisionThresholdDays:
		return fmt.Sprintf("Last studied %d days ago - needs revision!", days)
	case days > 5:
		return fmt.Sprintf("Last studied %d days ago - review soon", days)
	default:
		return fmt.Sprintf("Last studied %d days ago", days)
	}
}

// importanceRank orders High before Medium before Low. Anything the server
// does not vouch for sorts last, never ahead of High.
func importanceRank(importance string) int {
	switch importance {
	case "High":
		return 1
	case "Medium":
		return 2
	case "Low":
		return 3
	default:
		return 4
	}
}

// SortByImportance returns a copy of topics ordered High, Medium, Low.
// Topics of equal importance keep their relative order.
func SortByImportance(topics []api.Topic) []api.Topic {
	out := make([]api.Topic, len(topics))
	copy(out, topics)
	sort.SliceStable(out, func(i, j int) bool {
		return importanceRank(out[i].Importance) < importanceRank(out[j].Importance)
	})
	return out
}
