package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/client/report"
)

// Dashboard prints status tallies, overall progress and the completed
// topics that are due for revision under the seven-day rule.
func (a *App) Dashboard(ctx context.Context) error {
	topics, err := a.topicService.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	counts := report.CountByStatus(topics)
	fmt.Printf("Topics: %d total, %d completed, %d in progress, %d pending\n",
		counts.Total, counts.Completed, counts.InProgress, counts.Pending)
	fmt.Printf("Progress: %d%%\n", report.Progress(topics))

	due := report.TopicsNeedingRevision(topics, time.Now())
	if len(due) == 0 {
		fmt.Println("Nothing due for revision.")
		return nil
	}

	fmt.Println("Due for revision:")
	for _, t := range due {
		fmt.Printf("  %s / %s (%s)\n", t.Subject, t.TopicName, t.ID)
	}
	return nil
}
