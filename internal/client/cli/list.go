package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/client/report"
)

// List prints the user's topics ordered by importance, with a revision
// reminder where the topic has study history.
func (a *App) List(ctx context.Context) error {
	topics, err := a.topicService.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(topics) == 0 {
		fmt.Println("No topics yet. Use 'add' to create one.")
		return nil
	}

	now := time.Now()
	for _, t := range report.SortByImportance(topics) {
		line := fmt.Sprintf("%s  [%s] %s / %s (%s)", t.ID, t.Importance, t.Subject, t.TopicName, t.Status)
		if msg := report.RevisionMessage(t, now); msg != "" {
			line += "  " + msg
		}
		fmt.Println(line)
	}
	return nil
}
