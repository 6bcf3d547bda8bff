package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Add prompts for the topic fields and creates a syllabus topic.
// Importance must be one of High, Medium or Low; the server rejects
// anything else.
func (a *App) Add(ctx context.Context) error {
	subject, err := getSimpleText(a.reader, "Enter subject", os.Stdout)
	if err != nil {
		return err
	}

	topicName, err := getSimpleText(a.reader, "Enter topic name", os.Stdout)
	if err != nil {
		return err
	}

	importance, err := getSimpleText(a.reader, "Enter importance (High/Medium/Low)", os.Stdout)
	if err != nil {
		return err
	}

	topic, err := a.topicService.Add(ctx, subject, topicName, importance)
	if err != nil {
		log.Printf("Adding topic unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Added topic %s (%s)\n", topic.TopicName, topic.ID)
	return nil
}
