package cli

import (
	"context"
	"fmt"
	"log"
)

// Done marks the topic with the given id as completed, which also stamps
// its last-studied time on the server.
func (a *App) Done(ctx context.Context, id string) error {
	topic, err := a.topicService.MarkCompleted(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Marked %s as %s\n", topic.TopicName, topic.Status)
	return nil
}
