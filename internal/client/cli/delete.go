package cli

import (
	"context"
	"fmt"
	"log"
)

// Delete removes the topic with the given id.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.topicService.Delete(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Topic deleted.")
	return nil
}
