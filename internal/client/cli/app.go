package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/studytrack/internal/client/api"
	"github.com/dmitrijs2005/studytrack/internal/client/config"
	"github.com/dmitrijs2005/studytrack/internal/client/services"
	"github.com/dmitrijs2005/studytrack/internal/client/session"
)

type App struct {
	config       *config.Config
	authService  services.AuthService
	topicService services.TopicService
	session      *session.Session
	reader       *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)

	sess := &session.Session{}
	as := services.NewAuthService(apiClient, sess)
	ts := services.NewTopicService(apiClient, sess)

	return &App{
		config:       c,
		authService:  as,
		topicService: ts,
		session:      sess,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// getStatus renders the prompt decoration, e.g. "(ana)" when logged in.
func (a *App) getStatus() string {
	if a.session.IsLoggedIn() {
		return fmt.Sprintf("(%s)", a.session.User.Username)
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to StudyTrack CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
