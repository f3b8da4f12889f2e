package infra

import (
	"net/http"

	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
)

type Clients struct {
	httpClient   HTTPClient
	gitClient    interfaces.GitClient
	github       interfaces.GitHub
	genAI        interfaces.GenAI
	activitySink interfaces.ActivitySink
	repo         interfaces.BrainRepository
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) Git() interfaces.GitClient {
	return x.gitClient
}
func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) GenAI() interfaces.GenAI {
	return x.genAI
}
func (x *Clients) ActivitySink() interfaces.ActivitySink {
	return x.activitySink
}
func (x *Clients) Repository() interfaces.BrainRepository {
	return x.repo
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithGit(client interfaces.GitClient) Option {
	return func(x *Clients) {
		x.gitClient = client
	}
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGenAI(client interfaces.GenAI) Option {
	return func(x *Clients) {
		x.genAI = client
	}
}

func WithActivitySink(sink interfaces.ActivitySink) Option {
	return func(x *Clients) {
		x.activitySink = sink
	}
}

func WithRepository(repo interfaces.BrainRepository) Option {
	return func(x *Clients) {
		x.repo = repo
	}
}
