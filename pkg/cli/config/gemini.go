package config

import (
	"log/slog"

	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/infra/gemini"
	"github.com/urfave/cli/v3"
)

type Gemini struct {
	apiKey types.GeminiAPIKey `masq:"secret"`
}

func (x *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key for file uploads (optional)",
			Category:    "Gemini",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("SECONDBRAIN_GEMINI_API_KEY"),
		},
	}
}

func (x *Gemini) Enabled() bool {
	return x.apiKey != ""
}

func (x *Gemini) NewClient() (*gemini.Client, error) {
	return gemini.New(x.apiKey)
}

func (x Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("apiKey.len", len(x.apiKey)),
	)
}
