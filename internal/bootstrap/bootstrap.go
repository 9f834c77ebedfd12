package bootstrap

import (
	"context"
	"fmt"

	"task-scheduling-advisor/config"
	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/internal/scheduler/policy"
	"task-scheduling-advisor/internal/scheduler/repository/backend"
	"task-scheduling-advisor/internal/scheduler/usecase"
	"task-scheduling-advisor/pkg/datemath"
	"task-scheduling-advisor/pkg/gcalendar"
	"task-scheduling-advisor/pkg/log"
)

// App is the wired scheduler shared by the API server and the CLI.
type App struct {
	Logger  log.Logger
	Backend *backend.Client
	Policy  policy.Policy
	Parser  *datemath.Parser
	UseCase scheduler.UseCase
}

// NewLogger builds the zap logger from config.
func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
	})
}

// NewPolicy converts the scheduler and preference sections into a Policy.
func NewPolicy(cfg *config.Config) (policy.Policy, error) {
	loc, err := cfg.Preferences.Location()
	if err != nil {
		return policy.Policy{}, err
	}
	return policy.New(
		policy.Config{
			ConfidenceThreshold: cfg.Scheduler.ConfidenceThreshold,
			MaxSlots:            cfg.Scheduler.MaxSlots,
			MaxPayloadSlots:     cfg.Scheduler.MaxPayloadSlots,
		},
		policy.Preferences{
			Location:        loc,
			Clock24h:        cfg.Preferences.Clock24h,
			DefaultDuration: cfg.Preferences.DefaultDurationMinutes,
		},
	), nil
}

// Build wires the backend client, policy, optional calendar mirror and use case.
// A calendar that fails to initialize is logged and skipped.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	pol, err := NewPolicy(cfg)
	if err != nil {
		return nil, fmt.Errorf("policy: %w", err)
	}

	client := backend.NewClient(backend.ClientConfig{
		BaseURL:         cfg.Backend.URL,
		AccessToken:     cfg.Backend.AccessToken,
		Timeout:         cfg.Backend.Timeout,
		RateLimitPerSec: cfg.Backend.RateLimitPerSec,
		Burst:           cfg.Backend.Burst,
	})
	repo := backend.New(client, l)

	var opts []usecase.Option
	if cfg.GoogleCalendar.Enabled() {
		cal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			l.Warn(ctx, "Run `advisor calendar-auth` to generate a token")
		} else {
			opts = append(opts, usecase.WithCalendar(cal, cfg.GoogleCalendar.CalendarID))
			l.Infof(ctx, "Google Calendar mirror enabled for %s", cfg.GoogleCalendar.CalendarID)
		}
	}

	return &App{
		Logger:  l,
		Backend: client,
		Policy:  pol,
		Parser:  datemath.NewParserInLocation(pol.Preferences().Location),
		UseCase: usecase.New(l, repo, pol, opts...),
	}, nil
}
