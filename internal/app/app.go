// Package app builds the service from its configuration. Both binaries use
// it so the HTTP server, the CLI and the sweeper share one wiring.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"cleaning_assignments/internal/infrastructure/config"
	"cleaning_assignments/internal/infrastructure/metrics"
	"cleaning_assignments/internal/infrastructure/notifications"
	"cleaning_assignments/internal/usecase"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Storage  *Storage
	Notifier *notifications.MultiNotifier

	Matching      *usecase.MatchingUseCase
	Assignments   *usecase.AssignmentUseCase
	Quotes        *usecase.QuoteUseCase
	Notifications *usecase.NotificationUseCase
	Sweeper       *usecase.ExpirySweeper

	closers []func()
}

// New connects storage and notification channels and builds the use cases.
// Metrics are registered on reg; pass nil to skip them.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{Config: cfg, Logger: logger}

	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a.Storage = storage
	a.closers = append(a.closers, storage.Close)

	notifier, closeNotifier, err := buildNotifier(ctx, cfg, logger, storage.Inbox)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("build notifier: %w", err)
	}
	a.Notifier = notifier
	a.closers = append(a.closers, closeNotifier)

	var m interfaces.IAssignmentMetrics = interfaces.NopMetrics{}
	if reg != nil {
		m = metrics.NewCollector(reg)
	}

	a.Matching = usecase.NewMatchingUseCase(storage.Index,
		usecase.WithAvailabilityTimeout(cfg.AvailabilityTimeout),
		usecase.WithMatchingMetrics(m),
		usecase.WithMatchingLogger(logger),
	)
	a.Assignments = usecase.NewAssignmentUseCase(
		storage.Assignments, storage.Quotes, storage.Providers, notifier, a.Matching,
		usecase.WithMetrics(m),
		usecase.WithLogger(logger),
		usecase.WithNotifyTimeout(cfg.NotifyTimeout),
		usecase.WithAdminRecipient(cfg.AdminRecipientID),
	)
	a.Quotes = usecase.NewQuoteUseCase(storage.Quotes, logger)
	a.Notifications = usecase.NewNotificationUseCase(storage.Inbox, interfaces.SystemClock{})
	a.Sweeper = usecase.NewExpirySweeper(storage.Assignments, a.Assignments,
		usecase.WithSweepConcurrency(cfg.SweepConcurrency),
		usecase.WithSweeperMetrics(m),
		usecase.WithSweeperLogger(logger),
	)

	logger.Info("[app] ready",
		"backend", cfg.StorageBackend, "channels", notifier.Channels(), "sweep_interval", cfg.SweepInterval)
	return a, nil
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func buildNotifier(ctx context.Context, cfg config.Config, logger *slog.Logger, inbox interfaces.INotificationInbox) (*notifications.MultiNotifier, func(), error) {
	var channels []notifications.Channel
	closeAll := func() {}

	for _, name := range cfg.Channels() {
		switch name {
		case config.ChannelLog:
			channels = append(channels, notifications.Channel{Name: name, Notifier: notifications.NewLogChannel(logger)})
		case config.ChannelInbox:
			channels = append(channels, notifications.Channel{Name: name, Notifier: notifications.NewInboxChannel(inbox)})
		case config.ChannelNATS:
			nc, js, err := notifications.ConnectJetStream(ctx, cfg.NATSURL, cfg.NATSSubjectPrefix)
			if err != nil {
				closeAll()
				return nil, nil, err
			}
			prev := closeAll
			closeAll = func() {
				if err := nc.Drain(); err != nil {
					logger.Warn("[app][nats] drain failed", "err", err)
				}
				prev()
			}
			channels = append(channels, notifications.Channel{Name: name, Notifier: notifications.NewNATSChannel(js, cfg.NATSSubjectPrefix)})
		default:
			closeAll()
			return nil, nil, fmt.Errorf("unknown notification channel %q", name)
		}
	}
	return notifications.NewMultiNotifier(logger, channels...), closeAll, nil
}
