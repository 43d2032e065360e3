package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// newsletterService implements the NewsletterUsecase interface.
type newsletterService struct {
	repo     repository.NewsletterRepository
	queue    repository.NewsletterQueue
	validate *validator.Validate
	now      func() time.Time
	logger   *slog.Logger
}

// NewsletterServiceParams holds dependencies for the newsletter service, injected by Fx.
// Repo is absent when no database is configured.
type NewsletterServiceParams struct {
	fx.In

	Repo   repository.NewsletterRepository `optional:"true"`
	Queue  repository.NewsletterQueue
	Logger *slog.Logger
}

func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		repo:     params.Repo,
		queue:    params.Queue,
		validate: validator.New(),
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *newsletterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe treats an already subscribed email as success.
func (srv *newsletterService) Subscribe(ctx context.Context, email string) (*usecase.SubscribeOutput, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domainerrors.ErrEmailRequired
	}
	if err := srv.validate.Var(email, "email"); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}

	signup := entity.NewsletterSignup{Email: email, Date: srv.now().UTC()}

	if srv.repo != nil {
		err := srv.repo.Insert(ctx, &signup)
		if err == nil || errors.Is(err, repository.ErrDuplicateSignup) {
			srv.log(ctx).Info("Newsletter signup stored", slog.String("email", email))

			return &usecase.SubscribeOutput{Email: email}, nil
		}

		srv.log(ctx).Warn("Remote newsletter insert failed, queueing locally", slog.String("email", email), slog.Any("error", err))
	}

	if err := srv.queue.Enqueue(ctx, signup); err != nil {
		srv.log(ctx).Error("Failed to queue newsletter signup", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to queue newsletter signup")
	}

	return &usecase.SubscribeOutput{Email: email, QueuedLocally: true}, nil
}

// Flush stops at the first remote failure and leaves the rest queued for the next run.
func (srv *newsletterService) Flush(ctx context.Context) (int, error) {
	if srv.repo == nil {
		return 0, nil
	}

	pending, err := srv.queue.Pending(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read newsletter queue")
	}
	if len(pending) == 0 {
		return 0, nil
	}

	delivered := make([]entity.NewsletterSignup, 0, len(pending))
	for _, signup := range pending {
		record := signup
		if err := srv.repo.Insert(ctx, &record); err != nil && !errors.Is(err, repository.ErrDuplicateSignup) {
			srv.log(ctx).Warn("Newsletter replay interrupted", slog.String("email", signup.Email), slog.Any("error", err))

			break
		}
		delivered = append(delivered, signup)
	}

	if len(delivered) == 0 {
		return 0, nil
	}

	if err := srv.queue.Acknowledge(ctx, delivered); err != nil {
		return 0, errors.Wrap(err, "failed to acknowledge replayed newsletter signups")
	}

	srv.log(ctx).Info("Replayed queued newsletter signups", slog.Int("delivered", len(delivered)), slog.Int("pending", len(pending)))

	return len(delivered), nil
}

// NewsletterFlusherParams holds dependencies for the background queue replay.
type NewsletterFlusherParams struct {
	fx.In

	Lc         fx.Lifecycle
	Newsletter usecase.NewsletterUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// RegisterNewsletterFlusher runs Flush on every tick of newsletter.flushInterval between start and stop.
func RegisterNewsletterFlusher(params NewsletterFlusherParams) {
	interval := time.Minute
	if params.Config != nil && params.Config.Newsletter.FlushInterval > 0 {
		interval = params.Config.Newsletter.FlushInterval
	}

	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var runCtx context.Context
			runCtx, cancel = context.WithCancel(context.Background())

			wg.Go(func() {
				runNewsletterFlusher(runCtx, params.Newsletter, interval, params.Logger)
			})

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()

			stopCtx, stop := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer stop()

			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return errors.Wrap(stopCtx.Err(), "newsletter flusher did not stop")
			}
		},
	})
}

func runNewsletterFlusher(ctx context.Context, newsletter usecase.NewsletterUsecase, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Debug("Newsletter flusher started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := newsletter.Flush(ctx); err != nil {
				logger.Warn("Newsletter flush failed", slog.Any("error", err))
			}
		}
	}
}
