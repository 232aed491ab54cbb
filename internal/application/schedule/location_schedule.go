package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-view/internal/domain/usecase/weather"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
)

// LocationScheduler runs the current location fetch once when the view starts
type LocationScheduler struct {
	scheduler gocron.Scheduler
	useCase   weather.UseCase
	timeout   time.Duration
	done      chan struct{}
}

func NewLocationScheduler(useCase weather.UseCase, timeout time.Duration) (*LocationScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create startup scheduler: %w", err)
	}
	return &LocationScheduler{
		scheduler: scheduler,
		useCase:   useCase,
		timeout:   timeout,
		done:      make(chan struct{}),
	}, nil
}

// InitLocationScheduleTasks registers the startup fetch and starts the scheduler
func (s *LocationScheduler) InitLocationScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()),
		gocron.NewTask(s.FetchCurrentLocation),
		gocron.WithName("startup-current-location"),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule startup location fetch: %w", err)
	}

	s.scheduler.Start()
	return nil
}

// FetchCurrentLocation resolves the current location into the view state
func (s *LocationScheduler) FetchCurrentLocation(ctx context.Context) {
	defer close(s.done)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	log.Info(msg.GetMessage("weather.schedule.start", requestID), zap.String("request_id", requestID))

	state := s.useCase.FetchByCurrentLocation(ctx, "")
	if state.Error != "" {
		log.Warn(msg.GetMessage("weather.schedule.failed", state.ErrorKind, requestID),
			zap.String("request_id", requestID),
			zap.String("error_kind", state.ErrorKind),
		)
		return
	}

	log.Info(msg.GetMessage("weather.schedule.end", state.Sequence, requestID), zap.String("request_id", requestID))
}

// Done is closed once the startup fetch has run
func (s *LocationScheduler) Done() <-chan struct{} {
	return s.done
}

// Stop gracefully stops the scheduler
func (s *LocationScheduler) Stop() error {
	return s.scheduler.Shutdown()
}
