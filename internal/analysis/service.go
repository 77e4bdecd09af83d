// Package analysis orchestrates flood risk requests: validate input, build a
// prompt, invoke the generative model, and normalize or fall back. Model
// failures are recovered here exactly once and converted to data; callers of
// this package never see them as errors.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/flood-risk-api/internal/domain"
	"github.com/couchcryptid/flood-risk-api/internal/observability"
)

// Messages returned in the response envelope.
const (
	MsgCoordinateSuccess = "Coordinate analysis completed successfully"
	MsgImageSuccess      = "Image analysis completed successfully"
	MsgSimulated         = "Analysis completed with simulated data"
)

// Request kinds, used in metrics labels and published events.
const (
	KindCoordinates = "coordinates"
	KindImage       = "image"
)

var errModelUnavailable = errors.New("model client not configured")

// ValidationError reports rejected input. It is returned before any model
// call and maps to a client error at the HTTP boundary.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// EventSink receives a record of every completed assessment.
type EventSink interface {
	Publish(ctx context.Context, event domain.AssessmentEvent) error
}

// Result is a completed analysis: the assessment plus the envelope message.
type Result struct {
	Assessment domain.RiskAssessment
	Message    string
	Simulated  bool
}

// Service handles both analysis variants against an injected model client.
type Service struct {
	model   domain.ModelClient // nil → fallback-only mode
	sink    EventSink          // nil → event publishing disabled
	cache   *assessmentCache   // nil → caching disabled
	logger  *slog.Logger
	metrics *observability.Metrics
	timeout time.Duration
	ready   atomic.Bool
}

// New creates a Service. model and sink may be nil; cacheSize <= 0 disables
// the coordinate result cache.
func New(model domain.ModelClient, sink EventSink, logger *slog.Logger, metrics *observability.Metrics, timeout time.Duration, cacheSize int) *Service {
	s := &Service{
		model:   model,
		sink:    sink,
		logger:  logger,
		metrics: metrics,
		timeout: timeout,
	}
	if cacheSize > 0 {
		s.cache = newAssessmentCache(cacheSize)
	}
	s.ready.Store(true)
	return s
}

// CheckReadiness reports whether the service can serve traffic.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("analysis service not initialized")
	}
	return nil
}

// AnalyzeCoordinates assesses flood risk for a coordinate pair. Out-of-range
// input returns a *ValidationError before any model call; every other path
// returns a complete Result and nil error.
func (s *Service) AnalyzeCoordinates(ctx context.Context, lat, lon float64) (Result, error) {
	if lat < -90 || lat > 90 {
		return Result{}, &ValidationError{Detail: fmt.Sprintf("latitude must be between -90 and 90, got %v", lat)}
	}
	if lon < -180 || lon > 180 {
		return Result{}, &ValidationError{Detail: fmt.Sprintf("longitude must be between -180 and 180, got %v", lon)}
	}

	if s.cache != nil {
		if cached, ok := s.cache.get(lat, lon); ok {
			s.metrics.CacheLookups.WithLabelValues("hit").Inc()
			return Result{Assessment: cached, Message: MsgCoordinateSuccess}, nil
		}
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	s.logger.Info("analyzing coordinates", "lat", lat, "lon", lon)

	var res Result
	text, err := s.generate(ctx, KindCoordinates, domain.CoordinatePrompt(lat, lon), nil)
	if err != nil {
		s.logger.Error("model call failed", "kind", KindCoordinates, "lat", lat, "lon", lon, "error", err)
		s.metrics.AnalysisRequests.WithLabelValues(KindCoordinates, "fallback").Inc()
		res = Result{Assessment: domain.CoordinateFallback(lat, lon), Message: MsgSimulated, Simulated: true}
	} else {
		s.metrics.AnalysisRequests.WithLabelValues(KindCoordinates, "model").Inc()
		res = Result{Assessment: domain.ParseModelResponse(text, s.logger), Message: MsgCoordinateSuccess}
		if s.cache != nil {
			s.cache.put(lat, lon, res.Assessment)
		}
	}

	s.publish(ctx, KindCoordinates, res, lat, lon)
	return res, nil
}

// AnalyzeImage assesses flood risk for a normalized JPEG raster. Upload
// validation and raster decoding happen at the HTTP boundary; this method
// only runs the model branch.
func (s *Service) AnalyzeImage(ctx context.Context, jpeg []byte) (Result, error) {
	s.logger.Info("analyzing image", "raster_bytes", len(jpeg))

	var res Result
	text, err := s.generate(ctx, KindImage, domain.ImagePrompt, jpeg)
	if err != nil {
		s.logger.Error("model call failed", "kind", KindImage, "error", err)
		s.metrics.AnalysisRequests.WithLabelValues(KindImage, "fallback").Inc()
		res = Result{Assessment: domain.ImageFallback(), Message: MsgSimulated, Simulated: true}
	} else {
		s.metrics.AnalysisRequests.WithLabelValues(KindImage, "model").Inc()
		res = Result{Assessment: domain.ParseModelResponse(text, s.logger), Message: MsgImageSuccess}
	}

	s.publish(ctx, KindImage, res, 0, 0)
	return res, nil
}

// generate calls the model with a bounded timeout. A nil jpeg selects the
// text-only variant.
func (s *Service) generate(ctx context.Context, kind, prompt string, jpeg []byte) (string, error) {
	if s.model == nil {
		return "", errModelUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	var (
		text string
		err  error
	)
	if jpeg == nil {
		text, err = s.model.GenerateText(ctx, prompt)
	} else {
		text, err = s.model.GenerateVision(ctx, prompt, jpeg)
	}
	s.metrics.ModelDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.ModelRequests.WithLabelValues(kind, "error").Inc()
		return "", err
	}
	s.metrics.ModelRequests.WithLabelValues(kind, "success").Inc()
	return text, nil
}

// publish sends an assessment event to the sink, if one is configured.
// Publish failures are logged and swallowed; they never affect the response.
func (s *Service) publish(ctx context.Context, kind string, res Result, lat, lon float64) {
	if s.sink == nil {
		return
	}
	event := domain.NewAssessmentEvent(kind, res.Assessment.RiskLevel, res.Simulated, lat, lon)
	if err := s.sink.Publish(ctx, event); err != nil {
		s.logger.Warn("publish assessment event failed", "event_id", event.ID, "error", err)
		return
	}
	s.metrics.EventsPublished.Inc()
}
