package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

const defaultPersistTimeout = 5 * time.Second

// MessageRequest is one inbound chat message.
type MessageRequest struct {
	Text     string
	UserID   string
	Location *entities.Location
}

// TurnRecorder stores completed turns.
type TurnRecorder interface {
	Record(ctx context.Context, turn entities.ConversationTurn)
}

// TriageService runs a message through detection, branch selection and
// reply composition, then hands the turn to the recorder.
type TriageService struct {
	detector       *SymptomDetector
	conditions     *ConditionService
	guidance       *GuidanceService
	facilities     *FacilitySearchService
	recorder       TurnRecorder
	events         providers.EventBus
	persistTimeout time.Duration

	inflight sync.WaitGroup
	now      func() time.Time
}

// TriageDeps groups the collaborators of a TriageService. Recorder and
// Events may be nil.
type TriageDeps struct {
	Detector       *SymptomDetector
	Conditions     *ConditionService
	Guidance       *GuidanceService
	Facilities     *FacilitySearchService
	Recorder       TurnRecorder
	Events         providers.EventBus
	PersistTimeout time.Duration
}

// NewTriageService creates the orchestrator.
func NewTriageService(deps TriageDeps) *TriageService {
	timeout := deps.PersistTimeout
	if timeout <= 0 {
		timeout = defaultPersistTimeout
	}
	return &TriageService{
		detector:       deps.Detector,
		conditions:     deps.Conditions,
		guidance:       deps.Guidance,
		facilities:     deps.Facilities,
		recorder:       deps.Recorder,
		events:         deps.Events,
		persistTimeout: timeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// ProcessMessage always returns a turn. Internal faults produce an error
// turn instead of an error value.
func (s *TriageService) ProcessMessage(ctx context.Context, req MessageRequest) entities.ConversationTurn {
	start := time.Now()
	turn := s.respond(ctx, req)

	s.persist(ctx, turn, req.Location)

	observability.TriageTurns.WithLabelValues(string(turn.MessageType), string(turn.SymptomAnalysis.Language)).Inc()
	observability.TriageDuration.WithLabelValues(string(turn.MessageType)).Observe(time.Since(start).Seconds())
	observability.LoggerFromContext(ctx).Info().
		Str("user_id", req.UserID).
		Str("conversation_id", turn.ID).
		Str("message_type", string(turn.MessageType)).
		Str("language", string(turn.SymptomAnalysis.Language)).
		Bool("emergency", turn.IsEmergency()).
		Int("facilities", len(turn.Facilities)).
		Dur("duration", time.Since(start)).
		Msg("message processed")
	return turn
}

// Wait blocks until in-flight persistence has finished.
func (s *TriageService) Wait() {
	s.inflight.Wait()
}

func (s *TriageService) respond(ctx context.Context, req MessageRequest) (turn entities.ConversationTurn) {
	turn = entities.ConversationTurn{
		ID:                uuid.NewString(),
		UserID:            req.UserID,
		Timestamp:         s.now(),
		UserMessage:       req.Text,
		SymptomAnalysis:   entities.SymptomAnalysis{}.Normalize(),
		Facilities:        []entities.FacilityResult{},
		FollowUpQuestions: []string{},
		UrgencyLevel:      entities.UrgencyNone,
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while processing message: %v", r)
			observability.LoggerFromContext(ctx).Error().Err(err).Str("user_id", req.UserID).Msg("message processing failed")
			turn = errorTurn(turn, err)
		}
	}()

	analysis := s.detector.Analyze(ctx, req.Text)
	turn.SymptomAnalysis = analysis

	if !analysis.HasSymptoms {
		turn.MessageType = entities.MessageTypeGeneral
		turn.BotReply = s.guidance.Respond(ctx, req.Text, analysis.Language)
		return turn
	}

	prediction := s.conditions.Predict(ctx, analysis.Symptoms)
	turn.MessageType = entities.MessageTypeMedical
	turn.ConditionPrediction = prediction
	turn.UrgencyLevel = analysis.Urgency
	turn.RequiresImmediateAttention = prediction.RequiresImmediateAttention

	if analysis.Urgency == entities.UrgencyHigh || prediction.Severity == entities.SeverityHigh {
		turn.BotReply = RenderEmergencyReply(prediction, analysis.Language)
		if req.Location != nil {
			turn.Facilities = s.facilities.FindNearby(ctx, *req.Location, entities.SeverityHigh)
		}
	} else {
		turn.BotReply = RenderAdvisoryReply(prediction, analysis.Language)
		if req.Location != nil && prediction.Severity == entities.SeverityMedium {
			turn.Facilities = s.facilities.FindNearby(ctx, *req.Location, entities.SeverityMedium)
		}
	}
	turn.FollowUpQuestions = GetFollowUpQuestions(prediction.Label, analysis.Symptoms)
	return turn
}

func errorTurn(base entities.ConversationTurn, err error) entities.ConversationTurn {
	return entities.ConversationTurn{
		ID:                base.ID,
		UserID:            base.UserID,
		Timestamp:         base.Timestamp,
		UserMessage:       base.UserMessage,
		MessageType:       entities.MessageTypeError,
		SymptomAnalysis:   base.SymptomAnalysis,
		BotReply:          localized(errorReplies, base.SymptomAnalysis.Language),
		Facilities:        []entities.FacilityResult{},
		FollowUpQuestions: []string{},
		UrgencyLevel:      entities.UrgencyNone,
		Error:             err.Error(),
	}
}

// persist runs detached from the request so a disconnecting client cannot
// abort the write.
func (s *TriageService) persist(ctx context.Context, turn entities.ConversationTurn, location *entities.Location) {
	if s.recorder == nil && s.events == nil {
		return
	}
	detached := context.WithoutCancel(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		pctx, cancel := context.WithTimeout(detached, s.persistTimeout)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				observability.LoggerFromContext(pctx).Error().Interface("panic", r).Str("conversation_id", turn.ID).Msg("persisting turn panicked")
			}
		}()

		if turn.IsEmergency() && s.events != nil {
			event := entities.NewTriageEvent(entities.TriageEventEmergencyDetected, turn, location)
			if err := s.events.Publish(pctx, providers.EventChannelEmergencies, event); err != nil {
				observability.LoggerFromContext(pctx).Warn().Err(err).Str("conversation_id", turn.ID).Msg("failed to publish emergency event")
			}
		}
		if s.recorder != nil {
			s.recorder.Record(pctx, turn)
		}
	}()
}
