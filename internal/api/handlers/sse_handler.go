package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

const (
	defaultStreamRadiusKm = 50.0
	sseHeartbeatInterval  = 30 * time.Second
)

// SSEHandler streams emergency triage events to dispatch dashboards
type SSEHandler struct {
	eventBus  providers.EventBus
	heartbeat time.Duration
	mu        sync.RWMutex
	clients   int
}

// NewSSEHandler creates a new SSE handler
func NewSSEHandler(eventBus providers.EventBus) *SSEHandler {
	return &SSEHandler{
		eventBus:  eventBus,
		heartbeat: sseHeartbeatInterval,
	}
}

// StreamEmergencies handles GET /api/stream/emergencies. With lat and lng
// only events located within radius km are sent; events without a
// location are always sent.
func (h *SSEHandler) StreamEmergencies(w http.ResponseWriter, r *http.Request) {
	region, radiusKm, err := parseRegion(r)
	if err != nil {
		respondWithAppError(w, r, err, "invalid region")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	ctx := r.Context()
	logger := observability.LoggerFromContext(ctx)
	eventChan, err := h.eventBus.Subscribe(ctx, providers.EventChannelEmergencies)
	if err != nil {
		logger.Error().Err(err).Msg("failed to subscribe to emergency channel")
		respondWithError(w, http.StatusServiceUnavailable, "event stream unavailable")
		return
	}

	// Streams outlive the server write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	h.track(1)
	defer h.track(-1)

	connected := map[string]interface{}{"timestamp": time.Now().UTC()}
	if region != nil {
		connected["lat"] = region.Latitude
		connected["lng"] = region.Longitude
		connected["radius_km"] = radiusKm
	}
	h.sendEvent(w, "connected", connected)
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("client disconnected from emergency stream")
			return
		case <-ticker.C:
			h.sendEvent(w, "heartbeat", map[string]interface{}{"timestamp": time.Now().UTC()})
			flusher.Flush()
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil || !withinRegion(event, region, radiusKm) {
				continue
			}
			h.sendEvent(w, string(event.Type), event)
			flusher.Flush()
		}
	}
}

func parseRegion(r *http.Request) (*entities.Location, float64, error) {
	query := r.URL.Query()
	var p locationPayload
	if raw := query.Get("lat"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, 0, validationError("invalid latitude parameter")
		}
		p.Lat = &lat
	}
	if raw := query.Get("lng"); raw != "" {
		lng, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, 0, validationError("invalid longitude parameter")
		}
		p.Lng = &lng
	}
	if p.Lat == nil && p.Lng == nil {
		return nil, 0, nil
	}

	region, err := validateLocation(&p)
	if err != nil {
		return nil, 0, err
	}
	radius := defaultStreamRadiusKm
	if raw := query.Get("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return nil, 0, validationError("invalid radius parameter")
		}
		radius = parsed
	}
	return region, radius, nil
}

func withinRegion(event *entities.TriageEvent, region *entities.Location, radiusKm float64) bool {
	if region == nil || event.Location == nil {
		return true
	}
	distance := providers.HaversineKm(providers.CoordinatesFrom(*region), providers.CoordinatesFrom(*event.Location))
	return distance <= radiusKm
}

func (h *SSEHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		observability.GetLogger().Error().Err(err).Msg("failed to marshal event data")
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}

func (h *SSEHandler) track(delta int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients += delta
}

// GetClientCount returns the number of connected stream clients
func (h *SSEHandler) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients
}
