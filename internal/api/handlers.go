package api

import (
	"encoding/json"
	"net/http"

	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/internal/registry"
)

// Handlers serves the activities API against one shared registry.
type Handlers struct {
	registry     *registry.Registry
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandlers(reg *registry.Registry, log logger.Logger) *Handlers {
	return &Handlers{
		registry:     reg,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// ListActivities handles GET /activities.
func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.ListAll())
}

// Signup handles POST /activities/{name}/signup.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("name")

	email := r.URL.Query().Get("email")
	if email == "" {
		h.errorHandler.HandleRequestError(w, r, errors.NewMissingEmailError())
		return
	}

	message, err := h.registry.Join(activityName, email)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(activityName, outcomeFor(err)).Inc()
		h.errorHandler.HandleRequestError(w, r, err)
		return
	}

	metrics.SignupsTotal.WithLabelValues(activityName, "success").Inc()
	h.updateRosterGauge(activityName)
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// Unregister handles DELETE /activities/{name}/unregister.
func (h *Handlers) Unregister(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("name")

	email := r.URL.Query().Get("email")
	if email == "" {
		h.errorHandler.HandleRequestError(w, r, errors.NewMissingEmailError())
		return
	}

	message, err := h.registry.Leave(activityName, email)
	if err != nil {
		metrics.UnregistersTotal.WithLabelValues(activityName, outcomeFor(err)).Inc()
		h.errorHandler.HandleRequestError(w, r, err)
		return
	}

	metrics.UnregistersTotal.WithLabelValues(activityName, "success").Inc()
	h.updateRosterGauge(activityName)
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// Root handles GET / with a redirect to the static landing page.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handlers) updateRosterGauge(activityName string) {
	if size, ok := h.registry.RosterSize(activityName); ok {
		metrics.RosterSize.WithLabelValues(activityName).Set(float64(size))
	}
}

func outcomeFor(err error) string {
	if stdErr, ok := err.(*errors.StandardError); ok {
		switch stdErr.Code {
		case errors.ErrCodeActivityNotFound:
			return "not_found"
		case errors.ErrCodeDuplicateSignup:
			return "duplicate"
		case errors.ErrCodeNotRegistered:
			return "not_registered"
		}
	}
	return "error"
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
