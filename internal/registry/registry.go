// Package registry holds the in-memory activity records and mediates
// all roster changes. It is the sole source of truth for the service;
// a process restart resets it to the seed data.
package registry

import (
	"fmt"
	"sync"

	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"

	"mergington-activities/pkg/catalog"
)

// Activity is one extracurricular offering. The name is the registry
// key and is not stored redundantly inside the record.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registry is the keyed container of all activities. All operations
// serialize behind one lock so every check-then-mutate step is atomic.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
	order      []string
	logger     logger.Logger
}

// NewFromCatalog builds a seeded registry from a validated catalog.
func NewFromCatalog(cat *catalog.ActivityCatalog, log logger.Logger) (*Registry, error) {
	r := &Registry{
		activities: make(map[string]*Activity, len(cat.Activities)),
		order:      make([]string, 0, len(cat.Activities)),
		logger:     log.WithFields(map[string]interface{}{"component": "registry"}),
	}

	for _, act := range cat.Activities {
		if _, exists := r.activities[act.Name]; exists {
			return nil, fmt.Errorf("duplicate activity in seed: %q", act.Name)
		}
		participants := make([]string, len(act.Participants))
		copy(participants, act.Participants)

		r.activities[act.Name] = &Activity{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    participants,
		}
		r.order = append(r.order, act.Name)
	}

	r.logger.Info("registry seeded", map[string]interface{}{
		"activityCount":  len(r.order),
		"catalogVersion": cat.Version,
	})
	return r, nil
}

// ListAll returns a snapshot of the full name-to-record mapping. The
// copy keeps callers from mutating shared participant slices.
func (r *Registry) ListAll() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		out[name] = act.snapshot()
	}
	return out
}

// Get returns a snapshot of one activity record.
func (r *Registry) Get(activityName string) (Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	act, exists := r.activities[activityName]
	if !exists {
		return Activity{}, false
	}
	return act.snapshot(), true
}

// Names returns the activity names in seed order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Join appends email to the activity's roster. The name must match an
// existing key exactly (case-sensitive); the email is an opaque string.
// MaxParticipants is advisory and deliberately not enforced here.
func (r *Registry) Join(activityName, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, exists := r.activities[activityName]
	if !exists {
		return "", errors.NewActivityNotFoundError(activityName)
	}

	for _, existing := range act.Participants {
		if existing == email {
			return "", errors.NewDuplicateSignupError(activityName, email)
		}
	}

	act.Participants = append(act.Participants, email)

	r.logger.Info("participant joined", map[string]interface{}{
		"activity":   activityName,
		"email":      email,
		"rosterSize": len(act.Participants),
	})
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Leave removes exactly the one matching roster entry, preserving the
// order of the remaining participants.
func (r *Registry) Leave(activityName, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, exists := r.activities[activityName]
	if !exists {
		return "", errors.NewActivityNotFoundError(activityName)
	}

	idx := -1
	for i, existing := range act.Participants {
		if existing == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", errors.NewNotRegisteredError(activityName, email)
	}

	act.Participants = append(act.Participants[:idx], act.Participants[idx+1:]...)

	r.logger.Info("participant left", map[string]interface{}{
		"activity":   activityName,
		"email":      email,
		"rosterSize": len(act.Participants),
	})
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

// RosterSize returns the current participant count for an activity.
func (r *Registry) RosterSize(activityName string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	act, exists := r.activities[activityName]
	if !exists {
		return 0, false
	}
	return len(act.Participants), true
}

func (a *Activity) snapshot() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}
