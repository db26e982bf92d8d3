// pkg/catalog/schema.go
package catalog

// ActivityCatalog is the on-disk seed format for the activity registry.
type ActivityCatalog struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

// Activity is one seeded extracurricular offering.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// catalogSchema validates the seed file shape before any record is
// trusted. Participant uniqueness is checked separately because JSON
// Schema uniqueItems cannot report which entry repeated.
const catalogSchema = `{
	"type": "object",
	"required": ["version", "activities"],
	"properties": {
		"version": {"type": "string", "minLength": 1},
		"lastUpdated": {"type": "string"},
		"activities": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "description", "schedule", "max_participants", "participants"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"schedule": {"type": "string"},
					"max_participants": {"type": "integer", "minimum": 1},
					"participants": {
						"type": "array",
						"items": {"type": "string", "minLength": 1}
					}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`
