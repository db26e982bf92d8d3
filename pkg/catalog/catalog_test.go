// pkg/catalog/catalog_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func validCatalogJSON() string {
	return `{
		"version": "1.0.0",
		"lastUpdated": "2025-01-15",
		"activities": [
			{
				"name": "Chess Club",
				"description": "Learn strategies and compete in chess tournaments",
				"schedule": "Fridays, 3:30 PM - 5:00 PM",
				"max_participants": 12,
				"participants": ["michael@mergington.edu", "daniel@mergington.edu"]
			}
		]
	}`
}

// ==========================
// ParseCatalog Tests
// ==========================

func TestParseCatalog_ValidSeed(t *testing.T) {
	cat, err := ParseCatalog([]byte(validCatalogJSON()))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cat.Version)
	require.Len(t, cat.Activities, 1)

	chess := cat.Activities[0]
	assert.Equal(t, "Chess Club", chess.Name)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "missing version",
			json: `{"activities": []}`,
		},
		{
			name: "activity missing schedule",
			json: `{"version": "1", "activities": [
				{"name": "Chess Club", "description": "d", "max_participants": 12, "participants": []}
			]}`,
		},
		{
			name: "zero capacity",
			json: `{"version": "1", "activities": [
				{"name": "Chess Club", "description": "d", "schedule": "s", "max_participants": 0, "participants": []}
			]}`,
		},
		{
			name: "capacity as string",
			json: `{"version": "1", "activities": [
				{"name": "Chess Club", "description": "d", "schedule": "s", "max_participants": "12", "participants": []}
			]}`,
		},
		{
			name: "empty activity name",
			json: `{"version": "1", "activities": [
				{"name": "", "description": "d", "schedule": "s", "max_participants": 12, "participants": []}
			]}`,
		},
		{
			name: "unknown field",
			json: `{"version": "1", "activities": [
				{"name": "Chess Club", "description": "d", "schedule": "s", "max_participants": 12, "participants": [], "room": "x"}
			]}`,
		},
		{
			name: "not json",
			json: `version: 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.json))
			assert.Error(t, err)
		})
	}
}

func TestParseCatalog_DuplicateParticipant(t *testing.T) {
	data := `{"version": "1", "activities": [
		{"name": "Chess Club", "description": "d", "schedule": "s", "max_participants": 12,
		 "participants": ["michael@mergington.edu", "michael@mergington.edu"]}
	]}`

	_, err := ParseCatalog([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate participant")
}

func TestParseCatalog_DuplicateActivityName(t *testing.T) {
	data := `{"version": "1", "activities": [
		{"name": "Chess Club", "description": "d", "schedule": "s", "max_participants": 12, "participants": []},
		{"name": "Chess Club", "description": "d", "schedule": "s", "max_participants": 12, "participants": []}
	]}`

	_, err := ParseCatalog([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate activity name")
}

// ==========================
// LoadCatalog Tests
// ==========================

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalogJSON()), 0o644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, cat.Activities, 1)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
