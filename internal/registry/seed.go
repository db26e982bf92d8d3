package registry

import (
	"mergington-activities/internal/common/logger"
	"mergington-activities/pkg/catalog"
)

// DefaultSeed returns the compiled-in activity catalog used when no
// seed file is configured. The records mirror the school's published
// activity list; restarts always reset the registry to this data.
func DefaultSeed() *catalog.ActivityCatalog {
	return &catalog.ActivityCatalog{
		Version:     "1.0.0",
		LastUpdated: "2025-01-15",
		Activities: []catalog.Activity{
			{
				Name:            "Chess Club",
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
			{
				Name:            "Programming Class",
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
			{
				Name:            "Gym Class",
				Description:     "Physical education and sports activities",
				Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
			{
				Name:            "Soccer Team",
				Description:     "Join the school soccer team for practice and matches",
				Schedule:        "Mondays and Thursdays, 4:00 PM - 6:00 PM",
				MaxParticipants: 20,
				Participants:    []string{"alex@mergington.edu", "lisa@mergington.edu"},
			},
			{
				Name:            "Basketball Club",
				Description:     "Pickup games and skill development for basketball players",
				Schedule:        "Tuesdays and Fridays, 4:15 PM - 6:00 PM",
				MaxParticipants: 15,
				Participants:    []string{"matt@mergington.edu", "nina@mergington.edu"},
			},
			{
				Name:            "Art Club",
				Description:     "Explore drawing, painting, and mixed media",
				Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 20,
				Participants:    []string{"ava@mergington.edu", "lucas@mergington.edu"},
			},
			{
				Name:            "Drama Club",
				Description:     "Acting, stagecraft, and school productions",
				Schedule:        "Thursdays, 4:00 PM - 6:00 PM",
				MaxParticipants: 25,
				Participants:    []string{"mia@mergington.edu", "ethan@mergington.edu"},
			},
			{
				Name:            "Debate Team",
				Description:     "Competitive debate and public speaking practice",
				Schedule:        "Mondays, 4:30 PM - 6:00 PM",
				MaxParticipants: 18,
				Participants:    []string{"oliver@mergington.edu", "charlotte@mergington.edu"},
			},
			{
				Name:            "Science Club",
				Description:     "Hands-on experiments, projects, and science fairs",
				Schedule:        "Fridays, 3:30 PM - 4:30 PM",
				MaxParticipants: 25,
				Participants:    []string{"liam@mergington.edu", "amelia@mergington.edu"},
			},
		},
	}
}

// Load builds the registry from the configured seed path, falling back
// to the compiled-in seed when no path is set.
func Load(seedPath string, log logger.Logger) (*Registry, error) {
	if seedPath == "" {
		return NewFromCatalog(DefaultSeed(), log)
	}

	cat, err := catalog.LoadCatalog(seedPath)
	if err != nil {
		return nil, err
	}
	return NewFromCatalog(cat, log)
}
