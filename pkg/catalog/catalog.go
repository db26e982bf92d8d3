// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// LoadCatalog reads and validates a JSON activity catalog from disk.
func LoadCatalog(path string) (*ActivityCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog validates raw catalog JSON against the schema and decodes it.
func ParseCatalog(data []byte) (*ActivityCatalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("catalog schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}

	var cat ActivityCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := checkIntegrity(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// checkIntegrity enforces the invariants the schema cannot express:
// unique activity names and unique participants within one activity.
func checkIntegrity(cat *ActivityCatalog) error {
	seenNames := make(map[string]bool, len(cat.Activities))
	for _, act := range cat.Activities {
		if seenNames[act.Name] {
			return fmt.Errorf("invalid catalog: duplicate activity name %q", act.Name)
		}
		seenNames[act.Name] = true

		seenEmails := make(map[string]bool, len(act.Participants))
		for _, email := range act.Participants {
			if seenEmails[email] {
				return fmt.Errorf("invalid catalog: duplicate participant %q in activity %q", email, act.Name)
			}
			seenEmails[email] = true
		}
	}
	return nil
}
