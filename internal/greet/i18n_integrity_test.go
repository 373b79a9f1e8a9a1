package greet_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmathew/go-giftsmart/internal/config"
)

// TestI18nIntegrity ensures every translation key defined in config.go
// exists in every locale file, and flags orphan keys.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyGreetHeader,
		config.TKeyGreetWish,
		config.TKeyGreetClosing,
		config.TKeyNotifTitle,
		config.TKeyNotifBody,
		config.TKeyEvtSummary,
		config.TKeySectionToday,
		config.TKeySectionWeek,
		config.TKeySectionMonth,
		config.TKeySectionFuture,
	}

	definedKeys := make(map[string]bool)
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			path := filepath.Join("locales", "active."+lang+".json")
			content, err := os.ReadFile(path)
			require.NoErrorf(t, err, "Must load %s", path)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, path)
			}

			for jsonKey := range jsonMap {
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in %s but is not checked in the test suite (might be unused)", jsonKey, path)
				}
			}
		})
	}
}
