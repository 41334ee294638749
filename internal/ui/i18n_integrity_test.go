package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-profile/internal/config"
)

// keysToCheck lists every translation key referenced from Go code.
var keysToCheck = append([]string{
	config.TKeyWinSettings,
	config.TKeyWinStaff,
	config.TKeyWinEditor,
	config.TKeyMenuRefresh,
	config.TKeyMenuSettings,
	config.TKeyMenuStaff,
	config.TKeyTrayStatus,
	config.TKeyTrayStatusZero,
	config.TKeyNotifStart,
	config.TKeyNotifSuccess,
	config.TKeyNotifError,
	config.TKeyModeCardDAV,
	config.TKeyModeLocal,
	config.TKeyLblLanguage,
	config.TKeyHelpLanguage,
	config.TKeyLblMinutes,
	config.TKeyLblRefresh,
	config.TKeyHelpInterval,
	config.TKeyLblPort,
	config.TKeyHelpPort,
	config.TKeyLblGeneral,
	config.TKeyBtnSave,
	config.TKeyBtnCancel,
	config.TKeyBtnAdd,
	config.TKeyBtnBrowse,
	config.TKeyLblFooter,
	config.TKeyLblURL,
	config.TKeyHelpURL,
	config.TKeyLblUser,
	config.TKeyLblPass,
	config.TKeyLblSource,
	config.TKeyLblName,
	config.TKeyLblEmail,
	config.TKeyLblPhone,
	config.TKeyLblTitle,
	config.TKeyLblBirthDate,
	config.TKeyHelpBirthDate,
	config.TKeyLblProfile,
	config.TKeyErrNameReq,
	config.TKeyErrBirthDate,
	config.TKeyNewStaffName,
	config.TKeyEvtSummary,
	config.TKeyColName,
	config.TKeyColBirthDate,
	config.TKeyColCompleteness,
	config.TKeyDataSelectorDay,
	config.TKeyDataSelectorMonth,
	config.TKeyDataSelectorYear,
	config.TKeyErrPortReq,
	config.TKeyErrPortNum,
	config.TKeyErrPortRange,
}, config.MonthKeys[:]...)

func loadLocale(t *testing.T, lang string) map[string]any {
	t.Helper()
	name := "active." + lang + ".json"

	path := filepath.Join("locales", name)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = filepath.Join("..", "..", "internal", "ui", "locales", name)
		content, err = os.ReadFile(path)
	}
	require.NoErrorf(t, err, "Must load %s", name)

	var jsonMap map[string]any
	require.NoErrorf(t, json.Unmarshal(content, &jsonMap), "%s must be valid JSON", name)
	return jsonMap
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in each locale file.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool, len(keysToCheck))
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			jsonMap := loadLocale(t, lang)

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}

// TestI18nMonthKeysDistinct guards against two months sharing a label.
func TestI18nMonthKeysDistinct(t *testing.T) {
	for _, lang := range config.SupportedLanguages {
		jsonMap := loadLocale(t, lang)
		seen := map[any]string{}
		for _, k := range config.MonthKeys {
			label := jsonMap[k]
			if prev, dup := seen[label]; dup {
				t.Errorf("%s: %s and %s share the label %v", lang, prev, k, label)
			}
			seen[label] = k
		}
	}
}
