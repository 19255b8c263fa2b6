package i18n

import (
	"sync/atomic"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

var messages = map[language.Tag]map[string]string{
	language.English: {
		"invalid_type":          "invalid type",
		"required":              "required property missing",
		"invalid_format":        "invalid format",
		"invalid_enum":          "value not allowed",
		"discriminator_missing": "discriminator missing",
		"discriminator_unknown": "unsupported variant",
		"mutually_exclusive":    "mutually exclusive properties",
		"duplicate_key":         "duplicate key",
		"too_deep":              "nesting too deep",
		"too_big":               "document too large",
		"parse_error":           "parse error",
	},
	language.Japanese: {
		"invalid_type":          "型が不正です",
		"required":              "必須プロパティが不足しています",
		"invalid_format":        "形式が不正です",
		"invalid_enum":          "許可されていない値です",
		"discriminator_missing": "判別子がありません",
		"discriminator_unknown": "未対応の種別です",
		"mutually_exclusive":    "同時に指定できないプロパティです",
		"duplicate_key":         "キーが重複しています",
		"too_deep":              "入れ子が深すぎます",
		"too_big":               "文書が大きすぎます",
		"parse_error":           "解析エラー",
	},
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Japanese})

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang language.Tag }

func (t dictTranslator) Message(code string, _ map[string]string) string {
	if m, ok := messages[t.lang][code]; ok {
		return m
	}
	return code
}

var currentTranslator atomic.Value // Translator

func init() { currentTranslator.Store(holder{dictTranslator{lang: language.English}}) }

// holder keeps atomic.Value's concrete type stable across Translator
// implementations.
type holder struct{ Translator }

// SetLanguage switches the built-in Translator to the closest supported
// language for a BCP 47 tag such as "ja-JP"; unknown tags fall back to English.
func SetLanguage(lang string) {
	_, idx, _ := matcher.Match(language.Make(lang))
	tag := language.English
	if idx == 1 {
		tag = language.Japanese
	}
	currentTranslator.Store(holder{dictTranslator{lang: tag}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: language.English}
	}
	currentTranslator.Store(holder{tr})
}

// Current returns the Translator in use.
func Current() Translator { return currentTranslator.Load().(holder).Translator }

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Load().(holder).Message(code, data)
}
