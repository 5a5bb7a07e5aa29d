package i18n

import (
	"strings"
	"sync/atomic"
)

// translator retrieves localized messages for Issue codes.
// data provides the values substituted into the message template (for
// example "field", "class", "min" or "max").
type translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator looks messages up in the built-in dictionaries.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":    "Wrong type for {field} in {class} Class, expected {expected}.",
		"parse_error":     "parse error",
		"duplicate_key":   "duplicate key",
		"truncated":       "input limit exceeded",
		"required":        "No {field} in {class} Class.",
		"empty":           "Empty {field} in {class} Class.",
		"wrong_type":      "Non-{expected} type in {class} Class.",
		"invalid_nested":  "Invalid {field} in {class} Class.",
		"invalid_enum":    "Invalid {field} in {class} Class.",
		"too_small":       "{field} in {class} Class is not greater than {min}.",
		"out_of_range":    "{field} in {class} Class not in the range of {min} to {max}.",
		"invalid_element": "Invalid {variant} in {field} in {class} Class",
		"invalid_format":  "Invalid {field} format in {class} Class.",
		"data_dropped":    "Data element dropped in {class} Class: {reason}.",
	},
	"ja": {
		"invalid_type":    "{class} の {field} の型が不正です ({expected} が必要です)",
		"parse_error":     "解析エラー",
		"duplicate_key":   "キーが重複しています",
		"truncated":       "入力の上限を超えました",
		"required":        "{class} に {field} がありません",
		"empty":           "{class} の {field} が空です",
		"wrong_type":      "{class} の Type が {expected} ではありません",
		"invalid_nested":  "{class} の {field} が不正です",
		"invalid_enum":    "{class} の {field} の値が不正です",
		"too_small":       "{class} の {field} が {min} 未満です",
		"out_of_range":    "{class} の {field} が {min} から {max} の範囲外です",
		"invalid_element": "{class} の {field} に不正な {variant} があります",
		"invalid_format":  "{class} の {field} の書式が不正です",
		"data_dropped":    "{class} の Data 要素を破棄しました: {reason}",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return Expand(tmpl, data)
}

// Expand substitutes {key} placeholders in tmpl with values from data.
// Placeholders without a value are left untouched.
func Expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

type holder struct{ tr translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the message language ("en"/"ja"). Unknown languages
// fall back to English.
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// T fetches a message for the given code in the current language.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
