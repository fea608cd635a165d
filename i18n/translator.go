package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "detail" from the underlying decoder).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "not_json_value":
			return "JSON値として認識できません"
		case "invalid_number":
			return "JSONで表現できない数値です"
		case "max_depth":
			return "ネストが深すぎます"
		case "duplicate_key":
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		case "invalid_pointer":
			return "JSON Pointerが不正です"
		case "invalid_type":
			return "型が不正です"
		case "invalid_format":
			return "形式が不正です"
		}
	default: // "en"
		switch code {
		case "not_json_value":
			return "not a recognized JSON value"
		case "invalid_number":
			return "number cannot be represented in JSON"
		case "max_depth":
			return "max depth exceeded"
		case "duplicate_key":
			return "duplicate key"
		case "parse_error":
			if d := data["detail"]; d != "" {
				return "parse error: " + d
			}
			return "parse error"
		case "invalid_pointer":
			return "invalid JSON Pointer"
		case "invalid_type":
			if d := data["expected"]; d != "" {
				return "expected " + d
			}
			return "invalid type"
		case "invalid_format":
			if d := data["format"]; d != "" {
				return "invalid " + d
			}
			return "invalid format"
		}
	}
	if d := data["detail"]; d != "" {
		return d
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
