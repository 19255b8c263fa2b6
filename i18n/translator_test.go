package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg != "invalid type" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja-JP")
	if msg := T("discriminator_unknown", nil); msg != "未対応の種別です" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownFallsBack(t *testing.T) {
	SetLanguage("xx-unknown")
	defer SetLanguage("en")
	if msg := T("mutually_exclusive", nil); msg != "mutually exclusive properties" {
		t.Fatalf("expected english fallback, got %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("required", nil); msg != "X:required" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
}

func TestCurrent_RestoresPrevious(t *testing.T) {
	prev := Current()
	SetLanguage("ja")
	if msg := T("required", nil); msg != "必須プロパティが不足しています" {
		t.Fatalf("expected japanese message, got %q", msg)
	}
	SetTranslator(prev)
	if msg := T("required", nil); msg != "required property missing" {
		t.Fatalf("expected english message after restore, got %q", msg)
	}
}
