package content

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestForLanguages(t *testing.T) {
	es := For(Spanish)
	en := For(English)

	if es.Nav.Home != "Inicio" {
		t.Errorf("Expected Spanish nav home, got %q", es.Nav.Home)
	}
	if en.Nav.Home != "Home" {
		t.Errorf("Expected English nav home, got %q", en.Nav.Home)
	}

	if len(es.FAQ.Items) != len(en.FAQ.Items) {
		t.Errorf("FAQ item count differs: es=%d en=%d", len(es.FAQ.Items), len(en.FAQ.Items))
	}
	if len(es.Features.Cards) != len(en.Features.Cards) {
		t.Errorf("Feature card count differs: es=%d en=%d", len(es.Features.Cards), len(en.Features.Cards))
	}
	if len(es.CardSection.List) != len(en.CardSection.List) {
		t.Errorf("Card list count differs: es=%d en=%d", len(es.CardSection.List), len(en.CardSection.List))
	}
}

func TestForUnknownFallsBack(t *testing.T) {
	if got := For(Language("fr")); !reflect.DeepEqual(got, For(Default)) {
		t.Error("Expected unknown language to fall back to the default copy")
	}
}

func TestEveryFieldTranslated(t *testing.T) {
	for _, lang := range []Language{Spanish, English} {
		c := For(lang)
		for i, item := range c.FAQ.Items {
			if item.Question == "" || item.Answer == "" {
				t.Errorf("%s: FAQ item %d is incomplete", lang, i)
			}
		}
		for i, card := range c.Features.Cards {
			if card.Title == "" || card.Desc == "" {
				t.Errorf("%s: feature card %d is incomplete", lang, i)
			}
		}
		if c.Footer == "" || c.Hero.TitleLine1 == "" {
			t.Errorf("%s: missing hero or footer copy", lang)
		}
	}
}

func TestParseAndToggle(t *testing.T) {
	tests := []struct {
		tag    string
		want   Language
		wantOK bool
	}{
		{"", Spanish, true},
		{"es", Spanish, true},
		{"en", English, true},
		{"pt", Spanish, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := Parse(tt.tag)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Parse(%q) = %q, %v; want %q, %v", tt.tag, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if Spanish.Toggle() != English || English.Toggle() != Spanish {
		t.Error("Expected Toggle to swap es and en")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"Empty", "", 10, nil},
		{"Fits", "hola mundo", 20, []string{"hola mundo"}},
		{"Breaks on space", "hola mundo cruel", 10, []string{"hola mundo", "cruel"}},
		{"Long word cut", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"Multibyte counted as runes", "¿Qué tal?", 4, []string{"¿Qué", "tal?"}},
		{"No width", "a b", 0, []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapRespectsWidth(t *testing.T) {
	for _, item := range For(Spanish).FAQ.Items {
		for _, line := range Wrap(item.Answer, 40) {
			if n := utf8.RuneCountInString(line); n > 40 {
				t.Errorf("Line %q has %d runes, limit 40", line, n)
			}
		}
	}
}
