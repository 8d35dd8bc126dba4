package viewstate

import (
	"github.com/iburimskiy/blxck-backdrop/internal/content"
	"github.com/iburimskiy/blxck-backdrop/internal/theme"
)

// UI holds the page-level selections: language, theme and which FAQ items
// are expanded. Items open and close independently.
type UI struct {
	lang  content.Language
	theme theme.Theme
	faq   []bool
}

func NewUI(lang content.Language, th theme.Theme, faqItems int) *UI {
	if faqItems < 0 {
		faqItems = 0
	}
	return &UI{lang: lang, theme: th, faq: make([]bool, faqItems)}
}

func (u *UI) Language() content.Language { return u.lang }

func (u *UI) ToggleLanguage() content.Language {
	u.lang = u.lang.Toggle()
	return u.lang
}

// Content is the copy for the current language.
func (u *UI) Content() content.Content { return content.For(u.lang) }

func (u *UI) Theme() theme.Theme { return u.theme }

func (u *UI) ToggleTheme() theme.Theme {
	u.theme = u.theme.Toggle()
	return u.theme
}

// ToggleFAQ flips item i and reports whether it is now open. Out of range
// indices are ignored.
func (u *UI) ToggleFAQ(i int) bool {
	if i < 0 || i >= len(u.faq) {
		return false
	}
	u.faq[i] = !u.faq[i]
	return u.faq[i]
}

func (u *UI) FAQOpen(i int) bool {
	return i >= 0 && i < len(u.faq) && u.faq[i]
}
