package page

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/iburimskiy/blxck-backdrop/internal/content"
)

// The debug font only has printable ASCII.
var punctuation = strings.NewReplacer(
	"¿", "?",
	"¡", "!",
	"©", "(c)",
	"—", "-",
	"–", "-",
	"“", "\"",
	"”", "\"",
	"’", "'",
)

// FoldString strips diacritics and maps the few non-ASCII symbols the copy
// uses. Anything else outside ASCII is dropped.
func FoldString(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, punctuation.Replace(s))
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, folded)
}

// Fold applies FoldString to every string of c.
func Fold(c content.Content) content.Content {
	f := FoldString
	c.Nav = content.Nav{
		Home: f(c.Nav.Home), About: f(c.Nav.About), Features: f(c.Nav.Features),
		Card: f(c.Nav.Card), FAQ: f(c.Nav.FAQ), CTA: f(c.Nav.CTA),
	}
	c.Hero = content.Hero{
		Tagline:      f(c.Hero.Tagline),
		TitleLine1:   f(c.Hero.TitleLine1),
		TitleLine2:   f(c.Hero.TitleLine2),
		Description:  f(c.Hero.Description),
		CTAPrimary:   f(c.Hero.CTAPrimary),
		CTASecondary: f(c.Hero.CTASecondary),
		Trust:        f(c.Hero.Trust),
	}

	cards := make([]content.FeatureCard, len(c.Features.Cards))
	for i, card := range c.Features.Cards {
		cards[i] = content.FeatureCard{Title: f(card.Title), Desc: f(card.Desc)}
	}
	c.Features = content.Features{Title: f(c.Features.Title), Subtitle: f(c.Features.Subtitle), Cards: cards}

	list := make([]string, len(c.CardSection.List))
	for i, item := range c.CardSection.List {
		list[i] = f(item)
	}
	c.CardSection = content.CardSection{
		Title: f(c.CardSection.Title), Subtitle: f(c.CardSection.Subtitle),
		Desc: f(c.CardSection.Desc), List: list, CTA: f(c.CardSection.CTA),
	}

	items := make([]content.FAQItem, len(c.FAQ.Items))
	for i, item := range c.FAQ.Items {
		items[i] = content.FAQItem{Question: f(item.Question), Answer: f(item.Answer)}
	}
	c.FAQ = content.FAQ{
		Title: f(c.FAQ.Title), Subtitle: f(c.FAQ.Subtitle), Items: items,
		CTA: f(c.FAQ.CTA), CTAButton: f(c.FAQ.CTAButton),
	}

	c.Footer = f(c.Footer)
	return c
}
