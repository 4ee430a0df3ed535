package mcp

import (
	"fmt"
	"strings"

	"github.com/dom/superheroes-api/internal/domain"
)

// FormatHeroMarkdown renders the fixed hero card returned by get_superhero.
func FormatHeroMarkdown(hero *domain.Hero) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here is the data for %s retrieved using the superheroes MCP:\n\n", hero.Name)
	fmt.Fprintf(&b, "• Name: %s\n", hero.Name)
	fmt.Fprintf(&b, "• Image: <img src=\"%s\" alt=\"%s\"/>\n", hero.Image, hero.Name)
	b.WriteString("• Powerstats:")
	for _, c := range domain.Categories() {
		fmt.Fprintf(&b, "\n  • %s: %s", categoryLabel(c), statText(hero.Powerstats.Get(c)))
	}
	return b.String()
}

// FormatComparison renders a comparison as plain text, one line per category.
func FormatComparison(result *domain.ComparisonResult, heroA, heroB *domain.Hero) string {
	names := map[domain.HeroID]string{
		result.HeroA: heroName(heroA, result.HeroA),
		result.HeroB: heroName(heroB, result.HeroB),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Comparison: %s (id %s) vs %s (id %s)\n\n",
		names[result.HeroA], result.HeroA, names[result.HeroB], result.HeroB)

	for _, c := range result.Categories {
		winner := "tie"
		if !c.Winner.IsTie() {
			winner = names[c.Winner.HeroID()]
		}
		fmt.Fprintf(&b, "• %s: %s vs %s → %s\n",
			categoryLabel(c.Name), numberText(c.ValueA), numberText(c.ValueB), winner)
	}

	winsA, winsB := result.Wins()
	overall := "tie"
	if !result.OverallWinner.IsTie() {
		overall = names[result.OverallWinner.HeroID()]
	}
	fmt.Fprintf(&b, "\nOverall winner: %s (%d-%d)", overall, winsA, winsB)
	return b.String()
}

func heroName(hero *domain.Hero, id domain.HeroID) string {
	if hero == nil || hero.Name == "" {
		return "hero " + id.String()
	}
	return hero.Name
}

func categoryLabel(c domain.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// statText prints the stat as stored, the way a template literal would.
func statText(v domain.StatValue) string {
	if v.IsZero() {
		return "undefined"
	}
	raw, _ := v.MarshalJSON()
	s := string(raw)
	if strings.HasPrefix(s, `"`) {
		return strings.Trim(s, `"`)
	}
	return s
}

func numberText(n domain.StatNumber) string {
	raw, _ := n.MarshalJSON()
	if string(raw) == "null" {
		return "n/a"
	}
	return string(raw)
}
