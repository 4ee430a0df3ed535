package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

type Category string

const (
	CategoryIntelligence Category = "intelligence"
	CategoryStrength     Category = "strength"
	CategorySpeed        Category = "speed"
	CategoryDurability   Category = "durability"
	CategoryPower        Category = "power"
	CategoryCombat       Category = "combat"
)

// NumCategories is the fixed number of power stats compared between heroes.
const NumCategories = 6

// categoryOrder is the canonical order categories are reported in.
var categoryOrder = [NumCategories]Category{
	CategoryIntelligence,
	CategoryStrength,
	CategorySpeed,
	CategoryDurability,
	CategoryPower,
	CategoryCombat,
}

// Categories returns the six categories in canonical order.
func Categories() [NumCategories]Category {
	return categoryOrder
}

// Winner names the hero that won a category or a comparison. The zero value
// is the tie marker.
type Winner struct {
	id HeroID
}

func Tie() Winner {
	return Winner{}
}

func WinnerOf(id HeroID) Winner {
	return Winner{id: id}
}

func (w Winner) IsTie() bool {
	return w.id == ""
}

// HeroID returns the winning hero, or "" for a tie.
func (w Winner) HeroID() HeroID {
	return w.id
}

func (w Winner) String() string {
	if w.IsTie() {
		return tieMarker
	}
	return string(w.id)
}

const tieMarker = "tie"

func (w Winner) MarshalJSON() ([]byte, error) {
	if w.IsTie() {
		return json.Marshal(tieMarker)
	}
	return w.id.MarshalJSON()
}

func (w *Winner) UnmarshalJSON(data []byte) error {
	var id HeroID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	if string(id) == tieMarker && bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		id = ""
	}
	*w = Winner{id: id}
	return nil
}

// StatNumber is a coerced stat value. NaN and infinities encode as null.
type StatNumber float64

func (n StatNumber) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func (n *StatNumber) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = StatNumber(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = StatNumber(f)
	return nil
}

type CategoryResult struct {
	Name   Category   `json:"name"`
	Winner Winner     `json:"winner"`
	ValueA StatNumber `json:"id1_value"`
	ValueB StatNumber `json:"id2_value"`
}

// ComparisonResult is the outcome of a head-to-head comparison. HeroA and
// HeroB keep the order the ids were requested in.
type ComparisonResult struct {
	HeroA         HeroID                        `json:"id1"`
	HeroB         HeroID                        `json:"id2"`
	Categories    [NumCategories]CategoryResult `json:"categories"`
	OverallWinner Winner                        `json:"overall_winner"`
}

// Wins counts category wins for each side. Ties count for neither.
func (r *ComparisonResult) Wins() (winsA, winsB int) {
	for _, c := range r.Categories {
		switch {
		case c.Winner.IsTie():
		case c.Winner.HeroID() == r.HeroA:
			winsA++
		case c.Winner.HeroID() == r.HeroB:
			winsB++
		}
	}
	return winsA, winsB
}
