package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HeroID is the textual form of a hero identifier. Datasets carry ids as
// JSON numbers or strings; both decode to the same canonical text, so 1 and
// "1" name the same hero.
type HeroID string

func (id HeroID) String() string {
	return string(id)
}

// IsBlank reports whether the id is empty or whitespace only.
func (id HeroID) IsBlank() bool {
	return strings.TrimSpace(string(id)) == ""
}

// MarshalJSON writes ids in the canonical numeric form produced by
// UnmarshalJSON back as JSON numbers, so numeric ids (1, 1.5, 1e20) round
// trip as numbers. Everything else is a string.
func (id HeroID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if f, err := strconv.ParseFloat(s, 64); err == nil &&
		!math.IsNaN(f) && !math.IsInf(f, 0) &&
		strconv.FormatFloat(f, 'f', -1, 64) == s {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func (id *HeroID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = HeroID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("hero id must be a number or string: %w", err)
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("hero id %q: %w", n, err)
	}
	*id = HeroID(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

type Hero struct {
	ID         HeroID     `json:"id"`
	Name       string     `json:"name"`
	Image      string     `json:"image"`
	Powerstats Powerstats `json:"powerstats"`
}

type Powerstats struct {
	Intelligence StatValue `json:"intelligence,omitzero"`
	Strength     StatValue `json:"strength,omitzero"`
	Speed        StatValue `json:"speed,omitzero"`
	Durability   StatValue `json:"durability,omitzero"`
	Power        StatValue `json:"power,omitzero"`
	Combat       StatValue `json:"combat,omitzero"`
}

// Get returns the stat stored for c. Unknown categories yield an absent value.
func (p Powerstats) Get(c Category) StatValue {
	switch c {
	case CategoryIntelligence:
		return p.Intelligence
	case CategoryStrength:
		return p.Strength
	case CategorySpeed:
		return p.Speed
	case CategoryDurability:
		return p.Durability
	case CategoryPower:
		return p.Power
	case CategoryCombat:
		return p.Combat
	}
	return StatValue{}
}

// StatValue keeps a power stat exactly as the dataset stored it. Values are
// usually non-negative integers but nothing enforces that, so the raw JSON
// scalar is retained and coerced only when a number is needed.
type StatValue struct {
	raw json.RawMessage
}

// Stat returns a StatValue holding the number v.
func Stat(v float64) StatValue {
	return StatValue{raw: json.RawMessage(strconv.FormatFloat(v, 'f', -1, 64))}
}

// RawStat returns a StatValue holding an arbitrary JSON literal.
func RawStat(raw string) StatValue {
	return StatValue{raw: json.RawMessage(raw)}
}

// IsZero reports whether the stat was absent from the record.
func (v StatValue) IsZero() bool {
	return len(v.raw) == 0
}

// Float coerces the stat to a number:
//
//	number            -> itself
//	numeric string    -> parsed value ("" and blank strings are 0)
//	null, false       -> 0
//	true              -> 1
//	anything else     -> NaN (including an absent stat)
//
// NaN never compares greater than anything, so a NaN stat always ties.
func (v StatValue) Float() float64 {
	if len(v.raw) == 0 {
		return math.NaN()
	}

	var decoded any
	if err := json.Unmarshal(v.raw, &decoded); err != nil {
		return math.NaN()
	}

	switch t := decoded.(type) {
	case nil:
		return 0
	case bool:
		if t {
			return 1
		}
		return 0
	case float64:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}

func (v StatValue) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

func (v *StatValue) UnmarshalJSON(data []byte) error {
	v.raw = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	return nil
}
