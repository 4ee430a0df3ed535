package service

import (
	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/repository"
)

// Compare ranks two heroes category by category.
//
// The ids are validated before heroes is consulted: both must be present and
// they must differ. Either hero missing from heroes yields a NotFoundError
// naming the unresolved sides. Otherwise every category is scored with a
// strict greater-than; equal values and any comparison involving a
// non-numeric (NaN) stat are ties. The overall winner is whichever hero won
// more categories, or a tie when the counts match.
//
// Compare is pure and safe for concurrent use as long as heroes is.
func Compare(idA, idB domain.HeroID, heroes repository.HeroLookup) (*domain.ComparisonResult, error) {
	if err := ValidateComparison(idA, idB); err != nil {
		return nil, err
	}

	heroA, okA := heroes.FindByID(idA)
	heroB, okB := heroes.FindByID(idB)
	if !okA || !okB {
		notFound := &domain.NotFoundError{}
		if !okA {
			notFound.Missing = append(notFound.Missing, domain.MissingHero{Side: domain.SideA, ID: idA})
		}
		if !okB {
			notFound.Missing = append(notFound.Missing, domain.MissingHero{Side: domain.SideB, ID: idB})
		}
		return nil, notFound
	}

	result := &domain.ComparisonResult{
		HeroA: idA,
		HeroB: idB,
	}

	var winsA, winsB int
	for i, category := range domain.Categories() {
		a := heroA.Powerstats.Get(category).Float()
		b := heroB.Powerstats.Get(category).Float()

		winner := domain.Tie()
		switch {
		case a > b:
			winner = domain.WinnerOf(idA)
			winsA++
		case b > a:
			winner = domain.WinnerOf(idB)
			winsB++
		}

		result.Categories[i] = domain.CategoryResult{
			Name:   category,
			Winner: winner,
			ValueA: domain.StatNumber(a),
			ValueB: domain.StatNumber(b),
		}
	}

	switch {
	case winsA > winsB:
		result.OverallWinner = domain.WinnerOf(idA)
	case winsB > winsA:
		result.OverallWinner = domain.WinnerOf(idB)
	default:
		result.OverallWinner = domain.Tie()
	}

	return result, nil
}

// ValidateComparison checks the request shape only; it never looks heroes up.
func ValidateComparison(idA, idB domain.HeroID) error {
	if idA.IsBlank() || idB.IsBlank() {
		return &domain.ValidationError{Reason: domain.ReasonMissingIdentifier}
	}
	if idA == idB {
		return &domain.ValidationError{Reason: domain.ReasonDuplicateIdentifier}
	}
	return nil
}
