package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgHeroNotFound      = "Superhero not found"
	msgCompareMissingIDs = "Both id1 and id2 query parameters are required"
	msgCompareSameIDs    = "id1 and id2 must be different"
	msgCompareNotFound   = "One or both superheroes not found"
	msgInternalError     = "Internal Server Error"
)

// HeroService is the part of service.HeroService the handlers call.
type HeroService interface {
	ListHeroes(ctx context.Context) []*domain.Hero
	GetHero(ctx context.Context, id domain.HeroID) (*domain.Hero, error)
	GetPowerstats(ctx context.Context, id domain.HeroID) (domain.Powerstats, error)
	Compare(ctx context.Context, idA, idB domain.HeroID) (*domain.ComparisonResult, error)
}

var _ HeroService = (*service.HeroService)(nil)

type HeroHandler struct {
	heroService HeroService
	logger      *zap.Logger
}

func NewHeroHandler(heroService HeroService, logger *zap.Logger) *HeroHandler {
	return &HeroHandler{
		heroService: heroService,
		logger:      logger,
	}
}

func (h *HeroHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Save the World!"))
}

func (h *HeroHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	heroes := h.heroService.ListHeroes(r.Context())
	writeJSON(w, http.StatusOK, heroes)
}

func (h *HeroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := domain.HeroID(chi.URLParam(r, "id"))

	hero, err := h.heroService.GetHero(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, "hero.Get", id, err)
		return
	}

	writeJSON(w, http.StatusOK, hero)
}

func (h *HeroHandler) GetPowerstats(w http.ResponseWriter, r *http.Request) {
	id := domain.HeroID(chi.URLParam(r, "id"))

	stats, err := h.heroService.GetPowerstats(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, "hero.GetPowerstats", id, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Compare serves GET /compare?id1=&id2=.
func (h *HeroHandler) Compare(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	idA := domain.HeroID(strings.TrimSpace(query.Get("id1")))
	idB := domain.HeroID(strings.TrimSpace(query.Get("id2")))

	result, err := h.heroService.Compare(r.Context(), idA, idB)
	if err != nil {
		var validationErr *domain.ValidationError
		var notFoundErr *domain.NotFoundError
		switch {
		case errors.As(err, &validationErr):
			msg := msgCompareMissingIDs
			if validationErr.Reason == domain.ReasonDuplicateIdentifier {
				msg = msgCompareSameIDs
			}
			writeJSONError(w, http.StatusBadRequest, msg)
		case errors.As(err, &notFoundErr):
			writeJSONError(w, http.StatusNotFound, msgCompareNotFound)
		default:
			h.logger.Error("Compare failed",
				zap.String("handler", "hero.Compare"),
				zap.String("id1", idA.String()),
				zap.String("id2", idB.String()),
				zap.Error(err),
			)
			writeJSONError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *HeroHandler) writeLookupError(w http.ResponseWriter, handler string, id domain.HeroID, err error) {
	if errors.Is(err, domain.ErrHeroNotFound) {
		http.Error(w, msgHeroNotFound, http.StatusNotFound)
		return
	}
	h.logger.Error("Hero lookup failed",
		zap.String("handler", handler),
		zap.String("id", id.String()),
		zap.Error(err),
	)
	http.Error(w, msgInternalError, http.StatusInternalServerError)
}
