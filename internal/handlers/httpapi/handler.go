package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"careerparty/internal/models"
	"careerparty/internal/repositories/catalog"
)

// Config holds configuration for the HTTP API handler
type Config struct {
	// CatalogRepo backs the read-only card endpoints
	CatalogRepo catalog.Repository
}

// Handler serves the public read-only card catalog endpoints
type Handler struct {
	catalogRepo catalog.Repository
}

// New creates a new HTTP API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.CatalogRepo == nil {
		return nil, errors.New("catalog repository cannot be nil")
	}

	return &Handler{catalogRepo: cfg.CatalogRepo}, nil
}

// Register mounts the card endpoints on the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/cards/jobs", h.handleJobs)
	mux.HandleFunc("GET /api/cards/skills", h.handleSkills)
	mux.HandleFunc("GET /api/cards/missions", h.handleMissions)
}

func (h *Handler) handleJobs(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogRepo.ListJobCards(r.Context(), &catalog.ListJobCardsInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, out.Cards)
}

func (h *Handler) handleSkills(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogRepo.ListSkillCards(r.Context(), &catalog.ListSkillCardsInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, out.Cards)
}

// handleMissions returns the regular and special missions together,
// regular first
func (h *Handler) handleMissions(w http.ResponseWriter, r *http.Request) {
	regular, err := h.catalogRepo.ListMissions(r.Context(), &catalog.ListMissionsInput{IsSpecial: false})
	if err != nil {
		writeError(w, err)
		return
	}

	specials, err := h.catalogRepo.ListMissions(r.Context(), &catalog.ListMissionsInput{IsSpecial: true})
	if err != nil {
		writeError(w, err)
		return
	}

	cards := make([]*models.Card, 0, len(regular.Cards)+len(specials.Cards))
	cards = append(cards, regular.Cards...)
	cards = append(cards, specials.Cards...)

	writeData(w, cards)
}

// envelope is the {ok, data} wrapper every endpoint responds with
type envelope struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(&envelope{OK: true, Data: data}); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	log.Printf("Catalog API error: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(&envelope{OK: false, Error: "internal error"})
}
