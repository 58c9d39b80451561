package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kettlewell/stranded/internal/domain"
	"github.com/kettlewell/stranded/internal/logger"
	"github.com/kettlewell/stranded/internal/player"
)

// RegisterPlayerRequest represents the request to register a new player
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,max=32"`
	Policy   string `json:"policy" validate:"policy"`
}

// GrantRequest represents the request to adjust a player's counters
type GrantRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Food     int    `json:"food"`
	Water    int    `json:"water"`
	Gold     int    `json:"gold"`
}

// PlayerHandler handles player-related HTTP requests
type PlayerHandler struct {
	playerSvc player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerSvc player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerSvc: playerSvc,
	}
}

// Register handles player registration
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
		return
	}

	log.Info("Register player request received", "username", req.Username)

	p, err := h.playerSvc.RegisterPlayer(r.Context(), req.Username, domain.ResourcePolicy(req.Policy))
	if err != nil {
		respondServiceError(w, r, ErrMsgRegisterPlayerFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

// Get returns a player by ID
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "id")

	p, err := h.playerSvc.GetPlayer(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPlayerFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// GetByUsername returns a player by the username query parameter
func (h *PlayerHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username, ok := GetQueryParam(r, w, "username")
	if !ok {
		return
	}

	p, err := h.playerSvc.GetPlayerByUsername(r.Context(), username)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPlayerFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Grant adjusts a player's resource counters
func (h *PlayerHandler) Grant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req GrantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant resources"); err != nil {
		return
	}

	log.Info("Grant request received",
		"player_id", req.PlayerID,
		"food", req.Food,
		"water", req.Water,
		"gold", req.Gold)

	p, err := h.playerSvc.Grant(r.Context(), req.PlayerID, req.Food, req.Water, req.Gold)
	if err != nil {
		respondServiceError(w, r, ErrMsgGrantFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}
