package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kettlewell/stranded/internal/logger"
	"github.com/kettlewell/stranded/internal/world"
)

// PlaceItemRequest represents the request to place an item at a spot
type PlaceItemRequest struct {
	Spot     string `json:"spot" validate:"required,max=64"`
	ItemName string `json:"item_name" validate:"required,max=100"`
}

// InteractRequest represents the request to interact with a spot
type InteractRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Spot     string `json:"spot" validate:"required,max=64"`
}

// SpotResponse lists the placements at a spot
type SpotResponse struct {
	Spot       string      `json:"spot"`
	Placements interface{} `json:"placements"`
}

// WorldHandler handles world-related HTTP requests
type WorldHandler struct {
	worldSvc world.Service
}

// NewWorldHandler creates a new world handler
func NewWorldHandler(worldSvc world.Service) *WorldHandler {
	return &WorldHandler{
		worldSvc: worldSvc,
	}
}

// Place handles item placement
func (h *WorldHandler) Place(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlaceItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place item"); err != nil {
		return
	}

	log.Info("Place item request received", "spot", req.Spot, "item", req.ItemName)

	placement, err := h.worldSvc.PlaceItem(r.Context(), req.Spot, req.ItemName)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlaceItemFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{
		Message: MsgItemPlacedSuccess,
		Data:    placement,
	})
}

// GetSpot lists the placements at a spot
func (h *WorldHandler) GetSpot(w http.ResponseWriter, r *http.Request) {
	spot := chi.URLParam(r, "spot")

	placements, err := h.worldSvc.ListPlacements(r.Context(), spot)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSpotFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SpotResponse{
		Spot:       spot,
		Placements: placements,
	})
}

// Interact applies the items placed at a spot to a player
func (h *WorldHandler) Interact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req InteractRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Interact"); err != nil {
		return
	}

	log.Info("Interact request received", "player_id", req.PlayerID, "spot", req.Spot)

	result, err := h.worldSvc.Interact(r.Context(), req.PlayerID, req.Spot)
	if err != nil {
		respondServiceError(w, r, ErrMsgInteractFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
