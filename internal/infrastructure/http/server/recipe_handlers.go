package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/homecook/cookbook/internal/domain/measure"
	"github.com/homecook/cookbook/internal/ports/inbound"
	"github.com/homecook/cookbook/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// recipeRequest is the JSON payload for creating or updating a recipe.
// Ingredients is a pipe-separated block of free-text lines; [Section]
// markers switch the recipe into sectioned form.
type recipeRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"max=2000"`
	CategoryID      string `json:"category_id" validate:"omitempty,uuid4"`
	PrepTimeMinutes int    `json:"prep_time_minutes" validate:"min=0"`
	CookTimeMinutes int    `json:"cook_time_minutes" validate:"min=0"`
	RestTimeMinutes int    `json:"rest_time_minutes" validate:"min=0"`
	Servings        int    `json:"servings" validate:"min=0"`
	ServingsUnit    string `json:"servings_unit" validate:"max=50"`
	Ingredients     string `json:"ingredients"`
	Instructions    string `json:"instructions"`
	Notes           string `json:"notes"`
	Source          string `json:"source" validate:"max=255"`
}

// handleListRecipes handles GET /api/v1/recipes
func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	query := inbound.ListRecipesQuery{
		Search: r.URL.Query().Get("search"),
		SortBy: r.URL.Query().Get("sort"),
	}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.writeError(w, r, errors.NewBadRequestError("category_id must be a valid UUID"))
			return
		}
		query.CategoryID = &id
	}
	query.FavoritesOnly = r.URL.Query().Get("favorites") == "true"
	query.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	query.PageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))

	list, err := s.recipeService.ListRecipes(r.Context(), query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: list})
}

// handleCreateRecipe handles POST /api/v1/recipes
func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRecipeRequest(w, r)
	if !ok {
		return
	}

	cmd := inbound.CreateRecipeCommand{
		Title:           req.Title,
		Description:     req.Description,
		CategoryID:      parseOptionalUUID(req.CategoryID),
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		RestTimeMinutes: req.RestTimeMinutes,
		Servings:        req.Servings,
		ServingsUnit:    req.ServingsUnit,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		Notes:           req.Notes,
		Source:          req.Source,
	}

	dto, err := s.recipeService.CreateRecipe(r.Context(), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: dto})
}

// handleGetRecipe handles GET /api/v1/recipes/{id}
func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	target := measure.TargetOriginal
	if r.URL.Query().Get("units") == "metric" {
		target = measure.TargetMetric
	}

	dto, err := s.recipeService.GetRecipe(r.Context(), id, target)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// handleUpdateRecipe handles PUT /api/v1/recipes/{id}
func (s *Server) handleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeRecipeRequest(w, r)
	if !ok {
		return
	}

	cmd := inbound.UpdateRecipeCommand{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		CategoryID:      parseOptionalUUID(req.CategoryID),
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		RestTimeMinutes: req.RestTimeMinutes,
		Servings:        req.Servings,
		ServingsUnit:    req.ServingsUnit,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		Notes:           req.Notes,
		Source:          req.Source,
	}

	dto, err := s.recipeService.UpdateRecipe(r.Context(), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// handleDeleteRecipe handles DELETE /api/v1/recipes/{id}
func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.recipeService.DeleteRecipe(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true})
}

// handleToggleFavorite handles POST /api/v1/recipes/{id}/favorite
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	favorite, err := s.recipeService.ToggleFavorite(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]bool{"favorite": favorite},
	})
}

// decodeRecipeRequest decodes and validates the shared recipe payload
func (s *Server) decodeRecipeRequest(w http.ResponseWriter, r *http.Request) (recipeRequest, bool) {
	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return req, false
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, r, errors.NewValidationError(err.Error()))
		return req, false
	}
	return req, true
}

// pathID parses the {id} URL parameter
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, errors.NewBadRequestError("id must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalUUID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps application errors onto HTTP status codes
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "request failed")

	if appErr.StatusCode() >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(appErr),
		)
	}

	requestID := middleware.GetReqID(r.Context())
	s.writeJSON(w, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   errors.ToErrorResponse(appErr, requestID).Error,
	})
}
