package server

import (
	"encoding/json"
	"net/http"

	"github.com/homecook/cookbook/pkg/errors"
)

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// handleListCategories handles GET /api/v1/categories
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categoryService.ListCategories(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: categories})
}

// handleCreateCategory handles POST /api/v1/categories
func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeCategoryRequest(w, r)
	if !ok {
		return
	}

	dto, err := s.categoryService.CreateCategory(r.Context(), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: dto})
}

// handleRenameCategory handles PUT /api/v1/categories/{id}
func (s *Server) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeCategoryRequest(w, r)
	if !ok {
		return
	}

	dto, err := s.categoryService.RenameCategory(r.Context(), id, req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// handleDeleteCategory handles DELETE /api/v1/categories/{id}
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.categoryService.DeleteCategory(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true})
}

func (s *Server) decodeCategoryRequest(w http.ResponseWriter, r *http.Request) (categoryRequest, bool) {
	var req categoryRequest
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
