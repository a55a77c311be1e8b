package server

import (
	"encoding/json"
	"net/http"

	"github.com/homecook/cookbook/internal/domain/ingredient"
	"github.com/homecook/cookbook/internal/domain/measure"
	"github.com/homecook/cookbook/pkg/errors"
)

type convertRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Unit   string  `json:"unit" validate:"required"`
	Target string  `json:"target" validate:"omitempty,oneof=original metric"`
}

type convertResponse struct {
	Original  quantityPayload `json:"original"`
	Converted quantityPayload `json:"converted"`
}

type quantityPayload struct {
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

// handleConvert handles POST /api/v1/convert
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	target := measure.Target(req.Target)
	if target == "" {
		target = measure.TargetMetric
	}

	original := measure.Quantity{Amount: req.Amount, Unit: req.Unit}
	converted := measure.Convert(original, target)

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: convertResponse{
		Original:  toQuantityPayload(original),
		Converted: toQuantityPayload(converted),
	}})
}

type parseRequest struct {
	Text string `json:"text" validate:"required"`
}

type parseResponse struct {
	HasSections bool                 `json:"has_sections"`
	Ingredients []ingredient.Parsed  `json:"ingredients,omitempty"`
	Sections    []ingredient.Section `json:"sections,omitempty"`
}

// handleParseIngredients handles POST /api/v1/ingredients/parse. The text is
// a pipe-separated block of free-text lines, optionally with [Section]
// markers.
func (s *Server) handleParseIngredients(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	resp := parseResponse{HasSections: ingredient.HasSections(req.Text)}
	if resp.HasSections {
		resp.Sections = ingredient.ParseSectioned(req.Text)
	} else {
		resp.Ingredients = ingredient.ParseBlock(req.Text)
	}

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: resp})
}

func toQuantityPayload(q measure.Quantity) quantityPayload {
	return quantityPayload{
		Amount:  q.Amount,
		Unit:    q.Unit,
		Display: measure.FormatConverted(q),
	}
}
