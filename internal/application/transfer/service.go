// Package transfer provides CSV import and export of recipes
package transfer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/homecook/cookbook/internal/domain/category"
	"github.com/homecook/cookbook/internal/domain/ingredient"
	"github.com/homecook/cookbook/internal/domain/recipe"
	"github.com/homecook/cookbook/internal/ports/inbound"
	"github.com/homecook/cookbook/internal/ports/outbound"
	"github.com/homecook/cookbook/pkg/errors"
)

// csvColumns is the import/export column set, in export order
var csvColumns = []string{
	"title", "category", "description", "prep_time_minutes", "cook_time_minutes",
	"servings", "servings_unit", "ingredients", "instructions", "notes", "source",
}

// Service implements CSV recipe transfer
type Service struct {
	recipeRepo   outbound.RecipeRepository
	categoryRepo outbound.CategoryRepository
	logger       *zap.Logger
}

// NewService creates a new transfer service
func NewService(
	recipeRepo outbound.RecipeRepository,
	categoryRepo outbound.CategoryRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		recipeRepo:   recipeRepo,
		categoryRepo: categoryRepo,
		logger:       logger.Named("transfer-service"),
	}
}

var _ inbound.TransferService = (*Service)(nil)

// ImportCSV reads recipes from CSV. Rows that fail validation are reported
// in the result and skipped; the remaining rows are still imported.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*inbound.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewBadRequestError("CSV file is empty or unreadable")
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := index["title"]; !ok {
		return nil, errors.NewBadRequestError("CSV file has no title column")
	}

	result := &inbound.ImportResult{}

	// Data rows start at 2, after the header
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			result.Skipped++
			continue
		}

		row := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		if err := s.importRow(ctx, row); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNum, importErrorMessage(err)))
			result.Skipped++
			continue
		}
		result.Imported++
	}

	s.logger.Info("CSV import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

// importRow builds and persists one recipe from a CSV row
func (s *Service) importRow(ctx context.Context, row func(string) string) error {
	title := strings.TrimSpace(row("title"))
	if title == "" {
		return fmt.Errorf("Title is required")
	}

	ingredients := row("ingredients")
	instructions := strings.TrimSpace(row("instructions"))

	sectioned := ingredient.HasSections(ingredients) || ingredient.HasSections(instructions)
	if !sectioned && instructions == "" {
		return fmt.Errorf("Instructions are required")
	}

	entity, err := recipe.New(title, instructions)
	if err != nil {
		return err
	}

	if err := entity.UpdateDetails(title,
		strings.TrimSpace(row("description")),
		strings.TrimSpace(row("notes")),
		strings.TrimSpace(row("source")),
	); err != nil {
		return err
	}

	if err := entity.SetTimes(parseInt(row("prep_time_minutes")), parseInt(row("cook_time_minutes")), 0); err != nil {
		return err
	}
	if err := entity.SetServings(parseInt(row("servings")), strings.TrimSpace(row("servings_unit"))); err != nil {
		return err
	}

	if sectioned {
		sections := ingredient.AssembleSections(ingredients, instructions)
		if len(sections) == 0 {
			return fmt.Errorf("Sectioned recipe must have at least one section with instructions")
		}
		if err := entity.ReplaceSections(toDomainSections(sections)); err != nil {
			return err
		}
	} else {
		parsed := ingredient.ParseBlock(ingredients)
		if err := entity.ReplaceIngredients(toDomainIngredients(parsed)); err != nil {
			return err
		}
	}

	if name := strings.TrimSpace(row("category")); name != "" {
		id, err := s.resolveCategory(ctx, name)
		if err != nil {
			return err
		}
		entity.SetCategory(&id)
	}

	if err := entity.ValidateForSave(); err != nil {
		return err
	}

	return s.recipeRepo.Create(ctx, entity)
}

// resolveCategory finds a category by name, creating it on first use
func (s *Service) resolveCategory(ctx context.Context, name string) (id uuid.UUID, err error) {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return id, err
	}
	if existing != nil {
		return existing.ID(), nil
	}

	entity, err := category.New(name, "", 0)
	if err != nil {
		return id, err
	}
	if err := s.categoryRepo.Create(ctx, entity); err != nil {
		return id, err
	}
	return entity.ID(), nil
}

// ExportCSV writes every recipe as one CSV row, sections folded back into
// the [Section] wire format
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	recipes, _, err := s.recipeRepo.List(ctx, outbound.RecipeFilter{SortBy: "title"})
	if err != nil {
		return errors.NewDatabaseError("list recipes", err)
	}

	names := make(map[uuid.UUID]string)
	if categories, err := s.categoryRepo.List(ctx); err == nil {
		for _, c := range categories {
			names[c.ID()] = c.Name()
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return err
	}

	for _, r := range recipes {
		ingredients, instructions := exportContent(r)

		categoryName := ""
		if r.CategoryID() != nil {
			categoryName = names[*r.CategoryID()]
		}

		record := []string{
			r.Title(),
			categoryName,
			r.Description(),
			formatInt(r.PrepTimeMinutes()),
			formatInt(r.CookTimeMinutes()),
			formatInt(r.Servings()),
			r.ServingsUnit(),
			ingredients,
			instructions,
			r.Notes(),
			r.Source(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Template returns a CSV header plus one example row for each recipe shape
func (s *Service) Template() string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write(csvColumns)
	w.Write([]string{
		"Pancakes", "Breakfast", "Fluffy weekend pancakes", "10", "15",
		"4", "servings",
		"2 cups flour|2 tbsp sugar|1 1/2 cups milk|2 eggs|1 tsp vanilla (optional)",
		"Whisk the dry ingredients.\nStir in milk and eggs. Cook on a hot griddle.",
		"Rest the batter 5 minutes", "Family recipe",
	})
	w.Write([]string{
		"Cannoli", "Dessert", "", "45", "20",
		"12", "pieces",
		"[Shell]2 cups flour|1/2 cup butter[Filling]2 cups ricotta|1 cup sugar",
		"[Shell]Mix and roll the dough. Fry until golden.[Filling]Beat ricotta with sugar. Pipe into shells.",
		"", "",
	})
	w.Flush()
	return b.String()
}

// exportContent folds a recipe's content into the wire columns
func exportContent(r *recipe.Recipe) (ingredients, instructions string) {
	if r.HasSections() {
		var ingParts, insParts []string
		for _, sec := range r.Sections() {
			if len(sec.Ingredients) > 0 {
				lines := make([]string, len(sec.Ingredients))
				for i, ing := range sec.Ingredients {
					lines[i] = ing.Formatted()
				}
				ingParts = append(ingParts, "["+sec.Name+"]"+strings.Join(lines, "|"))
			}
			if sec.Instructions != "" {
				insParts = append(insParts, "["+sec.Name+"]"+sec.Instructions)
			}
		}
		return strings.Join(ingParts, ""), strings.Join(insParts, "")
	}

	lines := make([]string, len(r.Ingredients()))
	for i, ing := range r.Ingredients() {
		lines[i] = ing.Formatted()
	}
	return strings.Join(lines, "|"), r.Instructions()
}

// importErrorMessage strips structured wrapping down to the human message
func importErrorMessage(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		if appErr.Details != "" {
			return appErr.Details
		}
		return appErr.Message
	}
	return err.Error()
}

func parseInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func toDomainIngredients(parsed []ingredient.Parsed) []recipe.Ingredient {
	out := make([]recipe.Ingredient, len(parsed))
	for i, p := range parsed {
		out[i] = recipe.Ingredient{
			Quantity:    p.Quantity,
			Unit:        p.Unit,
			Name:        p.Name,
			Preparation: p.Preparation,
			Optional:    p.Optional,
			SortOrder:   i,
		}
	}
	return out
}

func toDomainSections(sections []ingredient.Section) []recipe.Section {
	out := make([]recipe.Section, len(sections))
	for i, sec := range sections {
		out[i] = recipe.Section{
			Name:         sec.Name,
			Ingredients:  toDomainIngredients(sec.Ingredients),
			Instructions: sec.Instructions,
			SortOrder:    i,
		}
	}
	return out
}
