package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/domain/enum"
	"github.com/sangkips/salgaderia-api/internal/domain/repository"
	"github.com/sangkips/salgaderia-api/pkg/apperror"
	"github.com/sangkips/salgaderia-api/pkg/money"
	"github.com/sangkips/salgaderia-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Active   *bool
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	var fieldErrors []apperror.FieldError

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	category, ok := enum.ParseCategory(input.Category)
	if !ok {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "Unknown category"})
	}
	if input.Price.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product := &entity.Product{
		Name:     name,
		Category: category,
		Price:    input.Price.Round(2),
		Active:   input.Active == nil || *input.Active,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns paginated products
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	ID       uuid.UUID
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Active   *bool
}

// UpdateProduct updates a product. Reprinted tickets of past orders pick up
// the new name.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "Name is required"}})
		}
		product.Name = name
	}
	if input.Category != nil {
		category, ok := enum.ParseCategory(*input.Category)
		if !ok {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "category", Message: "Unknown category"}})
		}
		product.Category = category
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "price", Message: "Price cannot be negative"}})
		}
		product.Price = input.Price.Round(2)
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ImportProductRow represents a single row from the import sheet
type ImportProductRow struct {
	Name     string
	Category string
	Price    string
	// NumericPrice is set when Price came from a number cell and holds its
	// raw value ("1234.56") rather than the formatted text.
	NumericPrice bool
}

// ImportResult contains the result of a product import operation
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError describes an error for a specific row during import
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ReadProductSheet reads rows from the first sheet of an .xlsx workbook.
// The first row is a header; columns are name, category and price.
func ReadProductSheet(r io.Reader) ([]ImportProductRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid spreadsheet file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperror.NewBadRequestError("Spreadsheet has no sheets")
	}

	sheet := sheets[0]
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return []ImportProductRow{}, nil
	}

	out := make([]ImportProductRow, 0, len(rows)-1)
	for i, cols := range rows[1:] {
		row := ImportProductRow{
			Name:     cell(cols, 0),
			Category: cell(cols, 1),
			Price:    cell(cols, 2),
		}
		if row.Price != "" {
			row.NumericPrice, err = isNumberCell(f, sheet, 3, i+2)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func isNumberCell(f *excelize.File, sheet string, col, row int) (bool, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, err
	}
	typ, err := f.GetCellType(sheet, name)
	if err != nil {
		return false, fmt.Errorf("failed to read cell %s: %w", name, err)
	}
	// cells without a type attribute hold numbers
	return typ == excelize.CellTypeNumber || typ == excelize.CellTypeUnset, nil
}

func cell(cols []string, i int) string {
	if i < len(cols) {
		return strings.TrimSpace(cols[i])
	}
	return ""
}

// ImportProducts validates and bulk-creates products from parsed import rows.
// Invalid rows are reported and skipped; valid ones are inserted together.
func (s *ProductService) ImportProducts(ctx context.Context, rows []ImportProductRow) (*ImportResult, error) {
	result := &ImportResult{TotalRows: len(rows)}
	var rowErrors []ImportRowError
	var validProducts []entity.Product
	seenNames := make(map[string]int)

	for i, row := range rows {
		rowNum := i + 2 // row 1 is the header

		name := strings.TrimSpace(row.Name)
		if name == "" {
			rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "name", Message: "Name is required"})
			continue
		}
		key := strings.ToLower(name)
		if prevRow, exists := seenNames[key]; exists {
			rowErrors = append(rowErrors, ImportRowError{
				Row:     rowNum,
				Field:   "name",
				Message: fmt.Sprintf("Duplicate name '%s' (same as row %d)", name, prevRow),
			})
			continue
		}

		category, ok := enum.ParseCategory(row.Category)
		if !ok {
			rowErrors = append(rowErrors, ImportRowError{
				Row:     rowNum,
				Field:   "category",
				Message: fmt.Sprintf("Unknown category '%s'", row.Category),
			})
			continue
		}

		price, err := parsePrice(row)
		if err != nil || price.IsNegative() {
			rowErrors = append(rowErrors, ImportRowError{
				Row:     rowNum,
				Field:   "price",
				Message: fmt.Sprintf("Invalid price '%s'", row.Price),
			})
			continue
		}

		seenNames[key] = rowNum
		validProducts = append(validProducts, entity.Product{
			Name:     name,
			Category: category,
			Price:    price.Round(2),
			Active:   true,
		})
	}

	if len(validProducts) > 0 {
		if err := s.productRepo.CreateBatch(ctx, validProducts); err != nil {
			return nil, fmt.Errorf("failed to import products: %w", err)
		}
	}

	result.Successful = len(validProducts)
	result.Failed = len(rowErrors)
	result.Errors = rowErrors
	return result, nil
}

func parsePrice(row ImportProductRow) (decimal.Decimal, error) {
	if row.NumericPrice {
		return decimal.NewFromString(row.Price)
	}
	return money.ParseBRL(row.Price)
}
