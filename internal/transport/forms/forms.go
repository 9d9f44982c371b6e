// Package forms implements the validation-and-sanitization pipeline for the
// create/update workflows. Parsing trims and entity-escapes every field,
// converts numeric fields, and collects ALL field errors instead of failing
// fast; the sanitized form is kept for echoing back into a re-rendered page.
package forms

import (
	"html"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CategoryForm holds the raw posted values of the category form.
type CategoryForm struct {
	Name        string
	Description string
}

// CategoryInput is a sanitized, validated category payload.
type CategoryInput struct {
	Name        string `validate:"required"`
	Description string
}

// Parse sanitizes the form in place and validates it, collecting every field
// error. A non-empty error slice means nothing may be persisted.
func (f *CategoryForm) Parse(v *validator.Validate) (CategoryInput, []FieldError) {
	f.Name = sanitize(f.Name)
	f.Description = sanitize(f.Description)

	input := CategoryInput{
		Name:        f.Name,
		Description: f.Description,
	}

	return input, validateStruct(v, input)
}

// ItemForm holds the raw posted values of the item form. Numeric fields stay
// strings until Parse converts them so that bad input can be echoed back.
type ItemForm struct {
	Name        string
	Description string
	Category    string
	Price       string
	Stock       string
}

// ItemInput is a sanitized, validated item payload.
type ItemInput struct {
	Name        string `validate:"required"`
	Description string
	CategoryID  uuid.UUID
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
}

// Parse sanitizes the form in place, converts price and stock, resolves the
// category reference, and validates, collecting every field error.
func (f *ItemForm) Parse(v *validator.Validate) (ItemInput, []FieldError) {
	f.Name = sanitize(f.Name)
	f.Description = sanitize(f.Description)
	f.Category = sanitize(f.Category)
	f.Price = strings.TrimSpace(f.Price)
	f.Stock = strings.TrimSpace(f.Stock)

	var fieldErrs []FieldError

	input := ItemInput{
		Name:        f.Name,
		Description: f.Description,
	}

	switch {
	case f.Category == "":
		fieldErrs = append(fieldErrs, FieldError{Label: "category", Message: "Category must not be empty"})
	default:
		id, err := uuid.Parse(f.Category)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Label: "category", Message: "Category must be a valid id"})
		} else {
			input.CategoryID = id
		}
	}

	switch {
	case f.Price == "":
		fieldErrs = append(fieldErrs, FieldError{Label: "price", Message: "Price must not be empty"})
	default:
		price, err := strconv.ParseFloat(f.Price, 64)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Label: "price", Message: "Price must be a non-negative number"})
		} else {
			input.Price = price
		}
	}

	switch {
	case f.Stock == "":
		fieldErrs = append(fieldErrs, FieldError{Label: "stock", Message: "Stock must not be empty"})
	default:
		stock, err := strconv.Atoi(f.Stock)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Label: "stock", Message: "Stock must be a non-negative integer"})
		} else {
			input.Stock = stock
		}
	}

	return input, append(fieldErrs, validateStruct(v, input)...)
}

// sanitize trims surrounding whitespace and escapes markup.
func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// fieldLabels maps struct field names to the form input names reported back
// to the user.
var fieldLabels = map[string]string{
	"Name":        "name",
	"Description": "description",
	"Price":       "price",
	"Stock":       "stock",
}

func validateStruct(v *validator.Validate, input any) []FieldError {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Label: "form", Message: "Invalid form submission"}}
	}

	var fieldErrs []FieldError
	for _, fieldError := range validationErrors {
		label, ok := fieldLabels[fieldError.Field()]
		if !ok {
			label = strings.ToLower(fieldError.Field())
		}

		var msg string
		switch fieldError.Tag() {
		case "required":
			msg = capitalize(label) + " must not be empty"
		case "gte":
			switch label {
			case "stock":
				msg = "Stock must be a non-negative integer"
			default:
				msg = capitalize(label) + " must be a non-negative number"
			}
		default:
			msg = "Field validation for '" + label + "' failed on the '" + fieldError.Tag() + "' tag"
		}
		fieldErrs = append(fieldErrs, FieldError{Label: label, Message: msg})
	}
	return fieldErrs
}
