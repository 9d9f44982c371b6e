package app

import (
	"inventory-app/config"
	"inventory-app/internal/services"

	"github.com/go-playground/validator/v10"
)

// Application holds core application dependencies.
type Application struct {
	Config     *config.Config
	Categories services.CategoryService
	Items      services.ItemService
	Validator  *validator.Validate
}
