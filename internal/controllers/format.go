package controllers

import (
	"fmt"

	"github.com/shopspring/decimal"

	"menu-manager/internal/models"
)

// PriceFormatter renders amounts with a literal currency prefix and two decimals
type PriceFormatter struct {
	Currency string
}

func (f PriceFormatter) Format(amount decimal.Decimal) string {
	return f.Currency + amount.StringFixed(2)
}

// DishRow is the display form of a dish shared by the listing screens
type DishRow struct {
	ID          string
	Name        string
	Description string
	Course      models.Course
	Price       string
}

func newDishRow(dish models.Dish, format PriceFormatter) DishRow {
	return DishRow{
		ID:          dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		Course:      dish.Course,
		Price:       format.Format(dish.Price),
	}
}

// Line is the full listing text, e.g. "Soup [Tomato] - R25.00 (starter)"
func (r DishRow) Line() string {
	if r.Description == "" {
		return fmt.Sprintf("%s - %s (%s)", r.Name, r.Price, r.Course)
	}
	return fmt.Sprintf("%s [%s] - %s (%s)", r.Name, r.Description, r.Price, r.Course)
}

// ShortLine omits description and course, e.g. "Soup - R25.00"
func (r DishRow) ShortLine() string {
	return fmt.Sprintf("%s - %s", r.Name, r.Price)
}
