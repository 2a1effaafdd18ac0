package api

import (
	"fmt"
	"strings"
)

// FoodPlate is a dish on the menu as served by the foods backend.
type FoodPlate struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// FoodPlateInput is what the add and edit forms produce: a plate without
// its id and availability.
type FoodPlateInput struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

func (in FoodPlateInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Image) == "" {
		missing = append(missing, "image")
	}
	if strings.TrimSpace(in.Price) == "" {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Plate builds an available plate with the given id from the input.
func (in FoodPlateInput) Plate(id int64) FoodPlate {
	return FoodPlate{
		ID:          id,
		Name:        in.Name,
		Image:       in.Image,
		Price:       in.Price,
		Description: in.Description,
		Available:   true,
	}
}

// Input strips the id and availability from a plate.
func (p FoodPlate) Input() FoodPlateInput {
	return FoodPlateInput{
		Name:        p.Name,
		Image:       p.Image,
		Price:       p.Price,
		Description: p.Description,
	}
}
