package catalog

import "errors"

var (
	// ErrNotFound is returned when no item exists for the requested id.
	ErrNotFound = errors.New("catalog item not found")

	// ErrDuplicate is returned when an item with the same id already exists.
	ErrDuplicate = errors.New("catalog item id already exists")
)

// Item represents a sellable product in the catalog.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // Price in minor currency units
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

// UpdateParams carries a partial update; nil fields are left untouched.
type UpdateParams struct {
	Name        *string
	Price       *int64
	Image       *string
	Description *string
}

// DefaultItems returns the catalog a fresh store is seeded with.
func DefaultItems() []*Item {
	return []*Item{
		{
			ID:          "item_1",
			Name:        "Football",
			Price:       1299,
			Image:       "https://picsum.photos/seed/football/400/300",
			Description: "Official size 5 football, perfect for matches",
		},
		{
			ID:          "item_2",
			Name:        "Basketball",
			Price:       1599,
			Image:       "https://picsum.photos/seed/basketball/400/300",
			Description: "Premium basketball with excellent grip",
		},
		{
			ID:          "item_3",
			Name:        "Tennis Racket",
			Price:       4499,
			Image:       "https://picsum.photos/seed/tennis/400/300",
			Description: "Professional tennis racket for all skill levels",
		},
		{
			ID:          "item_4",
			Name:        "Running Shoes",
			Price:       6499,
			Image:       "https://picsum.photos/seed/shoes/400/300",
			Description: "Comfortable running shoes with excellent cushioning",
		},
		{
			ID:          "item_5",
			Name:        "Yoga Mat",
			Price:       1249,
			Image:       "https://picsum.photos/seed/yoga/400/300",
			Description: "Non-slip yoga mat for your workouts",
		},
		{
			ID:          "item_6",
			Name:        "Dumbbells Set",
			Price:       3999,
			Image:       "https://picsum.photos/seed/dumbbell/400/300",
			Description: "Adjustable dumbbells set (5kg-20kg)",
		},
		{
			ID:          "item_7",
			Name:        "Soccer Jersey",
			Price:       2299,
			Image:       "https://picsum.photos/seed/jersey/400/300",
			Description: "Official team jersey, 100% polyester",
		},
		{
			ID:          "item_8",
			Name:        "Bicycle Helmet",
			Price:       2999,
			Image:       "https://picsum.photos/seed/helmet/400/300",
			Description: "Safety-certified bicycle helmet",
		},
	}
}
