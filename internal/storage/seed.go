package storage

import "github.com/DtronicE/menu-magic-offline/internal/domain"

// DefaultMenu is the sample catalog installed on first run.
func DefaultMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID:            "1",
			Name:          "Classic Burger",
			Description:   "Juicy beef patty with lettuce, tomato, onion, and our special sauce",
			Price:         12.99,
			Category:      "Burgers",
			Available:     true,
			EstimatedTime: 15,
			Allergens:     []string{"gluten", "dairy"},
			Nutrition:     domain.NutritionalInfo{Calories: 650, Protein: 30, Carbs: 45, Fat: 35},
		},
		{
			ID:            "2",
			Name:          "Margherita Pizza",
			Description:   "Fresh mozzarella, tomato sauce, and basil on our homemade dough",
			Price:         14.99,
			Category:      "Pizza",
			Available:     true,
			EstimatedTime: 20,
			Allergens:     []string{"gluten", "dairy"},
			Nutrition:     domain.NutritionalInfo{Calories: 580, Protein: 25, Carbs: 60, Fat: 22},
		},
		{
			ID:            "3",
			Name:          "Caesar Salad",
			Description:   "Crisp romaine lettuce with parmesan, croutons, and caesar dressing",
			Price:         9.99,
			Category:      "Salads",
			Available:     true,
			EstimatedTime: 8,
			Allergens:     []string{"dairy", "eggs"},
			Nutrition:     domain.NutritionalInfo{Calories: 320, Protein: 12, Carbs: 15, Fat: 25},
		},
		{
			ID:            "4",
			Name:          "Fish & Chips",
			Description:   "Beer-battered cod with crispy fries and mushy peas",
			Price:         16.99,
			Category:      "Seafood",
			Available:     false,
			EstimatedTime: 18,
			Allergens:     []string{"fish", "gluten"},
			Nutrition:     domain.NutritionalInfo{Calories: 780, Protein: 35, Carbs: 65, Fat: 42},
		},
		{
			ID:            "5",
			Name:          "Chicken Tikka Masala",
			Description:   "Tender chicken in a creamy tomato-based curry sauce with basmati rice",
			Price:         15.99,
			Category:      "Indian",
			Available:     true,
			EstimatedTime: 22,
			Allergens:     []string{"dairy"},
			Nutrition:     domain.NutritionalInfo{Calories: 520, Protein: 35, Carbs: 45, Fat: 18},
		},
		{
			ID:            "6",
			Name:          "Chocolate Brownie",
			Description:   "Warm chocolate brownie with vanilla ice cream and chocolate sauce",
			Price:         7.99,
			Category:      "Desserts",
			Available:     true,
			EstimatedTime: 5,
			Allergens:     []string{"gluten", "dairy", "eggs"},
			Nutrition:     domain.NutritionalInfo{Calories: 450, Protein: 6, Carbs: 55, Fat: 24},
		},
	}
}
