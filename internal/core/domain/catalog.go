package domain

// DefaultCatalog is the concession menu shipped with the app.
func DefaultCatalog() *FoodCatalog {
	return NewFoodCatalog([]FoodItem{
		{
			Name:     "Popcorn",
			Category: CategoryPopcorn,
			Price:    5.0,
			Sizes: []FoodSize{
				{Name: "Small", PriceModifier: 0},
				{Name: "Medium", PriceModifier: 0.5},
				{Name: "Large", PriceModifier: 1.0},
			},
		},
		{
			Name:     "Caramel Popcorn",
			Category: CategoryPopcorn,
			Price:    6.0,
			Sizes: []FoodSize{
				{Name: "Medium", PriceModifier: 0.5},
				{Name: "Large", PriceModifier: 1.0},
			},
		},
		{
			Name:     "Coca-Cola",
			Category: CategoryDrinks,
			Price:    3.0,
			Sizes: []FoodSize{
				{Name: "Small", PriceModifier: 0},
				{Name: "Large", PriceModifier: 0.75},
			},
		},
		{
			Name:     "Sprite",
			Category: CategoryDrinks,
			Price:    3.0,
			Sizes: []FoodSize{
				{Name: "Small", PriceModifier: 0},
				{Name: "Large", PriceModifier: 0.75},
			},
		},
		{
			Name:     "Water",
			Category: CategoryDrinks,
			Price:    2.0,
			Sizes: []FoodSize{
				{Name: "Regular", PriceModifier: 0},
			},
		},
		{
			Name:     "Nachos",
			Category: CategoryFood,
			Price:    6.5,
			Sizes: []FoodSize{
				{Name: "Regular", PriceModifier: 0},
				{Name: "Large", PriceModifier: 1.5},
			},
		},
		{
			Name:     "Hot Dog",
			Category: CategoryFood,
			Price:    5.5,
			Sizes: []FoodSize{
				{Name: "Regular", PriceModifier: 0},
			},
		},
	})
}
