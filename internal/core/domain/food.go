package domain

type FoodCategory string

const (
	CategoryDrinks  FoodCategory = "Drinks"
	CategoryPopcorn FoodCategory = "Popcorn"
	CategoryFood    FoodCategory = "Food"
)

type FoodSize struct {
	Name          string  `json:"name"`
	PriceModifier float64 `json:"price_modifier"`
}

type FoodItem struct {
	Name     string       `json:"name"`
	Category FoodCategory `json:"category"`
	Price    float64      `json:"price"`
	Sizes    []FoodSize   `json:"sizes"`
}

// CatalogRow pairs a food item with one of its sizes. List screens render
// one row per size.
type CatalogRow struct {
	Food FoodItem
	Size FoodSize
}

// OrderedFood is a snapshot of a food selection captured at commit time.
// Quantity is always positive.
type OrderedFood struct {
	Food     FoodItem `json:"food"`
	Size     FoodSize `json:"size"`
	Quantity int      `json:"quantity"`
}

func (o OrderedFood) Total() float64 {
	return float64(o.Quantity) * (o.Food.Price + o.Size.PriceModifier)
}

// FoodCatalog owns the purchasable items and the quantities currently
// selected per item and size. Quantities are keyed by item name plus size
// name, so two items sharing a "Large" size count independently.
// FoodCatalog is not safe for concurrent use.
type FoodCatalog struct {
	items      []FoodItem
	quantities map[string]int
}

func NewFoodCatalog(items []FoodItem) *FoodCatalog {
	return &FoodCatalog{
		items:      items,
		quantities: make(map[string]int),
	}
}

func quantityKey(food FoodItem, size FoodSize) string {
	return food.Name + "/" + size.Name
}

func (c *FoodCatalog) Items() []FoodItem {
	return append([]FoodItem(nil), c.items...)
}

// FilteredItems returns the catalog rows belonging to the given category,
// in catalog order.
func (c *FoodCatalog) FilteredItems(category FoodCategory) []CatalogRow {
	var rows []CatalogRow
	for _, item := range c.items {
		if item.Category != category {
			continue
		}
		for _, size := range item.Sizes {
			rows = append(rows, CatalogRow{Food: item, Size: size})
		}
	}
	return rows
}

func (c *FoodCatalog) Quantity(food FoodItem, size FoodSize) int {
	return c.quantities[quantityKey(food, size)]
}

func (c *FoodCatalog) IncreaseQuantity(food FoodItem, size FoodSize) {
	c.quantities[quantityKey(food, size)]++
}

// DecreaseQuantity lowers the selection by one, clamped at zero.
func (c *FoodCatalog) DecreaseQuantity(food FoodItem, size FoodSize) {
	key := quantityKey(food, size)
	if c.quantities[key] > 0 {
		c.quantities[key]--
	}
}

// ResetQuantities zeroes every selection but keeps the catalog entries.
func (c *FoodCatalog) ResetQuantities() {
	c.quantities = make(map[string]int)
}

// TotalSelectedItems is the badge count: the sum of all quantities across
// all items and sizes.
func (c *FoodCatalog) TotalSelectedItems() int {
	total := 0
	for _, quantity := range c.quantities {
		total += quantity
	}
	return total
}

func (c *FoodCatalog) LineTotal(food FoodItem, size FoodSize) float64 {
	return float64(c.Quantity(food, size)) * (food.Price + size.PriceModifier)
}

// SelectedFood snapshots every selection with a nonzero quantity, in
// catalog order.
func (c *FoodCatalog) SelectedFood() []OrderedFood {
	var ordered []OrderedFood
	for _, item := range c.items {
		for _, size := range item.Sizes {
			if quantity := c.Quantity(item, size); quantity > 0 {
				ordered = append(ordered, OrderedFood{Food: item, Size: size, Quantity: quantity})
			}
		}
	}
	return ordered
}
