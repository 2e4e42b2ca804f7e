package catalog

import (
	"github.com/MohamedSultan7/davinci-bakers/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	CategoryBreads     = uuid.MustParse("6f1f5f60-0f5e-4b5a-9a11-2c1d4a8e9b01")
	CategoryPastries   = uuid.MustParse("6f1f5f60-0f5e-4b5a-9a11-2c1d4a8e9b02")
	CategoryCakes      = uuid.MustParse("6f1f5f60-0f5e-4b5a-9a11-2c1d4a8e9b03")
	CategoryGlutenFree = uuid.MustParse("6f1f5f60-0f5e-4b5a-9a11-2c1d4a8e9b04")
	CategorySandwiches = uuid.MustParse("6f1f5f60-0f5e-4b5a-9a11-2c1d4a8e9b05")
)

var (
	ProductSourdoughLoaf   = uuid.MustParse("a3b1c0d0-0001-4e00-8000-000000000001")
	ProductBaguette        = uuid.MustParse("a3b1c0d0-0001-4e00-8000-000000000002")
	ProductCiabatta        = uuid.MustParse("a3b1c0d0-0001-4e00-8000-000000000003")
	ProductButterCroissant = uuid.MustParse("a3b1c0d0-0001-4e00-8000-000000000004")
	ProductPainAuChocolat  = uuid.MustParse("a3b1c0d0-0001-4e00-8000-000000000005")
	ProductCinnamonRoll    = uuid.MustParse("a3b1c0d0-0001-4e00-8000-000000000006")
	ProductCarrotCake      = uuid.MustParse("a3b1c0d0-0001-4e00-8000-000000000007")
	ProductChocolateTorte  = uuid.MustParse("a3b1c0d0-0001-4e00-8000-000000000008")
	ProductGFBananaBread   = uuid.MustParse("a3b1c0d0-0001-4e00-8000-000000000009")
	ProductBriocheBuns     = uuid.MustParse("a3b1c0d0-0001-4e00-8000-00000000000a")
	ProductPretzelRolls    = uuid.MustParse("a3b1c0d0-0001-4e00-8000-00000000000b")
	ProductSeededRye       = uuid.MustParse("a3b1c0d0-0001-4e00-8000-00000000000c")
)

// SeedCategories returns the fixed category reference data.
func SeedCategories() []Category {
	return []Category{
		{ID: CategoryBreads, Name: "Artisan Breads"},
		{ID: CategoryPastries, Name: "Pastries"},
		{ID: CategoryCakes, Name: "Cakes & Tortes"},
		{ID: CategoryGlutenFree, Name: "Gluten Free"},
		{ID: CategorySandwiches, Name: "Sandwich Breads"},
	}
}

// SeedProducts returns the fixed product catalog. IDs are stable across
// restarts so the front end can hold references between sessions.
func SeedProducts() []Product {
	weekdays := enums.AllWeekdays()
	return []Product{
		{
			ID:            ProductSourdoughLoaf,
			SKU:           "BRD-SRD-001",
			Name:          "Classic Sourdough Loaf",
			Description:   "Naturally leavened sourdough with a 36-hour cold ferment and a deep caramelized crust.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/sourdough-loaf.jpg"},
			CategoryID:    CategoryBreads,
			CategoryName:  "Artisan Breads",
			Price:         decimal.NewFromFloat(6.50),
			Inventory:     180,
			Tags:          []string{"sourdough", "vegan", "bestseller"},
			Allergens:     []string{"gluten"},
			LeadTimeDays:  1,
			AvailableDays: weekdays,
		},
		{
			ID:            ProductBaguette,
			SKU:           "BRD-BAG-002",
			Name:          "Traditional French Baguette",
			Description:   "Crisp crust, open crumb, baked twice daily from a poolish starter.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/baguette.jpg"},
			CategoryID:    CategoryBreads,
			CategoryName:  "Artisan Breads",
			Price:         decimal.NewFromFloat(3.25),
			Inventory:     240,
			Tags:          []string{"french", "vegan"},
			Allergens:     []string{"gluten"},
			LeadTimeDays:  1,
			AvailableDays: weekdays,
		},
		{
			ID:            ProductCiabatta,
			SKU:           "BRD-CIA-003",
			Name:          "Rustic Ciabatta",
			Description:   "High-hydration Italian loaf with an airy interior, ideal for paninis.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/ciabatta.jpg"},
			CategoryID:    CategoryBreads,
			CategoryName:  "Artisan Breads",
			Price:         decimal.NewFromFloat(4.75),
			Inventory:     120,
			Tags:          []string{"italian", "vegan"},
			Allergens:     []string{"gluten"},
			LeadTimeDays:  1,
			AvailableDays: []enums.Weekday{enums.WeekdayMon, enums.WeekdayWed, enums.WeekdayFri},
		},
		{
			ID:            ProductButterCroissant,
			SKU:           "PST-CRO-001",
			Name:          "All-Butter Croissant",
			Description:   "Laminated with cultured European butter, 27 layers, baked to a glassy shatter.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/butter-croissant.jpg"},
			CategoryID:    CategoryPastries,
			CategoryName:  "Pastries",
			Price:         decimal.NewFromFloat(2.50),
			Inventory:     300,
			Tags:          []string{"breakfast", "bestseller"},
			Allergens:     []string{"gluten", "dairy", "egg"},
			LeadTimeDays:  1,
			AvailableDays: weekdays,
		},
		{
			ID:            ProductPainAuChocolat,
			SKU:           "PST-PAC-002",
			Name:          "Pain au Chocolat",
			Description:   "Croissant dough wrapped around two batons of 64% dark chocolate.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/pain-au-chocolat.jpg"},
			CategoryID:    CategoryPastries,
			CategoryName:  "Pastries",
			Price:         decimal.NewFromFloat(3.00),
			Inventory:     220,
			Tags:          []string{"breakfast", "chocolate"},
			Allergens:     []string{"gluten", "dairy", "egg", "soy"},
			LeadTimeDays:  1,
			AvailableDays: weekdays,
		},
		{
			ID:            ProductCinnamonRoll,
			SKU:           "PST-CIN-003",
			Name:          "Cinnamon Morning Roll",
			Description:   "Brioche-style roll with Saigon cinnamon and cream cheese glaze.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/cinnamon-roll.jpg"},
			CategoryID:    CategoryPastries,
			CategoryName:  "Pastries",
			Price:         decimal.NewFromFloat(3.75),
			Inventory:     140,
			Tags:          []string{"breakfast", "sweet"},
			Allergens:     []string{"gluten", "dairy", "egg"},
			LeadTimeDays:  1,
			AvailableDays: []enums.Weekday{enums.WeekdayThu, enums.WeekdayFri},
		},
		{
			ID:            ProductCarrotCake,
			SKU:           "CAK-CAR-001",
			Name:          "Whole Carrot Cake (9in)",
			Description:   "Three layers with toasted walnuts and mascarpone frosting. Serves 12.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/carrot-cake.jpg"},
			CategoryID:    CategoryCakes,
			CategoryName:  "Cakes & Tortes",
			Price:         decimal.NewFromFloat(34.00),
			Inventory:     25,
			Tags:          []string{"celebration", "nuts"},
			Allergens:     []string{"gluten", "dairy", "egg", "tree nuts"},
			LeadTimeDays:  2,
			AvailableDays: weekdays,
		},
		{
			ID:            ProductChocolateTorte,
			SKU:           "CAK-CHO-002",
			Name:          "Flourless Chocolate Torte (8in)",
			Description:   "Dense single-layer torte made with 70% couverture. Naturally gluten free.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/chocolate-torte.jpg"},
			CategoryID:    CategoryCakes,
			CategoryName:  "Cakes & Tortes",
			Price:         decimal.NewFromFloat(28.00),
			Inventory:     18,
			Tags:          []string{"celebration", "chocolate", "gluten-free"},
			Allergens:     []string{"dairy", "egg", "soy"},
			LeadTimeDays:  2,
			AvailableDays: []enums.Weekday{enums.WeekdayTue, enums.WeekdayThu},
		},
		{
			ID:            ProductGFBananaBread,
			SKU:           "GFR-BAN-001",
			Name:          "Gluten-Free Banana Bread",
			Description:   "Almond and oat flour loaf sweetened with ripe bananas and honey.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/gf-banana-bread.jpg"},
			CategoryID:    CategoryGlutenFree,
			CategoryName:  "Gluten Free",
			Price:         decimal.NewFromFloat(8.50),
			Inventory:     60,
			Tags:          []string{"gluten-free", "breakfast"},
			Allergens:     []string{"egg", "tree nuts"},
			LeadTimeDays:  1,
			AvailableDays: weekdays,
		},
		{
			ID:            ProductBriocheBuns,
			SKU:           "SND-BRI-001",
			Name:          "Brioche Burger Buns",
			Description:   "Soft enriched buns with an egg-wash shine, sold by the piece for restaurant service.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/brioche-buns.jpg"},
			CategoryID:    CategorySandwiches,
			CategoryName:  "Sandwich Breads",
			Price:         decimal.NewFromFloat(1.25),
			Inventory:     600,
			Tags:          []string{"burger", "restaurant"},
			Allergens:     []string{"gluten", "dairy", "egg"},
			LeadTimeDays:  1,
			AvailableDays: weekdays,
		},
		{
			ID:            ProductPretzelRolls,
			SKU:           "SND-PRZ-002",
			Name:          "Bavarian Pretzel Rolls",
			Description:   "Lye-dipped rolls with flaked sea salt, built for sliders and sausage service.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/pretzel-rolls.jpg"},
			CategoryID:    CategorySandwiches,
			CategoryName:  "Sandwich Breads",
			Price:         decimal.NewFromFloat(1.50),
			Inventory:     420,
			Tags:          []string{"german", "restaurant"},
			Allergens:     []string{"gluten"},
			LeadTimeDays:  1,
			AvailableDays: weekdays,
		},
		{
			ID:            ProductSeededRye,
			SKU:           "BRD-RYE-004",
			Name:          "Seeded Rye Loaf",
			Description:   "Dark rye with caraway, sunflower and flax, sliced for deli counters on request.",
			ImageURLs:     []string{"https://cdn.davincibakers.test/products/seeded-rye.jpg"},
			CategoryID:    CategoryBreads,
			CategoryName:  "Artisan Breads",
			Price:         decimal.NewFromFloat(7.00),
			Inventory:     0,
			Tags:          []string{"rye", "deli", "vegan"},
			Allergens:     []string{"gluten", "sesame"},
			LeadTimeDays:  1,
			AvailableDays: []enums.Weekday{enums.WeekdayMon, enums.WeekdayThu},
		},
	}
}
