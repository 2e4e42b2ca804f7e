package moq

import "github.com/MohamedSultan7/davinci-bakers/internal/catalog"

// SeedRules returns the wholesale quantity rules shipped with the catalog.
// Products not listed here sell in single units.
func SeedRules() []Rule {
	return []Rule{
		{ProductID: catalog.ProductButterCroissant, MinOrderQty: 6, Increment: 6, DefaultQty: 6},
		{ProductID: catalog.ProductPainAuChocolat, MinOrderQty: 6, Increment: 6, DefaultQty: 12},
		{ProductID: catalog.ProductCinnamonRoll, MinOrderQty: 4, Increment: 2, DefaultQty: 4},
		{ProductID: catalog.ProductBriocheBuns, MinOrderQty: 24, Increment: 12, DefaultQty: 24},
		{ProductID: catalog.ProductPretzelRolls, MinOrderQty: 12, Increment: 6, DefaultQty: 12},
		{ProductID: catalog.ProductBaguette, MinOrderQty: 5, Increment: 5, DefaultQty: 10},
	}
}
