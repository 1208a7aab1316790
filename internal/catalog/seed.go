package catalog

import (
	"github.com/lumastudio/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

func pexels(path string) string {
	return "https://images.pexels.com/photos/" + path + "?auto=compress&cs=tinysrgb&w=800"
}

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Seed returns a fresh copy of the initial catalog.
func Seed() []Product {
	oldAurora := price(289)
	auroraDiscount := 14

	return []Product{
		{
			ID:              "chair-aurora",
			Name:            "Aurora Lounge Chair",
			Category:        enums.ProductCategoryChairs,
			Price:           price(249),
			OldPrice:        &oldAurora,
			DiscountPercent: &auroraDiscount,
			IsNew:           true,
			Image:           pexels("6964073/pexels-photo-6964073.jpeg"),
			Description:     "A sculpted lounge chair with generous cushions and a floating silhouette. Perfect for slow mornings and late-night reads.",
			Colors: []ColorOption{
				{ID: "forest", Name: "Forest", Hex: "#2D4739"},
				{ID: "sand", Name: "Sand", Hex: "#E3D5C4"},
				{ID: "terracotta", Name: "Terracotta", Hex: "#D96C4A"},
			},
		},
		{
			ID:          "sofa-haven",
			Name:        "Haven Modular Sofa",
			Category:    enums.ProductCategorySofas,
			Price:       price(1299),
			Image:       pexels("6588585/pexels-photo-6588585.jpeg"),
			Description: "A flexible, modular sofa system with deep seats and gentle curves. Built for movie nights and effortless lounging.",
			Colors: []ColorOption{
				{ID: "cloud", Name: "Cloud", Hex: "#E5E7EB"},
				{ID: "ink", Name: "Ink", Hex: "#111827"},
				{ID: "latte", Name: "Latte", Hex: "#C7A17A"},
			},
		},
		{
			ID:          "table-orbit",
			Name:        "Orbit Dining Table",
			Category:    enums.ProductCategoryTables,
			Price:       price(799),
			Image:       pexels("6964071/pexels-photo-6964071.jpeg"),
			Description: "A round oak dining table with a soft bevel and pedestal base. Seats up to six with an intimate, gallery-like presence.",
			Colors: []ColorOption{
				{ID: "oak", Name: "Natural Oak", Hex: "#D4B48C"},
				{ID: "espresso", Name: "Espresso", Hex: "#3F2A1D"},
			},
		},
		{
			ID:           "chair-knot",
			Name:         "Knot Dining Chair",
			Category:     enums.ProductCategoryChairs,
			Price:        price(189),
			IsBestseller: true,
			Image:        pexels("6964072/pexels-photo-6964072.jpeg"),
			Description:  "A light, stackable dining chair with a woven seat and refined profile. Pairs perfectly with modern and rustic tables alike.",
			Colors: []ColorOption{
				{ID: "linen", Name: "Linen", Hex: "#F5F5F4"},
				{ID: "ink", Name: "Ink", Hex: "#111827"},
			},
		},
		{
			ID:          "sofa-cloud",
			Name:        "Cloud Three-Seater Sofa",
			Category:    enums.ProductCategorySofas,
			Price:       price(1599),
			Image:       pexels("4047070/pexels-photo-4047070.jpeg"),
			Description: "A deep, cloud-like sofa with feather-wrapped cushions and relaxed piping. Ideal for open-plan living rooms.",
			Colors: []ColorOption{
				{ID: "stone", Name: "Stone", Hex: "#D4D4D8"},
				{ID: "moss", Name: "Moss", Hex: "#4B5563"},
			},
		},
		{
			ID:          "table-ridge",
			Name:        "Ridge Rectangular Table",
			Category:    enums.ProductCategoryTables,
			Price:       price(920),
			Image:       pexels("3965526/pexels-photo-3965526.jpeg"),
			Description: "A slim oak table with softly rounded corners and tapered legs. Works as both a dining and studio table.",
			Colors: []ColorOption{
				{ID: "natural", Name: "Natural Oak", Hex: "#E0C9A6"},
				{ID: "walnut", Name: "Walnut", Hex: "#4A3325"},
			},
		},
		{
			ID:          "chair-shell",
			Name:        "Shell Accent Chair",
			Category:    enums.ProductCategoryChairs,
			Price:       price(310),
			Image:       pexels("1866149/pexels-photo-1866149.jpeg"),
			Description: "An upholstered accent chair with a shell-inspired back and slender metal legs, perfect for reading corners.",
			Colors: []ColorOption{
				{ID: "sage", Name: "Sage", Hex: "#A7B5A3"},
				{ID: "charcoal", Name: "Charcoal", Hex: "#374151"},
			},
		},
		{
			ID:          "sofa-arc",
			Name:        "Arc Curved Sofa",
			Category:    enums.ProductCategorySofas,
			Price:       price(1890),
			Image:       pexels("4718249/pexels-photo-4718249.jpeg"),
			Description: "A sculptural curved sofa that frames your living room and invites conversation from every angle.",
			Colors: []ColorOption{
				{ID: "ivory", Name: "Ivory Bouclé", Hex: "#F5F5F4"},
				{ID: "olive", Name: "Olive", Hex: "#556052"},
			},
		},
		{
			ID:          "table-pedestal",
			Name:        "Axis Pedestal Coffee Table",
			Category:    enums.ProductCategoryTables,
			Price:       price(540),
			Image:       pexels("3965521/pexels-photo-3965521.jpeg"),
			Description: "A round pedestal coffee table in stained oak with a gallery edge for books, candles, and everyday objects.",
			Colors: []ColorOption{
				{ID: "smoke", Name: "Smoked Oak", Hex: "#3F3F46"},
				{ID: "honey", Name: "Honey", Hex: "#E0B76A"},
			},
		},
		{
			ID:          "chair-bar",
			Name:        "Pier Bar Stool",
			Category:    enums.ProductCategoryChairs,
			Price:       price(220),
			Image:       pexels("37347/office-freelancer-computer-business-37347.jpeg"),
			Description: "A minimalist bar stool with a curved seat and metal footrest, designed for kitchen islands and high tables.",
			Colors: []ColorOption{
				{ID: "black", Name: "Black Oak", Hex: "#111827"},
				{ID: "sandstone", Name: "Sandstone", Hex: "#D6C2A6"},
			},
		},
		noPhoto("chair-no-photo-1", "Soft Lounge Chair", enums.ProductCategoryChairs, 260,
			"A comfy lounge chair with soft edges and a compact footprint for small living rooms.",
			ColorOption{ID: "neutral", Name: "Neutral", Hex: "#E5E5E5"},
			ColorOption{ID: "deepgreen", Name: "Deep Green", Hex: "#1F2933"}),
		noPhoto("chair-no-photo-2", "City Studio Chair", enums.ProductCategoryChairs, 210,
			"A studio chair with slim metal legs and a rounded backrest, ideal for desks and dining.",
			ColorOption{ID: "stone", Name: "Stone", Hex: "#D4D4D8"},
			ColorOption{ID: "ink", Name: "Ink", Hex: "#111827"}),
		noPhoto("chair-no-photo-3", "Wrap Armchair", enums.ProductCategoryChairs, 295,
			"An armchair with enveloping arms and a low seat that pairs well with side tables.",
			ColorOption{ID: "latte", Name: "Latte", Hex: "#C7A17A"},
			ColorOption{ID: "grey", Name: "Grey", Hex: "#9CA3AF"}),
		noPhoto("sofa-no-photo-1", "Loft Two-Seater Sofa", enums.ProductCategorySofas, 1180,
			"A compact two-seater with slim arms and generous seat depth, great for city apartments.",
			ColorOption{ID: "fog", Name: "Fog", Hex: "#E5E7EB"},
			ColorOption{ID: "charcoal", Name: "Charcoal", Hex: "#374151"}),
		noPhoto("sofa-no-photo-2", "Gallery Sectional Sofa", enums.ProductCategorySofas, 2040,
			"A sectional sofa with clean lines and moveable ottoman modules to adapt your layout.",
			ColorOption{ID: "ivory", Name: "Ivory", Hex: "#F9FAFB"},
			ColorOption{ID: "moss", Name: "Moss", Hex: "#4B5563"}),
		noPhoto("sofa-no-photo-3", "Relax Daybed", enums.ProductCategorySofas, 980,
			"A low-profile daybed with a tufted seat cushion, perfect for hallways or reading corners.",
			ColorOption{ID: "sand", Name: "Sand", Hex: "#E3D5C4"},
			ColorOption{ID: "coal", Name: "Coal", Hex: "#111827"}),
		noPhoto("table-no-photo-1", "Studio Desk Table", enums.ProductCategoryTables, 540,
			"A versatile work table with rounded corners and cable routing, ideal for home offices.",
			ColorOption{ID: "oak", Name: "Oak", Hex: "#D4B48C"},
			ColorOption{ID: "black", Name: "Black", Hex: "#111827"}),
		noPhoto("table-no-photo-2", "Compact Round Table", enums.ProductCategoryTables, 430,
			"A compact round table that fits into breakfast nooks and small dining areas.",
			ColorOption{ID: "white", Name: "Matte White", Hex: "#F9FAFB"},
			ColorOption{ID: "walnut", Name: "Walnut", Hex: "#4A3325"}),
		noPhoto("table-no-photo-3", "Low Coffee Table", enums.ProductCategoryTables, 320,
			"A low coffee table with a soft-edged rectangular top for books and decor.",
			ColorOption{ID: "honey", Name: "Honey", Hex: "#E0B76A"},
			ColorOption{ID: "smoke", Name: "Smoke", Hex: "#3F3F46"}),
		noPhoto("table-no-photo-4", "Side Table Duo", enums.ProductCategoryTables, 260,
			"A pair of nesting side tables that slide under each other to save space.",
			ColorOption{ID: "whiteoak", Name: "White Oak", Hex: "#E5D3B3"},
			ColorOption{ID: "graphite", Name: "Graphite", Hex: "#111827"}),
	}
}

func noPhoto(id, name string, category enums.ProductCategory, amount int64, description string, colors ...ColorOption) Product {
	return Product{
		ID:          id,
		Name:        name,
		Category:    category,
		Price:       price(amount),
		Image:       NoPhotoImage,
		Description: description,
		Colors:      colors,
	}
}
