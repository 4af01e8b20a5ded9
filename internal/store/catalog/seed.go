package catalog

import (
	"fmt"

	"lobitos-storefront/internal/domain"
)

type seedModel struct {
	id     string
	name   string
	prefix string
}

// defaultProducts builds the built-in "Modelo" series the catalog ships with.
func defaultProducts() []domain.Product {
	models := []seedModel{
		{id: "model-1", name: "Modelo: Ofrenda de Sosa", prefix: "md0"},
		{id: "model-2", name: "Modelo: Lila Reyna", prefix: "md1"},
		{id: "model-3", name: "Modelo: Dolce Vita", prefix: "md2"},
		{id: "model-4", name: "Modelo: Kauz Poncho", prefix: "md3"},
		{id: "model-5", name: "Modelo: Long Sleeves Violin", prefix: "md4"},
		{id: "model-6", name: "Modelo: Risa purpura y Green Roover", prefix: "md5"},
	}

	products := make([]domain.Product, 0, len(models))
	for i, m := range models {
		category := domain.CategoryPoncho
		if i >= 3 {
			category = domain.CategoryPonchos
		}
		// The md5 model's third media reference is a video clip.
		thirdExt := "jpg"
		if m.prefix == "md5" {
			thirdExt = "mp4"
		}

		products = append(products, domain.Product{
			ID:   m.id,
			Name: m.name,
			Description: domain.Localized{
				EN: "Handcrafted with premium materials for ultimate comfort and style.",
				ES: "Hecho a mano con materiales premium para máxima comodidad y estilo.",
			},
			Price: 129,
			Images: []string{
				fmt.Sprintf("/fotos/%s1.jpg", m.prefix),
				fmt.Sprintf("/fotos/%s2.jpg", m.prefix),
				fmt.Sprintf("/fotos/%s3.%s", m.prefix, thirdExt),
			},
			Category: category,
			Details: &domain.LocalizedList{
				EN: []string{
					"Material: 100% Premium Alpaca Wool",
					"Handwoven by artisans in the Andes",
					"Hypoallergenic and breathable",
					"Sustainable and eco-friendly production",
					"Care: Dry clean only",
				},
				ES: []string{
					"Material: 100% Lana de Alpaca Premium",
					"Tejido a mano por artesanos de los Andes",
					"Hipoalergénico y transpirable",
					"Producción sostenible y ecológica",
					"Cuidado: Lavado en seco únicamente",
				},
			},
			Measures: map[string]string{
				"Total Length":  "120 cm",
				"Width":         "140 cm",
				"Sleeve Length": "60 cm",
				"Neck Opening":  "30 cm",
			},
		})
	}

	return products
}
