package models

func floatPtr(v float64) *float64 { return &v }

// SeedProducts returns the fixed launch catalog. It is used whenever the
// store holds no product collection (or an unreadable one).
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Oversized Essential Black",
			Price:         89.9,
			OriginalPrice: floatPtr(119.9),
			Images:        []string{"/black-oversized-t-shirt-gym-fitness.png", "/black-oversized-t-shirt-back.png"},
			Category:      CategoryPromo,
			Sizes:         []string{"P", "M", "G", "GG"},
			Colors:        []string{"Preto"},
			Description:   "Camiseta oversized essencial em algodão premium, perfeita para treinos e uso casual.",
			Featured:      true,
		},
		{
			ID:          "2",
			Name:        "Urban Fit White",
			Price:       79.9,
			Images:      []string{"/white-oversized-tee-urban.png", "/white-oversized-tee-side.png"},
			Category:    CategoryNew,
			Sizes:       []string{"P", "M", "G", "GG", "XG"},
			Colors:      []string{"Branco"},
			Description: "Design urbano com corte oversized, ideal para compor looks streetwear.",
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "Limited Edition Gray",
			Price:       99.9,
			Images:      []string{"/gray-oversized-limited-edition-tee.png", "/gray-oversized-t-shirt-detail.png"},
			Category:    CategoryLimited,
			Sizes:       []string{"M", "G", "GG"},
			Colors:      []string{"Cinza"},
			Description: "Edição limitada com estampa exclusiva e tecido premium.",
			Featured:    true,
		},
		{
			ID:          "4",
			Name:        "Performance Navy",
			Price:       94.9,
			Images:      []string{"/navy-blue-oversized-performance-tee.png", "/navy-blue-oversized-t-shirt-fabric.png"},
			Category:    CategoryNew,
			Sizes:       []string{"P", "M", "G", "GG"},
			Colors:      []string{"Azul Marinho"},
			Description: "Tecnologia dry-fit para máxima performance nos treinos.",
			Featured:    false,
		},
		{
			ID:            "5",
			Name:          "Vintage Olive",
			Price:         84.9,
			OriginalPrice: floatPtr(109.9),
			Images:        []string{"/placeholder.svg?height=600&width=600", "/placeholder.svg?height=600&width=600"},
			Category:      CategoryPromo,
			Sizes:         []string{"M", "G", "GG", "XG"},
			Colors:        []string{"Verde Oliva"},
			Description:   "Estilo vintage com lavagem especial e corte confortável.",
			Featured:      false,
		},
		{
			ID:          "6",
			Name:        "Exclusive Red",
			Price:       109.9,
			Images:      []string{"/placeholder.svg?height=600&width=600", "/placeholder.svg?height=600&width=600"},
			Category:    CategoryLimited,
			Sizes:       []string{"P", "M", "G"},
			Colors:      []string{"Vermelho"},
			Description: "Peça exclusiva com design diferenciado e acabamento premium.",
			Featured:    false,
		},
	}
}
