package models

// HeroContent is the singleton banner record shown at the top of the
// storefront. No cross-field invariants.
type HeroContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Logo     string `json:"logo"`
}

// DefaultHero returns the hero content used when nothing has been saved yet
// or the stored record cannot be decoded.
func DefaultHero() HeroContent {
	return HeroContent{
		Title:    "AKRON",
		Subtitle: "Camisetas Oversized para Treino e Lifestyle",
		Image:    "/placeholder-nji2c.png",
		Logo:     "/akron-logo-oficial.png",
	}
}
