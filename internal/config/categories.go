package config

// Help categories for command listings.
const (
	CategoryInformation = "🕯️ Information"
	CategoryUtilities   = "📢 Utilities"
	CategoryGameplay    = "🎲 Gameplay"
	CategoryMaintenance = "🛠️ Maintenance"
)

// CategoryWeights orders command categories in help output.
var CategoryWeights = map[string]int{
	CategoryInformation: 0,
	CategoryUtilities:   10,
	CategoryGameplay:    20,
	CategoryMaintenance: 60,
}

// CategoryWeight returns the sort weight of category; unknown categories
// sort last.
func CategoryWeight(category string) int {
	if w, ok := CategoryWeights[category]; ok {
		return w
	}
	return 1 << 10
}
