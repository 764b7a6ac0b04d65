// Package bundles expands a sellable flagpole kit into its component
// list. Flag size and ground-sleeve diameter follow the pole height, so
// the table stores heights and the substitution happens at lookup time.
package bundles

import "fmt"

// Component is one physical item inside a kit.
type Component struct {
	Title    string `json:"title"`
	Handle   string `json:"handle"`
	Quantity int    `json:"quantity"`
}

// kitHeights maps sellable kit handles to pole height in feet.
var kitHeights = map[string]int{
	"20ft-telescoping-flagpole-kit": 20,
	"25ft-telescoping-flagpole-kit": 25,
	"30ft-telescoping-flagpole-kit": 30,
}

// flagSizes maps pole height to the flag dimensions it flies.
var flagSizes = map[int]string{
	20: "3x5",
	25: "4x6",
	30: "5x8",
}

// sleeveDiameters maps pole height to ground-sleeve diameter.
var sleeveDiameters = map[int]string{
	20: "2-5in",
	25: "3in",
	30: "3-5in",
}

// Components returns the component list for a kit handle, or ok=false for
// a handle that is not a kit.
func Components(handle string) ([]Component, bool) {
	height, ok := kitHeights[handle]
	if !ok {
		return nil, false
	}

	flag := flagSizes[height]
	sleeve := sleeveDiameters[height]

	return []Component{
		{
			Title:    fmt.Sprintf("%dft Telescoping Flagpole", height),
			Handle:   fmt.Sprintf("%dft-telescoping-flagpole", height),
			Quantity: 1,
		},
		{
			Title:    fmt.Sprintf("%sft Embroidered Nylon US Flag", flag),
			Handle:   fmt.Sprintf("us-flag-%sft", flag),
			Quantity: 1,
		},
		{
			Title:    "Gold Topper Ball",
			Handle:   "gold-topper-ball",
			Quantity: 1,
		},
		{
			Title:    "Dual Flag Harness",
			Handle:   "dual-flag-harness",
			Quantity: 2,
		},
		{
			Title:    fmt.Sprintf("Ground Sleeve %s", sleeve),
			Handle:   fmt.Sprintf("ground-sleeve-%s", sleeve),
			Quantity: 1,
		},
	}, true
}

// Validate checks the kit tables for internal consistency. Called once at
// startup; a kit height without flag or sleeve sizing is a configuration
// error.
func Validate() error {
	for handle, height := range kitHeights {
		if _, ok := flagSizes[height]; !ok {
			return fmt.Errorf("kit %q: no flag size for %dft pole", handle, height)
		}
		if _, ok := sleeveDiameters[height]; !ok {
			return fmt.Errorf("kit %q: no sleeve diameter for %dft pole", handle, height)
		}
	}
	return nil
}
