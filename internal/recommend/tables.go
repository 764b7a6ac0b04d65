package recommend

import "github.com/libertyflags/flaggy/internal/knowledge"

// Collection handles in the storefront catalog.
const (
	CollectionFlagpoles   = "telescoping-flagpoles"
	CollectionFlags       = "usa-flags"
	CollectionLighting    = "flagpole-lighting"
	CollectionKits        = "flagpole-kits"
	CollectionAccessories = "flagpole-accessories"
)

// keywordRoute maps a message keyword to a collection. The table is
// scanned in declaration order and the first substring hit wins, so more
// specific keywords must come first ("flagpole" before "flag", or every
// flagpole question would route to the flags collection).
type keywordRoute struct {
	keyword    string
	collection string
}

var keywordRoutes = []keywordRoute{
	{"solar", CollectionLighting},
	{"light", CollectionLighting},
	{"telescoping", CollectionFlagpoles},
	{"flagpole", CollectionFlagpoles},
	{"pole", CollectionFlagpoles},
	{"kit", CollectionKits},
	{"bundle", CollectionKits},
	{"sleeve", CollectionAccessories},
	{"mount", CollectionAccessories},
	{"flag", CollectionFlags},
}

// intentCollections is the fallback when no keyword hits.
var intentCollections = map[string]string{
	knowledge.IntentHeightSelection: CollectionFlagpoles,
	knowledge.IntentFlagSelection:   CollectionFlags,
	knowledge.IntentLighting:        CollectionLighting,
	knowledge.IntentInstallation:    CollectionAccessories,
	knowledge.IntentKitsBundles:     CollectionKits,
}

// noProductIntents never get a recommendation, whatever the message says.
// Checked before the keyword table: a warranty question that mentions
// "flag" still gets no product card.
var noProductIntents = map[string]bool{
	knowledge.IntentGreeting:         true,
	knowledge.IntentWarrantyInfo:     true,
	knowledge.IntentShippingInfo:     true,
	knowledge.IntentWinterGuidelines: true,
	knowledge.IntentThankYou:         true,
}
