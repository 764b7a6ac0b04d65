package knowledge

// Canonical intent names referenced elsewhere (recommendation tables,
// tests). The catalog itself may be replaced via a knowledge file, but
// these names are the builtin vocabulary.
const (
	IntentGreeting         = "greeting"
	IntentHeightSelection  = "height_selection"
	IntentFlagSelection    = "flag_selection"
	IntentLighting         = "lighting"
	IntentInstallation     = "installation"
	IntentKitsBundles      = "kits_bundles"
	IntentWarrantyInfo     = "warranty_info"
	IntentShippingInfo     = "shipping_info"
	IntentWinterGuidelines = "winter_guidelines"
	IntentReturns          = "returns"
	IntentThankYou         = "thank_you"
)

// Default returns the builtin storefront intent catalog. Order matters:
// earlier intents win score ties.
func Default() *Base {
	b, err := New(defaultIntents)
	if err != nil {
		// The builtin table is validated by tests; a bad entry is a
		// programming error.
		panic("knowledge: invalid builtin intent catalog: " + err.Error())
	}
	return b
}

var defaultIntents = []Intent{
	{
		Name:     IntentGreeting,
		Matchers: []string{"hi", "hello", "hey", "howdy", "good morning", "good afternoon", "good evening"},
		Response: "Hi! I'm Flaggy, the flagpole assistant. Ask me about pole heights, flags, lighting, installation, shipping, or warranty.",
		FollowUp: []string{
			"How tall should my flagpole be?",
			"What flag size fits my pole?",
			"Do you have solar lights?",
		},
	},
	{
		Name: IntentHeightSelection,
		Matchers: []string{
			"how tall", "what height", "pole height", "tall should my flagpole",
			"which size pole", "20ft or 25ft", "height do i need",
		},
		Response: "For most homes a 20ft or 25ft telescoping flagpole is ideal: 20ft suits single-story houses, 25ft suits two-story houses or open yards. Go taller if the pole will stand far from the house.",
		FollowUp: []string{
			"What flag size fits my pole?",
			"What's included in a flagpole kit?",
		},
		Links: []Link{
			{Label: "Height guide", URL: "/pages/flagpole-height-guide"},
		},
	},
	{
		Name: IntentFlagSelection,
		Matchers: []string{
			"flag size", "which flag", "what flag", "flag fits", "flag for my pole",
			"bigger flag", "flag dimensions",
		},
		Response: "Flag size follows pole height: a 20ft pole flies a 3x5ft flag, a 25ft pole a 4x6ft flag, and a 30ft pole a 5x8ft flag. All our nylon flags are embroidered and made in the USA.",
		FollowUp: []string{
			"Can I fly two flags on one pole?",
			"How do I keep my flag from wrapping?",
		},
	},
	{
		Name: IntentLighting,
		Matchers: []string{
			"solar", "light", "lights", "lighting", "illuminate", "flag at night",
			"light my flag",
		},
		Response: "To fly the flag after dark it must be illuminated. Our solar light rings mount directly under the topper ball and charge during the day, so there's no wiring.",
		FollowUp: []string{
			"How long do solar lights last?",
		},
	},
	{
		Name: IntentInstallation,
		Matchers: []string{
			"install", "installation", "ground sleeve", "cement", "concrete",
			"how deep", "dig", "mounting",
		},
		Response: "Installation takes about an hour: dig a 24in hole, set the ground sleeve in concrete, keep it plumb while it cures, then drop the pole in. Full printed instructions ship with every kit.",
		FollowUp: []string{
			"What diameter ground sleeve do I need?",
		},
		Links: []Link{
			{Label: "Installation guide", URL: "/pages/installation-guide"},
		},
	},
	{
		Name: IntentKitsBundles,
		Matchers: []string{
			"kit", "bundle", "included", "comes with", "what do i get", "accessories included",
		},
		Response: "Every flagpole kit includes the telescoping pole, a sewn nylon US flag sized to the pole, topper ball, dual flag harnesses, and a ground sleeve. Nothing else to buy.",
		FollowUp: []string{
			"How tall should my flagpole be?",
		},
	},
	{
		Name:     IntentWarrantyInfo,
		Matchers: []string{"warranty", "guarantee", "lifetime", "warranty claim"},
		Response: "Our telescoping flagpoles carry a limited lifetime warranty against manufacturing defects. Flags are wear items and carry a 1-year stitching warranty.",
		FollowUp: []string{
			"How do I file a warranty claim?",
		},
		Links: []Link{
			{Label: "Warranty policy", URL: "/pages/warranty"},
		},
	},
	{
		Name: IntentShippingInfo,
		Matchers: []string{
			"shipping", "ship", "deliver", "delivery", "how long until", "track my order",
			"when will it arrive",
		},
		Response: "Orders placed before 2pm ET ship the same business day from our warehouse. Ground delivery takes 2-5 business days and tracking is emailed automatically.",
		FollowUp: []string{
			"Do you ship to Alaska and Hawaii?",
		},
		Links: []Link{
			{Label: "Shipping policy", URL: "/pages/shipping"},
		},
	},
	{
		Name: IntentWinterGuidelines,
		Matchers: []string{
			"winter", "snow", "ice", "cold weather", "storm", "high wind", "hurricane",
		},
		Response: "In sustained winds over 40mph or heavy ice, lower the flag and collapse the pole to its shortest height. The pole itself is rated for winter, but a frozen flag can shred quickly.",
		FollowUp: []string{
			"What wind speed is the pole rated for?",
		},
	},
	{
		Name:     IntentReturns,
		Matchers: []string{"return", "refund", "exchange", "send it back", "money back"},
		Response: "Unused products can be returned within 30 days for a full refund. Start a return from your account page or reply with your order number and our team will set it up.",
		Links: []Link{
			{Label: "Returns", URL: "/pages/returns"},
		},
	},
	{
		Name:     IntentThankYou,
		Matchers: []string{"thanks", "thank you", "appreciate", "awesome", "great help"},
		Response: "Happy to help! If anything else comes up I'm right here.",
	},
}
