package quiz

// Types de question
const (
	TypeSingle   = "single"
	TypeMultiple = "multiple"
)

type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type Question struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Description string   `json:"description,omitempty"`
	Options     []Option `json:"options"`
}

// Questions est la séquence fixe et ordonnée du quiz peau.
var Questions = []Question{
	{
		ID:          "skinType",
		Type:        TypeSingle,
		Question:    "What's your skin type?",
		Description: "Choose the option that best describes your skin throughout most of the day",
		Options: []Option{
			{Value: "oily", Label: "Oily", Description: "Shiny, greasy, and prone to enlarged pores"},
			{Value: "dry", Label: "Dry", Description: "Tight, flaky, and sometimes itchy"},
			{Value: "combination", Label: "Combination", Description: "Oily T-zone, but dry on cheeks"},
			{Value: "sensitive", Label: "Sensitive", Description: "Easily irritated, reactive to products"},
			{Value: "normal", Label: "Normal", Description: "Balanced, not too oily or dry"},
		},
	},
	{
		ID:          "concerns",
		Type:        TypeMultiple,
		Question:    "What are your main skin concerns?",
		Description: "Select all that apply - we'll prioritize these in your routine",
		Options: []Option{
			{Value: "acne", Label: "Acne & Breakouts"},
			{Value: "aging", Label: "Fine Lines & Wrinkles"},
			{Value: "dark-spots", Label: "Dark Spots & Hyperpigmentation"},
			{Value: "dryness", Label: "Dryness & Dehydration"},
			{Value: "sensitivity", Label: "Redness & Sensitivity"},
			{Value: "dullness", Label: "Dullness & Uneven Texture"},
			{Value: "pores", Label: "Large Pores"},
			{Value: "dark-circles", Label: "Dark Circles & Puffiness"},
		},
	},
	{
		ID:          "routine",
		Type:        TypeSingle,
		Question:    "How extensive is your current skincare routine?",
		Description: "This helps us recommend the right number of products",
		Options: []Option{
			{Value: "minimal", Label: "Minimal (1-3 products)", Description: "Basic cleanser, maybe moisturizer"},
			{Value: "moderate", Label: "Moderate (4-6 products)", Description: "Cleanser, toner, serum, moisturizer"},
			{Value: "extensive", Label: "Extensive (7+ products)", Description: "Full morning and evening routine"},
			{Value: "none", Label: "No routine", Description: "I'm just starting my skincare journey"},
		},
	},
	{
		ID:          "goals",
		Type:        TypeSingle,
		Question:    "What's your main skincare goal?",
		Description: "We'll focus your routine around this primary objective",
		Options: []Option{
			{Value: "clear", Label: "Clear, Blemish-Free Skin", Description: "Reduce acne and prevent breakouts"},
			{Value: "anti-aging", Label: "Youthful, Firm Skin", Description: "Prevent and reduce signs of aging"},
			{Value: "hydration", Label: "Hydrated, Plump Skin", Description: "Improve moisture and elasticity"},
			{Value: "brightness", Label: "Bright, Even Complexion", Description: "Reduce dark spots and improve radiance"},
			{Value: "gentle", Label: "Calm, Balanced Skin", Description: "Reduce sensitivity and irritation"},
		},
	},
	{
		ID:          "lifestyle",
		Type:        TypeMultiple,
		Question:    "Tell us about your lifestyle",
		Description: "These factors help us customize your routine",
		Options: []Option{
			{Value: "outdoor", Label: "I spend a lot of time outdoors"},
			{Value: "makeup", Label: "I wear makeup regularly"},
			{Value: "exercise", Label: "I exercise frequently"},
			{Value: "travel", Label: "I travel often"},
			{Value: "stress", Label: "I have a stressful lifestyle"},
			{Value: "sleep", Label: "I often have irregular sleep"},
		},
	},
}
