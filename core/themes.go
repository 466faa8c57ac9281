package core

// ThemeDefinition describes one entry of the theme catalog.
type ThemeDefinition struct {
	ID     string
	Name   string
	Prompt string
}

var themeRegistry = []ThemeDefinition{
	{
		ID:     "pain_points",
		Name:   "Pain Points",
		Prompt: "Problems, frustrations or blockers the customer describes in their current workflow.",
	},
	{
		ID:     "feature_requests",
		Name:   "Feature Requests",
		Prompt: "Capabilities the customer asks for or says they would need before adopting.",
	},
	{
		ID:     "pricing",
		Name:   "Pricing",
		Prompt: "Reactions to price, packaging, budget, discounts or procurement constraints.",
	},
	{
		ID:     "competition",
		Name:   "Competition",
		Prompt: "Mentions of competing products, alternatives considered or tools being replaced.",
	},
	{
		ID:     "integrations",
		Name:   "Integrations",
		Prompt: "Other systems the customer needs to connect with, or integration gaps they hit.",
	},
	{
		ID:     "onboarding",
		Name:   "Onboarding",
		Prompt: "Setup, migration, training and first-use experiences.",
	},
	{
		ID:     "performance",
		Name:   "Performance",
		Prompt: "Speed, reliability, scale or uptime concerns.",
	},
	{
		ID:     "security_compliance",
		Name:   "Security & Compliance",
		Prompt: "Security reviews, data handling, certifications and regulatory requirements.",
	},
	{
		ID:     "support_experience",
		Name:   "Support Experience",
		Prompt: "How the customer feels about responsiveness and quality of support.",
	},
	{
		ID:     "positive_feedback",
		Name:   "Positive Feedback",
		Prompt: "Things the customer explicitly likes or praises.",
	},
	{
		ID:     "churn_risk",
		Name:   "Churn Risk",
		Prompt: "Signals that the customer may cancel, downgrade or not renew.",
	},
	{
		ID:     "use_cases",
		Name:   "Use Cases",
		Prompt: "Concrete jobs the customer uses or plans to use the product for.",
	},
}

var themeIndex = func() map[string]int {
	idx := make(map[string]int, len(themeRegistry))
	for i, t := range themeRegistry {
		idx[t.ID] = i
	}
	return idx
}()

// Themes returns the theme catalog in display order.
func Themes() []ThemeDefinition {
	out := make([]ThemeDefinition, len(themeRegistry))
	copy(out, themeRegistry)
	return out
}

// ThemeIDs returns the registry ids in display order.
func ThemeIDs() []string {
	ids := make([]string, len(themeRegistry))
	for i, t := range themeRegistry {
		ids[i] = t.ID
	}
	return ids
}

// LookupTheme finds a theme definition by id.
func LookupTheme(id string) (ThemeDefinition, bool) {
	i, ok := themeIndex[id]
	if !ok {
		return ThemeDefinition{}, false
	}
	return themeRegistry[i], true
}

// IsKnownTheme reports whether id is in the registry.
func IsKnownTheme(id string) bool {
	_, ok := themeIndex[id]
	return ok
}

// ThemeDisplayName returns the display name for id, or id itself when unknown.
func ThemeDisplayName(id string) string {
	if t, ok := LookupTheme(id); ok {
		return t.Name
	}
	return id
}
