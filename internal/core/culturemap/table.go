package culturemap

// aliases rewrites tokens whose punctuation would be destroyed by
// normalization before the table lookup happens
var aliases = map[string]string{
	"c++": "cpp",
	"c#":  "csharp",
	"f#":  "fsharp",
	".net": "dotnet",
	"node.js": "nodejs",
	"vue.js":  "vuejs",
	"next.js": "nextjs",
}

// cultureTable maps a normalized technical token to its cultural tag list.
// Plain data, no behavior. Unmapped tokens synthesize a tech-<token> tag
var cultureTable = map[string][]string{
	// languages
	"python":     {"data-science", "ai", "academic", "research", "automation"},
	"r":          {"data-science", "statistics", "academic"},
	"julia":      {"scientific-computing", "academic", "research"},
	"javascript": {"web-culture", "startups", "creative-coding"},
	"typescript": {"web-culture", "startups", "enterprise"},
	"go":         {"systems-programming", "cloud-native", "infrastructure"},
	"golang":     {"systems-programming", "cloud-native", "infrastructure"},
	"rust":       {"systems-programming", "performance", "security"},
	"c":          {"systems-programming", "embedded", "low-level"},
	"cpp":        {"systems-programming", "gaming", "performance"},
	"csharp":     {"enterprise", "gaming", "corporate-tech"},
	"fsharp":     {"functional-programming", "enterprise"},
	"java":       {"enterprise", "corporate-tech", "android"},
	"kotlin":     {"android", "mobile-dev", "enterprise"},
	"swift":      {"apple-ecosystem", "mobile-dev", "design"},
	"ruby":       {"web-culture", "startups", "developer-happiness"},
	"php":        {"web-culture", "freelance"},
	"haskell":    {"functional-programming", "academic"},
	"elixir":     {"functional-programming", "distributed-systems"},
	"erlang":     {"functional-programming", "distributed-systems"},
	"scala":      {"functional-programming", "data-science", "enterprise"},
	"lua":        {"gaming", "embedded", "scripting"},
	"shell":      {"automation", "devops", "infrastructure"},
	"bash":       {"automation", "devops", "infrastructure"},
	"dart":       {"mobile-dev", "design"},
	"zig":        {"systems-programming", "performance"},
	"ocaml":      {"functional-programming", "academic"},
	"sql":        {"data-science", "enterprise"},

	// topics and ecosystem tokens
	"machine-learning":   {"data-science", "ai"},
	"deep-learning":      {"ai", "research"},
	"artificial-intelligence": {"ai", "research"},
	"data-science":       {"data-science", "statistics"},
	"nlp":                {"ai", "linguistics"},
	"computer-vision":    {"ai", "research"},
	"llm":                {"ai", "generative-tech"},
	"web":                {"web-culture", "open-web"},
	"frontend":           {"web-culture", "design"},
	"backend":            {"web-culture", "infrastructure"},
	"react":              {"web-culture", "design", "startups"},
	"vuejs":              {"web-culture", "design"},
	"nextjs":             {"web-culture", "startups"},
	"nodejs":             {"web-culture", "startups"},
	"django":             {"web-culture", "automation"},
	"flask":              {"web-culture", "automation"},
	"game":               {"gaming", "creative-coding"},
	"gamedev":            {"gaming", "creative-coding"},
	"game-development":   {"gaming", "creative-coding"},
	"unity":              {"gaming", "creative-coding"},
	"graphics":           {"creative-coding", "design"},
	"music":              {"music-tech", "creative-coding"},
	"audio":              {"music-tech", "creative-coding"},
	"blockchain":         {"crypto-culture", "fintech"},
	"cryptocurrency":     {"crypto-culture", "fintech"},
	"fintech":            {"fintech", "startups"},
	"devops":             {"devops", "cloud-native", "infrastructure"},
	"kubernetes":         {"cloud-native", "infrastructure"},
	"docker":             {"cloud-native", "devops"},
	"terraform":          {"infrastructure", "devops"},
	"cloud":              {"cloud-native", "enterprise"},
	"serverless":         {"cloud-native", "startups"},
	"security":           {"security", "hacking-culture"},
	"cryptography":       {"security", "academic"},
	"privacy":            {"security", "open-web"},
	"linux":              {"open-source-culture", "systems-programming"},
	"embedded":           {"embedded", "hardware-hacking"},
	"iot":                {"embedded", "hardware-hacking"},
	"robotics":           {"robotics", "hardware-hacking", "research"},
	"bioinformatics":     {"data-science", "academic", "research"},
	"gis":                {"data-science", "mapping"},
	"maps":               {"mapping", "open-web"},
	"education":          {"education", "community"},
	"teaching":           {"education", "community"},
	"documentation":      {"education", "community"},
	"accessibility":      {"design", "community", "open-web"},
	"design":             {"design", "creative-coding"},
	"cli":                {"automation", "developer-tools"},
	"tooling":            {"developer-tools", "automation"},
	"developer-tools":    {"developer-tools", "automation"},
	"testing":            {"developer-tools", "enterprise"},
	"database":           {"infrastructure", "data-science"},
	"distributed-systems": {"distributed-systems", "infrastructure"},
	"networking":         {"infrastructure", "systems-programming"},
	"open-source":        {"open-source-culture", "community"},
	"hacktoberfest":      {"open-source-culture", "community"},
	"good-first-issue":   {"community", "education"},
	"beginner-friendly":  {"community", "education"},
	"help-wanted":        {"community"},
	"science":            {"academic", "research"},
	"physics":            {"academic", "research", "scientific-computing"},
	"mathematics":        {"academic", "scientific-computing"},
	"statistics":         {"statistics", "data-science"},
	"finance":            {"fintech", "enterprise"},
	"ecommerce":          {"startups", "web-culture"},
	"mobile":             {"mobile-dev", "design"},
	"android":            {"android", "mobile-dev"},
	"ios":                {"apple-ecosystem", "mobile-dev"},
}

// categoryTable maps a cultural tag to the taste-graph interest category
// used for the insights request. Tags without an entry fall back to the
// generic technology category
var categoryTable = map[string]string{
	"data-science":         "urn:tag:interest:data_science",
	"ai":                   "urn:tag:interest:artificial_intelligence",
	"statistics":           "urn:tag:interest:data_science",
	"academic":             "urn:tag:interest:science",
	"research":             "urn:tag:interest:science",
	"scientific-computing": "urn:tag:interest:science",
	"web-culture":          "urn:tag:interest:web_development",
	"open-web":             "urn:tag:interest:web_development",
	"startups":             "urn:tag:interest:entrepreneurship",
	"enterprise":           "urn:tag:interest:business",
	"corporate-tech":       "urn:tag:interest:business",
	"fintech":              "urn:tag:interest:finance",
	"crypto-culture":       "urn:tag:interest:cryptocurrency",
	"gaming":               "urn:tag:interest:video_games",
	"creative-coding":      "urn:tag:interest:digital_art",
	"design":               "urn:tag:interest:design",
	"music-tech":           "urn:tag:interest:music",
	"security":             "urn:tag:interest:cybersecurity",
	"hacking-culture":      "urn:tag:interest:cybersecurity",
	"systems-programming":  "urn:tag:interest:computer_science",
	"performance":          "urn:tag:interest:computer_science",
	"low-level":            "urn:tag:interest:computer_science",
	"embedded":             "urn:tag:interest:electronics",
	"hardware-hacking":     "urn:tag:interest:electronics",
	"robotics":             "urn:tag:interest:robotics",
	"cloud-native":         "urn:tag:interest:cloud_computing",
	"infrastructure":       "urn:tag:interest:cloud_computing",
	"devops":               "urn:tag:interest:cloud_computing",
	"distributed-systems":  "urn:tag:interest:cloud_computing",
	"automation":           "urn:tag:interest:productivity",
	"developer-tools":      "urn:tag:interest:productivity",
	"education":            "urn:tag:interest:education",
	"community":            "urn:tag:interest:volunteering",
	"open-source-culture":  "urn:tag:interest:open_source",
	"mobile-dev":           "urn:tag:interest:mobile_technology",
	"android":              "urn:tag:interest:mobile_technology",
	"apple-ecosystem":      "urn:tag:interest:mobile_technology",
	"functional-programming": "urn:tag:interest:computer_science",
	"mapping":              "urn:tag:interest:geography",
	"linguistics":          "urn:tag:interest:linguistics",
	"generative-tech":      "urn:tag:interest:artificial_intelligence",
	"developer-happiness":  "urn:tag:interest:productivity",
	"freelance":            "urn:tag:interest:entrepreneurship",
}

// fallbackCategory is used when a tag has no category mapping
const fallbackCategory = "urn:tag:interest:technology"
