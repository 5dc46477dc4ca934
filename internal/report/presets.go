package report

// The two production views carry different policies: the daily report
// flags scores at 8.0 and summarizes by direction, the intraday panel
// flags at 9.0 and summarizes by recommendation. Both are kept as named
// presets; neither is the canonical one.
var presets = map[string]Config{
	"daily": {
		ScoreStrongThreshold: 8.0,
		Aggregation:          AggregateByDirection,
	},
	"intraday": {
		ScoreStrongThreshold: 9.0,
		Aggregation:          AggregateByRecommendation,
	},
}

// PresetConfig returns a named view preset.
func PresetConfig(name string) (Config, bool) {
	cfg, ok := presets[name]
	return cfg, ok
}

// PresetNames lists the known presets (for config validation and errors).
func PresetNames() []string {
	return []string{"daily", "intraday"}
}
