package config

// Balance holds the progression economy knobs. Defaults match the numbers
// the app shipped with; everything is overridable via the config file or
// environment so reward tuning never needs a rebuild.
type Balance struct {
	// CompletionXP is granted per completion and clawed back on un-completion.
	CompletionXP int `yaml:"completion_xp" json:"completion_xp"`
	// CompletionPoints is the discipline-point grant per completion.
	CompletionPoints int `yaml:"completion_points" json:"completion_points"`
	// ReviveBonusPoints replaces CompletionPoints when a missed due day is
	// backfilled through a revive.
	ReviveBonusPoints int `yaml:"revive_bonus_points" json:"revive_bonus_points"`
	// XPPerLevel drives the level formula: level = xp/XPPerLevel + 1.
	XPPerLevel int `yaml:"xp_per_level" json:"xp_per_level"`
	// StreakLookbackDays bounds every streak walk. A streak cannot be
	// reported longer than this window; the bound is a simplification, not
	// a real ceiling on history length.
	StreakLookbackDays int `yaml:"streak_lookback_days" json:"streak_lookback_days"`
	// StreakMilestoneDays: an overall streak hitting a multiple of this
	// raises the milestone signal on toggle results.
	StreakMilestoneDays int `yaml:"streak_milestone_days" json:"streak_milestone_days"`
	// HeatmapWindowDays is the default trailing window for completion history.
	HeatmapWindowDays int `yaml:"heatmap_window_days" json:"heatmap_window_days"`
}

func DefaultBalance() Balance {
	return Balance{
		CompletionXP:        10,
		CompletionPoints:    5,
		ReviveBonusPoints:   10,
		XPPerLevel:          100,
		StreakLookbackDays:  365,
		StreakMilestoneDays: 7,
		HeatmapWindowDays:   28,
	}
}

// normalize backfills zero/negative knobs with defaults so a sparse yaml
// file can override a single value.
func (b Balance) normalize() Balance {
	def := DefaultBalance()
	if b.CompletionXP <= 0 {
		b.CompletionXP = def.CompletionXP
	}
	if b.CompletionPoints <= 0 {
		b.CompletionPoints = def.CompletionPoints
	}
	if b.ReviveBonusPoints <= 0 {
		b.ReviveBonusPoints = def.ReviveBonusPoints
	}
	if b.XPPerLevel <= 0 {
		b.XPPerLevel = def.XPPerLevel
	}
	if b.StreakLookbackDays <= 0 {
		b.StreakLookbackDays = def.StreakLookbackDays
	}
	if b.StreakMilestoneDays <= 0 {
		b.StreakMilestoneDays = def.StreakMilestoneDays
	}
	if b.HeatmapWindowDays <= 0 {
		b.HeatmapWindowDays = def.HeatmapWindowDays
	}
	return b
}
