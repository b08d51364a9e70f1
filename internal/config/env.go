package config

import (
	"os"
	"strconv"
)

// BalanceFromEnv applies FORGE_* environment overrides on top of a balance.
// Unset or unparsable variables leave the incoming value alone.
func BalanceFromEnv(b Balance) Balance {
	if v := getEnvInt("FORGE_COMPLETION_XP"); v > 0 {
		b.CompletionXP = v
	}
	if v := getEnvInt("FORGE_COMPLETION_POINTS"); v > 0 {
		b.CompletionPoints = v
	}
	if v := getEnvInt("FORGE_REVIVE_BONUS_POINTS"); v > 0 {
		b.ReviveBonusPoints = v
	}
	if v := getEnvInt("FORGE_XP_PER_LEVEL"); v > 0 {
		b.XPPerLevel = v
	}
	if v := getEnvInt("FORGE_STREAK_LOOKBACK_DAYS"); v > 0 {
		b.StreakLookbackDays = v
	}
	if v := getEnvInt("FORGE_STREAK_MILESTONE_DAYS"); v > 0 {
		b.StreakMilestoneDays = v
	}
	if v := getEnvInt("FORGE_HEATMAP_WINDOW_DAYS"); v > 0 {
		b.HeatmapWindowDays = v
	}
	return b
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
