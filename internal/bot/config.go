package bot

import (
	"time"
)

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Number of learning targets biasing each sentence
	TargetsPerDrill int
	// Number of sentences sent per scheduled batch
	DrillsPerBatch int
	// Minimal pause between scheduled batches
	BatchInterval time.Duration
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		TargetsPerDrill: 2,
		DrillsPerBatch:  3,
		BatchInterval:   time.Hour * 1,
	}
}
