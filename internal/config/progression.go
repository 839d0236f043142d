package config

// Intner draws a uniform integer in [0, n).
type Intner interface {
	Intn(n int) int
}

// Progression decides when the player's score reaches a difficulty milestone.
type Progression struct {
	cfg ProgressionConfig
}

// NewProgression creates a progression rule from its config.
func NewProgression(cfg ProgressionConfig) *Progression {
	return &Progression{cfg: cfg}
}

// IsEnabled returns whether milestones raise the level.
func (p *Progression) IsEnabled() bool {
	return p.cfg.Enabled && p.cfg.MilestoneEvery > 0
}

// Milestone reports whether the given score, just reached by crossing
// the board, is a positive multiple of the milestone interval.
func (p *Progression) Milestone(score int) bool {
	if !p.IsEnabled() {
		return false
	}
	return score > 0 && score%p.cfg.MilestoneEvery == 0
}

// SpawnSpeed draws the speed of a milestone enemy, uniform over [1, MaxSpawnSpeed].
func (p *Progression) SpawnSpeed(rng Intner) float64 {
	limit := p.cfg.MaxSpawnSpeed
	if limit < 1 {
		limit = 1
	}
	return float64(rng.Intn(limit) + 1)
}
