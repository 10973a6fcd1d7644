package models

import "fmt"

// ScoringSettings controls one scoring run. The engine treats a settings
// value as immutable; partial overrides are merged onto the defaults before
// scoring begins.
type ScoringSettings struct {
	TargetFoodCostPct   float64 `json:"target_food_cost_pct"`
	MinQtyThreshold     int     `json:"min_qty_threshold"`
	PopularityThreshold float64 `json:"popularity_threshold"`
	MarginThreshold     float64 `json:"margin_threshold"`
	AllowPremiumPricing bool    `json:"allow_premium_pricing"`
	MaxPriceIncreasePct float64 `json:"max_price_increase_pct"`
	MaxPriceIncreaseAmt float64 `json:"max_price_increase_amt"`
}

// DefaultScoringSettings returns the documented defaults. A fresh value is
// returned on every call so no caller can mutate shared state.
func DefaultScoringSettings() ScoringSettings {
	return ScoringSettings{
		TargetFoodCostPct:   30,
		MinQtyThreshold:     10,
		PopularityThreshold: 60,
		MarginThreshold:     60,
		AllowPremiumPricing: false,
		MaxPriceIncreasePct: 8,
		MaxPriceIncreaseAmt: 2.00,
	}
}

// SettingsOverrides carries caller-supplied partial settings. Nil fields
// fall back to the default value.
type SettingsOverrides struct {
	TargetFoodCostPct   *float64 `mapstructure:"target_food_cost_pct" json:"target_food_cost_pct,omitempty"`
	MinQtyThreshold     *int     `mapstructure:"min_qty_threshold" json:"min_qty_threshold,omitempty"`
	PopularityThreshold *float64 `mapstructure:"popularity_threshold" json:"popularity_threshold,omitempty"`
	MarginThreshold     *float64 `mapstructure:"margin_threshold" json:"margin_threshold,omitempty"`
	AllowPremiumPricing *bool    `mapstructure:"allow_premium_pricing" json:"allow_premium_pricing,omitempty"`
	MaxPriceIncreasePct *float64 `mapstructure:"max_price_increase_pct" json:"max_price_increase_pct,omitempty"`
	MaxPriceIncreaseAmt *float64 `mapstructure:"max_price_increase_amt" json:"max_price_increase_amt,omitempty"`
}

// Resolve merges the overrides onto the defaults and returns the effective
// settings for a run. A nil receiver yields the defaults unchanged.
func (o *SettingsOverrides) Resolve() ScoringSettings {
	settings := DefaultScoringSettings()
	if o == nil {
		return settings
	}
	if o.TargetFoodCostPct != nil {
		settings.TargetFoodCostPct = *o.TargetFoodCostPct
	}
	if o.MinQtyThreshold != nil {
		settings.MinQtyThreshold = *o.MinQtyThreshold
	}
	if o.PopularityThreshold != nil {
		settings.PopularityThreshold = *o.PopularityThreshold
	}
	if o.MarginThreshold != nil {
		settings.MarginThreshold = *o.MarginThreshold
	}
	if o.AllowPremiumPricing != nil {
		settings.AllowPremiumPricing = *o.AllowPremiumPricing
	}
	if o.MaxPriceIncreasePct != nil {
		settings.MaxPriceIncreasePct = *o.MaxPriceIncreasePct
	}
	if o.MaxPriceIncreaseAmt != nil {
		settings.MaxPriceIncreaseAmt = *o.MaxPriceIncreaseAmt
	}
	return settings
}

// Validate rejects settings the scoring engine does not defend against.
// The engine assumes a valid configuration; this check belongs at the
// boundary that loads it.
func (s ScoringSettings) Validate() error {
	if s.TargetFoodCostPct <= 0 || s.TargetFoodCostPct >= 100 {
		return fmt.Errorf("target_food_cost_pct must be in (0, 100), got %v", s.TargetFoodCostPct)
	}
	if s.MinQtyThreshold <= 0 {
		return fmt.Errorf("min_qty_threshold must be positive, got %d", s.MinQtyThreshold)
	}
	if s.PopularityThreshold < 0 || s.PopularityThreshold > 100 {
		return fmt.Errorf("popularity_threshold must be in [0, 100], got %v", s.PopularityThreshold)
	}
	if s.MarginThreshold < 0 || s.MarginThreshold > 100 {
		return fmt.Errorf("margin_threshold must be in [0, 100], got %v", s.MarginThreshold)
	}
	if s.MaxPriceIncreasePct < 0 {
		return fmt.Errorf("max_price_increase_pct must not be negative, got %v", s.MaxPriceIncreasePct)
	}
	if s.MaxPriceIncreaseAmt < 0 {
		return fmt.Errorf("max_price_increase_amt must not be negative, got %v", s.MaxPriceIncreaseAmt)
	}
	return nil
}
