package models

// OverlayConfig holds the five independent overlay toggles for a viewing
// session. Unknown JSON fields are ignored; absent fields default to false.
type OverlayConfig struct {
	Skeleton      bool `json:"skeleton"`
	BodyTension   bool `json:"bodyTension"`
	FootStability bool `json:"footStability"`
	ElbowAngles   bool `json:"elbowAngles"`
	HipPath       bool `json:"hipPath"`
}

// AnyEnabled reports whether at least one overlay kind is enabled
func (c OverlayConfig) AnyEnabled() bool {
	return c.Skeleton || c.BodyTension || c.FootStability || c.ElbowAngles || c.HipPath
}
