package domain

// Tiers holds the four independent alert channel toggles.
type Tiers struct {
	Visual bool `json:"visual"`
	Tab    bool `json:"tab"`
	Push   bool `json:"push"`
	Sound  bool `json:"sound"`
}

// NotificationPreferences gates escalation dispatch. When Enabled is false
// no tier fires regardless of the individual toggles; the tier booleans are
// advisory only while Enabled is true.
type NotificationPreferences struct {
	Enabled bool  `json:"enabled"`
	Tiers   Tiers `json:"tiers"`
}

// DefaultPreferences returns the session-start preferences: escalation on,
// passive tiers (visual, tab) on, and the permission-backed tiers (push,
// sound) off until their permission is explicitly granted.
func DefaultPreferences() NotificationPreferences {
	return NotificationPreferences{
		Enabled: true,
		Tiers:   Tiers{Visual: true, Tab: true},
	}
}

// TiersPatch is the deep-merge update for Tiers: only non-nil fields change.
type TiersPatch struct {
	Visual *bool `json:"visual,omitempty"`
	Tab    *bool `json:"tab,omitempty"`
	Push   *bool `json:"push,omitempty"`
	Sound  *bool `json:"sound,omitempty"`
}

// PreferencesPatch is a partial preferences update. Enabled shallow-merges,
// Tiers deep-merges; omitted keys keep their prior value.
type PreferencesPatch struct {
	Enabled *bool      `json:"enabled,omitempty"`
	Tiers   TiersPatch `json:"tiers,omitempty"`
}
