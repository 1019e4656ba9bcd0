package engine

import (
	"github.com/veildoc/veildoc/internal/preset"
	"github.com/veildoc/veildoc/internal/types"
)

// ActionProfile selects the action tier table. The profiles differ only at
// priority 80-89: the permissive profile pseudonymises there, the strict one
// redacts.
type ActionProfile string

const (
	ProfilePermissive ActionProfile = "permissive"
	ProfileStrict     ActionProfile = "strict"
)

// ProfileForLayer maps the preset's layer number to its action profile.
// Layers 1 and 2 share the permissive tier table; layer 3 is strict.
func ProfileForLayer(layer int) ActionProfile {
	if layer >= 3 {
		return ProfileStrict
	}
	return ProfilePermissive
}

// decide is the policy engine: a pure function from entity priority,
// confidence, preset, and profile to the redaction action and uncertainty
// flag. Entity enablement is checked by the caller before decide runs.
func decide(et types.EntityType, confidence int, p preset.Preset, profile ActionProfile) (types.RedactionAction, bool) {
	prio := types.Priority(et)

	var action types.RedactionAction
	switch {
	case prio >= 90:
		action = types.ActionRedact
	case prio >= 80:
		action = types.ActionPseudonym
		if profile == ProfileStrict {
			action = types.ActionRedact
		}
	case prio >= 70:
		action = types.ActionRedact
	case prio >= 60:
		action = types.ActionPseudonym
	default:
		action = types.ActionNone
	}

	// Strict less-than: confidence exactly at the threshold is certain.
	uncertain := confidence < p.MinimumConfidence
	if uncertain {
		switch p.UncertaintyPolicy {
		case preset.UncertainMask:
			action = types.ActionMask
		case preset.UncertainRedact:
			action = types.ActionRedact
		case preset.UncertainLeaveIntact, preset.UncertainFlagOnly:
			action = types.ActionNone
		}
	}
	return action, uncertain
}
