package veildoc

import (
	"github.com/veildoc/veildoc/internal/config"
	"github.com/veildoc/veildoc/internal/preset"
)

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// resolvePreset merges the preset selection: an explicit file wins over a
// built-in name, CLI wins over config, and balanced is the fallback.
func resolvePreset(lcfg, gcfg config.FileConfig) (preset.Preset, error) {
	if path := pickString(flagPresetFile, lcfg.PresetFile, gcfg.PresetFile); path != "" {
		return preset.LoadFile(path)
	}
	if id := pickString(flagPreset, lcfg.Preset, gcfg.Preset); id != "" {
		return preset.Builtin(id)
	}
	return preset.Balanced(), nil
}
