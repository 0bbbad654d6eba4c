package config

// mergeConfigs merges override configuration into base
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Name != "" {
		result.Name = override.Name
	}
	if override.Version != "" {
		result.Version = override.Version
	}

	result.Defaults = mergeDefaults(result.Defaults, override.Defaults)
	result.Keymap = mergeKeymap(result.Keymap, override.Keymap)
	result.Bridge = mergeBridge(result.Bridge, override.Bridge)

	if override.TUI != nil {
		if result.TUI == nil {
			result.TUI = override.TUI
		} else if override.TUI.Theme != "" {
			merged := *result.TUI
			merged.Theme = override.TUI.Theme
			result.TUI = &merged
		}
	}

	// Merge extensions
	if override.Extensions != nil {
		if result.Extensions == nil {
			result.Extensions = make(map[string]interface{})
		}
		for key, value := range override.Extensions {
			// If both layers carry the same extension key, merge the maps
			if baseValue, exists := result.Extensions[key]; exists {
				if baseMap, baseOk := baseValue.(map[string]interface{}); baseOk {
					if overrideMap, overrideOk := value.(map[string]interface{}); overrideOk {
						mergedMap := make(map[string]interface{})
						for k, v := range baseMap {
							mergedMap[k] = v
						}
						for k, v := range overrideMap {
							mergedMap[k] = v
						}
						result.Extensions[key] = mergedMap
						continue
					}
				}
			}
			// Otherwise just replace
			result.Extensions[key] = value
		}
	}

	return &result
}

func mergeDefaults(base, override *DefaultsConfig) *DefaultsConfig {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}
	result := *base

	if override.Menu != nil {
		if result.Menu == nil {
			result.Menu = override.Menu
		} else {
			merged := *result.Menu
			if override.Menu.TypeaheadWindowMS != 0 {
				merged.TypeaheadWindowMS = override.Menu.TypeaheadWindowMS
			}
			if override.Menu.CloseOnSelect != nil {
				merged.CloseOnSelect = override.Menu.CloseOnSelect
			}
			result.Menu = &merged
		}
	}
	if override.Slider != nil {
		if result.Slider == nil {
			result.Slider = override.Slider
		} else if override.Slider.PageFraction != 0 {
			merged := *result.Slider
			merged.PageFraction = override.Slider.PageFraction
			result.Slider = &merged
		}
	}
	if override.Tabs != nil {
		if result.Tabs == nil {
			result.Tabs = override.Tabs
		} else {
			merged := *result.Tabs
			if override.Tabs.ActivationMode != "" {
				merged.ActivationMode = override.Tabs.ActivationMode
			}
			if override.Tabs.Orientation != "" {
				merged.Orientation = override.Tabs.Orientation
			}
			result.Tabs = &merged
		}
	}
	if override.Accordion != nil {
		if result.Accordion == nil {
			result.Accordion = override.Accordion
		} else {
			merged := *result.Accordion
			if override.Accordion.Multiple != nil {
				merged.Multiple = override.Accordion.Multiple
			}
			if override.Accordion.Collapsible != nil {
				merged.Collapsible = override.Accordion.Collapsible
			}
			result.Accordion = &merged
		}
	}

	return &result
}

func mergeKeymap(base, override *KeymapConfig) *KeymapConfig {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}
	result := *base

	if override.Preset != "" {
		result.Preset = override.Preset
	}
	if len(override.Overrides) > 0 {
		merged := make(map[string][]string, len(result.Overrides)+len(override.Overrides))
		for k, v := range result.Overrides {
			merged[k] = v
		}
		for k, v := range override.Overrides {
			merged[k] = v
		}
		result.Overrides = merged
	}

	return &result
}

func mergeBridge(base, override *BridgeConfig) *BridgeConfig {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}
	result := *base

	if override.Addr != "" {
		result.Addr = override.Addr
	}
	if override.Path != "" {
		result.Path = override.Path
	}
	if len(override.AllowedOrigins) > 0 {
		result.AllowedOrigins = override.AllowedOrigins
	}
	if override.PingIntervalMS != 0 {
		result.PingIntervalMS = override.PingIntervalMS
	}

	return &result
}
