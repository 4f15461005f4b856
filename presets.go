package nivesh

import "fmt"

// Preset is a named allocation vector applied positionally over the assets.
type Preset struct {
	Name        string
	Description string
	Weights     []Percent
}

// The presets mirror the strategies offered in the dashboard sidebar.
var presets = []Preset{
	{
		Name:        "default",
		Description: "Default Conservative",
		Weights:     []Percent{P(30), P(20), P(20), P(20), P(10)},
	},
	{
		Name:        "ultra-safe",
		Description: "Ultra-safe (more FD/G-Secs)",
		Weights:     []Percent{P(40), P(15), P(10), P(25), P(10)},
	},
	{
		Name:        "income",
		Description: "Income-focused (more PPF/SCSS)",
		Weights:     []Percent{P(20), P(30), P(10), P(20), P(20)},
	},
}

// Presets lists the available allocation presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ApplyPreset returns a new snapshot with the named preset's weights applied.
func (p *Portfolio) ApplyPreset(name string) (*Portfolio, error) {
	for _, preset := range presets {
		if preset.Name != name {
			continue
		}
		out := p.Clone()
		if err := out.SetWeights(preset.Weights); err != nil {
			return nil, fmt.Errorf("applying preset %q: %w", name, err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown preset %q", name)
}
