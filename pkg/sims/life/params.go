package life

import "mad-life/pkg/core"

const (
	minResize  = 8
	maxResize  = 512
	resizeStep = 8
)

// Parameters reports the universe settings and live statistics.
func (u *Universe) Parameters() core.ParameterSnapshot {
	mode := u.Mode()
	if mode == "" {
		mode = "fallback"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", u.w),
				core.IntParam("h", "Height", u.h),
				core.StringParam("mode", "Mode", mode),
				core.Int64Param("seed", "Seed", u.rngSeed),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				core.Uint64Param("generation", "Generation", u.gen),
				core.IntParam("population", "Population", u.Population()),
			},
		},
	}}
}

// ParameterControls exposes the dimensions as HUD-adjustable values.
func (u *Universe) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Step: resizeStep, Min: minResize, Max: maxResize, HasMin: true, HasMax: true},
		{Key: "h", Label: "Height", Step: resizeStep, Min: minResize, Max: maxResize, HasMin: true, HasMax: true},
	}
}

// SetIntParameter resizes the universe. Resizing clears every cell.
func (u *Universe) SetIntParameter(key string, value int) bool {
	switch key {
	case "w":
		return u.SetWidth(value) == nil
	case "h":
		return u.SetHeight(value) == nil
	}
	return false
}
