package model

// RenderUnitsPerCm converts the engine's centimeters to render units
// (meters). Conversion only happens at the render boundary.
const RenderUnitsPerCm = 0.01

// ToRender converts a length in cm to render units.
func ToRender(cm float64) float64 { return cm * RenderUnitsPerCm }

// FromRender converts a length in render units to cm.
func FromRender(u float64) float64 { return u / RenderUnitsPerCm }
