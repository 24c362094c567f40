package config

// ArenaConfig is the root config for arena JSON/YAML files
type ArenaConfig struct {
	ID       string            `json:"id" yaml:"id"`
	Name     string            `json:"name" yaml:"name"`
	Gravity  float64           `json:"gravity" yaml:"gravity"`
	Drag     float64           `json:"drag" yaml:"drag"` // Horizontal damping per second while grounded
	Spawn    SpawnConfig       `json:"spawn" yaml:"spawn"`
	Camera   CameraConfig      `json:"camera" yaml:"camera"`
	Boxes    []BoxConfig       `json:"boxes" yaml:"boxes"`
	Layers   map[string]uint32 `json:"layers" yaml:"layers"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type SpawnConfig struct {
	Position [3]float64 `json:"position" yaml:"position"`
	Yaw      float64    `json:"yaw" yaml:"yaw"` // Degrees
}

type CameraConfig struct {
	Yaw       float64 `json:"yaw" yaml:"yaw"`             // Degrees
	TurnSpeed float64 `json:"turnSpeed" yaml:"turnSpeed"` // Degrees per second
}

// BoxConfig is an axis-aligned static collider
type BoxConfig struct {
	Name   string     `json:"name" yaml:"name"`
	Min    [3]float64 `json:"min" yaml:"min"`
	Max    [3]float64 `json:"max" yaml:"max"`
	Layer  string     `json:"layer" yaml:"layer"`                       // Key into Layers, empty means Default
	Normal [3]float64 `json:"normal,omitempty" yaml:"normal,omitempty"` // Reported top-face normal, zero means up
}

// LayerMask resolves a named layer, falling back to the Default layer
func (a *ArenaConfig) LayerMask(name string) uint32 {
	if name == "" {
		return 1
	}
	if m, ok := a.Layers[name]; ok && m != 0 {
		return m
	}
	return 1
}
