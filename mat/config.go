package mat

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Backing selects the element precision of matrix storage.
// A F32Array matrix holds every element at float32 precision, as a 32-bit
// float buffer would; arithmetic inside a single operation still runs in
// float64.
type Backing int

const (
	F32Array Backing = iota
	GenericArray
)

const (
	backingF32Array     = "f32-array"
	backingGenericArray = "generic-array"
)

func ParseBacking(s string) (Backing, error) {
	switch s {
	case backingF32Array:
		return F32Array, nil
	case backingGenericArray:
		return GenericArray, nil
	}
	return F32Array, fmt.Errorf("%w: %q", ErrUnknownBacking, s)
}

func (b Backing) String() string {
	switch b {
	case F32Array:
		return backingF32Array
	case GenericArray:
		return backingGenericArray
	}
	return fmt.Sprintf("Backing(%d)", int(b))
}

func (b Backing) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b *Backing) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseBacking(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b Backing) fit(v float64) float64 {
	if b == F32Array {
		return float64(float32(v))
	}
	return v
}

type Config struct {
	Backing Backing `yaml:"backing"`
}

func DefaultConfig() Config {
	return Config{Backing: F32Array}
}

// LoadConfig decodes a YAML document. Keys absent from the document keep
// their DefaultConfig values.
func LoadConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

func (c Config) NewMatrix3D() *Matrix3D {
	m := &Matrix3D{backing: c.Backing}
	return m.MakeIdentity()
}

func (c Config) NewMatrix4D() *Matrix4D {
	m := &Matrix4D{backing: c.Backing}
	return m.MakeIdentity()
}
