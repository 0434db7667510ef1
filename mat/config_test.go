package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseBacking(t *testing.T) {
	testCases := map[string]struct {
		in       string
		expected Backing
		err      error
	}{
		"F32":     {in: "f32-array", expected: F32Array},
		"Generic": {in: "generic-array", expected: GenericArray},
		"Unknown": {in: "f64-array", err: ErrUnknownBacking},
		"Empty":   {in: "", err: ErrUnknownBacking},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			b, err := ParseBacking(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)
			assert.Equal(t, tt.in, b.String())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	testCases := map[string]struct {
		in       string
		expected Config
		err      error
	}{
		"Generic": {
			in:       "backing: generic-array\n",
			expected: Config{Backing: GenericArray},
		},
		"F32": {
			in:       "backing: f32-array\n",
			expected: Config{Backing: F32Array},
		},
		"Empty": {
			in:       "",
			expected: DefaultConfig(),
		},
		"UnknownBacking": {
			in:  "backing: f16-array\n",
			err: ErrUnknownBacking,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c, err := LoadConfig([]byte(tt.in))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig([]byte("backing: [f32-array"))
	assert.Error(t, err)
}

func TestConfigMarshal(t *testing.T) {
	b, err := yaml.Marshal(Config{Backing: GenericArray})
	require.NoError(t, err)
	assert.Equal(t, "backing: generic-array\n", string(b))

	c, err := LoadConfig(b)
	require.NoError(t, err)
	assert.Equal(t, GenericArray, c.Backing)
}

func TestConfigConstructors(t *testing.T) {
	for _, b := range []Backing{F32Array, GenericArray} {
		c := Config{Backing: b}
		m3 := c.NewMatrix3D()
		assert.Equal(t, b, m3.Backing())
		assert.Equal(t, NewMatrix3D().Data, m3.Data)

		m4 := c.NewMatrix4D()
		assert.Equal(t, b, m4.Backing())
		assert.Equal(t, identity4(), m4.Data)
	}
}

func TestBackingPrecision(t *testing.T) {
	f32 := NewMatrix4D().MakeTranslation(0.1, 0.2, 0.3)
	assert.Equal(t, float64(float32(0.1)), f32.Data[12])
	assert.NotEqual(t, 0.1, f32.Data[12])

	generic := Config{Backing: GenericArray}.NewMatrix4D().MakeTranslation(0.1, 0.2, 0.3)
	assert.Equal(t, 0.1, generic.Data[12])

	// Results are rounded on store into the destination's own backing.
	dst := NewMatrix4D()
	generic.MultiplyTo(NewMatrix4D(), dst)
	assert.Equal(t, float64(float32(0.2)), dst.Data[13])
}
