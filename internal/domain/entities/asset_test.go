package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAssetID_String(t *testing.T) {
	assert.Equal(t, "0x69802220", AssetID(0x69802220).String())
	assert.Equal(t, "0x0000000A", AssetID(10).String())
	assert.Equal(t, "0xFFFFFFFF", AssetID(0xFFFFFFFF).String())
}

func TestParseAssetID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected AssetID
		wantErr  bool
	}{
		{name: "hex", input: "0x69802220", expected: 0x69802220},
		{name: "upper hex prefix", input: "0XA50A80CC", expected: 0xA50A80CC},
		{name: "decimal", input: "42", expected: 42},
		{name: "surrounding spaces", input: "  0x10 ", expected: 0x10},
		{name: "overflow", input: "0x100000000", wantErr: true},
		{name: "garbage", input: "frontend", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseAssetID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestAssetID_UnmarshalJSON(t *testing.T) {
	var v struct {
		A AssetID `json:"a"`
		B AssetID `json:"b"`
	}
	err := json.Unmarshal([]byte(`{"a": "0x233E42BE", "b": 17}`), &v)
	require.NoError(t, err)
	assert.Equal(t, AssetID(0x233E42BE), v.A)
	assert.Equal(t, AssetID(17), v.B)

	err = json.Unmarshal([]byte(`{"a": true}`), &v)
	require.Error(t, err)
}

func TestAssetID_UnmarshalYAML(t *testing.T) {
	var v struct {
		A AssetID `yaml:"a"`
		B AssetID `yaml:"b"`
		C AssetID `yaml:"c"`
	}
	err := yaml.Unmarshal([]byte("a: 0x406ADD7F\nb: \"0x7E19ED26\"\nc: 5\n"), &v)
	require.NoError(t, err)
	assert.Equal(t, AssetID(0x406ADD7F), v.A)
	assert.Equal(t, AssetID(0x7E19ED26), v.B)
	assert.Equal(t, AssetID(5), v.C)

	err = yaml.Unmarshal([]byte("a: [1, 2]\n"), &v)
	require.Error(t, err)
}

func TestObjectInstance_AsDock(t *testing.T) {
	tests := []struct {
		name     string
		instance ObjectInstance
		expected Dock
		wantErr  bool
	}{
		{
			name:     "yaml int",
			instance: ObjectInstance{TypeName: "DOCK", Name: "Dock A", Properties: map[string]any{"dock_number": 2}},
			expected: Dock{Name: "Dock A", Number: 2},
		},
		{
			name:     "json float",
			instance: ObjectInstance{TypeName: "DOCK", Name: "Dock B", Properties: map[string]any{"dock_number": float64(1)}},
			expected: Dock{Name: "Dock B", Number: 1},
		},
		{
			name:     "fractional number",
			instance: ObjectInstance{TypeName: "DOCK", Name: "Dock C", Properties: map[string]any{"dock_number": 1.5}},
			wantErr:  true,
		},
		{
			name:     "missing number",
			instance: ObjectInstance{TypeName: "DOCK", Name: "Dock D"},
			wantErr:  true,
		},
		{
			name:     "not a dock",
			instance: ObjectInstance{TypeName: "ACTR", Name: "Actor"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dock, err := tt.instance.AsDock()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dock)
		})
	}
}

func TestDockTable_ByNumber(t *testing.T) {
	table := DockTable{"C": 2, "A": 0, "B": 1}
	assert.Equal(t, []Dock{{Name: "A", Number: 0}, {Name: "B", Number: 1}, {Name: "C", Number: 2}}, table.ByNumber())
}

func TestParseGame(t *testing.T) {
	g, err := ParseGame(" Echoes ")
	require.NoError(t, err)
	assert.Equal(t, GameEchoes, g)

	_, err = ParseGame("metroid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "echoes")
}

func TestTitleOverrides_Clone(t *testing.T) {
	orig := TitleOverrides{Worlds: map[AssetID]string{1: "One"}}
	c := orig.Clone()
	c.Worlds[1] = "Changed"
	c.Areas[2] = "Two"

	assert.Equal(t, "One", orig.Worlds[1])
	assert.Nil(t, orig.Areas)
}
