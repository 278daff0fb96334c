package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/assetids/internal/domain/entities"
)

const yamlDump = `game: echoes
assets:
  - id: 0x3BFA3EFF
    kind: MLVL
    world:
      name_id: 0x00000010
      world_map_id: 0x00000011
      areas:
        - {id: 0x00000020, name_id: 0x00000021, internal_name: 00_landing_site, map_id: 0x00000022}
  - id: 0x00000020
    kind: MREA
    area:
      layers:
        - name: Default
          instances:
            - {id: 1, type: DOCK, name: Dock A, properties: {dock_number: 0}}
  - id: 0x00000010
    kind: STRG
    strings:
      tables: [["Temple Grounds"]]
  - id: 0x00000021
    kind: STRG
    strings:
      encoding: utf-16be
      raw: AEwAYQBuAGQAaQBuAGcAIABTAGkAdABlAAA=
`

const jsonDump = `{
  "game": "echoes",
  "assets": [
    {"id": "0x3BFA3EFF", "kind": "MLVL", "world": {"name_id": "0x00000010", "world_map_id": 17, "areas": [
      {"id": "0x00000020", "name_id": "0x00000021", "internal_name": "00_landing_site", "map_id": "0x00000022"}
    ]}},
    {"id": "0x00000020", "kind": "MREA", "area": {"layers": [
      {"name": "Default", "instances": [{"id": 1, "type": "DOCK", "name": "Dock A", "properties": {"dock_number": 0}}]}
    ]}},
    {"id": "0x00000010", "kind": "STRG", "strings": {"tables": [["Temple Grounds"]]}},
    {"id": "0x00000021", "kind": "STRG", "strings": {"encoding": "utf-16be", "raw": "AEwAYQBuAGQAaQBuAGcAIABTAGkAdABlAAA="}}
  ]
}`

func TestParsers_Parse(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser
		input  string
	}{
		{name: "yaml", parser: &YAMLParser{}, input: yamlDump},
		{name: "json", parser: &JSONParser{}, input: jsonDump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dump, err := tt.parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, "echoes", dump.Game)
			require.Len(t, dump.Assets, 4)

			world := dump.Assets[0]
			assert.Equal(t, entities.AssetID(0x3BFA3EFF), world.ID)
			assert.Equal(t, "MLVL", world.Kind)
			assert.Equal(t, 1, world.Index)
			require.NotNil(t, world.World)
			assert.Equal(t, entities.AssetID(0x10), world.World.NameID)
			assert.Equal(t, entities.AssetID(0x11), world.World.WorldMapID)
			assert.Equal(t, []entities.AreaEntry{
				{ID: 0x20, NameID: 0x21, InternalName: "00_landing_site", MapID: 0x22},
			}, world.World.Areas)

			area := dump.Assets[1]
			require.NotNil(t, area.Area)
			require.Len(t, area.Area.ScriptLayers, 1)
			dock, err := area.Area.ScriptLayers[0].Instances[0].AsDock()
			require.NoError(t, err)
			assert.Equal(t, entities.Dock{Name: "Dock A", Number: 0}, dock)

			require.NotNil(t, dump.Assets[2].Strings)
			assert.Equal(t, [][]string{{"Temple Grounds"}}, dump.Assets[2].Strings.Tables)
			assert.Equal(t, "utf-16be", dump.Assets[3].Strings.Encoding)
			assert.Equal(t, 4, dump.Assets[3].Index)
		})
	}
}

func TestParsers_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser
		input  string
	}{
		{name: "json syntax", parser: &JSONParser{}, input: `{"assets": [`},
		{name: "json bad id", parser: &JSONParser{}, input: `{"assets": [{"id": "zz", "kind": "MLVL"}]}`},
		{name: "yaml syntax", parser: &YAMLParser{}, input: "assets: [\n"},
		{name: "yaml list id", parser: &YAMLParser{}, input: "assets:\n  - id: [1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parser.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}

func TestYAMLParser_Parse_Empty(t *testing.T) {
	dump, err := (&YAMLParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, dump.Assets)
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("JSON"))
	assert.IsType(t, &YAMLParser{}, ForFormat("yaml"))
	assert.IsType(t, &YAMLParser{}, ForFormat("yml"))
	assert.Nil(t, ForFormat("csv"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("dump.json"))
	assert.IsType(t, &YAMLParser{}, ForFile("/tmp/DUMP.YAML"))
	assert.IsType(t, &YAMLParser{}, ForFile("dump.yml"))
	assert.Nil(t, ForFile("dump.txt"))
}
