package registry

import "github.com/TheLukeGuy/minestodon/text"

// BiomePrecipitation is the kind of weather a biome falls under.
type BiomePrecipitation string

const (
	PrecipitationNone BiomePrecipitation = "none"
	PrecipitationRain BiomePrecipitation = "rain"
	PrecipitationSnow BiomePrecipitation = "snow"
)

// BiomeTemperatureModifier adjusts how a biome's temperature varies.
type BiomeTemperatureModifier string

const (
	TemperatureModifierNone   BiomeTemperatureModifier = "none"
	TemperatureModifierFrozen BiomeTemperatureModifier = "frozen"
)

// BiomeGrassColorModifier adjusts a biome's rendered grass color.
type BiomeGrassColorModifier string

const (
	GrassColorModifierNone       BiomeGrassColorModifier = "none"
	GrassColorModifierDarkForest BiomeGrassColorModifier = "dark_forest"
	GrassColorModifierSwamp      BiomeGrassColorModifier = "swamp"
)

type BiomeWeather struct {
	Precipitation        BiomePrecipitation        `nbt:"precipitation" json:"precipitation"`
	Temperature          float32                   `nbt:"temperature" json:"temperature"`
	TemperatureModifier  *BiomeTemperatureModifier `nbt:"temperature_modifier,omitempty" json:"temperature_modifier,omitempty"`
	Downfall             float32                   `nbt:"downfall" json:"downfall"`
}

type BiomeEffects struct {
	FogColor           int32                    `nbt:"fog_color" json:"fog_color"`
	WaterColor         int32                    `nbt:"water_color" json:"water_color"`
	WaterFogColor      int32                    `nbt:"water_fog_color" json:"water_fog_color"`
	SkyColor           int32                    `nbt:"sky_color" json:"sky_color"`
	FoliageColor       *int32                   `nbt:"foliage_color,omitempty" json:"foliage_color,omitempty"`
	GrassColor         *int32                   `nbt:"grass_color,omitempty" json:"grass_color,omitempty"`
	GrassColorModifier *BiomeGrassColorModifier `nbt:"grass_color_modifier,omitempty" json:"grass_color_modifier,omitempty"`
}

type Biome struct {
	BiomeWeather
	Effects BiomeEffects `nbt:"effects" json:"effects"`
}

// DimensionEffects selects which client-side sky/fog rendering a dimension
// type uses.
type DimensionEffects string

const (
	DimensionEffectsOverworld DimensionEffects = "minecraft:overworld"
	DimensionEffectsNether    DimensionEffects = "minecraft:the_nether"
	DimensionEffectsEnd       DimensionEffects = "minecraft:the_end"
)

// InfiniteBurnTag names the block tag lava burns indefinitely through.
type InfiniteBurnTag string

const (
	InfiniteBurnOverworld InfiniteBurnTag = "#minecraft:infiniburn_overworld"
	InfiniteBurnNether    InfiniteBurnTag = "#minecraft:infiniburn_nether"
	InfiniteBurnEnd       InfiniteBurnTag = "#minecraft:infiniburn_end"
)

type MonsterSettings struct {
	PiglinSafe                    bool  `nbt:"piglin_safe" json:"piglin_safe"`
	Raids                         bool  `nbt:"has_raids" json:"has_raids"`
	MonsterSpawnLightLevel        int32 `nbt:"monster_spawn_light_level" json:"monster_spawn_light_level"`
	MonsterSpawnBlockLightLimit   int32 `nbt:"monster_spawn_block_light_limit" json:"monster_spawn_block_light_limit"`
}

type DimensionType struct {
	FixedTime            *int64           `nbt:"fixed_time,omitempty" json:"fixed_time,omitempty"`
	SkyLight             bool             `nbt:"has_skylight" json:"has_skylight"`
	Ceiling              bool             `nbt:"has_ceiling" json:"has_ceiling"`
	UltraWarm            bool             `nbt:"ultrawarm" json:"ultrawarm"`
	Natural              bool             `nbt:"natural" json:"natural"`
	CoordinateScale      float64          `nbt:"coordinate_scale" json:"coordinate_scale"`
	BedWorks             bool             `nbt:"bed_works" json:"bed_works"`
	RespawnAnchorWorks   bool             `nbt:"respawn_anchor_works" json:"respawn_anchor_works"`
	MinHeight            int32            `nbt:"min_y" json:"min_y"`
	MaxHeight            int32            `nbt:"height" json:"height"`
	MaxLogicalHeight     int32            `nbt:"logical_height" json:"logical_height"`
	InfiniteBurnTag      InfiniteBurnTag  `nbt:"infiniburn" json:"infiniburn"`
	Effects              DimensionEffects `nbt:"effects" json:"effects"`
	AmbientLight         float32          `nbt:"ambient_light" json:"ambient_light"`
	MonsterSettings
}

// ChatType is an empty placeholder element: the minimum client-facing
// registry set must carry the type, even with no concrete entries, for a
// vanilla client to accept the join.
type ChatType struct{}

var (
	Biomes         Registry[Biome]
	DimensionTypes Registry[DimensionType]
	ChatTypes      Registry[ChatType]
)

// InitAll initializes and populates every world registry with the minimum
// entries a vanilla 1.19.3 client needs to accept the join: one plains
// biome and one overworld-shaped dimension type. It must run exactly once,
// before the first connection reaches Play.
func InitAll() {
	Biomes.Init()
	DimensionTypes.Init()
	ChatTypes.Init()

	Biomes.Register(text.MustIdentifier("minecraft:plains"), Biome{
		BiomeWeather: BiomeWeather{
			Precipitation: PrecipitationRain,
			Temperature:   0.8,
			Downfall:      0.4,
		},
		Effects: BiomeEffects{
			FogColor:      0xc0d8ff,
			WaterColor:    0x3f76e4,
			WaterFogColor: 0x050533,
			SkyColor:      0x78a7ff,
		},
	})

	DimensionTypes.Register(text.MustIdentifier("minecraft:overworld"), DimensionType{
		SkyLight:           true,
		Ceiling:            false,
		UltraWarm:          false,
		Natural:            true,
		CoordinateScale:    1.0,
		BedWorks:           true,
		RespawnAnchorWorks: false,
		MinHeight:          -64,
		MaxHeight:          384,
		MaxLogicalHeight:   384,
		InfiniteBurnTag:    InfiniteBurnOverworld,
		Effects:            DimensionEffectsOverworld,
		AmbientLight:       0.0,
		MonsterSettings: MonsterSettings{
			PiglinSafe:                  false,
			Raids:                       true,
			MonsterSpawnLightLevel:      0,
			MonsterSpawnBlockLightLimit: 0,
		},
	})
}

// Compound is the play-login `registries` NBT payload: one tagged registry
// per registry type, keyed by its Minecraft registry identifier.
type Compound struct {
	Biome         Tagged[Biome]         `nbt:"minecraft:worldgen/biome" json:"minecraft:worldgen/biome"`
	ChatType      Tagged[ChatType]      `nbt:"minecraft:chat_type" json:"minecraft:chat_type"`
	DimensionType Tagged[DimensionType] `nbt:"minecraft:dimension_type" json:"minecraft:dimension_type"`
}

// BuildCompound snapshots all world registries into the shape play-login
// sends.
func BuildCompound() Compound {
	return Compound{
		Biome:         Biomes.Tagged("minecraft:worldgen/biome"),
		ChatType:      ChatTypes.Tagged("minecraft:chat_type"),
		DimensionType: DimensionTypes.Tagged("minecraft:dimension_type"),
	}
}
