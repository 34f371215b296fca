// Package terrain assigns one terrain category to each province by weighted
// voting over the terrain, tree and river rasters, and projects the
// low-resolution tree raster onto the terrain grid with the game's own
// staggered placement rule.
package terrain

import "province-mapper/pkg/colorutil"

// GameplayType is the broad terrain group used for gameplay effects. A
// category may have no gameplay type at all (GameplayNone); a string that was
// present but not recognized parses to GameplayUnknown so the caller can tell
// the two apart.
type GameplayType int

const (
	GameplayNone GameplayType = iota
	GameplayUnknown
	GameplayPTI
	GameplayPlains
	GameplayForest
	GameplayHills
	GameplayMountains
	GameplayJungle
	GameplayMarsh
	GameplayDesert
)

var gameplayNames = map[string]GameplayType{
	"pti":       GameplayPTI,
	"plains":    GameplayPlains,
	"forest":    GameplayForest,
	"hills":     GameplayHills,
	"mountains": GameplayMountains,
	"jungle":    GameplayJungle,
	"marsh":     GameplayMarsh,
	"desert":    GameplayDesert,
}

// ParseGameplayType parses a gameplay type string. The empty string means the
// field was absent; any other unrecognized value maps to GameplayUnknown.
func ParseGameplayType(s string) GameplayType {
	if s == "" {
		return GameplayNone
	}
	if t, ok := gameplayNames[s]; ok {
		return t
	}
	return GameplayUnknown
}

func (t GameplayType) String() string {
	for name, v := range gameplayNames {
		if v == t {
			return name
		}
	}
	if t == GameplayUnknown {
		return "unknown"
	}
	return "none"
}

// SoundType selects the ambient sound played over the terrain. Same
// absent/unknown distinction as GameplayType.
type SoundType int

const (
	SoundNone SoundType = iota
	SoundUnknown
	SoundPlains
	SoundForest
	SoundDesert
	SoundSea
	SoundJungle
	SoundMountains
)

var soundNames = map[string]SoundType{
	"plains":    SoundPlains,
	"forest":    SoundForest,
	"desert":    SoundDesert,
	"sea":       SoundSea,
	"jungle":    SoundJungle,
	"mountains": SoundMountains,
}

// ParseSoundType parses a sound type string. The empty string means the field
// was absent; any other unrecognized value maps to SoundUnknown.
func ParseSoundType(s string) SoundType {
	if s == "" {
		return SoundNone
	}
	if t, ok := soundNames[s]; ok {
		return t
	}
	return SoundUnknown
}

func (t SoundType) String() string {
	for name, v := range soundNames {
		if v == t {
			return name
		}
	}
	if t == SoundUnknown {
		return "unknown"
	}
	return "none"
}

// Category is a terrain category: a named classification with a display
// color, water flags, and an optional list of provinces manually forced to
// this terrain regardless of voting.
type Category struct {
	Name         string
	Color        colorutil.RGB
	GameplayType GameplayType
	SoundType    SoundType
	IsWater      bool
	IsInlandSea  bool
	Overrides    []int
}
