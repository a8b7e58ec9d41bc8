package models

// SurfaceType identifies the physical object a marker is painted on
type SurfaceType string

const (
	SurfacePole         SurfaceType = "pole"
	SurfaceSign         SurfaceType = "sign"
	SurfaceEBox         SurfaceType = "ebox"
	SurfaceWall         SurfaceType = "wall"
	SurfaceFence        SurfaceType = "fence"
	SurfaceDumpster     SurfaceType = "dumpster"
	SurfaceBusStop      SurfaceType = "bus_stop"
	SurfaceBillboard    SurfaceType = "billboard"
	SurfaceTunnel       SurfaceType = "tunnel"
	SurfaceWaterTower   SurfaceType = "water_tower"
	SurfaceBridge       SurfaceType = "bridge"
	SurfaceRooftop      SurfaceType = "rooftop"
	SurfaceTrain        SurfaceType = "train"
	SurfaceTruck        SurfaceType = "truck"
	SurfaceVan          SurfaceType = "van"
	SurfaceSpeedCamera  SurfaceType = "speed_camera"
	SurfaceTrafficLight SurfaceType = "traffic_light"
)

// SurfaceCategory groups surfaces that share a REP multiplier
type SurfaceCategory string

const (
	CategoryStreet    SurfaceCategory = "street"
	CategoryStructure SurfaceCategory = "structure"
	CategoryElevated  SurfaceCategory = "elevated"
	CategoryTransit   SurfaceCategory = "transit"
	CategoryHazard    SurfaceCategory = "hazard"
)

// SurfaceConfig is the static catalog entry for a surface
type SurfaceConfig struct {
	ID         SurfaceType     `json:"id"`
	Label      string          `json:"label"`
	Icon       string          `json:"icon"`
	BaseRep    int             `json:"base_rep"`
	Category   SurfaceCategory `json:"category"`
	Multiplier float64         `json:"multiplier"` // Taken from the category table
}

// GraffitiType identifies the style or technique of a marker
type GraffitiType string

const (
	GraffitiTag       GraffitiType = "tag"
	GraffitiSticker   GraffitiType = "sticker"
	GraffitiEtch      GraffitiType = "etch"
	GraffitiMops      GraffitiType = "mops"
	GraffitiStencil   GraffitiType = "stencil"
	GraffitiPasteUp   GraffitiType = "paste_up"
	GraffitiThrowUp   GraffitiType = "throw_up"
	GraffitiRoller    GraffitiType = "roller"
	GraffitiPiece     GraffitiType = "piece"
	GraffitiWildstyle GraffitiType = "wildstyle"
	GraffitiRapel     GraffitiType = "rapel"
	GraffitiBurner    GraffitiType = "burner"
	GraffitiMural     GraffitiType = "mural"
)

// Difficulty is the skill tier of a graffiti type
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// GraffitiTypeConfig is the static catalog entry for a graffiti type
type GraffitiTypeConfig struct {
	ID         GraffitiType `json:"id"`
	Label      string       `json:"label"`
	Icon       string       `json:"icon"`
	BaseRep    int          `json:"base_rep"`
	Difficulty Difficulty   `json:"difficulty"`
	Family     string       `json:"family"` // "tagging", "bombing", "print", "piecing", "production"
}
