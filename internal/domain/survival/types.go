package survival

import (
	"time"

	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

type FoodKind string

const (
	FoodFish    FoodKind = "fish"
	FoodBerries FoodKind = "berries"
	FoodMeat    FoodKind = "meat"
	FoodJerky   FoodKind = "jerky"
)

// FoodEatOrder lists stock in the order it is eaten: most perishable first.
var FoodEatOrder = []FoodKind{FoodBerries, FoodFish, FoodMeat, FoodJerky}

var PerishableFoods = []FoodKind{FoodFish, FoodBerries, FoodMeat}

type Skills struct {
	Fishing  float64 `json:"fishing"`
	Hunting  float64 `json:"hunting"`
	Building float64 `json:"building"`
}

type ShelterLevel int

const (
	ShelterNone  ShelterLevel = 0
	ShelterTent  ShelterLevel = 1
	ShelterCabin ShelterLevel = 2
)

func (l ShelterLevel) Name() string {
	switch l {
	case ShelterTent:
		return "tent"
	case ShelterCabin:
		return "cabin"
	default:
		return "none"
	}
}

type ShelterTile struct {
	Pos  world.Point    `json:"pos"`
	Code world.TileCode `json:"code"`
}

type Shelter struct {
	Level        ShelterLevel  `json:"level"`
	Tiles        []ShelterTile `json:"tiles"`
	BedPos       *world.Point  `json:"bed_pos,omitempty"`
	StockpilePos *world.Point  `json:"stockpile_pos,omitempty"`
	HasBed       bool          `json:"has_bed"`
	HasStockpile bool          `json:"has_stockpile"`
	Logs         int           `json:"logs"`
}

type Survivor struct {
	Position         world.Point      `json:"position"`
	Food             float64          `json:"food"`
	FoodStock        map[FoodKind]int `json:"food_stock"`
	Energy           float64          `json:"energy"`
	SleepAccumulated int              `json:"sleep_accumulated"`
	SleepDeficit     int              `json:"sleep_deficit"`
	Skills           Skills           `json:"skills"`
	Day              int              `json:"day"`
	TimeOfDay        int              `json:"time_of_day"`
	Period           world.TimePeriod `json:"period"`
	Season           world.Season     `json:"season"`
	Weather          world.Weather    `json:"weather"`
	Alive            bool             `json:"alive"`
	DeathCause       DeathCause       `json:"death_cause,omitempty"`
	CurrentAction    string           `json:"current_action"`
	Sleeping         bool             `json:"sleeping"`
	LastFoodDay      int              `json:"last_food_day"`
	NightsSurvived   int              `json:"nights_survived"`
	PrevPeriod       world.TimePeriod `json:"prev_period"`
	CountedThisNight bool             `json:"counted_this_night"`
	Shelter          Shelter          `json:"shelter"`
}

type ActionKind string

const (
	ActionIdle            ActionKind = "idle"
	ActionSleep           ActionKind = "sleep"
	ActionWake            ActionKind = "wake"
	ActionReturnToBed     ActionKind = "return_to_bed"
	ActionSeekFish        ActionKind = "seek_fish"
	ActionSeekGame        ActionKind = "seek_game"
	ActionSeekTrees       ActionKind = "seek_trees"
	ActionSeekLogs        ActionKind = "seek_logs"
	ActionCreateStockpile ActionKind = "create_stockpile"
	ActionPrepareBuild    ActionKind = "prepare_build"
	ActionSeekRiver       ActionKind = "seek_river"
	ActionSeekForest      ActionKind = "seek_forest"
	ActionWander          ActionKind = "wander"

	ActionFish           ActionKind = "fish"
	ActionHunt           ActionKind = "hunt"
	ActionForage         ActionKind = "forage"
	ActionChop           ActionKind = "chop"
	ActionBuild          ActionKind = "build"
	ActionGatherLogs     ActionKind = "gather_logs"
	ActionPlaceBed       ActionKind = "place_bed"
	ActionPlaceStockpile ActionKind = "place_stockpile"
)

type Decision struct {
	Kind  ActionKind `json:"kind"`
	Moved bool       `json:"moved"`
}

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

type DeathCause string

const (
	DeathCauseUnknown    DeathCause = "unknown"
	DeathCauseStarvation DeathCause = "starvation"
	DeathCauseExhaustion DeathCause = "exhaustion"
)
