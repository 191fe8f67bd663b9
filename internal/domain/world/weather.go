package world

type Weather string

const (
	WeatherClear    Weather = "Clear"
	WeatherRainy    Weather = "Rainy"
	WeatherWindy    Weather = "Windy"
	WeatherHot      Weather = "Hot"
	WeatherStormy   Weather = "Stormy"
	WeatherFoggy    Weather = "Foggy"
	WeatherSnowy    Weather = "Snowy"
	WeatherCold     Weather = "Cold"
	WeatherBlizzard Weather = "Blizzard"
)

var AllWeather = []Weather{
	WeatherClear, WeatherRainy, WeatherWindy, WeatherHot, WeatherStormy,
	WeatherFoggy, WeatherSnowy, WeatherCold, WeatherBlizzard,
}

// Adverse weather raises the cost of a night spent without shelter.
func (w Weather) Adverse() bool {
	switch w {
	case WeatherRainy, WeatherStormy, WeatherSnowy, WeatherBlizzard:
		return true
	default:
		return false
	}
}

type WeightedWeather struct {
	Weather Weather `yaml:"weather" json:"weather"`
	Weight  int     `yaml:"weight" json:"weight"`
}

type WeatherTable map[Season][]WeightedWeather

func DefaultWeatherTable() WeatherTable {
	return WeatherTable{
		SeasonSpring: {{WeatherClear, 8}, {WeatherRainy, 5}, {WeatherWindy, 2}},
		SeasonSummer: {{WeatherClear, 10}, {WeatherHot, 4}, {WeatherStormy, 1}},
		SeasonFall:   {{WeatherClear, 8}, {WeatherWindy, 5}, {WeatherFoggy, 2}},
		SeasonWinter: {{WeatherSnowy, 5}, {WeatherCold, 8}, {WeatherBlizzard, 2}},
	}
}

type IntSampler interface {
	IntN(n int) int
}

// Sample draws a weighted choice for the season. Seasons missing from the
// table, or with no positive weight, fall back to Clear.
func (t WeatherTable) Sample(rng IntSampler, season Season) Weather {
	options := t[season]
	total := 0
	for _, o := range options {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total == 0 {
		return WeatherClear
	}
	roll := rng.IntN(total)
	for _, o := range options {
		if o.Weight <= 0 {
			continue
		}
		if roll < o.Weight {
			return o.Weather
		}
		roll -= o.Weight
	}
	return options[len(options)-1].Weather
}
