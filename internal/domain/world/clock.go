package world

import "fmt"

const (
	MinutesPerDay = 1440
	DaysPerSeason = 10
)

type TimePeriod string

const (
	PeriodDawn      TimePeriod = "dawn"
	PeriodMorning   TimePeriod = "morning"
	PeriodAfternoon TimePeriod = "afternoon"
	PeriodDusk      TimePeriod = "dusk"
	PeriodNight     TimePeriod = "night"
)

// PeriodAt maps a minute of the day onto its period band. NIGHT wraps midnight.
func PeriodAt(minute int) TimePeriod {
	switch {
	case minute >= 300 && minute < 420:
		return PeriodDawn
	case minute >= 420 && minute < 720:
		return PeriodMorning
	case minute >= 720 && minute < 1020:
		return PeriodAfternoon
	case minute >= 1020 && minute < 1200:
		return PeriodDusk
	default:
		return PeriodNight
	}
}

type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
	SeasonWinter Season = "Winter"
)

var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

func SeasonForDay(day int) Season {
	if day < 0 {
		day = 0
	}
	return Seasons[(day/DaysPerSeason)%len(Seasons)]
}

func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
