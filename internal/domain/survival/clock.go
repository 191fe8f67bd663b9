package survival

import "github.com/stealthstack/survivesimgame/internal/domain/world"

type Clock struct {
	StepMinutes int
	Weather     world.WeatherTable
}

func NewClock(stepMinutes int, weather world.WeatherTable) Clock {
	return Clock{StepMinutes: stepMinutes, Weather: weather}
}

func DefaultClock() Clock {
	return NewClock(StandardTickMinutes, world.DefaultWeatherTable())
}

type ClockEvents struct {
	DayRolledOver bool
	NightStarted  bool
	Eaten         int
}

func (c Clock) step() int {
	if c.StepMinutes <= 0 || c.StepMinutes > world.MinutesPerDay {
		return StandardTickMinutes
	}
	return c.StepMinutes
}

// Advance moves the survivor's clock forward one tick. A wrap past midnight
// rolls the day exactly once: season, weather and the daily meal follow it.
func (c Clock) Advance(s *Survivor, rng Rand) ClockEvents {
	step := c.step()
	var ev ClockEvents

	s.TimeOfDay += step
	if s.TimeOfDay >= world.MinutesPerDay {
		s.TimeOfDay -= world.MinutesPerDay
		s.Day++
		s.Season = world.SeasonForDay(s.Day)
		table := c.Weather
		if table == nil {
			table = world.DefaultWeatherTable()
		}
		s.Weather = table.Sample(rng, s.Season)
		ev.DayRolledOver = true
		ev.Eaten = EatFood(s)
	}

	s.Period = world.PeriodAt(s.TimeOfDay)

	if s.Sleeping {
		s.SleepAccumulated += step
		if s.Period == world.PeriodNight {
			s.restoreEnergy(SleepNightEnergyGain)
		} else {
			s.restoreEnergy(SleepDayEnergyGain)
		}
	}

	// The minute-0 boundary is crossed exactly when the day rolls over.
	if ev.DayRolledOver {
		if s.SleepAccumulated < MaxSleepPerDay {
			s.SleepDeficit += (MaxSleepPerDay - s.SleepAccumulated) / 60
		}
		s.SleepAccumulated = 0
	}

	if s.Period == world.PeriodNight && s.PrevPeriod != world.PeriodNight {
		s.CountedThisNight = false
		ev.NightStarted = true
	}
	s.PrevPeriod = s.Period
	return ev
}
