package survival

func Sleep(s *Survivor) bool {
	if !s.Shelter.HasBed || s.Sleeping {
		return false
	}
	s.Sleeping = true
	s.CurrentAction = "Sleeping..."
	return true
}

// WakeUp ends sleep once the daily quota is met or the clock reaches 11:00.
// Only a full quota clears the sleep deficit.
func WakeUp(s *Survivor) bool {
	if !s.Sleeping {
		return false
	}
	full := s.SleepAccumulated >= MaxSleepPerDay
	if !full && s.TimeOfDay < WakeValveMinute {
		return false
	}
	s.Sleeping = false
	if full {
		s.SleepDeficit = 0
	}
	s.CurrentAction = "Woke up refreshed"
	return true
}
