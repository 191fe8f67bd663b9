package survival

import "testing"

func TestTuning_Defaults(t *testing.T) {
	if StandardTickMinutes != 30 {
		t.Fatalf("StandardTickMinutes = %d, want 30", StandardTickMinutes)
	}
	if MaxSleepPerDay != 720 || WakeValveMinute != 660 {
		t.Fatalf("sleep quota/valve = (%d,%d), want (720,660)", MaxSleepPerDay, WakeValveMinute)
	}
	if MaxFood != 25 || MaxEnergy != 100 {
		t.Fatalf("caps = (%v,%v), want (25,100)", MaxFood, MaxEnergy)
	}
	if TentLogCost != 3 || CabinLogCost != 10 || CabinSkillRequirement != 1.5 {
		t.Fatalf("build costs = (%d,%d,%v), want (3,10,1.5)", TentLogCost, CabinLogCost, CabinSkillRequirement)
	}
	if SpoilRate != 0.15 {
		t.Fatalf("SpoilRate = %v, want 0.15", SpoilRate)
	}
	if FishCatchChance != 0.85 || FishYieldPerSkill != 2.5 || HuntYieldPerSkill != 2.0 {
		t.Fatalf("gather tuning = (%v,%v,%v)", FishCatchChance, FishYieldPerSkill, HuntYieldPerSkill)
	}
}

func TestNextLogCostFollowsTier(t *testing.T) {
	if got := (Shelter{Level: ShelterNone}).NextLogCost(); got != TentLogCost {
		t.Fatalf("tier 0 cost = %d, want %d", got, TentLogCost)
	}
	if got := (Shelter{Level: ShelterTent}).NextLogCost(); got != CabinLogCost {
		t.Fatalf("tier 1 cost = %d, want %d", got, CabinLogCost)
	}
}
