package survival

const (
	StandardTickMinutes = 30

	MaxSleepHours   = 12
	MaxSleepPerDay  = MaxSleepHours * 60
	WakeValveMinute = 660

	MaxFood   = 25.0
	MaxEnergy = 100.0

	StartFood     = 25.0
	StartEnergy   = 100.0
	StartMinute   = 600
	StartFishing  = 1.2
	StartHunting  = 1.2
	StartBuilding = 1.0

	SleepNightEnergyGain = 20
	SleepDayEnergyGain   = 10

	SpoilRate = 0.15

	FishCatchChance   = 0.85
	FishYieldPerSkill = 2.5
	HuntYieldPerSkill = 2.0
	YieldStdDev       = 1.0
	FishingSkillGain  = 0.05
	HuntingSkillGain  = 0.1

	FishEnergyCost     = 6
	FishMissEnergyCost = 3
	HuntEnergyCost     = 8
	ForageEnergyCost   = 3

	ChopMinEnergy        = 15
	ChopEnergyCost       = 15
	ChopBuildingGain     = 0.2
	GatherLogsMinEnergy  = 5
	GatherLogsEnergyCost = 5
	StockpileMinEnergy   = 10
	StockpileEnergyCost  = 10
	StockpileReach       = 2

	BuildEnergyCost       = 10
	BuildBuildingGain     = 0.05
	TentLogCost           = 3
	TentClearance         = 1
	TentMinTrees          = 3
	CabinLogCost          = 10
	CabinClearance        = 2
	CabinSkillRequirement = 1.5

	MoveEnergyCost   = 2
	WanderEnergyCost = 1

	NightEnergyCost             = 10
	NightBuildingGain           = 0.1
	NightConsumptionSheltered   = 1.0
	NightConsumptionUnsheltered = 2.0
	NightDeficitFactorPerHour   = 0.1
	NightExposureFactor         = 2.0
	NightAdverseWeatherFactor   = 1.5
	NightBedFactor              = 0.6
	NightStockpileFactor        = 0.7
	NightWinterFactor           = 1.3
	NightMinConsumption         = 0.5

	WakeEnergyThreshold   = 80
	SleepEnergyThreshold  = 20
	UrgentEnergyThreshold = 30
	UrgentDeficitHours    = 6
	LowFoodThreshold      = 5
	FoodGapDays           = 2

	SeekFishChance     = 0.7
	SeekTreeChance     = 0.7
	StockpileChance    = 0.5
	SeasonalBiasChance = 0.6
	ChopChance         = 0.3
	ForageChance       = 0.3
	FurnishChance      = 0.1
)
