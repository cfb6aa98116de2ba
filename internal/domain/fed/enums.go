package fed

// Base is a base a runner can reach.
type Base int

const (
	BaseFirst Base = iota + 1
	BaseSecond
	BaseThird
	BaseFourth
	BaseHome
)

var basePhrases = map[Base]string{
	BaseFirst:  "first base",
	BaseSecond: "second base",
	BaseThird:  "third base",
	BaseFourth: "fourth base",
	BaseHome:   "home",
}

// Phrase is how descriptions name the base.
func (b Base) Phrase() string { return basePhrases[b] }

// Bases lists every base in phrase order.
func Bases() []Base {
	return []Base{BaseFirst, BaseSecond, BaseThird, BaseFourth, BaseHome}
}

// StrikeoutKind says how a batter struck out.
type StrikeoutKind int

const (
	StrikeoutSwinging StrikeoutKind = iota
	StrikeoutLooking
	StrikeoutCharmed
)

// StrikeKind says how a strike was thrown.
type StrikeKind int

const (
	StrikeSwinging StrikeKind = iota
	StrikeLooking
	StrikeFlinching
)

// SpicyStatus is a streak notice on a batter.
type SpicyStatus int

const (
	SpicyHeatingUp SpicyStatus = iota
	SpicyRedHot
	SpicyCooledOff
)

// BlooddrainStat is the ability a blooddrain siphons.
type BlooddrainStat int

const (
	BlooddrainHitting BlooddrainStat = iota
	BlooddrainPitching
	BlooddrainBaserunning
	BlooddrainDefense
)

// HitByPitchEffect is the mod a hit by pitch applies to the batter.
type HitByPitchEffect int

const (
	HitByPitchUnstable HitByPitchEffect = iota
	HitByPitchFlickering
	HitByPitchRepeating
)

// RosterSlot distinguishes lineup and rotation players.
type RosterSlot int

const (
	RosterHitter RosterSlot = iota
	RosterPitcher
)

// SkipReason explains why a batter could not bat.
type SkipReason int

const (
	SkipElsewhere SkipReason = iota
	SkipShelled
)

// ModDuration is how long a modification lasts.
type ModDuration int64

const (
	ModPermanent ModDuration = iota
	ModSeasonal
	ModWeekly
	ModGame
)

// Valid reports whether d is a known duration.
func (d ModDuration) Valid() bool { return d >= ModPermanent && d <= ModGame }

// Weather is the weather announced when a game starts.
type Weather int64

const (
	WeatherVoid Weather = iota
	WeatherSun2
	WeatherOvercast
	WeatherRainy
	WeatherSandstorm
	WeatherSnowy
	WeatherAcidic
	WeatherSolarEclipse
	WeatherGlitter
	WeatherBlooddrain
	WeatherPeanuts
	WeatherBirds
	WeatherFeedback
	WeatherReverb
	WeatherBlackHole
	WeatherCoffee
	WeatherCoffee2
	WeatherCoffee3s
	WeatherFlooding
	WeatherSalmon
	WeatherPolarityPlus
	WeatherPolarityMinus
)

const (
	WeatherSun90 Weather = iota + 23
	WeatherSunPoint1
	WeatherSumSun
	WeatherSupernovaEclipse
	WeatherBlackHoleBlackHole
	WeatherJazz
	WeatherNight
)

// Valid reports whether w is a known weather code.
func (w Weather) Valid() bool {
	return (w >= WeatherVoid && w <= WeatherPolarityMinus) ||
		(w >= WeatherSun90 && w <= WeatherNight)
}
