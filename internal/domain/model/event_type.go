package model

import (
	"slices"
	"strconv"
)

// EventType is the numeric type code of a feed record.
// The enumeration is append-only; upstream introduces new codes over time.
type EventType int64

// Known event type codes.
const (
	TypeLetsGo                          EventType = 0
	TypePlayBall                        EventType = 1
	TypeHalfInning                      EventType = 2
	TypePitcherChange                   EventType = 3
	TypeStolenBase                      EventType = 4
	TypeWalk                            EventType = 5
	TypeStrikeout                       EventType = 6
	TypeFlyOut                          EventType = 7
	TypeGroundOut                       EventType = 8
	TypeHomeRun                         EventType = 9
	TypeHit                             EventType = 10
	TypeGameEnd                         EventType = 11
	TypeBatterUp                        EventType = 12
	TypeStrike                          EventType = 13
	TypeBall                            EventType = 14
	TypeFoulBall                        EventType = 15
	TypeShamingRun                      EventType = 20
	TypeHomeFieldAdvantage              EventType = 21
	TypeHitByPitch                      EventType = 22
	TypeBatterSkipped                   EventType = 23
	TypeParty                           EventType = 24
	TypeStrikeZapped                    EventType = 25
	TypeWeatherChange                   EventType = 26
	TypeMildPitch                       EventType = 27
	TypeInningEnd                       EventType = 28
	TypeBigDeal                         EventType = 29
	TypeBlackHole                       EventType = 30
	TypeSun2                            EventType = 31
	TypeBirdsCircle                     EventType = 33
	TypeFriendOfCrows                   EventType = 34
	TypeBirdsUnshell                    EventType = 35
	TypeBecomeTripleThreat              EventType = 36
	TypeGainFreeRefill                  EventType = 37
	TypeCoffeeBean                      EventType = 39
	TypeFeedbackBlocked                 EventType = 40
	TypeFeedbackSwap                    EventType = 41
	TypeSuperallergicReaction           EventType = 45
	TypeAllergicReaction                EventType = 47
	TypeReverbBestowsReverberating      EventType = 48
	TypeReverbRosterShuffle             EventType = 49
	TypeBlooddrain                      EventType = 51
	TypeBlooddrainSiphon                EventType = 52
	TypeBlooddrainBlocked               EventType = 53
	TypeIncineration                    EventType = 54
	TypeIncinerationBlocked             EventType = 55
	TypeFlagPlanted                     EventType = 56
	TypeRenovationBuilt                 EventType = 57
	TypeLightSwitchToggled              EventType = 58
	TypeDecreePassed                    EventType = 59
	TypeBlessingOrGiftWon               EventType = 60
	TypeWillReceived                    EventType = 61
	TypeFloodingSwept                   EventType = 62
	TypeSalmonSwim                      EventType = 63
	TypePolarityShift                   EventType = 64
	TypeEnterSecretBase                 EventType = 65
	TypeExitSecretBase                  EventType = 66
	TypeConsumersAttack                 EventType = 67
	TypeEchoChamber                     EventType = 69
	TypeGrindRail                       EventType = 70
	TypeTunnelsUsed                     EventType = 71
	TypePeanutMister                    EventType = 72
	TypePeanutFlavorText                EventType = 73
	TypeTasteTheInfinite                EventType = 74
	TypeEventHorizonActivation          EventType = 76
	TypeEventHorizonAwaits              EventType = 77
	TypeSolarPanelsAwait                EventType = 78
	TypeSolarPanelsActivation           EventType = 79
	TypeTarotReading                    EventType = 81
	TypeEmergencyAlert                  EventType = 82
	TypeReturnFromElsewhere             EventType = 84
	TypeOverUnder                       EventType = 85
	TypeUnderOver                       EventType = 86
	TypeUndersea                        EventType = 88
	TypeHomebody                        EventType = 91
	TypeSuperyummy                      EventType = 92
	TypePerk                            EventType = 93
	TypeEarlbird                        EventType = 96
	TypeLateToTheParty                  EventType = 97
	TypeShameDonor                      EventType = 99
	TypeAddedMod                        EventType = 106
	TypeRemovedMod                      EventType = 107
	TypeModExpires                      EventType = 108
	TypePlayerAddedToTeam               EventType = 109
	TypePlayerReplacedByNecromancy      EventType = 110
	TypePlayerReplacesReturned          EventType = 111
	TypePlayerRemovedFromTeam           EventType = 112
	TypePlayerTraded                    EventType = 113
	TypePlayerSwap                      EventType = 114
	TypePlayerMove                      EventType = 115
	TypePlayerBornFromIncineration      EventType = 116
	TypePlayerStatIncrease              EventType = 117
	TypePlayerStatDecrease              EventType = 118
	TypePlayerStatReroll                EventType = 119
	TypePlayerStatDecreaseFromAllergy   EventType = 122
	TypePlayerMoveFailedForce           EventType = 124
	TypeEnterHallOfFlame                EventType = 125
	TypeExitHallOfFlame                 EventType = 126
	TypePlayerGainedItem                EventType = 127
	TypePlayerLostItem                  EventType = 128
	TypeReverbFullShuffle               EventType = 130
	TypeReverbLineupShuffle             EventType = 131
	TypeReverbRotationShuffle           EventType = 132
	TypePlayerHatched                   EventType = 137
	TypePlayerEvolves                   EventType = 138
	TypeTeamDidShame                    EventType = 139
	TypeTeamWasShamed                   EventType = 140
	TypeHalloweenEvent                  EventType = 141
	TypeTeamEliminatedFromPostseason    EventType = 142
	TypeGlitteredTeam                   EventType = 143
	TypeTeamClinchedPostseason          EventType = 144
	TypeIncinerationAlert               EventType = 145
	TypeAddedModFromOtherMod            EventType = 146
	TypeRemovedModFromOtherMod          EventType = 147
	TypeChangedModifier                 EventType = 148
	TypeTeamInternetSeriesWin           EventType = 149
	TypePostseasonAdvance               EventType = 150
	TypePostseasonEliminated            EventType = 151
	TypeDecreeNarration                 EventType = 152
	TypeBlessingNarration               EventType = 153
	TypeTeamWonInternetSeries           EventType = 154
	TypeTeamOutlasted                   EventType = 155
	TypeAwayTeamBaseInstincts           EventType = 156
	TypeEnterCrimeScene                 EventType = 157
	TypeLeagueModifier                  EventType = 158
	TypeBlackHoleSwallowed              EventType = 159
	TypeSunTwoSwallowed                 EventType = 160
	TypeRenovationProgress              EventType = 161
	TypeNewTeam                         EventType = 162
	TypeRenovation                      EventType = 163
	TypeGameLost                        EventType = 164
	TypePlayerRosterMoveFailed          EventType = 166
	TypeInvestigationProgress           EventType = 167
	TypeTheShelledOneSpeaks             EventType = 169
	TypeVoicemail                       EventType = 170
	TypeNarrativeLoot                   EventType = 175
	TypeFaxMachine                      EventType = 176
	TypePlayerHidden                    EventType = 177
	TypeItemRepaired                    EventType = 178
	TypeItemBreaks                      EventType = 185
	TypeItemDamage                      EventType = 186
	TypeBrokenItemRepaired              EventType = 187
	TypeDamagedItemRepaired             EventType = 188
	TypeCommunityChestOpens             EventType = 189
	TypeNoEquippedItem                  EventType = 191
	TypeSuperallergicItem               EventType = 192
	TypePlayerPreparing                 EventType = 193
	TypeTeamSeedSown                    EventType = 194
	TypeLotteryPrize                    EventType = 195
	TypeTeamLotteryPrize                EventType = 196
	TypeLotteryHonk                     EventType = 197
	TypeReaderSpeaks                    EventType = 198
	TypeMonitorSpeaks                   EventType = 199
	TypeRunsScored                      EventType = 209
	TypeWinCollectedRegular             EventType = 214
	TypeWinCollectedPostseason          EventType = 215
	TypeGameOver                        EventType = 216
	TypeSubseasonalRevelation           EventType = 217
	TypeStormWarning                    EventType = 263
	TypeSnowflakes                      EventType = 264
)

var eventTypeNames = map[EventType]string{
	TypeLetsGo:                        "LetsGo",
	TypePlayBall:                      "PlayBall",
	TypeHalfInning:                    "HalfInning",
	TypePitcherChange:                 "PitcherChange",
	TypeStolenBase:                    "StolenBase",
	TypeWalk:                          "Walk",
	TypeStrikeout:                     "Strikeout",
	TypeFlyOut:                        "FlyOut",
	TypeGroundOut:                     "GroundOut",
	TypeHomeRun:                       "HomeRun",
	TypeHit:                           "Hit",
	TypeGameEnd:                       "GameEnd",
	TypeBatterUp:                      "BatterUp",
	TypeStrike:                        "Strike",
	TypeBall:                          "Ball",
	TypeFoulBall:                      "FoulBall",
	TypeShamingRun:                    "ShamingRun",
	TypeHomeFieldAdvantage:            "HomeFieldAdvantage",
	TypeHitByPitch:                    "HitByPitch",
	TypeBatterSkipped:                 "BatterSkipped",
	TypeParty:                         "Party",
	TypeStrikeZapped:                  "StrikeZapped",
	TypeWeatherChange:                 "WeatherChange",
	TypeMildPitch:                     "MildPitch",
	TypeInningEnd:                     "InningEnd",
	TypeBigDeal:                       "BigDeal",
	TypeBlackHole:                     "BlackHole",
	TypeSun2:                          "Sun2",
	TypeBirdsCircle:                   "BirdsCircle",
	TypeFriendOfCrows:                 "FriendOfCrows",
	TypeBirdsUnshell:                  "BirdsUnshell",
	TypeBecomeTripleThreat:            "BecomeTripleThreat",
	TypeGainFreeRefill:                "GainFreeRefill",
	TypeCoffeeBean:                    "CoffeeBean",
	TypeFeedbackBlocked:               "FeedbackBlocked",
	TypeFeedbackSwap:                  "FeedbackSwap",
	TypeSuperallergicReaction:         "SuperallergicReaction",
	TypeAllergicReaction:              "AllergicReaction",
	TypeReverbBestowsReverberating:    "ReverbBestowsReverberating",
	TypeReverbRosterShuffle:           "ReverbRosterShuffle",
	TypeBlooddrain:                    "Blooddrain",
	TypeBlooddrainSiphon:              "BlooddrainSiphon",
	TypeBlooddrainBlocked:             "BlooddrainBlocked",
	TypeIncineration:                  "Incineration",
	TypeIncinerationBlocked:           "IncinerationBlocked",
	TypeFlagPlanted:                   "FlagPlanted",
	TypeRenovationBuilt:               "RenovationBuilt",
	TypeLightSwitchToggled:            "LightSwitchToggled",
	TypeDecreePassed:                  "DecreePassed",
	TypeBlessingOrGiftWon:             "BlessingOrGiftWon",
	TypeWillReceived:                  "WillReceived",
	TypeFloodingSwept:                 "FloodingSwept",
	TypeSalmonSwim:                    "SalmonSwim",
	TypePolarityShift:                 "PolarityShift",
	TypeEnterSecretBase:               "EnterSecretBase",
	TypeExitSecretBase:                "ExitSecretBase",
	TypeConsumersAttack:               "ConsumersAttack",
	TypeEchoChamber:                   "EchoChamber",
	TypeGrindRail:                     "GrindRail",
	TypeTunnelsUsed:                   "TunnelsUsed",
	TypePeanutMister:                  "PeanutMister",
	TypePeanutFlavorText:              "PeanutFlavorText",
	TypeTasteTheInfinite:              "TasteTheInfinite",
	TypeEventHorizonActivation:        "EventHorizonActivation",
	TypeEventHorizonAwaits:            "EventHorizonAwaits",
	TypeSolarPanelsAwait:              "SolarPanelsAwait",
	TypeSolarPanelsActivation:         "SolarPanelsActivation",
	TypeTarotReading:                  "TarotReading",
	TypeEmergencyAlert:                "EmergencyAlert",
	TypeReturnFromElsewhere:           "ReturnFromElsewhere",
	TypeOverUnder:                     "OverUnder",
	TypeUnderOver:                     "UnderOver",
	TypeUndersea:                      "Undersea",
	TypeHomebody:                      "Homebody",
	TypeSuperyummy:                    "Superyummy",
	TypePerk:                          "Perk",
	TypeEarlbird:                      "Earlbird",
	TypeLateToTheParty:                "LateToTheParty",
	TypeShameDonor:                    "ShameDonor",
	TypeAddedMod:                      "AddedMod",
	TypeRemovedMod:                    "RemovedMod",
	TypeModExpires:                    "ModExpires",
	TypePlayerAddedToTeam:             "PlayerAddedToTeam",
	TypePlayerReplacedByNecromancy:    "PlayerReplacedByNecromancy",
	TypePlayerReplacesReturned:        "PlayerReplacesReturned",
	TypePlayerRemovedFromTeam:         "PlayerRemovedFromTeam",
	TypePlayerTraded:                  "PlayerTraded",
	TypePlayerSwap:                    "PlayerSwap",
	TypePlayerMove:                    "PlayerMove",
	TypePlayerBornFromIncineration:    "PlayerBornFromIncineration",
	TypePlayerStatIncrease:            "PlayerStatIncrease",
	TypePlayerStatDecrease:            "PlayerStatDecrease",
	TypePlayerStatReroll:              "PlayerStatReroll",
	TypePlayerStatDecreaseFromAllergy: "PlayerStatDecreaseFromAllergy",
	TypePlayerMoveFailedForce:         "PlayerMoveFailedForce",
	TypeEnterHallOfFlame:              "EnterHallOfFlame",
	TypeExitHallOfFlame:               "ExitHallOfFlame",
	TypePlayerGainedItem:              "PlayerGainedItem",
	TypePlayerLostItem:                "PlayerLostItem",
	TypeReverbFullShuffle:             "ReverbFullShuffle",
	TypeReverbLineupShuffle:           "ReverbLineupShuffle",
	TypeReverbRotationShuffle:         "ReverbRotationShuffle",
	TypePlayerHatched:                 "PlayerHatched",
	TypePlayerEvolves:                 "PlayerEvolves",
	TypeTeamDidShame:                  "TeamDidShame",
	TypeTeamWasShamed:                 "TeamWasShamed",
	TypeHalloweenEvent:                "HalloweenEvent",
	TypeTeamEliminatedFromPostseason:  "TeamEliminatedFromPostseason",
	TypeGlitteredTeam:                 "GlitteredTeam",
	TypeTeamClinchedPostseason:        "TeamClinchedPostseason",
	TypeIncinerationAlert:             "IncinerationAlert",
	TypeAddedModFromOtherMod:          "AddedModFromOtherMod",
	TypeRemovedModFromOtherMod:        "RemovedModFromOtherMod",
	TypeChangedModifier:               "ChangedModifier",
	TypeTeamInternetSeriesWin:         "TeamInternetSeriesWin",
	TypePostseasonAdvance:             "PostseasonAdvance",
	TypePostseasonEliminated:          "PostseasonEliminated",
	TypeDecreeNarration:               "DecreeNarration",
	TypeBlessingNarration:             "BlessingNarration",
	TypeTeamWonInternetSeries:         "TeamWonInternetSeries",
	TypeTeamOutlasted:                 "TeamOutlasted",
	TypeAwayTeamBaseInstincts:         "AwayTeamBaseInstincts",
	TypeEnterCrimeScene:               "EnterCrimeScene",
	TypeLeagueModifier:                "LeagueModifier",
	TypeBlackHoleSwallowed:            "BlackHoleSwallowed",
	TypeSunTwoSwallowed:               "SunTwoSwallowed",
	TypeRenovationProgress:            "RenovationProgress",
	TypeNewTeam:                       "NewTeam",
	TypeRenovation:                    "Renovation",
	TypeGameLost:                      "GameLost",
	TypePlayerRosterMoveFailed:        "PlayerRosterMoveFailed",
	TypeInvestigationProgress:         "InvestigationProgress",
	TypeTheShelledOneSpeaks:           "TheShelledOneSpeaks",
	TypeVoicemail:                     "Voicemail",
	TypeNarrativeLoot:                 "NarrativeLoot",
	TypeFaxMachine:                    "FaxMachine",
	TypePlayerHidden:                  "PlayerHidden",
	TypeItemRepaired:                  "ItemRepaired",
	TypeItemBreaks:                    "ItemBreaks",
	TypeItemDamage:                    "ItemDamage",
	TypeBrokenItemRepaired:            "BrokenItemRepaired",
	TypeDamagedItemRepaired:           "DamagedItemRepaired",
	TypeCommunityChestOpens:           "CommunityChestOpens",
	TypeNoEquippedItem:                "NoEquippedItem",
	TypeSuperallergicItem:             "SuperallergicItem",
	TypePlayerPreparing:               "PlayerPreparing",
	TypeTeamSeedSown:                  "TeamSeedSown",
	TypeLotteryPrize:                  "LotteryPrize",
	TypeTeamLotteryPrize:              "TeamLotteryPrize",
	TypeLotteryHonk:                   "LotteryHonk",
	TypeReaderSpeaks:                  "ReaderSpeaks",
	TypeMonitorSpeaks:                 "MonitorSpeaks",
	TypeRunsScored:                    "RunsScored",
	TypeWinCollectedRegular:           "WinCollectedRegular",
	TypeWinCollectedPostseason:        "WinCollectedPostseason",
	TypeGameOver:                      "GameOver",
	TypeSubseasonalRevelation:         "SubseasonalRevelation",
	TypeStormWarning:                  "StormWarning",
	TypeSnowflakes:                    "Snowflakes",
}

// String returns the symbolic name, or the bare number for codes this
// build does not know about.
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "EventType(" + strconv.FormatInt(int64(t), 10) + ")"
}

// Known reports whether t is part of the enumeration.
func (t EventType) Known() bool {
	_, ok := eventTypeNames[t]
	return ok
}

// KnownEventTypes returns every enumerated code in ascending order.
func KnownEventTypes() []EventType {
	out := make([]EventType, 0, len(eventTypeNames))
	for t := range eventTypeNames {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
