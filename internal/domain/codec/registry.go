// Package codec decodes raw feed records into typed events and builds
// raw records back from them.
//
// Decoding is driven by a Registry mapping every type code to a recipe.
// Codes without a recipe are registered as unhandled so the mapping stays
// total; codes outside the enumeration fall through to the same result.
package codec

import (
	"fmt"
	"reflect"

	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/model"
)

// DecodeFunc decodes one record. The cursor is checked for leftovers
// after it returns.
type DecodeFunc func(c *Cursor) (fed.Event, error)

type encodeFunc func(ev fed.Event) model.RawEvent

// Registry holds the decode and encode recipes.
type Registry struct {
	decoders map[model.EventType]DecodeFunc
	handled  map[model.EventType]bool
	encoders map[reflect.Type]encodeFunc
	fallback DecodeFunc
}

// NewRegistry returns a registry with every recipe of this package.
func NewRegistry() *Registry {
	r := &Registry{
		decoders: make(map[model.EventType]DecodeFunc),
		handled:  make(map[model.EventType]bool),
		encoders: make(map[reflect.Type]encodeFunc),
		fallback: unhandled,
	}
	registerGame(r)
	registerBatting(r)
	registerBaserunning(r)
	registerWeather(r)
	r.Unhandled(unhandledTypes...)
	return r
}

// Register sets the decoder for t, replacing any previous entry.
func (r *Registry) Register(t model.EventType, fn DecodeFunc) {
	r.decoders[t] = fn
	r.handled[t] = true
}

// Unhandled marks types as known but deliberately not decoded. Types that
// already have a recipe are left alone.
func (r *Registry) Unhandled(types ...model.EventType) {
	for _, t := range types {
		if _, ok := r.decoders[t]; !ok {
			r.decoders[t] = unhandled
		}
	}
}

// Registered reports whether t has an entry, handled or not.
func (r *Registry) Registered(t model.EventType) bool {
	_, ok := r.decoders[t]
	return ok
}

// Handled reports whether t has a real decode recipe.
func (r *Registry) Handled(t model.EventType) bool {
	return r.handled[t]
}

// encoder registers the builder for one variant.
func encoder[E fed.Event](r *Registry, fn func(ev E) model.RawEvent) {
	r.encoders[reflect.TypeFor[E]()] = func(ev fed.Event) model.RawEvent {
		return fn(ev.(E))
	}
}

// Decode turns raw into exactly one typed event or fails with one error
// from the taxonomy in errors.go.
func (r *Registry) Decode(raw model.RawEvent) (fed.Event, error) {
	fn, ok := r.decoders[raw.Type]
	if !ok {
		fn = r.fallback
	}
	c := NewCursor(raw)
	ev, err := fn(c)
	if err != nil {
		return nil, err
	}
	if err := c.Finish(); err != nil {
		return nil, err
	}
	return ev, nil
}

// Encode builds the raw record for ev. Encoding a value that was not
// produced by Decode is a programming error and panics.
func (r *Registry) Encode(ev fed.Event) model.RawEvent {
	fn, ok := r.encoders[reflect.TypeOf(ev)]
	if !ok {
		panic(fmt.Sprintf("codec: no encoder for %T", ev))
	}
	return fn(ev)
}

func unhandled(c *Cursor) (fed.Event, error) {
	return nil, &UnhandledEventType{Type: c.Type()}
}

var defaultRegistry = NewRegistry()

// Decode decodes raw with the default registry.
func Decode(raw model.RawEvent) (fed.Event, error) {
	return defaultRegistry.Decode(raw)
}

// Encode encodes ev with the default registry.
func Encode(ev fed.Event) model.RawEvent {
	return defaultRegistry.Encode(ev)
}

// Default returns the shared registry.
func Default() *Registry { return defaultRegistry }

// unhandledTypes are enumerated codes without a recipe: their grammar is
// not pinned down by captured records.
var unhandledTypes = []model.EventType{
	model.TypeGameEnd,
	model.TypeShamingRun,
	model.TypeHomeFieldAdvantage,
	model.TypeWeatherChange,
	model.TypeBigDeal,
	model.TypeBlackHole,
	model.TypeSun2,
	model.TypeFriendOfCrows,
	model.TypeBecomeTripleThreat,
	model.TypeGainFreeRefill,
	model.TypeCoffeeBean,
	model.TypeFeedbackBlocked,
	model.TypeFeedbackSwap,
	model.TypeSuperallergicReaction,
	model.TypeAllergicReaction,
	model.TypeReverbBestowsReverberating,
	model.TypeReverbRosterShuffle,
	model.TypeBlooddrainSiphon,
	model.TypeBlooddrainBlocked,
	model.TypeFlagPlanted,
	model.TypeRenovationBuilt,
	model.TypeLightSwitchToggled,
	model.TypeDecreePassed,
	model.TypeBlessingOrGiftWon,
	model.TypeWillReceived,
	model.TypeConsumersAttack,
	model.TypeEchoChamber,
	model.TypeGrindRail,
	model.TypeTunnelsUsed,
	model.TypePeanutFlavorText,
	model.TypeEventHorizonActivation,
	model.TypeEventHorizonAwaits,
	model.TypeSolarPanelsAwait,
	model.TypeSolarPanelsActivation,
	model.TypeTarotReading,
	model.TypeEmergencyAlert,
	model.TypeOverUnder,
	model.TypeUnderOver,
	model.TypeUndersea,
	model.TypeEarlbird,
	model.TypeLateToTheParty,
	model.TypeShameDonor,
	model.TypeAddedMod,
	model.TypeRemovedMod,
	model.TypeModExpires,
	model.TypePlayerAddedToTeam,
	model.TypePlayerReplacedByNecromancy,
	model.TypePlayerReplacesReturned,
	model.TypePlayerRemovedFromTeam,
	model.TypePlayerTraded,
	model.TypePlayerSwap,
	model.TypePlayerMove,
	model.TypePlayerBornFromIncineration,
	model.TypePlayerStatIncrease,
	model.TypePlayerStatDecrease,
	model.TypePlayerStatReroll,
	model.TypePlayerStatDecreaseFromAllergy,
	model.TypePlayerMoveFailedForce,
	model.TypeEnterHallOfFlame,
	model.TypeExitHallOfFlame,
	model.TypePlayerGainedItem,
	model.TypePlayerLostItem,
	model.TypeReverbFullShuffle,
	model.TypeReverbLineupShuffle,
	model.TypeReverbRotationShuffle,
	model.TypePlayerHatched,
	model.TypePlayerEvolves,
	model.TypeTeamDidShame,
	model.TypeTeamWasShamed,
	model.TypeHalloweenEvent,
	model.TypeTeamEliminatedFromPostseason,
	model.TypeGlitteredTeam,
	model.TypeTeamClinchedPostseason,
	model.TypeIncinerationAlert,
	model.TypeAddedModFromOtherMod,
	model.TypeRemovedModFromOtherMod,
	model.TypeChangedModifier,
	model.TypeTeamInternetSeriesWin,
	model.TypePostseasonAdvance,
	model.TypePostseasonEliminated,
	model.TypeDecreeNarration,
	model.TypeBlessingNarration,
	model.TypeTeamWonInternetSeries,
	model.TypeTeamOutlasted,
	model.TypeAwayTeamBaseInstincts,
	model.TypeEnterCrimeScene,
	model.TypeLeagueModifier,
	model.TypeBlackHoleSwallowed,
	model.TypeSunTwoSwallowed,
	model.TypeRenovationProgress,
	model.TypeNewTeam,
	model.TypeRenovation,
	model.TypeGameLost,
	model.TypePlayerRosterMoveFailed,
	model.TypeInvestigationProgress,
	model.TypeTheShelledOneSpeaks,
	model.TypeVoicemail,
	model.TypeNarrativeLoot,
	model.TypeFaxMachine,
	model.TypePlayerHidden,
	model.TypeItemRepaired,
	model.TypeItemBreaks,
	model.TypeItemDamage,
	model.TypeBrokenItemRepaired,
	model.TypeDamagedItemRepaired,
	model.TypeCommunityChestOpens,
	model.TypeNoEquippedItem,
	model.TypeSuperallergicItem,
	model.TypePlayerPreparing,
	model.TypeTeamSeedSown,
	model.TypeLotteryPrize,
	model.TypeTeamLotteryPrize,
	model.TypeLotteryHonk,
	model.TypeReaderSpeaks,
	model.TypeMonitorSpeaks,
	model.TypeRunsScored,
	model.TypeWinCollectedRegular,
	model.TypeWinCollectedPostseason,
	model.TypeSubseasonalRevelation,
	model.TypeStormWarning,
	model.TypeSnowflakes,
}
