package codec

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/model"
)

// Modification names used by child records.
const (
	ModShelled       = "SHELLED"
	ModElsewhere     = "ELSEWHERE"
	ModSuperallergic = "SUPERALLERGIC"
	ModCoffeeRefill  = "COFFEE_REFILL"
	ModHeatingUp     = "HEATING_UP"
	ModRedHot        = "RED_HOT"
	ModInhabiting    = "INHABITING"
	ModUnstable      = "UNSTABLE"
	ModFlickering    = "FLICKERING"
	ModRepeating     = "REPEATING"
)

// Child metadata keys.
const (
	keyMod              = "mod"
	keyDuration         = "type"
	keyFrom             = "from"
	keyTo               = "to"
	keyStat             = "type"
	keyBefore           = "before"
	keyAfter            = "after"
	keyItemID           = "itemId"
	keyItemName         = "itemName"
	keyItemHealthBefore = "itemHealthBefore"
	keyItemHealthAfter  = "itemHealthAfter"
	keyPlayerRating     = "playerRating"
	keyWeather          = "weather"
)

func modAdded(ref fed.SubEventRef, description string, player uuid.UUID, mod string, d fed.ModDuration) child {
	return child{
		typ:         model.TypeAddedMod,
		ref:         ref,
		description: description,
		player:      player,
		metadata:    map[string]any{keyMod: mod, keyDuration: int64(d)},
	}
}

func modRemoved(ref fed.SubEventRef, description string, player uuid.UUID, mod string, d fed.ModDuration) child {
	c := modAdded(ref, description, player, mod, d)
	c.typ = model.TypeRemovedMod
	return c
}

func modChanged(ref fed.SubEventRef, description string, player uuid.UUID, from, to string) child {
	return child{
		typ:         model.TypeChangedModifier,
		ref:         ref,
		description: description,
		player:      player,
		metadata:    map[string]any{keyFrom: from, keyTo: to, keyDuration: int64(fed.ModPermanent)},
	}
}

func statIncrease(description string, player uuid.UUID, s fed.StatChange) child {
	return child{
		typ:         model.TypePlayerStatIncrease,
		ref:         s.Sub,
		description: description,
		player:      player,
		metadata:    map[string]any{keyStat: s.Stat, keyBefore: s.Before, keyAfter: s.After},
	}
}

func itemChild(description string, it fed.ItemDamage) child {
	typ := model.TypeItemDamage
	if it.Broke {
		typ = model.TypeItemBreaks
	}
	return child{
		typ:         typ,
		ref:         it.Sub,
		description: description,
		player:      it.Owner.ID,
		metadata: map[string]any{
			keyItemID:           it.ItemID.String(),
			keyItemName:         it.ItemName,
			keyItemHealthBefore: it.HealthBefore,
			keyItemHealthAfter:  it.HealthAfter,
			keyPlayerRating:     it.PlayerRating,
		},
	}
}

// childCheck validates and extracts the type-specific part of a child.
type childCheck func(ch *Cursor) error

// readChild pops the next child, which must have type t, and checks it.
func readChild(c *Cursor, g fed.Game, t model.EventType, description string, player uuid.UUID, check childCheck) (fed.SubEventRef, error) {
	idx := c.ChildIndex()
	ch, err := c.NextChild(t)
	if err != nil {
		return fed.SubEventRef{}, err
	}
	return checkChild(ch, idx, g, description, player, check)
}

// checkChild validates the parts every child shares with its parent,
// runs check and requires the child to be fully consumed.
func checkChild(ch *Cursor, idx int, g fed.Game, description string, player uuid.UUID, check childCheck) (fed.SubEventRef, error) {
	err := func() error {
		if err := ch.ExpectText(description); err != nil {
			return err
		}
		if err := ch.Players.NextEqual(player); err != nil {
			return err
		}
		if err := ch.Games.NextEqual(g.ID); err != nil {
			return err
		}
		play, err := ch.Play()
		if err != nil {
			return err
		}
		if play != g.Play {
			return &UnexpectedMetadataValue{Type: ch.Type(), Key: model.MetadataKeyPlay, Expected: g.Play, Actual: play}
		}
		sub, err := ch.SubPlay()
		if err != nil {
			return err
		}
		if sub != int64(idx) {
			return &UnexpectedMetadataValue{Type: ch.Type(), Key: model.MetadataKeySubPlay, Expected: int64(idx), Actual: sub}
		}
		if check != nil {
			if err := check(ch); err != nil {
				return err
			}
		}
		return ch.Finish()
	}()
	if err != nil {
		return fed.SubEventRef{}, fmt.Errorf("child %d: %w", idx, err)
	}
	return ch.Ref(), nil
}

// expectMod checks the mod name and duration of an added or removed mod.
func expectMod(mod string, d fed.ModDuration) childCheck {
	return func(ch *Cursor) error {
		if err := ch.ExpectMetadata(keyMod, mod); err != nil {
			return err
		}
		got, err := MetadataEnum(ch, keyDuration, "ModDuration", fed.ModDuration.Valid)
		if err != nil {
			return err
		}
		if got != d {
			return &UnexpectedMetadataValue{Type: ch.Type(), Key: keyDuration, Expected: int64(d), Actual: int64(got)}
		}
		return nil
	}
}

func expectModChange(from, to string) childCheck {
	return func(ch *Cursor) error {
		if err := ch.ExpectMetadata(keyFrom, from); err != nil {
			return err
		}
		if err := ch.ExpectMetadata(keyTo, to); err != nil {
			return err
		}
		return ch.ExpectMetadataInt(keyDuration, int64(fed.ModPermanent))
	}
}

func readModAdded(c *Cursor, g fed.Game, description string, player uuid.UUID, mod string, d fed.ModDuration) (fed.SubEventRef, error) {
	return readChild(c, g, model.TypeAddedMod, description, player, expectMod(mod, d))
}

func readModRemoved(c *Cursor, g fed.Game, description string, player uuid.UUID, mod string, d fed.ModDuration) (fed.SubEventRef, error) {
	return readChild(c, g, model.TypeRemovedMod, description, player, expectMod(mod, d))
}

func readStatIncrease(c *Cursor, g fed.Game, description string, player uuid.UUID) (fed.StatChange, error) {
	var s fed.StatChange
	ref, err := readChild(c, g, model.TypePlayerStatIncrease, description, player, func(ch *Cursor) error {
		var err error
		if s.Stat, err = ch.MetadataInt64(keyStat); err != nil {
			return err
		}
		if s.Before, err = ch.MetadataFloat64(keyBefore); err != nil {
			return err
		}
		s.After, err = ch.MetadataFloat64(keyAfter)
		return err
	})
	if err != nil {
		return fed.StatChange{}, err
	}
	s.Sub = ref
	return s, nil
}

// modIs matches a child removing mod from player.
func modIs(t model.EventType, mod string, player uuid.UUID) func(model.RawEvent) bool {
	return func(r model.RawEvent) bool {
		if r.Type != t || len(r.PlayerTags) == 0 || r.PlayerTags[0] != player {
			return false
		}
		name, ok := r.Metadata.Other[keyMod].(string)
		return ok && name == mod
	}
}
