package codec

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/model"
)

// rootSubPlay is the sub-play index of a game's root event.
const rootSubPlay int64 = -1

// suffixKind orders trailing clauses. Descriptions always list them in
// this order regardless of event type.
type suffixKind int

const (
	suffixScore suffixKind = iota
	suffixRefill
	suffixSpicy
	suffixInhabiting
	suffixTrailing
)

// pendingSuffix is one trailing clause waiting to be appended. It may
// contribute a player tag and a child record besides its line.
type pendingSuffix struct {
	kind   suffixKind
	line   string
	player *uuid.UUID
	child  *child
}

// child is a child record before sub-play numbering.
type child struct {
	typ         model.EventType
	ref         fed.SubEventRef
	description string
	player      uuid.UUID
	metadata    map[string]any
}

// builder assembles one raw record. The main clause, its tags and any
// type-specific children go in first; queued suffixes are folded in by
// raw.
type builder struct {
	typ      model.EventType
	env      fed.Envelope
	game     fed.Game
	text     strings.Builder
	players  []uuid.UUID
	teams    []uuid.UUID
	metadata map[string]any
	children []child
	pending  []pendingSuffix
}

func newBuilder(ev fed.Event, game fed.Game) *builder {
	return &builder{
		typ:     ev.Type(),
		env:     ev.Header(),
		game:    game,
		players: []uuid.UUID{},
		teams:   []uuid.UUID{},
	}
}

// say appends main clause text.
func (b *builder) say(text string) *builder {
	b.text.WriteString(text)
	return b
}

func (b *builder) player(ids ...uuid.UUID) *builder {
	b.players = append(b.players, ids...)
	return b
}

func (b *builder) team(ids ...uuid.UUID) *builder {
	b.teams = append(b.teams, ids...)
	return b
}

func (b *builder) matchup(m fed.Matchup) *builder {
	return b.team(m.Away, m.Home)
}

func (b *builder) meta(key string, v any) *builder {
	if b.metadata == nil {
		b.metadata = make(map[string]any)
	}
	b.metadata[key] = v
	return b
}

func (b *builder) child(c child) *builder {
	b.children = append(b.children, c)
	return b
}

func (b *builder) queue(s ...pendingSuffix) *builder {
	b.pending = append(b.pending, s...)
	return b
}

// raw folds the queued suffixes in order and emits the record.
func (b *builder) raw() model.RawEvent {
	slices.SortStableFunc(b.pending, func(x, y pendingSuffix) int {
		return cmp.Compare(x.kind, y.kind)
	})
	for _, s := range b.pending {
		b.text.WriteString("\n")
		b.text.WriteString(s.line)
		if s.player != nil {
			b.players = append(b.players, *s.player)
		}
		if s.child != nil {
			b.children = append(b.children, *s.child)
		}
	}
	b.pending = nil

	out := model.RawEvent{
		ID:          b.env.ID,
		Created:     b.env.Created,
		Type:        b.typ,
		Category:    b.env.Category,
		Description: b.text.String(),
		PlayerTags:  b.players,
		TeamTags:    b.teams,
		GameTags:    []uuid.UUID{b.game.ID},
		Metadata: model.Metadata{
			Play:    model.Int64Ptr(b.game.Play),
			SubPlay: model.Int64Ptr(rootSubPlay),
			Other:   b.metadata,
		},
		Sim:        b.env.Sim,
		Season:     b.env.Season,
		Day:        b.env.Day,
		Phase:      b.env.Phase,
		Tournament: b.env.Tournament,
		Nuts:       b.env.Nuts,
	}
	for i, c := range b.children {
		out.Children = append(out.Children, b.childRecord(i, c))
	}
	return out
}

func (b *builder) childRecord(index int, c child) model.RawEvent {
	return model.RawEvent{
		ID:          c.ref.ID,
		Created:     c.ref.Created,
		Type:        c.typ,
		Category:    b.env.Category,
		Description: c.description,
		PlayerTags:  []uuid.UUID{c.player},
		TeamTags:    []uuid.UUID{},
		GameTags:    []uuid.UUID{b.game.ID},
		Metadata: model.Metadata{
			Play:    model.Int64Ptr(b.game.Play),
			SubPlay: model.Int64Ptr(int64(index)),
			Other:   c.metadata,
		},
		Sim:        b.env.Sim,
		Season:     b.env.Season,
		Day:        b.env.Day,
		Phase:      b.env.Phase,
		Tournament: b.env.Tournament,
		Nuts:       c.ref.Nuts,
	}
}
