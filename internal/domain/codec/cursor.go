package codec

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/grammar"
	"github.com/okian/feedcodec/internal/domain/model"
)

// tagList marks which tag list a Tags value reads so the three lists
// cannot be mixed up.
type tagList interface {
	kind() TagKind
}

// PlayerList, TeamList and GameList select a tag list.
type (
	PlayerList struct{}
	TeamList   struct{}
	GameList   struct{}
)

func (PlayerList) kind() TagKind { return TagPlayer }
func (TeamList) kind() TagKind   { return TagTeam }
func (GameList) kind() TagKind   { return TagGame }

// Tags hands out one tag list front to back.
type Tags[L tagList] struct {
	typ   model.EventType
	ids   []uuid.UUID
	taken int
}

func (t *Tags[L]) kind() TagKind {
	var l L
	return l.kind()
}

// Next pops the next tag.
func (t *Tags[L]) Next() (uuid.UUID, error) {
	if t.taken >= len(t.ids) {
		return uuid.Nil, &NotEnoughTags{Type: t.typ, Kind: t.kind(), ExpectedAtLeast: t.taken + 1}
	}
	id := t.ids[t.taken]
	t.taken++
	return id, nil
}

// NextOpt pops the next tag if there is one.
func (t *Tags[L]) NextOpt() (uuid.UUID, bool) {
	if t.taken >= len(t.ids) {
		return uuid.Nil, false
	}
	id := t.ids[t.taken]
	t.taken++
	return id, true
}

// Peek returns the next tag without consuming it.
func (t *Tags[L]) Peek() (uuid.UUID, bool) {
	if t.taken >= len(t.ids) {
		return uuid.Nil, false
	}
	return t.ids[t.taken], true
}

// NextEqual pops a tag that must repeat want.
func (t *Tags[L]) NextEqual(want uuid.UUID) error {
	id, err := t.Next()
	if err != nil {
		return err
	}
	if id != want {
		return &ExpectedEqualTags{Type: t.typ, Kind: t.kind(), First: want, Second: id}
	}
	return nil
}

// Remaining is the number of unconsumed tags.
func (t *Tags[L]) Remaining() int { return len(t.ids) - t.taken }

func (t *Tags[L]) finish() error {
	if t.taken != len(t.ids) {
		return &WrongNumberOfTags{Type: t.typ, Kind: t.kind(), Expected: t.taken, Actual: len(t.ids)}
	}
	return nil
}

// Cursor is the single-pass view of one raw record used while decoding.
// Text, tags and children are consumed in the order a recipe asks for
// them and cannot be re-read.
type Cursor struct {
	raw      model.RawEvent
	text     string
	Players  *Tags[PlayerList]
	Teams    *Tags[TeamList]
	Games    *Tags[GameList]
	children int
}

// NewCursor wraps raw.
func NewCursor(raw model.RawEvent) *Cursor {
	return &Cursor{
		raw:     raw,
		text:    raw.Description,
		Players: &Tags[PlayerList]{typ: raw.Type, ids: raw.PlayerTags},
		Teams:   &Tags[TeamList]{typ: raw.Type, ids: raw.TeamTags},
		Games:   &Tags[GameList]{typ: raw.Type, ids: raw.GameTags},
	}
}

// Type is the record's type code.
func (c *Cursor) Type() model.EventType { return c.raw.Type }

// Envelope copies the uninterpreted record fields.
func (c *Cursor) Envelope() fed.Envelope {
	return fed.Envelope{
		ID:         c.raw.ID,
		Created:    c.raw.Created,
		Category:   c.raw.Category,
		Nuts:       c.raw.Nuts,
		Sim:        c.raw.Sim,
		Season:     c.raw.Season,
		Day:        c.raw.Day,
		Phase:      c.raw.Phase,
		Tournament: c.raw.Tournament,
	}
}

// Ref identifies the record as a child of another.
func (c *Cursor) Ref() fed.SubEventRef {
	return fed.SubEventRef{ID: c.raw.ID, Created: c.raw.Created, Nuts: c.raw.Nuts}
}

// Text is the unconsumed description.
func (c *Cursor) Text() string { return c.text }

// Next runs p on the unconsumed description and advances past what it read.
func Next[T any](c *Cursor, p grammar.Parser[T]) (T, error) {
	v, rest, err := p(c.text)
	if err != nil {
		var zero T
		return zero, &DescriptionParseError{Type: c.raw.Type, Detail: err.Error(), Remaining: c.text}
	}
	c.text = rest
	return v, nil
}

// ExpectText consumes the whole description, which must equal want.
func (c *Cursor) ExpectText(want string) error {
	if c.text != want {
		return &UnexpectedDescription{Type: c.raw.Type, Expected: want, Actual: c.text}
	}
	c.text = ""
	return nil
}

// Play is the play index of a game event.
func (c *Cursor) Play() (int64, error) {
	if c.raw.Metadata.Play == nil {
		return 0, &MissingMetadata{Type: c.raw.Type, Key: model.MetadataKeyPlay}
	}
	return *c.raw.Metadata.Play, nil
}

// SubPlay is the sub-play index of a game event.
func (c *Cursor) SubPlay() (int64, error) {
	if c.raw.Metadata.SubPlay == nil {
		return 0, &MissingMetadata{Type: c.raw.Type, Key: model.MetadataKeySubPlay}
	}
	return *c.raw.Metadata.SubPlay, nil
}

func (c *Cursor) metadata(key string) (any, error) {
	v, ok := c.raw.Metadata.Other[key]
	if !ok || v == nil {
		return nil, &MissingMetadata{Type: c.raw.Type, Key: key}
	}
	return v, nil
}

// MetadataString reads a string value.
func (c *Cursor) MetadataString(key string) (string, error) {
	v, err := c.metadata(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &MetadataTypeError{Type: c.raw.Type, Key: key, Expected: "string", Value: v}
	}
	return s, nil
}

// MetadataInt64 reads an integral number.
func (c *Cursor) MetadataInt64(key string) (int64, error) {
	v, err := c.metadata(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int64(n), nil
		}
	}
	return 0, &MetadataTypeError{Type: c.raw.Type, Key: key, Expected: "integer", Value: v}
}

// MetadataFloat64 reads any number.
func (c *Cursor) MetadataFloat64(key string) (float64, error) {
	v, err := c.metadata(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	}
	return 0, &MetadataTypeError{Type: c.raw.Type, Key: key, Expected: "number", Value: v}
}

// MetadataUUID reads a string holding an id.
func (c *Cursor) MetadataUUID(key string) (uuid.UUID, error) {
	s, err := c.MetadataString(key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &MetadataStrToIdError{Type: c.raw.Type, Key: key, Value: s, Err: err}
	}
	return id, nil
}

// MetadataEnum reads an integer that must be a valid member of a closed enum.
func MetadataEnum[E ~int64](c *Cursor, key, enum string, valid func(E) bool) (E, error) {
	n, err := c.MetadataInt64(key)
	if err != nil {
		return 0, err
	}
	if !valid(E(n)) {
		return 0, &MetadataIntToEnumError{Type: c.raw.Type, Key: key, Enum: enum, Value: n}
	}
	return E(n), nil
}

// ExpectMetadata reads a string that must equal want.
func (c *Cursor) ExpectMetadata(key, want string) error {
	s, err := c.MetadataString(key)
	if err != nil {
		return err
	}
	if s != want {
		return &UnexpectedMetadataValue{Type: c.raw.Type, Key: key, Expected: want, Actual: s}
	}
	return nil
}

// ExpectMetadataInt reads an integer that must equal want.
func (c *Cursor) ExpectMetadataInt(key string, want int64) error {
	n, err := c.MetadataInt64(key)
	if err != nil {
		return err
	}
	if n != want {
		return &UnexpectedMetadataValue{Type: c.raw.Type, Key: key, Expected: want, Actual: n}
	}
	return nil
}

// NextChild pops the next child, which must have type t.
func (c *Cursor) NextChild(t model.EventType) (*Cursor, error) {
	return c.NextChildAny(t)
}

// NextChildAny pops the next child, which must have one of types.
func (c *Cursor) NextChildAny(types ...model.EventType) (*Cursor, error) {
	if c.children >= len(c.raw.Children) {
		return nil, &NotEnoughChildren{Type: c.raw.Type, ExpectedAtLeast: c.children + 1}
	}
	child := c.raw.Children[c.children]
	for _, t := range types {
		if child.Type == t {
			c.children++
			return NewCursor(child), nil
		}
	}
	return nil, &UnexpectedChildType{Type: c.raw.Type, Index: c.children, Expected: types, Actual: child.Type}
}

// NextChildIf pops the next child only when pred accepts it.
func (c *Cursor) NextChildIf(pred func(model.RawEvent) bool) (*Cursor, bool) {
	if c.children >= len(c.raw.Children) {
		return nil, false
	}
	child := c.raw.Children[c.children]
	if !pred(child) {
		return nil, false
	}
	c.children++
	return NewCursor(child), true
}

// ChildIndex is the position the next child would be popped from.
func (c *Cursor) ChildIndex() int { return c.children }

// Finish fails if any text, tag or child was left unconsumed.
func (c *Cursor) Finish() error {
	if c.text != "" {
		return &DescriptionParseError{Type: c.raw.Type, Detail: "unparsed trailing text", Remaining: c.text}
	}
	if err := c.Players.finish(); err != nil {
		return err
	}
	if err := c.Teams.finish(); err != nil {
		return err
	}
	if err := c.Games.finish(); err != nil {
		return err
	}
	if c.children != len(c.raw.Children) {
		return &ExtraChildren{Type: c.raw.Type, Expected: c.children, Actual: len(c.raw.Children)}
	}
	return nil
}
