// Package roundtrip validates the codec against captured records.
//
// A record passes when it decodes, its re-encoding matches it on every
// field the codec owns, and decoding the re-encoding gives the same typed
// value again.
package roundtrip

import (
	"encoding/json"
	"errors"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/codec"
	"github.com/okian/feedcodec/internal/domain/model"
)

// Status is the verdict for one record.
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnhandled   Status = "unhandled"
	StatusDecodeError Status = "decode_error"
	StatusMismatch    Status = "mismatch"
)

// Outcome is the result of checking one record.
type Outcome struct {
	ID      uuid.UUID
	Type    model.EventType
	Status  Status
	ErrKind string
	Err     error
	Diff    string
}

// Failed reports whether the record did not round-trip. Unhandled codes
// are an expected result and not a failure.
func (o Outcome) Failed() bool {
	return o.Status == StatusDecodeError || o.Status == StatusMismatch
}

// Checker runs round-trip checks with one registry.
type Checker struct {
	registry *codec.Registry
}

// NewChecker returns a checker using registry, or the default registry
// when it is nil.
func NewChecker(registry *codec.Registry) *Checker {
	if registry == nil {
		registry = codec.Default()
	}
	return &Checker{registry: registry}
}

// Check decodes raw and verifies both round-trip directions.
func (c *Checker) Check(raw model.RawEvent) Outcome {
	out := Outcome{ID: raw.ID, Type: raw.Type}

	ev, err := c.registry.Decode(raw)
	if err != nil {
		out.Err = err
		out.ErrKind = codec.KindOf(err)
		out.Status = StatusDecodeError
		if errors.Is(err, codec.ErrUnhandledEventType) {
			out.Status = StatusUnhandled
		}
		return out
	}

	encoded := c.registry.Encode(ev)
	if diff := Diff(raw, encoded); diff != "" {
		out.Status = StatusMismatch
		out.Diff = diff
		return out
	}

	again, err := c.registry.Decode(encoded)
	if err != nil {
		out.Status = StatusMismatch
		out.Err = err
		out.ErrKind = codec.KindOf(err)
		return out
	}
	if diff := cmp.Diff(ev, again); diff != "" {
		out.Status = StatusMismatch
		out.Diff = diff
		return out
	}

	out.Status = StatusOK
	return out
}

var defaultChecker = NewChecker(nil)

// Check checks raw with the default registry.
func Check(raw model.RawEvent) Outcome {
	return defaultChecker.Check(raw)
}

// owned is the part of a record the codec is responsible for.
type owned struct {
	Type        model.EventType
	Description string
	PlayerTags  []uuid.UUID
	TeamTags    []uuid.UUID
	GameTags    []uuid.UUID
	Play        *int64
	SubPlay     *int64
	Other       map[string]any
	Children    []owned
}

func ownedView(r model.RawEvent) owned {
	o := owned{
		Type:        r.Type,
		Description: r.Description,
		PlayerTags:  r.PlayerTags,
		TeamTags:    r.TeamTags,
		GameTags:    r.GameTags,
		Play:        r.Metadata.Play,
		SubPlay:     r.Metadata.SubPlay,
	}
	if len(r.Metadata.Other) > 0 {
		o.Other = make(map[string]any, len(r.Metadata.Other))
		for k, v := range r.Metadata.Other {
			o.Other[k] = normalize(v)
		}
	}
	for _, ch := range r.Children {
		o.Children = append(o.Children, ownedView(ch))
	}
	return o
}

// normalize maps every numeric representation to float64 so a value read
// from JSON compares equal to one built in memory.
func normalize(v any) any {
	switch n := v.(type) {
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case []any:
		out := make([]any, len(n))
		for i := range n {
			out[i] = normalize(n[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, e := range n {
			out[k] = normalize(e)
		}
		return out
	}
	return v
}

// Diff compares want and got on codec-owned fields only. Timestamps, ids
// and passthrough counters are ignored. It returns "" when they match.
func Diff(want, got model.RawEvent) string {
	return cmp.Diff(ownedView(want), ownedView(got), cmpopts.EquateEmpty())
}
