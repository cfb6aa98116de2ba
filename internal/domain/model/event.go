// Package model contains the wire schema of feed event records.
//
// Types here carry data only. Decoding them into typed events lives in
// the codec package.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Well-known metadata keys lifted into typed fields.
const (
	MetadataKeyPlay    = "play"
	MetadataKeySubPlay = "subPlay"
)

// RawEvent is one feed record as received from upstream.
// Fields mirror the corpus JSON format.
type RawEvent struct {
	ID          uuid.UUID   `json:"id"`
	Created     time.Time   `json:"created"`
	Type        EventType   `json:"type"`
	Category    int64       `json:"category"`
	Description string      `json:"description"`
	PlayerTags  []uuid.UUID `json:"playerTags"`
	TeamTags    []uuid.UUID `json:"teamTags"`
	GameTags    []uuid.UUID `json:"gameTags"`
	Metadata    Metadata    `json:"metadata"`
	Children    []RawEvent  `json:"children,omitempty"`

	// Passthrough counters, copied verbatim and never interpreted.
	Sim        string `json:"sim"`
	Season     int64  `json:"season"`
	Day        int64  `json:"day"`
	Phase      int64  `json:"phase"`
	Tournament int64  `json:"tournament"`
	Nuts       int64  `json:"nuts"`
}

// Metadata is the loosely typed key/value blob of a RawEvent.
// Play and SubPlay order children within a game; every other key is kept
// opaquely in Other. Numbers in Other decode as json.Number.
type Metadata struct {
	Play    *int64
	SubPlay *int64
	Other   map[string]any
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}

// MarshalJSON flattens Play and SubPlay back next to the other keys.
func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Other)+2)
	for k, v := range m.Other {
		out[k] = v
	}
	if m.Play != nil {
		out[MetadataKeyPlay] = *m.Play
	}
	if m.SubPlay != nil {
		out[MetadataKeySubPlay] = *m.SubPlay
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits the well-known keys out of the blob.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var blob map[string]any
	if err := dec.Decode(&blob); err != nil {
		return fmt.Errorf("decode metadata: %w", err)
	}

	*m = Metadata{}
	for k, v := range blob {
		switch k {
		case MetadataKeyPlay, MetadataKeySubPlay:
			if v == nil {
				continue
			}
			n, ok := v.(json.Number)
			if !ok {
				return fmt.Errorf("metadata %q: expected number, got %T", k, v)
			}
			i, err := n.Int64()
			if err != nil {
				return fmt.Errorf("metadata %q: %w", k, err)
			}
			if k == MetadataKeyPlay {
				m.Play = &i
			} else {
				m.SubPlay = &i
			}
		default:
			if m.Other == nil {
				m.Other = make(map[string]any, len(blob))
			}
			m.Other[k] = v
		}
	}
	return nil
}
