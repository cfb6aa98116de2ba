package codec

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/model"
)

// Sentinel kinds for decode errors. Every concrete error below unwraps
// to exactly one of these.
var (
	ErrUnhandledEventType    = errors.New("unhandled event type")
	ErrDescriptionParse      = errors.New("description parse failed")
	ErrUnexpectedDescription = errors.New("unexpected description")
	ErrMissingMetadata       = errors.New("missing metadata")
	ErrMetadataType          = errors.New("metadata has wrong type")
	ErrMetadataStrToID       = errors.New("metadata is not an id")
	ErrMetadataIntToEnum     = errors.New("metadata is not a known enum value")
	ErrUnexpectedMetadata    = errors.New("unexpected metadata value")
	ErrNotEnoughTags         = errors.New("not enough tags")
	ErrWrongNumberOfTags     = errors.New("wrong number of tags")
	ErrExpectedEqualTags     = errors.New("expected equal tags")
	ErrNotEnoughChildren     = errors.New("not enough children")
	ErrUnexpectedChildType   = errors.New("unexpected child type")
	ErrExtraChildren         = errors.New("extra children")
	ErrUnknownEnumValue      = errors.New("unknown enum value")
)

// TagKind names one of the three tag lists.
type TagKind string

const (
	TagPlayer TagKind = "player"
	TagTeam   TagKind = "team"
	TagGame   TagKind = "game"
)

// UnhandledEventType is returned for codes without a decode recipe.
type UnhandledEventType struct {
	Type model.EventType
}

func (e *UnhandledEventType) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, ErrUnhandledEventType)
}
func (e *UnhandledEventType) Unwrap() error { return ErrUnhandledEventType }

// DescriptionParseError is a grammar failure on the remaining text.
type DescriptionParseError struct {
	Type      model.EventType
	Detail    string
	Remaining string
}

func (e *DescriptionParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s (remaining %q)", e.Type, ErrDescriptionParse, e.Detail, e.Remaining)
}
func (e *DescriptionParseError) Unwrap() error { return ErrDescriptionParse }

// UnexpectedDescription is a fixed description that did not match verbatim.
type UnexpectedDescription struct {
	Type     model.EventType
	Expected string
	Actual   string
}

func (e *UnexpectedDescription) Error() string {
	return fmt.Sprintf("%s: %s: expected %q, got %q", e.Type, ErrUnexpectedDescription, e.Expected, e.Actual)
}
func (e *UnexpectedDescription) Unwrap() error { return ErrUnexpectedDescription }

// MissingMetadata is an absent metadata key.
type MissingMetadata struct {
	Type model.EventType
	Key  string
}

func (e *MissingMetadata) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Type, ErrMissingMetadata, e.Key)
}
func (e *MissingMetadata) Unwrap() error { return ErrMissingMetadata }

// MetadataTypeError is a metadata value of the wrong JSON type.
type MetadataTypeError struct {
	Type     model.EventType
	Key      string
	Expected string
	Value    any
}

func (e *MetadataTypeError) Error() string {
	return fmt.Sprintf("%s: %s: %q expected %s, got %T", e.Type, ErrMetadataType, e.Key, e.Expected, e.Value)
}
func (e *MetadataTypeError) Unwrap() error { return ErrMetadataType }

// MetadataStrToIdError is a metadata string that does not parse as an id.
type MetadataStrToIdError struct {
	Type  model.EventType
	Key   string
	Value string
	Err   error
}

func (e *MetadataStrToIdError) Error() string {
	return fmt.Sprintf("%s: %s: %q=%q: %v", e.Type, ErrMetadataStrToID, e.Key, e.Value, e.Err)
}
func (e *MetadataStrToIdError) Unwrap() []error { return []error{ErrMetadataStrToID, e.Err} }

// MetadataIntToEnumError is a metadata integer outside a closed enum.
type MetadataIntToEnumError struct {
	Type  model.EventType
	Key   string
	Enum  string
	Value int64
}

func (e *MetadataIntToEnumError) Error() string {
	return fmt.Sprintf("%s: %s: %q=%d is not a %s", e.Type, ErrMetadataIntToEnum, e.Key, e.Value, e.Enum)
}
func (e *MetadataIntToEnumError) Unwrap() error { return ErrMetadataIntToEnum }

// UnexpectedMetadataValue is a well-typed metadata value the recipe forbids.
type UnexpectedMetadataValue struct {
	Type     model.EventType
	Key      string
	Expected any
	Actual   any
}

func (e *UnexpectedMetadataValue) Error() string {
	return fmt.Sprintf("%s: %s: %q expected %v, got %v", e.Type, ErrUnexpectedMetadata, e.Key, e.Expected, e.Actual)
}
func (e *UnexpectedMetadataValue) Unwrap() error { return ErrUnexpectedMetadata }

// NotEnoughTags is a tag list exhausted before the recipe finished.
type NotEnoughTags struct {
	Type            model.EventType
	Kind            TagKind
	ExpectedAtLeast int
}

func (e *NotEnoughTags) Error() string {
	return fmt.Sprintf("%s: %s: expected at least %d %s tags", e.Type, ErrNotEnoughTags, e.ExpectedAtLeast, e.Kind)
}
func (e *NotEnoughTags) Unwrap() error { return ErrNotEnoughTags }

// WrongNumberOfTags is a tag list with leftovers after decoding.
type WrongNumberOfTags struct {
	Type     model.EventType
	Kind     TagKind
	Expected int
	Actual   int
}

func (e *WrongNumberOfTags) Error() string {
	return fmt.Sprintf("%s: %s: expected %d %s tags, got %d", e.Type, ErrWrongNumberOfTags, e.Expected, e.Kind, e.Actual)
}
func (e *WrongNumberOfTags) Unwrap() error { return ErrWrongNumberOfTags }

// ExpectedEqualTags is two tags that must name the same entity.
type ExpectedEqualTags struct {
	Type   model.EventType
	Kind   TagKind
	First  uuid.UUID
	Second uuid.UUID
}

func (e *ExpectedEqualTags) Error() string {
	return fmt.Sprintf("%s: %s: %s tags %s and %s differ", e.Type, ErrExpectedEqualTags, e.Kind, e.First, e.Second)
}
func (e *ExpectedEqualTags) Unwrap() error { return ErrExpectedEqualTags }

// NotEnoughChildren is a child list exhausted before the recipe finished.
type NotEnoughChildren struct {
	Type            model.EventType
	ExpectedAtLeast int
}

func (e *NotEnoughChildren) Error() string {
	return fmt.Sprintf("%s: %s: expected at least %d", e.Type, ErrNotEnoughChildren, e.ExpectedAtLeast)
}
func (e *NotEnoughChildren) Unwrap() error { return ErrNotEnoughChildren }

// UnexpectedChildType is a child with a type code the recipe did not ask for.
type UnexpectedChildType struct {
	Type     model.EventType
	Index    int
	Expected []model.EventType
	Actual   model.EventType
}

func (e *UnexpectedChildType) Error() string {
	return fmt.Sprintf("%s: %s: child %d expected %v, got %s", e.Type, ErrUnexpectedChildType, e.Index, e.Expected, e.Actual)
}
func (e *UnexpectedChildType) Unwrap() error { return ErrUnexpectedChildType }

// ExtraChildren is a child list with leftovers after decoding.
type ExtraChildren struct {
	Type     model.EventType
	Expected int
	Actual   int
}

func (e *ExtraChildren) Error() string {
	return fmt.Sprintf("%s: %s: expected %d, got %d", e.Type, ErrExtraChildren, e.Expected, e.Actual)
}
func (e *ExtraChildren) Unwrap() error { return ErrExtraChildren }

// UnknownEnumValue is a value outside a closed domain enumeration.
type UnknownEnumValue struct {
	Type  model.EventType
	Enum  string
	Value string
}

func (e *UnknownEnumValue) Error() string {
	return fmt.Sprintf("%s: %s: %s %q", e.Type, ErrUnknownEnumValue, e.Enum, e.Value)
}
func (e *UnknownEnumValue) Unwrap() error { return ErrUnknownEnumValue }

var kindLabels = []struct {
	sentinel error
	label    string
}{
	{ErrUnhandledEventType, "unhandled_event_type"},
	{ErrDescriptionParse, "description_parse"},
	{ErrUnexpectedDescription, "unexpected_description"},
	{ErrMissingMetadata, "missing_metadata"},
	{ErrMetadataType, "metadata_type"},
	{ErrMetadataStrToID, "metadata_str_to_id"},
	{ErrMetadataIntToEnum, "metadata_int_to_enum"},
	{ErrUnexpectedMetadata, "unexpected_metadata_value"},
	{ErrNotEnoughTags, "not_enough_tags"},
	{ErrWrongNumberOfTags, "wrong_number_of_tags"},
	{ErrExpectedEqualTags, "expected_equal_tags"},
	{ErrNotEnoughChildren, "not_enough_children"},
	{ErrUnexpectedChildType, "unexpected_child_type"},
	{ErrExtraChildren, "extra_children"},
	{ErrUnknownEnumValue, "unknown_enum_value"},
}

// KindOf returns a stable label for the kind of err, "none" for nil and
// "unknown" for errors outside the taxonomy.
func KindOf(err error) string {
	if err == nil {
		return "none"
	}
	for _, k := range kindLabels {
		if errors.Is(err, k.sentinel) {
			return k.label
		}
	}
	return "unknown"
}
