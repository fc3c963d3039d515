package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// ContentKind enumerates the scalar shapes a lead content field may take.
type ContentKind uint8

const (
	ContentNull ContentKind = iota
	ContentString
	ContentNumber
)

// ErrContentNotObject is returned when a lead payload is not a JSON object.
var ErrContentNotObject = errors.New("content must be a JSON object")

// ContentValue is one field of a lead's form payload. The zero value is null.
type ContentValue struct {
	kind ContentKind
	str  string
	num  float64
}

// StringValue builds a string content value.
func StringValue(s string) ContentValue {
	return ContentValue{kind: ContentString, str: s}
}

// NumberValue builds a numeric content value.
func NumberValue(f float64) ContentValue {
	return ContentValue{kind: ContentNumber, num: f}
}

// NullValue builds a null content value.
func NullValue() ContentValue {
	return ContentValue{}
}

// Kind reports which variant v holds.
func (v ContentValue) Kind() ContentKind { return v.kind }

// IsNull reports whether v is null.
func (v ContentValue) IsNull() bool { return v.kind == ContentNull }

// Number returns the numeric payload and whether v is a number.
func (v ContentValue) Number() (float64, bool) {
	return v.num, v.kind == ContentNumber
}

// String renders v as text; null renders as the empty string.
func (v ContentValue) String() string {
	switch v.kind {
	case ContentString:
		return v.str
	case ContentNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON implements json.Marshaler.
func (v ContentValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ContentString:
		return json.Marshal(v.str)
	case ContentNumber:
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. Booleans become "true"/"false"
// and nested objects or arrays are kept as their compact JSON text.
func (v *ContentValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = NullValue()
		return nil
	}

	switch data[0] {
	case 'n':
		*v = NullValue()
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = StringValue(strconv.FormatBool(b))
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*v = StringValue(buf.String())
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid content value %s: %w", data, err)
		}
		*v = NumberValue(f)
	}
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (v ContentValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.kind {
	case ContentString:
		return bsontype.String, bsoncore.AppendString(nil, v.str), nil
	case ContentNumber:
		return bsontype.Double, bsoncore.AppendDouble(nil, v.num), nil
	default:
		return bsontype.Null, nil, nil
	}
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler. Values written by
// other tools are folded into the closed set: integers become numbers and
// anything else is kept as its textual form.
func (v *ContentValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*v = StringValue(raw.StringValue())
	case bsontype.Double:
		*v = NumberValue(raw.Double())
	case bsontype.Int32:
		*v = NumberValue(float64(raw.Int32()))
	case bsontype.Int64:
		*v = NumberValue(float64(raw.Int64()))
	case bsontype.Boolean:
		*v = StringValue(strconv.FormatBool(raw.Boolean()))
	case bsontype.Null, bsontype.Undefined:
		*v = NullValue()
	default:
		*v = StringValue(raw.String())
	}
	return nil
}

// Content is a lead's form payload keyed by campaign field name.
type Content map[string]ContentValue

// ParseContent decodes a submitted payload. A JSON string holding an object
// is unwrapped first, matching how the HTML form posts it.
func ParseContent(raw json.RawMessage) (Content, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrContentNotObject
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		raw = bytes.TrimSpace([]byte(s))
	}

	if len(raw) == 0 || raw[0] != '{' {
		return nil, ErrContentNotObject
	}

	content := Content{}
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentNotObject, err)
	}
	return content, nil
}
