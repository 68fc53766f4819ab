package store

import (
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
)

// ToRunQueryRequest converts a dashboard query into a structured query.
func ToRunQueryRequest(q dashboard.Query) RunQueryRequestDTO {
	sq := StructuredQueryDTO{
		From:  []CollectionSelectorDTO{{CollectionID: q.Collection}},
		Limit: max(q.Limit, 0),
	}
	if q.OrderBy != "" {
		dir := DirectionAscending
		if q.Descending {
			dir = DirectionDescending
		}
		sq.OrderBy = []OrderDTO{{Field: FieldReferenceDTO{FieldPath: q.OrderBy}, Direction: dir}}
	}
	return RunQueryRequestDTO{StructuredQuery: sq}
}

// ToDocuments converts a runQuery response, skipping elements without a
// document. The result is never nil.
func ToDocuments(collection string, items []RunQueryResponseItemDTO) []dashboard.Document {
	docs := make([]dashboard.Document, 0, len(items))
	for _, item := range items {
		if item.Document == nil {
			continue
		}
		docs = append(docs, ToDocument(collection, item.Document))
	}
	return docs
}

// ToDocument converts a stored document. Fields whose values cannot be
// decoded are set to nil so accessors report them as absent.
func ToDocument(collection string, dto *DocumentDTO) dashboard.Document {
	fields := make(map[string]any, len(dto.Fields))
	for name, v := range dto.Fields {
		decoded, err := DecodeValue(v)
		if err != nil {
			decoded = nil
		}
		fields[name] = decoded
	}

	return dashboard.Document{
		ID:         path.Base(dto.Name),
		Collection: collection,
		Fields:     fields,
		CreateTime: parseTimestamp(dto.CreateTime),
		UpdateTime: parseTimestamp(dto.UpdateTime),
	}
}

// DecodeValue converts a typed value to its Go form: nil, bool, int64,
// float64, string, time.Time, []any or map[string]any. Bytes and references
// stay strings; geo points become {"latitude","longitude"} maps.
func DecodeValue(v Value) (any, error) {
	for kind, raw := range v {
		switch kind {
		case "nullValue":
			return nil, nil
		case "booleanValue":
			var b bool
			if err := decode(kind, raw, &b); err != nil {
				return nil, err
			}
			return b, nil
		case "integerValue":
			// Integers are sent as decimal strings.
			var s string
			if err := decode(kind, raw, &s); err != nil {
				return nil, err
			}
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("integerValue %q: %w", s, err)
			}
			return n, nil
		case "doubleValue":
			return decodeDouble(raw)
		case "timestampValue":
			var s string
			if err := decode(kind, raw, &s); err != nil {
				return nil, err
			}
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				return nil, fmt.Errorf("timestampValue %q: %w", s, err)
			}
			return t.UTC(), nil
		case "stringValue", "bytesValue", "referenceValue":
			var s string
			if err := decode(kind, raw, &s); err != nil {
				return nil, err
			}
			return s, nil
		case "geoPointValue":
			var g GeoPointDTO
			if err := decode(kind, raw, &g); err != nil {
				return nil, err
			}
			return map[string]any{"latitude": g.Latitude, "longitude": g.Longitude}, nil
		case "arrayValue":
			var a ArrayValueDTO
			if err := decode(kind, raw, &a); err != nil {
				return nil, err
			}
			out := make([]any, 0, len(a.Values))
			for _, elem := range a.Values {
				d, err := DecodeValue(elem)
				if err != nil {
					return nil, err
				}
				out = append(out, d)
			}
			return out, nil
		case "mapValue":
			var m MapValueDTO
			if err := decode(kind, raw, &m); err != nil {
				return nil, err
			}
			out := make(map[string]any, len(m.Fields))
			for name, field := range m.Fields {
				d, err := DecodeValue(field)
				if err != nil {
					return nil, err
				}
				out[name] = d
			}
			return out, nil
		default:
			return nil, fmt.Errorf("unsupported value type %q", kind)
		}
	}
	return nil, nil
}

// decodeDouble accepts a JSON number or one of the strings "NaN",
// "Infinity" and "-Infinity".
func decodeDouble(raw json.RawMessage) (any, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("doubleValue: %w", err)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("doubleValue %q: %w", s, err)
	}
	return f, nil
}

func decode(kind string, raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	return nil
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
