// Package store implements the Anti-Corruption Layer translators for the
// document store's REST API: structured queries and typed field values.
package store

import "encoding/json"

// Sort directions accepted by structured queries.
const (
	DirectionAscending  = "ASCENDING"
	DirectionDescending = "DESCENDING"
)

// RunQueryRequestDTO is the body of a documents:runQuery call.
type RunQueryRequestDTO struct {
	StructuredQuery StructuredQueryDTO `json:"structuredQuery"`
}

// StructuredQueryDTO selects, orders and limits documents of one collection.
type StructuredQueryDTO struct {
	From    []CollectionSelectorDTO `json:"from"`
	OrderBy []OrderDTO              `json:"orderBy,omitempty"`
	Limit   int                     `json:"limit,omitempty"`
}

// CollectionSelectorDTO names the collection to read.
type CollectionSelectorDTO struct {
	CollectionID string `json:"collectionId"`
}

// OrderDTO orders results by one field.
type OrderDTO struct {
	Field     FieldReferenceDTO `json:"field"`
	Direction string            `json:"direction"`
}

// FieldReferenceDTO is a dotted field path.
type FieldReferenceDTO struct {
	FieldPath string `json:"fieldPath"`
}

// RunQueryResponseItemDTO is one element of the streamed runQuery response
// array. Document is absent on the trailing progress element and on empty
// results.
type RunQueryResponseItemDTO struct {
	Document *DocumentDTO `json:"document"`
	ReadTime string       `json:"readTime"`
}

// DocumentDTO is a stored document. Name is the full resource path ending
// in the document ID.
type DocumentDTO struct {
	Name       string           `json:"name"`
	Fields     map[string]Value `json:"fields"`
	CreateTime string           `json:"createTime"`
	UpdateTime string           `json:"updateTime"`
}

// Value is a typed field value such as {"stringValue":"a"} or
// {"integerValue":"42"}. Exactly one key is set.
type Value map[string]json.RawMessage

// ArrayValueDTO is the payload of an arrayValue.
type ArrayValueDTO struct {
	Values []Value `json:"values"`
}

// MapValueDTO is the payload of a mapValue.
type MapValueDTO struct {
	Fields map[string]Value `json:"fields"`
}

// GeoPointDTO is the payload of a geoPointValue.
type GeoPointDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
