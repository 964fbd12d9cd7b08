// Package pipeline builds ordered aggregation stage sequences for the
// document store. Stage order is fixed: filters come before joins so
// the join operates on the minimal set, and pagination is always the
// terminal stage so skip/limit apply to the fully joined result.
package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Lookup describes a one-to-one join against another collection.
// Fields is the projection whitelist applied to the joined document
// before it is embedded; only whitelisted fields leave the store.
type Lookup struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
	Fields       []string
}

// SortKey is one key of a deterministic sort.
type SortKey struct {
	Field string
	Desc  bool
}

// Desc sorts a field descending.
func Desc(field string) SortKey {
	return SortKey{Field: field, Desc: true}
}

// Asc sorts a field ascending.
func Asc(field string) SortKey {
	return SortKey{Field: field}
}

// Builder accumulates aggregation stages in contract order.
type Builder struct {
	stages mongo.Pipeline
	sorted bool
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Match appends an equality/existence filter stage.
func (b *Builder) Match(filter bson.D) *Builder {
	b.stages = append(b.stages, bson.D{{Key: "$match", Value: filter}})
	return b
}

// LookupOne joins one referenced document and flattens it. The unwind
// deliberately drops documents whose join produced no match (dangling
// references are excluded, never emitted with a null field).
func (b *Builder) LookupOne(l Lookup) *Builder {
	spec := bson.D{
		{Key: "from", Value: l.From},
		{Key: "localField", Value: l.LocalField},
		{Key: "foreignField", Value: l.ForeignField},
		{Key: "as", Value: l.As},
	}
	if len(l.Fields) > 0 {
		proj := bson.D{}
		for _, f := range l.Fields {
			proj = append(proj, bson.E{Key: f, Value: 1})
		}
		spec = append(spec, bson.E{
			Key:   "pipeline",
			Value: mongo.Pipeline{bson.D{{Key: "$project", Value: proj}}},
		})
	}

	b.stages = append(b.stages,
		bson.D{{Key: "$lookup", Value: spec}},
		bson.D{{Key: "$unwind", Value: "$" + l.As}},
	)
	return b
}

// LookupMany joins every referenced document of an array field. The
// joined field stays an array; no unwind is applied.
func (b *Builder) LookupMany(l Lookup) *Builder {
	spec := bson.D{
		{Key: "from", Value: l.From},
		{Key: "localField", Value: l.LocalField},
		{Key: "foreignField", Value: l.ForeignField},
		{Key: "as", Value: l.As},
	}
	if len(l.Fields) > 0 {
		proj := bson.D{}
		for _, f := range l.Fields {
			proj = append(proj, bson.E{Key: f, Value: 1})
		}
		spec = append(spec, bson.E{
			Key:   "pipeline",
			Value: mongo.Pipeline{bson.D{{Key: "$project", Value: proj}}},
		})
	}

	b.stages = append(b.stages, bson.D{{Key: "$lookup", Value: spec}})
	return b
}

// Project keeps only the named output fields.
func (b *Builder) Project(fields ...string) *Builder {
	proj := bson.D{}
	for _, f := range fields {
		proj = append(proj, bson.E{Key: f, Value: 1})
	}
	return b.ProjectDoc(proj)
}

// ProjectDoc appends a raw projection stage.
func (b *Builder) ProjectDoc(proj bson.D) *Builder {
	b.stages = append(b.stages, bson.D{{Key: "$project", Value: proj}})
	return b
}

// Sort appends a deterministic sort stage. An _id tiebreaker is always
// added so page boundaries stay stable under concurrent writes.
func (b *Builder) Sort(keys ...SortKey) *Builder {
	doc := bson.D{}
	for _, k := range keys {
		dir := 1
		if k.Desc {
			dir = -1
		}
		doc = append(doc, bson.E{Key: k.Field, Value: dir})
	}
	doc = append(doc, bson.E{Key: "_id", Value: -1})
	b.stages = append(b.stages, bson.D{{Key: "$sort", Value: doc}})
	b.sorted = true
	return b
}

// Paginate appends the terminal skip/limit pair. If no sort was set,
// a creation-time sort is applied first; skipping without a
// deterministic order would make page boundaries arbitrary.
func (b *Builder) Paginate(p Page) *Builder {
	if !b.sorted {
		b.Sort(Desc("createdAt"))
	}
	b.stages = append(b.stages,
		bson.D{{Key: "$skip", Value: p.Offset()}},
		bson.D{{Key: "$limit", Value: p.Limit()}},
	)
	return b
}

// GroupSum groups all matched documents and emits one summed field per
// entry in sums plus a document count.
func (b *Builder) GroupSum(countAs string, sums map[string]string) *Builder {
	group := bson.D{{Key: "_id", Value: nil}}
	for out, field := range sums {
		group = append(group, bson.E{Key: out, Value: bson.D{{Key: "$sum", Value: "$" + field}}})
	}
	group = append(group, bson.E{Key: countAs, Value: bson.D{{Key: "$sum", Value: 1}}})
	b.stages = append(b.stages, bson.D{{Key: "$group", Value: group}})
	return b
}

// CountAs appends a count stage emitting the total under field.
func (b *Builder) CountAs(field string) *Builder {
	b.stages = append(b.stages, bson.D{{Key: "$count", Value: field}})
	return b
}

// Build returns the accumulated stage sequence.
func (b *Builder) Build() mongo.Pipeline {
	return b.stages
}
