package pipeline

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func stageName(t *testing.T, stage bson.D) string {
	t.Helper()
	if len(stage) == 0 {
		t.Fatal("empty stage")
	}
	return stage[0].Key
}

func TestBuilderStageOrder(t *testing.T) {
	stages := New().
		Match(bson.D{{Key: "video", Value: "v1"}}).
		LookupOne(Lookup{From: "users", LocalField: "owner", ForeignField: "_id", As: "createdBy", Fields: []string{"username"}}).
		Project("content", "createdBy").
		Sort(Desc("createdAt")).
		Paginate(Page{Number: 2, Size: 10}).
		Build()

	want := []string{"$match", "$lookup", "$unwind", "$project", "$sort", "$skip", "$limit"}
	if len(stages) != len(want) {
		t.Fatalf("stage count: got %d, want %d", len(stages), len(want))
	}
	for i, name := range want {
		if got := stageName(t, stages[i]); got != name {
			t.Errorf("stage %d: got %s, want %s", i, got, name)
		}
	}
}

func TestLookupOneProjectsWhitelistAndUnwinds(t *testing.T) {
	stages := New().
		LookupOne(Lookup{
			From:         "users",
			LocalField:   "owner",
			ForeignField: "_id",
			As:           "createdBy",
			Fields:       []string{"username", "fullName", "avatar"},
		}).
		Build()

	if len(stages) != 2 {
		t.Fatalf("stage count: got %d, want 2", len(stages))
	}

	lookup, ok := stages[0][0].Value.(bson.D)
	if !ok {
		t.Fatalf("$lookup value is %T, want bson.D", stages[0][0].Value)
	}

	var inner interface{}
	for _, e := range lookup {
		if e.Key == "pipeline" {
			inner = e.Value
		}
	}
	if inner == nil {
		t.Fatal("lookup has no inner projection pipeline")
	}

	// Flattening uses a bare $unwind: a join with zero matches drops
	// the source document instead of emitting a null field.
	unwind := stages[1][0]
	if unwind.Key != "$unwind" {
		t.Fatalf("second stage: got %s, want $unwind", unwind.Key)
	}
	if unwind.Value != "$createdBy" {
		t.Errorf("unwind path: got %v, want $createdBy", unwind.Value)
	}
}

func TestSortAppendsIDTiebreaker(t *testing.T) {
	stages := New().Sort(Desc("createdAt")).Build()

	sort, ok := stages[0][0].Value.(bson.D)
	if !ok {
		t.Fatalf("$sort value is %T, want bson.D", stages[0][0].Value)
	}
	last := sort[len(sort)-1]
	if last.Key != "_id" {
		t.Errorf("last sort key: got %s, want _id", last.Key)
	}
}

func TestPaginateAddsSortWhenMissing(t *testing.T) {
	stages := New().
		Match(bson.D{{Key: "owner", Value: "u1"}}).
		Paginate(Page{Number: 1, Size: 10}).
		Build()

	want := []string{"$match", "$sort", "$skip", "$limit"}
	if len(stages) != len(want) {
		t.Fatalf("stage count: got %d, want %d", len(stages), len(want))
	}
	for i, name := range want {
		if got := stageName(t, stages[i]); got != name {
			t.Errorf("stage %d: got %s, want %s", i, got, name)
		}
	}
}

func TestPaginateSkipAndLimitValues(t *testing.T) {
	stages := New().Sort(Desc("createdAt")).Paginate(Page{Number: 3, Size: 15}).Build()

	skip := stages[1][0]
	limit := stages[2][0]
	if skip.Key != "$skip" || skip.Value.(int64) != 30 {
		t.Errorf("skip: got %s=%v, want $skip=30", skip.Key, skip.Value)
	}
	if limit.Key != "$limit" || limit.Value.(int64) != 15 {
		t.Errorf("limit: got %s=%v, want $limit=15", limit.Key, limit.Value)
	}
}

func TestGroupSumAndCount(t *testing.T) {
	stages := New().
		Match(bson.D{{Key: "owner", Value: "u1"}}).
		GroupSum("totalVideos", map[string]string{"totalViews": "views"}).
		Build()

	group, ok := stages[1][0].Value.(bson.D)
	if !ok {
		t.Fatalf("$group value is %T, want bson.D", stages[1][0].Value)
	}

	keys := map[string]bool{}
	for _, e := range group {
		keys[e.Key] = true
	}
	for _, k := range []string{"_id", "totalViews", "totalVideos"} {
		if !keys[k] {
			t.Errorf("group stage missing %s", k)
		}
	}

	count := New().CountAs("totalSubscribers").Build()
	if got := stageName(t, count[0]); got != "$count" {
		t.Errorf("count stage: got %s, want $count", got)
	}
}
