package repositories

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageValue(t *testing.T, pipeline mongo.Pipeline, index int, key string) interface{} {
	t.Helper()
	if index >= len(pipeline) {
		t.Fatalf("pipeline has %d stages, want at least %d", len(pipeline), index+1)
	}
	stage := pipeline[index]
	if len(stage) != 1 || stage[0].Key != key {
		t.Fatalf("stage %d = %v, want single %q stage", index, stage, key)
	}
	return stage[0].Value
}

func TestPassThreshold(t *testing.T) {
	if passThreshold != 40 {
		t.Errorf("passThreshold = %d, want 40", passThreshold)
	}
}

func TestClassGroupsPipeline(t *testing.T) {
	group := stageValue(t, classGroupsPipeline(), 0, "$group").(bson.M)

	if group["_id"] != "$class_name" {
		t.Errorf("group key = %v, want $class_name", group["_id"])
	}
	push := group["roll_numbers"].(bson.M)
	if push["$push"] != "$roll_number" {
		t.Errorf("roll_numbers = %v, want $push $roll_number", push)
	}
}

func TestClassMarksStatsPipeline(t *testing.T) {
	pipeline := classMarksStatsPipeline([]string{"S001", "S002"})

	match := stageValue(t, pipeline, 0, "$match").(bson.M)
	in := match["student_id"].(bson.M)["$in"].([]string)
	if len(in) != 2 || in[0] != "S001" {
		t.Errorf("$in = %v, want the given roll numbers", in)
	}

	group := stageValue(t, pipeline, 1, "$group").(bson.M)
	if group["_id"] != nil {
		t.Errorf("group key = %v, want nil", group["_id"])
	}
	cond := group["pass_count"].(bson.M)["$sum"].(bson.M)["$cond"].(bson.A)
	gte := cond[0].(bson.M)["$gte"].(bson.A)
	if gte[1] != passThreshold {
		t.Errorf("pass condition threshold = %v, want %d", gte[1], passThreshold)
	}
}

func TestSubjectPerformancePipeline(t *testing.T) {
	group := stageValue(t, subjectPerformancePipeline(), 0, "$group").(bson.M)

	if group["_id"] != "$subject" {
		t.Errorf("group key = %v, want $subject", group["_id"])
	}
	for _, field := range []string{"average_score", "highest_score", "lowest_score", "total_students", "pass_rate"} {
		if _, ok := group[field]; !ok {
			t.Errorf("group missing %q accumulator", field)
		}
	}
	cond := group["pass_rate"].(bson.M)["$avg"].(bson.M)["$cond"].(bson.A)
	gte := cond[0].(bson.M)["$gte"].(bson.A)
	if gte[1] != passThreshold {
		t.Errorf("pass condition threshold = %v, want %d", gte[1], passThreshold)
	}
}

func TestTopPerformersPipeline(t *testing.T) {
	pipeline := topPerformersPipeline(10)

	// Inner join: marks without a matching student are dropped.
	unwind := stageValue(t, pipeline, 1, "$unwind").(bson.M)
	if unwind["preserveNullAndEmptyArrays"] != false {
		t.Error("unwind preserves empty lookups, want inner join")
	}

	match := stageValue(t, pipeline, 3, "$match").(bson.M)
	if _, ok := match["subjects_count"]; !ok {
		t.Error("match stage does not filter on subjects_count")
	}

	sort := stageValue(t, pipeline, 4, "$sort").(bson.D)
	if len(sort) != 2 || sort[0].Key != "average_score" || sort[0].Value != -1 {
		t.Errorf("primary sort = %v, want average_score descending", sort)
	}
	if sort[1].Key != "_id" || sort[1].Value != 1 {
		t.Errorf("tie-break sort = %v, want _id ascending", sort[1])
	}

	limit := stageValue(t, pipeline, 5, "$limit")
	if limit != int64(10) {
		t.Errorf("limit = %v, want 10", limit)
	}
}

func TestAllMarksPipeline(t *testing.T) {
	pipeline := allMarksPipeline()

	lookup := stageValue(t, pipeline, 0, "$lookup").(bson.M)
	if lookup["localField"] != "student_id" || lookup["foreignField"] != "roll_number" {
		t.Errorf("lookup = %v, want student_id joined on roll_number", lookup)
	}

	// Outer join: orphaned marks survive with a placeholder name.
	unwind := stageValue(t, pipeline, 1, "$unwind").(bson.M)
	if unwind["preserveNullAndEmptyArrays"] != true {
		t.Error("unwind drops orphaned marks, want outer join")
	}

	project := stageValue(t, pipeline, 2, "$project").(bson.M)
	ifNull := project["student_name"].(bson.M)["$ifNull"].(bson.A)
	if ifNull[1] != "Unknown Student" {
		t.Errorf("placeholder name = %v, want %q", ifNull[1], "Unknown Student")
	}
}
