package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akshat/marksheet/internal/app/models"
)

// passThreshold is the minimum score counted as a pass in every report.
const passThreshold = 40

// ReportRepository runs the aggregation pipelines behind the admin
// reports, over the 'students' and 'marks' collections.
type ReportRepository struct {
	students *mongo.Collection
	marks    *mongo.Collection
}

// NewReportRepository creates a new report repository
func NewReportRepository(database *mongo.Database) *ReportRepository {
	return &ReportRepository{
		students: database.Collection("students"),
		marks:    database.Collection("marks"),
	}
}

// ClassGroups groups all students by class name, collecting each group's
// roll numbers.
func (r *ReportRepository) ClassGroups(ctx context.Context) ([]models.ClassGroup, error) {
	cursor, err := r.students.Aggregate(ctx, classGroupsPipeline())
	if err != nil {
		return nil, fmt.Errorf("error grouping students by class: %w", err)
	}
	defer cursor.Close(ctx)

	groups := make([]models.ClassGroup, 0)
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("error decoding class groups: %w", err)
	}
	return groups, nil
}

// ClassMarksStats aggregates average score, pass count and entry count
// over the marks belonging to the given roll numbers. Returns nil when
// the group has no marks at all.
func (r *ReportRepository) ClassMarksStats(ctx context.Context, rollNumbers []string) (*models.ClassMarksStats, error) {
	cursor, err := r.marks.Aggregate(ctx, classMarksStatsPipeline(rollNumbers))
	if err != nil {
		return nil, fmt.Errorf("error aggregating class marks: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []models.ClassMarksStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("error decoding class marks stats: %w", err)
	}
	if len(stats) == 0 {
		return nil, nil
	}
	return &stats[0], nil
}

// SubjectPerformance aggregates per-subject average, extremes, entry
// count and pass rate over the whole marks collection.
func (r *ReportRepository) SubjectPerformance(ctx context.Context) ([]models.SubjectPerformance, error) {
	cursor, err := r.marks.Aggregate(ctx, subjectPerformancePipeline())
	if err != nil {
		return nil, fmt.Errorf("error aggregating subject performance: %w", err)
	}
	defer cursor.Close(ctx)

	subjects := make([]models.SubjectPerformance, 0)
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, fmt.Errorf("error decoding subject performance: %w", err)
	}
	return subjects, nil
}

// TopPerformers joins marks to students, groups per student and returns
// the best performers by average score.
func (r *ReportRepository) TopPerformers(ctx context.Context, limit int64) ([]models.TopPerformer, error) {
	cursor, err := r.marks.Aggregate(ctx, topPerformersPipeline(limit))
	if err != nil {
		return nil, fmt.Errorf("error aggregating top performers: %w", err)
	}
	defer cursor.Close(ctx)

	performers := make([]models.TopPerformer, 0)
	if err := cursor.All(ctx, &performers); err != nil {
		return nil, fmt.Errorf("error decoding top performers: %w", err)
	}
	return performers, nil
}

func classGroupsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":            "$class_name",
			"total_students": bson.M{"$sum": 1},
			"roll_numbers":   bson.M{"$push": "$roll_number"},
		}}},
	}
}

func classMarksStatsPipeline(rollNumbers []string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"student_id": bson.M{"$in": rollNumbers},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"average_score": bson.M{"$avg": "$marks"},
			"pass_count": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$gte": bson.A{"$marks", passThreshold}}, 1, 0},
			}},
			"total_entries": bson.M{"$sum": 1},
		}}},
	}
}

func subjectPerformancePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":            "$subject",
			"average_score":  bson.M{"$avg": "$marks"},
			"highest_score":  bson.M{"$max": "$marks"},
			"lowest_score":   bson.M{"$min": "$marks"},
			"total_students": bson.M{"$sum": 1},
			"pass_rate": bson.M{"$avg": bson.M{
				"$cond": bson.A{bson.M{"$gte": bson.A{"$marks", passThreshold}}, 1, 0},
			}},
		}}},
	}
}

// topPerformersPipeline is an inner join on roll number: marks without a
// matching student are dropped. Ties on average score break by roll
// number ascending so the ordering is deterministic.
func topPerformersPipeline(limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "students",
			"localField":   "student_id",
			"foreignField": "roll_number",
			"as":           "student_info",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$student_info",
			"preserveNullAndEmptyArrays": false,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$student_id",
			"student_name":   bson.M{"$first": "$student_info.name"},
			"class_name":     bson.M{"$first": "$student_info.class_name"},
			"average_score":  bson.M{"$avg": "$marks"},
			"total_marks":    bson.M{"$sum": "$marks"},
			"subjects_count": bson.M{"$sum": 1},
		}}},
		{{Key: "$match", Value: bson.M{
			"subjects_count": bson.M{"$gt": 0},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "average_score", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
	}
}
