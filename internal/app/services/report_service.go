package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/akshat/marksheet/internal/app/models"
)

// topPerformersLimit caps the top performers report.
const topPerformersLimit = 10

// ReportService computes the admin dashboard reports. Aggregation
// failures degrade to an empty result set so the dashboard stays up;
// the error is logged, never propagated.
type ReportService struct {
	reportRepo ReportRepository
	logger     zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// ClassPerformance reports per-class student count, average score and
// pass rate. Classes without any marks report zero average and pass rate.
func (s *ReportService) ClassPerformance(ctx context.Context) []models.ClassPerformance {
	groups, err := s.reportRepo.ClassGroups(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error in class performance query")
		return []models.ClassPerformance{}
	}

	result := make([]models.ClassPerformance, 0, len(groups))
	for _, group := range groups {
		entry := models.ClassPerformance{
			ClassName:     group.ClassName,
			TotalStudents: group.TotalStudents,
		}

		stats, err := s.reportRepo.ClassMarksStats(ctx, group.RollNumbers)
		if err != nil {
			s.logger.Error().Err(err).Str("class", group.ClassName).Msg("Error in class performance query")
			return []models.ClassPerformance{}
		}
		if stats != nil && stats.TotalEntries > 0 {
			entry.AverageScore = stats.AverageScore
			entry.PassRate = float64(stats.PassCount) / float64(stats.TotalEntries)
		}

		result = append(result, entry)
	}

	return result
}

// SubjectPerformance reports per-subject average, extremes, entry count
// and pass rate.
func (s *ReportService) SubjectPerformance(ctx context.Context) []models.SubjectPerformance {
	subjects, err := s.reportRepo.SubjectPerformance(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error in subject performance query")
		return []models.SubjectPerformance{}
	}
	return subjects
}

// TopPerformers reports the ten best students by average score. Students
// without any marks never appear.
func (s *ReportService) TopPerformers(ctx context.Context) []models.TopPerformer {
	performers, err := s.reportRepo.TopPerformers(ctx, topPerformersLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error in top performers query")
		return []models.TopPerformer{}
	}
	return performers
}
