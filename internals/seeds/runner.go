package seeds

import (
	"context"

	"github.com/rs/zerolog/log"

	assignmentRepo "assignment_backend/internals/features/classwork/assignments/repository"
	"assignment_backend/internals/seeds/assignments"
)

// RunAllSeeds loads sample data when SEED_FILE is set. Failures are logged,
// never fatal: the API serves fine without sample data.
func RunAllSeeds(ctx context.Context, repo assignmentRepo.Repository, assignmentsFile string) {
	if assignmentsFile == "" {
		return
	}
	if _, _, err := assignments.SeedAssignmentsFromJSON(ctx, repo, assignmentsFile); err != nil {
		log.Error().Err(err).Msg("❌ seeding assignments failed")
	}
}
