package assignments

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"assignment_backend/internals/features/classwork/assignments/dto"
	"assignment_backend/internals/features/classwork/assignments/repository"
	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

// SeedAssignmentsFromJSON inserts every entry whose title is not stored yet.
// Entries failing the create-request validation are logged and skipped; only
// an unreadable file fails.
func SeedAssignmentsFromJSON(ctx context.Context, repo repository.Repository, filePath string) (inserted, skipped int, err error) {
	log.Info().Str("file", filePath).Msg("📥 Membaca file seed")

	content, err := os.ReadFile(filePath)
	if err != nil {
		return 0, 0, fmt.Errorf("read seed file: %w", err)
	}

	var data []dto.CreateAssignmentRequest
	if err := sonic.Unmarshal(content, &data); err != nil {
		return 0, 0, fmt.Errorf("decode seed file: %w", err)
	}

	v := helper.NewValidator()
	for _, item := range data {
		if err := v.Struct(&item); err != nil {
			log.Warn().Err(err).Str("title", item.Title).Msg("❌ entry seed tidak valid")
			skipped++
			continue
		}

		exists := listquery.Predicate{Conditions: []listquery.Condition{
			{Field: listquery.FieldTitle, Op: listquery.OpEq, Value: item.Title},
		}}
		n, err := repo.Count(ctx, exists)
		if err != nil {
			return inserted, skipped, err
		}
		if n > 0 {
			log.Debug().Str("title", item.Title).Msg("ℹ️ sudah ada, lewati")
			skipped++
			continue
		}

		m, err := item.ToModel()
		if err != nil {
			log.Warn().Err(err).Str("title", item.Title).Msg("❌ entry seed tidak valid")
			skipped++
			continue
		}
		if _, err := repo.Create(ctx, &m); err != nil {
			return inserted, skipped, err
		}
		inserted++
	}

	log.Info().Int("inserted", inserted).Int("skipped", skipped).Msg("✅ seed assignments selesai")
	return inserted, skipped, nil
}
