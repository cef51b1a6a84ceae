package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hearthhq/hearth/internal/models"
)

const submissionColumns = `id, habit_id, ts, day, count, points_earned,
	streak_days_at_time, multiplier_applied, created_by, created_at, deleted_at`

func scanSubmission(row rowScanner) (models.SubmissionEntry, error) {
	var e models.SubmissionEntry
	var ts, createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&e.ID, &e.HabitID, &ts, &e.Date, &e.Count, &e.PointsEarned,
		&e.StreakDaysAtTime, &e.MultiplierApplied, &e.CreatedBy, &createdAt, &deletedAt)
	if err != nil {
		return models.SubmissionEntry{}, err
	}

	e.Timestamp, err = time.Parse(time.RFC3339, ts)
	if err != nil {
		return models.SubmissionEntry{}, fmt.Errorf("failed to parse ts for submission %s: %w", e.ID, err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.SubmissionEntry{}, fmt.Errorf("failed to parse created_at for submission %s: %w", e.ID, err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.SubmissionEntry{}, fmt.Errorf("failed to parse deleted_at for submission %s: %w", e.ID, err)
		}
		e.DeletedAt = &t
	}

	return e, nil
}

func (s *Store) AddSubmission(entry models.SubmissionEntry) error {
	return s.UpdateSubmission(entry)
}

func (s *Store) GetSubmission(id string) (models.SubmissionEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+submissionColumns+`
		FROM submissions WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanSubmission(row)
}

func (s *Store) GetSubmissionsForHabit(habitID, startDay, endDay string) ([]models.SubmissionEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE habit_id = $1 AND day >= $2 AND day <= $3 AND deleted_at IS NULL
		ORDER BY ts DESC`, habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SubmissionEntry
	for rows.Next() {
		e, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) GetSubmissionsForDay(day string) ([]models.SubmissionEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+submissionColumns+`
		FROM submissions WHERE day = $1 AND deleted_at IS NULL
		ORDER BY ts`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SubmissionEntry
	for rows.Next() {
		e, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateSubmission(entry models.SubmissionEntry) error {
	var deletedAt sql.NullString
	if entry.DeletedAt != nil {
		deletedAt = sql.NullString{String: entry.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO submissions (id, habit_id, ts, day, count, points_earned,
			streak_days_at_time, multiplier_applied, created_by, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			count = EXCLUDED.count,
			points_earned = EXCLUDED.points_earned,
			deleted_at = EXCLUDED.deleted_at`,
		entry.ID, entry.HabitID, entry.Timestamp.Format(time.RFC3339), entry.Date,
		entry.Count, entry.PointsEarned, entry.StreakDaysAtTime, entry.MultiplierApplied,
		entry.CreatedBy, entry.CreatedAt.Format(time.RFC3339), deletedAt)

	return err
}

func (s *Store) DeleteSubmission(id string) error {
	result, err := s.db.Exec(`
		UPDATE submissions SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireAffected(result, "submission not found or already deleted")
}

func (s *Store) RestoreSubmission(id string) error {
	result, err := s.db.Exec(`
		UPDATE submissions SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireAffected(result, "submission not found or not deleted")
}
