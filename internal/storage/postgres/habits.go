package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hearthhq/hearth/internal/models"
)

const habitColumns = `id, member_id, name, category, type, scoring_type, period,
	base_points, target_count, count, total_count, completed_dates,
	streak_days, last_updated, created_at, archived_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var completedDates, lastUpdated, createdAt string
	var archivedAt, deletedAt sql.NullString

	err := row.Scan(&h.ID, &h.MemberID, &h.Name, &h.Category, &h.Type, &h.ScoringType,
		&h.Period, &h.BasePoints, &h.TargetCount, &h.Count, &h.TotalCount,
		&completedDates, &h.StreakDays, &lastUpdated, &createdAt, &archivedAt, &deletedAt)
	if err != nil {
		return models.Habit{}, err
	}

	if err := json.Unmarshal([]byte(completedDates), &h.CompletedDates); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse completed_dates for habit %s: %w", h.ID, err)
	}
	h.LastUpdated = models.ParseTimestamp(lastUpdated)

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	if archivedAt.Valid {
		t, err := time.Parse(time.RFC3339, archivedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse archived_at for habit %s: %w", h.ID, err)
		}
		h.ArchivedAt = &t
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse deleted_at for habit %s: %w", h.ID, err)
		}
		h.DeletedAt = &t
	}

	return h, nil
}

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE name = $1 AND deleted_at IS NULL`, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits WHERE TRUE"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) GetHabitsForMember(memberID string) ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT `+habitColumns+`
		FROM habits
		WHERE member_id = $1 AND deleted_at IS NULL AND archived_at IS NULL
		ORDER BY created_at`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	completedDates, err := json.Marshal(habit.CompletedDates)
	if err != nil {
		return fmt.Errorf("failed to encode completed_dates: %w", err)
	}

	var archivedAt, deletedAt sql.NullString
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullString{String: habit.ArchivedAt.Format(time.RFC3339), Valid: true}
	}
	if habit.DeletedAt != nil {
		deletedAt = sql.NullString{String: habit.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (id, member_id, name, category, type, scoring_type, period,
			base_points, target_count, count, total_count, completed_dates,
			streak_days, last_updated, created_at, archived_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			member_id = EXCLUDED.member_id,
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			type = EXCLUDED.type,
			scoring_type = EXCLUDED.scoring_type,
			period = EXCLUDED.period,
			base_points = EXCLUDED.base_points,
			target_count = EXCLUDED.target_count,
			count = EXCLUDED.count,
			total_count = EXCLUDED.total_count,
			completed_dates = EXCLUDED.completed_dates,
			streak_days = EXCLUDED.streak_days,
			last_updated = EXCLUDED.last_updated,
			archived_at = EXCLUDED.archived_at,
			deleted_at = EXCLUDED.deleted_at`,
		habit.ID, habit.MemberID, habit.Name, habit.Category, habit.Type,
		habit.ScoringType, habit.Period, habit.BasePoints, habit.TargetCount,
		habit.Count, habit.TotalCount, string(completedDates), habit.StreakDays,
		habit.LastUpdated.String(), habit.CreatedAt.Format(time.RFC3339),
		archivedAt, deletedAt)

	return err
}

func (s *Store) ArchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = $1 WHERE id = $2 AND deleted_at IS NULL AND archived_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireAffected(result, "habit not found or already archived/deleted")
}

func (s *Store) UnarchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = NULL WHERE id = $1 AND deleted_at IS NULL AND archived_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireAffected(result, "habit not found or not archived")
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireAffected(result, "habit not found or already deleted")
}

func (s *Store) RestoreHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	return requireAffected(result, "habit not found or not deleted")
}

func requireAffected(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
