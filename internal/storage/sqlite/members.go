package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hearthhq/hearth/internal/models"
)

func scanMember(row rowScanner) (models.Member, error) {
	var m models.Member
	var createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&m.ID, &m.Name, &m.Points, &createdAt, &deletedAt)
	if err != nil {
		return models.Member{}, err
	}

	m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Member{}, fmt.Errorf("failed to parse created_at for member %s: %w", m.ID, err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Member{}, fmt.Errorf("failed to parse deleted_at for member %s: %w", m.ID, err)
		}
		m.DeletedAt = &t
	}

	return m, nil
}

func (s *Store) AddMember(member models.Member) error {
	_, err := s.db.Exec(`
		INSERT INTO members (id, name, points, created_at, deleted_at)
		VALUES (?, ?, ?, ?, NULL)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name`,
		member.ID, member.Name, member.Points, member.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetMember(id string) (models.Member, error) {
	row := s.db.QueryRow(`
		SELECT id, name, points, created_at, deleted_at
		FROM members WHERE id = ? AND deleted_at IS NULL`, id)
	return scanMember(row)
}

func (s *Store) GetMemberByName(name string) (models.Member, error) {
	row := s.db.QueryRow(`
		SELECT id, name, points, created_at, deleted_at
		FROM members WHERE name = ? AND deleted_at IS NULL`, name)
	return scanMember(row)
}

func (s *Store) GetAllMembers(includeDeleted bool) ([]models.Member, error) {
	query := "SELECT id, name, points, created_at, deleted_at FROM members"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) DeleteMember(id string) error {
	result, err := s.db.Exec(`
		UPDATE members SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireAffected(result, "member not found or already deleted")
}

func (s *Store) ApplyPointsDelta(memberID string, delta int) error {
	result, err := s.db.Exec(`
		UPDATE members SET points = points + ? WHERE id = ? AND deleted_at IS NULL`,
		delta, memberID)
	if err != nil {
		return err
	}
	return requireAffected(result, "member not found")
}
