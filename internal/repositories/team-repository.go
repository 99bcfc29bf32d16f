package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

const (
	teamTable  = "teams"
	teamFields = "id, name, specialization, members, created_at"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context, limit, offset uint64) ([]entities.Team, uint64, error)
	FindTeam(ctx context.Context, id string) (*entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) error
	DeleteTeam(ctx context.Context, id string) error
}

type teamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &teamRepository{storage: storage}
}

func scanTeam(row pgx.Row) (*entities.Team, error) {
	var t entities.Team
	err := row.Scan(&t.ID, &t.Name, &t.Specialization, &t.Members, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetTeams(ctx context.Context, limit, offset uint64) ([]entities.Team, uint64, error) {
	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", teamTable)
	if err := r.storage.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Team{}, 0, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at LIMIT $1 OFFSET $2", teamFields, teamTable)
	rows, err := r.storage.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entities.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *t)
	}
	return list, total, rows.Err()
}

func (r *teamRepository) FindTeam(ctx context.Context, id string) (*entities.Team, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", teamFields, teamTable)
	return scanTeam(r.storage.QueryRow(ctx, query, id))
}

func (r *teamRepository) CreateTeam(ctx context.Context, team entities.Team) error {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)", teamTable, teamFields)
	_, err := r.storage.Exec(ctx, query, team.ID, team.Name, team.Specialization, team.Members, team.CreatedAt)
	return err
}

func (r *teamRepository) DeleteTeam(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", teamTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}
