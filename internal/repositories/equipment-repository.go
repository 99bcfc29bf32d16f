package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

const (
	equipmentTable  = "equipments"
	equipmentFields = "id, name, serial_number, category, department, team_id, location, condition, health_score, is_scrap, maintenance_count, created_at, updated_at"
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, limit, offset uint64) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, eq entities.Equipment) error
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
	IncrementMaintenanceCount(ctx context.Context, id string) error
}

type equipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Category, &e.Department, &e.TeamID,
		&e.Location, &e.Condition, &e.HealthScore, &e.IsScrap, &e.MaintenanceCount,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepository) GetEquipments(ctx context.Context, limit, offset uint64) ([]entities.Equipment, uint64, error) {
	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", equipmentTable)
	if err := r.storage.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at LIMIT $1 OFFSET $2", equipmentFields, equipmentTable)
	rows, err := r.storage.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *e)
	}
	return list, total, rows.Err()
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentFields, equipmentTable)
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, eq entities.Equipment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, equipmentTable, equipmentFields)

	_, err := r.storage.Exec(ctx, query,
		eq.ID, eq.Name, eq.SerialNumber, eq.Category, eq.Department, eq.TeamID,
		eq.Location, eq.Condition, eq.HealthScore, eq.IsScrap, eq.MaintenanceCount,
		eq.CreatedAt, eq.UpdatedAt,
	)
	return err
}

func (r *equipmentRepository) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	b := sq.Update(equipmentTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentFields).
		PlaceholderFormat(sq.Dollar)

	if payload.Name != nil {
		b = b.Set("name", *payload.Name)
	}
	if payload.SerialNumber != nil {
		b = b.Set("serial_number", *payload.SerialNumber)
	}
	if payload.Category != nil {
		b = b.Set("category", *payload.Category)
	}
	if payload.Department != nil {
		b = b.Set("department", *payload.Department)
	}
	if payload.TeamID != nil {
		b = b.Set("team_id", *payload.TeamID)
	}
	if payload.Location.Valid {
		b = b.Set("location", payload.Location.String)
	}
	if payload.Condition.Valid {
		b = b.Set("condition", payload.Condition.String)
	}
	if payload.HealthScore.Valid {
		b = b.Set("health_score", payload.HealthScore.Int)
	}
	if payload.IsScrap != nil {
		b = b.Set("is_scrap", *payload.IsScrap)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

// IncrementMaintenanceCount bumps the counter by exactly 1 in a single UPDATE,
// so concurrent creators never lose an increment.
func (r *equipmentRepository) IncrementMaintenanceCount(ctx context.Context, id string) error {
	query := fmt.Sprintf("UPDATE %s SET maintenance_count = maintenance_count + 1 WHERE id = $1", equipmentTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}
