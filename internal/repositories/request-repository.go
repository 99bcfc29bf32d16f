package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	"github.com/maitriparekhcs2848/GearGuard/pkg/constants"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

const (
	requestTable  = "requests"
	requestFields = "id, subject, status, equipment_id, team_id, type, priority, scheduled_date, assigned_to, description, created_at, updated_at"
)

// RequestFilter narrows GetRequests. Empty fields are ignored.
type RequestFilter struct {
	Status      string
	EquipmentID string
	TeamID      string
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter RequestFilter, limit, offset uint64) ([]entities.Request, uint64, error)
	FindRequest(ctx context.Context, id string) (*entities.Request, error)
	CreateRequest(ctx context.Context, req entities.Request) error
	// ReplaceRequest writes the whole record back; the merge itself is the
	// request service's business.
	ReplaceRequest(ctx context.Context, req entities.Request) error
	DeleteRequest(ctx context.Context, id string) error
	CountActiveByTeam(ctx context.Context, teamID string) (uint64, error)
}

// AtomicRequestCreatorInterface is implemented by stores that can persist a
// request and bump the referenced equipment counter in one transaction. The
// request service prefers it when available and falls back to the dual write.
type AtomicRequestCreatorInterface interface {
	CreateRequestWithCounter(ctx context.Context, req entities.Request) error
}

type requestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &requestRepository{storage: storage}
}

func scanRequest(row pgx.Row) (*entities.Request, error) {
	var r entities.Request
	err := row.Scan(
		&r.ID, &r.Subject, &r.Status, &r.EquipmentID, &r.TeamID, &r.Type,
		&r.Priority, &r.ScheduledDate, &r.AssignedTo, &r.Description,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (f RequestFilter) conditions() []sq.Sqlizer {
	var preds []sq.Sqlizer
	if f.Status != "" {
		preds = append(preds, sq.Eq{"status": f.Status})
	}
	if f.EquipmentID != "" {
		preds = append(preds, sq.Eq{"equipment_id": f.EquipmentID})
	}
	if f.TeamID != "" {
		preds = append(preds, sq.Eq{"team_id": f.TeamID})
	}
	return preds
}

func (r *requestRepository) GetRequests(ctx context.Context, filter RequestFilter, limit, offset uint64) ([]entities.Request, uint64, error) {
	countB := sq.Select("COUNT(*)").From(requestTable).PlaceholderFormat(sq.Dollar)
	listB := sq.Select(requestFields).From(requestTable).
		OrderBy("created_at").
		Limit(limit).Offset(offset).
		PlaceholderFormat(sq.Dollar)

	for _, pred := range filter.conditions() {
		countB = countB.Where(pred)
		listB = listB.Where(pred)
	}

	countQuery, countArgs, err := countB.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Request{}, 0, nil
	}

	query, args, err := listB.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entities.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *req)
	}
	return list, total, rows.Err()
}

func (r *requestRepository) FindRequest(ctx context.Context, id string) (*entities.Request, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", requestFields, requestTable)
	return scanRequest(r.storage.QueryRow(ctx, query, id))
}

func (r *requestRepository) CreateRequest(ctx context.Context, req entities.Request) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, requestTable, requestFields)

	_, err := r.storage.Exec(ctx, query,
		req.ID, req.Subject, req.Status, req.EquipmentID, req.TeamID, req.Type,
		req.Priority, req.ScheduledDate, req.AssignedTo, req.Description,
		req.CreatedAt, req.UpdatedAt,
	)
	return err
}

// CreateRequestWithCounter persists the request and increments the equipment
// counter atomically. Either both rows change or neither does.
func (r *requestRepository) CreateRequestWithCounter(ctx context.Context, req entities.Request) error {
	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, requestTable, requestFields)
	counterQuery := fmt.Sprintf("UPDATE %s SET maintenance_count = maintenance_count + 1 WHERE id = $1", equipmentTable)

	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertQuery,
			req.ID, req.Subject, req.Status, req.EquipmentID, req.TeamID, req.Type,
			req.Priority, req.ScheduledDate, req.AssignedTo, req.Description,
			req.CreatedAt, req.UpdatedAt,
		); err != nil {
			return err
		}
		result, err := tx.Exec(ctx, counterQuery, req.EquipmentID)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrEquipmentReference
		}
		return nil
	})
}

func (r *requestRepository) ReplaceRequest(ctx context.Context, req entities.Request) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET subject = $1, status = $2, equipment_id = $3, team_id = $4, type = $5,
			priority = $6, scheduled_date = $7, assigned_to = $8, description = $9,
			updated_at = $10
		WHERE id = $11
	`, requestTable)

	result, err := r.storage.Exec(ctx, query,
		req.Subject, req.Status, req.EquipmentID, req.TeamID, req.Type,
		req.Priority, req.ScheduledDate, req.AssignedTo, req.Description,
		req.UpdatedAt, req.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepository) DeleteRequest(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", requestTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

// CountActiveByTeam counts the team's requests whose status is not terminal.
func (r *requestRepository) CountActiveByTeam(ctx context.Context, teamID string) (uint64, error) {
	query, args, err := sq.Select("COUNT(*)").From(requestTable).
		Where(sq.Eq{"team_id": teamID}).
		Where(sq.NotEq{"status": constants.TerminalStatuses}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total uint64
	err = r.storage.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}
