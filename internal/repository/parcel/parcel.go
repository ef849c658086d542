package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = "id, tracking_number, customer_id, route_id, status, weight_kg, description, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)
	query := `INSERT INTO parcels (tracking_number, customer_id, route_id, status, weight_kg, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.TrackingNumber,
		parcelModifyModel.CustomerID,
		parcelModifyModel.RouteID,
		parcelModifyModel.Status,
		parcelModifyModel.WeightKg,
		parcelModifyModel.Description,
	).Scan(
		&parcelModel.ID,
		&parcelModel.TrackingNumber,
		&parcelModel.CustomerID,
		&parcelModel.RouteID,
		&parcelModel.Status,
		&parcelModel.WeightKg,
		&parcelModel.Description,
		&parcelModel.CreatedAt,
	)
	if err != nil {
		// Unique tracking_number backstops the pre-insert collision check.
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrTrackingExhausted
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	var parcelModel ParcelDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&parcelModel.ID,
			&parcelModel.TrackingNumber,
			&parcelModel.CustomerID,
			&parcelModel.RouteID,
			&parcelModel.Status,
			&parcelModel.WeightKg,
			&parcelModel.Description,
			&parcelModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	if parcelModifyModel.CustomerID != nil {
		builder = builder.Set("customer_id", parcelModifyModel.CustomerID)
	}
	if parcelModifyModel.RouteID != nil {
		builder = builder.Set("route_id", parcelModifyModel.RouteID)
	}
	if parcelModifyModel.WeightKg != nil {
		builder = builder.Set("weight_kg", parcelModifyModel.WeightKg)
	}
	if parcelModifyModel.Description != nil {
		builder = builder.Set("description", parcelModifyModel.Description)
	}

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	var parcelModel ParcelDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&parcelModel.ID,
			&parcelModel.TrackingNumber,
			&parcelModel.CustomerID,
			&parcelModel.RouteID,
			&parcelModel.Status,
			&parcelModel.WeightKg,
			&parcelModel.Description,
			&parcelModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.ParcelStatusType) (*entities.Parcel, error) {
	query := `UPDATE parcels SET status = $2 WHERE id = $1
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).
		Scan(
			&parcelModel.ID,
			&parcelModel.TrackingNumber,
			&parcelModel.CustomerID,
			&parcelModel.RouteID,
			&parcelModel.Status,
			&parcelModel.WeightKg,
			&parcelModel.Description,
			&parcelModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository update status error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM parcels WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return parcel.ErrParcelNotFound
	}
	return nil
}

func (r *Repository) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM parcels WHERE tracking_number = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, trackingNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected parcel repository tracking check error: %w", err)
	}
	return exists, nil
}

func (r *Repository) Search(ctx context.Context, filter parcel.Filter, page entities.PageRequest) ([]entities.Parcel, int64, error) {
	where := filterConditions(filter)

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("parcels").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository search error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository search error: %w", err)
	}

	query, args, err := qb.
		Select(parcelColumns).
		From("parcels").
		Where(where).
		OrderBy("id").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository search error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository search error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, page.Size)
	for rows.Next() {
		var parcelModel ParcelDB
		err := rows.Scan(
			&parcelModel.ID,
			&parcelModel.TrackingNumber,
			&parcelModel.CustomerID,
			&parcelModel.RouteID,
			&parcelModel.Status,
			&parcelModel.WeightKg,
			&parcelModel.Description,
			&parcelModel.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected parcel repository search error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository search error: %w", err)
	}

	return ToDomainList(parcelModels), total, nil
}

func filterConditions(filter parcel.Filter) sq.And {
	conditions := sq.And{}
	if filter.Status != nil {
		conditions = append(conditions, sq.Eq{"status": filter.Status.String()})
	}
	if filter.RouteID != nil {
		conditions = append(conditions, sq.Eq{"route_id": *filter.RouteID})
	}
	if filter.CustomerID != nil {
		conditions = append(conditions, sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Tracking != nil {
		conditions = append(conditions, sq.Eq{"tracking_number": *filter.Tracking})
	}
	return conditions
}
