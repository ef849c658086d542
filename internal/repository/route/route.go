package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/route"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const routeColumns = "id, driver_id, vehicle_id, start_location, end_location, distance_km, scheduled_date, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, routeModifyEntity entities.RouteModify) (*entities.Route, error) {
	routeModifyModel := FromDomainModify(&routeModifyEntity)
	query := `INSERT INTO routes (driver_id, vehicle_id, start_location, end_location, distance_km, scheduled_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + routeColumns

	var routeModel RouteDB
	err := r.querier.QueryRow(
		ctx,
		query,
		routeModifyModel.DriverID,
		routeModifyModel.VehicleID,
		routeModifyModel.StartLocation,
		routeModifyModel.EndLocation,
		routeModifyModel.DistanceKm,
		routeModifyModel.ScheduledDate,
	).Scan(
		&routeModel.ID,
		&routeModel.DriverID,
		&routeModel.VehicleID,
		&routeModel.StartLocation,
		&routeModel.EndLocation,
		&routeModel.DistanceKm,
		&routeModel.ScheduledDate,
		&routeModel.CreatedAt,
	)
	if err != nil {
		// The (driver_id, scheduled_date) unique index backstops the
		// application-level overlap check against concurrent creates.
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, route.ErrDriverOverlap
		}
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Route, error) {
	query := `SELECT ` + routeColumns + `
		FROM routes
		WHERE id = $1`

	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&routeModel.ID,
			&routeModel.DriverID,
			&routeModel.VehicleID,
			&routeModel.StartLocation,
			&routeModel.EndLocation,
			&routeModel.DistanceKm,
			&routeModel.ScheduledDate,
			&routeModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

func (r *Repository) Update(ctx context.Context, routeModifyEntity entities.RouteModify) (*entities.Route, error) {
	routeModifyModel := FromDomainModify(&routeModifyEntity)

	builder := qb.
		Update("routes")

	if routeModifyModel.DriverID != nil {
		builder = builder.Set("driver_id", routeModifyModel.DriverID)
	}
	if routeModifyModel.VehicleID != nil {
		builder = builder.Set("vehicle_id", routeModifyModel.VehicleID)
	}
	if routeModifyModel.StartLocation != nil {
		builder = builder.Set("start_location", routeModifyModel.StartLocation)
	}
	if routeModifyModel.EndLocation != nil {
		builder = builder.Set("end_location", routeModifyModel.EndLocation)
	}
	if routeModifyModel.DistanceKm != nil {
		builder = builder.Set("distance_km", routeModifyModel.DistanceKm)
	}
	if routeModifyModel.ScheduledDate != nil {
		builder = builder.Set("scheduled_date", routeModifyModel.ScheduledDate)
	}

	builder = builder.
		Where(sq.Eq{"id": routeModifyModel.ID}).
		Suffix("RETURNING " + routeColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository update error: %w", err)
	}

	var routeModel RouteDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&routeModel.ID,
			&routeModel.DriverID,
			&routeModel.VehicleID,
			&routeModel.StartLocation,
			&routeModel.EndLocation,
			&routeModel.DistanceKm,
			&routeModel.ScheduledDate,
			&routeModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, route.ErrDriverOverlap
		}
		return nil, fmt.Errorf("unexpected route repository update error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM routes WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected route repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return route.ErrRouteNotFound
	}
	return nil
}

// ExistsForDriverOnDate matches on the UTC calendar date, ignoring time of
// day. excludeRouteID of zero matches everything.
func (r *Repository) ExistsForDriverOnDate(ctx context.Context, driverID int64, date time.Time, excludeRouteID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM routes
		WHERE driver_id = $1
		  AND scheduled_date::date = ($2 AT TIME ZONE 'UTC')::date
		  AND ($3 = 0 OR id != $3)
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, driverID, date.UTC(), excludeRouteID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected route repository overlap check error: %w", err)
	}
	return exists, nil
}

func (r *Repository) List(ctx context.Context, filter route.Filter, page entities.PageRequest) ([]entities.Route, int64, error) {
	where := filterConditions(filter)

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("routes").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected route repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected route repository list error: %w", err)
	}

	query, args, err := qb.
		Select(routeColumns).
		From("routes").
		Where(where).
		OrderBy("scheduled_date", "id").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected route repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected route repository list error: %w", err)
	}
	defer rows.Close()

	routeModels := make([]RouteDB, 0, page.Size)
	for rows.Next() {
		var routeModel RouteDB
		err := rows.Scan(
			&routeModel.ID,
			&routeModel.DriverID,
			&routeModel.VehicleID,
			&routeModel.StartLocation,
			&routeModel.EndLocation,
			&routeModel.DistanceKm,
			&routeModel.ScheduledDate,
			&routeModel.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected route repository list error: %w", err)
		}
		routeModels = append(routeModels, routeModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected route repository list error: %w", err)
	}

	return ToDomainList(routeModels), total, nil
}

func filterConditions(filter route.Filter) sq.And {
	conditions := sq.And{}
	if filter.DriverID != nil {
		conditions = append(conditions, sq.Eq{"driver_id": *filter.DriverID})
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, sq.GtOrEq{"scheduled_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conditions = append(conditions, sq.LtOrEq{"scheduled_date": *filter.DateTo})
	}
	return conditions
}
