package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"bank-dashboard/internal/entities"
)

type BranchLocationRepositoryInterface interface {
	GetBranchLocations(ctx context.Context) ([]entities.BranchLocation, error)
}

type BranchLocationRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewBranchLocationRepository(storage *pgxpool.Pool, logger *zap.Logger) BranchLocationRepositoryInterface {
	return &BranchLocationRepository{storage: storage, logger: logger}
}

// GetBranchLocations возвращает адреса, привязанные к существующим отделениям.
func (r *BranchLocationRepository) GetBranchLocations(ctx context.Context) ([]entities.BranchLocation, error) {
	query, args, err := sq.Select(
		`ba."BranchID"`, `b."Name"`,
		`ba."Street"`, `ba."City"`, `ba."State"`, `ba."ZipCode"`, `ba."Country"`,
	).
		From(`"branchaddress" ba`).
		Join(`"branch" b ON ba."BranchID" = b."BranchID"`).
		OrderBy(`ba."BranchID"`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]entities.BranchLocation, 0)
	for rows.Next() {
		var l entities.BranchLocation
		if err := rows.Scan(&l.BranchID, &l.BranchName, &l.Street, &l.City, &l.State, &l.ZipCode, &l.Country); err != nil {
			return nil, fmt.Errorf("ошибка сканирования branchaddress: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
