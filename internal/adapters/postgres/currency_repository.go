package postgres

import (
	"context"
	"fmt"

	"ratebank/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CurrencyRepository reads extra currencies that extend the built-in ISO table.
type CurrencyRepository struct {
	pool *pgxpool.Pool
}

func (r *CurrencyRepository) GetAll(ctx context.Context) ([]domain.Currency, error) {
	const q = `select code, subunit_to_unit from currencies order by code;`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies := make([]domain.Currency, 0, 32)
	for rows.Next() {
		var c domain.Currency
		if err = rows.Scan(&c.Code, &c.SubunitToUnit); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currencies: %w", err)
	}
	return currencies, nil
}

func NewCurrencyRepository(pool *pgxpool.Pool) *CurrencyRepository {
	return &CurrencyRepository{pool: pool}
}
