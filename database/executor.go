package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// All executes the query and returns all matching records with automatic retry
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	var data []T

	ctx, cancel := q.applyTimeout(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		data = nil // Reset on retry
		return q.buildSelect(&data).Scan(ctx)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// First executes the query and returns the first matching record with
// automatic retry. No match returns (nil, nil).
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	start := time.Now()
	var data T

	ctx, cancel := q.applyTimeout(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		return q.buildSelect(&data).Limit(1).Scan(ctx)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// Count executes the query and returns the count of matching records with automatic retry
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	var count int

	ctx, cancel := q.applyTimeout(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		var model T
		var err error
		count, err = q.buildSelect(&model).Count(ctx)
		return err
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w (took %v)", err, time.Since(start))
	}

	return count, nil
}

// Exists checks if any records match the query
func (q *QueryBuilder[T]) Exists(ctx context.Context) (bool, error) {
	count, err := q.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert inserts a new record and returns it. No retry: inside a transaction
// a failed statement aborts the transaction, so the caller decides whether to
// start over.
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	start := time.Now()

	ctx, cancel := q.applyTimeout(ctx)
	defer cancel()

	query := q.idb.NewInsert().Model(data)
	if q.tableName != "" {
		query = query.ModelTableExpr("?", bun.Ident(q.tableName))
	}

	if _, err := query.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Update updates the columns in data for records matching the query and
// returns the number of affected rows.
func (q *QueryBuilder[T]) Update(ctx context.Context, data map[string]any) (int, error) {
	start := time.Now()
	var rowsAffected int64

	ctx, cancel := q.applyTimeout(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		var model T
		query := q.idb.NewUpdate().Model(&model)
		if q.tableName != "" {
			query = query.ModelTableExpr("?", bun.Ident(q.tableName))
		}
		query = applyWheresToUpdate(query, q.wheres)

		for key, value := range data {
			query = query.Set("? = ?", bun.Ident(key), value)
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

// UpdateModel persists the given struct for records matching the query.
func (q *QueryBuilder[T]) UpdateModel(ctx context.Context, data *T) (int, error) {
	start := time.Now()
	var rowsAffected int64

	ctx, cancel := q.applyTimeout(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		query := q.idb.NewUpdate().Model(data)
		if q.tableName != "" {
			query = query.ModelTableExpr("?", bun.Ident(q.tableName))
		}
		query = applyWheresToUpdate(query, q.wheres)

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

// Delete deletes records matching the query with automatic retry
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int, error) {
	start := time.Now()
	var rowsAffected int64

	ctx, cancel := q.applyTimeout(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		var model T
		query := q.idb.NewDelete().Model(&model)
		if q.tableName != "" {
			query = query.ModelTableExpr("?", bun.Ident(q.tableName))
		}
		query = applyWheresToDelete(query, q.wheres)

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute delete query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	query := q.idb.NewSelect().Model(model)

	if q.tableName != "" {
		query = query.ModelTableExpr("?", bun.Ident(q.tableName))
	}

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}

	for _, where := range q.wheres {
		cond, args, bare := whereSQL(where)
		if bare {
			query = query.Where(cond)
		} else {
			query = query.Where(cond, args...)
		}
	}

	for _, order := range q.orders {
		query = query.Order(order.Column + " " + order.Direction)
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

// whereSQL renders a single clause. bare is true when the condition carries
// no bind arguments (IS NULL / IS NOT NULL).
func whereSQL(where *WhereClause) (cond string, args []any, bare bool) {
	if where.IsRaw {
		return where.RawSQL, where.RawArgs, false
	}
	switch where.Operator {
	case "IS NULL", "IS NOT NULL":
		return fmt.Sprintf("%s %s", where.Column, where.Operator), nil, true
	case "IN":
		return fmt.Sprintf("%s IN (?)", where.Column), []any{bun.In(where.Value)}, false
	default:
		return fmt.Sprintf("%s %s ?", where.Column, where.Operator), []any{where.Value}, false
	}
}

func applyWheresToUpdate(query *bun.UpdateQuery, wheres []*WhereClause) *bun.UpdateQuery {
	for _, where := range wheres {
		cond, args, bare := whereSQL(where)
		if bare {
			query = query.Where(cond)
		} else {
			query = query.Where(cond, args...)
		}
	}
	return query
}

func applyWheresToDelete(query *bun.DeleteQuery, wheres []*WhereClause) *bun.DeleteQuery {
	for _, where := range wheres {
		cond, args, bare := whereSQL(where)
		if bare {
			query = query.Where(cond)
		} else {
			query = query.Where(cond, args...)
		}
	}
	return query
}
