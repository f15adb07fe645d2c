package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
)

func bookInstanceSelect() sq.SelectBuilder {
	return qb.Select("bi.id", "bi.book_id", "b.title", "bi.imprint", "bi.due_back", "bi.status",
		"bi.borrower_id", "coalesce(u.username, '')").
		From(bookInstanceTableName + " bi").
		Join(fmt.Sprintf("%s b on b.id = bi.book_id", bookTableName)).
		LeftJoin(fmt.Sprintf("%s u on u.id = bi.borrower_id", usersTableName))
}

func scanBookInstance(row pgx.CollectableRow) (model.BookInstance, error) {
	var (
		bi      model.BookInstance
		dueBack *time.Time
		status  string
	)
	if err := row.Scan(&bi.ID, &bi.BookID, &bi.BookTitle, &bi.Imprint, &dueBack, &status, &bi.BorrowerID, &bi.Borrower); err != nil {
		return model.BookInstance{}, err
	}
	bi.DueBack = model.DateFrom(dueBack)
	bi.Status = model.Status(status)
	return bi, nil
}

func (r *repository) queryBookInstances(ctx context.Context, q sq.SelectBuilder) ([]model.BookInstance, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("queryBookInstances", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, scanBookInstance)
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return items, nil
}

// loansFilter selects on-loan copies, of one borrower when borrowerID is set,
// otherwise of anyone.
func loansFilter(borrowerID *int) sq.And {
	filter := sq.And{sq.Eq{"bi.status": string(model.StatusOnLoan)}}
	if borrowerID != nil {
		return append(filter, sq.Eq{"bi.borrower_id": *borrowerID})
	}
	return append(filter, sq.NotEq{"bi.borrower_id": nil})
}

func loansQuery(borrowerID *int, page, size int) sq.SelectBuilder {
	return paginate(bookInstanceSelect().
		Where(loansFilter(borrowerID)).
		OrderBy("bi.due_back", "bi.id"), page, size)
}

func loansCountQuery(borrowerID *int) sq.SelectBuilder {
	return qb.Select("count(*)").
		From(bookInstanceTableName + " bi").
		Where(loansFilter(borrowerID))
}

func (r *repository) ListLoans(ctx context.Context, borrowerID *int, page, size int) (model.ListBookInstances, error) {
	total, err := r.count(ctx, loansCountQuery(borrowerID))
	if err != nil {
		return model.ListBookInstances{}, err
	}
	items, err := r.queryBookInstances(ctx, loansQuery(borrowerID, page, size))
	if err != nil {
		return model.ListBookInstances{}, err
	}
	return model.ListBookInstances{
		Paging: model.NewPaging(page, size, total),
		Items:  items,
	}, nil
}

func (r *repository) GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	items, err := r.queryBookInstances(ctx, bookInstanceSelect().Where(sq.Eq{"bi.id": id}).Limit(1))
	if err != nil {
		return model.BookInstance{}, err
	}
	if len(items) == 0 {
		return model.BookInstance{}, errs.ErrNotFound
	}
	return items[0], nil
}

// RenewBookInstance only moves due_back; status and borrower stay untouched.
func (r *repository) RenewBookInstance(ctx context.Context, id uuid.UUID, dueBack model.Date) error {
	query, args, err := qb.Update(bookInstanceTableName).
		Set("due_back", dueBack.Time()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("RenewBookInstance", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func bookInstancesCountQuery(status model.Status) sq.SelectBuilder {
	q := qb.Select("count(*)").From(bookInstanceTableName)
	if status != "" {
		q = q.Where(sq.Eq{"status": string(status)})
	}
	return q
}

// CountBookInstances counts copies with the status, or all copies for an empty status.
func (r *repository) CountBookInstances(ctx context.Context, status model.Status) (int, error) {
	return r.count(ctx, bookInstancesCountQuery(status))
}

func genresByNameQuery(name string) sq.SelectBuilder {
	return qb.Select("count(*)").From(genreTableName).Where(sq.Expr("upper(name) = upper(?)", name))
}

func (r *repository) CountGenresByName(ctx context.Context, name string) (int, error) {
	return r.count(ctx, genresByNameQuery(name))
}
