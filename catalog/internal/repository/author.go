package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
)

func authorSelect() sq.SelectBuilder {
	return qb.Select("id", "first_name", "last_name", "date_of_birth", "date_of_death").
		From(authorTableName)
}

func scanAuthor(row pgx.CollectableRow) (model.Author, error) {
	var (
		a          model.Author
		born, died *time.Time
	)
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &born, &died); err != nil {
		return model.Author{}, err
	}
	a.DateOfBirth = model.DateFrom(born)
	a.DateOfDeath = model.DateFrom(died)
	return a, nil
}

func (r *repository) queryAuthors(ctx context.Context, q sq.SelectBuilder) ([]model.Author, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors, err := pgx.CollectRows(rows, scanAuthor)
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return authors, nil
}

func (r *repository) ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error) {
	total, err := r.CountAuthors(ctx)
	if err != nil {
		return model.ListAuthors{}, err
	}
	authors, err := r.queryAuthors(ctx, paginate(authorSelect().OrderBy("id"), page, size))
	if err != nil {
		return model.ListAuthors{}, err
	}
	return model.ListAuthors{
		Paging: model.NewPaging(page, size, total),
		Items:  authors,
	}, nil
}

func (r *repository) GetAuthor(ctx context.Context, id int) (model.AuthorDetail, error) {
	authors, err := r.queryAuthors(ctx, authorSelect().Where(sq.Eq{"id": id}).Limit(1))
	if err != nil {
		return model.AuthorDetail{}, err
	}
	if len(authors) == 0 {
		return model.AuthorDetail{}, errs.ErrNotFound
	}
	books, err := r.queryBooks(ctx, bookSelect().Where(sq.Eq{"b.author_id": id}).OrderBy("b.title"))
	if err != nil {
		return model.AuthorDetail{}, err
	}
	return model.AuthorDetail{
		Author: authors[0],
		Books:  books,
	}, nil
}

func authorValues(form model.AuthorForm) map[string]any {
	return map[string]any{
		"first_name":    form.FirstName,
		"last_name":     form.LastName,
		"date_of_birth": model.DateArg(form.DateOfBirth),
		"date_of_death": model.DateArg(form.DateOfDeath),
	}
}

func (r *repository) CreateAuthor(ctx context.Context, form model.AuthorForm) (int, error) {
	query, args, err := qb.Insert(authorTableName).
		SetMap(authorValues(form)).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int
	if err = r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, writeErr(err, errs.ErrInvalidReference)
	}
	return id, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, id int, form model.AuthorForm) error {
	query, args, err := qb.Update(authorTableName).
		SetMap(authorValues(form)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return writeErr(err, errs.ErrInvalidReference)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteAuthor(ctx context.Context, id int) error {
	query, args, err := qb.Delete(authorTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return writeErr(err, errs.ErrConflict)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CountAuthors(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(authorTableName))
}
