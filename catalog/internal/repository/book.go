package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
)

func bookSelect() sq.SelectBuilder {
	return qb.Select("b.id", "b.title", "b.summary", "b.isbn", "b.author_id",
		"coalesce(a.last_name || ', ' || a.first_name, '')", "b.language_id", "coalesce(l.name, '')").
		From(bookTableName + " b").
		LeftJoin(fmt.Sprintf("%s a on a.id = b.author_id", authorTableName)).
		LeftJoin(fmt.Sprintf("%s l on l.id = b.language_id", languageTableName))
}

func scanBook(row pgx.CollectableRow) (model.Book, error) {
	var b model.Book
	err := row.Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &b.AuthorName, &b.LanguageID, &b.Language)
	return b, err
}

func (r *repository) queryBooks(ctx context.Context, q sq.SelectBuilder) ([]model.Book, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("queryBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, scanBook)
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return books, nil
}

func (r *repository) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	total, err := r.CountBooks(ctx)
	if err != nil {
		return model.ListBooks{}, err
	}
	books, err := r.queryBooks(ctx, paginate(bookSelect().OrderBy("b.id"), page, size))
	if err != nil {
		return model.ListBooks{}, err
	}
	return model.ListBooks{
		Paging: model.NewPaging(page, size, total),
		Items:  books,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.BookDetail, error) {
	books, err := r.queryBooks(ctx, bookSelect().Where(sq.Eq{"b.id": id}).Limit(1))
	if err != nil {
		return model.BookDetail{}, err
	}
	if len(books) == 0 {
		return model.BookDetail{}, errs.ErrNotFound
	}

	genres, err := r.bookGenres(ctx, id)
	if err != nil {
		return model.BookDetail{}, err
	}
	instances, err := r.queryBookInstances(ctx,
		bookInstanceSelect().Where(sq.Eq{"bi.book_id": id}).OrderBy("bi.due_back", "bi.id"))
	if err != nil {
		return model.BookDetail{}, err
	}

	return model.BookDetail{
		Book:      books[0],
		Genres:    genres,
		Instances: instances,
	}, nil
}

func (r *repository) bookGenres(ctx context.Context, bookID int) ([]model.Genre, error) {
	query, args, err := qb.Select("g.id", "g.name").
		From(genreTableName + " g").
		Join(fmt.Sprintf("%s bg on bg.genre_id = g.id", bookGenreTableName)).
		Where(sq.Eq{"bg.book_id": bookID}).
		OrderBy("g.name").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Genre])
}

func bookValues(form model.BookForm) map[string]any {
	return map[string]any{
		"title":       form.Title,
		"author_id":   form.AuthorID,
		"summary":     form.Summary,
		"isbn":        form.ISBN,
		"language_id": form.LanguageID,
	}
}

func (r *repository) CreateBook(ctx context.Context, form model.BookForm) (int, error) {
	query, args, err := qb.Insert(bookTableName).
		SetMap(bookValues(form)).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return err
		}
		return setBookGenres(ctx, tx, id, form.GenreIDs)
	})
	if err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, writeErr(err, errs.ErrInvalidReference)
	}
	return id, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int, form model.BookForm) error {
	query, args, err := qb.Update(bookTableName).
		SetMap(bookValues(form)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		if _, err = tx.Exec(ctx, fmt.Sprintf("delete from %s where book_id = $1", bookGenreTableName), id); err != nil {
			return err
		}
		return setBookGenres(ctx, tx, id, form.GenreIDs)
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return err
		}
		return writeErr(err, errs.ErrInvalidReference)
	}
	return nil
}

func setBookGenres(ctx context.Context, tx pgx.Tx, bookID int, genreIDs []int) error {
	if len(genreIDs) == 0 {
		return nil
	}
	ins := qb.Insert(bookGenreTableName).Columns("book_id", "genre_id")
	for _, g := range genreIDs {
		ins = ins.Values(bookID, g)
	}
	query, args, err := ins.Suffix("on conflict do nothing").ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, query, args...)
	return err
}

func (r *repository) DeleteBook(ctx context.Context, id int) error {
	query, args, err := qb.Delete(bookTableName).Where(sq.Eq{"id": id}).ToSql()
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

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(bookTableName))
}

func booksByTitleQuery(substr string) sq.SelectBuilder {
	return qb.Select("count(*)").From(bookTableName).Where(sq.ILike{"title": containsPattern(substr)})
}

func (r *repository) CountBooksByTitle(ctx context.Context, substr string) (int, error) {
	return r.count(ctx, booksByTitleQuery(substr))
}
