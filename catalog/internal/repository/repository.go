package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	GetBook(ctx context.Context, id int) (model.BookDetail, error)
	CreateBook(ctx context.Context, form model.BookForm) (int, error)
	UpdateBook(ctx context.Context, id int, form model.BookForm) error
	DeleteBook(ctx context.Context, id int) error

	ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error)
	GetAuthor(ctx context.Context, id int) (model.AuthorDetail, error)
	CreateAuthor(ctx context.Context, form model.AuthorForm) (int, error)
	UpdateAuthor(ctx context.Context, id int, form model.AuthorForm) error
	DeleteAuthor(ctx context.Context, id int) error

	ListLoans(ctx context.Context, borrowerID *int, page, size int) (model.ListBookInstances, error)
	GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	RenewBookInstance(ctx context.Context, id uuid.UUID, dueBack model.Date) error

	CountBooks(ctx context.Context) (int, error)
	CountAuthors(ctx context.Context) (int, error)
	CountBookInstances(ctx context.Context, status model.Status) (int, error)
	CountGenresByName(ctx context.Context, name string) (int, error)
	CountBooksByTitle(ctx context.Context, substr string) (int, error)

	GetUser(ctx context.Context, username string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (int, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	languageTableName        = `language`
	genreTableName           = `genre`
	authorTableName          = `author`
	bookTableName            = `book`
	bookGenreTableName       = `book_genre`
	bookInstanceTableName    = `book_instance`
	usersTableName           = `users`
	userPermissionsTableName = `user_permissions`
	sessionsTableName        = `sessions`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func paginate(q sq.SelectBuilder, page, size int) sq.SelectBuilder {
	if page > 0 && size > 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	return q
}

func (r *repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err = r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		r.log.Error("count", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, err
	}
	return n, nil
}

// writeErr maps constraint violations of a write; onForeignKey tells whether the
// failing side is a dangling reference (insert/update) or a dependent row (delete).
func writeErr(err error, onForeignKey error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
		return errors.Wrap(onForeignKey, pgErr.ConstraintName)
	case pgerrcode.UniqueViolation:
		return errors.Wrap(errs.ErrConflict, pgErr.ConstraintName)
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
