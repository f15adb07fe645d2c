package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
)

func (r *repository) GetUser(ctx context.Context, username string) (model.User, error) {
	query, args, err := qb.Select("id", "username", "password_hash", "is_superuser").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err = r.db.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsSuperuser); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}

	query, args, err = qb.Select("codename").
		From(userPermissionsTableName).
		Where(sq.Eq{"user_id": u.ID}).
		OrderBy("codename").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	u.Permissions, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return model.User{}, errors.Wrap(err, "collect permissions")
	}
	return u, nil
}

// CreateUser stores the user and its capabilities atomically.
func (r *repository) CreateUser(ctx context.Context, user model.User) (int, error) {
	var id int
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query, args, err := qb.Insert(usersTableName).
			Columns("username", "password_hash", "is_superuser").
			Values(user.Username, user.PasswordHash, user.IsSuperuser).
			Suffix("returning id").
			ToSql()
		if err != nil {
			return err
		}
		if err = tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return writeErr(err, errs.ErrInvalidReference)
		}
		if len(user.Permissions) == 0 {
			return nil
		}
		ins := qb.Insert(userPermissionsTableName).Columns("user_id", "codename")
		for _, perm := range user.Permissions {
			ins = ins.Values(id, perm)
		}
		query, args, err = ins.Suffix("on conflict do nothing").ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, query, args...)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
