package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/catalog-service/pkg/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SessionStore keeps browser sessions in the sessions table.
type SessionStore struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

var _ session.Store = (*SessionStore)(nil)

func NewSessionStore(db *pgxpool.Pool, log *zap.Logger) *SessionStore {
	return &SessionStore{
		db:  db,
		log: log.Named("session-store"),
	}
}

func (s *SessionStore) Load(ctx context.Context, key string) (session.Values, error) {
	query, args, err := qb.Select("data").
		From(sessionsTableName).
		Where(sq.Eq{"session_key": key}).
		Where("expire_date > now()").
		ToSql()
	if err != nil {
		return nil, err
	}
	var data []byte
	if err = s.db.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	values := session.Values{}
	if err = json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	return values, nil
}

func (s *SessionStore) Save(ctx context.Context, key string, values session.Values, expireAt time.Time) error {
	data, err := json.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	query, args, err := qb.Insert(sessionsTableName).
		Columns("session_key", "data", "expire_date").
		Values(key, string(data), expireAt).
		Suffix("on conflict (session_key) do update set data = excluded.data, expire_date = excluded.expire_date").
		ToSql()
	if err != nil {
		return err
	}
	if _, err = s.db.Exec(ctx, query, args...); err != nil {
		s.log.Error("Save", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
