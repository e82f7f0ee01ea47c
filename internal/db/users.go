package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vidstream/backend/internal/model"
)

const userColumns = `id, user_name, email, full_name, password_hash, avatar, cover_image, refresh_token, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.UserName,
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.Avatar,
		&u.CoverImage,
		&u.RefreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *Postgres) CreateUser(ctx context.Context, userName, email, fullName, passwordHash, avatar, coverImage string) (*model.User, error) {
	query := `
		INSERT INTO users (id, user_name, email, full_name, password_hash, avatar, cover_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, uuid.NewString(), userName, email, fullName, passwordHash, avatar, coverImage))
}

func (db *Postgres) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, email))
}

func (db *Postgres) GetUserByUserName(ctx context.Context, userName string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_name = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, userName))
}

// UpdateRefreshToken stores the identity's single current refresh token.
// A nil token revokes all future rotation attempts.
func (db *Postgres) UpdateRefreshToken(ctx context.Context, id string, token *string) error {
	query := `UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE id = $1`
	_, err := db.Pool.Exec(ctx, query, id, token)
	return err
}

func (db *Postgres) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	_, err := db.Pool.Exec(ctx, query, id, passwordHash)
	return err
}

func (db *Postgres) UpdateAccountDetails(ctx context.Context, id, fullName, email string) (*model.User, error) {
	query := `
		UPDATE users SET full_name = $2, email = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, id, fullName, email))
}

func (db *Postgres) UpdateAvatar(ctx context.Context, id, avatar string) (*model.User, error) {
	query := `
		UPDATE users SET avatar = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, id, avatar))
}

func (db *Postgres) UpdateCoverImage(ctx context.Context, id, coverImage string) (*model.User, error) {
	query := `
		UPDATE users SET cover_image = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, id, coverImage))
}

// GetChannelProfile loads a channel page by user name: the public profile
// plus subscriber counts and whether viewerID subscribes to it.
func (db *Postgres) GetChannelProfile(ctx context.Context, userName, viewerID string) (*model.ChannelProfile, error) {
	query := `
		SELECT u.id, u.user_name, u.email, u.full_name, u.avatar, u.cover_image, u.created_at, u.updated_at,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id),
			(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id),
			EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id = $2)
		FROM users u
		WHERE u.user_name = $1
	`
	var p model.ChannelProfile
	err := db.Pool.QueryRow(ctx, query, userName, viewerID).Scan(
		&p.ID,
		&p.UserName,
		&p.Email,
		&p.FullName,
		&p.Avatar,
		&p.CoverImage,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.SubscribersCount,
		&p.ChannelsSubscribedToCount,
		&p.IsSubscribed,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
