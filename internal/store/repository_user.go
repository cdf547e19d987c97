package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/models"
)

type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// scanUser reads a full user row in userColumns order.
func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.AvatarURL,
		&u.CoverImageURL,
		&u.RefreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID, user.Username, user.Email, user.FullName,
		user.PasswordHash, user.AvatarURL, user.CoverImageURL)

	// create user in db
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return created, nil
}

func (r *userRepository) FindUserByUsernameOrEmail(ctx context.Context, username string, email string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findUserByUsernameOrEmail, username, email)

	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.FindUserByUsernameOrEmail").Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		r.logger.Err(err).Str("func", "*userRepository.FindUserByUsernameOrEmail").Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return found, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		r.logger.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return found, nil
}

func (r *userRepository) SetRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	return r.execExpectingUser(ctx, "*userRepository.SetRefreshToken", setRefreshToken, userID, refreshToken)
}

func (r *userRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return r.execExpectingUser(ctx, "*userRepository.ClearRefreshToken", clearRefreshToken, userID)
}

func (r *userRepository) RotateRefreshToken(ctx context.Context, userID string, presented string, next string) error {
	result, err := r.db.ExecContext(ctx, rotateRefreshToken, userID, presented, next)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.RotateRefreshToken").Msg("error: update failed")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	// zero rows means the stored token diverged from the presented one:
	// someone else rotated it first, or it was revoked.
	if affected == 0 {
		return ErrRefreshTokenMismatch
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	return r.execExpectingUser(ctx, "*userRepository.UpdatePassword", updatePassword, userID, passwordHash)
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	query, args, err := buildUpdateProfileQuery(userID, update)
	if err != nil {
		if errors.Is(err, ErrNoFieldsToUpdate) {
			return models.User{}, err
		}
		r.logger.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: building update query")
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: update failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		r.logger.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return updated, nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID string, avatarURL string) (models.User, error) {
	return r.updateImageColumn(ctx, "*userRepository.UpdateAvatar", updateAvatar, userID, avatarURL)
}

func (r *userRepository) UpdateCoverImage(ctx context.Context, userID string, coverImageURL string) (models.User, error) {
	return r.updateImageColumn(ctx, "*userRepository.UpdateCoverImage", updateCoverImage, userID, coverImageURL)
}

// execExpectingUser runs a DML statement whose WHERE clause targets exactly
// one user and converts an empty match into ErrNoUserWasFound.
func (r *userRepository) execExpectingUser(ctx context.Context, funcName string, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", funcName).Msg("error: update failed")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) updateImageColumn(ctx context.Context, funcName string, query string, userID string, url string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, query, userID, url)
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", funcName).Msg("error: update failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		r.logger.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return updated, nil
}
