package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	c "roomie/internal/core/domain/common"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/user"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, name, email, password_hash, role, profile_picture, about, age, college,
	is_active, created_at, password_changed_at, password_reset_token_hash, password_reset_expires_at`

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (name, email, password_hash, role, profile_picture, about, age, college, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+userColumns,
		input.Name,
		string(input.Email),
		string(input.PasswordHash),
		string(input.Role),
		encodeOptionalString(input.ProfilePicture),
		encodeOptionalString(input.About),
		encodeOptionalInt(input.Age),
		encodeOptionalString(input.College),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE id = $1 AND is_active`,
		int64(id),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1 AND is_active`,
		string(email),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByResetTokenHash(
	ctx context.Context,
	hash user.ResetTokenHash,
	now time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user"
		 WHERE password_reset_token_hash = $1 AND password_reset_expires_at > $2 AND is_active`,
		string(hash),
		now,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE is_active ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	assignments := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)
	args = append(args, int64(input.ID))

	addAssignment := func(column string, value interface{}) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if input.DoNameUpdate {
		addAssignment("name", input.Name)
	}
	if input.DoEmailUpdate {
		addAssignment("email", string(input.Email))
	}
	if input.DoProfilePictureUpdate {
		addAssignment("profile_picture", encodeOptionalString(input.ProfilePicture))
	}
	if input.DoAboutUpdate {
		addAssignment("about", encodeOptionalString(input.About))
	}
	if input.DoAgeUpdate {
		addAssignment("age", encodeOptionalInt(input.Age))
	}
	if input.DoCollegeUpdate {
		addAssignment("college", encodeOptionalString(input.College))
	}
	if len(assignments) == 0 {
		return r.GetByID(ctx, input.ID)
	}

	row := r.db.QueryRow(
		ctx,
		fmt.Sprintf(
			`UPDATE "user" SET %s WHERE id = $1 AND is_active RETURNING %s`,
			strings.Join(assignments, ", "),
			userColumns,
		),
		args...,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, input user.SetPasswordInput) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_hash = $2,
		     password_changed_at = $3,
		     password_reset_token_hash = NULL,
		     password_reset_expires_at = NULL
		 WHERE id = $1`,
		int64(input.UserID),
		string(input.PasswordHash),
		input.ChangedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) SetPasswordResetToken(
	ctx context.Context,
	input user.SetPasswordResetTokenInput,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_reset_token_hash = $2, password_reset_expires_at = $3
		 WHERE id = $1 AND is_active`,
		int64(input.UserID),
		string(input.TokenHash),
		input.ExpiresAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) ClearPasswordResetToken(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_reset_token_hash = NULL, password_reset_expires_at = NULL
		 WHERE id = $1`,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Deactivate(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET is_active = FALSE WHERE id = $1 AND is_active`,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func encodeOptionalString(v c.Optional[string]) sql.NullString {
	return sql.NullString{String: v.Value, Valid: v.IsPresent}
}

func encodeOptionalInt(v c.Optional[int]) sql.NullInt32 {
	return sql.NullInt32{Int32: int32(v.Value), Valid: v.IsPresent}
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id             int64
		email          string
		passwordHash   string
		role           string
		profilePicture sql.NullString
		about          sql.NullString
		age            sql.NullInt32
		college        sql.NullString
		changedAt      sql.NullTime
		resetTokenHash sql.NullString
		resetExpiresAt sql.NullTime
	)
	err = row.Scan(
		&id,
		&u.Name,
		&email,
		&passwordHash,
		&role,
		&profilePicture,
		&about,
		&age,
		&college,
		&u.IsActive,
		&u.CreatedAt,
		&changedAt,
		&resetTokenHash,
		&resetExpiresAt,
	)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.Email = c.Email(email)
	u.PasswordHash = user.PasswordHash(passwordHash)
	u.Role = user.Role(role)
	u.ProfilePicture = c.NewOptional(profilePicture.String, profilePicture.Valid)
	u.About = c.NewOptional(about.String, about.Valid)
	u.Age = c.NewOptional(int(age.Int32), age.Valid)
	u.College = c.NewOptional(college.String, college.Valid)
	u.PasswordChangedAt = c.NewOptional(changedAt.Time, changedAt.Valid)
	u.PasswordResetTokenHash = c.NewOptional(user.ResetTokenHash(resetTokenHash.String), resetTokenHash.Valid)
	u.PasswordResetExpiresAt = c.NewOptional(resetExpiresAt.Time, resetExpiresAt.Valid)
	return u, nil
}
