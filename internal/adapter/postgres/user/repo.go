// Package user persists users and their role profiles in PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres"
	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

var columns = []string{
	"id", "name", "email", "phone", "password_hash", "role",
	"village", "qualifications", "id_number", "skills", "created_at", "updated_at",
}

// row mirrors the users table. The role profile is flattened into nullable columns.
type row struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	Phone          *string   `db:"phone"`
	PasswordHash   string    `db:"password_hash"`
	Role           string    `db:"role"`
	Village        *string   `db:"village"`
	Qualifications *string   `db:"qualifications"`
	IDNumber       *string   `db:"id_number"`
	Skills         []string  `db:"skills"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a user repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts u. A taken email or phone yields domain.ErrDuplicateEmail or
// domain.ErrDuplicatePhone, both wrapping domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	rw, err := fromDomain(u)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder.
		Insert("users").
		Columns(columns...).
		Values(rw.ID, rw.Name, rw.Email, rw.Phone, rw.PasswordHash, rw.Role,
			rw.Village, rw.Qualifications, rw.IDNumber, rw.Skills, rw.CreatedAt, rw.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("user.Create: build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		switch postgres.ConstraintName(err) {
		case "ux_users_email":
			return fmt.Errorf("user %s: %w", u.Email, domain.ErrDuplicateEmail)
		case "ux_users_phone":
			return fmt.Errorf("user %s: %w", u.Phone, domain.ErrDuplicatePhone)
		}
		return postgres.MapError(err, "user", u.Email)
	}
	return nil
}

// UpdateProfile rewrites the role and profile columns of u.
func (r *Repo) UpdateProfile(ctx context.Context, u *domain.User) error {
	rw, err := fromDomain(u)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder.
		Update("users").
		Set("role", rw.Role).
		Set("village", rw.Village).
		Set("qualifications", rw.Qualifications).
		Set("id_number", rw.IDNumber).
		Set("skills", rw.Skills).
		Set("updated_at", rw.UpdatedAt).
		Where(squirrel.Eq{"id": rw.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("user.UpdateProfile: build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrNotFound)
	}
	return nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Expr("lower(email) = ?", strings.ToLower(email)), email)
}

// GetByPhone returns a user by phone number.
func (r *Repo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"phone": phone}, phone)
}

// GetByIDs returns the users that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("users").
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.GetByIDs: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("user.GetByIDs: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, rw := range rows {
		users = append(users, rw.toDomain())
	}
	return users, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, ref any) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", ref)
	}

	u := rw.toDomain()
	return &u, nil
}

func fromDomain(u *domain.User) (row, error) {
	rw := row{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role()),
		Skills:       []string{},
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.Phone != "" {
		phone := u.Phone
		rw.Phone = &phone
	}

	switch p := u.Profile.(type) {
	case domain.Citizen:
		rw.Village = &p.Village
	case domain.Volunteer:
		rw.Qualifications = &p.Qualifications
		rw.IDNumber = &p.IDNumber
		if p.Skills != nil {
			rw.Skills = p.Skills
		}
	default:
		return row{}, domain.NewValidationError("role", "user has no profile")
	}
	return rw, nil
}

func (rw row) toDomain() domain.User {
	u := domain.User{
		ID:           rw.ID,
		Name:         rw.Name,
		Email:        rw.Email,
		PasswordHash: rw.PasswordHash,
		CreatedAt:    rw.CreatedAt,
		UpdatedAt:    rw.UpdatedAt,
	}
	if rw.Phone != nil {
		u.Phone = *rw.Phone
	}

	switch domain.Role(rw.Role) {
	case domain.RoleVolunteer:
		u.Profile = domain.Volunteer{
			Qualifications: deref(rw.Qualifications),
			IDNumber:       deref(rw.IDNumber),
			Skills:         rw.Skills,
		}
	default:
		u.Profile = domain.Citizen{Village: deref(rw.Village)}
	}
	return u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
