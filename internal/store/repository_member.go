package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/models"
)

// memberRepository is the database/sql implementation of [MemberRepository].
// It handles member account creation and lookup against the "members" table.
type memberRepository struct {
	*DB
	logger *logger.Logger
}

// NewMemberRepository constructs a [MemberRepository] backed by the provided
// database connection and logger.
func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	logger.Debug().Msg("creating member repository")
	return &memberRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new member and returns the stored record with the
// server-assigned fields (id, created_at).
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *memberRepository) Create(ctx context.Context, member models.Member) (models.Member, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMemberQuery(r.builder, member)
	if err != nil {
		log.Err(err).Str("func", "memberRepository.Create").Msg("failed to build query")
		return models.Member{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanMember(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "memberRepository.Create").Msg("failed to insert member")
		if r.errorClassificator.IsUniqueViolation(err) {
			return models.Member{}, ErrEmailAlreadyExists
		}
		return models.Member{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (models.Member, error) {
	return r.findOne(ctx, "memberRepository.FindByEmail", sq.Eq{"email": email})
}

func (r *memberRepository) FindByID(ctx context.Context, id int64) (models.Member, error) {
	return r.findOne(ctx, "memberRepository.FindByID", sq.Eq{"id": id})
}

func (r *memberRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.Member, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMemberQuery(r.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.Member{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var member models.Member
	err = r.withRetry(ctx, func() error {
		member, err = scanMember(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Member{}, ErrMemberNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to select member")
		return models.Member{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return member, nil
}

func (r *memberRepository) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMemberRoleQuery(r.builder, id, role)
	if err != nil {
		log.Err(err).Str("func", "memberRepository.UpdateRole").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "memberRepository.UpdateRole").Int64("member_id", id).Msg("failed to update role")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func scanMember(row *sql.Row) (models.Member, error) {
	var (
		member    models.Member
		role      string
		createdAt timestamp
	)

	if err := row.Scan(&member.MemberID, &member.Email, &member.PasswordHash, &role, &createdAt); err != nil {
		return models.Member{}, err
	}
	member.Role = models.ParseRole(role)
	member.CreatedAt = time.Time(createdAt)

	return member, nil
}

// timestampLayouts are the text forms sqlite uses for DATETIME values that
// reach the driver without a declared column type (e.g. RETURNING).
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// timestamp scans both native time values and their sqlite text form.
type timestamp time.Time

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = timestamp(v)
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		*t = timestamp(time.Time{})
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = timestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", s)
}
