// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/store"
	"github.com/MKhiriev/go-gift-catalog/internal/utils"
	"github.com/MKhiriev/go-gift-catalog/internal/validators"
	"github.com/MKhiriev/go-gift-catalog/models"
)

// memberService is the concrete implementation of MemberService.
// Passwords are stored as bcrypt hashes and tokens are HS256 JWTs whose
// subject is the member id.
type memberService struct {
	// memberRepository is the data-access layer used to create and look up members.
	memberRepository store.MemberRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewMemberService constructs a MemberService wired to the given repository
// and populated with token parameters from cfg.
func NewMemberService(memberRepository store.MemberRepository, cfg config.App, logger *logger.Logger) MemberService {
	return &memberService{
		memberRepository: memberRepository,
		validator:        validators.NewStructValidator(),
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Register creates a member with the [models.RoleUser] role.
//
// Returns:
//   - ErrInvalidCredentials (joined with the field errors) if validation fails.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (m *memberService) Register(ctx context.Context, credentials models.Credentials) (models.Member, error) {
	return m.register(ctx, credentials, models.RoleUser)
}

// Login checks the credentials against the stored hash. Unknown emails and
// wrong passwords both yield ErrWrongCredentials.
func (m *memberService) Login(ctx context.Context, credentials models.Credentials) (models.Member, error) {
	log := logger.FromContext(ctx)

	if err := m.validate(ctx, credentials); err != nil {
		return models.Member{}, err
	}

	member, err := m.memberRepository.FindByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrMemberNotFound) {
		log.Info().Str("email", credentials.Email).Msg("login attempt for unknown email")
		return models.Member{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "memberService.Login").Msg("member search by email failed")
		return models.Member{}, fmt.Errorf("member search by email failed: %w", err)
	}

	if err = utils.CheckPassword(member.PasswordHash, credentials.Password); err != nil {
		log.Info().Int64("id", member.MemberID).Msg("wrong password")
		return models.Member{}, ErrWrongCredentials
	}

	return member, nil
}

// CreateToken issues a signed JWT for the given member.
func (m *memberService) CreateToken(ctx context.Context, member models.Member) (models.Token, error) {
	token, err := utils.GenerateJWTToken(m.tokenIssuer, member.MemberID, m.tokenDuration, m.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyRole parses the token and reads the role of its member from storage,
// so that role changes apply to already issued tokens.
func (m *memberService) VerifyRole(ctx context.Context, tokenString string) (models.Authorization, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, m.tokenSignKey, m.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "memberService.VerifyRole").Msg("token rejected")
		return models.Authorization{}, ErrTokenIsExpiredOrInvalid
	}

	member, err := m.memberRepository.FindByID(ctx, token.MemberID)
	if errors.Is(err, store.ErrMemberNotFound) {
		log.Info().Int64("id", token.MemberID).Msg("token references unknown member")
		return models.Authorization{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Authorization{}, fmt.Errorf("member search by id failed: %w", err)
	}

	return models.Authorization{MemberID: member.MemberID, Role: member.Role}, nil
}

// EnsureAdmin creates the admin member when missing and promotes an existing
// member with the same email. The stored password is left untouched for
// existing members.
func (m *memberService) EnsureAdmin(ctx context.Context, credentials models.Credentials) (models.Member, error) {
	log := logger.FromContext(ctx)

	member, err := m.memberRepository.FindByEmail(ctx, credentials.Email)
	switch {
	case errors.Is(err, store.ErrMemberNotFound):
		created, err := m.register(ctx, credentials, models.RoleAdmin)
		if err != nil {
			return models.Member{}, fmt.Errorf("error creating admin: %w", err)
		}
		log.Info().Int64("id", created.MemberID).Str("email", created.Email).Msg("admin member created")
		return created, nil
	case err != nil:
		return models.Member{}, fmt.Errorf("member search by email failed: %w", err)
	}

	if member.Role == models.RoleAdmin {
		return member, nil
	}

	if err = m.memberRepository.UpdateRole(ctx, member.MemberID, models.RoleAdmin); err != nil {
		return models.Member{}, fmt.Errorf("error promoting member %d: %w", member.MemberID, err)
	}

	member.Role = models.RoleAdmin
	log.Info().Int64("id", member.MemberID).Str("email", member.Email).Msg("member promoted to admin")
	return member, nil
}

func (m *memberService) register(ctx context.Context, credentials models.Credentials, role models.Role) (models.Member, error) {
	log := logger.FromContext(ctx)

	if err := m.validate(ctx, credentials); err != nil {
		return models.Member{}, err
	}

	hash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		return models.Member{}, err
	}

	member, err := m.memberRepository.Create(ctx, models.Member{
		Email:        credentials.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Str("func", "memberService.register").Msg("member creation ended with error")
		return models.Member{}, fmt.Errorf("member creation ended with error: %w", err)
	}

	return member, nil
}

func (m *memberService) validate(ctx context.Context, credentials models.Credentials) error {
	if err := m.validator.Validate(ctx, credentials); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return nil
}
