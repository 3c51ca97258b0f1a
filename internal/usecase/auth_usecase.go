package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-vet-clinic/internal/converter"
	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/internal/domain/repository"
	"go-vet-clinic/internal/infrastructure/cache"
	"go-vet-clinic/internal/service"
	"go-vet-clinic/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists       = errors.New("email already exists")
	ErrLicenseAlreadyExists     = errors.New("license number already exists")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrTokenRevoked             = errors.New("token has been revoked")
	ErrUserNotFound             = errors.New("user not found")
	ErrUserInactive             = errors.New("user account is inactive")
	ErrRoleNotFound             = errors.New("role not found")
	ErrEmailNotVerified         = errors.New("email address has not been verified")
	ErrInvalidVerificationToken = errors.New("invalid or expired verification token")
	ErrEmailAlreadyVerified     = errors.New("email address is already verified")
)

// TokenStore tracks issued tokens; implemented by cache.TokenStore
type TokenStore interface {
	SaveTokenPair(ctx context.Context, userID uuid.UUID, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error
	IsRefreshTokenActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	RevokeTokens(ctx context.Context, userID uuid.UUID, accessID, refreshID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
	SaveVerification(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	LookupVerification(ctx context.Context, token string) (uuid.UUID, error)
	DeleteVerification(ctx context.Context, token string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.VerifyEmailResponse, error)
	ResendVerification(ctx context.Context, req *dto.ResendVerificationRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error
	LogoutAll(ctx context.Context, userID uuid.UUID) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	roleRepo           repository.RoleRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	auditService       service.AuditService
	jwtService         *jwt.JWTService
	tokens             TokenStore
	verificationExpiry time.Duration
	now                func() time.Time
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	tokens TokenStore,
	verificationExpiry time.Duration,
) AuthUsecase {
	return &authUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		roleRepo:           roleRepo,
		doctorProfileRepo:  doctorProfileRepo,
		auditService:       auditService,
		jwtService:         jwtService,
		tokens:             tokens,
		verificationExpiry: verificationExpiry,
		now:                time.Now,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByName(ctx, tx, req.Role)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    string(hashedPassword),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		RoleID:      role.ID,
		IsActive:    &active,
		Role:        *role,
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if role.ID == entity.RoleIDDoctor {
		profile := &entity.DoctorProfile{
			UserID:         user.ID,
			LicenseNumber:  req.LicenseNumber,
			Specialization: req.Specialization,
			Biography:      req.Biography,
		}
		if err := u.doctorProfileRepo.Create(ctx, tx, profile); err != nil {
			if isDuplicateKeyError(err, "license") {
				return nil, ErrLicenseAlreadyExists
			}
			u.log.Warnf("Failed to create doctor profile: %+v", err)
			return nil, err
		}
		user.DoctorProfile = profile
	}

	if err := u.auditService.LogEvent(ctx, tx, &user.ID, entity.AuditActionUserRegister, entity.JSON{
		"email": user.Email,
		"role":  role.RoleName,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// The account is committed, so a failed token write waits for ResendVerification
	token, err := u.newVerificationToken(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Registered user %s without a verification token: %+v", user.ID, err)
	}

	return &dto.RegisterResponse{
		User:              converter.UserToResponse(user),
		VerificationToken: token,
	}, nil
}

// VerifyEmail confirms the address behind a verification token and tells the
// client where the user lands next. The token is single use.
func (u *authUsecase) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.VerifyEmailResponse, error) {
	userID, err := u.tokens.LookupVerification(ctx, req.Token)
	if err != nil {
		if errors.Is(err, cache.ErrVerificationNotFound) {
			return nil, ErrInvalidVerificationToken
		}
		u.log.Warnf("Failed to load verification token: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	verifiedAt := u.now().UTC()
	affected, err := u.userRepo.MarkVerified(ctx, tx, user.ID, verifiedAt)
	if err != nil {
		u.log.Warnf("Failed to mark user verified: %+v", err)
		return nil, err
	}

	if affected > 0 {
		user.EmailVerifiedAt = &verifiedAt
		if err := u.auditService.LogEvent(ctx, tx, &user.ID, entity.AuditActionUserVerify, entity.JSON{
			"email": user.Email,
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.tokens.DeleteVerification(ctx, req.Token); err != nil {
		u.log.Warnf("Failed to delete verification token: %+v", err)
	}

	return &dto.VerifyEmailResponse{
		User:       converter.UserToResponse(user),
		RedirectTo: entity.HomePathForRole(user.RoleID),
	}, nil
}

func (u *authUsecase) ResendVerification(ctx context.Context, req *dto.ResendVerificationRequest) (*dto.RegisterResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsVerified() {
		return nil, ErrEmailAlreadyVerified
	}

	token, err := u.newVerificationToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		User:              converter.UserToResponse(user),
		VerificationToken: token,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// Find user by email (read-only, no transaction needed)
	user, err := u.userRepo.FindByEmail(ctx, u.db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active() {
		return nil, ErrUserInactive
	}
	if !user.IsVerified() {
		return nil, ErrEmailNotVerified
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, u.db, &user.ID, entity.AuditActionUserLogin, entity.JSON{
		"email": user.Email,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	if err := u.tokens.RevokeTokens(ctx, userID, accessTokenID, refreshTokenID); err != nil {
		u.log.Warnf("Failed to revoke tokens: %+v", err)
		return err
	}

	if err := u.auditService.LogEvent(ctx, u.db, &userID, entity.AuditActionUserLogout, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

// LogoutAll revokes every session of the user
func (u *authUsecase) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := u.tokens.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke all tokens: %+v", err)
		return err
	}

	if err := u.auditService.LogEvent(ctx, u.db, &userID, entity.AuditActionUserLogout, entity.JSON{"all_sessions": true}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	// Validate refresh token
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// Check if refresh token exists in Redis
	active, err := u.tokens.IsRefreshTokenActive(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if !active {
		return nil, ErrTokenRevoked
	}

	// Delete old refresh token
	if err := u.tokens.RevokeTokens(ctx, claims.UserID, "", claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email, claims.RoleID)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) newVerificationToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	if err := u.tokens.SaveVerification(ctx, token, userID, u.verificationExpiry); err != nil {
		u.log.Warnf("Failed to store verification token: %+v", err)
		return "", err
	}
	return token, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email string, roleID int) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokens.SaveTokenPair(ctx, userID,
		accessTokenID, u.jwtService.GetAccessExpiry(),
		refreshTokenID, u.jwtService.GetRefreshExpiry(),
	); err != nil {
		u.log.Warnf("Failed to store tokens in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		RedirectTo:   entity.HomePathForRole(roleID),
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
