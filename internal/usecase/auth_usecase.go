package usecase

import (
	"context"
	"time"

	"bloodlink-api/internal/converter"
	"bloodlink-api/internal/delivery/dto"
	"bloodlink-api/internal/domain/entity"
	"bloodlink-api/internal/domain/repository"
	"bloodlink-api/internal/service"
	"bloodlink-api/internal/session"
	"bloodlink-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	RegisterDonor(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.AuthResponse, error)
	RegisterHospital(ctx context.Context, req *dto.RegisterHospitalRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	tx           repository.TxManager
	userRepo     repository.UserRepository
	donationRepo repository.DonationRepository
	requestRepo  repository.RequestRepository
	jwtService   *jwt.JWTService
	sessions     *session.Store
	activity     service.ActivityService
	notifier     service.Publisher
}

func NewAuthUsecase(
	log *logrus.Logger,
	tx repository.TxManager,
	userRepo repository.UserRepository,
	donationRepo repository.DonationRepository,
	requestRepo repository.RequestRepository,
	jwtService *jwt.JWTService,
	sessions *session.Store,
	activity service.ActivityService,
	notifier service.Publisher,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		tx:           tx,
		userRepo:     userRepo,
		donationRepo: donationRepo,
		requestRepo:  requestRepo,
		jwtService:   jwtService,
		sessions:     sessions,
		activity:     activity,
		notifier:     notifier,
	}
}

// RegisterDonor creates the account and its first donation profile row in
// one transaction, then signs the new donor in.
func (u *authUsecase) RegisterDonor(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.Name,
		RoleID:   entity.RoleIDDonor,
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			if isDuplicateKeyError(err, "email") {
				return ErrEmailAlreadyExists
			}
			if isForeignKeyError(err, "role") {
				return ErrRoleNotFound
			}
			u.log.Warnf("Failed to create user: %+v", err)
			return err
		}

		donation := &entity.BloodDonation{
			UserID:      user.ID,
			Email:       user.Email,
			Name:        req.Name,
			BloodGroup:  req.BloodGroup,
			Age:         req.Age,
			PhoneNumber: req.PhoneNumber,
		}
		if err := u.donationRepo.Create(ctx, donation); err != nil {
			u.log.Warnf("Failed to create donation profile: %+v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, user, entity.RoleDonor)
	if err != nil {
		return nil, err
	}

	u.activity.Record(ctx, &user.ID, entity.ActivityActionUserRegister, entity.JSON{
		"role":  entity.RoleDonor,
		"email": user.Email,
	})
	u.publishChange(ctx, entity.BloodDonation{}.TableName())

	return &dto.AuthResponse{
		User:   *converter.UserToResponse(user, entity.RoleDonor),
		Tokens: *tokens,
	}, nil
}

// RegisterHospital mirrors RegisterDonor: the account plus its first blood
// request row, committed together.
func (u *authUsecase) RegisterHospital(ctx context.Context, req *dto.RegisterHospitalRequest) (*dto.AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.Name,
		RoleID:   entity.RoleIDHospital,
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			if isDuplicateKeyError(err, "email") {
				return ErrEmailAlreadyExists
			}
			if isForeignKeyError(err, "role") {
				return ErrRoleNotFound
			}
			u.log.Warnf("Failed to create user: %+v", err)
			return err
		}

		request := &entity.BloodRequest{
			UserID:     user.ID,
			Email:      user.Email,
			Name:       req.Name,
			Address:    req.Address,
			BloodGroup: req.BloodGroup,
			Quantity:   req.Quantity,
			Urgency:    req.Urgency,
		}
		if err := u.requestRepo.Create(ctx, request); err != nil {
			u.log.Warnf("Failed to create request profile: %+v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, user, entity.RoleHospital)
	if err != nil {
		return nil, err
	}

	u.activity.Record(ctx, &user.ID, entity.ActivityActionUserRegister, entity.JSON{
		"role":  entity.RoleHospital,
		"email": user.Email,
	})
	u.publishChange(ctx, entity.BloodRequest{}.TableName())

	return &dto.AuthResponse{
		User:   *converter.UserToResponse(user, entity.RoleHospital),
		Tokens: *tokens,
	}, nil
}

// Login authenticates email+password under the role the client signed in
// as. An account registered under the other role is rejected and any
// lingering sessions for it are revoked, so a donor token can never be
// minted through the hospital form.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	role := entity.RoleNameFor(user.RoleID)
	if role != req.Role {
		if err := u.sessions.RevokeAll(ctx, user.ID); err != nil {
			u.log.Warnf("Failed to revoke sessions on role mismatch: %+v", err)
		}
		return nil, ErrRoleMismatch
	}

	tokens, err := u.issueTokens(ctx, user, role)
	if err != nil {
		return nil, err
	}

	u.activity.Record(ctx, &user.ID, entity.ActivityActionUserLogin, entity.JSON{
		"role": role,
	})

	return &dto.AuthResponse{
		User:   *converter.UserToResponse(user, role),
		Tokens: *tokens,
	}, nil
}

// Logout revokes every token and the cached identity for userID. Revoking
// everything rather than the presented pair keeps logout idempotent and
// covers tokens a lost client may still hold.
func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := u.sessions.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke sessions: %+v", err)
		return err
	}

	u.activity.Record(ctx, &userID, entity.ActivityActionUserLogout, nil)
	return nil
}

// RefreshToken rotates a refresh token: the presented token is consumed and
// a fresh access/refresh pair is issued.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	valid, err := u.sessions.RefreshTokenValid(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	if err := u.sessions.DeleteRefreshToken(ctx, claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.storeTokenPair(ctx, claims.UserID, claims.Email, claims.Role)
}

// GetCurrentUser returns the signed-in user's profile. The role comes from
// the session cache when present so it matches what the client signed in
// as.
func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}

	role := ""
	identity, err := u.sessions.Identity(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to read cached identity: %+v", err)
	} else if identity != nil {
		role = identity.Role
	}

	return converter.UserToResponse(user, role), nil
}

// issueTokens mints and stores an access/refresh pair and caches the
// identity alongside it.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User, role string) (*dto.TokenResponse, error) {
	tokens, err := u.storeTokenPair(ctx, user.ID, user.Email, role)
	if err != nil {
		return nil, err
	}

	if err := u.sessions.SaveIdentity(ctx, user.ID, role, user.Email, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to cache identity: %+v", err)
		return nil, err
	}

	return tokens, nil
}

func (u *authUsecase) storeTokenPair(ctx context.Context, userID uuid.UUID, email, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessions.StoreAccessToken(ctx, userID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.sessions.StoreRefreshToken(ctx, userID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) publishChange(ctx context.Context, table string) {
	ev := service.ChangeEvent{Table: table, Action: service.ChangeActionInsert, At: time.Now()}
	if err := u.notifier.Publish(ctx, ev); err != nil {
		u.log.Warnf("Failed to publish change event for %s: %+v", table, err)
	}
}
