package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	introductiondomain "portfolio-backend/internal/domains/introduction"
	"portfolio-backend/internal/domains/user"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
)

// ObjectStorage is the slice of the storage layer avatar uploads need.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Service interface {
	// Login verifies credentials and returns signed tokens. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error)

	// Session resolves the account behind a validated token.
	Session(ctx context.Context, userID uuid.UUID) (*user.SessionUser, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req user.UpdateProfileRequest) (*user.Profile, error)

	// UploadAvatar stores the image under profileimage/ and writes the
	// URL to the profile, then to the introduction. The second write is
	// best effort; the two rows can diverge if it fails.
	UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte) (*user.Profile, error)
}

type service struct {
	repo      user.Repository
	intros    introductiondomain.Repository
	jwt       *jwt.Manager
	storage   ObjectStorage
	processor *storage.ImageProcessor
}

func NewService(repo user.Repository, intros introductiondomain.Repository, jwtManager *jwt.Manager, store ObjectStorage) Service {
	return &service{
		repo:      repo,
		intros:    intros,
		jwt:       jwtManager,
		storage:   store,
		processor: storage.NewImageProcessor(),
	}
}

func (s *service) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email reads the same as a wrong password.
		return nil, user.ErrInvalidCredentials
	}

	if !account.IsConfirmed() {
		return nil, user.ErrEmailNotConfirmed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateAccessToken(account.ID.String(), account.Email, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(account.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(24 * time.Hour),
		User:         account.ToSessionUser(),
	}, nil
}

func (s *service) Session(ctx context.Context, userID uuid.UUID) (*user.SessionUser, error) {
	account, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := account.ToSessionUser()
	return &session, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req user.UpdateProfileRequest) (*user.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if err != user.ErrProfileNotFound {
			return nil, err
		}
		profile = &user.Profile{UserID: userID}
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Role != "" {
		profile.Role = req.Role
	}
	profile.UpdatedAt = time.Now()

	return s.repo.UpsertProfile(ctx, profile)
}

func (s *service) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte) (*user.Profile, error) {
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, err
	}
	ext, contentType, err := s.processor.DetectFormat(data)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%s-%s.%s",
		storage.ProfileImagePrefix, userID.String(), uuid.New().String()[:8], ext)

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.repo.UpdateAvatar(ctx, userID, url); err != nil {
		return nil, err
	}

	// Second write of the avatar pair. Failure leaves the
	// introduction pointing at the previous image until the next
	// introduction save.
	if s.intros != nil {
		if err := s.intros.UpdateAvatar(ctx, url); err != nil {
			logger.Error("introduction avatar sync failed", err)
		}
	}

	return s.repo.GetProfile(ctx, userID)
}
