package service

import (
	"fmt"
	"strconv"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/repository"
	"github.com/adbridge/adbridge-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and JWT authentication
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, jwtManager: jwtManager}
}

// LoginResponse token pair plus the authenticated user
type LoginResponse struct {
	User         *domain.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// Register creates an account with its role detail and issues tokens
func (s *AuthService) Register(req *domain.RegisterRequest) (*LoginResponse, error) {
	if !req.Role.Valid() {
		return nil, common.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	switch req.Role {
	case domain.RoleCreator:
		user.CreatorDetail = &domain.CreatorDetail{
			Handle:         req.Handle,
			Bio:            req.Bio,
			InstagramURL:   req.InstagramURL,
			YoutubeURL:     req.YoutubeURL,
			TiktokURL:      req.TiktokURL,
			FollowersCount: req.FollowersCount,
		}
	case domain.RoleAdvertiser:
		user.AdvertiserDetail = &domain.AdvertiserDetail{
			BrandName:   req.BrandName,
			Description: req.Description,
		}
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

// Login authenticates by email/password
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

// RefreshToken validates a refresh token and issues a new token pair.
// Access tokens are not accepted here.
func (s *AuthService) RefreshToken(refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	return s.issueTokens(user)
}

// GetCurrentUser returns the user for the given ID
func (s *AuthService) GetCurrentUser(userID uint64) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	return user.ToResponse(), nil
}

// UpdateProfile applies a partial update to the caller's role detail record
func (s *AuthService) UpdateProfile(userID uint64, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	switch user.Role {
	case domain.RoleCreator:
		detail := user.CreatorDetail
		if detail == nil {
			detail = &domain.CreatorDetail{UserID: userID}
		}
		if req.Handle != nil {
			detail.Handle = *req.Handle
		}
		if req.Bio != nil {
			detail.Bio = req.Bio
		}
		if req.ProfileImageURL != nil {
			detail.ProfileImageURL = req.ProfileImageURL
		}
		if req.InstagramURL != nil {
			detail.InstagramURL = req.InstagramURL
		}
		if req.YoutubeURL != nil {
			detail.YoutubeURL = req.YoutubeURL
		}
		if req.TiktokURL != nil {
			detail.TiktokURL = req.TiktokURL
		}
		if req.FollowersCount != nil {
			detail.FollowersCount = *req.FollowersCount
		}
		if err := s.userRepo.UpsertCreatorDetail(detail); err != nil {
			return nil, err
		}
		user.CreatorDetail = detail
	case domain.RoleAdvertiser:
		detail := user.AdvertiserDetail
		if detail == nil {
			detail = &domain.AdvertiserDetail{UserID: userID}
		}
		if req.BrandName != nil {
			detail.BrandName = *req.BrandName
		}
		if req.Description != nil {
			detail.Description = req.Description
		}
		if err := s.userRepo.UpsertAdvertiserDetail(detail); err != nil {
			return nil, err
		}
		user.AdvertiserDetail = detail
	}

	return user.ToResponse(), nil
}

func (s *AuthService) issueTokens(user *domain.User) (*LoginResponse, error) {
	userIDStr := strconv.FormatUint(user.ID, 10)
	accessToken, err := s.jwtManager.GenerateAccessToken(userIDStr, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	return &LoginResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
