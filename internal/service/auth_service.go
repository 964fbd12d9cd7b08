package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/internal/config"
	"vidtube/internal/model"
	"vidtube/pkg/logger"
	"vidtube/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrUserExists         = errors.New("username or email already registered")
	ErrAvatarRequired     = errors.New("avatar image is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ImageFile is one uploaded image part.
type ImageFile struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

type AuthService struct {
	users  UserStore
	images MediaUploader
}

func NewAuthService(users UserStore, images MediaUploader) *AuthService {
	return &AuthService{users: users, images: images}
}

// Register creates a user account. Field validation runs before any
// store access so a bad request never reaches the database; the cover
// image is optional, the avatar is not.
func (s *AuthService) Register(ctx context.Context, form *dto.RegisterForm, avatar, cover *ImageFile) (*dto.UserInfo, error) {
	fullName := strings.TrimSpace(form.FullName)
	username := strings.ToLower(strings.TrimSpace(form.Username))
	email := strings.ToLower(strings.TrimSpace(form.Email))
	if fullName == "" || username == "" || email == "" || form.Password == "" {
		return nil, ErrFieldsRequired
	}
	if avatar == nil {
		return nil, ErrAvatarRequired
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	avatarURL, err := s.uploadImage(ctx, username, "avatar", avatar)
	if err != nil {
		return nil, err
	}
	var coverURL string
	if cover != nil {
		if coverURL, err = s.uploadImage(ctx, username, "cover", cover); err != nil {
			return nil, err
		}
	}

	hashed, err := utils.HashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:   username,
		FullName:   fullName,
		Email:      email,
		Avatar:     avatarURL,
		CoverImage: coverURL,
		Password:   hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	logger.Info("user registered", zap.String("username", username))
	return userInfo(user), nil
}

// Login verifies credentials and mints a JWT.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.users.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(config.GetJWT().ExpireDuration().Seconds()),
		User:      *userInfo(user),
	}, nil
}

// Me returns the acting user's profile.
func (s *AuthService) Me(ctx context.Context, actorID primitive.ObjectID) (*dto.UserInfo, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return userInfo(user), nil
}

func (s *AuthService) uploadImage(ctx context.Context, username, part string, file *ImageFile) (string, error) {
	objectName := fmt.Sprintf("%s/%s-%d", username, part, time.Now().UnixNano())
	url, err := s.images.UploadImage(ctx, objectName, file.Reader, file.Size, file.ContentType)
	if err != nil {
		logger.Error("image upload failed", zap.String("object", objectName), zap.Error(err))
		return "", err
	}
	return url, nil
}

func userInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:         user.ID.Hex(),
		Username:   user.Username,
		FullName:   user.FullName,
		Email:      user.Email,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
	}
}
