package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
	"github.com/maroofsyyed/dominion1/internal/storage"
)

var (
	ErrUnsupportedMediaType = errors.New("file must be an image")
	ErrFileTooLarge         = errors.New("file exceeds the maximum allowed size")
	ErrNoProfilePhoto       = errors.New("user has no profile photo")
)

// MaxPhotoBytes is the largest accepted profile photo.
const MaxPhotoBytes = 5 << 20

type UserService interface {
	// SetProfilePhoto validates the image in r and stores it on the user. It
	// returns the stored photo reference: an object URL when file storage is
	// configured, a data URL otherwise.
	SetProfilePhoto(ctx context.Context, user *domain.User, r io.Reader) (string, error)

	// ProfilePhotoURL returns a URL the client can fetch the user's photo from.
	// Stored objects get a presigned URL valid for expires; inline photos are
	// returned as is with a zero expiry.
	ProfilePhotoURL(ctx context.Context, userID string) (url string, expires time.Duration, err error)
}

type userService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage // nil keeps photos inline
	logger      zerolog.Logger
}

func NewUserService(userRepo repository.UserRepository, fileStorage storage.FileStorage, logger zerolog.Logger) UserService {
	return &userService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *userService) SetProfilePhoto(ctx context.Context, user *domain.User, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPhotoBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if len(data) > MaxPhotoBytes {
		return "", ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrUnsupportedMediaType
	}

	var photo, objectKey string
	if s.fileStorage != nil {
		objectKey = path.Join("profile-photos", user.ID, uuid.NewString()+mtype.Extension())
		photo, err = s.fileStorage.PutObject(ctx, objectKey, mtype.String(), bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", fmt.Errorf("store photo: %w", err)
		}
	} else {
		photo = "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data)
	}

	if err := s.userRepo.SetProfilePhoto(ctx, user.ID, photo); err != nil {
		if objectKey != "" {
			s.deleteObject(ctx, objectKey, "failed to delete unreferenced profile photo")
		}
		return "", mapNotFound(err, ErrUserNotFound)
	}

	s.removePrevious(ctx, user.ProfilePhoto)
	return photo, nil
}

// removePrevious deletes the replaced object. Failures only leave an orphan.
func (s *userService) removePrevious(ctx context.Context, previous string) {
	if s.fileStorage == nil || previous == "" {
		return
	}
	key, ok := s.fileStorage.KeyForURL(previous)
	if !ok {
		return
	}
	s.deleteObject(ctx, key, "failed to delete previous profile photo")
}

func (s *userService) deleteObject(ctx context.Context, key, msg string) {
	if err := s.fileStorage.DeleteObject(ctx, key); err != nil {
		s.logger.Warn().Err(err).Str("object_key", key).Msg(msg)
	}
}

func (s *userService) ProfilePhotoURL(ctx context.Context, userID string) (string, time.Duration, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", 0, mapNotFound(err, ErrUserNotFound)
	}
	if user.ProfilePhoto == "" {
		return "", 0, ErrNoProfilePhoto
	}
	if s.fileStorage == nil {
		return user.ProfilePhoto, 0, nil
	}
	key, ok := s.fileStorage.KeyForURL(user.ProfilePhoto)
	if !ok {
		return user.ProfilePhoto, 0, nil
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", 0, fmt.Errorf("presign photo: %w", err)
	}
	return url, storage.DefaultPresignedURLExpiry, nil
}
