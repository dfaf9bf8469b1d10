package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

var (
	ErrCommunityNotFound = errors.New("community not found")
	ErrChannelNotFound   = errors.New("chat channel not found")
)

const (
	DefaultMessageLimit = 50
	MaxMessageLimit     = 200
)

type CommunityService interface {
	ListCommunities(ctx context.Context) ([]domain.Community, error)
	JoinCommunity(ctx context.Context, communityID, userID string) error
	CommunityMessages(ctx context.Context, communityID string) ([]domain.Message, error)

	ListChannels(ctx context.Context) ([]domain.ChatChannel, error)
	JoinChannel(ctx context.Context, channelID, userID string) error
	// ChannelMessages clamps limit to [1, MaxMessageLimit]; zero or less means DefaultMessageLimit.
	ChannelMessages(ctx context.Context, channelID string, limit int) ([]domain.Message, error)

	// SaveMessage persists a realtime chat line. The room is not checked.
	SaveMessage(ctx context.Context, roomID, userID, username, content string) (*domain.Message, error)
}

type communityService struct {
	communityRepo repository.CommunityRepository
	channelRepo   repository.ChannelRepository
	messageRepo   repository.MessageRepository
}

func NewCommunityService(
	communityRepo repository.CommunityRepository,
	channelRepo repository.ChannelRepository,
	messageRepo repository.MessageRepository,
) CommunityService {
	return &communityService{
		communityRepo: communityRepo,
		channelRepo:   channelRepo,
		messageRepo:   messageRepo,
	}
}

func (s *communityService) ListCommunities(ctx context.Context) ([]domain.Community, error) {
	return s.communityRepo.List(ctx)
}

func (s *communityService) JoinCommunity(ctx context.Context, communityID, userID string) error {
	return mapNotFound(s.communityRepo.AddMember(ctx, communityID, userID), ErrCommunityNotFound)
}

func (s *communityService) CommunityMessages(ctx context.Context, communityID string) ([]domain.Message, error) {
	return s.messageRepo.ListByRoom(ctx, communityID, DefaultMessageLimit)
}

func (s *communityService) ListChannels(ctx context.Context) ([]domain.ChatChannel, error) {
	return s.channelRepo.List(ctx)
}

func (s *communityService) JoinChannel(ctx context.Context, channelID, userID string) error {
	return mapNotFound(s.channelRepo.AddMember(ctx, channelID, userID), ErrChannelNotFound)
}

func (s *communityService) ChannelMessages(ctx context.Context, channelID string, limit int) ([]domain.Message, error) {
	switch {
	case limit <= 0:
		limit = DefaultMessageLimit
	case limit > MaxMessageLimit:
		limit = MaxMessageLimit
	}
	return s.messageRepo.ListByRoom(ctx, channelID, limit)
}

func (s *communityService) SaveMessage(ctx context.Context, roomID, userID, username, content string) (*domain.Message, error) {
	if roomID == "" || content == "" {
		return nil, fmt.Errorf("%w: room and content are required", ErrValidationFailed)
	}
	msg := &domain.Message{
		UserID:    userID,
		RoomID:    roomID,
		Username:  username,
		Content:   content,
		Timestamp: nowFunc(),
	}
	if _, err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
