package memory

import (
	"context"
	"sort"
	"time"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

func addMember(members []string, id string) []string {
	for _, m := range members {
		if m == id {
			return members
		}
	}
	return append(members, id)
}

// ---- communities ----

type communityRepo struct{ s *Store }

// Communities returns the store's CommunityRepository.
func (s *Store) Communities() repository.CommunityRepository { return communityRepo{s} }

func (r communityRepo) List(_ context.Context) ([]domain.Community, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Community, 0, len(r.s.communityOrder))
	for _, id := range r.s.communityOrder {
		c := *r.s.communities[id]
		c.Members = append([]string(nil), c.Members...)
		out = append(out, c)
	}
	return out, nil
}

func (r communityRepo) AddMember(_ context.Context, communityID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.communities[communityID]
	if !ok {
		return repository.ErrNotFound
	}
	c.Members = addMember(c.Members, userID)
	return nil
}

func (r communityRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.communities)), nil
}

func (r communityRepo) InsertMany(_ context.Context, communities []domain.Community) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range communities {
		c := c
		c.ID = newID(c.ID)
		r.s.communities[c.ID] = &c
		r.s.communityOrder = append(r.s.communityOrder, c.ID)
	}
	return nil
}

// ---- channels ----

type channelRepo struct{ s *Store }

// Channels returns the store's ChannelRepository.
func (s *Store) Channels() repository.ChannelRepository { return channelRepo{s} }

func (r channelRepo) List(_ context.Context) ([]domain.ChatChannel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.ChatChannel, 0, len(r.s.channelOrder))
	for _, id := range r.s.channelOrder {
		c := *r.s.channels[id]
		c.Members = append([]string(nil), c.Members...)
		out = append(out, c)
	}
	return out, nil
}

func (r channelRepo) AddMember(_ context.Context, channelID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.channels[channelID]
	if !ok {
		return repository.ErrNotFound
	}
	c.Members = addMember(c.Members, userID)
	return nil
}

func (r channelRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.channels)), nil
}

func (r channelRepo) InsertMany(_ context.Context, channels []domain.ChatChannel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range channels {
		c := c
		c.ID = newID(c.ID)
		r.s.channels[c.ID] = &c
		r.s.channelOrder = append(r.s.channelOrder, c.ID)
	}
	return nil
}

// ---- messages ----

type messageRepo struct{ s *Store }

// Messages returns the store's MessageRepository.
func (s *Store) Messages() repository.MessageRepository { return messageRepo{s} }

func (r messageRepo) Create(_ context.Context, msg *domain.Message) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	msg.ID = newID(msg.ID)
	r.s.messages = append(r.s.messages, *msg)
	return msg.ID, nil
}

func (r messageRepo) ListByRoom(_ context.Context, roomID string, limit int) ([]domain.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Message{}
	// Walk backwards so equal timestamps keep newest-inserted first.
	for i := len(r.s.messages) - 1; i >= 0; i-- {
		if r.s.messages[i].RoomID == roomID {
			out = append(out, r.s.messages[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---- connections ----

type connectionRepo struct{ s *Store }

// Connections returns the store's ConnectionRepository.
func (s *Store) Connections() repository.ConnectionRepository { return connectionRepo{s} }

func (r connectionRepo) Upsert(_ context.Context, followerID, followingID string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.connections {
		if c.FollowerID == followerID && c.FollowingID == followingID {
			return nil
		}
	}
	r.s.connections = append(r.s.connections, domain.UserConnection{
		ID: newID(""), FollowerID: followerID, FollowingID: followingID, CreatedAt: at,
	})
	return nil
}

func (r connectionRepo) Delete(_ context.Context, followerID, followingID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.connections[:0]
	for _, c := range r.s.connections {
		if c.FollowerID == followerID && c.FollowingID == followingID {
			continue
		}
		kept = append(kept, c)
	}
	r.s.connections = kept
	return nil
}

func (r connectionRepo) Exists(_ context.Context, followerID, followingID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.connections {
		if c.FollowerID == followerID && c.FollowingID == followingID {
			return true, nil
		}
	}
	return false, nil
}

func (r connectionRepo) FollowerIDs(_ context.Context, userID string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := []string{}
	for _, c := range r.s.connections {
		if c.FollowingID == userID {
			ids = append(ids, c.FollowerID)
		}
	}
	return ids, nil
}

func (r connectionRepo) FollowingIDs(_ context.Context, userID string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := []string{}
	for _, c := range r.s.connections {
		if c.FollowerID == userID {
			ids = append(ids, c.FollowingID)
		}
	}
	return ids, nil
}

func (r connectionRepo) CountFollowers(ctx context.Context, userID string) (int64, error) {
	ids, err := r.FollowerIDs(ctx, userID)
	return int64(len(ids)), err
}

func (r connectionRepo) CountFollowing(ctx context.Context, userID string) (int64, error) {
	ids, err := r.FollowingIDs(ctx, userID)
	return int64(len(ids)), err
}
