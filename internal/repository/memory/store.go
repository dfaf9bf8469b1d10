// Package memory implements every repository interface over in-process maps.
// It backs the service, api and realtime tests and mirrors the ordering and
// error behaviour of the MongoDB implementation.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

// Store holds all collections behind one lock.
type Store struct {
	mu sync.RWMutex

	users        map[string]domain.User
	exercises    []domain.Exercise
	mobility     []domain.MobilityExercise
	assessments  []domain.MobilityAssessment
	progress     []domain.UserProgress
	workouts     []domain.Workout
	communities  map[string]*domain.Community
	channels     map[string]*domain.ChatChannel
	messages     []domain.Message
	products     []domain.Product
	challenges   map[string]*domain.Challenge
	achievements []domain.Achievement
	connections  []domain.UserConnection

	// Insertion order for map-backed collections.
	communityOrder []string
	channelOrder   []string
	challengeOrder []string

	// FailIncrement makes IncrementPoints fail, for exercising the drift path.
	FailIncrement error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:       map[string]domain.User{},
		communities: map[string]*domain.Community{},
		channels:    map[string]*domain.ChatChannel{},
		challenges:  map[string]*domain.Challenge{},
	}
}

func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// ---- users ----

type userRepo struct{ s *Store }

// Users returns the store's UserRepository.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

func (r userRepo) Create(_ context.Context, user *domain.User) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return "", repository.ErrDuplicate
		}
	}
	user.ID = newID(user.ID)
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.s.users[user.ID] = *user
	return user.ID, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) IncrementPoints(_ context.Context, id string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailIncrement != nil {
		return r.s.FailIncrement
	}
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Points += delta
	r.s.users[id] = u
	return nil
}

func (r userRepo) SetProfilePhoto(_ context.Context, id, photo string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.ProfilePhoto = photo
	r.s.users[id] = u
	return nil
}

func (r userRepo) Search(_ context.Context, search repository.UserSearch) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q := strings.ToLower(search.Query)
	out := []domain.User{}
	for _, u := range r.sortedUsers() {
		if u.ID == search.ExcludeID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(u.Username), q) && !strings.Contains(strings.ToLower(u.FullName), q) {
			continue
		}
		if len(search.Interests) > 0 && !overlaps(u.Interests, search.Interests) {
			continue
		}
		out = append(out, u)
		if search.Limit > 0 && len(out) == search.Limit {
			break
		}
	}
	return out, nil
}

func (r userRepo) TopByPoints(_ context.Context, limit int) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	users := r.sortedUsers()
	sort.SliceStable(users, func(i, j int) bool { return users[i].Points > users[j].Points })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// sortedUsers returns users in creation order. Callers hold the lock.
func (r userRepo) sortedUsers() []domain.User {
	users := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// ---- exercises ----

type exerciseRepo struct{ s *Store }

// Exercises returns the store's ExerciseRepository.
func (s *Store) Exercises() repository.ExerciseRepository { return exerciseRepo{s} }

func (r exerciseRepo) List(_ context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Exercise{}
	for _, e := range r.s.exercises {
		if filter.Pillar != "" && e.Pillar != filter.Pillar {
			continue
		}
		if filter.SkillLevel != "" && e.SkillLevel != filter.SkillLevel {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ProgressionOrder < out[j].ProgressionOrder })
	return out, nil
}

func (r exerciseRepo) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.exercises {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r exerciseRepo) Pillars(_ context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := map[string]bool{}
	pillars := []string{}
	for _, e := range r.s.exercises {
		if !seen[e.Pillar] {
			seen[e.Pillar] = true
			pillars = append(pillars, e.Pillar)
		}
	}
	sort.Strings(pillars)
	return pillars, nil
}

func (r exerciseRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.exercises)), nil
}

func (r exerciseRepo) InsertMany(_ context.Context, exercises []domain.Exercise) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range exercises {
		e.ID = newID(e.ID)
		r.s.exercises = append(r.s.exercises, e)
	}
	return nil
}

// ---- mobility ----

type mobilityRepo struct{ s *Store }

// Mobility returns the store's MobilityRepository.
func (s *Store) Mobility() repository.MobilityRepository { return mobilityRepo{s} }

func (r mobilityRepo) List(_ context.Context) ([]domain.MobilityExercise, error) {
	return r.filter(func(domain.MobilityExercise) bool { return true }, 0), nil
}

func (r mobilityRepo) GetByID(_ context.Context, id string) (*domain.MobilityExercise, error) {
	items := r.filter(func(m domain.MobilityExercise) bool { return m.ID == id }, 1)
	if len(items) == 0 {
		return nil, repository.ErrNotFound
	}
	return &items[0], nil
}

func (r mobilityRepo) ListByDifficulty(_ context.Context, difficulty string, limit int) ([]domain.MobilityExercise, error) {
	return r.filter(func(m domain.MobilityExercise) bool { return m.Difficulty == difficulty }, limit), nil
}

func (r mobilityRepo) ListByArea(_ context.Context, area string, limit int) ([]domain.MobilityExercise, error) {
	needle := strings.ToLower(area)
	return r.filter(func(m domain.MobilityExercise) bool {
		return strings.Contains(strings.ToLower(m.Area), needle)
	}, limit), nil
}

func (r mobilityRepo) filter(keep func(domain.MobilityExercise) bool, limit int) []domain.MobilityExercise {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.MobilityExercise{}
	for _, m := range r.s.mobility {
		if !keep(m) {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (r mobilityRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.mobility)), nil
}

func (r mobilityRepo) InsertMany(_ context.Context, items []domain.MobilityExercise) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range items {
		m.ID = newID(m.ID)
		r.s.mobility = append(r.s.mobility, m)
	}
	return nil
}

// ---- assessments ----

type assessmentRepo struct{ s *Store }

// Assessments returns the store's AssessmentRepository.
func (s *Store) Assessments() repository.AssessmentRepository { return assessmentRepo{s} }

func (r assessmentRepo) Create(_ context.Context, a *domain.MobilityAssessment) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = newID(a.ID)
	r.s.assessments = append(r.s.assessments, *a)
	return a.ID, nil
}

func (r assessmentRepo) ListByUser(_ context.Context, userID string) ([]domain.MobilityAssessment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.MobilityAssessment{}
	for _, a := range r.s.assessments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateTaken.After(out[j].DateTaken) })
	return out, nil
}

func (r assessmentRepo) LatestByUser(ctx context.Context, userID string) (*domain.MobilityAssessment, error) {
	all, _ := r.ListByUser(ctx, userID)
	if len(all) == 0 {
		return nil, repository.ErrNotFound
	}
	return &all[0], nil
}

// ---- progress ----

type progressRepo struct{ s *Store }

// Progress returns the store's ProgressRepository.
func (s *Store) Progress() repository.ProgressRepository { return progressRepo{s} }

func (r progressRepo) Create(_ context.Context, p *domain.UserProgress) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = newID(p.ID)
	r.s.progress = append(r.s.progress, *p)
	return p.ID, nil
}

func (r progressRepo) ListByUser(_ context.Context, userID string) ([]domain.UserProgress, error) {
	return r.query(func(p domain.UserProgress) bool { return p.UserID == userID }, false, 0), nil
}

func (r progressRepo) ListByUserAndExercise(_ context.Context, userID, exerciseID string) ([]domain.UserProgress, error) {
	return r.query(func(p domain.UserProgress) bool {
		return p.UserID == userID && p.ExerciseID == exerciseID
	}, true, 0), nil
}

func (r progressRepo) ListByUserSince(_ context.Context, userID string, since time.Time) ([]domain.UserProgress, error) {
	return r.query(func(p domain.UserProgress) bool {
		return p.UserID == userID && !p.Date.Before(since)
	}, true, 0), nil
}

func (r progressRepo) RecentByUser(_ context.Context, userID string, limit int) ([]domain.UserProgress, error) {
	return r.query(func(p domain.UserProgress) bool { return p.UserID == userID }, false, limit), nil
}

func (r progressRepo) query(keep func(domain.UserProgress) bool, ascending bool, limit int) []domain.UserProgress {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.UserProgress{}
	for _, p := range r.s.progress {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ---- workouts ----

type workoutRepo struct{ s *Store }

// Workouts returns the store's WorkoutRepository.
func (s *Store) Workouts() repository.WorkoutRepository { return workoutRepo{s} }

func (r workoutRepo) Create(_ context.Context, w *domain.Workout) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w.ID = newID(w.ID)
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	r.s.workouts = append(r.s.workouts, *w)
	return w.ID, nil
}

func (r workoutRepo) ListByUser(_ context.Context, userID string) ([]domain.Workout, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Workout{}
	for _, w := range r.s.workouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
