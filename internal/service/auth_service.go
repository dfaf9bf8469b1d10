package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4" // Import JWT library
	"golang.org/x/crypto/bcrypt"   // Import bcrypt

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository" // Import repository package
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("email already registered")
	ErrAuthenticationFailed = errors.New("incorrect email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidToken         = errors.New("could not validate credentials")
)

// DefaultTokenLifetime is used when no expiration is configured.
const DefaultTokenLifetime = 30 * time.Minute

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	Age        *int
	Height     *float64
	Weight     *float64
	University string
	City       string
}

// --- Service Interface ---
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (token string, user *domain.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	// ResolveToken verifies a bearer token and loads its subject.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

// --- Service Implementation ---

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     []byte
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = DefaultTokenLifetime
	}
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new user registration.
func (s *authService) Register(ctx context.Context, in RegisterInput) (string, *domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" || in.FullName == "" {
		return "", nil, fmt.Errorf("%w: username, email, password and full name are required", ErrValidationFailed)
	}

	// Fast path; the unique index catches a concurrent duplicate below.
	_, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err == nil {
		return "", nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, ErrHashingFailed
	}

	now := nowFunc()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		FullName:     in.FullName,
		Age:          in.Age,
		Height:       in.Height,
		Weight:       in.Weight,
		University:   in.University,
		City:         in.City,
		Goals:        []string{},
		Interests:    []string{},
		FitnessLevel: domain.LevelBeginner,
		Badges:       []string{},
		Achievements: []domain.AwardedAchievement{},
		LastActivity: now,
		Privacy:      domain.DefaultPrivacy(),
		CreatedAt:    now,
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", nil, ErrUserAlreadyExists
		}
		return "", nil, err
	}

	token, err := s.generateJWT(user.ID)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	user.PasswordHash = ""
	return token, user, nil
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (token string, user *domain.User, err error) {
	if email == "" || password == "" {
		return "", nil, ErrAuthenticationFailed
	}

	user, err = s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed // User not found maps to auth failure
		}
		return "", nil, err
	}

	// bcrypt compares in constant time
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err = s.generateJWT(user.ID)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

// ResolveToken checks signature and expiry, then loads the subject. Every
// failure is reported as ErrInvalidToken.
func (s *authService) ResolveToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	jwt.RegisteredClaims
}

// generateJWT creates a new HS256 token whose subject is the user id.
func (s *authService) generateJWT(userID string) (string, error) {
	issuedAt := nowFunc()
	claims := &jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    "dominion",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
