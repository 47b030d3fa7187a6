package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alibek123/DProject/entity"
	"github.com/alibek123/DProject/repository"
	"github.com/alibek123/DProject/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns register/login business logic.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(email, password, firstName, lastName string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      "customer",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and mints a JWT. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
