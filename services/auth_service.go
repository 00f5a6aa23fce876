package services

import (
	"errors"
	"time"

	"bantora-api/config"
	"bantora-api/models"
	"bantora-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByPhone(phone string) (*models.User, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	countryRepo repositories.CountryRepository
}

func NewAuthService(userRepo repositories.UserRepository, countryRepo repositories.CountryRepository) AuthService {
	return &authService{userRepo: userRepo, countryRepo: countryRepo}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	// Check if user already exists
	existingUser, err := s.userRepo.GetByPhone(req.PhoneNumber)
	if err == nil && existingUser != nil && existingUser.ID != uuid.Nil {
		return nil, models.ErrorConflict{Message: "user already exists"}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	country, err := s.countryRepo.GetByCode(req.CountryCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorInvalidArgument{Message: "unknown country code"}
		}
		return nil, err
	}
	if !country.RegistrationEnabled {
		return nil, models.ErrorInvalidArgument{Message: "registration is not enabled for this country"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          uuid.New(),
		PhoneNumber: req.PhoneNumber,
		Password:    string(hashedPassword),
		DisplayName: req.DisplayName,
		CountryCode: req.CountryCode,
	}

	if err := s.userRepo.Create(user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, models.ErrorConflict{Message: "user already exists"}
		}
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByPhone(req.PhoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserByPhone(phone string) (*models.User, error) {
	user, err := s.userRepo.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"phone_number": user.PhoneNumber,
		"exp":          now.Add(config.JWTExpiration).Unix(),
		"iat":          now.Unix(),
		"nbf":          now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
