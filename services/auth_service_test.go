package services

import (
	"testing"

	"bantora-api/models"
	"bantora-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*gorm.DB, AuthService) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db), repositories.NewCountryRepository(db))
	return db, svc
}

func TestRegisterAndLogin(t *testing.T) {
	db, svc := newAuthFixture(t)
	seedCountry(t, db, "KE", true)

	registered, err := svc.Register(models.RegisterRequest{
		PhoneNumber: "+254700000001",
		Password:    "hunter22",
		DisplayName: "Wanjiru",
		CountryCode: "KE",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "+254700000001", registered.User.PhoneNumber)
	assert.NotEqual(t, "hunter22", registered.User.Password)

	loggedIn, err := svc.Login(models.LoginRequest{PhoneNumber: "+254700000001", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	db, svc := newAuthFixture(t)
	seedCountry(t, db, "KE", true)

	req := models.RegisterRequest{PhoneNumber: "+254700000001", Password: "hunter22", CountryCode: "KE"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestRegisterUnknownCountry(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Register(models.RegisterRequest{PhoneNumber: "+254700000001", Password: "hunter22", CountryCode: "XX"})

	require.Error(t, err)
	assert.IsType(t, models.ErrorInvalidArgument{}, err)
}

func TestRegisterCountryClosedForRegistration(t *testing.T) {
	db, svc := newAuthFixture(t)
	seedCountry(t, db, "NK", false)

	_, err := svc.Register(models.RegisterRequest{PhoneNumber: "+254700000001", Password: "hunter22", CountryCode: "NK"})

	require.Error(t, err)
	assert.IsType(t, models.ErrorInvalidArgument{}, err)
}

func TestLoginWrongPassword(t *testing.T) {
	db, svc := newAuthFixture(t)
	seedCountry(t, db, "KE", true)

	_, err := svc.Register(models.RegisterRequest{PhoneNumber: "+254700000001", Password: "hunter22", CountryCode: "KE"})
	require.NoError(t, err)

	_, err = svc.Login(models.LoginRequest{PhoneNumber: "+254700000001", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestLoginUnknownUser(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(models.LoginRequest{PhoneNumber: "+254799999999", Password: "whatever"})

	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}
