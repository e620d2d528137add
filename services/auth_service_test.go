package services_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"store-api/models"
	"store-api/sender"
	"store-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ---- mock reset repository ----

type mockResetRepo struct {
	resets []models.PasswordReset
}

func (m *mockResetRepo) FindByEmailAndToken(_ context.Context, email, token string) (*models.PasswordReset, error) {
	for i := range m.resets {
		if m.resets[i].Email == email && m.resets[i].Token == token {
			return &m.resets[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResetRepo) Create(_ context.Context, reset *models.PasswordReset) error {
	m.resets = append(m.resets, *reset)
	return nil
}

func (m *mockResetRepo) DeleteByEmail(_ context.Context, email string) error {
	kept := m.resets[:0]
	for _, r := range m.resets {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	m.resets = kept
	return nil
}

func (m *mockResetRepo) Delete(_ context.Context, reset *models.PasswordReset) error {
	return m.DeleteByEmail(context.Background(), reset.Email)
}

// ---- mock email sender ----

type mockEmailSender struct {
	sent    []string // recipient addresses
	lastMsg string
	err     error
}

func (m *mockEmailSender) SendEmail(_ context.Context, to, _, _ string, htmlBody string) (sender.SendResult, error) {
	if m.err != nil {
		return sender.SendResult{}, m.err
	}
	m.sent = append(m.sent, to)
	m.lastMsg = htmlBody
	return sender.SendResult{MessageID: "test"}, nil
}

// ---- fixtures ----

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func authFixtures(t *testing.T) (*mockUserRepo, *mockResetRepo, *mockEmailSender, *services.AuthService) {
	t.Setenv("JWT_SECRET", "test-secret")
	users := &mockUserRepo{users: map[uint]*models.User{
		1: {
			ID:        1,
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Password:  hashPassword(t, "correct horse"),
			Role:      "client",
		},
	}}
	resets := &mockResetRepo{}
	email := &mockEmailSender{}
	return users, resets, email, services.NewAuthService(users, resets, email)
}

// ---- register / login ----

func TestRegister_Success(t *testing.T) {
	users, _, _, svc := authFixtures(t)

	resp, svcErr := svc.Register(context.Background(), &services.RegisterRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Address:   "1 Navy Yard",
		Password:  "super secret",
	})

	assert.Nil(t, svcErr)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "grace@example.com", resp.User.Email)
	assert.Equal(t, "client", resp.User.Role)

	stored, err := users.FindByEmail(context.Background(), "grace@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "super secret", stored.Password, "password must be stored hashed")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, _, _, svc := authFixtures(t)

	_, svcErr := svc.Register(context.Background(), &services.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Address:   "12 St James Square",
		Password:  "super secret",
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
	assert.Equal(t, "Email", svcErr.Field)
	assert.Equal(t, "This Email address is already used", svcErr.Message)
}

func TestLogin_Success(t *testing.T) {
	_, _, _, svc := authFixtures(t)

	resp, svcErr := svc.Login(context.Background(), &services.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})

	assert.Nil(t, svcErr)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, uint(1), resp.User.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, _, _, svc := authFixtures(t)

	_, svcErr := svc.Login(context.Background(), &services.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, "Email", svcErr.Field)
	assert.Equal(t, "Invalid Email", svcErr.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, _, _, svc := authFixtures(t)

	_, svcErr := svc.Login(context.Background(), &services.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong horse",
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, "Password", svcErr.Field)
	assert.Equal(t, "Invalid Password", svcErr.Message)
}

// ---- password reset ----

func TestForgotPassword_IssuesTokenAndSendsEmail(t *testing.T) {
	_, resets, email, svc := authFixtures(t)

	svcErr := svc.ForgotPassword(context.Background(), "ada@example.com")
	assert.Nil(t, svcErr)

	require.Len(t, resets.resets, 1)
	token := resets.resets[0].Token
	assert.Len(t, strings.Split(token, "-"), 10, "token is two joined UUIDs")

	require.Len(t, email.sent, 1)
	assert.Equal(t, "ada@example.com", email.sent[0])
	assert.Contains(t, email.lastMsg, token)
}

func TestForgotPassword_ReplacesPendingToken(t *testing.T) {
	_, resets, _, svc := authFixtures(t)
	resets.resets = []models.PasswordReset{{Email: "ada@example.com", Token: "old-token"}}

	assert.Nil(t, svc.ForgotPassword(context.Background(), "ada@example.com"))
	require.Len(t, resets.resets, 1)
	assert.NotEqual(t, "old-token", resets.resets[0].Token)
}

func TestForgotPassword_SendFailure(t *testing.T) {
	_, _, email, svc := authFixtures(t)
	email.err = errors.New("smtp unreachable")

	svcErr := svc.ForgotPassword(context.Background(), "ada@example.com")
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
}

func TestResetPassword_Success(t *testing.T) {
	users, resets, _, svc := authFixtures(t)
	resets.resets = []models.PasswordReset{{Email: "ada@example.com", Token: "tok"}}

	svcErr := svc.ResetPassword(context.Background(), "ada@example.com", "tok", "brand new pass")
	assert.Nil(t, svcErr)
	assert.Empty(t, resets.resets, "token is single use")

	user, err := users.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("brand new pass")))
}

func TestResetPassword_InvalidToken(t *testing.T) {
	_, _, _, svc := authFixtures(t)

	svcErr := svc.ResetPassword(context.Background(), "ada@example.com", "bogus", "brand new pass")
	assert.NotNil(t, svcErr)
	assert.Equal(t, "Token", svcErr.Field)
	assert.Equal(t, "Invalid Token", svcErr.Message)
}

// ---- profile ----

func TestGetProfile_RedactsNothingItShouldNot(t *testing.T) {
	_, _, _, svc := authFixtures(t)

	profile, svcErr := svc.GetProfile(context.Background(), 1)
	assert.Nil(t, svcErr)
	assert.Equal(t, "ada@example.com", profile.Email)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	_, _, _, svc := authFixtures(t)

	_, svcErr := svc.GetProfile(context.Background(), 99)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	users, _, _, svc := authFixtures(t)

	profile, svcErr := svc.UpdateProfile(context.Background(), 1, &services.UpdateProfileRequest{
		FirstName: "Ada",
		LastName:  "King",
		Email:     "  ada.king@example.com ",
		Address:   "Ockham Park",
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, "King", profile.LastName)
	assert.Equal(t, "ada.king@example.com", profile.Email)
	assert.Equal(t, "ada.king@example.com", users.users[1].Email)
}

func TestUpdatePassword_WrongOldPassword(t *testing.T) {
	_, _, _, svc := authFixtures(t)

	svcErr := svc.UpdatePassword(context.Background(), 1, &services.UpdatePasswordRequest{
		OldPassword: "not it",
		NewPassword: "brand new pass",
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, "OldPassword", svcErr.Field)
	assert.Equal(t, "Invalid Old Password", svcErr.Message)
}

func TestUpdatePassword_Success(t *testing.T) {
	users, _, _, svc := authFixtures(t)

	svcErr := svc.UpdatePassword(context.Background(), 1, &services.UpdatePasswordRequest{
		OldPassword: "correct horse",
		NewPassword: "brand new pass",
	})

	assert.Nil(t, svcErr)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.users[1].Password), []byte("brand new pass")))
}
