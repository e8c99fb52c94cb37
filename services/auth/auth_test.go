package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"nextstop/models"
	"nextstop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(user *models.User) error {
	r.users[models.NormalizeKey(user.Username)] = user
	return nil
}

func (r *memUserRepo) GetByUsername(username string) (*models.User, error) {
	u, ok := r.users[models.NormalizeKey(username)]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByLogin(login string) (*models.User, error) {
	if u, _ := r.GetByUsername(login); u != nil {
		return u, nil
	}
	return r.GetByEmail(login)
}

func (r *memUserRepo) Update(user *models.User) error {
	r.users[models.NormalizeKey(user.Username)] = user
	return nil
}

func (r *memUserRepo) SetResetCode(email, code string, expiry time.Time) error {
	u, _ := r.GetByEmail(email)
	if u == nil {
		return nil
	}
	u.ResetCode = code
	u.ResetCodeExpiry = expiry
	return nil
}

func (r *memUserRepo) UpdatePassword(email, passwordHash string) error {
	u, _ := r.GetByEmail(email)
	if u == nil {
		return nil
	}
	u.PasswordHash = passwordHash
	u.ResetCode = ""
	u.ResetCodeExpiry = time.Time{}
	return nil
}

type memAdminRepo struct {
	admins map[string]*models.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: make(map[string]*models.Admin)}
}

func (r *memAdminRepo) Create(admin *models.Admin) error {
	r.admins[models.NormalizeKey(admin.Username)] = admin
	return nil
}

func (r *memAdminRepo) GetByUsername(username string) (*models.Admin, error) {
	a, ok := r.admins[models.NormalizeKey(username)]
	if !ok || !a.IsActive {
		return nil, nil
	}
	return a, nil
}

func (r *memAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	for _, a := range r.admins {
		if strings.EqualFold(a.Email, email) && a.IsActive {
			return a, nil
		}
	}
	return nil, nil
}

func (r *memAdminRepo) GetByLogin(login string) (*models.Admin, error) {
	if a, _ := r.GetByUsername(login); a != nil {
		return a, nil
	}
	return r.GetByEmail(login)
}

func (r *memAdminRepo) Update(admin *models.Admin) error {
	r.admins[models.NormalizeKey(admin.Username)] = admin
	return nil
}

func (r *memAdminRepo) SetResetCode(email, code string, expiry time.Time) error {
	a, _ := r.GetByEmail(email)
	if a == nil {
		return nil
	}
	a.ResetCode = code
	a.ResetCodeExpiry = expiry
	return nil
}

func (r *memAdminRepo) UpdatePassword(email, passwordHash string) error {
	a, _ := r.GetByEmail(email)
	if a == nil {
		return nil
	}
	a.PasswordHash = passwordHash
	a.ResetCode = ""
	a.ResetCodeExpiry = time.Time{}
	return nil
}

// recordingMailer captures outgoing mail for assertions.
type recordingMailer struct {
	to      []string
	bodies  []string
	subject []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.to = append(m.to, to)
	m.subject = append(m.subject, subject)
	m.bodies = append(m.bodies, body)
	return nil
}

// recordingCache records token hash set/del calls.
type recordingCache struct {
	set map[string]string
	del []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{set: make(map[string]string)}
}

func (c *recordingCache) Set(ctx context.Context, username, tokenHash string, ttl time.Duration) error {
	c.set[username] = tokenHash
	return nil
}

func (c *recordingCache) Del(ctx context.Context, username string) error {
	c.del = append(c.del, username)
	return nil
}

func newAuthService() (*DefaultAuthService, *recordingMailer, *recordingCache) {
	mailer := &recordingMailer{}
	cache := newRecordingCache()
	svc := &DefaultAuthService{
		Users:  newMemUserRepo(),
		Admins: newMemAdminRepo(),
		Mailer: mailer,
		Cache:  cache,
	}
	return svc, mailer, cache
}

func registerReq() RegisterUserRequest {
	return RegisterUserRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
		FirstName:       "Alice",
		MobileNo:        "9876543210",
	}
}

func TestRegisterAndLoginUser(t *testing.T) {
	svc, _, cache := newAuthService()

	usr, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, usr.Role)
	// The stored hash must never be the plaintext.
	assert.NotEqual(t, "s3cret", usr.PasswordHash)

	resp, err := svc.LoginUser("alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, models.RoleUser, resp.Role)
	assert.Equal(t, utils.HashToken(resp.Token), cache.set["alice"])

	claims, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RoleUser, claims.Role)

	// Login by email works too.
	_, err = svc.LoginUser("alice@example.com", "s3cret")
	require.NoError(t, err)
}

func TestLoginUserBadCredentials(t *testing.T) {
	svc, _, _ := newAuthService()
	_, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)

	_, err = svc.LoginUser("alice", "wrong")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeUnauthorized, svcErr.Code)

	_, err = svc.LoginUser("nobody", "s3cret")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeUnauthorized, svcErr.Code)
}

func TestRegisterUserValidation(t *testing.T) {
	svc, _, _ := newAuthService()
	_, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)

	mismatch := registerReq()
	mismatch.Username = "bob"
	mismatch.Email = "bob@example.com"
	mismatch.ConfirmPassword = "other"
	_, err = svc.RegisterUser(mismatch)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)

	dupUsername := registerReq()
	dupUsername.Email = "other@example.com"
	_, err = svc.RegisterUser(dupUsername)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeConflict, svcErr.Code)

	dupEmail := registerReq()
	dupEmail.Username = "alice2"
	_, err = svc.RegisterUser(dupEmail)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeConflict, svcErr.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, mailer, cache := newAuthService()
	_, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.ForgotUserPassword("alice@example.com"))
	require.Len(t, mailer.to, 1)
	assert.Equal(t, "alice@example.com", mailer.to[0])

	usr, err := svc.Users.GetByEmail("alice@example.com")
	require.NoError(t, err)
	code := usr.ResetCode
	require.Len(t, code, 6)

	require.NoError(t, svc.ResetUserPassword("alice@example.com", code, "newpass"))
	assert.Contains(t, cache.del, "alice")

	// Old password is rejected, new one works, code is single-use.
	_, err = svc.LoginUser("alice", "s3cret")
	require.Error(t, err)
	_, err = svc.LoginUser("alice", "newpass")
	require.NoError(t, err)

	err = svc.ResetUserPassword("alice@example.com", code, "again")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestPasswordResetExpiredCode(t *testing.T) {
	svc, _, _ := newAuthService()
	_, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.ForgotUserPassword("alice@example.com"))
	usr, err := svc.Users.GetByEmail("alice@example.com")
	require.NoError(t, err)
	code := usr.ResetCode

	// Advance the clock past the reset-code TTL.
	timeNow = func() time.Time { return time.Now().Add(utils.ResetCodeTTL + time.Minute) }
	defer func() { timeNow = time.Now }()

	err = svc.ResetUserPassword("alice@example.com", code, "newpass")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestUpdateUserProfile(t *testing.T) {
	svc, _, _ := newAuthService()
	_, err := svc.RegisterUser(registerReq())
	require.NoError(t, err)

	updated, err := svc.UpdateUserProfile("alice", models.User{Address: "12 Main St", LastName: "Smith"})
	require.NoError(t, err)
	assert.Equal(t, "12 Main St", updated.Address)
	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, "Alice", updated.FirstName)
}

func TestRegisterAndLoginAdmin(t *testing.T) {
	svc, _, _ := newAuthService()

	adm, err := svc.RegisterAdmin(RegisterAdminRequest{
		Username:        "root",
		Email:           "root@example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, adm.Role)
	assert.True(t, adm.IsActive)

	resp, err := svc.LoginAdmin("root", "longenough")
	require.NoError(t, err)
	claims, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestRegisterAdminShortPassword(t *testing.T) {
	svc, _, _ := newAuthService()

	_, err := svc.RegisterAdmin(RegisterAdminRequest{
		Username:        "root",
		Email:           "root@example.com",
		Password:        "abc",
		ConfirmPassword: "abc",
	})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidRequest, svcErr.Code)
}

func TestUpdateAdminProfileEmailUniqueness(t *testing.T) {
	svc, _, _ := newAuthService()

	for _, req := range []RegisterAdminRequest{
		{Username: "root", Email: "root@example.com", Password: "longenough", ConfirmPassword: "longenough"},
		{Username: "ops", Email: "ops@example.com", Password: "longenough", ConfirmPassword: "longenough"},
	} {
		_, err := svc.RegisterAdmin(req)
		require.NoError(t, err)
	}

	_, err := svc.UpdateAdminProfile("ops", models.Admin{Email: "root@example.com"})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeConflict, svcErr.Code)

	updated, err := svc.UpdateAdminProfile("ops", models.Admin{Email: "ops2@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ops2@example.com", updated.Email)
}
