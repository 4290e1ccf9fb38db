package auth

import (
	"context"
	"sync"
	"testing"

	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepository struct {
	mu    sync.Mutex
	seq   int
	users map[string]*models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*models.User)}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := "user-" + string(rune('0'+r.seq))
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

type memorySessionService struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newMemorySessionService() *memorySessionService {
	return &memorySessionService{sessions: make(map[string]*models.Session)}
}

func (s *memorySessionService) CreateSession(_ context.Context, sessionID string, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	s.sessions[sessionID] = &clone
	return nil
}

func (s *memorySessionService) GetSession(_ context.Context, sessionID string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	clone := *session
	return &clone, nil
}

func (s *memorySessionService) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func newTestAuthUsecase(repo *memoryUserRepository, sessions *memorySessionService) AuthUsecase {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 1,
		},
	}
	return NewAuthUsecase(repo, sessions, internalConfig)
}

func TestRegister(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := newTestAuthUsecase(repo, newMemorySessionService())

	registered, err := uc.Register(context.Background(), &requests.Register{
		Name:     "Front Desk",
		Email:    "Desk@Clinic.Example ",
		Password: "s3cret-password",
		Role:     constvars.RoleReceptionist,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "desk@clinic.example", registered.Email, "email should be normalized before storage")
	assert.Equal(t, constvars.RoleReceptionist, registered.Role)

	stored, err := repo.FindByEmail(context.Background(), "desk@clinic.example")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-password", stored.Password, "password must never be stored in clear")
	assert.True(t, utils.CheckPasswordHash("s3cret-password", stored.Password))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := newTestAuthUsecase(repo, newMemorySessionService())

	_, err := uc.Register(context.Background(), &requests.Register{
		Name:     "Front Desk",
		Email:    "desk@clinic.example",
		Password: "s3cret-password",
		Role:     constvars.RoleReceptionist,
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), &requests.Register{
		Name:     "Other Desk",
		Email:    "DESK@clinic.example",
		Password: "another-password",
		Role:     constvars.RoleDentist,
	})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestRegister_UnknownRole(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := newTestAuthUsecase(repo, newMemorySessionService())

	_, err := uc.Register(context.Background(), &requests.Register{
		Name:     "Front Desk",
		Email:    "desk@clinic.example",
		Password: "s3cret-password",
		Role:     "janitor",
	})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestLogin(t *testing.T) {
	repo := newMemoryUserRepository()
	sessions := newMemorySessionService()
	uc := newTestAuthUsecase(repo, sessions)

	_, err := uc.Register(context.Background(), &requests.Register{
		Name:     "Dr. Smith",
		Email:    "smith@clinic.example",
		Password: "s3cret-password",
		Role:     constvars.RoleDentist,
	})
	require.NoError(t, err)

	t.Run("Valid Credentials", func(t *testing.T) {
		result, err := uc.Login(context.Background(), &requests.Login{
			Email:    "smith@clinic.example",
			Password: "s3cret-password",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleDentist, result.Role)
		assert.Equal(t, "Dr. Smith", result.Name)

		sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
		require.NoError(t, err, "issued token should parse with the signing secret")

		session, err := sessions.GetSession(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleDentist, session.Role)
		assert.Equal(t, "smith@clinic.example", session.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "smith@clinic.example",
			Password: "wrong-password",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "nobody@clinic.example",
			Password: "s3cret-password",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode, "unknown email and wrong password should be indistinguishable")
	})
}

func TestLogout(t *testing.T) {
	repo := newMemoryUserRepository()
	sessions := newMemorySessionService()
	uc := newTestAuthUsecase(repo, sessions)

	_, err := uc.Register(context.Background(), &requests.Register{
		Name:     "Dr. Smith",
		Email:    "smith@clinic.example",
		Password: "s3cret-password",
		Role:     constvars.RoleDentist,
	})
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), &requests.Login{
		Email:    "smith@clinic.example",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), sessionID))

	_, err = sessions.GetSession(context.Background(), sessionID)
	require.Error(t, err, "the session should be gone after logout")
}
