package service

import (
	"errors"
	"strings"
	"time"

	"github.com/safar/pharmacy-store/internal/models"
	"github.com/safar/pharmacy-store/internal/storage"
)

// Auth checks credentials against the two staff tables. There is no ambient
// logged-in state: Login hands the caller a Session value and the caller
// decides how long to hold it.
type Auth struct {
	pharmacists UserStore
	managers    UserStore
}

func NewAuth(pharmacists, managers UserStore) *Auth {
	return &Auth{pharmacists: pharmacists, managers: managers}
}

type Session struct {
	User       models.User
	LoggedInAt time.Time
}

func (s *Session) IsPharmacist() bool {
	return s.User.Role == models.RolePharmacist
}

func (s *Session) IsManager() bool {
	return s.User.Role == models.RoleManager
}

func (s *Session) DisplayName() string {
	return strings.TrimSpace(s.User.FirstName + " " + s.User.LastName)
}

// Login tries the pharmacist table first, then the manager table. A
// credential pair present in both resolves to the pharmacist; that
// precedence is inherited behavior, not a guarantee worth relying on.
func (a *Auth) Login(login, password string) (*Session, error) {
	if login == "" || password == "" {
		return nil, ErrLoginRequired
	}

	for _, users := range []UserStore{a.pharmacists, a.managers} {
		user, err := users.Authenticate(login, password)
		if err == nil {
			return &Session{User: *user, LoggedInAt: time.Now()}, nil
		}
		if !errors.Is(err, storage.ErrUserNotFound) {
			return nil, err
		}
	}

	return nil, ErrInvalidCredentials
}

func (a *Auth) RegisterPharmacist(lastName, firstName, login, password string) (*models.User, error) {
	return register(a.pharmacists, lastName, firstName, login, password)
}

func (a *Auth) RegisterManager(lastName, firstName, login, password string) (*models.User, error) {
	return register(a.managers, lastName, firstName, login, password)
}

func register(users UserStore, lastName, firstName, login, password string) (*models.User, error) {
	if strings.TrimSpace(login) == "" || password == "" {
		return nil, ErrLoginRequired
	}
	if strings.TrimSpace(lastName) == "" || strings.TrimSpace(firstName) == "" {
		return nil, ErrNameRequired
	}

	user := &models.User{
		LastName:  lastName,
		FirstName: firstName,
		Login:     login,
		Password:  password,
	}
	if err := users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}
