package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/golang-jwt/jwt"
	"gorm.io/gorm"
)

// AuthStore is the persisted session: the backend-issued bearer token, the
// user snapshot echoed at login, and the logged-in flag. It implements the
// API client's TokenSource and is wired as its unauthorized hook, so a 401
// anywhere clears the session globally.
type AuthStore struct {
	db *gorm.DB
	mu sync.Mutex

	token      string
	user       *models.User
	isLoggedIn bool
}

// NewAuthStore creates the auth store and loads the persisted session once,
// the way the browser original reads localStorage at startup.
func NewAuthStore(db *gorm.DB) *AuthStore {
	s := &AuthStore{db: db}

	var session models.Session
	if err := db.First(&session, 1).Error; err == nil && session.IsLoggedIn {
		s.token = session.Token
		s.isLoggedIn = true
		if session.UserJSON != "" {
			var user models.User
			if err := json.Unmarshal([]byte(session.UserJSON), &user); err == nil {
				s.user = &user
			}
		}
	}
	return s
}

// Login stores the token and user and flips the logged-in flag
func (s *AuthStore) Login(token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user
	s.isLoggedIn = true
	return s.persist()
}

// Logout clears all session state
func (s *AuthStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	s.isLoggedIn = false
	return s.persist()
}

// ClearOnUnauthorized is registered with the API client; any upstream 401
// wipes the session so the next guarded view redirects to login.
func (s *AuthStore) ClearOnUnauthorized() {
	if err := s.Logout(); err != nil {
		utils.LogError("Failed to clear session after 401: %v", err)
	}
}

// Token returns the bearer token to attach, or "" when logged out. A token
// past its exp claim counts as logged out before any request carries it; the
// signature itself is the backend's to verify, not ours.
func (s *AuthStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isLoggedIn || s.token == "" {
		return ""
	}
	if tokenExpired(s.token) {
		s.token = ""
		s.user = nil
		s.isLoggedIn = false
		if err := s.persist(); err != nil {
			utils.LogError("Failed to clear expired session: %v", err)
		}
		return ""
	}
	return s.token
}

// IsLoggedIn reports the advisory logged-in flag used for route gating
func (s *AuthStore) IsLoggedIn() bool {
	return s.Token() != ""
}

// User returns the stored user snapshot, if any
func (s *AuthStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// persist writes the session row; callers hold the lock
func (s *AuthStore) persist() error {
	session := models.Session{
		ID:         1,
		Token:      s.token,
		IsLoggedIn: s.isLoggedIn,
	}
	if s.user != nil {
		if raw, err := json.Marshal(s.user); err == nil {
			session.UserJSON = string(raw)
		}
	}
	if err := s.db.Save(&session).Error; err != nil {
		return utils.WrapError(err, "failed to persist session")
	}
	return nil
}

// tokenExpired inspects the exp claim without verifying the signature
func tokenExpired(token string) bool {
	parser := jwt.Parser{}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque tokens carry no readable expiry; let the backend decide.
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}
