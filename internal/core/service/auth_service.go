package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ourstore/storefront-api/internal/core/domain"
)

// adminUserID is fixed: the credential set has exactly one entry.
const adminUserID = 1

// AuthService implements login against the single static admin credential
// and signs/verifies the session tokens carried in the auth cookie.
//
// The plaintext password from configuration is hashed once at construction;
// only the hash is retained for the life of the process.
type AuthService struct {
	user         domain.User
	passwordHash []byte
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAuthService(username, password, jwtSecret string, tokenTTL time.Duration) (*AuthService, error) {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		user: domain.User{
			ID:       adminUserID,
			Username: username,
			Role:     domain.RoleAdmin,
		},
		passwordHash: hash,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}, nil
}

// Login verifies the credential pair and returns a signed session token.
// Wrong username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, *domain.User, error) {
	usernameOK := username == s.user.Username
	passwordOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	if !usernameOK || !passwordOK {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken()
	if err != nil {
		return "", nil, err
	}

	user := s.user
	return token, &user, nil
}

// DecodeSession verifies the token signature, algorithm, and expiry. Any
// failure yields nil: a bad token behaves exactly like no token at all.
func (s *AuthService) DecodeSession(tokenString string) *domain.Session {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	userID, _ := claims["user_id"].(float64)
	if username == "" || role == "" {
		return nil
	}

	return &domain.Session{
		UserID:   int(userID),
		Username: username,
		Role:     role,
	}
}

func (s *AuthService) generateToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  s.user.ID,
		"username": s.user.Username,
		"role":     s.user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
