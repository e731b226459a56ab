package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/config"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the identity carried by a validated token
type Claims struct {
	UserID   string
	TenantID string
}

// Provider issues and validates bearer tokens for the static admin
// credentials held in configuration.
type Provider interface {
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

type staticProvider struct {
	cfg config.AuthConfig
}

func NewProvider(cfg *config.Configuration) Provider {
	return &staticProvider{cfg: cfg.Auth}
}

func (p *staticProvider) Login(ctx context.Context, username, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(p.cfg.AdminUsername)) != 1 {
		return "", ierr.NewError("invalid credentials").
			WithHint("Invalid username or password").
			Mark(ierr.ErrPermissionDenied)
	}

	if !p.passwordMatches(password) {
		return "", ierr.NewError("invalid credentials").
			WithHint("Invalid username or password").
			Mark(ierr.ErrPermissionDenied)
	}

	return p.generateToken(p.cfg.AdminUsername, types.DefaultTenantID)
}

// passwordMatches accepts either a bcrypt hash or a plain value in config.
// Plain comparison is constant-time.
func (p *staticProvider) passwordMatches(password string) bool {
	stored := p.cfg.AdminPassword
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func (p *staticProvider) generateToken(userID, tenantID string) (string, error) {
	expiryHours := p.cfg.TokenExpiryHours
	if expiryHours <= 0 {
		expiryHours = 24
	}
	expiration := time.Now().Add(time.Duration(expiryHours) * time.Hour)

	claims := jwt.MapClaims{
		"user_id":   userID,
		"tenant_id": tenantID,
		"exp":       expiration.Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(p.cfg.Secret))
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}
	return signed, nil
}

func (p *staticProvider) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(p.cfg.Secret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, userOk := claims["user_id"].(string)
	if !userOk {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrPermissionDenied)
	}

	tenantID, tenantOk := claims["tenant_id"].(string)
	if !tenantOk {
		tenantID = types.DefaultTenantID
	}

	return &Claims{UserID: userID, TenantID: tenantID}, nil
}
