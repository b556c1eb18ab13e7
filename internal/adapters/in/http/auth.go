package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 2 * time.Hour

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")
	ErrInvalidToken = errors.New("invalid token")
)

// Role is the kind of account a caller signed in with.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCustomer   Role = "customer"
	RolePartner    Role = "partner"
	RoleRestaurant Role = "restaurant"
)

// ParseRole accepts the four known roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleCustomer, RolePartner, RoleRestaurant:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidToken, s)
	}
}

// Principal is the verified identity behind a request.
// ID is the customer, partner or restaurant the caller acts as; it is zero for admins.
type Principal struct {
	Role Role
	ID   kernel.ID
	Name string
}

// Authenticator verifies bearer credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

type tokenClaims struct {
	Role         string `json:"role"`
	UserID       int64  `json:"user_id,omitempty"`
	PartnerID    int64  `json:"partner_id,omitempty"`
	RestaurantID int64  `json:"restaurant_id,omitempty"`
	Name         string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuthenticator verifies HS256 tokens carrying the role and the id claim of that role:
// user_id for customers, partner_id for partners, restaurant_id for restaurants.
type JWTAuthenticator struct {
	secret []byte
	now    func() time.Time
}

func NewJWTAuthenticator(secret string) (*JWTAuthenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTAuthenticator{secret: []byte(secret), now: time.Now}, nil
}

func (a *JWTAuthenticator) Authenticate(_ context.Context, token string) (Principal, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	role, err := ParseRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}

	principal := Principal{Role: role, Name: claims.Name}
	if role == RoleAdmin {
		return principal, nil
	}

	raw := map[Role]int64{
		RoleCustomer:   claims.UserID,
		RolePartner:    claims.PartnerID,
		RoleRestaurant: claims.RestaurantID,
	}[role]
	if principal.ID, err = kernel.NewID(raw); err != nil {
		return Principal{}, fmt.Errorf("%w: %s token without identity: %w", ErrInvalidToken, role, err)
	}

	return principal, nil
}

// IssueToken signs a token for principal. Account sign-in lives outside this
// service; the token subcommand uses this to mint development credentials.
func (a *JWTAuthenticator) IssueToken(principal Principal) (string, error) {
	now := a.now()
	claims := tokenClaims{
		Role: string(principal.Role),
		Name: principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	switch principal.Role {
	case RoleCustomer:
		claims.UserID = principal.ID.Int64()
	case RolePartner:
		claims.PartnerID = principal.ID.Int64()
	case RoleRestaurant:
		claims.RestaurantID = principal.ID.Int64()
	case RoleAdmin:
	default:
		return "", fmt.Errorf("unknown role %q", principal.Role)
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

type principalKey struct{}

func withPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller attached by Authenticate.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Authenticate attaches the bearer token's principal to the request context.
// Requests without a usable token pass through anonymously; operations that
// declare a security requirement are then rejected by the request validator.
func Authenticate(auth Authenticator, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			principal, err := auth.Authenticate(ctx, strings.TrimSpace(token))
			if err != nil {
				logger.DebugContext(ctx, "bearer token rejected", "error", err)
				return next(c)
			}

			c.SetRequest(c.Request().WithContext(withPrincipal(ctx, principal)))
			return next(c)
		}
	}
}

// requireRole returns the caller when it signed in with one of roles.
func requireRole(c echo.Context, roles ...Role) (Principal, error) {
	principal, ok := PrincipalFromContext(c.Request().Context())
	if !ok {
		return Principal{}, ErrUnauthorized
	}
	for _, role := range roles {
		if principal.Role == role {
			return principal, nil
		}
	}
	return Principal{}, fmt.Errorf("%w for role %s", ErrForbidden, principal.Role)
}
