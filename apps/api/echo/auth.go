package echoapi

import (
	"github.com/benbjohnson/clock"
	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/portal"
)

const (
	contextTokenKey   = "sessionToken"
	contextSessionKey = "session"
	tokenAudience     = "HappyClass"
)

// newJWTConfig is the JWT auth middleware config.
func newJWTConfig(secretKey string) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(secretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(Claims),
	}
}

// Claims represents the session claims transmitted via a JWT.
// The subject is the session ID; who is logged in lives in the session itself.
type Claims struct {
	jwt.StandardClaims
}

// GetSessionClaims returns the claims of sess, issued at clk's current time.
func GetSessionClaims(sess portal.Session, conf *core.Config, clk clock.Clock) *Claims {
	now := clk.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   sess.ID,
			Audience:  tokenAudience,
			ExpiresAt: now.Add(conf.Server.TokenExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
	}
}

// GenerateToken generates a signed JWT token string representing the session Claims.
func GenerateToken(claims *Claims, secretKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.GetSigningMethod(middleware.AlgorithmHS256), claims)

	ss, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", errTokenSigningFailed
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextSession(ctx echo.Context) (portal.Session, error) {
	if sess, ok := ctx.Get(contextSessionKey).(portal.Session); ok {
		return sess, nil
	}
	return portal.Session{}, errUnauthorized
}

func getContextPortal(ctx echo.Context) (*portal.Portal, error) {
	sess, err := getContextSession(ctx)
	if err != nil {
		return nil, err
	}
	return sess.Portal, nil
}

// sessionMiddleware loads the portal of the token's session. It must run after the JWT middleware.
func sessionMiddleware(svc *portal.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			sess, err := svc.Get(claims.Subject)
			if err != nil {
				if errors.Cause(err) == core.ErrNotFound {
					return errSessionExpired
				}
				return errors.Wrap(err, "getting session")
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}
