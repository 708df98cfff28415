package service

import (
	"context"
	"time"

	"auth-service/internal/config/env"
	"auth-service/internal/constant"
	"auth-service/internal/utils/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Claims is the identity token payload. Subject holds the user id and ID a
// per-token jti; Csrf is the double-submit value echoed in X-CSRF-Token.
type Claims struct {
	Type string `json:"type"`
	Csrf string `json:"csrf,omitempty"`
	jwt.RegisteredClaims
}

// AccessToken is a signed identity token plus what the cookies need.
type AccessToken struct {
	Value     string
	CsrfToken string
	ExpiresAt time.Time
}

type JwtService struct {
	log    *logrus.Logger
	config *env.Config
	tracer trace.Tracer
	method jwt.SigningMethod
	now    func() time.Time
}

func NewJwtService(log *logrus.Logger, config *env.Config) *JwtService {
	return &JwtService{
		log:    log,
		config: config,
		tracer: otel.Tracer("JwtService"),
		method: jwt.SigningMethodHS256,
		now:    time.Now,
	}
}

// GenerateAccessToken signs a token whose subject is userID.
func (j *JwtService) GenerateAccessToken(ctx context.Context, userID uuid.UUID) (*AccessToken, error) {
	_, span := j.tracer.Start(ctx, "GenerateAccessToken")
	defer span.End()

	now := j.now()
	expiresAt := now.Add(j.config.GetAccessTokenExpiration())
	claims := Claims{
		Type: string(constant.TokenTypeAccess),
		Csrf: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(j.method, claims).SignedString([]byte(j.config.GetAccessSecret()))
	if err != nil {
		return nil, err
	}

	return &AccessToken{Value: signed, CsrfToken: claims.Csrf, ExpiresAt: expiresAt}, nil
}

// KeyFunc resolves the verification key, accepting HMAC-signed tokens only.
func (j *JwtService) KeyFunc() jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			j.log.WithField("alg", token.Header["alg"]).Warn("Token method not match")
			return nil, apperrors.ErrUnexpectedSigning
		}
		return []byte(j.config.GetAccessSecret()), nil
	}
}

// ValidateAccessToken verifies signature, expiry and token type.
func (j *JwtService) ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	spanCtx, span := j.tracer.Start(ctx, "ValidateAccessToken")
	defer span.End()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, j.KeyFunc(), jwt.WithTimeFunc(j.now))
	if err != nil {
		j.log.WithContext(spanCtx).WithError(err).Debug("Failed to parse with claims")
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if err := CheckClaims(claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// CheckClaims rejects tokens that are not access tokens or lack a subject.
func CheckClaims(claims *Claims) error {
	if claims.Type != string(constant.TokenTypeAccess) {
		return apperrors.ErrInvalidTokenType
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return apperrors.ErrInvalidToken
	}
	return nil
}
