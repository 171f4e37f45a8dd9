package auth

import (
	"errors"
	"strconv"
	"time"

	"zhanyixia/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every parse failure: bad signature, wrong method or
// issuer, expiry, malformed input. Callers only need the pass/fail split.
var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the identity an access token carries. The role claim is a
// hint for the client UI; admin routes re-check the stored role on every
// request.
type AccessClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueTokens signs a fresh access/refresh pair for one account. The refresh
// token carries only the account id in its subject.
func IssueTokens(cfg *config.JWTConfig, userID uint, email, role string) (access, refresh string, err error) {
	now := time.Now()
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessExpiry)),
		},
	}).SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.RefreshExpiry)),
	}).SignedString([]byte(cfg.RefreshSecret))
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseAccessToken verifies signature, signing method, issuer and expiry.
func ParseAccessToken(cfg *config.JWTConfig, raw string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &AccessClaims{},
		func(*jwt.Token) (interface{}, error) { return []byte(cfg.AccessSecret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseRefreshToken returns the account id a refresh token was issued for.
func ParseRefreshToken(cfg *config.JWTConfig, raw string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(cfg.RefreshSecret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
