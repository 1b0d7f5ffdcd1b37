package tokenapi

import (
	"time"
	"unicode/utf8"

	jwt "github.com/dgrijalva/jwt-go"

	console "github.com/fmitra/bankconsole"
)

const (
	shortTokenLength = 24
	noToken          = "—"
)

// tokenView describes the stored Credentials for display.
type tokenView struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	RefreshValue string      `json:"refreshTokenValue"`
	Claims       *claimsView `json:"claims,omitempty"`
	BaseURL      string      `json:"baseUrl"`
}

// claimsView holds the unverified claims of a JWT access token.
type claimsView struct {
	Subject   string     `json:"subject,omitempty"`
	Issuer    string     `json:"issuer,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func newTokenView(creds console.Credentials, baseURL string) *tokenView {
	return &tokenView{
		AccessToken:  shorten(creds.AccessToken),
		RefreshToken: shorten(creds.RefreshToken),
		RefreshValue: creds.RefreshToken,
		Claims:       parseClaims(creds.AccessToken),
		BaseURL:      baseURL,
	}
}

// shorten keeps the first 24 characters of a token.
func shorten(token string) string {
	if token == "" {
		return noToken
	}
	if utf8.RuneCountInString(token) <= shortTokenLength {
		return token + "…"
	}
	return string([]rune(token)[:shortTokenLength]) + "…"
}

// parseClaims reads a token's claims without verifying its signature.
// Tokens that are not JWTs have no claims.
func parseClaims(token string) *claimsView {
	if token == "" {
		return nil
	}

	claims := jwt.StandardClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(token, &claims)
	if err != nil {
		return nil
	}

	view := claimsView{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != 0 {
		expiresAt := time.Unix(claims.ExpiresAt, 0).UTC()
		view.ExpiresAt = &expiresAt
	}
	return &view
}
