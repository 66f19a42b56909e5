// Package oauth implements the Dropbox OAuth2 authorization code flow: building the authorization URL, exchanging
// the returned code for a token and refreshing a token.  The helpers are stateless; every call receives the app
// credentials it needs.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/oauth2"

	"github.com/c2fo/dropbox"
	"github.com/c2fo/dropbox/options"
	"github.com/c2fo/dropbox/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Token is a token endpoint response.  Expiry is computed from ExpiresIn when the endpoint returned one.
type Token struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	Expiry       time.Time
	ExpiresIn    int64
	Scope        string
	AccountID    string
	UID          string
}

func config(clientID, clientSecret, redirectURI string, scopes []string, o Options) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   o.AuthorizeURL,
			TokenURL:  o.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizationURL returns the page the user is sent to in order to grant access.  redirect_uri is always
// present, even when empty.  state and scopes are only included when non-empty; scopes are joined with a space.
func AuthorizationURL(clientID, redirectURI, state string, scopes []string, opts ...options.NewClientOption[Options]) string {
	return config(clientID, "", redirectURI, scopes, newOptions(opts...)).
		AuthCodeURL(state, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
}

// ExchangeCode trades an authorization code for a token.
func ExchangeCode(ctx context.Context, code, clientID, clientSecret, redirectURI string,
	opts ...options.NewClientOption[Options]) (*Token, error) {
	o := newOptions(opts...)
	tok, err := config(clientID, clientSecret, redirectURI, nil, o).Exchange(withHTTPClient(ctx, o), code)
	if err != nil {
		return nil, tokenError("exchange code", o.TokenURL, err)
	}
	return fromOAuth2(tok), nil
}

// RefreshToken obtains a new access token from a refresh token.  The returned RefreshToken is the one given when
// the endpoint does not issue a new one.
func RefreshToken(ctx context.Context, refreshToken, clientID, clientSecret string,
	opts ...options.NewClientOption[Options]) (*Token, error) {
	o := newOptions(opts...)
	src := config(clientID, clientSecret, "", nil, o).TokenSource(withHTTPClient(ctx, o), &oauth2.Token{
		RefreshToken: refreshToken,
	})
	tok, err := src.Token()
	if err != nil {
		return nil, tokenError("refresh token", o.TokenURL, err)
	}
	return fromOAuth2(tok), nil
}

func withHTTPClient(ctx context.Context, o Options) context.Context {
	if o.HTTPClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, o.HTTPClient)
}

func fromOAuth2(tok *oauth2.Token) *Token {
	t := &Token{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
		Scope:        extraString(tok, "scope"),
		AccountID:    extraString(tok, "account_id"),
		UID:          extraString(tok, "uid"),
	}
	if n, ok := tok.Extra("expires_in").(float64); ok {
		t.ExpiresIn = int64(n)
	}
	return t
}

func extraString(tok *oauth2.Token, key string) string {
	s, _ := tok.Extra(key).(string)
	return s
}

// tokenError maps any token endpoint failure onto *dropbox.APIError.
func tokenError(op, tokenURL string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) || retrieveErr.Response == nil {
		return dropbox.WrapAPIError(fmt.Sprintf("%s: POST %s", op, tokenURL), 0, nil, utils.WrapTokenError(err))
	}

	var body map[string]any
	if uerr := json.Unmarshal(retrieveErr.Body, &body); uerr != nil {
		body = nil
	}
	return dropbox.WrapAPIError(
		fmt.Sprintf("%s: POST %s: %s", op, tokenURL, retrieveErr.Response.Status),
		retrieveErr.Response.StatusCode,
		body,
		utils.WrapTokenError(err),
	)
}
