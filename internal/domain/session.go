package domain

import (
	"errors"
	"time"
)

// Credentials is the secret material needed to log the controlled account on.
type Credentials struct {
	AccountName    string
	Password       string
	SharedSecret   string
	IdentitySecret string
}

func (c Credentials) Validate() error {
	var errs []error
	if c.AccountName == "" {
		errs = append(errs, errors.New("account name is required"))
	}
	if c.Password == "" {
		errs = append(errs, errors.New("password is required"))
	}
	if c.SharedSecret == "" {
		errs = append(errs, errors.New("shared secret is required"))
	}
	if c.IdentitySecret == "" {
		errs = append(errs, errors.New("identity secret is required"))
	}

	return errors.Join(errs...)
}

// WebSession is one immutable snapshot of web-layer session material.
type WebSession struct {
	SteamID      SteamID
	SessionID    string
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
}

func (s WebSession) LoginSecure() string {
	return s.SteamID.String() + "||" + s.AccessToken
}

func (s WebSession) Valid() bool {
	return s.SteamID.Valid() && s.SessionID != "" && s.AccessToken != ""
}
