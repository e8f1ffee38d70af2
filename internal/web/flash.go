package web

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const sessionName = "rollbook"

const (
	CategorySuccess = "success"
	CategoryError   = "error"
)

// Flash is a one-time message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// Flashes stores pending messages in a signed cookie session.
type Flashes struct {
	store sessions.Store
}

// NewFlashes signs cookies with secret, or with a random key when secret is empty.
func NewFlashes(secret string) (*Flashes, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errors.New("generate session key")
		}
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flashes{store: store}, nil
}

func (f *Flashes) Add(w http.ResponseWriter, r *http.Request, category, message string) error {
	session := f.session(r)
	session.AddFlash(Flash{Category: category, Message: message})
	return errors.Wrap(session.Save(r, w), "save session")
}

// Pop returns and clears the pending messages.
func (f *Flashes) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	session := f.session(r)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		logrus.WithError(err).Warn("could not clear flash messages")
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if flash, ok := v.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}

// session never fails: a cookie that does not decode (e.g. signed with an
// old key) is replaced by a fresh session.
func (f *Flashes) session(r *http.Request) *sessions.Session {
	session, err := f.store.Get(r, sessionName)
	if err != nil {
		logrus.WithError(err).Debug("discarding undecodable session cookie")
	}
	return session
}
