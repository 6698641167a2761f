package core

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/internal/sdk"
	"github.com/MKhiriev/go-fubon-cli/internal/session"
	"github.com/MKhiriev/go-fubon-cli/models"
)

// Handle is the in-process session: an authenticated SDK client plus the
// trading accounts resolved at login. It lives for one invocation and is
// never persisted.
type Handle struct {
	Client   sdk.Client
	Accounts []sdk.Account
}

// Account returns the account at index. An out-of-range index is a
// *ValidationError so the caller fails before any SDK round trip.
func (h *Handle) Account(index int) (sdk.Account, error) {
	if index < 0 || index >= len(h.Accounts) {
		if len(h.Accounts) == 0 {
			return sdk.Account{}, Validationf("account index %d out of range: no accounts on this session", index)
		}
		return sdk.Account{}, Validationf("account index %d out of range. Available: 0-%d", index, len(h.Accounts)-1)
	}
	return h.Accounts[index], nil
}

// SessionManager establishes an authenticated SDK session per invocation.
// It re-authenticates every time rather than trusting a possibly expired
// remote token: one login round trip per command buys statelessness.
type SessionManager struct {
	store   *session.Store
	factory sdk.Factory
	log     *logger.Logger
}

// NewSessionManager wires a SessionManager from its collaborators.
func NewSessionManager(store *session.Store, factory sdk.Factory, log *logger.Logger) *SessionManager {
	return &SessionManager{store: store, factory: factory, log: log}
}

// Resolve produces a live Handle.
//
// With explicit credentials (interactive login) it attempts SDK login and,
// on success, persists them through the session store. With nil credentials
// it loads the stored session and logs in fresh with the stored material.
// A brokerage rejection surfaces as *AuthError carrying the SDK message
// verbatim; the stored file is left untouched so the user can retry after
// fixing their environment. A single attempt is made; retrying is the
// caller's business.
func (m *SessionManager) Resolve(ctx context.Context, creds *models.Credentials) (*Handle, error) {
	if creds != nil {
		return m.loginAndPersist(ctx, *creds)
	}

	stored, err := m.store.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	return m.login(ctx, stored.Credentials)
}

func (m *SessionManager) login(ctx context.Context, creds models.Credentials) (*Handle, error) {
	client := m.factory()

	accounts, err := client.Login(ctx, creds)
	if err != nil {
		client.Close()
		return nil, &AuthError{Message: err.Error()}
	}

	m.log.Debug().Int("accounts", len(accounts)).Msg("session established")
	return &Handle{Client: client, Accounts: accounts}, nil
}

func (m *SessionManager) loginAndPersist(ctx context.Context, creds models.Credentials) (*Handle, error) {
	handle, err := m.login(ctx, creds)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(handle.Accounts))
	for i, acc := range handle.Accounts {
		ids[i] = acc.AccountID
	}

	if err = m.store.Save(models.StoredSession{Credentials: creds, AccountIDs: ids}); err != nil {
		handle.Client.Close()
		return nil, err
	}

	return handle, nil
}
