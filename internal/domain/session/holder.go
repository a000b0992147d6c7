package session

import (
	"context"
	"errors"
	"fmt"

	"skylink/internal/shared/authorization"
	apperrors "skylink/internal/shared/errors"
)

// InvalidateFunc runs after a holder was cleared because the backend
// rejected its token.
type InvalidateFunc func(ctx context.Context, ended Session, reason error)

// Holder is the explicit session context passed through every view. It
// binds one Store key, so one Holder serves one browser or terminal.
type Holder struct {
	store        Store
	key          string
	onInvalidate InvalidateFunc
}

// NewHolder creates a holder over key. onInvalidate may be nil.
func NewHolder(store Store, key string, onInvalidate InvalidateFunc) *Holder {
	return &Holder{store: store, key: key, onInvalidate: onInvalidate}
}

// Key returns the store key this holder is bound to.
func (h *Holder) Key() string {
	return h.key
}

// Set stores the values a successful login returned.
func (h *Holder) Set(ctx context.Context, token string, role authorization.UserRole, email string, userID uint) (Session, error) {
	s := Session{Token: token, Role: role, Email: email, UserID: userID}
	if err := h.store.Save(ctx, h.key, s); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// Get returns the stored session or a no-session error.
func (h *Holder) Get(ctx context.Context) (Session, error) {
	s, err := h.store.Load(ctx, h.key)
	if errors.Is(err, ErrNotFound) {
		return Session{}, apperrors.NewNoSessionError()
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	if s.IsZero() {
		return Session{}, apperrors.NewNoSessionError()
	}
	return s, nil
}

// Clear removes everything the holder stores. Clearing an empty holder
// is not an error.
func (h *Holder) Clear(ctx context.Context) error {
	if err := h.store.Delete(ctx, h.key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Invalidate clears the holder after the backend rejected the token and
// notifies the invalidation callback.
func (h *Holder) Invalidate(ctx context.Context, reason error) error {
	ended, _ := h.store.Load(ctx, h.key)
	if err := h.Clear(ctx); err != nil {
		return err
	}
	if h.onInvalidate != nil {
		h.onInvalidate(ctx, ended, reason)
	}
	return nil
}

// Guard passes err through unless it is a 401/403 from the backend, in
// which case the holder is invalidated and a session-expired error is
// returned instead.
func (h *Holder) Guard(ctx context.Context, err error) error {
	if err == nil || !apperrors.IsAuthFailure(err) {
		return err
	}
	if clearErr := h.Invalidate(ctx, err); clearErr != nil {
		return errors.Join(apperrors.NewSessionExpiredError(err), clearErr)
	}
	return apperrors.NewSessionExpiredError(err)
}
