// ABOUTME: Identity flows on the workspace: signup, login, logout.
// ABOUTME: Login merges guest data (merge-if-empty) and reloads collections.

package workspace

import (
	"context"

	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/remote"
)

// SignUp creates a local account. The caller stays on their current identity;
// guest notes migrate on first login.
func (w *Workspace) SignUp(username, password, confirm, email string) (models.Account, error) {
	return w.Session.SignUp(username, password, confirm, email)
}

// SignIn authenticates, migrates guest notes when the account is empty,
// persists the session and reloads collections under the new identity.
// Returns whether a guest merge happened so the caller can offer a cloud
// push.
func (w *Workspace) SignIn(ctx context.Context, usernameOrEmail, password string) (merged bool, err error) {
	account, err := w.Session.SignIn(usernameOrEmail, password)
	if err != nil {
		return false, err
	}
	merged = w.Session.MergeGuestData(account.Username)
	w.Session.SetActiveUser(account.Username)
	w.loadFor(ctx, account.Username)
	w.notifyUser(account.Username)
	return merged, nil
}

// SignOut clears the session and drops back to the guest collections. The
// cloud link, if any, is released best-effort.
func (w *Workspace) SignOut(ctx context.Context) {
	w.Session.ClearActiveUser()
	if w.auth != nil {
		if err := w.auth.SignOut(ctx); err != nil {
			w.log.Warn().Err(err).Msg("cloud sign-out")
		}
	}
	w.loadFor(ctx, "")
	w.notifyUser("")
}

// CloudSession reports the linked cloud identity, or nil offline/unlinked.
func (w *Workspace) CloudSession(ctx context.Context) *remote.Session {
	if w.auth == nil {
		return nil
	}
	sess, err := w.auth.Session(ctx)
	if err != nil {
		w.log.Warn().Err(err).Msg("cloud session lookup")
		return nil
	}
	return sess
}
