package views

import (
	"context"
	"strconv"

	"hotel-console/internal/domain/user"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/form"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/shared"
	"hotel-console/internal/usecase/store"
)

// AccountView manages operator accounts. It is only reachable by administrators.
type AccountView struct {
	gateway  shared.UserGateway
	notifier *notify.Notifier
	items    *store.Store[int64, *user.User]
	editor   *form.AccountEditor
}

func NewAccountView(gw shared.UserGateway, n *notify.Notifier, v *form.Validator) *AccountView {
	return &AccountView{
		gateway:  gw,
		notifier: n,
		items:    store.New((*user.User).ID),
		editor:   form.NewAccountEditor(v),
	}
}

func (v *AccountView) Activate(ctx context.Context) []*user.User {
	v.items.ReplaceAll(v.gateway.List(ctx))
	return v.items.List()
}

func (v *AccountView) Items() []*user.User {
	return v.items.List()
}

// Get fetches one account from the API and refreshes its row when listed.
func (v *AccountView) Get(ctx context.Context, id int64) (*user.User, error) {
	u, err := v.gateway.Get(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "get account")
	}
	v.items.Replace(u)
	return u, nil
}

func (v *AccountView) Editor() *form.AccountEditor {
	return v.editor
}

func (v *AccountView) BeginCreate() {
	v.editor.BeginCreate()
}

// BeginEdit prefills the username and the first role. The password starts blank.
func (v *AccountView) BeginEdit(id int64) error {
	u, ok := v.items.Get(id)
	if !ok {
		return errs.ErrEntryNotFound
	}
	draft := user.Draft{Username: u.Username()}
	if r, ok := u.PrimaryRole(); ok {
		draft.Roles = []user.Role{r}
	}
	return v.editor.BeginEdit(id, draft)
}

func (v *AccountView) Patch(raw []byte) error {
	return v.editor.Patch(raw)
}

func (v *AccountView) Cancel() {
	v.editor.Close()
}

func (v *AccountView) Submit(ctx context.Context) (*user.User, error) {
	draft, err := v.editor.Submit()
	if err != nil {
		return nil, err
	}

	var (
		saved *user.User
		title string
		msg   string
	)
	if v.editor.Mode() == form.ModeEditing {
		saved, err = v.gateway.Update(ctx, strconv.FormatInt(v.editor.TargetID(), 10), draft)
		title, msg = "¡Actualizado!", "Usuario actualizado correctamente."
	} else {
		saved, err = v.gateway.Create(ctx, draft)
		title, msg = "¡Creado!", "Usuario creado correctamente."
	}
	if err != nil {
		return nil, errs.Wrap(err, "save account")
	}

	v.notifier.Success(ctx, title, msg)
	v.editor.Close()
	v.Activate(ctx)
	return saved, nil
}

// Delete removes the account by username and filters it out locally instead of
// reloading the list.
func (v *AccountView) Delete(ctx context.Context, username string, c notify.Confirmer) error {
	prompt := notify.DeletePrompt(`El usuario "` + username + `" será eliminado permanentemente.`)
	if !c.Confirm(ctx, prompt) {
		return errs.ErrDeleteDeclined
	}
	if err := v.gateway.Delete(ctx, username); err != nil {
		return errs.Wrap(err, "delete account")
	}
	v.items.RemoveWhere(func(u *user.User) bool { return u.Username() == username })
	v.notifier.Success(ctx, "Eliminado", `Usuario "`+username+`" eliminado correctamente`)
	return nil
}
