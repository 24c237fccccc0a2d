package views

import (
	"context"
	"strconv"
	"strings"

	"hotel-console/internal/domain/guest"
	"hotel-console/internal/infra/gateway"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/form"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/shared"
	"hotel-console/internal/usecase/store"
)

const (
	msgGuestCreated  = "Huésped registrado correctamente."
	msgGuestUpdated  = "Huésped actualizado correctamente."
	msgGuestDeleted  = "Huésped eliminado."
	msgGuestNotFound = "Huésped no encontrado."
	msgInvalidID     = "Ingrese un ID numérico mayor que cero."
)

// SearchResult is what the lookup surface shows: the match, or why there is none.
type SearchResult struct {
	Guest   *guest.Guest
	Message string
}

func (r SearchResult) Found() bool {
	return r.Guest != nil
}

type GuestView struct {
	gateway  shared.GuestGateway
	notifier *notify.Notifier
	items    *store.Store[int64, *guest.Guest]
	editor   *form.GuestEditor
}

func NewGuestView(gw shared.GuestGateway, n *notify.Notifier, v *form.Validator) *GuestView {
	return &GuestView{
		gateway:  gw,
		notifier: n,
		items:    store.New((*guest.Guest).ID),
		editor:   form.NewGuestEditor(v),
	}
}

// Activate reloads the list from the API.
func (v *GuestView) Activate(ctx context.Context) []*guest.Guest {
	v.items.ReplaceAll(v.gateway.List(ctx))
	return v.items.List()
}

func (v *GuestView) Items() []*guest.Guest {
	return v.items.List()
}

func (v *GuestView) Editor() *form.GuestEditor {
	return v.editor
}

func (v *GuestView) Detail(id int64) (*guest.Guest, error) {
	g, ok := v.items.Get(id)
	if !ok {
		return nil, errs.ErrEntryNotFound
	}
	return g, nil
}

func (v *GuestView) BeginCreate() {
	v.editor.BeginCreate()
}

func (v *GuestView) BeginEdit(id int64) error {
	g, err := v.Detail(id)
	if err != nil {
		return err
	}
	return v.editor.BeginEdit(id, g.Draft())
}

func (v *GuestView) Patch(raw []byte) error {
	return v.editor.Patch(raw)
}

func (v *GuestView) Cancel() {
	v.editor.Close()
}

// Submit sends the form and, on success, closes it and reloads the list.
// A failed call leaves the form open with the operator's input.
func (v *GuestView) Submit(ctx context.Context) (*guest.Guest, error) {
	draft, err := v.editor.Submit()
	if err != nil {
		return nil, err
	}

	var (
		saved *guest.Guest
		msg   string
	)
	if v.editor.Mode() == form.ModeEditing {
		saved, err = v.gateway.Update(ctx, v.editor.TargetID(), draft)
		msg = msgGuestUpdated
	} else {
		saved, err = v.gateway.Create(ctx, draft)
		msg = msgGuestCreated
	}
	if err != nil {
		return nil, errs.Wrap(err, "save guest")
	}

	v.notifier.Success(ctx, "Listo", msg)
	v.editor.Close()
	v.Activate(ctx)
	return saved, nil
}

// Search looks a guest up by the raw identifier the operator typed.
func (v *GuestView) Search(ctx context.Context, raw string) (SearchResult, error) {
	id, err := ParseID(raw)
	if err != nil {
		return SearchResult{Message: msgInvalidID}, err
	}
	return v.lookup(ctx, id, v.gateway.Get)
}

// LookupByGuestID uses the API's alternate guest-id route.
func (v *GuestView) LookupByGuestID(ctx context.Context, id int64) (SearchResult, error) {
	if id <= 0 {
		return SearchResult{Message: msgInvalidID}, errs.ErrInvalidLookupID
	}
	return v.lookup(ctx, id, v.gateway.GetByGuestID)
}

func (v *GuestView) lookup(
	ctx context.Context,
	id int64,
	get func(context.Context, int64) (*guest.Guest, error),
) (SearchResult, error) {
	g, err := get(ctx, id)
	if err != nil {
		if gateway.IsCategory(err, gateway.CategoryNotFound) {
			return SearchResult{Message: msgGuestNotFound}, nil
		}
		return SearchResult{}, errs.Wrap(err, "look up guest")
	}
	return SearchResult{Guest: g}, nil
}

// Delete asks for confirmation, deletes and reloads the list.
func (v *GuestView) Delete(ctx context.Context, id int64, c notify.Confirmer) error {
	name := strconv.FormatInt(id, 10)
	if g, ok := v.items.Get(id); ok {
		name = g.FullName()
	}
	if !c.Confirm(ctx, notify.DeletePrompt("¿Eliminar a "+name+"?")) {
		return errs.ErrDeleteDeclined
	}
	if err := v.gateway.Delete(ctx, id); err != nil {
		return errs.Wrap(err, "delete guest")
	}
	v.notifier.Success(ctx, "Eliminado", msgGuestDeleted)
	v.Activate(ctx)
	return nil
}

// ParseID accepts a positive decimal identifier, surrounding spaces allowed.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.ErrInvalidLookupID
	}
	return id, nil
}
