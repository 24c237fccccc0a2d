package reservations

import (
	"context"
	"fmt"

	"hotel-console/internal/domain/reservation"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/form"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/shared"
	"hotel-console/internal/usecase/store"
)

// Row is a listed reservation. NeedsReconcile marks a row whose fields were saved
// but whose status change was rejected; WantedStatus is the status the operator
// asked for.
type Row struct {
	Reservation    *reservation.Reservation
	NeedsReconcile bool
	WantedStatus   reservation.StatusID
}

func (r Row) ID() int64 {
	return r.Reservation.ID()
}

// Workflow drives the reservation list and its editor. Callers serialize access.
type Workflow struct {
	gateway  shared.ReservationGateway
	notifier *notify.Notifier
	rows     *store.Store[int64, Row]
	editor   *form.ReservationEditor
}

func NewWorkflow(gw shared.ReservationGateway, n *notify.Notifier, v *form.Validator) *Workflow {
	return &Workflow{
		gateway:  gw,
		notifier: n,
		rows:     store.New(Row.ID),
		editor:   form.NewReservationEditor(v),
	}
}

// Activate reloads every row. Pending reconcile flags are dropped since the API's
// view replaces them.
func (w *Workflow) Activate(ctx context.Context) []Row {
	list := w.gateway.List(ctx)
	rows := make([]Row, len(list))
	for i, r := range list {
		rows[i] = Row{Reservation: r}
	}
	w.rows.ReplaceAll(rows)
	return w.rows.List()
}

func (w *Workflow) Rows() []Row {
	return w.rows.List()
}

// Reload fetches one reservation from the API and replaces its row. The API's
// answer settles any pending reconcile flag.
func (w *Workflow) Reload(ctx context.Context, id int64) (Row, error) {
	r, err := w.gateway.Get(ctx, id)
	if err != nil {
		return Row{}, errs.Wrap(err, "get reservation")
	}
	prev, _ := w.rows.Get(id)
	row := Row{Reservation: r}
	w.replace(id, row)
	if prev.NeedsReconcile {
		w.notifier.Info(ctx, "Reserva sincronizada", fmt.Sprintf(
			"La reserva %d está en estado %s.", r.ID(), r.StatusLabel()))
	}
	return row, nil
}

func (w *Workflow) Editor() *form.ReservationEditor {
	return w.editor
}

func (w *Workflow) State() form.Mode {
	return w.editor.Mode()
}

func (w *Workflow) BeginCreate() {
	w.editor.BeginCreate()
}

// BeginEdit prefills the form from the selected row. A status label outside the
// table leaves the status empty.
func (w *Workflow) BeginEdit(id int64) error {
	row, ok := w.rows.Get(id)
	if !ok {
		return errs.ErrEntryNotFound
	}
	return w.editor.BeginEdit(id, row.Reservation.ToDraft())
}

func (w *Workflow) Patch(raw []byte) error {
	return w.editor.Patch(raw)
}

func (w *Workflow) Cancel() {
	w.editor.Close()
}

// Submit validates the form and sends it. Creating issues one call. Editing issues
// the field update and, only once it succeeded, the status transition.
func (w *Workflow) Submit(ctx context.Context) (*reservation.Reservation, error) {
	draft, err := w.editor.Submit()
	if err != nil {
		return nil, err
	}
	if w.editor.Mode() == form.ModeEditing {
		return w.update(ctx, w.editor.TargetID(), draft)
	}
	return w.create(ctx, draft)
}

func (w *Workflow) create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error) {
	created, err := w.gateway.Create(ctx, draft)
	if err != nil {
		return nil, errs.Wrap(err, "create reservation")
	}
	w.rows.Append(Row{Reservation: created})
	w.notifier.Success(ctx, "Registrado", "Reserva registrada correctamente")
	w.editor.Close()
	return created, nil
}

func (w *Workflow) update(ctx context.Context, id int64, draft reservation.Draft) (*reservation.Reservation, error) {
	updated, err := w.gateway.Update(ctx, id, draft)
	if err != nil {
		return nil, errs.Wrap(err, "update reservation")
	}

	if err := w.gateway.UpdateStatus(ctx, updated.ID(), draft.StatusID); err != nil {
		w.replace(id, Row{Reservation: updated, NeedsReconcile: true, WantedStatus: draft.StatusID})
		w.notifier.Warning(ctx, "Estado no actualizado", fmt.Sprintf(
			"Los datos de la reserva %d se guardaron, pero el estado %s no se pudo aplicar.",
			updated.ID(), draft.StatusID.Label()))
		return updated, errs.Mark(errs.Wrap(err, "update reservation status"), errs.ErrStatusTransitionFailed)
	}

	saved := updated.WithStatus(draft.StatusID)
	w.replace(id, Row{Reservation: saved})
	w.notifier.Success(ctx, "Actualizado", "Reserva actualizada correctamente")
	w.editor.Close()
	return saved, nil
}

// replace swaps the row being edited. The API could answer with a different id,
// so the old row goes away first.
func (w *Workflow) replace(id int64, row Row) {
	if row.ID() == id && w.rows.Replace(row) {
		return
	}
	w.rows.Remove(id)
	w.rows.Append(row)
}

// Delete asks for confirmation and removes the row on success.
func (w *Workflow) Delete(ctx context.Context, id int64, c notify.Confirmer) error {
	if !c.Confirm(ctx, notify.DeletePrompt("La reserva será eliminada permanentemente")) {
		return errs.ErrDeleteDeclined
	}
	if err := w.gateway.Delete(ctx, id); err != nil {
		return errs.Wrap(err, "delete reservation")
	}
	w.rows.Remove(id)
	w.notifier.Success(ctx, "Eliminada", "Reserva eliminada correctamente")
	return nil
}

// Statuses lists the status selector options.
func (w *Workflow) Statuses() []reservation.StatusOption {
	return reservation.Statuses()
}
