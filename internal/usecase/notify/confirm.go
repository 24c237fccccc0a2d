package notify

import "context"

// Confirmation is the question asked before a destructive action.
type Confirmation struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	ConfirmLabel string `json:"confirmLabel"`
	CancelLabel  string `json:"cancelLabel"`
}

func DeletePrompt(text string) Confirmation {
	return Confirmation{
		Title:        "¿Estás seguro?",
		Text:         text,
		ConfirmLabel: "Sí, eliminar",
		CancelLabel:  "Cancelar",
	}
}

type Confirmer interface {
	Confirm(ctx context.Context, c Confirmation) bool
}

// Answer is a confirmer whose decision is already known, as when the operator's
// reply arrives with the request. A declined answer leaves the prompt in the outbox.
type Answer bool

func (a Answer) Confirm(ctx context.Context, c Confirmation) bool {
	if !a {
		FromContext(ctx).ask(c)
	}
	return bool(a)
}
