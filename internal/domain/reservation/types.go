package reservation

import "strconv"

// StatusID identifies a row of the API's fixed reservation status table.
type StatusID int

const (
	StatusNone       StatusID = 0
	StatusConfirmed  StatusID = 1
	StatusInProgress StatusID = 2
	StatusFinished   StatusID = 3
	StatusCancelled  StatusID = 4
)

var statusLabels = map[StatusID]string{
	StatusConfirmed:  "CONFIRMADA",
	StatusInProgress: "EN_CURSO",
	StatusFinished:   "FINALIZADA",
	StatusCancelled:  "CANCELADA",
}

var statusByLabel = func() map[string]StatusID {
	m := make(map[string]StatusID, len(statusLabels))
	for id, label := range statusLabels {
		m[label] = id
	}
	return m
}()

// StatusFromLabel resolves the label the API returns back to its table id.
// Matching is exact; an unknown label yields StatusNone and false.
func StatusFromLabel(label string) (StatusID, bool) {
	id, ok := statusByLabel[label]
	return id, ok
}

func (s StatusID) Label() string {
	return statusLabels[s]
}

func (s StatusID) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s StatusID) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "StatusID(" + strconv.Itoa(int(s)) + ")"
}

// StatusOption is one entry of the status selector.
type StatusOption struct {
	ID    StatusID `json:"id"`
	Label string   `json:"label"`
}

// Statuses lists the table in id order.
func Statuses() []StatusOption {
	return []StatusOption{
		{ID: StatusConfirmed, Label: StatusConfirmed.Label()},
		{ID: StatusInProgress, Label: StatusInProgress.Label()},
		{ID: StatusFinished, Label: StatusFinished.Label()},
		{ID: StatusCancelled, Label: StatusCancelled.Label()},
	}
}
