package form

import (
	"reflect"
	"sort"
	"strings"

	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/pkg/patch"

	"github.com/jinzhu/copier"
)

type Mode string

const (
	ModeIdle     Mode = "IDLE"
	ModeCreating Mode = "CREATING"
	ModeEditing  Mode = "EDITING"
)

// Rule adds checks that depend on the editor mode, such as a field required only on create.
type Rule[T any] func(value T, mode Mode) FieldErrors

// Editor is the state of one entity form: what is being edited, the current value,
// which fields the operator has touched and which rules currently fail.
type Editor[T any] struct {
	validator *Validator
	rules     []Rule[T]
	normalize func(T) T

	mode     Mode
	targetID int64
	value    T
	touched  map[string]bool
	errors   FieldErrors
}

func NewEditor[T any](v *Validator, rules ...Rule[T]) *Editor[T] {
	return &Editor[T]{
		validator: v,
		rules:     rules,
		mode:      ModeIdle,
		touched:   map[string]bool{},
	}
}

// Normalizing sets a cleanup applied before every evaluation and to the value Submit
// returns, so what gets validated is exactly what gets sent.
func (e *Editor[T]) Normalizing(fn func(T) T) *Editor[T] {
	e.normalize = fn
	return e
}

func (e *Editor[T]) Mode() Mode      { return e.mode }
func (e *Editor[T]) TargetID() int64 { return e.targetID }
func (e *Editor[T]) Value() T        { return e.value }
func (e *Editor[T]) IsOpen() bool    { return e.mode != ModeIdle }

// BeginCreate opens a cleared form.
func (e *Editor[T]) BeginCreate() {
	var zero T
	e.open(ModeCreating, 0, zero)
}

// BeginEdit opens the form prefilled from src, deep-copied so later edits never
// reach the entity the values came from. Fields match T by name.
func (e *Editor[T]) BeginEdit(id int64, src any) error {
	var value T
	if err := copier.CopyWithOption(&value, src, copier.Option{DeepCopy: true}); err != nil {
		return errs.Wrap(err, "prefill form")
	}
	e.open(ModeEditing, id, value)
	return nil
}

func (e *Editor[T]) open(mode Mode, id int64, value T) {
	e.mode = mode
	e.targetID = id
	e.value = value
	e.touched = map[string]bool{}
	e.errors = e.evaluate()
}

// Patch merges a partial JSON object into the value. Every key present is marked
// touched and the whole form is re-evaluated.
func (e *Editor[T]) Patch(raw []byte) error {
	if !e.IsOpen() {
		return errs.ErrEditorNotOpen
	}
	next, keys, err := patch.Apply(e.value, raw)
	if err != nil {
		return errs.Mark(err, errs.ErrFormInvalid)
	}
	e.value = next
	for _, k := range keys {
		e.touched[k] = true
	}
	e.errors = e.evaluate()
	return nil
}

// Submit returns the value to send, or a ValidationError after marking every field
// touched so all failures become visible.
func (e *Editor[T]) Submit() (T, error) {
	if !e.IsOpen() {
		var zero T
		return zero, errs.ErrEditorNotOpen
	}
	e.errors = e.evaluate()
	if len(e.errors) > 0 {
		for _, f := range jsonFields[T]() {
			e.touched[f] = true
		}
		for f := range e.errors {
			e.touched[f] = true
		}
		var zero T
		return zero, &ValidationError{Fields: e.visibleErrors()}
	}
	return e.normalized(), nil
}

// Close discards the form and returns to idle.
func (e *Editor[T]) Close() {
	var zero T
	e.mode = ModeIdle
	e.targetID = 0
	e.value = zero
	e.touched = map[string]bool{}
	e.errors = nil
}

// Valid reports whether the current value passes every rule, touched or not.
func (e *Editor[T]) Valid() bool {
	return len(e.errors) == 0
}

func (e *Editor[T]) normalized() T {
	if e.normalize == nil {
		return e.value
	}
	return e.normalize(e.value)
}

func (e *Editor[T]) evaluate() FieldErrors {
	value := e.normalized()
	out := e.validator.Struct(value)
	for _, rule := range e.rules {
		for f, fe := range rule(value, e.mode) {
			if out == nil {
				out = FieldErrors{}
			}
			if _, seen := out[f]; !seen {
				out[f] = fe
			}
		}
	}
	return out
}

func (e *Editor[T]) visibleErrors() FieldErrors {
	visible := FieldErrors{}
	for f, fe := range e.errors {
		if e.touched[f] {
			visible[f] = fe
		}
	}
	return visible
}

// Snapshot is the form as the console renders it.
type Snapshot[T any] struct {
	Mode     Mode        `json:"mode"`
	TargetID int64       `json:"targetId,omitempty"`
	Value    T           `json:"value"`
	Errors   FieldErrors `json:"errors"`
	Touched  []string    `json:"touched"`
	Valid    bool        `json:"valid"`
}

func (e *Editor[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Mode:     e.mode,
		TargetID: e.targetID,
		Value:    e.value,
		Errors:   e.visibleErrors(),
		Touched:  e.touchedFields(),
		Valid:    e.Valid(),
	}
}

func (e *Editor[T]) touchedFields() []string {
	fields := make([]string, 0, len(e.touched))
	for f := range e.touched {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// jsonFields lists the top-level JSON names of T, the fields a form shows.
func jsonFields[T any]() []string {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil
	}
	fields := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		fields = append(fields, name)
	}
	return fields
}
