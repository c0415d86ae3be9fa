// Package workflow implements the create, update and delete form pipeline
// shared by every catalog entity.
//
// A submission is normalized, validated and escaped. Invalid submissions
// are re-displayed with the user's values and an ordered list of field
// errors; valid ones are persisted and answered with a redirect to the
// record's canonical URL. Deletes are refused while dependent records
// exist.
package workflow

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/parallel"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

// Form is a submitted form. Normalize trims values and coerces multi-value
// fields; Escape replaces markup in the values that will be stored.
type Form interface {
	Normalize()
	Escape()
}

// Outcome is where a workflow run ends: a redirect or a rendered view.
type Outcome struct {
	Status   int
	Redirect string
	View     string
	Data     map[string]any
}

func (o *Outcome) IsRedirect() bool {
	return o.Redirect != ""
}

func redirect(url string) *Outcome {
	return &Outcome{Status: http.StatusFound, Redirect: url}
}

// Dependents lists the records that block a delete.
type Dependents struct {
	Key   string
	Count int
	Items any
}

// Entity describes one catalog entity to the workflow.
type Entity[F Form, R any] struct {
	Segment    string
	Name       string
	FormView   string
	DeleteView string

	// Populate names the associations Fill and Present need resolved.
	Populate []string

	Store     repository.Store[R]
	Validator *validation.Validator
	Messages  validation.Messages

	// Build turns a valid form into a record. id is uuid.Nil on create.
	Build func(form F, id uuid.UUID) R
	// Fill copies a stored record into an empty form for editing.
	Fill    func(rec R) F
	URL     func(rec R) string
	Present func(rec R) any

	// References reports submitted ids that do not resolve.
	References func(ctx context.Context, form F) ([]validation.FieldError, error)
	// Duplicate returns an existing record equal to the submission, or
	// repository.ErrNotFound.
	Duplicate func(ctx context.Context, form F) (*R, error)
	// Options loads what the form needs besides the submission, such as the
	// choices of a select.
	Options func(ctx context.Context, form F) (map[string]any, error)
	// Dependents enumerates the records that block deleting id.
	Dependents func(ctx context.Context, id uuid.UUID) (Dependents, error)
}

func (e *Entity[F, R]) createTitle() string { return "Create " + e.Name }
func (e *Entity[F, R]) updateTitle() string { return "Update " + e.Name }
func (e *Entity[F, R]) deleteTitle() string { return "Delete " + e.Name }

// NewForm renders the empty create form.
func (e *Entity[F, R]) NewForm(ctx context.Context, form F) (*Outcome, error) {
	return e.render(ctx, http.StatusOK, e.createTitle(), form, nil)
}

func (e *Entity[F, R]) Create(ctx context.Context, form F) (*Outcome, error) {
	errs, err := e.validate(ctx, form)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return e.render(ctx, http.StatusBadRequest, e.createTitle(), form, errs)
	}

	if e.Duplicate != nil {
		existing, err := e.Duplicate(ctx, form)
		switch {
		case err == nil:
			return redirect(e.URL(*existing)), nil
		case !errors.Is(err, repository.ErrNotFound):
			return nil, err
		}
	}

	rec := e.Build(form, uuid.Nil)
	if err := e.Store.Save(ctx, &rec); err != nil {
		return e.rejected(ctx, e.createTitle(), form, err)
	}

	return redirect(e.URL(rec)), nil
}

// EditForm renders the update form filled from the stored record.
// repository.ErrNotFound is returned when id does not resolve.
func (e *Entity[F, R]) EditForm(ctx context.Context, id uuid.UUID) (*Outcome, error) {
	rec, err := e.Store.FindByID(ctx, id, repository.Populate(e.Populate...))
	if err != nil {
		return nil, err
	}
	return e.render(ctx, http.StatusOK, e.updateTitle(), e.Fill(*rec), nil)
}

// Update replaces the record stored under id with the submission.
// repository.ErrNotFound is returned when id does not resolve.
func (e *Entity[F, R]) Update(ctx context.Context, id uuid.UUID, form F) (*Outcome, error) {
	errs, err := e.validate(ctx, form)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return e.render(ctx, http.StatusBadRequest, e.updateTitle(), form, errs)
	}

	rec := e.Build(form, id)
	if err := e.Store.ReplaceByID(ctx, id, &rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return e.rejected(ctx, e.updateTitle(), form, err)
	}

	return redirect(model.CatalogURL(e.Segment, id)), nil
}

// DeleteForm renders the confirmation page. A missing record redirects to
// the list view.
func (e *Entity[F, R]) DeleteForm(ctx context.Context, id uuid.UUID) (*Outcome, error) {
	rec, deps, err := e.loadForDelete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return redirect(model.ListURL(e.Segment)), nil
	}
	if err != nil {
		return nil, err
	}
	return e.renderDelete(http.StatusOK, *rec, deps), nil
}

// Delete removes the record unless dependents exist, in which case the
// confirmation page is shown again listing them. A record that is already
// gone counts as deleted.
func (e *Entity[F, R]) Delete(ctx context.Context, id uuid.UUID) (*Outcome, error) {
	rec, deps, err := e.loadForDelete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return redirect(model.ListURL(e.Segment)), nil
	}
	if err != nil {
		return nil, err
	}

	if deps.Count > 0 {
		return e.renderDelete(http.StatusConflict, *rec, deps), nil
	}

	if err := e.Store.RemoveByID(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return redirect(model.ListURL(e.Segment)), nil
}

func (e *Entity[F, R]) validate(ctx context.Context, form F) ([]validation.FieldError, error) {
	form.Normalize()
	errs := e.Validator.Check(form, e.Messages)
	form.Escape()

	if len(errs) > 0 || e.References == nil {
		return errs, nil
	}

	return e.References(ctx, form)
}

// rejected re-displays the form when the store refuses the record itself;
// any other failure aborts the workflow.
func (e *Entity[F, R]) rejected(ctx context.Context, title string, form F, err error) (*Outcome, error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return e.render(ctx, http.StatusBadRequest, title, form, []validation.FieldError{{
			Field:   verr.Field,
			Rule:    "schema",
			Message: verr.Field + " " + verr.Message,
		}})
	case errors.Is(err, repository.ErrInvalidReference):
		return e.render(ctx, http.StatusBadRequest, title, form, []validation.FieldError{{
			Rule:    "reference",
			Message: "A referenced record does not exist.",
		}})
	}
	return nil, err
}

func (e *Entity[F, R]) render(ctx context.Context, status int, title string, form F, errs []validation.FieldError) (*Outcome, error) {
	data := map[string]any{
		"title": title,
		"form":  form,
	}
	if len(errs) > 0 {
		data["errors"] = errs
	}

	if e.Options != nil {
		extra, err := e.Options(ctx, form)
		if err != nil {
			return nil, err
		}
		for k, v := range extra {
			data[k] = v
		}
	}

	return &Outcome{Status: status, View: e.FormView, Data: data}, nil
}

func (e *Entity[F, R]) loadForDelete(ctx context.Context, id uuid.UUID) (*R, Dependents, error) {
	var rec *R
	var deps Dependents

	ops := []parallel.Op{
		parallel.Into(&rec, func(ctx context.Context) (*R, error) {
			return e.Store.FindByID(ctx, id, repository.Populate(e.Populate...))
		}),
	}
	if e.Dependents != nil {
		ops = append(ops, parallel.Into(&deps, func(ctx context.Context) (Dependents, error) {
			return e.Dependents(ctx, id)
		}))
	}

	if err := parallel.Run(ctx, ops...); err != nil {
		return nil, Dependents{}, err
	}
	return rec, deps, nil
}

func (e *Entity[F, R]) renderDelete(status int, rec R, deps Dependents) *Outcome {
	data := map[string]any{
		"title":  e.deleteTitle(),
		"record": e.Present(rec),
	}
	if deps.Key != "" {
		data[deps.Key] = deps.Items
	}
	return &Outcome{Status: status, View: e.DeleteView, Data: data}
}
