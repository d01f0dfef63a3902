// Package http provides http transport for time tracking
package http

import (
	stdhttp "net/http"

	"ttt/internal/modkit/httpkit"
	perr "ttt/internal/platform/errors"
	ptime "ttt/internal/platform/time"
	"ttt/internal/services/tracking/domain"
	svc "ttt/internal/services/tracking/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/current", h.current)
	httpkit.PostJSON[domain.StartInput](r, "/start", h.start)
	httpkit.Post(r, "/stop", h.stop)

	httpkit.Get(r, "/projects", h.projects)
	httpkit.PostJSON[domain.NameInput](r, "/projects", h.createProject)
	httpkit.PostJSON[domain.ArchiveInput](r, "/projects/archive", h.archiveProject)
	httpkit.Get(r, "/projects/{name}/tags", h.projectTags)

	httpkit.Get(r, "/tags", h.tags)
	httpkit.PostJSON[domain.NameInput](r, "/tags", h.createTag)
	httpkit.PostJSON[domain.ArchiveInput](r, "/tags/archive", h.archiveTag)
	httpkit.PostJSON[domain.AssignInput](r, "/tags/assign", h.assign)

	httpkit.PostJSON[domain.SpanInput](r, "/span", h.span)
	httpkit.PostJSON[domain.SpanInput](r, "/frames", h.frames)
	httpkit.PostJSON[domain.SpanInput](r, "/report", h.report)
}

type handlers struct{ svc svc.Service }

func pass[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func created[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return httpkit.Created(v), nil
}

func archivedParam(r *stdhttp.Request) (domain.ArchivedState, error) {
	st, err := domain.ParseArchivedState(r.URL.Query().Get("archived"))
	if err != nil {
		return "", perr.WithField(perr.New(perr.ErrorCodeValidation, err.Error()), "archived")
	}
	return st, nil
}

// @Summary Running frame
// @Tags tracking
// @Produce json
// @Success 200 {object} domain.ProjectFrame "ok"
// @Failure 404 {object} httpkit.Envelope "nothing running"
// @Router /tracking/current [get]
func (h *handlers) current(r *stdhttp.Request) (any, error) {
	return pass(h.svc.Current(r.Context()))
}

// @Summary Start tracking a project
// @Tags tracking
// @Accept json
// @Produce json
// @Param payload body domain.StartInput true "Start"
// @Success 201 {object} domain.ProjectFrame "started"
// @Failure 404 {object} httpkit.Envelope "unknown project"
// @Failure 409 {object} httpkit.Envelope "already tracking"
// @Router /tracking/start [post]
func (h *handlers) start(r *stdhttp.Request, in domain.StartInput) (any, error) {
	return created(h.svc.Start(r.Context(), in.Project, in.Create))
}

// @Summary Stop the running frame
// @Tags tracking
// @Produce json
// @Success 200 {object} domain.StopView "frame is null when nothing ran"
// @Router /tracking/stop [post]
func (h *handlers) stop(r *stdhttp.Request) (any, error) {
	pf, err := h.svc.Stop(r.Context())
	if err != nil {
		return nil, err
	}
	return domain.StopView{Frame: pf}, nil
}

// @Summary List projects
// @Tags projects
// @Produce json
// @Param archived query string false "not_archived (default), only_archived or both"
// @Success 200 {array} domain.Project "ok"
// @Router /tracking/projects [get]
func (h *handlers) projects(r *stdhttp.Request) (any, error) {
	st, err := archivedParam(r)
	if err != nil {
		return nil, err
	}
	return pass(h.svc.Projects(r.Context(), st))
}

// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param payload body domain.NameInput true "Project"
// @Success 201 {object} domain.Project "created"
// @Failure 409 {object} httpkit.Envelope "exists"
// @Router /tracking/projects [post]
func (h *handlers) createProject(r *stdhttp.Request, in domain.NameInput) (any, error) {
	return created(h.svc.CreateProject(r.Context(), in.Name))
}

// @Summary Archive or restore a project
// @Tags projects
// @Accept json
// @Produce json
// @Param payload body domain.ArchiveInput true "Archive"
// @Success 200 {object} domain.Project "ok"
// @Router /tracking/projects/archive [post]
func (h *handlers) archiveProject(r *stdhttp.Request, in domain.ArchiveInput) (any, error) {
	return pass(h.svc.ArchiveProject(r.Context(), in.Name, in.Archived))
}

// @Summary Tags on a project
// @Tags projects
// @Produce json
// @Param name path string true "Project name"
// @Success 200 {array} domain.Tag "ok"
// @Router /tracking/projects/{name}/tags [get]
func (h *handlers) projectTags(r *stdhttp.Request) (any, error) {
	return pass(h.svc.ProjectTags(r.Context(), chi.URLParam(r, "name")))
}

// @Summary List tags
// @Tags tags
// @Produce json
// @Param archived query string false "not_archived (default), only_archived or both"
// @Success 200 {array} domain.Tag "ok"
// @Router /tracking/tags [get]
func (h *handlers) tags(r *stdhttp.Request) (any, error) {
	st, err := archivedParam(r)
	if err != nil {
		return nil, err
	}
	return pass(h.svc.Tags(r.Context(), st))
}

// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param payload body domain.NameInput true "Tag"
// @Success 201 {object} domain.Tag "created"
// @Router /tracking/tags [post]
func (h *handlers) createTag(r *stdhttp.Request, in domain.NameInput) (any, error) {
	return created(h.svc.CreateTag(r.Context(), in.Name))
}

// @Summary Archive or restore a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param payload body domain.ArchiveInput true "Archive"
// @Success 200 {object} domain.Tag "ok"
// @Router /tracking/tags/archive [post]
func (h *handlers) archiveTag(r *stdhttp.Request, in domain.ArchiveInput) (any, error) {
	return pass(h.svc.ArchiveTag(r.Context(), in.Name, in.Archived))
}

// @Summary Tag projects
// @Tags tags
// @Accept json
// @Param payload body domain.AssignInput true "Assign"
// @Success 204 "assigned"
// @Router /tracking/tags/assign [post]
func (h *handlers) assign(r *stdhttp.Request, in domain.AssignInput) (any, error) {
	if err := h.svc.TagProjects(r.Context(), in.Tags, in.Projects); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Resolve a phrase such as "last week" to a time span
// @Tags spans
// @Accept json
// @Produce json
// @Param payload body domain.SpanInput true "Phrase"
// @Success 200 {object} domain.SpanView "ok"
// @Failure 422 {object} httpkit.Envelope "phrase not understood"
// @Router /tracking/span [post]
func (h *handlers) span(r *stdhttp.Request, in domain.SpanInput) (any, error) {
	sp, err := h.svc.Resolve(r.Context(), in.Span)
	if err != nil {
		return nil, err
	}
	return domain.SpanView{Start: sp.Start(), End: sp.End(), Duration: ptime.FormatDuration(sp.Duration())}, nil
}

// @Summary Frames overlapping a phrase
// @Tags spans
// @Accept json
// @Produce json
// @Param payload body domain.SpanInput true "Phrase"
// @Success 200 {object} domain.FramesView "ok"
// @Router /tracking/frames [post]
func (h *handlers) frames(r *stdhttp.Request, in domain.SpanInput) (any, error) {
	return pass(h.svc.Frames(r.Context(), in.Span, orDefault(in.Archived)))
}

// @Summary Per-project totals over a phrase
// @Tags spans
// @Accept json
// @Produce json
// @Param payload body domain.SpanInput true "Phrase"
// @Success 200 {object} domain.Report "ok"
// @Router /tracking/report [post]
func (h *handlers) report(r *stdhttp.Request, in domain.SpanInput) (any, error) {
	return pass(h.svc.Report(r.Context(), in.Span, orDefault(in.Archived)))
}

func orDefault(st domain.ArchivedState) domain.ArchivedState {
	if st == "" {
		return domain.NotArchived
	}
	return st
}
