package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ttt/internal/platform/store"
	ptime "ttt/internal/platform/time"
	"ttt/internal/services/tracking/domain"
)

// named covers projects and tags, which share a table layout
type named interface {
	domain.Project | domain.Tag
}

func scanNamed[T named](r *sqlRepo) func(store.Row) (T, error) {
	return func(row store.Row) (T, error) {
		var (
			p    domain.Project
			last int64
		)
		if err := row.Scan(&p.ID, &p.Name, &p.Archived, &last); err != nil {
			return T(p), err
		}
		p.LastAccess = ptime.FromUnix(last, r.loc)
		return T(p), nil
	}
}

func listNamed[T named](ctx context.Context, r *sqlRepo, what, sql string, args ...any) ([]T, error) {
	out, err := store.Many(ctx, r.q, scanNamed[T](r), sql, args...)
	return out, wrapDB(err, "list "+what)
}

// table is always one of the two constants below, never user input
const (
	tblProjects = "projects"
	tblTags     = "tags"
)

func createNamed[T named](ctx context.Context, r *sqlRepo, table, name string, now time.Time) (T, error) {
	now = now.Truncate(time.Second)
	id, err := store.Scalar[int64](ctx, r.q,
		fmt.Sprintf(`INSERT INTO %s (name, archived, last_access_ts) VALUES ($1, FALSE, $2) RETURNING id`, table),
		name, ptime.Unix(now))
	if err != nil {
		return T(domain.Project{}), wrapDB(err, fmt.Sprintf("create %s %q", table[:len(table)-1], name))
	}
	return T(domain.Project{ID: id, Name: name, LastAccess: now.In(r.loc)}), nil
}

func namedBy[T named](ctx context.Context, r *sqlRepo, table, col string, arg any, missing error) (T, error) {
	v, err := store.One(ctx, r.q, scanNamed[T](r),
		fmt.Sprintf(`SELECT id, name, archived, last_access_ts FROM %s WHERE %s = $1`, table, col), arg)
	if store.IsNoRows(err) {
		return v, missing
	}
	return v, wrapDB(err, "lookup "+table)
}

func listAll[T named](ctx context.Context, r *sqlRepo, table string, archived domain.ArchivedState) ([]T, error) {
	all, want := archived.Filter()
	return listNamed[T](ctx, r, table, fmt.Sprintf(
		`SELECT id, name, archived, last_access_ts FROM %s WHERE ($1 OR archived = $2) ORDER BY last_access_ts, id`, table),
		all, want)
}

func setArchived(ctx context.Context, r *sqlRepo, table string, id int64, archived bool, missing error) error {
	err := store.ExecOne(ctx, r.q, fmt.Sprintf(`UPDATE %s SET archived = $2 WHERE id = $1`, table), id, archived)
	if err != nil && !isNotOne(err) {
		return wrapDB(err, "archive "+table)
	}
	if err != nil {
		return missing
	}
	return nil
}

func touch(ctx context.Context, r *sqlRepo, table string, id int64, now time.Time, missing error) error {
	err := store.ExecOne(ctx, r.q, fmt.Sprintf(`UPDATE %s SET last_access_ts = $2 WHERE id = $1`, table), id, ptime.Unix(now))
	if err != nil && !isNotOne(err) {
		return wrapDB(err, "touch "+table)
	}
	if err != nil {
		return missing
	}
	return nil
}

func (r *sqlRepo) CreateProject(ctx context.Context, name string, now time.Time) (domain.Project, error) {
	return createNamed[domain.Project](ctx, r, tblProjects, name, now)
}

func (r *sqlRepo) ProjectByID(ctx context.Context, id int64) (domain.Project, error) {
	return namedBy[domain.Project](ctx, r, tblProjects, "id", id, domain.ErrProjectNotFound)
}

func (r *sqlRepo) ProjectByName(ctx context.Context, name string) (domain.Project, error) {
	return namedBy[domain.Project](ctx, r, tblProjects, "name", name, domain.ErrProjectNotFound)
}

func (r *sqlRepo) ListProjects(ctx context.Context, archived domain.ArchivedState) ([]domain.Project, error) {
	return listAll[domain.Project](ctx, r, tblProjects, archived)
}

func (r *sqlRepo) SetProjectArchived(ctx context.Context, id int64, archived bool) error {
	return setArchived(ctx, r, tblProjects, id, archived, domain.ErrProjectNotFound)
}

func (r *sqlRepo) TouchProject(ctx context.Context, id int64, now time.Time) error {
	return touch(ctx, r, tblProjects, id, now, domain.ErrProjectNotFound)
}

func (r *sqlRepo) CreateTag(ctx context.Context, name string, now time.Time) (domain.Tag, error) {
	return createNamed[domain.Tag](ctx, r, tblTags, name, now)
}

func (r *sqlRepo) TagByName(ctx context.Context, name string) (domain.Tag, error) {
	return namedBy[domain.Tag](ctx, r, tblTags, "name", name, domain.ErrTagNotFound)
}

func (r *sqlRepo) ListTags(ctx context.Context, archived domain.ArchivedState) ([]domain.Tag, error) {
	return listAll[domain.Tag](ctx, r, tblTags, archived)
}

func (r *sqlRepo) SetTagArchived(ctx context.Context, id int64, archived bool) error {
	return setArchived(ctx, r, tblTags, id, archived, domain.ErrTagNotFound)
}

func (r *sqlRepo) TouchTag(ctx context.Context, id int64, now time.Time) error {
	return touch(ctx, r, tblTags, id, now, domain.ErrTagNotFound)
}

func isNotOne(err error) bool { return errors.Is(err, store.ErrNotOneRow) }
