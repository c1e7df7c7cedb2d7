package render

import (
	stderrors "errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/observability"
	"github.com/matzehuels/requiremedia/pkg/registry"
)

// Requirements renders the requirements of reg that belong to groups and
// concatenates the fragments. Groups are emitted one after another in the
// order given, each in dependency order, so "css", "js" puts every
// stylesheet before the first script. With no groups, every recognized group
// of table is rendered. A nil table means [DefaultTable].
//
// Requirements whose group has no renderer are skipped. A failing fragment
// is left out and its error joined into the returned error; the other
// fragments are still returned. A nil registry renders as "".
func Requirements(reg *registry.Registry, table *Table, rc any, groups ...string) (string, error) {
	if reg == nil {
		return "", nil
	}
	if table == nil {
		table = DefaultTable()
	}
	if len(groups) == 0 {
		groups = table.Groups()
	}

	start := time.Now()
	var (
		sb        strings.Builder
		errs      []error
		fragments int
	)
	sorted := reg.Sorted()
	for _, group := range groups {
		r, ok := table.Get(group)
		if !ok {
			continue
		}
		for _, req := range sorted {
			if req.Group != group {
				continue
			}
			frag, err := r.Render(req, rc)
			if err != nil {
				errs = append(errs, errors.Wrap(errors.ErrCodeInternal, err, "render %s", req.Name))
				continue
			}
			sb.WriteString(frag)
			fragments++
		}
	}

	err := stderrors.Join(errs...)
	observability.Render().OnRender(groups, fragments, time.Since(start), err)
	return sb.String(), err
}

// Deferred is a render point whose output is computed on demand.
//
// A Deferred is created where the output belongs and finalized with
// [Deferred.Render] once the document has registered everything. The first
// call computes and keeps the result; later calls return it unchanged.
type Deferred struct {
	reg    *registry.Registry
	table  *Table
	rc     any
	groups []string
	logger *log.Logger

	done bool
	out  string
	err  error
}

// DeferredOption configures a Deferred.
type DeferredOption func(*Deferred)

// WithLogger sets the logger that receives fragment errors.
func WithLogger(l *log.Logger) DeferredOption {
	return func(d *Deferred) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDeferred creates a render point for groups of reg. No work is done
// until [Deferred.Render].
func NewDeferred(reg *registry.Registry, table *Table, rc any, groups []string, opts ...DeferredOption) *Deferred {
	d := &Deferred{
		reg:    reg,
		table:  table,
		rc:     rc,
		groups: append([]string(nil), groups...),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Render returns the rendered fragments. Fragment errors are logged and
// available from [Deferred.Err]; they never prevent output.
func (d *Deferred) Render() string {
	if d.done {
		return d.out
	}
	d.out, d.err = Requirements(d.reg, d.table, d.rc, d.groups...)
	d.done = true
	if d.err != nil {
		d.logger.Error("render requirements", "groups", d.groups, "err", d.err)
	}
	return d.out
}

// Err returns the error of the first Render call, if any.
func (d *Deferred) Err() error { return d.err }

// String calls Render, so a Deferred can be handed to fmt.
func (d *Deferred) String() string { return d.Render() }
