package portal

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// DoctorQuery filters and pages the cached directory. Pages are 1-based.
type DoctorQuery struct {
	Search         string
	Specialization string
	Page           int
	PageSize       int
}

// DoctorPage is one page of directory results with filter-wide totals.
type DoctorPage struct {
	Doctors    []Doctor
	TotalCount int
	TotalPages int
}

// DoctorDirectory caches the doctor list and answers filtered, paged
// queries locally. The server returns the whole directory; searching and
// paging never go back over the wire.
type DoctorDirectory struct {
	mu     sync.RWMutex
	client *Client
	log    zerolog.Logger
	items  []Doctor
}

func NewDoctorDirectory(client *Client, log zerolog.Logger) *DoctorDirectory {
	return &DoctorDirectory{client: client, log: log}
}

// Refresh replaces the cached directory. Failures are logged and leave the
// cache untouched.
func (d *DoctorDirectory) Refresh(ctx context.Context) {
	items, err := d.client.Doctors(ctx)
	if err != nil {
		d.log.Error().Err(err).Msg("failed to refresh doctors")
		return
	}
	d.mu.Lock()
	d.items = items
	d.mu.Unlock()
}

// All returns a copy of the full cached directory.
func (d *DoctorDirectory) All() []Doctor {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Doctor, len(d.items))
	copy(out, d.items)
	return out
}

// Specializations returns the distinct specializations present, in
// directory order, for building filter dropdowns.
func (d *DoctorDirectory) Specializations() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, doc := range d.items {
		if !seen[doc.Specialization] {
			seen[doc.Specialization] = true
			out = append(out, doc.Specialization)
		}
	}
	return out
}

// Query filters the directory by free-text search (name, specialization,
// hospital; case-insensitive substring) and exact specialization, then
// slices out the requested page.
func (d *DoctorDirectory) Query(q DoctorQuery) DoctorPage {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 6
	}

	d.mu.RLock()
	filtered := make([]Doctor, 0, len(d.items))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, doc := range d.items {
		if search != "" &&
			!strings.Contains(strings.ToLower(doc.Name), search) &&
			!strings.Contains(strings.ToLower(doc.Specialization), search) &&
			!strings.Contains(strings.ToLower(doc.Hospital), search) {
			continue
		}
		if q.Specialization != "" && doc.Specialization != q.Specialization {
			continue
		}
		filtered = append(filtered, doc)
	}
	d.mu.RUnlock()

	total := len(filtered)
	totalPages := (total + q.PageSize - 1) / q.PageSize

	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	return DoctorPage{
		Doctors:    filtered[start:end],
		TotalCount: total,
		TotalPages: totalPages,
	}
}
