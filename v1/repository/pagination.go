package repository

import "context"

// Pagination defaults applied when PageRequest fields are zero.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest describes one page of an offset-paginated query.
type PageRequest struct {
	// Page is the 1-based page number. Values < 1 fall back to DefaultPage.
	Page int

	// PageSize is the number of records per page. Values < 1 fall back to
	// DefaultPageSize.
	PageSize int

	// Condition and Args optionally filter the paginated set, in the same
	// pass-through form the other operations use.
	Condition interface{}
	Args      []interface{}

	// OrderBy optionally orders the page, e.g. "created_at DESC".
	OrderBy interface{}
}

// Page is one page of results together with the paging bookkeeping.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// offsetFor computes the row offset for a 1-based page.
func offsetFor(page, pageSize int) int {
	return (page - 1) * pageSize
}

// totalPages computes ceil(total / pageSize).
func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// Paginate runs a count query and a limited/offset data query for the
// requested page. The count always runs, even when the data query alone
// could prove it is the last page; both results are needed to fill the
// bookkeeping fields.
func (r *Repository[T]) Paginate(ctx context.Context, req PageRequest) (*Page[T], error) {
	page := req.Page
	if page < 1 {
		page = DefaultPage
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	var conds []interface{}
	if req.Condition != nil {
		conds = append([]interface{}{req.Condition}, req.Args...)
	}

	total, err := r.CountBy(ctx, conds...)
	if err != nil {
		return nil, err
	}

	qb, err := r.query(ctx)
	if err != nil {
		return nil, err
	}
	if req.Condition != nil {
		qb = qb.Where(req.Condition, req.Args...)
	}
	if req.OrderBy != nil {
		qb = qb.Order(req.OrderBy)
	}

	var rows []T
	if err := qb.Limit(pageSize).Offset(offsetFor(page, pageSize)).Find(&rows); err != nil {
		return nil, err
	}

	return &Page[T]{
		Data:       rows,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}
