package postgres

import (
	"errors"
	"fmt"
	"strings"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps constraint violations onto storage sentinels.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: invalid reference (%s)", storage.ErrConflict, pgErr.ConstraintName)
		}
	}
	return err
}

var jobColumnNames = []string{
	"id", "company", "position", "job_status", "job_type", "job_location", "workplace_type", "categories",
	"job_vacancy", "job_salary", "job_deadline", "job_description", "job_skills", "job_facilities", "job_contact",
	"eligibility", "student_currently_studying", "year_selection", "experience_min", "experience_max",
	"visibility_status", "admin_comment", "created_by", "created_at", "updated_at",
}

var jobColumns = strings.Join(jobColumnNames, ", ")

// qualifiedJobColumns prefixes every job column with a table alias for joins.
func qualifiedJobColumns(alias string) string {
	cols := make([]string, len(jobColumnNames))
	for i, c := range jobColumnNames {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// jobSortClauses maps sort keys to ORDER BY clauses. The id tiebreaker keeps
// pages stable when the primary key of the sort collides.
var jobSortClauses = map[models.JobSort]string{
	models.SortNewest: "created_at DESC, id DESC",
	models.SortOldest: "created_at ASC, id ASC",
	models.SortAZ:     "position ASC, id ASC",
	models.SortZA:     "position DESC, id DESC",
}

func jobOrderBy(sort models.JobSort) string {
	if clause, ok := jobSortClauses[sort]; ok {
		return clause
	}
	return jobSortClauses[models.SortNewest]
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE pattern matching it as a literal substring.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// jobListQuery holds the predicates shared by the fetch and count statements.
type jobListQuery struct {
	conditions []string
	args       []any
	orderBy    string
	limit      int
	offset     int
}

// newJobListQuery builds the WHERE predicates for a listing from the visibility scope and search term.
func newJobListQuery(filter storage.JobListFilter) *jobListQuery {
	q := &jobListQuery{
		orderBy: jobOrderBy(filter.Sort),
		limit:   filter.Limit,
		offset:  filter.Offset,
	}

	if v := filter.Visibility; !v.Unrestricted {
		q.args = append(q.args, models.VisibilityAccepted)
		if v.OwnerID > 0 {
			q.args = append(q.args, v.OwnerID)
			q.conditions = append(q.conditions,
				fmt.Sprintf("(visibility_status = $%d OR created_by = $%d)", len(q.args)-1, len(q.args)))
		} else {
			q.conditions = append(q.conditions, fmt.Sprintf("visibility_status = $%d", len(q.args)))
		}
	}

	if term := strings.TrimSpace(filter.Search); term != "" {
		q.args = append(q.args, containsPattern(term))
		q.conditions = append(q.conditions, fmt.Sprintf(
			"(company ILIKE $%[1]d OR position ILIKE $%[1]d OR job_status ILIKE $%[1]d OR job_type ILIKE $%[1]d OR job_location ILIKE $%[1]d)",
			len(q.args)))
	}

	return q
}

func (q *jobListQuery) where() string {
	if len(q.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conditions, " AND ")
}

// fetch returns the row statement: shared predicates plus ORDER BY, LIMIT and OFFSET.
func (q *jobListQuery) fetch() (string, []any) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT ")
	queryBuilder.WriteString(jobColumns)
	queryBuilder.WriteString(" FROM jobs")
	queryBuilder.WriteString(q.where())
	queryBuilder.WriteString(" ORDER BY ")
	queryBuilder.WriteString(q.orderBy)

	args := append([]any(nil), q.args...)
	args = append(args, q.limit)
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	args = append(args, q.offset)
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	return queryBuilder.String(), args
}

// count returns the total-matches statement for the same predicates.
func (q *jobListQuery) count() (string, []any) {
	return "SELECT COUNT(*) FROM jobs" + q.where(), append([]any(nil), q.args...)
}
