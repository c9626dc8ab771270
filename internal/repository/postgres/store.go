package postgres

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/errdefs"
	"evaluation_service/internal/service"
)

var _ service.Store = (*Store)(nil)

// DB is satisfied by *pgxpool.Pool and by pgxmock pools.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindEvaluation(ctx context.Context, id string) (*domain.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE id = $1`
	var row evaluationRow
	if err := pgxscan.Get(ctx, s.db, &row, query, id); err != nil {
		return nil, handleError(err)
	}
	return row.toDomain(), nil
}

func (s *Store) SaveEvaluationState(ctx context.Context, id string, state domain.State, editedAt time.Time) error {
	query := `UPDATE evaluations SET state = $1, edited_at = $2 WHERE id = $3`
	tag, err := s.db.Exec(ctx, query, string(state), editedAt, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (s *Store) ListEvaluationsByState(ctx context.Context, states []domain.State, afterID string, limit int) ([]*domain.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations
		WHERE state = ANY($1) AND id > $2
		ORDER BY id
		LIMIT $3`
	var rows []evaluationRow
	if err := pgxscan.Select(ctx, s.db, &rows, query, statesToStrings(states), afterID, limit); err != nil {
		return nil, handleError(err)
	}
	out := make([]*domain.Evaluation, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (s *Store) FindAssignGroupByID(ctx context.Context, id string) (*domain.AssignGroup, error) {
	query := `SELECT ` + assignGroupColumns + ` FROM assign_groups WHERE id = $1`
	var row assignGroupRow
	if err := pgxscan.Get(ctx, s.db, &row, query, id); err != nil {
		return nil, handleError(err)
	}
	return row.toDomain(), nil
}

func (s *Store) FindAssignGroup(ctx context.Context, evaluationID, groupID string) (*domain.AssignGroup, error) {
	query := `SELECT ` + assignGroupColumns + ` FROM assign_groups WHERE evaluation_id = $1 AND group_id = $2`
	var row assignGroupRow
	if err := pgxscan.Get(ctx, s.db, &row, query, evaluationID, groupID); err != nil {
		return nil, handleError(err)
	}
	return row.toDomain(), nil
}

func (s *Store) FindAssignGroups(ctx context.Context, evaluationIDs []string, includeUnapproved bool) ([]*domain.AssignGroup, error) {
	query := `SELECT ` + assignGroupColumns + ` FROM assign_groups
		WHERE evaluation_id = ANY($1) AND ($2 OR instructor_approval)
		ORDER BY created_at, id`
	var rows []assignGroupRow
	if err := pgxscan.Select(ctx, s.db, &rows, query, evaluationIDs, includeUnapproved); err != nil {
		return nil, handleError(err)
	}
	out := make([]*domain.AssignGroup, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (s *Store) CountAssignGroups(ctx context.Context, evaluationID string) (int, error) {
	query := `SELECT COUNT(*) FROM assign_groups WHERE evaluation_id = $1`
	var n int
	if err := s.db.QueryRow(ctx, query, evaluationID).Scan(&n); err != nil {
		return 0, handleError(err)
	}
	return n, nil
}

// CountApprovedAssignGroups counts approved groups of the evaluation. A nil
// groupIDs counts all of them, otherwise only those listed.
func (s *Store) CountApprovedAssignGroups(ctx context.Context, evaluationID string, groupIDs []string) (int, error) {
	var (
		n   int
		err error
	)
	if groupIDs == nil {
		query := `SELECT COUNT(*) FROM assign_groups WHERE evaluation_id = $1 AND instructor_approval`
		err = s.db.QueryRow(ctx, query, evaluationID).Scan(&n)
	} else {
		query := `SELECT COUNT(*) FROM assign_groups
			WHERE evaluation_id = $1 AND instructor_approval AND group_id = ANY($2)`
		err = s.db.QueryRow(ctx, query, evaluationID, groupIDs).Scan(&n)
	}
	if err != nil {
		return 0, handleError(err)
	}
	return n, nil
}

func (s *Store) CreateAssignGroup(ctx context.Context, group *domain.AssignGroup) error {
	query := `
		INSERT INTO assign_groups (id, evaluation_id, group_id, group_type, instructor_approval,
			instructors_view_results, students_view_results, owner_id, created_at, edited_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.Exec(ctx, query,
		group.ID,
		group.EvaluationID,
		group.GroupID,
		string(group.GroupType),
		group.Flags.InstructorApproval,
		group.Flags.InstructorsViewResults,
		group.Flags.StudentsViewResults,
		group.OwnerID,
		group.CreatedAt,
		group.EditedAt,
	)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (s *Store) SaveAssignGroupFlags(ctx context.Context, id string, flags domain.SafeFlags, editedAt time.Time) error {
	query := `
		UPDATE assign_groups
		SET instructor_approval = $1, instructors_view_results = $2, students_view_results = $3, edited_at = $4
		WHERE id = $5
	`
	tag, err := s.db.Exec(ctx, query,
		flags.InstructorApproval,
		flags.InstructorsViewResults,
		flags.StudentsViewResults,
		editedAt,
		id,
	)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAssignGroup(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM assign_groups WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (s *Store) FindResponseByID(ctx context.Context, id string) (*domain.Response, error) {
	query := `SELECT ` + responseColumns + ` FROM responses WHERE id = $1`
	var row responseRow
	if err := pgxscan.Get(ctx, s.db, &row, query, id); err != nil {
		return nil, handleError(err)
	}
	return row.toDomain(), nil
}

func (s *Store) FindResponses(ctx context.Context, evaluationID, ownerID, groupID string) ([]*domain.Response, error) {
	query := `SELECT ` + responseColumns + ` FROM responses
		WHERE evaluation_id = $1 AND owner_id = $2 AND group_id = $3
		ORDER BY id`
	var rows []responseRow
	if err := pgxscan.Select(ctx, s.db, &rows, query, evaluationID, ownerID, groupID); err != nil {
		return nil, handleError(err)
	}
	out := make([]*domain.Response, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (s *Store) RespondentIDs(ctx context.Context, evaluationID, groupID string) ([]string, error) {
	query := `SELECT DISTINCT owner_id FROM responses WHERE evaluation_id = $1 AND group_id = $2 ORDER BY owner_id`
	var ids []string
	if err := pgxscan.Select(ctx, s.db, &ids, query, evaluationID, groupID); err != nil {
		return nil, handleError(err)
	}
	return ids, nil
}

func (s *Store) FindEmailTemplate(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	query := `SELECT ` + emailTemplateColumns + ` FROM email_templates WHERE id = $1`
	var row emailTemplateRow
	if err := pgxscan.Get(ctx, s.db, &row, query, id); err != nil {
		return nil, handleError(err)
	}
	return row.toDomain(), nil
}

func (s *Store) FindDefaultEmailTemplate(ctx context.Context, t domain.EmailTemplateType) (*domain.EmailTemplate, error) {
	query := `SELECT ` + emailTemplateColumns + ` FROM email_templates WHERE default_type = $1 ORDER BY id LIMIT 1`
	var row emailTemplateRow
	if err := pgxscan.Get(ctx, s.db, &row, query, string(t)); err != nil {
		return nil, handleError(err)
	}
	return row.toDomain(), nil
}

func (s *Store) CountTemplates(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM templates`).Scan(&n); err != nil {
		return 0, handleError(err)
	}
	return n, nil
}

func (s *Store) CountVisibleTemplates(ctx context.Context, userID string, sharing []domain.Sharing) (int, error) {
	query := `SELECT COUNT(*) FROM templates WHERE owner_id = $1 OR sharing = ANY($2)`
	var n int
	if err := s.db.QueryRow(ctx, query, userID, sharingToStrings(sharing)).Scan(&n); err != nil {
		return 0, handleError(err)
	}
	return n, nil
}
