package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/errdefs"
)

type AnyTime struct{}

func (a AnyTime) Match(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}

var evaluationCols = []string{
	"id", "title", "owner_id", "start_date", "due_date", "stop_date", "view_date", "auth_control",
	"modify_responses_allowed", "locked", "state", "available_template_id", "reminder_template_id",
	"created_at", "edited_at",
}

var assignGroupCols = []string{
	"id", "evaluation_id", "group_id", "group_type", "instructor_approval", "instructors_view_results",
	"students_view_results", "owner_id", "created_at", "edited_at",
}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Store) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool, NewStore(mockPool)
}

func TestStore_FindEvaluation(t *testing.T) {
	mockPool, store := newMock(t)
	ctx := context.Background()

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	due := start.Add(72 * time.Hour)
	stop := due.Add(24 * time.Hour)
	view := stop.Add(24 * time.Hour)
	tmpl := "tmpl-1"
	reminder := "tmpl-2"

	mockPool.ExpectQuery("SELECT .* FROM evaluations WHERE id =").
		WithArgs("eval-1").
		WillReturnRows(pgxmock.NewRows(evaluationCols).
			AddRow("eval-1", "Course survey", "owner", &start, &due, &stop, &view, "AUTH_REQUIRED",
				true, false, "ACTIVE", &tmpl, &reminder, start, start))

	eval, err := store.FindEvaluation(ctx, "eval-1")
	require.NoError(t, err)
	assert.Equal(t, "owner", eval.OwnerID)
	assert.Equal(t, domain.StateActive, eval.State)
	assert.Equal(t, domain.AuthControlAuthRequired, eval.AuthControl)
	assert.Equal(t, due, *eval.DueDate)
	assert.True(t, eval.UsesTemplate("tmpl-2"))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestStore_FindEvaluation_NotFound(t *testing.T) {
	mockPool, store := newMock(t)

	mockPool.ExpectQuery("SELECT .* FROM evaluations WHERE id =").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.FindEvaluation(context.Background(), "missing")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestStore_SaveEvaluationState(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPool, store := newMock(t)
		mockPool.ExpectExec("UPDATE evaluations SET state").
			WithArgs("DUE", AnyTime{}, "eval-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := store.SaveEvaluationState(context.Background(), "eval-1", domain.StateDue, time.Now())
		assert.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("NoRows", func(t *testing.T) {
		mockPool, store := newMock(t)
		mockPool.ExpectExec("UPDATE evaluations SET state").
			WithArgs("DUE", AnyTime{}, "eval-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := store.SaveEvaluationState(context.Background(), "eval-1", domain.StateDue, time.Now())
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

func TestStore_ListEvaluationsByState(t *testing.T) {
	mockPool, store := newMock(t)
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	due := start.Add(time.Hour)
	tmpl := "t"

	mockPool.ExpectQuery("SELECT .* FROM evaluations\\s+WHERE state = ANY").
		WithArgs([]string{"NEW", "ACTIVE"}, "", 10).
		WillReturnRows(pgxmock.NewRows(evaluationCols).
			AddRow("a", "A", "o", &start, &due, &due, &due, "NONE", false, false, "NEW", &tmpl, &tmpl, start, start).
			AddRow("b", "B", "o", &start, &due, &due, &due, "NONE", false, false, "ACTIVE", &tmpl, &tmpl, start, start))

	evals, err := store.ListEvaluationsByState(context.Background(), []domain.State{domain.StateNew, domain.StateActive}, "", 10)
	require.NoError(t, err)
	require.Len(t, evals, 2)
	assert.Equal(t, "b", evals[1].ID)
	assert.Equal(t, domain.StateActive, evals[1].State)
}

func TestStore_CreateAssignGroup(t *testing.T) {
	group := &domain.AssignGroup{
		ID:           "ag-1",
		EvaluationID: "eval-1",
		GroupID:      "site-1",
		GroupType:    domain.GroupTypeSite,
		Flags:        domain.SafeFlags{InstructorApproval: true},
		OwnerID:      "owner",
		CreatedAt:    time.Now(),
		EditedAt:     time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		mockPool, store := newMock(t)
		mockPool.ExpectExec("INSERT INTO assign_groups").
			WithArgs("ag-1", "eval-1", "site-1", "SITE", true, false, false, "owner", AnyTime{}, AnyTime{}).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, store.CreateAssignGroup(context.Background(), group))
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockPool, store := newMock(t)
		mockPool.ExpectExec("INSERT INTO assign_groups").
			WithArgs("ag-1", "eval-1", "site-1", "SITE", true, false, false, "owner", AnyTime{}, AnyTime{}).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "assign_groups_evaluation_group_key"})

		err := store.CreateAssignGroup(context.Background(), group)
		assert.ErrorIs(t, err, errdefs.ErrDuplicateAssignment)
	})

	t.Run("MissingEvaluation", func(t *testing.T) {
		mockPool, store := newMock(t)
		mockPool.ExpectExec("INSERT INTO assign_groups").
			WithArgs("ag-1", "eval-1", "site-1", "SITE", true, false, false, "owner", AnyTime{}, AnyTime{}).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := store.CreateAssignGroup(context.Background(), group)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

func TestStore_FindAssignGroup(t *testing.T) {
	mockPool, store := newMock(t)
	now := time.Now()

	mockPool.ExpectQuery("SELECT .* FROM assign_groups WHERE evaluation_id = \\$1 AND group_id = \\$2").
		WithArgs("eval-1", "site-1").
		WillReturnRows(pgxmock.NewRows(assignGroupCols).
			AddRow("ag-1", "eval-1", "site-1", "SITE", true, true, false, "owner", now, now))

	group, err := store.FindAssignGroup(context.Background(), "eval-1", "site-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SafeFlags{InstructorApproval: true, InstructorsViewResults: true}, group.Flags)
	assert.Equal(t, domain.GroupTypeSite, group.GroupType)
}

func TestStore_CountApprovedAssignGroups(t *testing.T) {
	t.Run("AllGroups", func(t *testing.T) {
		mockPool, store := newMock(t)
		mockPool.ExpectQuery("SELECT COUNT\\(\\*\\) FROM assign_groups WHERE evaluation_id = \\$1 AND instructor_approval$").
			WithArgs("eval-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

		n, err := store.CountApprovedAssignGroups(context.Background(), "eval-1", nil)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("Subset", func(t *testing.T) {
		mockPool, store := newMock(t)
		mockPool.ExpectQuery("group_id = ANY").
			WithArgs("eval-1", []string{"site-1"}).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

		n, err := store.CountApprovedAssignGroups(context.Background(), "eval-1", []string{"site-1"})
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestStore_DeleteAssignGroup(t *testing.T) {
	mockPool, store := newMock(t)
	mockPool.ExpectExec("DELETE FROM assign_groups").
		WithArgs("ag-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := store.DeleteAssignGroup(context.Background(), "ag-1")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestStore_FindResponses(t *testing.T) {
	mockPool, store := newMock(t)
	started := time.Now()
	completed := started.Add(time.Minute)

	mockPool.ExpectQuery("SELECT .* FROM responses").
		WithArgs("eval-1", "student", "site-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "evaluation_id", "group_id", "started_at", "completed_at"}).
			AddRow("r-1", "student", "eval-1", "site-1", started, &completed))

	responses, err := store.FindResponses(context.Background(), "eval-1", "student", "site-1")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].IsComplete())
}

func TestStore_RespondentIDs(t *testing.T) {
	mockPool, store := newMock(t)
	mockPool.ExpectQuery("SELECT DISTINCT owner_id FROM responses").
		WithArgs("eval-1", "site-1").
		WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow("a").AddRow("b"))

	ids, err := store.RespondentIDs(context.Background(), "eval-1", "site-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestStore_FindDefaultEmailTemplate(t *testing.T) {
	mockPool, store := newMock(t)
	defaultType := "REMINDER"

	mockPool.ExpectQuery("SELECT .* FROM email_templates WHERE default_type = \\$1").
		WithArgs("REMINDER").
		WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "type", "default_type", "subject", "message"}).
			AddRow("def-rem", "admin", "REMINDER", &defaultType, "Reminder", "Please respond"))

	tmpl, err := store.FindDefaultEmailTemplate(context.Background(), domain.EmailTemplateReminder)
	require.NoError(t, err)
	require.NotNil(t, tmpl.DefaultType)
	assert.Equal(t, domain.EmailTemplateReminder, *tmpl.DefaultType)
}

func TestStore_CountVisibleTemplates(t *testing.T) {
	mockPool, store := newMock(t)
	mockPool.ExpectQuery("SELECT COUNT\\(\\*\\) FROM templates WHERE owner_id").
		WithArgs("owner", []string{"public"}).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	n, err := store.CountVisibleTemplates(context.Background(), "owner", []domain.Sharing{domain.SharingPublic})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestHandleError(t *testing.T) {
	assert.ErrorIs(t, handleError(pgx.ErrNoRows), errdefs.ErrNotFound)
	assert.ErrorIs(t, handleError(&pgconn.PgError{Code: "23505"}), errdefs.ErrDuplicateAssignment)

	boom := errors.New("boom")
	err := handleError(boom)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, errdefs.ErrNotFound))
}
