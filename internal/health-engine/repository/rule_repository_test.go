package repository

import (
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/model"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestRuleRepoWithMockDB(t *testing.T) (RuleRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	repo := NewRuleRepository(gormDB)
	return repo, mock
}

func testRule() model.RemediationRule {
	scoreBelow := 50
	return model.RemediationRule{
		ID:     "auth-jwt-fix",
		Module: "auth-system",
		Condition: model.RuleCondition{
			ScoreBelow:    &scoreBelow,
			ErrorContains: "JWT verification failed",
		},
		Actions: []model.RemediationAction{
			{Type: model.ActionRestartService, Target: "auth", Description: "Restart the auth service"},
		},
		Enabled:         true,
		MaxAttempts:     3,
		CooldownMinutes: 15,
		NotifyOnFailure: true,
	}
}

func TestRuleRepository_CreateRule(t *testing.T) {
	rule := testRule()
	dbErr := errors.New("db error")

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success, Rule created",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "remediation_rules"`)).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error, Rule id already exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				pgErr := &pgconn.PgError{
					Code:           pgerrcode.UniqueViolation,
					ConstraintName: "remediation_rules_pkey",
				}
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "remediation_rules"`)).
					WillReturnError(pgErr)
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrRuleAlreadyExists,
		},
		{
			name: "Error, Generic database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "remediation_rules"`)).
					WillReturnError(dbErr)
				mock.ExpectRollback()
			},
			expectedError: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRuleRepoWithMockDB(t)
			tt.mockSetup(mock)

			created, err := repo.CreateRule(context.Background(), rule)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, rule.ID, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRuleRepository_UpdateRule(t *testing.T) {
	rule := testRule()
	dbErr := errors.New("db error")

	returnedRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "module", "condition", "actions", "enabled", "max_attempts", "cooldown_minutes", "notify_on_success", "notify_on_failure"}).
			AddRow(rule.ID, rule.Module, `{"score_below":50,"error_contains":"JWT verification failed"}`,
				`[{"type":"restart_service","target":"auth","description":"Restart the auth service"}]`,
				true, 3, 15, false, true)
	}

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success, Rule updated and returned",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "remediation_rules" SET`)).
					WillReturnRows(returnedRow())
				mock.ExpectCommit()
			},
		},
		{
			name: "Error, Rule not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "remediation_rules" SET`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrRuleNotFound,
		},
		{
			name: "Error, Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "remediation_rules" SET`)).
					WillReturnError(dbErr)
				mock.ExpectRollback()
			},
			expectedError: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRuleRepoWithMockDB(t)
			tt.mockSetup(mock)

			updated, err := repo.UpdateRule(context.Background(), rule)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, rule.ID, updated.ID)
				assert.Equal(t, rule.Condition, updated.Condition)
				assert.Equal(t, rule.Actions, updated.Actions)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRuleRepository_UpdateRule_PersistsZeroValuedFields(t *testing.T) {
	rule := testRule()
	rule.Enabled = false
	rule.NotifyOnFailure = false

	repo, mock := newTestRuleRepoWithMockDB(t)

	// The statement must carry the zero-valued columns; a struct update
	// without an explicit column selection would silently drop them and
	// disabling a rule would never reach the database.
	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE "remediation_rules" SET .*"enabled"=\$\d.* RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "module", "condition", "actions", "enabled", "max_attempts", "cooldown_minutes", "notify_on_success", "notify_on_failure"}).
			AddRow(rule.ID, rule.Module, `{"score_below":50,"error_contains":"JWT verification failed"}`,
				`[{"type":"restart_service","target":"auth","description":"Restart the auth service"}]`,
				false, 3, 15, false, false))
	mock.ExpectCommit()

	updated, err := repo.UpdateRule(context.Background(), rule)

	assert.NoError(t, err)
	assert.False(t, updated.Enabled)
	assert.False(t, updated.NotifyOnFailure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleRepository_DeleteRuleById(t *testing.T) {
	ruleID := "auth-jwt-fix"

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success, Rule deleted",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "remediation_rules" WHERE id = $1`)).
					WithArgs(ruleID).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error, Rule not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "remediation_rules" WHERE id = $1`)).
					WithArgs(ruleID).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrRuleNotFound,
		},
		{
			name: "Error, Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "remediation_rules" WHERE id = $1`)).
					WithArgs(ruleID).
					WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRuleRepoWithMockDB(t)
			tt.mockSetup(mock)

			err := repo.DeleteRuleById(context.Background(), ruleID)

			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRuleRepository_GetRuleById(t *testing.T) {
	rule := testRule()
	dbErr := errors.New("db error")

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success, Rule found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "module", "condition", "actions", "enabled", "max_attempts", "cooldown_minutes"}).
					AddRow(rule.ID, rule.Module, `{"score_below":50,"error_contains":"JWT verification failed"}`,
						`[{"type":"restart_service","target":"auth","description":"Restart the auth service"}]`,
						true, 3, 15)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "remediation_rules" WHERE id = $1 ORDER BY "remediation_rules"."id" LIMIT $2`)).
					WithArgs(rule.ID, 1).
					WillReturnRows(rows)
			},
		},
		{
			name: "Error, Rule not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "remediation_rules" WHERE id = $1 ORDER BY "remediation_rules"."id" LIMIT $2`)).
					WithArgs(rule.ID, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrRuleNotFound,
		},
		{
			name: "Error, Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "remediation_rules" WHERE id = $1 ORDER BY "remediation_rules"."id" LIMIT $2`)).
					WithArgs(rule.ID, 1).
					WillReturnError(dbErr)
			},
			expectedError: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRuleRepoWithMockDB(t)
			tt.mockSetup(mock)

			got, err := repo.GetRuleById(context.Background(), rule.ID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, rule.ID, got.ID)
				assert.Equal(t, rule.Module, got.Module)
				assert.Equal(t, rule.Condition, got.Condition)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRuleRepository_ListRules(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedCount int
		expectError   bool
	}{
		{
			name: "Success, Rules ordered by creation time",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "module", "enabled"}).
					AddRow("auth-jwt-fix", "auth-system", true).
					AddRow("db-pool-cleanup", "database", false)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "remediation_rules" ORDER BY created_at asc`)).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "Success, Empty store",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "remediation_rules" ORDER BY created_at asc`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expectedCount: 0,
		},
		{
			name: "Error, Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "remediation_rules" ORDER BY created_at asc`)).
					WillReturnError(errors.New("db error"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRuleRepoWithMockDB(t)
			tt.mockSetup(mock)

			rules, err := repo.ListRules(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, rules)
			} else {
				assert.NoError(t, err)
				assert.Len(t, rules, tt.expectedCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
