package snapshotrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func TestRepository_Load(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		accounts  int
	}{
		{
			name: "Stored snapshot is decoded",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"data"}).
					AddRow([]byte(`{"accounts":[{"id":"a1","balance":5000}]}`))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM snapshots WHERE id = $1`)).
					WithArgs(snapshotID).
					WillReturnRows(rows)
			},
			accounts: 1,
		},
		{
			name: "No row yields empty snapshot",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM snapshots WHERE id = $1`)).
					WithArgs(snapshotID).
					WillReturnError(pgx.ErrNoRows)
			},
			accounts: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM snapshots WHERE id = $1`)).
					WithArgs(snapshotID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			snap, err := repo.Load(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, snap)
			} else {
				require.NoError(t, err)
				assert.Len(t, snap.Accounts, tt.accounts)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO snapshots (id, data, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Snapshot upserted",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(snapshotID, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(snapshotID, pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), domain.NewSnapshot())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Exclusive(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	lockQuery := regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1)`)

	tests := []struct {
		name        string
		prepareMock func()
		fnErr       error
		expectErr   bool
		expectCall  bool
	}{
		{
			name: "Lock taken and fn runs",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
				mock.ExpectExec(lockQuery).WithArgs(lockKey).WillReturnResult(pgxmock.NewResult("SELECT", 1))
			},
			expectCall: true,
		},
		{
			name: "Lock failure skips fn",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
				mock.ExpectExec(lockQuery).WithArgs(lockKey).WillReturnError(errors.New("lock error"))
			},
			expectErr: true,
		},
		{
			name: "Fn error propagates",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
				mock.ExpectExec(lockQuery).WithArgs(lockKey).WillReturnResult(pgxmock.NewResult("SELECT", 1))
			},
			fnErr:      domain.ErrInsufficientFunds,
			expectErr:  true,
			expectCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			called := false
			err := repo.Exclusive(context.Background(), func(context.Context) error {
				called = true
				return tt.fnErr
			})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.fnErr != nil {
				assert.ErrorIs(t, err, tt.fnErr)
			}
			assert.Equal(t, tt.expectCall, called)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
