package tx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/micromarket/repository/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRepository_WithTx(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(m sqlmock.Sqlmock)
		fn       func(tx *sqlx.Tx) error
		wantErr  bool
	}{
		{
			name: "success: commits",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectCommit()
			},
			fn: func(*sqlx.Tx) error { return nil },
		},
		{
			name: "error: fn fails rolls back",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectRollback()
			},
			fn:      func(*sqlx.Tx) error { return errors.New("boom") },
			wantErr: true,
		},
		{
			name: "error: begin fails",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("db down"))
			},
			fn:      func(*sqlx.Tx) error { t.Fatal("fn must not run"); return nil },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mockCall(mock)

			repo := tx.NewTxRepository(sqlx.NewDb(db, "mysql"))
			err = repo.WithTx(context.Background(), tt.fn)

			assert.Equal(t, tt.wantErr, err != nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
