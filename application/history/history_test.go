package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apphistory "github.com/minhqn/price-intel/application/history"
	"github.com/minhqn/price-intel/constant"
	historymocks "github.com/minhqn/price-intel/mocks/repository/history"
	"github.com/minhqn/price-intel/model"
	cerr "github.com/minhqn/price-intel/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestHistoryApp_ListByQuery(t *testing.T) {
	captured := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	entries := []model.PriceHistoryEntry{
		{ID: 1, Query: "cà chua", StoreName: "WinMart", ProductTitle: "Cà chua bi 300g", Price: 18000, CapturedAt: captured},
		{ID: 2, Query: "cà chua", StoreName: "Coopmart", ProductTitle: "Cà chua thường 1kg", Price: 26000, CapturedAt: captured},
	}

	tests := []struct {
		name        string
		query       string
		limit       int
		mockCall    func(r *historymocks.HistoryRepository)
		want        *model.PriceHistoryResponse
		wantErr     bool
		wantErrType constant.ErrorType
	}{
		{
			name:  "success",
			query: "cà chua",
			limit: 20,
			mockCall: func(r *historymocks.HistoryRepository) {
				r.On("ListByQuery", mock.Anything, "cà chua", 20).Return(entries, nil).Once()
			},
			want: &model.PriceHistoryResponse{Query: "cà chua", Entries: entries},
		},
		{
			name:  "zero limit falls back to default",
			query: "cà chua",
			limit: 0,
			mockCall: func(r *historymocks.HistoryRepository) {
				r.On("ListByQuery", mock.Anything, "cà chua", 100).Return(entries, nil).Once()
			},
			want: &model.PriceHistoryResponse{Query: "cà chua", Entries: entries},
		},
		{
			name:  "negative limit falls back to default",
			query: "cà chua",
			limit: -5,
			mockCall: func(r *historymocks.HistoryRepository) {
				r.On("ListByQuery", mock.Anything, "cà chua", 100).Return(entries, nil).Once()
			},
			want: &model.PriceHistoryResponse{Query: "cà chua", Entries: entries},
		},
		{
			name:  "no observations yet",
			query: "dưa leo",
			limit: 20,
			mockCall: func(r *historymocks.HistoryRepository) {
				r.On("ListByQuery", mock.Anything, "dưa leo", 20).Return([]model.PriceHistoryEntry{}, nil).Once()
			},
			want: &model.PriceHistoryResponse{Query: "dưa leo", Entries: []model.PriceHistoryEntry{}},
		},
		{
			name:  "repository failure",
			query: "cà chua",
			limit: 20,
			mockCall: func(r *historymocks.HistoryRepository) {
				r.On("ListByQuery", mock.Anything, "cà chua", 20).Return(nil, errors.New("db down")).Once()
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			historyRepo := historymocks.NewHistoryRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(historyRepo)
			}

			app := apphistory.NewHistoryApp(historyRepo)
			got, err := app.ListByQuery(context.Background(), tt.query, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListByQuery() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.wantErrType] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.wantErrType])
				}
				return
			}

			if got.Query != tt.want.Query {
				t.Fatalf("query = %q, want %q", got.Query, tt.want.Query)
			}
			if len(got.Entries) != len(tt.want.Entries) {
				t.Fatalf("entries = %d, want %d", len(got.Entries), len(tt.want.Entries))
			}
			for i := range got.Entries {
				if got.Entries[i] != tt.want.Entries[i] {
					t.Fatalf("entry %d = %+v, want %+v", i, got.Entries[i], tt.want.Entries[i])
				}
			}
		})
	}
}
