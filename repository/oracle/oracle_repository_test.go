package oracle_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/minhqn/price-intel/constant"
	"github.com/minhqn/price-intel/model"
	"github.com/minhqn/price-intel/repository/oracle"
	cerr "github.com/minhqn/price-intel/utils/errors"
	"github.com/minhqn/price-intel/utils/keypool"
)

func testKeys() *keypool.Pool {
	return keypool.New([]string{"test-key"}, keypool.FixedSelector(0))
}

func chatReply(content string) string {
	payload := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func candidates() []model.OracleCandidate {
	return []model.OracleCandidate{
		{ID: 1, Name: "Cà chua bi 300g"},
		{ID: 2, Name: "Cà chua thường 1kg"},
	}
}

func TestOracleRepository_Classify_Flat(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatReply(`{
			"valid_product_ids": [
				{"product_id": 2, "product_name": "Cà chua thường 1kg"},
				{"product_id": 1, "product_name": "Cà chua bi 300g"}
			],
			"searchSummary": "Tìm thấy 2 loại cà chua."
		}`))
	}))
	defer srv.Close()

	repo := oracle.NewOracleRepository(srv.URL, "test-model", constant.ModeFlat, testKeys(), 5*time.Second)
	got, err := repo.Classify(context.Background(), "cà chua", candidates())
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if !reflect.DeepEqual(got.ValidIDs, []int{2, 1}) {
		t.Fatalf("valid ids = %v, want [2 1] (oracle order preserved)", got.ValidIDs)
	}
	if got.Summary != "Tìm thấy 2 loại cà chua." {
		t.Fatalf("summary = %q", got.Summary)
	}

	// Determinism knobs must be on the wire.
	if temp, ok := captured["temperature"].(float64); !ok || temp != 0 {
		t.Fatalf("temperature = %v, want 0", captured["temperature"])
	}
	rf, _ := captured["response_format"].(map[string]interface{})
	if rf["type"] != "json_object" {
		t.Fatalf("response_format = %v", captured["response_format"])
	}

	// Candidates are the only listing data the oracle may see: the user
	// message must not leak prices or URLs.
	msgs := captured["messages"].([]interface{})
	user := msgs[1].(map[string]interface{})["content"].(string)
	if strings.Contains(user, "price") || strings.Contains(user, "url") {
		t.Fatalf("oracle payload leaks listing fields: %s", user)
	}
	if !strings.Contains(user, "Cà chua bi 300g") {
		t.Fatalf("oracle payload missing candidate names: %s", user)
	}
}

func TestOracleRepository_Classify_Grouped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatReply(`{
			"product_groups": [
				{"group_name": "Cà chua bi", "description": "Đóng hộp", "product_ids": [1]},
				{"group_name": "Cà chua thường", "product_ids": [2]}
			],
			"searchSummary": "Hai phân loại."
		}`))
	}))
	defer srv.Close()

	repo := oracle.NewOracleRepository(srv.URL, "test-model", constant.ModeGrouped, testKeys(), 5*time.Second)
	got, err := repo.Classify(context.Background(), "cà chua", candidates())
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	want := []model.OracleGroup{
		{Name: "Cà chua bi", Description: "Đóng hộp", MemberIDs: []int{1}},
		{Name: "Cà chua thường", MemberIDs: []int{2}},
	}
	if !reflect.DeepEqual(got.Groups, want) {
		t.Fatalf("groups = %+v, want %+v", got.Groups, want)
	}
}

func TestOracleRepository_Classify_Errors(t *testing.T) {
	tests := []struct {
		name        string
		keys        *keypool.Pool
		handler     http.HandlerFunc
		wantErrType constant.ErrorType
	}{
		{
			name:        "no api key fails fast",
			keys:        keypool.New(nil, nil),
			handler:     func(w http.ResponseWriter, r *http.Request) { t.Fatalf("no network call expected") },
			wantErrType: constant.ErrNoAPIKeyConfigured,
		},
		{
			name: "non-200 status",
			keys: testKeys(),
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":{"message":"rate limit"}}`, http.StatusTooManyRequests)
			},
			wantErrType: constant.ErrOracleUnavailable,
		},
		{
			name: "empty completion content",
			keys: testKeys(),
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, chatReply("  "))
			},
			wantErrType: constant.ErrOracleResponseInvalid,
		},
		{
			name: "no choices at all",
			keys: testKeys(),
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices":[]}`)
			},
			wantErrType: constant.ErrOracleResponseInvalid,
		},
		{
			name: "content is not the expected structure",
			keys: testKeys(),
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, chatReply("xin lỗi, tôi không thể giúp"))
			},
			wantErrType: constant.ErrOracleResponseInvalid,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			repo := oracle.NewOracleRepository(srv.URL, "test-model", constant.ModeFlat, tt.keys, 5*time.Second)
			_, err := repo.Classify(context.Background(), "cà chua", candidates())
			if err == nil {
				t.Fatalf("Classify() expected error")
			}

			var ce cerr.CustomError
			if !errors.As(err, &ce) {
				t.Fatalf("error type = %T, want CustomError", err)
			}
			if ce.ErrorCode() != constant.ErrorTypeCode[tt.wantErrType] {
				t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.wantErrType])
			}
		})
	}
}

func TestOracleRepository_Classify_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	repo := oracle.NewOracleRepository(srv.URL, "test-model", constant.ModeFlat, testKeys(), time.Second)
	_, err := repo.Classify(context.Background(), "cà chua", candidates())

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrOracleUnavailable] {
		t.Fatalf("error code = %s, want oracle unavailable", ce.ErrorCode())
	}
}
