package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestRequiredQuery(t *testing.T) {
	tests := []struct {
		name          string
		rawURL        string
		key           string
		wantValue     string
		wantErrFilled bool
	}{
		{
			name:          "missing key",
			rawURL:        "/v1/time/instant?tz=Asia/Tokyo",
			key:           "date",
			wantErrFilled: true,
		},
		{
			name:          "blank value",
			rawURL:        "/v1/time/instant?date=%20%20",
			key:           "date",
			wantErrFilled: true,
		},
		{
			name:      "value is trimmed",
			rawURL:    "/v1/time/instant?date=%202026-03-01%20",
			key:       "date",
			wantValue: "2026-03-01",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.rawURL, nil)

			gotValue, gotErr := requiredQuery(req, tc.key)
			if gotValue != tc.wantValue {
				t.Fatalf("expected value %q, got %q", tc.wantValue, gotValue)
			}
			if (gotErr != "") != tc.wantErrFilled {
				t.Fatalf("expected err filled=%v, got %q", tc.wantErrFilled, gotErr)
			}
		})
	}
}

func TestParseTripID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{name: "canonical", id: "7f1f4c52-3a4e-4d7c-8d0e-0c6f7a3f9b10", want: "7f1f4c52-3a4e-4d7c-8d0e-0c6f7a3f9b10"},
		{name: "upper case is normalized", id: "7F1F4C52-3A4E-4D7C-8D0E-0C6F7A3F9B10", want: "7f1f4c52-3a4e-4d7c-8d0e-0c6f7a3f9b10"},
		{name: "not a uuid", id: "trip-1", wantErr: true},
		{name: "braced form rejected", id: "{7f1f4c52-3a4e-4d7c-8d0e-0c6f7a3f9b10}", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/trips/x/days", nil)
			req.SetPathValue("id", tc.id)

			got, errMsg := parseTripID(req)
			if (errMsg != "") != tc.wantErr {
				t.Fatalf("expected err=%v, got %q", tc.wantErr, errMsg)
			}
			if got != tc.want {
				t.Fatalf("expected id %q, got %q", tc.want, got)
			}
		})
	}
}
