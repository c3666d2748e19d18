package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRouteRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
	}{
		{
			name: "valid",
			body: `{"start":"New York, NY","finish":"Boston, MA"}`,
		},
		{
			name: "trims whitespace",
			body: `{"start":"  New York, NY  ","finish":" Boston, MA "}`,
		},
		{
			name:      "missing start",
			body:      `{"finish":"Boston, MA"}`,
			wantErr:   true,
			wantField: "start",
		},
		{
			name:      "whitespace-only finish",
			body:      `{"start":"New York, NY","finish":"   "}`,
			wantErr:   true,
			wantField: "finish",
		},
		{
			name:    "invalid json",
			body:    `{"start":`,
			wantErr: true,
		},
		{
			name:      "start too long",
			body:      `{"start":"` + strings.Repeat("a", 201) + `","finish":"Boston, MA"}`,
			wantErr:   true,
			wantField: "start",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			request, err := ParseRouteRequest(tt.body)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantField != "" {
					var invalid InvalidRequestError
					require.ErrorAs(t, err, &invalid)
					assert.Equal(t, tt.wantField, invalid.Field)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "New York, NY", request.Start)
			assert.Equal(t, "Boston, MA", request.Finish)
		})
	}
}

func TestSuccessRawHeaders(t *testing.T) {
	t.Parallel()

	resp := SuccessRaw(`{"ok":true}`)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.JSONEq(t, `{"ok":true}`, resp.Body)
}

func TestErrorResponseBody(t *testing.T) {
	t.Parallel()

	resp, err := Error("Location error", "place not found", 400)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Location error","details":"place not found"}`, resp.Body)
}
