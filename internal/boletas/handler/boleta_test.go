package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractListOptions(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantLimit   *int
		wantConFoto bool
	}{
		{name: "empty query", url: "/api/v1/boletas", wantLimit: nil},
		{name: "numeric limit", url: "/api/v1/boletas?limit=25", wantLimit: intPtr(25)},
		{name: "non-numeric limit ignored", url: "/api/v1/boletas?limit=abc", wantLimit: nil},
		{name: "negative limit passes through", url: "/api/v1/boletas?limit=-3", wantLimit: intPtr(-3)},
		{name: "solo con foto true", url: "/api/v1/boletas?soloConFoto=true", wantConFoto: true},
		{name: "solo con foto numeric", url: "/api/v1/boletas?soloConFoto=1", wantConFoto: true},
		{name: "solo con foto other value", url: "/api/v1/boletas?soloConFoto=yes", wantConFoto: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			opts := extractListOptions(r)

			if tt.wantLimit == nil {
				assert.Nil(t, opts.Limit)
			} else {
				require.NotNil(t, opts.Limit)
				assert.Equal(t, *tt.wantLimit, *opts.Limit)
			}
			assert.Equal(t, tt.wantConFoto, opts.SoloConFoto)
		})
	}
}

func intPtr(n int) *int {
	return &n
}
