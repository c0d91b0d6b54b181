package stack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRequest(t *testing.T) {
	payload, err := FormatRequest(map[string]string{"course": "abc"})
	require.NoError(t, err)

	var req NatsNestJSReq
	require.NoError(t, json.Unmarshal(payload, &req))
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, map[string]interface{}{"course": "abc"}, req.Data)
}

func TestDecodeDataNest(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    map[string]interface{}
		wantErr bool
	}{
		{name: "valid", data: `{"id":"1","data":{"_id":"x"}}`, want: map[string]interface{}{"_id": "x"}},
		{name: "no data", data: `{"id":"1"}`, wantErr: true},
		{name: "invalid json", data: `{`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDataNest([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
