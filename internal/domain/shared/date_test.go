package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "calendar date", input: "2024-02-29", want: "2024-02-29"},
		{name: "rfc3339 timestamp", input: "2024-03-01T15:04:05Z", want: "2024-03-01"},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		AddDate  Date  `json:"add_date"`
		PaidDate *Date `json:"paid_date"`
	}

	t.Run("marshal renders calendar date", func(t *testing.T) {
		paid := MustParseDate("2024-05-02")
		out, err := json.Marshal(payload{AddDate: MustParseDate("2024-05-01"), PaidDate: &paid})
		require.NoError(t, err)
		assert.JSONEq(t, `{"add_date":"2024-05-01","paid_date":"2024-05-02"}`, string(out))
	})

	t.Run("nil pointer marshals as null", func(t *testing.T) {
		out, err := json.Marshal(payload{AddDate: MustParseDate("2024-05-01")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"add_date":"2024-05-01","paid_date":null}`, string(out))
	})

	t.Run("unmarshal accepts null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"add_date":"2024-05-01","paid_date":null}`), &p))
		assert.Nil(t, p.PaidDate)
		assert.Equal(t, "2024-05-01", p.AddDate.String())
	})

	t.Run("unmarshal rejects numbers", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"add_date":20240501}`), &p))
	})
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{name: "time value", src: time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC), want: "2023-07-04"},
		{name: "string", src: "2023-07-04", want: "2023-07-04"},
		{name: "bytes", src: []byte("2023-07-04"), want: "2023-07-04"},
		{name: "sqlite datetime", src: "2023-07-04 00:00:00", want: "2023-07-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	t.Run("nil resets to zero", func(t *testing.T) {
		d := MustParseDate("2023-07-04")
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(42))
	})
}

func TestDate_Value(t *testing.T) {
	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = MustParseDate("2023-07-04").Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC), v)
}
