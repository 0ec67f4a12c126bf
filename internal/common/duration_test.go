package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type pollSettings struct {
	PollInterval Duration `json:"poll_interval" yaml:"poll_interval" toml:"poll_interval"`
}

func TestDuration_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		decode  func(data string, out *pollSettings) error
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:   "json",
			decode: func(data string, out *pollSettings) error { return json.Unmarshal([]byte(data), out) },
			input:  `{"poll_interval":"1h30m"}`,
			want:   90 * time.Minute,
		},
		{
			name:   "yaml",
			decode: func(data string, out *pollSettings) error { return yaml.Unmarshal([]byte(data), out) },
			input:  "poll_interval: 250ms\n",
			want:   250 * time.Millisecond,
		},
		{
			name:   "toml",
			decode: func(data string, out *pollSettings) error { return toml.Unmarshal([]byte(data), out) },
			input:  `poll_interval = "5s"`,
			want:   5 * time.Second,
		},
		{
			name:    "json invalid",
			decode:  func(data string, out *pollSettings) error { return json.Unmarshal([]byte(data), out) },
			input:   `{"poll_interval":"soon"}`,
			wantErr: true,
		},
		{
			name:    "yaml missing unit",
			decode:  func(data string, out *pollSettings) error { return yaml.Unmarshal([]byte(data), out) },
			input:   "poll_interval: \"30\"\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got pollSettings
			err := tt.decode(tt.input, &got)
			if tt.wantErr {
				require.ErrorContains(t, err, "invalid duration")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.PollInterval.Duration)
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(pollSettings{PollInterval: NewDuration(90 * time.Second)})
	require.NoError(t, err)
	require.JSONEq(t, `{"poll_interval":"1m30s"}`, string(data))

	out, err := yaml.Marshal(pollSettings{PollInterval: NewDuration(time.Second)})
	require.NoError(t, err)
	require.Equal(t, "poll_interval: 1s\n", string(out))
}

func TestDuration_JSONSchema(t *testing.T) {
	t.Parallel()

	schema := Duration{}.JSONSchema()
	require.Equal(t, "string", schema.Type)
	require.Equal(t, "Duration", schema.Title)
	require.NotEmpty(t, schema.Examples)
}
