package comments

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "native pdf date",
			raw:  "D:20230615143022",
			want: "2023-06-15 14:30:22Z",
		},
		{
			name: "native pdf date with offset suffix ignored",
			raw:  "D:20230615143022+02'00'",
			want: "2023-06-15 14:30:22Z",
		},
		{
			name: "native pdf date with Z suffix ignored",
			raw:  "D:20230101120000Z",
			want: "2023-01-01 12:00:00Z",
		},
		{
			name: "rfc3339 fallback",
			raw:  "2023-06-15T14:30:22Z",
			want: "2023-06-15 14:30:22Z",
		},
		{
			name: "rfc3339 with offset normalized to utc",
			raw:  "2023-06-15T16:30:22+02:00",
			want: "2023-06-15 14:30:22Z",
		},
		{
			name: "plain datetime fallback",
			raw:  "2023-06-15 14:30:22",
			want: "2023-06-15 14:30:22Z",
		},
		{
			name: "date only fallback",
			raw:  "2023-06-15",
			want: "2023-06-15 00:00:00Z",
		},
		{
			name: "truncated pdf date falls through and fails",
			raw:  "D:2023",
			want: "",
		},
		{
			name: "garbage normalizes to empty",
			raw:  "not a date at all",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.raw); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
