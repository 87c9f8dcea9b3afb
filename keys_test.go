package humps

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"
)

func TestCamelizeKeys_Nested(t *testing.T) {
	input := map[string]any{
		"a_b":     []any{map[string]any{"c_d": 1}, 2},
		"user_id": "u-1",
		"profile": map[string]any{
			"avatar_url": "https://example.com/a.png",
		},
	}
	want := map[string]any{
		"aB":     []any{map[string]any{"cD": 1}, 2},
		"userID": "u-1",
		"profile": map[string]any{
			"avatarURL": "https://example.com/a.png",
		},
	}
	got := CamelizeKeys(input, nil)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CamelizeKeys mismatch (-want +got):\n%s", diff)
	}
	if _, ok := input["a_b"]; !ok {
		t.Error("input map was modified")
	}
}

func TestDecamelizeKeys(t *testing.T) {
	input := map[string]any{
		"userID":     1,
		"httpServer": map[string]any{"maxTTL": 3},
	}
	want := map[string]any{
		"user_id":     1,
		"http_server": map[string]any{"max_ttl": 3},
	}
	if diff := cmp.Diff(want, DecamelizeKeys(input, nil)); diff != "" {
		t.Errorf("DecamelizeKeys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, DepascalizeKeys(input, nil)); diff != "" {
		t.Errorf("DepascalizeKeys mismatch (-want +got):\n%s", diff)
	}

	got := DecamelizeKeys(map[string]any{"fooBar": 1}, &Options{Separator: "-"})
	if diff := cmp.Diff(map[string]any{"foo-bar": 1}, got); diff != "" {
		t.Errorf("DecamelizeKeys with separator mismatch (-want +got):\n%s", diff)
	}
}

func TestPascalizeKeys(t *testing.T) {
	got := PascalizeKeys(map[string]any{"user_id": 1, "job_name": []any{map[string]any{"cpu_count": 2}}}, nil)
	want := map[string]any{"UserId": 1, "JobName": []any{map[string]any{"CpuCount": 2}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PascalizeKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessKeys_OpaqueValues(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	re := regexp.MustCompile(`^a+$`)
	fn := func() {}
	type point struct{ X, Y int }

	got := CamelizeKeys(map[string]any{
		"created_at": now,
		"pattern":    re,
		"enabled":    true,
		"callback":   fn,
		"origin":     point{1, 2},
		"missing":    nil,
	}, nil).(map[string]any)

	if v, ok := got["createdAt"].(time.Time); !ok || !v.Equal(now) {
		t.Errorf("createdAt = %v, want %v", got["createdAt"], now)
	}
	if got["pattern"] != re {
		t.Errorf("pattern = %v, want the same *regexp.Regexp", got["pattern"])
	}
	if got["enabled"] != true {
		t.Errorf("enabled = %v, want true", got["enabled"])
	}
	if reflect.ValueOf(got["callback"]).Pointer() != reflect.ValueOf(fn).Pointer() {
		t.Error("callback was not returned as is")
	}
	if got["origin"] != (point{1, 2}) {
		t.Errorf("origin = %v, want {1 2}", got["origin"])
	}
	if v, ok := got["missing"]; !ok || v != nil {
		t.Errorf("missing = %v (present %v), want nil", v, ok)
	}
}

func TestProcessKeys_Scalars(t *testing.T) {
	for _, v := range []any{nil, "user_id", 42, 1.5, false} {
		if got := CamelizeKeys(v, nil); got != v {
			t.Errorf("CamelizeKeys(%v) = %v, want it unchanged", v, got)
		}
	}
}

func TestProcessKeys_Process(t *testing.T) {
	opts := &Options{}
	opts.Process = func(key string, next Converter, o *Options) string {
		if o != opts {
			t.Errorf("process received %p, want %p", o, opts)
		}
		if strings.HasPrefix(key, "_") {
			return key
		}
		return next.Convert(key, o)
	}
	got := CamelizeKeys(map[string]any{"_id": 1, "user_name": 2}, opts)
	want := map[string]any{"_id": 1, "userName": 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CamelizeKeys with Process mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessKeys_Preserve(t *testing.T) {
	input := map[string]any{
		"tags":    map[string]any{"myTag": "v"},
		"jobName": "x",
	}
	got := DecamelizeKeys(input, &Options{Preserve: []string{"tags"}})
	want := map[string]any{
		"tags":     map[string]any{"myTag": "v"},
		"job_name": "x",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecamelizeKeys with Preserve mismatch (-want +got):\n%s", diff)
	}

	// The converted name matches too.
	got = CamelizeKeys(map[string]any{"log_options": map[string]any{"max_size": 1}}, &Options{Preserve: []string{"logOptions"}})
	want = map[string]any{"logOptions": map[string]any{"max_size": 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CamelizeKeys with Preserve mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessKeys_YAMLMaps(t *testing.T) {
	got := CamelizeKeys(map[any]any{
		"user_id": 1,
		3:         map[any]any{"a_b": 2},
	}, nil)
	want := map[any]any{
		"userID": 1,
		3:        map[any]any{"aB": 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CamelizeKeys(map[any]any) mismatch (-want +got):\n%s", diff)
	}

	ms := CamelizeKeys(yaml.MapSlice{
		{Key: "z_key", Value: 1},
		{Key: "a_key", Value: yaml.MapSlice{{Key: "inner_id", Value: 2}}},
		{Key: 7, Value: "seven"},
	}, nil)
	wantMS := yaml.MapSlice{
		{Key: "zKey", Value: 1},
		{Key: "aKey", Value: yaml.MapSlice{{Key: "innerID", Value: 2}}},
		{Key: 7, Value: "seven"},
	}
	if diff := cmp.Diff(wantMS, ms); diff != "" {
		t.Errorf("CamelizeKeys(MapSlice) mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessKeys_TypedContainers(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{
			name:  "map of strings",
			input: map[string]string{"user_id": "x"},
			want:  map[string]string{"userID": "x"},
		},
		{
			name:  "slice of maps",
			input: []map[string]any{{"a_b": 1}},
			want:  []map[string]any{{"aB": 1}},
		},
		{
			name:  "int keys",
			input: map[int]string{1: "a_b"},
			want:  map[int]string{1: "a_b"},
		},
		{
			name:  "slice of ints",
			input: []int{1, 2},
			want:  []int{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, CamelizeKeys(tt.input, nil)); diff != "" {
				t.Errorf("CamelizeKeys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
