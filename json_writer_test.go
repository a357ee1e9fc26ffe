package dashboard

import (
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	type inner struct {
		C int    `json:"c"`
		D string `json:"d,omitempty"`
	}

	tests := []struct {
		name  string
		write func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty",
			write: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "order is kept",
			write: func(w *jsonObjectWriter) {
				w.Append("z", 1).Append("a", "x")
			},
			want: `{"z":1,"a":"x"}`,
		},
		{
			name: "optional skips zero values only",
			write: func(w *jsonObjectWriter) {
				w.Append("a", 0).Optional("b", "").Optional("c", 0).Optional("d", nil).Optional("e", "ok")
			},
			want: `{"a":0,"e":"ok"}`,
		},
		{
			name: "embed in the middle",
			write: func(w *jsonObjectWriter) {
				w.Append("a", 1).EmbedFrom(inner{C: 3, D: "x"}).Append("b", 2)
			},
			want: `{"a":1,"c":3,"d":"x","b":2}`,
		},
		{
			name: "embed first",
			write: func(w *jsonObjectWriter) {
				w.EmbedFrom(inner{C: 3}).Append("b", 2)
			},
			want: `{"c":3,"b":2}`,
		},
		{
			name: "embed empty object",
			write: func(w *jsonObjectWriter) {
				w.Append("a", 1).EmbedFrom(struct{}{}).Append("b", 2)
			},
			want: `{"a":1,"b":2}`,
		},
		{
			name: "keys are escaped",
			write: func(w *jsonObjectWriter) {
				w.Append(`say "hi"`, true)
			},
			want: `{"say \"hi\"":true}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var w jsonObjectWriter
			tc.write(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestJsonObjectWriter_Errors(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1).EmbedFrom([]int{1, 2}).Append("b", 2)
	if _, err := w.MarshalJSON(); err == nil {
		t.Errorf("MarshalJSON() after embedding an array want error")
	}

	var v jsonObjectWriter
	v.Append("ch", make(chan int))
	if _, err := v.MarshalJSON(); err == nil {
		t.Errorf("MarshalJSON() after appending a channel want error")
	}
}
