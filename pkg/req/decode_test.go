package req

import (
	"strings"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"name":"banker","count":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "banker" || got.Count != 3 {
		t.Fatalf("got=%+v", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", "empty request body"},
		{"unknown field", `{"name":"x","extra":1}`, "unknown field"},
		{"bad json", `{"name":`, "decode request"},
		{"wrong type", `{"count":"three"}`, "decode request"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode[payload](strings.NewReader(tc.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err=%q want substring %q", err, tc.want)
			}
		})
	}
}
