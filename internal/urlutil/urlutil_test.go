package urlutil

import (
	"reflect"
	"testing"
)

func TestExtractURLs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			"single url",
			"check out https://shop.example.com/collections/all please",
			[]string{"https://shop.example.com/collections/all"},
		},
		{
			"multiple urls in order",
			"http://a.example.com and https://b.example.com/x?y=1",
			[]string{"http://a.example.com", "https://b.example.com/x?y=1"},
		},
		{
			"angle brackets terminate",
			"<https://example.com/path>",
			[]string{"https://example.com/path"},
		},
		{"no urls", "nothing to see here", nil},
		{"bare domain is not a url", "visit example.com today", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractURLs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractURLs(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
