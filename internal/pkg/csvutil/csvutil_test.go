package csvutil

import (
	"reflect"
	"testing"
)

func TestParseRow(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`"a""b"`, []string{`a"b`}},
		{"", []string{""}},
		{"a,,c", []string{"a", "", "c"}},
		{`"Banjir, Ciruas","2 KK"`, []string{"Banjir, Ciruas", "2 KK"}},
		{`a,"b`, []string{"a", "b"}}, // unbalanced quote degrades, no error
		{",", []string{"", ""}},
	}
	for _, c := range cases {
		got := ParseRow(c.input)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseRow(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestParseRowFieldCount(t *testing.T) {
	// For balanced quoting, field count is unescaped commas + 1.
	cases := map[string]int{
		"a":               1,
		"a,b":             2,
		`"a,b","c,d",e`:   3,
		`"x""y",q,r,s,t,`: 6,
	}
	for row, want := range cases {
		if got := len(ParseRow(row)); got != want {
			t.Errorf("len(ParseRow(%q)) = %d, want %d", row, got, want)
		}
	}
}

func TestRows(t *testing.T) {
	body := "header1,header2\r\nx,1\n\n  \ny,2\n"
	got := Rows(body)
	want := []string{"x,1", "y,2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rows(%q) = %q, want %q", body, got, want)
	}

	if rows := Rows("only-header"); rows != nil {
		t.Errorf("Rows with only a header = %q, want nil", rows)
	}
}

func TestField(t *testing.T) {
	columns := []string{" a ", "b"}
	if got := Field(columns, 0); got != "a" {
		t.Errorf("Field(0) = %q, want %q", got, "a")
	}
	if got := Field(columns, 5); got != "" {
		t.Errorf("Field(5) = %q, want empty", got)
	}
}
