package tales

import "testing"

type stringTest struct {
	expr string
	res  string
}

var stringTests = []stringTest{
	{
		expr: "string: hello $foo",
		res:  "hello 1",
	},
	{
		expr: "string: hello ${bar/2}",
		res:  "hello 3",
	},
	{
		expr: "string: plain",
		res:  "plain",
	},
	{
		expr: "string: ${ape} here",
		res:  " here",
	},
	{
		expr: "string: $foo$foo",
		res:  "11",
	},
	{
		expr: "string: ${baz/two}/${baz/one}",
		res:  "2/1",
	},
}

func TestProcessString(t *testing.T) {
	data := testData()
	for _, tc := range stringTests {
		got, err := Value(tc.expr, data)
		if err != nil {
			t.Fatalf("%q: %v", tc.expr, err)
		}
		if got != tc.res {
			t.Errorf("%q = %q, want %q", tc.expr, got, tc.res)
		}
	}
}

// The explicit-form pass runs before the bare-form pass over the whole
// string, so a substituted value containing "$" is picked up again by the
// second pass. This behavior is contractual.
func TestProcessStringTwoPassResubstitution(t *testing.T) {
	data := Context{"a": "$b", "b": "X"}
	got, err := Value("string: ${a}", data)
	if err != nil {
		t.Fatal(err)
	}
	if got != "X" {
		t.Errorf("${a} = %q, want re-substituted %q", got, "X")
	}
}

func TestProcessStringUnknownTypeInside(t *testing.T) {
	_, err := Value("string: ${warp:x}", testData())
	if err == nil {
		t.Fatal("want error for unknown type inside interpolation")
	}
}

func TestText(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Errorf("Text(nil) = %q, want empty", got)
	}
	if got := Text("x"); got != "x" {
		t.Errorf("Text(x) = %q", got)
	}
	if got := Text(3); got != "3" {
		t.Errorf("Text(3) = %q", got)
	}
	if got := Text(true); got != "true" {
		t.Errorf("Text(true) = %q", got)
	}
}
