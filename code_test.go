package hufftrie

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{code: Code{}, expect: "\"\""},
		{code: MakeCode(1, 0), expect: "\"0\""},
		{code: MakeCode(1, 1), expect: "\"1\""},
		{code: MakeCode(3, 0b100), expect: "\"100\""},
		{code: MakeCode(4, 0b0011), expect: "\"0011\""},
		{code: MakeCode(8, 0b10100011), expect: "\"10100011\""},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			actual := row.code.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_AppendBit(t *testing.T) {
	hc := Code{}
	hc = hc.appendBit(1)
	hc = hc.appendBit(0)
	hc = hc.appendBit(0)
	if expect := MakeCode(3, 0b100); hc != expect {
		t.Errorf("wrong code: expect %s, actual %s", expect, hc)
	}
}
