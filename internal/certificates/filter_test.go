package certificates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{ID: 1, Name: "Cert A", Type: &CertificationType{Name: "Type X"}},
		{ID: 2, Name: "Cert B", Type: &CertificationType{Name: "Type Y"}},
		{ID: 3, Name: "Auditoría Interna", Type: nil},
	}
}

func ids(rs []Record) []int {
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestNewFilterNormalizes(t *testing.T) {
	f := NewFilter("  CeRT a ", "\tTYPE\n")
	require.Equal(t, Filter{Name: "cert a", Type: "type"}, f)
	require.False(t, f.IsEmpty())
	require.True(t, NewFilter("   ", "").IsEmpty())
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want []int
	}{
		{name: "name substring case-insensitive", f: NewFilter("a", ""), want: []int{1, 3}},
		{name: "name exact", f: NewFilter("cert a", ""), want: []int{1}},
		{name: "type only", f: NewFilter("", "type y"), want: []int{2}},
		{name: "type skips missing nested", f: NewFilter("", "type"), want: []int{1, 2}},
		{name: "and combined", f: NewFilter("cert", "x"), want: []int{1}},
		{name: "no match", f: NewFilter("zzz", ""), want: []int{}},
		{name: "empty filter keeps all", f: Filter{}, want: []int{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ids(tc.f.Apply(testRecords())))
		})
	}
}

func TestFilterApplyDoesNotMutateInput(t *testing.T) {
	records := testRecords()
	before := ids(records)

	got := NewFilter("b", "").Apply(records)
	require.Equal(t, []int{2}, ids(got))
	require.Equal(t, before, ids(records))

	got[0].Name = "changed"
	require.Equal(t, "Cert B", records[1].Name)
}

func TestFilterApplyNilInput(t *testing.T) {
	got := NewFilter("a", "").Apply(nil)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestRecordTypeName(t *testing.T) {
	require.Equal(t, "Type X", testRecords()[0].TypeName())
	require.Equal(t, "", testRecords()[2].TypeName())
}
