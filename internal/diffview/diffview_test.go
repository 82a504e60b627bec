package diffview_test

import (
	"strings"
	"testing"

	"github.com/jwodder/lineinfile/internal/diffview"

	"github.com/stretchr/testify/require"
)

func TestUnified_Append(t *testing.T) {
	before := "foo=apple\nbar=quux\nbaz=spam\n"
	after := before + "gnusto=cleesh\n"

	want := strings.Join([]string{
		"--- file.txt",
		"+++ file.txt",
		"@@ -1,3 +1,4 @@",
		" foo=apple",
		" bar=quux",
		" baz=spam",
		"+gnusto=cleesh",
	}, "\n")
	require.Equal(t, want, diffview.Unified("file.txt", "file.txt", before, after, false))
}

func TestUnified_Replacement(t *testing.T) {
	before := "a\nb\nc\nd\ne\nf\ng\n"
	after := "a\nb\nc\nD\ne\nf\ng\n"

	want := strings.Join([]string{
		"--- f",
		"+++ f",
		"@@ -1,7 +1,7 @@",
		" a",
		" b",
		" c",
		"-d",
		"+D",
		" e",
		" f",
		" g",
	}, "\n")
	require.Equal(t, want, diffview.Unified("f", "f", before, after, false))
}

func TestUnified_DistantChangesSplitIntoHunks(t *testing.T) {
	var beforeLines, afterLines []string
	for _, s := range []string{"l1", "l2", "l3", "l4", "l5", "l6", "l7", "l8", "l9", "l10", "l11", "l12"} {
		beforeLines = append(beforeLines, s+"\n")
		afterLines = append(afterLines, s+"\n")
	}
	afterLines[1] = "X\n"
	afterLines[10] = "Y\n"
	before := strings.Join(beforeLines, "")
	after := strings.Join(afterLines, "")

	want := strings.Join([]string{
		"--- f",
		"+++ f",
		"@@ -1,5 +1,5 @@",
		" l1",
		"-l2",
		"+X",
		" l3",
		" l4",
		" l5",
		"@@ -8,5 +8,5 @@",
		" l8",
		" l9",
		" l10",
		"-l11",
		"+Y",
		" l12",
	}, "\n")
	require.Equal(t, want, diffview.Unified("f", "f", before, after, false))
}

func TestUnified_NearbyChangesShareAHunk(t *testing.T) {
	before := "a\nb\nc\nd\ne\nf\n"
	after := "A\nb\nc\nd\ne\nF\n"

	// The four unchanged lines between the two changes fit within
	// 2*context, so one hunk covers both.
	want := strings.Join([]string{
		"--- f",
		"+++ f",
		"@@ -1,6 +1,6 @@",
		"-a",
		"+A",
		" b",
		" c",
		" d",
		" e",
		"-f",
		"+F",
	}, "\n")
	require.Equal(t, want, diffview.Unified("f", "f", before, after, false))
}

func TestUnified_IntoEmptyDocument(t *testing.T) {
	want := strings.Join([]string{
		"--- f",
		"+++ f",
		"@@ -1,0 +1,1 @@",
		"+gnusto=cleesh",
	}, "\n")
	require.Equal(t, want, diffview.Unified("f", "f", "", "gnusto=cleesh\n", false))
}

func TestUnified_ChompsCarriageReturns(t *testing.T) {
	got := diffview.Unified("f", "f", "a\r\nb\r\n", "a\r\nc\r\n", false)
	require.Contains(t, got, "\n-b\n")
	require.Contains(t, got, "\n+c")
	require.NotContains(t, got, "\r")
}

func TestUnified_EqualInputs(t *testing.T) {
	require.Empty(t, diffview.Unified("f", "f", "same\n", "same\n", false))
}

func TestUnified_Color(t *testing.T) {
	got := diffview.Unified("f", "f", "a\nb\n", "a\nc\n", true)
	require.Contains(t, got, "\x1b[1;36m--- f\x1b[0m")
	require.Contains(t, got, "\x1b[35m@@")
	require.Contains(t, got, "\x1b[31m-b\x1b[0m")
	require.Contains(t, got, "\x1b[32m+c\x1b[0m")
}
