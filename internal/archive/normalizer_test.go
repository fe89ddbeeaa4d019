package archive_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhantomInsights/baby-names-analysis/internal/archive"
	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
)

type entry struct {
	name    string
	content string
}

// makeArchive builds an in-memory zip from name -> content pairs, preserving
// the given entry order.
func makeArchive(t *testing.T, entries []entry) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		f, err := w.Create(e.name)
		require.NoError(t, err)
		_, err = f.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestNormalize(t *testing.T) {
	t.Run("two entries in order", func(t *testing.T) {
		data := makeArchive(t, []entry{
			{"yob1880.txt", "Mary,F,7065\nJohn,M,9655\n"},
			{"yob1881.txt", "Anna,F,2698\n"},
		})

		records, err := archive.Normalize(data)
		require.NoError(t, err)

		want := []domain.Record{
			{Year: 1880, Name: "Mary", Gender: domain.Female, Count: 7065},
			{Year: 1880, Name: "John", Gender: domain.Male, Count: 9655},
			{Year: 1881, Name: "Anna", Gender: domain.Female, Count: 2698},
		}
		if diff := cmp.Diff(want, records); diff != "" {
			t.Fatalf("record mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-txt entries are skipped", func(t *testing.T) {
		data := makeArchive(t, []entry{
			{"NationalReadMe.pdf", "%PDF-1.4 not name data"},
			{"yob1990.txt", "Jessica,F,46470\n"},
		})

		records, err := archive.Normalize(data)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 1990, records[0].Year)
	})

	t.Run("entries under a directory keep their year", func(t *testing.T) {
		data := makeArchive(t, []entry{
			{"names/yob2010.txt", "Isabella,F,22913\n"},
		})

		records, err := archive.Normalize(data)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 2010, records[0].Year)
	})

	t.Run("windows line endings", func(t *testing.T) {
		data := makeArchive(t, []entry{
			{"yob2000.txt", "Emily,F,25953\r\nJacob,M,34471\r\n"},
		})

		records, err := archive.Normalize(data)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Emily", records[0].Name)
		assert.Equal(t, "Jacob", records[1].Name)
	})
}

func TestNormalize_Errors(t *testing.T) {
	t.Run("not a zip archive", func(t *testing.T) {
		_, err := archive.Normalize([]byte("definitely not a zip"))
		assert.ErrorContains(t, err, "open archive")
	})

	t.Run("no qualifying entries", func(t *testing.T) {
		data := makeArchive(t, []entry{
			{"NationalReadMe.pdf", "docs only"},
		})

		_, err := archive.Normalize(data)
		assert.ErrorIs(t, err, domain.ErrEmptyArchive)
	})

	t.Run("malformed line fails the run", func(t *testing.T) {
		data := makeArchive(t, []entry{
			{"yob1880.txt", "Mary,F,7065\nOnlyOneField\n"},
		})

		_, err := archive.Normalize(data)

		var malformed *domain.MalformedRecordError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "yob1880.txt", malformed.Entry)
		assert.Equal(t, 2, malformed.Line)
	})

	t.Run("non-numeric count fails the run", func(t *testing.T) {
		data := makeArchive(t, []entry{
			{"yob1880.txt", "Mary,F,many\n"},
		})

		var malformed *domain.MalformedRecordError
		_, err := archive.Normalize(data)
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 1, malformed.Line)
	})

	t.Run("entry name without a year", func(t *testing.T) {
		data := makeArchive(t, []entry{
			{"all.txt", "Mary,F,7065\n"},
		})

		var malformed *domain.MalformedRecordError
		_, err := archive.Normalize(data)
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "all.txt", malformed.Entry)
		assert.Equal(t, 0, malformed.Line)
	})

	t.Run("non-UTF-8 entry", func(t *testing.T) {
		data := makeArchive(t, []entry{
			{"yob1880.txt", "Mary,F,7065\nJo\xff\xfehn,M,1\n"},
		})

		var decoding *domain.DecodingError
		_, err := archive.Normalize(data)
		require.ErrorAs(t, err, &decoding)
		assert.Equal(t, "yob1880.txt", decoding.Entry)
	})
}
