package document

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"booking-registry/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = content
	}
	return out
}

func TestPackageNamesEntriesBySerial(t *testing.T) {
	company := []byte("%PDF-1.3 company")
	customer := []byte("%PDF-1.3 customer")

	data, err := Package("LUBC-000041", company, customer)
	require.NoError(t, err)

	entries := readEntries(t, data)
	require.Len(t, entries, 2)
	assert.Equal(t, company, entries["LUBC-000041_Company.pdf"])
	assert.Equal(t, customer, entries["LUBC-000041_Customer.pdf"])
}

func TestPackageRejectsEmptyDocument(t *testing.T) {
	_, err := Package("LUBC-000041", nil, []byte("%PDF"))
	assert.ErrorIs(t, err, types.ErrRenderFailed)

	_, err = Package("LUBC-000041", []byte("%PDF"), nil)
	assert.ErrorIs(t, err, types.ErrRenderFailed)
}

func TestPackageDeterministic(t *testing.T) {
	company := []byte("%PDF-1.3 company")
	customer := []byte("%PDF-1.3 customer")

	first, err := Package("LUBC-000041", company, customer)
	require.NoError(t, err)
	second, err := Package("LUBC-000041", company, customer)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderArchive(t *testing.T) {
	r := NewRenderer()
	b := sampleBooking()

	data, err := r.RenderArchive(b, fixedGeneratedAt)
	require.NoError(t, err)

	entries := readEntries(t, data)
	require.Len(t, entries, 2)
	assert.True(t, bytes.HasPrefix(entries["LUBC-000041_Company.pdf"], []byte("%PDF")))
	assert.True(t, bytes.HasPrefix(entries["LUBC-000041_Customer.pdf"], []byte("%PDF")))
}

func TestRenderArchiveFailsWithoutSerial(t *testing.T) {
	r := NewRenderer()
	b := sampleBooking()
	b.SerialDisplay = nil

	_, err := r.RenderArchive(b, fixedGeneratedAt)
	assert.ErrorIs(t, err, types.ErrRenderFailed)
}

func TestArchiveFileName(t *testing.T) {
	assert.Equal(t, "LUBC-000041_Bookings.zip", ArchiveFileName("LUBC-000041"))
}
