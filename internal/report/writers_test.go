package report

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"go-chms/internal/attendance"
	"go-chms/internal/audit"
)

func sampleModel() *Model {
	return &Model{
		ServiceName: "Sunday Service",
		Dates: []DateBlock{
			{
				Date: "2026-03-01",
				Categories: map[string][]string{
					"L100":   {"John Doe", "Jane Roe"},
					"Worker": {"Ada Obi"},
				},
			},
			{
				Date: "2026-03-08",
				Categories: map[string][]string{
					"New": {"Ben Eze"},
				},
			},
		},
	}
}

func TestWriteCSVBlockLayout(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, sampleModel())
	assert.NoError(t, err)

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	assert.NoError(t, err)

	assert.Equal(t, "2026-03-01 - Sunday Service", rows[0][0])
	assert.Equal(t, Header(), rows[1])
	assert.Equal(t, "John Doe", rows[2][0])
	assert.Equal(t, "Ada Obi", rows[2][4])
	assert.Equal(t, "Jane Roe", rows[3][0])
	assert.Equal(t, "", rows[3][4])
	assert.Equal(t, "3", rows[4][len(Header())-1])

	// The blank separator line between blocks is dropped by csv.Reader.
	assert.Equal(t, "2026-03-08 - Sunday Service", rows[5][0])
}

func TestWriteDocxOverallSummaryAggregatesAcrossDates(t *testing.T) {
	model := &Model{
		ServiceName: "Sunday Service",
		Dates: []DateBlock{
			{
				Date:       "2026-03-01",
				Categories: map[string][]string{"L100": {"John Doe"}},
			},
			{
				Date:       "2026-03-08",
				Categories: map[string][]string{"L100": {"Jane Roe"}},
			},
		},
	}

	var buf bytes.Buffer
	err := WriteDocx(&buf, model)
	assert.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.NoError(t, err)
	doc, err := zr.Open("word/document.xml")
	assert.NoError(t, err)
	defer doc.Close()

	var content bytes.Buffer
	_, err = content.ReadFrom(doc)
	assert.NoError(t, err)

	xml := content.String()
	assert.Contains(t, xml, "OVERALL SUMMARY")
	assert.Contains(t, xml, "GRAND TOTAL")

	// Each date block only ever totals 1; the cross-date count appears in the
	// summary table alone.
	assert.Contains(t, xml, `<w:t xml:space="preserve">2</w:t>`)
	assert.Equal(t, len(model.Dates)+1, strings.Count(xml, "<w:tbl>"))
}

func TestWriteDocxProducesReadableArchive(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDocx(&buf, sampleModel())
	assert.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["[Content_Types].xml"])
	assert.True(t, names["_rels/.rels"])
	assert.True(t, names["word/document.xml"])

	doc, err := zr.Open("word/document.xml")
	assert.NoError(t, err)
	defer doc.Close()

	var content bytes.Buffer
	_, err = content.ReadFrom(doc)
	assert.NoError(t, err)
	assert.Contains(t, content.String(), "John Doe")
	assert.Contains(t, content.String(), "2026-03-08")
}

func TestWriteDocxEscapesNames(t *testing.T) {
	model := &Model{
		ServiceName: "Sunday Service",
		Dates: []DateBlock{
			{
				Date:       "2026-03-01",
				Categories: map[string][]string{"L100": {"O'Brien & Sons <jr>"}},
			},
		},
	}

	var buf bytes.Buffer
	err := WriteDocx(&buf, model)
	assert.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.NoError(t, err)
	doc, err := zr.Open("word/document.xml")
	assert.NoError(t, err)
	defer doc.Close()

	var content bytes.Buffer
	_, err = content.ReadFrom(doc)
	assert.NoError(t, err)
	assert.NotContains(t, content.String(), "<jr>")
	assert.Contains(t, content.String(), "&amp;")
}

func TestWriteXLSXRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, sampleModel())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		value, err := f.GetCellValue(sheetName, ref)
		assert.NoError(t, err)
		return value
	}

	assert.Equal(t, "OVERALL SUMMARY", cell("A1"))
	assert.Equal(t, "L100", cell("A3"))
	assert.Equal(t, "2", cell("B3"))
	assert.Equal(t, "GRAND TOTAL", cell("A10"))
	assert.Equal(t, "4", cell("B10"))
	assert.Equal(t, "2026-03-01 - Sunday Service", cell("A12"))
}

type fakeSource struct {
	records []attendance.Attendance
	err     error
}

func (f *fakeSource) FindAll(ctx context.Context) ([]attendance.Attendance, error) {
	return f.records, f.err
}

type fakeRecorder struct {
	events []audit.Event
}

func (f *fakeRecorder) Record(ctx context.Context, ev audit.Event) error {
	f.events = append(f.events, ev)
	return nil
}

func TestGenerateUnknownFormat(t *testing.T) {
	svc := NewService(&fakeSource{}, &fakeRecorder{})

	_, err := svc.Generate(context.Background(), "Sunday Service", "pdf")

	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestGenerateNoData(t *testing.T) {
	svc := NewService(&fakeSource{}, &fakeRecorder{})

	_, err := svc.Generate(context.Background(), "Sunday Service", FormatCSV)

	assert.ErrorIs(t, err, ErrNoReportData)
}

func TestGenerateDefaultsToDocxAndAudits(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewService(&fakeSource{records: []attendance.Attendance{
		rec("John Doe", "L100", "Sunday Service", "2026-03-01"),
	}}, recorder)

	export, err := svc.Generate(context.Background(), "Sunday Service", "")

	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(export.Filename, ".docx"))
	assert.Equal(t, contentTypes[FormatDocx], export.ContentType)
	assert.NotEmpty(t, export.Data)
	assert.Len(t, recorder.events, 1)
	assert.Equal(t, "Data Export", recorder.events[0].Action())
}
