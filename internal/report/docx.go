package report

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// WriteDocx renders the report as a minimal WordprocessingML package: an
// overall summary table, then one heading and one table per service date.
// Only the parts Word requires to open the file are emitted.
func WriteDocx(w io.Writer, m *Model) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", buildDocumentXML(m)},
	}
	for _, part := range parts {
		fw, err := zw.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(fw, part.content); err != nil {
			return err
		}
	}

	return zw.Close()
}

func buildDocumentXML(m *Model) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeParagraph(&b, m.ServiceName+" Attendance Report", true)

	writeParagraph(&b, "OVERALL SUMMARY", true)
	openTable(&b)
	writeTableRow(&b, []string{"Category", "Total Attendance"}, true)
	totals, grand := m.OverallTotals()
	for _, t := range totals {
		writeTableRow(&b, []string{t.Category, strconv.Itoa(t.Count)}, false)
	}
	writeTableRow(&b, []string{"GRAND TOTAL", strconv.Itoa(grand)}, true)
	b.WriteString(`</w:tbl>`)
	writeParagraph(&b, "", false)

	writeParagraph(&b, "DETAILED ATTENDANCE BY DATE", true)
	for _, block := range m.Dates {
		writeParagraph(&b, block.Date, true)

		openTable(&b)
		writeTableRow(&b, Header(), true)
		for _, row := range block.Rows() {
			writeTableRow(&b, row, false)
		}
		writeTableRow(&b, block.Totals(), true)
		b.WriteString(`</w:tbl>`)

		writeParagraph(&b, "", false)
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func openTable(b *strings.Builder) {
	b.WriteString(`<w:tbl><w:tblPr><w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b.WriteString(`<w:` + side + ` w:val="single" w:sz="4"/>`)
	}
	b.WriteString(`</w:tblBorders></w:tblPr>`)
}

func writeParagraph(b *strings.Builder, text string, bold bool) {
	b.WriteString(`<w:p><w:r>`)
	if bold {
		b.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

func writeTableRow(b *strings.Builder, cells []string, bold bool) {
	b.WriteString(`<w:tr>`)
	for _, cell := range cells {
		b.WriteString(`<w:tc><w:p><w:r>`)
		if bold {
			b.WriteString(`<w:rPr><w:b/></w:rPr>`)
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		b.WriteString(escapeXML(cell))
		b.WriteString(`</w:t></w:r></w:p></w:tc>`)
	}
	b.WriteString(`</w:tr>`)
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
