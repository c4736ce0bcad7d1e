// Package workbook writes tabular rows as a minimal zipped-XML
// spreadsheet: one sheet named "Clauses", inline string cells, newlines
// encoded as the spreadsheet line-break entity.
package workbook

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
  <Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
  <Override PartName="/xl/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"/>
</Types>`

	rootRelsXML = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`

	workbookXML = `<?xml version="1.0" encoding="UTF-8"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Clauses" sheetId="1" r:id="rId1"/>
  </sheets>
</workbook>`

	workbookRelsXML = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

	stylesXML = `<?xml version="1.0" encoding="UTF-8"?>
<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <fonts count="1"><font><name val="Calibri"/><family val="2"/><sz val="11"/></font></fonts>
  <fills count="1"><fill><patternFill patternType="none"/></fill></fills>
  <borders count="1"><border/></borders>
  <cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>
  <cellXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0" applyAlignment="1"><alignment wrapText="1"/></xf></cellXfs>
  <cellStyles count="1"><cellStyle name="Normal" xfId="0" builtinId="0"/></cellStyles>
</styleSheet>`
)

// cellEscaper escapes XML text content and turns newlines into the
// line-break entity spreadsheet readers expect inside inline strings.
var cellEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r\n", "&#10;",
	"\n", "&#10;",
	"\r", "&#10;",
)

// Write packages the rows into an xlsx container on w.
func Write(w io.Writer, rows [][]string) error {
	zw := zip.NewWriter(w)
	parts := []struct {
		name, body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"xl/workbook.xml", workbookXML},
		{"xl/_rels/workbook.xml.rels", workbookRelsXML},
		{"xl/worksheets/sheet1.xml", SheetXML(rows)},
		{"xl/styles.xml", stylesXML},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := io.WriteString(f, part.body); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	return zw.Close()
}

// SheetXML renders the worksheet part for the rows.
func SheetXML(rows [][]string) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<worksheet xmlns=\"http://schemas.openxmlformats.org/spreadsheetml/2006/main\">\n")
	b.WriteString("  <sheetData>\n")
	for r, row := range rows {
		fmt.Fprintf(&b, "    <row r=\"%d\">\n", r+1)
		for c, value := range row {
			ref := fmt.Sprintf("%s%d", ColumnLetter(c), r+1)
			if value == "" {
				fmt.Fprintf(&b, "      <c r=\"%s\"/>\n", ref)
				continue
			}
			fmt.Fprintf(&b,
				"      <c r=\"%s\" t=\"inlineStr\"><is><t xml:space=\"preserve\">%s</t></is></c>\n",
				ref, cellEscaper.Replace(value))
		}
		b.WriteString("    </row>\n")
	}
	b.WriteString("  </sheetData>\n")
	b.WriteString("</worksheet>")
	return b.String()
}

// ColumnLetter converts a zero-based column index to its A1-style
// letters (0 -> A, 25 -> Z, 26 -> AA).
func ColumnLetter(index int) string {
	var letters []byte
	for {
		quotient, remainder := index/26, index%26
		letters = append([]byte{byte('A' + remainder)}, letters...)
		if quotient == 0 {
			break
		}
		index = quotient - 1
	}
	return string(letters)
}
