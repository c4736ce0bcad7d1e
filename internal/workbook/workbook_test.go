package workbook

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestColumnLetter(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, c := range cases {
		if got := ColumnLetter(c.index); got != c.want {
			t.Errorf("ColumnLetter(%d): expected %q, got %q", c.index, c.want, got)
		}
	}
}

func TestSheetXML_InlineStringsAndEmptyCells(t *testing.T) {
	rows := [][]string{
		{"Clause", "Title"},
		{"4.1", ""},
	}
	xml := SheetXML(rows)
	if !strings.Contains(xml, `<c r="A1" t="inlineStr"><is><t xml:space="preserve">Clause</t></is></c>`) {
		t.Errorf("missing inline string cell in:\n%s", xml)
	}
	if !strings.Contains(xml, `<c r="B2"/>`) {
		t.Errorf("expected self-closed empty cell in:\n%s", xml)
	}
}

func TestSheetXML_EscapesAndLineBreaks(t *testing.T) {
	rows := [][]string{{"a < b & c\nnext"}}
	xml := SheetXML(rows)
	if !strings.Contains(xml, "a &lt; b &amp; c&#10;next") {
		t.Errorf("expected escaped content with line-break entity in:\n%s", xml)
	}
}

func TestWrite_ProducesReadableContainer(t *testing.T) {
	rows := [][]string{
		{"Clause", "Title", "Parent", "Level", "Text"},
		{"4", "Safety requirements", "", "1", "First paragraph.\n\nSecond paragraph."},
	}
	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reopen container: %v", err)
	}

	wantParts := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/worksheets/sheet1.xml",
		"xl/styles.xml",
	}
	found := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		found[f.Name] = true
	}
	for _, name := range wantParts {
		if !found[name] {
			t.Errorf("missing part %s", name)
		}
	}
	if len(zr.File) != len(wantParts) {
		t.Errorf("expected %d parts, got %d", len(wantParts), len(zr.File))
	}

	sheet := readPart(t, zr, "xl/worksheets/sheet1.xml")
	if !strings.Contains(sheet, "First paragraph.&#10;&#10;Second paragraph.") {
		t.Errorf("expected encoded paragraph break in sheet:\n%s", sheet)
	}

	wb := readPart(t, zr, "xl/workbook.xml")
	if !strings.Contains(wb, `<sheet name="Clauses" sheetId="1" r:id="rId1"/>`) {
		t.Errorf("expected single Clauses sheet in workbook:\n%s", wb)
	}
}

func readPart(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}
