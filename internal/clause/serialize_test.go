package clause

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleForest() []*Clause {
	leaf := &Clause{Identifier: "4.1", Title: "General", BodyLines: []string{"Leaf body text."}}
	root := &Clause{Identifier: "4", Title: "Safety requirements", Children: []*Clause{leaf}}
	other := &Clause{Identifier: "5", Title: "Design", BodyLines: []string{"Root body text."}}
	return []*Clause{root, other}
}

func TestTree_Projection(t *testing.T) {
	nodes := Tree(sampleForest())
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].Clause != "4" || len(nodes[0].Subclauses) != 1 {
		t.Fatalf("expected node 4 with one subclause, got %s with %d", nodes[0].Clause, len(nodes[0].Subclauses))
	}
	if nodes[0].Subclauses[0].Text != "Leaf body text." {
		t.Errorf("expected leaf text, got %q", nodes[0].Subclauses[0].Text)
	}
}

func TestTree_SubclausesKeyOmittedWhenEmpty(t *testing.T) {
	payload, err := json.Marshal(Tree(sampleForest()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(payload)
	if !strings.Contains(s, `"subclauses"`) {
		t.Error("expected subclauses key for the populated node")
	}
	// The leaf and the childless root must not carry the key.
	if strings.Count(s, `"subclauses"`) != 1 {
		t.Errorf("expected exactly one subclauses key, got %d in %s", strings.Count(s, `"subclauses"`), s)
	}
}

func TestRows_DepthFirstWithLevels(t *testing.T) {
	rows := Rows(sampleForest())
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}
	header := rows[0]
	want := []string{"Clause", "Title", "Parent", "Level", "Text"}
	for i, w := range want {
		if header[i] != w {
			t.Errorf("header[%d]: expected %q, got %q", i, w, header[i])
		}
	}
	if rows[1][0] != "4" || rows[1][2] != "" || rows[1][3] != "1" {
		t.Errorf("unexpected root row: %v", rows[1])
	}
	if rows[2][0] != "4.1" || rows[2][2] != "4" || rows[2][3] != "2" {
		t.Errorf("unexpected child row: %v", rows[2])
	}
	if rows[3][0] != "5" || rows[3][2] != "" || rows[3][3] != "1" {
		t.Errorf("unexpected second root row: %v", rows[3])
	}
	if rows[3][4] != "Root body text." {
		t.Errorf("expected text column, got %q", rows[3][4])
	}
}
