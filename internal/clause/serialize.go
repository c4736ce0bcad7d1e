package clause

import "strconv"

// Node is the hierarchical output projection of a clause, serializable
// to JSON. Subclauses is present only when non-empty.
type Node struct {
	Clause     string `json:"clause"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Subclauses []Node `json:"subclauses,omitempty"`
}

// Tree projects the clause forest into its hierarchical output form.
func Tree(clauses []*Clause) []Node {
	nodes := make([]Node, 0, len(clauses))
	for _, c := range clauses {
		nodes = append(nodes, c.node())
	}
	return nodes
}

func (c *Clause) node() Node {
	n := Node{
		Clause: c.Identifier,
		Title:  c.Title,
		Text:   c.Text(),
	}
	for _, child := range c.Children {
		n.Subclauses = append(n.Subclauses, child.node())
	}
	return n
}

// RowHeader is the first row of the tabular projection.
var RowHeader = []string{"Clause", "Title", "Parent", "Level", "Text"}

// Rows flattens the clause forest depth-first into tabular rows, header
// included. Level starts at 1 for roots; Parent is empty for roots.
func Rows(clauses []*Clause) [][]string {
	rows := [][]string{RowHeader}
	for _, c := range clauses {
		rows = appendRows(rows, c, "", 1)
	}
	return rows
}

func appendRows(rows [][]string, c *Clause, parent string, level int) [][]string {
	rows = append(rows, []string{c.Identifier, c.Title, parent, strconv.Itoa(level), c.Text()})
	for _, child := range c.Children {
		rows = appendRows(rows, child, c.Identifier, level+1)
	}
	return rows
}
