package hn

import "github.com/tengjizhang/hnmd/internal/model"

// assembleForest nests a document-ordered flat row sequence. A row's parent
// is the nearest preceding row whose level is strictly shallower; a row with
// no such predecessor becomes a top-level root, never discarded. The stack
// holds the rightmost open node per level, so each lookup is O(1) while
// keeping exactly the nearest-preceding-shallower semantics of a backward
// scan.
//
// Depth is assigned from the parent chain, not from the raw level, so a
// level gap in the source (0 then 2) still yields parent depth + 1.
func assembleForest(rows []flatComment) []*model.Comment {
	type frame struct {
		level int
		node  *model.Comment
	}

	var roots []*model.Comment
	var stack []frame

	for _, row := range rows {
		c := &model.Comment{
			ID:        row.id,
			Author:    row.author,
			Body:      row.body,
			Timestamp: row.age,
		}

		for len(stack) > 0 && stack[len(stack)-1].level >= row.level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			c.Depth = 0
			roots = append(roots, c)
		} else {
			parent := stack[len(stack)-1].node
			c.Depth = parent.Depth + 1
			c.ParentID = parent.ID
			parent.Children = append(parent.Children, c)
		}

		stack = append(stack, frame{level: row.level, node: c})
	}
	return roots
}

// countComments walks a forest and returns the total node count.
func countComments(forest []*model.Comment) int {
	n := 0
	for _, c := range forest {
		n += 1 + countComments(c.Children)
	}
	return n
}
