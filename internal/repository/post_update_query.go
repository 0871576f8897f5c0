package repository

import (
	"fmt"
	"strings"
)

// buildUpdatePostQuery appends one assignment per present field, in a fixed
// column order. ok is false when there is nothing to assign.
func buildUpdatePostQuery(arg UpdatePostParams) (query string, args []any, ok bool) {
	var sets []string

	if arg.Title.Valid {
		args = append(args, arg.Title.String)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if arg.Content.Valid {
		args = append(args, arg.Content.String)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}

	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, arg.ID)
	query = fmt.Sprintf("UPDATE posts SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return query, args, true
}
