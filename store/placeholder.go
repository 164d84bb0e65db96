package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Rebind converts a $N statement into the placeholder style of d. For the
// ? dialects the argument list is rebuilt in placeholder order, so a
// parameter referenced twice is passed twice. Text inside single-quoted
// literals is copied untouched.
func Rebind(d Dialect, query string, args []any) (string, []any, error) {
	if d == Postgres {
		return query, args, nil
	}

	var b strings.Builder
	b.Grow(len(query))
	out := make([]any, 0, len(args))
	inLiteral := false

	for i := 0; i < len(query); i++ {
		ch := query[i]
		if ch == '\'' {
			inLiteral = !inLiteral
			b.WriteByte(ch)
			continue
		}
		if ch != '$' || inLiteral {
			b.WriteByte(ch)
			continue
		}

		j := i + 1
		for j < len(query) && query[j] >= '0' && query[j] <= '9' {
			j++
		}
		if j == i+1 {
			b.WriteByte(ch)
			continue
		}

		n, err := strconv.Atoi(query[i+1 : j])
		if err != nil || n < 1 || n > len(args) {
			return "", nil, fmt.Errorf("store: placeholder $%s out of range for %d args", query[i+1:j], len(args))
		}
		b.WriteByte('?')
		out = append(out, args[n-1])
		i = j - 1
	}

	return b.String(), out, nil
}

// isInsert reports whether the statement is an INSERT without its own
// RETURNING clause.
func isInsert(query string) bool {
	upper := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(upper, "INSERT") && !strings.Contains(upper, "RETURNING")
}
