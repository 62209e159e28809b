package sqlite

import "fmt"

// jsonMemberClause builds the by-value membership predicate: it matches rows
// whose JSON-array column contains an object whose id equals the single
// bound parameter, regardless of any other fields on the descriptor. Every
// membership test against a JSON collection goes through this helper.
func jsonMemberClause(column string) string {
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM json_each(%s) WHERE json_extract(json_each.value, '$.id') = ?)",
		column,
	)
}
