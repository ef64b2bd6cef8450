package tree

import (
	"regexp"
	"strconv"
	"strings"
)

// weightAnno matches a leading "[&W <number>]" annotation (spec §6).
var weightAnno = regexp.MustCompile(`^\[&W\s+([0-9.eE+-]+)\]\s*`)

// rootHintAnno matches a leading "[&R]" or "[&U]" rootedness hint.
var rootHintAnno = regexp.MustCompile(`^\[&([RU])\]\s*`)

// ParseSource reads an entire source-tree file: Newick trees, one per
// statement terminated by ';', optionally prefixed by a "#nexus" header
// whose "begin trees; ... end;" block is read for "tree <name> = <newick>;"
// statements (spec §6). Without a #nexus header the input is treated as
// bare concatenated Newick. respectWeights controls whether a leading
// "[&W <n>]" annotation sets Tree.Weight; when false every tree gets
// Weight 1 regardless of any annotation present (the CLI's -w flag).
func ParseSource(src string, respectWeights bool) ([]*Tree, error) {
	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(strings.ToLower(trimmed), "#nexus") {
		return parseNexusTrees(trimmed, respectWeights)
	}
	return parseNewickStatements(trimmed, respectWeights)
}

// parseNewickStatements splits concatenated Newick statements on ';' and
// parses each one, honoring any per-tree [&W]/[&R]/[&U] prefix.
func parseNewickStatements(src string, respectWeights bool) ([]*Tree, error) {
	var out []*Tree
	rest := src
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}
		stmt, remainder, err := splitStatement(rest)
		if err != nil {
			return nil, err
		}
		t, err := parseAnnotatedStatement(stmt, respectWeights)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		rest = remainder
	}
	return out, nil
}

// splitStatement returns the text up to and including the next top-level
// ';' (ignoring semicolons inside quoted labels or [...] comments) and the
// remaining text after it.
func splitStatement(s string) (stmt, rest string, err error) {
	runes := []rune(s)
	inQuote := false
	depth := 0
	for i, r := range runes {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case inQuote:
			// inside a quoted label, everything is literal
		case r == '[':
			depth++
		case r == ']':
			if depth > 0 {
				depth--
			}
		case r == ';' && depth == 0:
			return string(runes[:i+1]), string(runes[i+1:]), nil
		}
	}
	return "", "", &ParseError{Line: 1, Col: len(runes) + 1, Token: "", Msg: "unterminated statement: missing ';'"}
}

// parseAnnotatedStatement strips a leading [&W ..]/[&R]/[&U] annotation (in
// either order) before handing the remainder to Parse.
func parseAnnotatedStatement(stmt string, respectWeights bool) (*Tree, error) {
	weight := 1.0
	hasWeight := false
	unrooted := false
	hasRootHint := false

	for {
		stmt = strings.TrimSpace(stmt)
		if m := weightAnno.FindStringSubmatch(stmt); m != nil {
			w, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return nil, &ParseError{Line: 1, Col: 1, Token: m[0], Msg: "malformed [&W] weight"}
			}
			weight = w
			hasWeight = true
			stmt = stmt[len(m[0]):]
			continue
		}
		if m := rootHintAnno.FindStringSubmatch(stmt); m != nil {
			unrooted = m[1] == "U"
			hasRootHint = true
			stmt = stmt[len(m[0]):]
			continue
		}
		break
	}

	t, err := Parse(stmt)
	if err != nil {
		return nil, err
	}
	if hasWeight && respectWeights {
		t.Weight = weight
	}
	if hasRootHint {
		t.Unrooted = unrooted
	}
	return t, nil
}

// parseNexusTrees extracts "tree <name> = <newick>;" statements from a
// minimal "#nexus ... begin trees; ... end;" block. Non-Newick NEXUS
// constructs (taxa/characters blocks, translate tables) are intentionally
// not interpreted — this is the reading half of the supplemented NEXUS
// support noted in SPEC_FULL.md, kept deliberately small since render
// already owns NEXUS emission and the grammar reduces to "find the trees
// block, then Parse each assignment's right-hand side".
func parseNexusTrees(src string, respectWeights bool) ([]*Tree, error) {
	lower := strings.ToLower(src)
	beginIdx := strings.Index(lower, "begin trees")
	if beginIdx < 0 {
		return nil, &ParseError{Line: 1, Col: 1, Token: "", Msg: "#nexus input missing a 'begin trees' block"}
	}
	endIdx := strings.Index(lower[beginIdx:], "end;")
	if endIdx < 0 {
		return nil, &ParseError{Line: 1, Col: 1, Token: "", Msg: "#nexus 'trees' block missing 'end;'"}
	}
	block := src[beginIdx : beginIdx+endIdx]

	var out []*Tree
	for _, stmt := range strings.Split(block, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" || strings.HasPrefix(strings.ToLower(stmt), "begin") {
			continue
		}
		eq := strings.Index(stmt, "=")
		if eq < 0 {
			continue // e.g. a bare "translate" clause we don't interpret
		}
		name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(stmt[:eq]), "tree"))
		newick := strings.TrimSpace(stmt[eq+1:]) + ";"
		t, err := parseAnnotatedStatement(newick, respectWeights)
		if err != nil {
			return nil, err
		}
		t.Name = name
		out = append(out, t)
	}
	return out, nil
}
